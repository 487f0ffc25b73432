package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractProject() *domain.Project {
	return &domain.Project{
		Transitions: []domain.Transition{
			{Source: "IDLE", Target: "RUN", Guard: "start", Actions: "busy=1"},
			{Source: "RUN", Target: "IDLE", Guard: "stop", Actions: "busy=0"},
		},
		Parameters: []domain.Parameter{{Name: "WIDTH", Value: "8", Note: "bus width"}},
		Reset:      "IDLE",
		Encoding:   domain.Gray,
	}
}

// RunProjectStoreContract runs a suite of tests to verify that a ProjectStore
// implementation adheres to the interface contract.
func RunProjectStoreContract(t *testing.T, store ProjectStore) {
	ctx := context.Background()
	id := "contract-test-project-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		p := contractProject()
		require.NoError(t, store.Save(ctx, id, p), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, p.Transitions, loaded.Transitions)
		assert.Equal(t, p.Parameters, loaded.Parameters)
		assert.Equal(t, "IDLE", loaded.Reset)
		assert.Equal(t, domain.Gray, loaded.Encoding)
	})

	t.Run("Save Copies", func(t *testing.T) {
		p := contractProject()
		require.NoError(t, store.Save(ctx, id, p))
		p.Transitions[0].Target = "MUTATED"

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "RUN", loaded.Transitions[0].Target)
	})

	t.Run("Overwrite", func(t *testing.T) {
		p := contractProject()
		p.Encoding = domain.OneHot
		require.NoError(t, store.Save(ctx, id, p))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.OneHot, loaded.Encoding)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, contractProject()))
		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound, "Load after Delete should return ErrProjectNotFound")

		assert.NoError(t, store.Delete(ctx, id), "deleting twice is fine")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		require.NoError(t, store.Save(ctx, id1, contractProject()))
		require.NoError(t, store.Save(ctx, id2, contractProject()))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
