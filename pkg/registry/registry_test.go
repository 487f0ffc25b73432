package registry_test

import (
	"testing"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/registry"
	"github.com/stretchr/testify/assert"
)

func TestStates_SortedAndDeduplicated(t *testing.T) {
	transitions := []domain.Transition{
		{Source: "B", Target: "A"},
		{Source: "A", Target: "C"},
		{Source: "C", Target: "B"},
	}
	assert.Equal(t, []string{"A", "B", "C"}, registry.States(transitions))

	// Insertion order does not matter.
	reversed := []domain.Transition{
		{Source: "C", Target: "B"},
		{Source: "A", Target: "C"},
		{Source: "B", Target: "A"},
	}
	assert.Equal(t, []string{"A", "B", "C"}, registry.States(reversed))
}

func TestStates_SkipsEmptyAndIsCaseSensitive(t *testing.T) {
	transitions := []domain.Transition{
		{Source: "idle", Target: ""},
		{Source: "", Target: "IDLE"},
		{Source: "Work", Target: "idle"},
	}
	// Upper-case letters sort before lower-case in byte order.
	assert.Equal(t, []string{"IDLE", "Work", "idle"}, registry.States(transitions))
}

func TestStates_Empty(t *testing.T) {
	assert.Empty(t, registry.States(nil))
	assert.Empty(t, registry.States([]domain.Transition{{Guard: "x"}}))
}

func TestResolveReset(t *testing.T) {
	states := []string{"IDLE", "S1"}

	assert.Equal(t, "S1", registry.ResolveReset(states, "S1"))
	assert.Equal(t, "", registry.ResolveReset(states, "S2"), "stale selection is cleared")
	assert.Equal(t, "", registry.ResolveReset(states, ""))
	assert.Equal(t, "", registry.ResolveReset(nil, "IDLE"))
}

func TestIndex(t *testing.T) {
	states := []string{"A", "B", "C"}
	assert.Equal(t, 0, registry.Index(states, "A"))
	assert.Equal(t, 2, registry.Index(states, "C"))
	assert.Equal(t, -1, registry.Index(states, "D"))
	assert.True(t, registry.Contains(states, "B"))
	assert.False(t, registry.Contains(states, "b"))
}
