package table_test

import (
	"testing"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AppendGetRemove(t *testing.T) {
	tbl := table.New[domain.Transition]()
	assert.Equal(t, 0, tbl.Len())

	i := tbl.Append(domain.Transition{Source: "A", Target: "B", Guard: "x"})
	j := tbl.Append(domain.Transition{Source: "B", Target: "C", Guard: "y"})
	k := tbl.Append(domain.Transition{Source: "C", Target: "A", Guard: "z"})
	assert.Equal(t, []int{0, 1, 2}, []int{i, j, k})

	row, err := tbl.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "B", row.Source)

	require.NoError(t, tbl.Remove(1))
	assert.Equal(t, 2, tbl.Len())

	row, err = tbl.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "C", row.Source, "later rows shift up")
}

func TestTable_OutOfRange(t *testing.T) {
	tbl := table.New(domain.Parameter{Name: "P"})

	_, err := tbl.Get(3)
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)
	_, err = tbl.Get(-1)
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)
	assert.ErrorIs(t, tbl.Remove(1), table.ErrIndexOutOfRange)
	assert.ErrorIs(t, tbl.Set(1, domain.Parameter{}), table.ErrIndexOutOfRange)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_SetInPlace(t *testing.T) {
	tbl := table.New(domain.Parameter{Name: "A"}, domain.Parameter{Name: "B"})
	require.NoError(t, tbl.Set(0, domain.Parameter{Name: "Z", Value: "1"}))
	assert.Equal(t, []domain.Parameter{{Name: "Z", Value: "1"}, {Name: "B"}}, tbl.Snapshot())
}

func TestTable_SnapshotIsolation(t *testing.T) {
	rows := []domain.Parameter{{Name: "A"}, {Name: "B"}}
	tbl := table.New(rows...)

	rows[0].Name = "mutated"
	snap := tbl.Snapshot()
	assert.Equal(t, "A", snap[0].Name, "New copies its input")

	snap[1].Name = "mutated"
	again := tbl.Snapshot()
	assert.Equal(t, "B", again[1].Name, "Snapshot returns a copy")
}

func TestTable_Replace(t *testing.T) {
	tbl := table.New(domain.Parameter{Name: "old"})
	tbl.Replace([]domain.Parameter{{Name: "x"}, {Name: "y"}, {Name: "x"}})
	assert.Equal(t, 3, tbl.Len(), "duplicates are kept")

	tbl.Replace(nil)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Snapshot())
}
