package fsmgen_test

import (
	"testing"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesigner_Defaults(t *testing.T) {
	d := fsmgen.NewDesigner()

	assert.Empty(t, d.States())
	assert.Equal(t, domain.Binary, d.Encoding())
	assert.Empty(t, d.Regenerate().Text)

	d.AddBlankTransition()
	assert.Equal(t, []string{"IDLE"}, d.States())

	d.AddBlankParameter()
	require.Len(t, d.Parameters(), 1)
	assert.Equal(t, domain.NewParameter(), d.Parameters()[0])
}

func TestDesigner_RegistryFollowsEdits(t *testing.T) {
	d := fsmgen.NewDesigner()
	i := d.AddTransition(domain.Transition{Source: "A", Target: "B", Guard: "1"})
	assert.Equal(t, []string{"A", "B"}, d.States())

	require.NoError(t, d.UpdateTransition(i, domain.Transition{Source: "A", Target: "C", Guard: "1"}))
	assert.Equal(t, []string{"A", "C"}, d.States())

	require.NoError(t, d.RemoveTransition(i))
	assert.Empty(t, d.States())
}

func TestDesigner_ResetIsClearedWhenStateDisappears(t *testing.T) {
	d := fsmgen.NewDesigner()
	d.AddTransition(domain.Transition{Source: "A", Target: "B", Guard: "1"})
	i := d.AddTransition(domain.Transition{Source: "C", Target: "A", Guard: "1"})

	require.True(t, d.SetReset("C"))
	assert.Equal(t, "C", d.Reset())

	require.NoError(t, d.RemoveTransition(i))
	assert.Empty(t, d.Reset())
}

func TestDesigner_SetResetRejectsUnknown(t *testing.T) {
	d := fsmgen.NewDesigner()
	d.AddTransition(domain.Transition{Source: "A", Target: "B", Guard: "1"})
	require.True(t, d.SetReset("A"))

	assert.False(t, d.SetReset("Z"))
	assert.Equal(t, "A", d.Reset(), "rejected selection keeps the previous one")

	assert.True(t, d.SetReset(""))
	assert.Empty(t, d.Reset())
}

func TestDesigner_IndexErrors(t *testing.T) {
	d := fsmgen.NewDesigner()

	assert.ErrorIs(t, d.UpdateTransition(0, domain.NewTransition()), table.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveTransition(-1), table.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.UpdateParameter(3, domain.NewParameter()), table.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveParameter(0), table.ErrIndexOutOfRange)

	_, err := d.Transition(0)
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)
}

func TestDesigner_LoadAndSnapshot(t *testing.T) {
	p := fsmgen.Example()
	p.Encoding = domain.Gray
	d := fsmgen.NewDesignerFrom(p)

	assert.Equal(t, "S_IDLE", d.Reset())
	assert.Equal(t, domain.Gray, d.Encoding())
	assert.Equal(t, p, d.Snapshot())

	// Snapshots are detached from the designer.
	snap := d.Snapshot()
	snap.Transitions[0].Target = "ELSEWHERE"
	tr, err := d.Transition(0)
	require.NoError(t, err)
	assert.Equal(t, "S_ONE", tr.Target)
}

func TestDesigner_LoadDropsStaleReset(t *testing.T) {
	d := fsmgen.NewDesignerFrom(&domain.Project{
		Transitions: []domain.Transition{{Source: "A", Target: "B", Guard: "1"}},
		Reset:       "Q",
	})
	assert.Empty(t, d.Reset())
}

func TestDesigner_ConflictsAndRegenerate(t *testing.T) {
	d := fsmgen.NewDesigner()
	d.AddTransition(domain.Transition{Source: "A", Target: "B", Guard: "x", Actions: "y=1"})
	d.AddTransition(domain.Transition{Source: "A", Target: "A", Guard: "x"})
	d.AddTransition(domain.Transition{Source: "B", Target: "A", Guard: "1"})

	assert.Equal(t, []bool{true, true, false}, d.Conflicts())

	d.SetEncoding(domain.OneHot)
	res := d.Regenerate()
	assert.True(t, res.HasConflicts())
	assert.Contains(t, res.Text, "2'b01")
	assert.Contains(t, res.Text, "// Output: y")
}

func TestDesigner_Graph(t *testing.T) {
	d := fsmgen.NewDesignerFrom(fsmgen.Example())
	g := d.Graph()

	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 6)
	assert.False(t, g.Empty())
}
