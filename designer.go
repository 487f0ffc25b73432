package fsmgen

import (
	"slices"

	"github.com/aretw0/fsmgen/pkg/conflict"
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/graph"
	"github.com/aretw0/fsmgen/pkg/registry"
	"github.com/aretw0/fsmgen/pkg/table"
	"github.com/aretw0/fsmgen/pkg/verilog"
)

// Designer is the editable model behind an interactive editor.
//
// Every structural change to the transition table recomputes the state
// registry from scratch and re-validates the reset selection, clearing it
// when the selected state no longer exists. A Designer is not safe for
// concurrent use; callers serialise edits.
type Designer struct {
	transitions *table.Transitions
	parameters  *table.Parameters
	reset       string
	scheme      domain.Encoding
	states      []string
}

// NewDesigner returns an empty design using Binary encoding.
func NewDesigner() *Designer {
	return &Designer{
		transitions: table.New[domain.Transition](),
		parameters:  table.New[domain.Parameter](),
	}
}

// NewDesignerFrom returns a designer loaded with p.
func NewDesignerFrom(p *domain.Project) *Designer {
	d := NewDesigner()
	d.Load(p)
	return d
}

func (d *Designer) refresh() {
	d.states = registry.States(d.transitions.Snapshot())
	d.reset = registry.ResolveReset(d.states, d.reset)
}

// Load replaces both tables wholesale, then applies the scheme and the reset
// selection (which only sticks if it names a state of the new table).
func (d *Designer) Load(p *domain.Project) {
	d.transitions.Replace(p.Transitions)
	d.parameters.Replace(p.Parameters)
	d.scheme = p.Encoding
	d.reset = p.Reset
	d.refresh()
}

// Snapshot returns a copy of the current design.
func (d *Designer) Snapshot() *domain.Project {
	return &domain.Project{
		Transitions: d.transitions.Snapshot(),
		Parameters:  d.parameters.Snapshot(),
		Reset:       d.reset,
		Encoding:    d.scheme,
	}
}

// AddTransition appends a row and returns its index.
func (d *Designer) AddTransition(t domain.Transition) int {
	i := d.transitions.Append(t)
	d.refresh()
	return i
}

// AddBlankTransition appends the editor's default row (IDLE -> IDLE when 1).
func (d *Designer) AddBlankTransition() int {
	return d.AddTransition(domain.NewTransition())
}

// UpdateTransition overwrites row i.
func (d *Designer) UpdateTransition(i int, t domain.Transition) error {
	if err := d.transitions.Set(i, t); err != nil {
		return err
	}
	d.refresh()
	return nil
}

// RemoveTransition deletes row i.
func (d *Designer) RemoveTransition(i int) error {
	if err := d.transitions.Remove(i); err != nil {
		return err
	}
	d.refresh()
	return nil
}

// Transition returns row i.
func (d *Designer) Transition(i int) (domain.Transition, error) {
	return d.transitions.Get(i)
}

// Transitions returns a copy of the transition table.
func (d *Designer) Transitions() []domain.Transition {
	return d.transitions.Snapshot()
}

// AddParameter appends a parameter row and returns its index.
func (d *Designer) AddParameter(p domain.Parameter) int {
	return d.parameters.Append(p)
}

// AddBlankParameter appends the editor's default parameter row.
func (d *Designer) AddBlankParameter() int {
	return d.AddParameter(domain.NewParameter())
}

// UpdateParameter overwrites parameter row i.
func (d *Designer) UpdateParameter(i int, p domain.Parameter) error {
	return d.parameters.Set(i, p)
}

// RemoveParameter deletes parameter row i.
func (d *Designer) RemoveParameter(i int) error {
	return d.parameters.Remove(i)
}

// Parameters returns a copy of the parameter table.
func (d *Designer) Parameters() []domain.Parameter {
	return d.parameters.Snapshot()
}

// States returns the current registry. Editors also use it as the
// completion list for the state columns.
func (d *Designer) States() []string {
	return slices.Clone(d.states)
}

// SetReset selects the reset state. Only registry members can be selected;
// "" clears the selection. It reports whether the selection was applied.
func (d *Designer) SetReset(state string) bool {
	if state != "" && !registry.Contains(d.states, state) {
		return false
	}
	d.reset = state
	return true
}

// Reset returns the selected reset state, or "".
func (d *Designer) Reset() string {
	return d.reset
}

// SetEncoding selects the scheme for subsequent generations.
func (d *Designer) SetEncoding(e domain.Encoding) {
	d.scheme = e
}

// Encoding returns the selected scheme.
func (d *Designer) Encoding() domain.Encoding {
	return d.scheme
}

// Conflicts returns one flag per transition row.
func (d *Designer) Conflicts() []bool {
	return conflict.Detect(d.transitions.Snapshot())
}

// Regenerate runs the full pipeline over the current tables.
func (d *Designer) Regenerate(opts ...verilog.Option) Result {
	return RegenerateProject(d.Snapshot(), opts...)
}

// Graph returns the projection handed to the layout engine.
func (d *Designer) Graph() graph.Graph {
	return graph.Project(d.States(), d.transitions.Snapshot(), d.reset)
}
