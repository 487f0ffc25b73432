package fsmgen

import (
	"github.com/aretw0/fsmgen/pkg/conflict"
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/encoding"
	"github.com/aretw0/fsmgen/pkg/graph"
	"github.com/aretw0/fsmgen/pkg/registry"
	"github.com/aretw0/fsmgen/pkg/verilog"
)

// Result is everything derived from one snapshot of the tables.
type Result struct {
	// States is the sorted, deduplicated registry.
	States []string
	// Conflicts has one flag per transition row.
	Conflicts []bool
	// Encoded is the zero value when States is empty.
	Encoded encoding.Result
	// Text is the generated Verilog, or "" when States is empty.
	Text string
	// Reset is the effective reset selection ("" when it is not a state).
	Reset string
}

// HasConflicts reports whether any row was flagged.
func (r Result) HasConflicts() bool {
	return conflict.Count(r.Conflicts) > 0
}

// Regenerate runs the whole pipeline: registry, conflict detection, encoding
// and code generation. Inputs are read only.
func Regenerate(transitions []domain.Transition, params []domain.Parameter, reset string, scheme domain.Encoding, opts ...verilog.Option) Result {
	states := registry.States(transitions)
	res := Result{
		States:    states,
		Conflicts: conflict.Detect(transitions),
		Reset:     registry.ResolveReset(states, reset),
	}
	if len(states) == 0 {
		return res
	}

	codes, err := encoding.Encode(states, scheme)
	if err != nil {
		// Only an out-of-range scheme gets here; treat it like an empty design.
		return res
	}
	res.Encoded = codes
	res.Text = verilog.Generate(verilog.Input{
		Transitions: transitions,
		Parameters:  params,
		States:      states,
		Codes:       codes,
		Reset:       reset,
	}, opts...)
	return res
}

// RegenerateProject is Regenerate over a project snapshot.
func RegenerateProject(p *domain.Project, opts ...verilog.Option) Result {
	return Regenerate(p.Transitions, p.Parameters, p.Reset, p.Encoding, opts...)
}

// Graph projects a project for the external layout engine.
func Graph(p *domain.Project) graph.Graph {
	states := registry.States(p.Transitions)
	return graph.Project(states, p.Transitions, registry.ResolveReset(states, p.Reset))
}
