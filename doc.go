/*
Package fsmgen turns a table of state transitions into synthesizable Verilog.

The user edits two ordered tables: transitions (current state, next state,
guard, output actions) and named constant parameters. From them fsmgen derives
the sorted state registry, flags conflicting rows, encodes every state under a
Binary, One-hot or Gray scheme and renders a clocked transition process plus
one clocked process per output signal.

# Concept

Everything is recomputed on every request. Regenerate is a pure function over
a snapshot of the tables: calling it twice on the same input yields
byte-identical text, and it never mutates its arguments. Designer wraps the
tables for interactive editors and keeps the registry and reset selection in
sync after each edit.

# Usage

	d := fsmgen.NewDesigner()
	d.AddTransition(domain.Transition{Source: "IDLE", Target: "S1", Guard: "go==1", Actions: "out=1"})
	d.AddTransition(domain.Transition{Source: "S1", Target: "IDLE", Guard: "done==1", Actions: "out=0"})
	d.SetReset("IDLE")

	res := d.Regenerate()
	fmt.Print(res.Text)

Guards and action values are opaque: they are split and trimmed but never
parsed, and they are substituted verbatim into the generated code.
*/
package fsmgen
