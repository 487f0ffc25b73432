/*
Package dsl provides a fluent Go API for writing FSM projects in code.

It is an alternative to editing the transition table by hand or loading a
project document, and is handy for tests and for generating families of
machines programmatically.

Example usage:

	b := dsl.New().
		Param("DIN_ONE", "1'b1", "Input 1").
		Reset("S_IDLE")

	b.From("S_IDLE").
		Branch("pi_data == DIN_ONE", "S_ONE").Do("po_match=0")

	b.From("S_ONE").
		Branch("pi_data == DIN_ZERO", "S_IDLE").Do("po_match=1")

	p := b.Build()
	res := fsmgen.Regenerate(p.Transitions, p.Parameters, p.Reset, p.Encoding)
*/
package dsl
