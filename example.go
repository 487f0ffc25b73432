package fsmgen

import (
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/dsl"
)

// Example returns the built-in demonstration project: a detector that raises
// po_match for one cycle after the serial input pi_data shows "1 0 1".
func Example() *domain.Project {
	b := dsl.New().
		Param("DIN_ZERO", "1'b0", "Input 0").
		Param("DIN_ONE", "1'b1", "Input 1").
		Reset("S_IDLE").
		Encoding(domain.Binary)

	b.From("S_IDLE").
		Branch("pi_data == DIN_ONE", "S_ONE").Do("po_match=0").
		Branch("pi_data == DIN_ZERO", "S_IDLE").Do("po_match=0")

	b.From("S_ONE").
		Branch("pi_data == DIN_ZERO", "S_TEN").Do("po_match=0").
		Branch("pi_data == DIN_ONE", "S_ONE").Do("po_match=0")

	b.From("S_TEN").
		Branch("pi_data == DIN_ONE", "S_IDLE").Do("po_match=1").
		Branch("pi_data == DIN_ZERO", "S_IDLE").Do("po_match=0")

	return b.Build()
}
