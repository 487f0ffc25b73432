package dsl

import (
	"testing"

	"github.com/aretw0/fsmgen/pkg/domain"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	p := New().
		Param("DIN_ONE", "1'b1", "Input 1").
		Reset("IDLE").
		Encoding(domain.Gray).
		From("IDLE").
		Branch("go == 1", "RUN").Do("busy=1").
		Stay("go == 0").
		From("RUN").
		Go("IDLE").Do("busy=0").Do("done=1").
		Build()

	if p.Reset != "IDLE" {
		t.Errorf("Expected reset 'IDLE', got '%s'", p.Reset)
	}
	if p.Encoding != domain.Gray {
		t.Errorf("Expected Gray encoding, got %v", p.Encoding)
	}
	if len(p.Parameters) != 1 || p.Parameters[0].Name != "DIN_ONE" {
		t.Fatalf("Unexpected parameters: %+v", p.Parameters)
	}

	want := []domain.Transition{
		{Source: "IDLE", Target: "RUN", Guard: "go == 1", Actions: "busy=1"},
		{Source: "IDLE", Target: "IDLE", Guard: "go == 0"},
		{Source: "RUN", Target: "IDLE", Guard: "1", Actions: "busy=0, done=1"},
	}
	if len(p.Transitions) != len(want) {
		t.Fatalf("Expected %d transitions, got %d", len(want), len(p.Transitions))
	}
	for i := range want {
		if p.Transitions[i] != want[i] {
			t.Errorf("transition %d = %+v, want %+v", i, p.Transitions[i], want[i])
		}
	}
}

func TestBuilder_DoWithoutRowIsIgnored(t *testing.T) {
	p := New().From("A").Do("x=1").Build()
	if len(p.Transitions) != 0 {
		t.Errorf("Expected no transitions, got %d", len(p.Transitions))
	}
}

func TestBuilder_BuildReturnsCopy(t *testing.T) {
	b := New()
	b.From("A").Go("B")
	first := b.Build()
	first.Transitions[0].Target = "Z"

	second := b.Build()
	if second.Transitions[0].Target != "B" {
		t.Errorf("Build should return an isolated copy, got target %q", second.Transitions[0].Target)
	}
}
