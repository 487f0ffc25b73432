package verilog

import (
	"strings"

	"github.com/aretw0/fsmgen/pkg/domain"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Assignment is one "signal = value" fragment of a transition's actions.
type Assignment struct {
	Signal string
	Value  string
}

// ParseActions splits an actions cell on ',' and ';' and each fragment on the
// first '='. Fragments without '=' or without a signal name are skipped.
func ParseActions(actions string) []Assignment {
	if !strings.Contains(actions, "=") {
		return nil
	}

	var out []Assignment
	for _, frag := range strings.FieldsFunc(actions, func(r rune) bool { return r == ',' || r == ';' }) {
		lhs, rhs, ok := strings.Cut(frag, "=")
		if !ok {
			continue
		}
		signal := strings.TrimSpace(lhs)
		if signal == "" {
			continue
		}
		out = append(out, Assignment{Signal: signal, Value: strings.TrimSpace(rhs)})
	}
	return out
}

// Rule drives a signal to Value while the machine is in Source and Guard holds.
type Rule struct {
	Source string
	Guard  string
	Value  string
}

// Output groups every rule that drives one signal.
type Output struct {
	Signal string
	Rules  []Rule
}

// GroupOutputs collects the rules of each signal. Signals are returned in order
// of first appearance scanning the table top to bottom; rules keep table order.
func GroupOutputs(transitions []domain.Transition) []Output {
	bySignal := orderedmap.New[string, []Rule]()

	for _, t := range transitions {
		for _, a := range ParseActions(t.Actions) {
			rules, _ := bySignal.Get(a.Signal)
			bySignal.Set(a.Signal, append(rules, Rule{Source: t.Source, Guard: t.Guard, Value: a.Value}))
		}
	}

	outputs := make([]Output, 0, bySignal.Len())
	for pair := bySignal.Oldest(); pair != nil; pair = pair.Next() {
		outputs = append(outputs, Output{Signal: pair.Key, Rules: pair.Value})
	}
	return outputs
}
