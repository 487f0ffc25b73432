package verilog

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/encoding"
	"github.com/aretw0/fsmgen/pkg/registry"
)

const (
	banner      = "/*===================================== FSM ======================================*/"
	nameColumn  = 15
	indentCase  = "        "
	indentRule  = "            "
	indentState = "                "
)

// Input is everything one generation pass reads. States and Codes must come
// from the same registry (Codes.Codes[i] encodes States[i]).
type Input struct {
	Transitions []domain.Transition
	Parameters  []domain.Parameter
	States      []string
	Codes       encoding.Result
	// Reset is the selected reset state. When it is not one of States the
	// transition process resets to FallbackState instead.
	Reset string
}

// Generate renders the Verilog text. It returns "" when there are no states.
// The output depends only on in, so repeated calls are byte-identical.
func Generate(in Input, opts ...Option) string {
	if len(in.States) == 0 {
		return ""
	}
	o := newOptions(opts)

	var sb strings.Builder
	writeDeclarations(&sb, in, o)
	writeTransitionProcess(&sb, in, o)
	for _, out := range GroupOutputs(in.Transitions) {
		writeOutputProcess(&sb, out, o)
	}

	// Every block ends with a blank separator line; the text ends after the last "end".
	return strings.TrimSuffix(sb.String(), "\n")
}

func stateName(s string) string {
	return strings.ToUpper(s)
}

func writeDeclarations(sb *strings.Builder, in Input, o options) {
	sb.WriteString(banner + "\n\n")
	sb.WriteString("/*== Encoding ==*/\n")

	for _, p := range in.Parameters {
		if p.Name == "" {
			continue
		}
		fmt.Fprintf(sb, "parameter   %-*s = %s;\n", nameColumn, p.Name, p.Value)
	}
	sb.WriteString("\n")

	for i, s := range in.States {
		fmt.Fprintf(sb, "parameter   %-*s = %s;\n", nameColumn, stateName(s), in.Codes.Codes[i].Literal)
	}
	fmt.Fprintf(sb, "reg [%d:0] %s;\n\n", in.Codes.Width-1, o.register)
}

func writeTransitionProcess(sb *strings.Builder, in Input, o options) {
	reset := FallbackState
	if registry.Contains(in.States, in.Reset) {
		reset = stateName(in.Reset)
	}

	sb.WriteString("/*== State Transition ==*/\n")
	fmt.Fprintf(sb, "always@(posedge %s or negedge %s) begin\n", o.clock, o.reset)
	fmt.Fprintf(sb, "    if(%s == 1'b0)\n", o.reset)
	fmt.Fprintf(sb, "        %s <= %s;\n", o.register, reset)
	fmt.Fprintf(sb, "    else case(%s)\n", o.register)

	for _, st := range in.States {
		fmt.Fprintf(sb, "%s%s: begin\n", indentCase, stateName(st))

		first := true
		for _, t := range in.Transitions {
			if t.Source != st {
				continue
			}
			kw := "else if"
			if first {
				kw = "if"
			}
			fmt.Fprintf(sb, "%s%s(%s)\n", indentRule, kw, t.Guard)
			fmt.Fprintf(sb, "%s%s <= %s;\n", indentState, o.register, stateName(t.Target))
			first = false
		}
		// States without outgoing rows keep an empty body.
		if !first {
			fmt.Fprintf(sb, "%selse\n", indentRule)
			fmt.Fprintf(sb, "%s%s <= %s;\n", indentState, o.register, stateName(st))
		}

		fmt.Fprintf(sb, "%send\n", indentCase)
	}

	fmt.Fprintf(sb, "%sdefault: %s <= %s;\n", indentCase, o.register, FallbackState)
	sb.WriteString("    endcase\n")
	sb.WriteString("end\n\n")
}

func writeOutputProcess(sb *strings.Builder, out Output, o options) {
	fmt.Fprintf(sb, "// Output: %s\n", out.Signal)
	fmt.Fprintf(sb, "always@(posedge %s or negedge %s) begin\n", o.clock, o.reset)
	fmt.Fprintf(sb, "    if(%s == 1'b0)\n", o.reset)
	fmt.Fprintf(sb, "        %s <= 'b0;\n", out.Signal)

	for _, r := range out.Rules {
		fmt.Fprintf(sb, "    else if((%s == %s) && (%s))\n", o.register, stateName(r.Source), r.Guard)
		fmt.Fprintf(sb, "        %s <= %s;\n", out.Signal, r.Value)
	}

	sb.WriteString("    else\n")
	fmt.Fprintf(sb, "        %s <= %s;\n", out.Signal, out.Signal)
	sb.WriteString("end\n\n")
}
