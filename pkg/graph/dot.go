package graph

import (
	"fmt"
	"strings"
)

// GenerateDOT produces a left-to-right Graphviz digraph. The reset state is
// drawn as a filled double circle; other states as light blue circles.
func GenerateDOT(g Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph FSM {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("\n")

	for _, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("  %s -> %s [label=%s];\n", quoteDOT(e.Source), quoteDOT(e.Target), quoteDOT(e.Label)))
	}
	if len(g.Edges) > 0 && len(g.Nodes) > 0 {
		sb.WriteString("\n")
	}

	for _, n := range g.Nodes {
		attrs := "shape=circle, style=filled, fillcolor=lightblue"
		if n.Reset {
			attrs = "shape=doublecircle, color=darkgreen, style=filled, fillcolor=honeydew"
		}
		sb.WriteString(fmt.Sprintf("  %s [%s];\n", quoteDOT(n.Name), attrs))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// quoteDOT returns s as a DOT double-quoted ID. Newlines become the "\n"
// centred line break escape.
func quoteDOT(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
