package graph

import (
	"fmt"
	"strings"
)

// GenerateMermaid produces a Mermaid flowchart (graph LR).
// The reset state is drawn as a double circle; other states as circles.
func GenerateMermaid(g Graph) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, n := range g.Nodes {
		safeID := sanitizeMermaidID(n.Name)
		opener, closer := "((", "))"
		if n.Reset {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaid(n.Name), closer))
	}

	for _, e := range g.Edges {
		arrow := "-->"
		if e.Label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", escapeMermaid(e.Label))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(e.Source), arrow, sanitizeMermaidID(e.Target)))
	}

	for _, n := range g.Nodes {
		if n.Reset {
			sb.WriteString("\n    classDef reset fill:#f0fff0,stroke:#006400,stroke-width:2px,color:#000;\n")
			sb.WriteString(fmt.Sprintf("    class %s reset;\n", sanitizeMermaidID(n.Name)))
		}
	}

	return sb.String()
}

// escapeMermaid swaps characters that would end a quoted Mermaid label.
func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", "<br/>")
}

func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return "s_" + sb.String()
}
