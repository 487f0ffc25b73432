package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Markdown wraps generated code in a fenced verilog block under a heading.
func Markdown(title, code string) string {
	return "# " + title + "\n\n```verilog\n" + code + "\n```\n"
}

// Preview renders code with syntax highlighting.
func Preview(title, code string) (string, error) {
	return NewRenderer()(Markdown(title, code))
}
