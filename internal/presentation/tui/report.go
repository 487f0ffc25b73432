package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/encoding"
	"github.com/muesli/termenv"
)

// Styler colours report cells. The zero value prints plain text.
type Styler struct {
	profile termenv.Profile
	color   bool
}

// NewStyler detects the terminal profile when color is true.
func NewStyler(color bool) Styler {
	if !color {
		return Styler{profile: termenv.Ascii}
	}
	return Styler{profile: termenv.ColorProfile(), color: true}
}

func (s Styler) paint(text, hex string) string {
	if !s.color {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color(hex)).String()
}

// Conflict marks a flagged row.
func (s Styler) Conflict(text string) string { return s.paint(text, "#ef4444") }

// Reset marks the reset state.
func (s Styler) Reset(text string) string { return s.paint(text, "#22c55e") }

// WriteTransitions prints the transition table with one line per row,
// flagged rows highlighted and marked with "!".
func WriteTransitions(w io.Writer, rows []domain.Transition, flags []bool, s Styler) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSOURCE\tTARGET\tGUARD\tACTIONS\t")
	for i, t := range rows {
		mark := " "
		if i < len(flags) && flags[i] {
			mark = "!"
		}
		line := fmt.Sprintf("%s%d\t%s\t%s\t%s\t%s\t", mark, i, t.Source, t.Target, t.Guard, t.Actions)
		if mark == "!" {
			line = s.Conflict(line)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

// WriteStates prints the registry with each state's encoded value.
func WriteStates(w io.Writer, codes encoding.Result, reset string, s Styler) error {
	fmt.Fprintf(w, "encoding: %s, width: %d\n", codes.Scheme, codes.Width)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tBITS\tLITERAL\t")
	for _, c := range codes.Codes {
		name := c.State
		if name == reset {
			name = s.Reset(name + " (reset)")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", name, c.Bits, c.Literal)
	}
	return tw.Flush()
}
