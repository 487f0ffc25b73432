package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  __                                 ", "#34d399"},
	{" / _|___ _ __ ___   __ _  ___ _ __   ", "#2dd4bf"},
	{"| |_/ __| '_ ` _ \\ / _` |/ _ \\ '_ \\  ", "#22d3ee"},
	{"|  _\\__ \\ | | | | | (_| |  __/ | | | ", "#38bdf8"},
	{"|_| |___/_| |_| |_|\\__, |\\___|_| |_| ", "#60a5fa"},
	{"                   |___/             ", "#818cf8"},
}

// PrintBanner writes the fsmgen banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  FSM to Verilog generator v"+version).Faint())
	fmt.Fprintln(w)
}
