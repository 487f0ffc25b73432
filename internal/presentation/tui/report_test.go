package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTransitions_MarksConflicts(t *testing.T) {
	rows := []domain.Transition{
		{Source: "A", Target: "B", Guard: "x"},
		{Source: "A", Target: "C", Guard: "x", Actions: "y=1"},
		{Source: "B", Target: "A", Guard: "1"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTransitions(&buf, rows, []bool{true, true, false}, NewStyler(false)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "!0"))
	assert.True(t, strings.HasPrefix(lines[2], "!1"))
	assert.True(t, strings.HasPrefix(lines[3], " 2"))
	assert.Contains(t, lines[2], "y=1")
}

func TestWriteStates(t *testing.T) {
	codes, err := encoding.Encode([]string{"A", "B", "C"}, domain.OneHot)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteStates(&buf, codes, "B", NewStyler(false)))

	out := buf.String()
	assert.Contains(t, out, "encoding: One-hot, width: 3")
	assert.Contains(t, out, "B (reset)")
	assert.Contains(t, out, "3'b100")
}

func TestMarkdown(t *testing.T) {
	md := Markdown("fsm.json", "module x;")
	assert.Equal(t, "# fsm.json\n\n```verilog\nmodule x;\n```\n", md)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}
