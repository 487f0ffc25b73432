package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/pkg/adapters/memory"
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/project"
	"github.com/aretw0/fsmgen/pkg/verilog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleDoc(t *testing.T) string {
	t.Helper()
	data, err := project.Encode(fsmgen.Example(), project.JSON)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateVerilog(t *testing.T) {
	s := NewServer(nil, verilog.WithClock("clk"))

	res, err := s.handleGenerate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"project": exampleDoc(t)})
	require.NoError(t, err)
	assert.Equal(t, []string{"S_IDLE", "S_ONE", "S_TEN"}, res.States)
	assert.Zero(t, res.Conflicts)
	assert.Contains(t, res.Verilog, "posedge clk")
}

func TestGenerateVerilog_MissingProject(t *testing.T) {
	s := NewServer(nil)

	_, err := s.handleGenerate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)

	_, err = s.handleGenerate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"project": "{"})
	assert.ErrorIs(t, err, project.ErrMalformed)
}

func TestEncodeStates(t *testing.T) {
	s := NewServer(nil)
	args := map[string]interface{}{"project": exampleDoc(t), "encoding": "Gray"}

	res, err := s.handleEncode(context.Background(), mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, "Gray", res.Scheme)
	assert.Equal(t, 2, res.Width)
	require.Len(t, res.Codes, 3)
	assert.Equal(t, StateCode{State: "S_TEN", Bits: "11", Literal: "2'd3"}, res.Codes[2])

	args["encoding"] = "Johnson"
	_, err = s.handleEncode(context.Background(), mcp.CallToolRequest{}, args)
	assert.ErrorIs(t, err, domain.ErrUnknownEncoding)
}

func TestDetectConflicts(t *testing.T) {
	s := NewServer(nil)
	doc := `{"fsm": [["A","B","x",""],["B","A","1",""],["A","C","x",""]]}`

	res, err := s.handleConflicts(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"project": doc})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, res.Flags)
	assert.Equal(t, []ConflictGroup{{Source: "A", Guard: "x", Rows: []int{0, 2}}}, res.Groups)
}

func TestGraphDot(t *testing.T) {
	s := NewServer(nil)
	ctx := context.Background()

	res, err := s.handleGraph(ctx, mcp.CallToolRequest{}, map[string]interface{}{"project": exampleDoc(t)})
	require.NoError(t, err)
	assert.Equal(t, "dot", res.Format)
	assert.Contains(t, res.Source, "doublecircle")

	res, err = s.handleGraph(ctx, mcp.CallToolRequest{}, map[string]interface{}{"project": exampleDoc(t), "format": "mermaid"})
	require.NoError(t, err)
	assert.Contains(t, res.Source, "graph LR")

	_, err = s.handleGraph(ctx, mcp.CallToolRequest{}, map[string]interface{}{"project": exampleDoc(t), "format": "png"})
	assert.Error(t, err)

	res, err = s.handleGraph(ctx, mcp.CallToolRequest{}, map[string]interface{}{"project": `{"fsm": []}`})
	require.NoError(t, err)
	assert.Empty(t, res.Source)
}

func TestStoredProjects(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "demo", fsmgen.Example()))
	s := NewServer(store)

	list, err := s.handleList(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"demo"}, list.Projects)

	res, err := s.handleGenerateStored(ctx, mcp.CallToolRequest{}, map[string]interface{}{"id": "demo"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Verilog)

	_, err = s.handleGenerateStored(ctx, mcp.CallToolRequest{}, map[string]interface{}{"id": "nope"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
