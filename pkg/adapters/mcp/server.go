package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/pkg/conflict"
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/graph"
	"github.com/aretw0/fsmgen/pkg/ports"
	"github.com/aretw0/fsmgen/pkg/project"
	"github.com/aretw0/fsmgen/pkg/verilog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ExampleURI is the resource holding the built-in example document.
const ExampleURI = "fsmgen://example"

// GenerateResponse is the result of generate_verilog.
type GenerateResponse struct {
	Verilog   string   `json:"verilog" jsonschema_description:"Generated Verilog, empty when the design has no states"`
	States    []string `json:"states" jsonschema_description:"Sorted state registry"`
	Conflicts int      `json:"conflicts" jsonschema_description:"Number of rows sharing a source and guard with another row"`
}

// StateCode is one encoded state.
type StateCode struct {
	State   string `json:"state"`
	Bits    string `json:"bits"`
	Literal string `json:"literal"`
}

// EncodeResponse is the result of encode_states.
type EncodeResponse struct {
	Scheme string      `json:"scheme" jsonschema_description:"Binary, One-hot or Gray"`
	Width  int         `json:"width" jsonschema_description:"Register width in bits"`
	Codes  []StateCode `json:"codes" jsonschema_description:"Codes in registry order"`
}

// ConflictGroup lists rows that share a source state and guard.
type ConflictGroup struct {
	Source string `json:"source"`
	Guard  string `json:"guard"`
	Rows   []int  `json:"rows"`
}

// ConflictResponse is the result of detect_conflicts.
type ConflictResponse struct {
	Flags  []bool          `json:"flags" jsonschema_description:"One flag per transition row"`
	Groups []ConflictGroup `json:"groups"`
}

// GraphResponse is the result of graph_dot.
type GraphResponse struct {
	Format string `json:"format"`
	Source string `json:"source" jsonschema_description:"Graph text, empty when there are no edges"`
}

// ProjectList is the result of list_projects.
type ProjectList struct {
	Projects []string `json:"projects"`
}

// Server exposes the generation pipeline as MCP tools.
type Server struct {
	store     ports.ProjectStore
	generator []verilog.Option
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server. store may be nil, in which case the
// stored-project tools are not registered.
func NewServer(store ports.ProjectStore, opts ...verilog.Option) *Server {
	s := &Server{
		store:     store,
		generator: opts,
		mcpServer: server.NewMCPServer("fsmgen-mcp", strings.TrimSpace(fsmgen.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

const projectHelp = `Project document as JSON: {"reset": "S0", "enc": "Binary"|"One-hot"|"Gray", "fsm": [[source, target, guard, actions], ...], "params": [[name, value, note], ...]}`

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("generate_verilog",
		mcp.WithDescription("Generate the Verilog state machine for a project document."),
		mcp.WithString("project", mcp.Required(), mcp.Description(projectHelp)),
		mcp.WithOutputSchema[GenerateResponse](),
	), mcp.NewStructuredToolHandler(s.handleGenerate))

	s.mcpServer.AddTool(mcp.NewTool("encode_states",
		mcp.WithDescription("List the states of a project with their encoded values."),
		mcp.WithString("project", mcp.Required(), mcp.Description(projectHelp)),
		mcp.WithString("encoding", mcp.Description("Override the document's scheme: Binary, One-hot or Gray")),
		mcp.WithOutputSchema[EncodeResponse](),
	), mcp.NewStructuredToolHandler(s.handleEncode))

	s.mcpServer.AddTool(mcp.NewTool("detect_conflicts",
		mcp.WithDescription("Find transition rows that leave the same state under the same guard."),
		mcp.WithString("project", mcp.Required(), mcp.Description(projectHelp)),
		mcp.WithOutputSchema[ConflictResponse](),
	), mcp.NewStructuredToolHandler(s.handleConflicts))

	s.mcpServer.AddTool(mcp.NewTool("graph_dot",
		mcp.WithDescription("Render the state diagram as Graphviz DOT or Mermaid text."),
		mcp.WithString("project", mcp.Required(), mcp.Description(projectHelp)),
		mcp.WithString("format", mcp.Description("dot (default) or mermaid")),
		mcp.WithOutputSchema[GraphResponse](),
	), mcp.NewStructuredToolHandler(s.handleGraph))

	if s.store == nil {
		return
	}

	s.mcpServer.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List the ids of stored projects."),
		mcp.WithOutputSchema[ProjectList](),
	), mcp.NewStructuredToolHandler(s.handleList))

	s.mcpServer.AddTool(mcp.NewTool("generate_stored",
		mcp.WithDescription("Generate the Verilog for a stored project."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Project id")),
		mcp.WithOutputSchema[GenerateResponse](),
	), mcp.NewStructuredToolHandler(s.handleGenerateStored))
}

// projectArg decodes the "project" argument.
func projectArg(args map[string]interface{}) (*domain.Project, error) {
	doc, _ := args["project"].(string)
	if strings.TrimSpace(doc) == "" {
		return nil, errors.New("project argument is required")
	}
	return project.Decode([]byte(doc), project.JSON)
}

func (s *Server) generate(p *domain.Project) GenerateResponse {
	res := fsmgen.RegenerateProject(p, s.generator...)
	return GenerateResponse{
		Verilog:   res.Text,
		States:    res.States,
		Conflicts: conflict.Count(res.Conflicts),
	}
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	p, err := projectArg(args)
	if err != nil {
		return GenerateResponse{}, err
	}
	return s.generate(p), nil
}

func (s *Server) handleEncode(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EncodeResponse, error) {
	p, err := projectArg(args)
	if err != nil {
		return EncodeResponse{}, err
	}
	if name, ok := args["encoding"].(string); ok && name != "" {
		if p.Encoding, err = domain.ParseEncoding(name); err != nil {
			return EncodeResponse{}, err
		}
	}

	res := fsmgen.RegenerateProject(p, s.generator...)
	out := EncodeResponse{
		Scheme: p.Encoding.String(),
		Width:  res.Encoded.Width,
		Codes:  make([]StateCode, 0, len(res.Encoded.Codes)),
	}
	for _, c := range res.Encoded.Codes {
		out.Codes = append(out.Codes, StateCode{State: c.State, Bits: c.Bits, Literal: c.Literal})
	}
	return out, nil
}

func (s *Server) handleConflicts(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConflictResponse, error) {
	p, err := projectArg(args)
	if err != nil {
		return ConflictResponse{}, err
	}

	out := ConflictResponse{
		Flags:  conflict.Detect(p.Transitions),
		Groups: []ConflictGroup{},
	}
	for _, g := range conflict.Groups(p.Transitions) {
		out.Groups = append(out.Groups, ConflictGroup{Source: g.Key.Source, Guard: g.Key.Guard, Rows: g.Rows})
	}
	return out, nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GraphResponse, error) {
	p, err := projectArg(args)
	if err != nil {
		return GraphResponse{}, err
	}

	format, _ := args["format"].(string)
	if format == "" {
		format = "dot"
	}

	g := fsmgen.Graph(p)
	out := GraphResponse{Format: format}
	if g.Empty() {
		return out, nil
	}
	switch format {
	case "dot":
		out.Source = graph.GenerateDOT(g)
	case "mermaid":
		out.Source = graph.GenerateMermaid(g)
	default:
		return GraphResponse{}, fmt.Errorf("unsupported format %q", format)
	}
	return out, nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProjectList, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return ProjectList{}, fmt.Errorf("list failed: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ProjectList{Projects: ids}, nil
}

func (s *Server) handleGenerateStored(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	id, _ := args["id"].(string)
	p, err := s.store.Load(ctx, id)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("load %q failed: %w", id, err)
	}
	return s.generate(p), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(ExampleURI, "Example project (1 0 1 sequence detector)",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := project.Encode(fsmgen.Example(), project.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to encode example: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ExampleURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
