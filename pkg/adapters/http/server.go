package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/pkg/adapters/memory"
	"github.com/aretw0/fsmgen/pkg/conflict"
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/graph"
	"github.com/aretw0/fsmgen/pkg/ports"
	"github.com/aretw0/fsmgen/pkg/project"
	"github.com/aretw0/fsmgen/pkg/verilog"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxBodyBytes = 1 << 20
	lockTTL      = 10 * time.Second
)

// Server exposes the generation pipeline and a project store over HTTP.
type Server struct {
	Store     ports.ProjectStore
	Locker    ports.Locker
	Renderer  ports.GraphRenderer
	Streams   *StreamManager
	Metrics   *Metrics
	Generator []verilog.Option
	Logger    *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithStore sets the project store (in-memory by default).
func WithStore(store ports.ProjectStore) Option {
	return func(s *Server) { s.Store = store }
}

// WithLocker sets the locker guarding row appends. Use a Redis locker when
// several replicas share one store.
func WithLocker(l ports.Locker) Option {
	return func(s *Server) { s.Locker = l }
}

// WithRenderer enables image formats on /graph.
func WithRenderer(r ports.GraphRenderer) Option {
	return func(s *Server) { s.Renderer = r }
}

// WithGeneratorOptions sets the clock/reset/register names used for every generation.
func WithGeneratorOptions(opts ...verilog.Option) Option {
	return func(s *Server) { s.Generator = opts }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// New creates a server with in-memory defaults.
func New(opts ...Option) *Server {
	s := &Server{
		Store:   memory.NewStore(),
		Locker:  memory.NewLocker(),
		Streams: NewStreamManager(),
		Metrics: NewMetrics(),
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler is New(opts...).Handler().
func NewHandler(opts ...Option) http.Handler {
	return New(opts...).Handler()
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())

	r.Post("/generate", s.Generate)
	r.Post("/analyze", s.Analyze)
	r.Post("/graph", s.Graph)

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.ListProjects)
		r.Post("/", s.CreateProject)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetProject)
			r.Put("/", s.PutProject)
			r.Delete("/", s.DeleteProject)
			r.Get("/verilog", s.GetProjectVerilog)
			r.Post("/transitions", s.AppendTransition)
			r.Post("/parameters", s.AppendParameter)
			r.Get("/events", s.SubscribeEvents)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// generate runs the pipeline and records metrics.
func (s *Server) generate(p *domain.Project, endpoint string) fsmgen.Result {
	start := time.Now()
	res := fsmgen.RegenerateProject(p, s.Generator...)
	s.Metrics.Duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if res.Text != "" {
		s.Metrics.Generations.WithLabelValues(p.Encoding.String()).Inc()
	}
	s.Metrics.ConflictingRows.Set(float64(conflict.Count(res.Conflicts)))
	return res
}

// readProject decodes a project document body. YAML is accepted when the
// Content-Type says so.
func readProject(w http.ResponseWriter, r *http.Request) (*domain.Project, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", project.ErrMalformed, err)
	}
	format := project.JSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = project.YAML
	}
	return project.Decode(data, format)
}

// fail maps pipeline and store errors to status codes.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, project.ErrMalformed), errors.Is(err, domain.ErrUnknownEncoding), errors.Is(err, domain.ErrInvalidProjectID):
		status = http.StatusBadRequest
	case errors.Is(err, graph.ErrRender):
		status = http.StatusBadGateway
	}

	if status >= 500 {
		s.Logger.Error(op+" failed", "path", r.URL.Path, "err", err)
	} else {
		s.Logger.Warn(op+" rejected", "path", r.URL.Path, "status", status, "err", err)
	}
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeVerilog(w http.ResponseWriter, text string) {
	if text == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "fsmgen-http",
		"version": strings.TrimSpace(fsmgen.Version),
	})
}

// Generate handles POST /generate. An empty design answers 204.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	p, err := readProject(w, r)
	if err != nil {
		s.fail(w, r, "Generate", err)
		return
	}
	s.writeVerilog(w, s.generate(p, "generate").Text)
}

// Analyze handles POST /analyze.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	p, err := readProject(w, r)
	if err != nil {
		s.fail(w, r, "Analyze", err)
		return
	}
	s.writeJSON(w, http.StatusOK, mapAnalysis(p, s.generate(p, "analyze")))
}

var imageTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"pdf": "application/pdf",
}

// Graph handles POST /graph?format=dot|mermaid|svg|png|...
// Image formats need a Renderer. A design without edges answers 204.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	p, err := readProject(w, r)
	if err != nil {
		s.fail(w, r, "Graph", err)
		return
	}

	g := fsmgen.Graph(p)
	if g.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		_, _ = io.WriteString(w, graph.GenerateDOT(g))
		return
	case "mermaid":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, graph.GenerateMermaid(g))
		return
	}

	if s.Renderer == nil {
		http.Error(w, "image rendering is not configured", http.StatusNotImplemented)
		return
	}
	out, err := s.Renderer.Render(r.Context(), graph.GenerateDOT(g), format)
	if err != nil {
		s.fail(w, r, "Graph", err)
		return
	}
	ct, ok := imageTypes[format]
	if !ok {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	_, _ = w.Write(out)
}

// ListProjects handles GET /projects.
func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, r, "List", err)
		return
	}
	s.writeJSON(w, http.StatusOK, ListResponse{Projects: orEmpty(ids)})
}

// CreateProject handles POST /projects, allocating a new id.
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	p, err := readProject(w, r)
	if err != nil {
		s.fail(w, r, "Create", err)
		return
	}
	id := uuid.NewString()
	if err := s.Store.Save(r.Context(), id, p); err != nil {
		s.fail(w, r, "Create", err)
		return
	}
	s.Logger.Info("project created", "project_id", id, "rows", len(p.Transitions))
	w.Header().Set("Location", "/projects/"+id)
	s.writeJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

// GetProject handles GET /projects/{id}, answering with the persisted document.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.Store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, "Get", err)
		return
	}
	data, err := project.Encode(p, project.JSON)
	if err != nil {
		s.fail(w, r, "Get", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// PutProject handles PUT /projects/{id}.
func (s *Server) PutProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := readProject(w, r)
	if err != nil {
		s.fail(w, r, "Put", err)
		return
	}
	if err := s.Store.Save(r.Context(), id, p); err != nil {
		s.fail(w, r, "Put", err)
		return
	}
	s.publish(id, p)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProject handles DELETE /projects/{id}.
func (s *Server) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, "Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProjectVerilog handles GET /projects/{id}/verilog.
func (s *Server) GetProjectVerilog(w http.ResponseWriter, r *http.Request) {
	p, err := s.Store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, "Verilog", err)
		return
	}
	s.writeVerilog(w, s.generate(p, "project").Text)
}

// AppendTransition handles POST /projects/{id}/transitions. Fields missing
// from the body take the editor defaults (IDLE -> IDLE when 1).
func (s *Server) AppendTransition(w http.ResponseWriter, r *http.Request) {
	row := domain.NewTransition()
	s.appendRow(w, r, "AppendTransition", &row, func(p *domain.Project) {
		p.Transitions = append(p.Transitions, row)
	})
}

// AppendParameter handles POST /projects/{id}/parameters.
func (s *Server) AppendParameter(w http.ResponseWriter, r *http.Request) {
	row := domain.NewParameter()
	s.appendRow(w, r, "AppendParameter", &row, func(p *domain.Project) {
		p.Parameters = append(p.Parameters, row)
	})
}

// appendRow decodes into row, then load-modify-saves the project under the
// project lock and answers with the new analysis.
func (s *Server) appendRow(w http.ResponseWriter, r *http.Request, op string, row any, apply func(*domain.Project)) {
	id := chi.URLParam(r, "id")
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(row); err != nil && !errors.Is(err, io.EOF) {
		s.fail(w, r, op, fmt.Errorf("%w: %v", project.ErrMalformed, err))
		return
	}

	unlock, err := s.Locker.Lock(r.Context(), id, lockTTL)
	if err != nil {
		s.fail(w, r, op, err)
		return
	}
	defer func() {
		if err := unlock(r.Context()); err != nil {
			s.Logger.Warn("unlock failed", "project_id", id, "err", err)
		}
	}()

	p, err := s.Store.Load(r.Context(), id)
	if err != nil {
		s.fail(w, r, op, err)
		return
	}
	apply(p)
	if err := s.Store.Save(r.Context(), id, p); err != nil {
		s.fail(w, r, op, err)
		return
	}

	res := s.publish(id, p)
	s.writeJSON(w, http.StatusOK, mapAnalysis(p, res))
}

// publish regenerates a saved project and broadcasts the analysis.
func (s *Server) publish(id string, p *domain.Project) fsmgen.Result {
	res := s.generate(p, "project")
	if s.Streams.Subscribers(id) == 0 {
		return res
	}
	data, err := json.Marshal(mapAnalysis(p, res))
	if err != nil {
		s.Logger.Error("event encode failed", "project_id", id, "err", err)
		return res
	}
	s.Streams.Broadcast(id, string(data))
	return res
}

// SubscribeEvents handles GET /projects/{id}/events (SSE). Every save of the
// project pushes its regenerated analysis.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	id := chi.URLParam(r, "id")
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()
	s.Logger.Info("SSE: Subscribing to project updates", "project_id", id)

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE: Client disconnected", "project_id", id)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
