// Package graphviz renders DOT text by running the Graphviz `dot` executable.
package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/aretw0/fsmgen/pkg/graph"
)

// DefaultBinary is looked up on PATH.
const DefaultBinary = "dot"

// DefaultTimeout bounds one layout run.
const DefaultTimeout = 30 * time.Second

// Output formats become a -T flag, so only plain names like "svg" or
// "png:cairo" are accepted.
var formatPattern = regexp.MustCompile(`^[a-z0-9]+(:[a-z0-9]+)*$`)

// Renderer implements ports.GraphRenderer.
type Renderer struct {
	binary  string
	timeout time.Duration
	args    []string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithBinary sets the executable (name on PATH or absolute path).
func WithBinary(path string) Option {
	return func(r *Renderer) {
		if path != "" {
			r.binary = path
		}
	}
}

// WithTimeout bounds each run. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithArgs adds extra flags placed before -T, e.g. "-Gdpi=150".
func WithArgs(args ...string) Option {
	return func(r *Renderer) {
		r.args = append(r.args, args...)
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Available reports whether the executable can be found.
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// Render pipes dot into the executable and returns its stdout.
// Every failure wraps graph.ErrRender.
func (r *Renderer) Render(ctx context.Context, dot string, format string) ([]byte, error) {
	if !formatPattern.MatchString(format) {
		return nil, fmt.Errorf("%w: unsupported format %q", graph.ErrRender, format)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := append(append([]string(nil), r.args...), "-T"+format)
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = strings.NewReader(dot)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v: %s", graph.ErrRender, r.binary, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
