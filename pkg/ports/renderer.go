package ports

import "context"

// GraphRenderer lays out and rasterises a DOT graph.
// Failures wrap graph.ErrRender and never affect the design model.
type GraphRenderer interface {
	Render(ctx context.Context, dot string, format string) ([]byte, error)
}
