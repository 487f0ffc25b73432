package ports

import (
	"context"

	"github.com/aretw0/fsmgen/pkg/domain"
)

// ProjectStore persists design projects under caller-chosen ids.
type ProjectStore interface {
	// Save stores a copy of the project, replacing any previous one.
	Save(ctx context.Context, id string, p *domain.Project) error

	// Load retrieves a project.
	// Returns domain.ErrProjectNotFound if the id does not exist.
	Load(ctx context.Context, id string) (*domain.Project, error)

	// Delete removes a project. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the stored ids.
	List(ctx context.Context) ([]string, error)
}
