package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/fsmgen/pkg/domain"
)

// Store implements ports.ProjectStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Project
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Project),
	}
}

// Save stores a deep copy of the project.
func (s *Store) Save(ctx context.Context, id string, p *domain.Project) error {
	c := p.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = c
	return nil
}

// Load returns a copy so callers can't mutate stored rows through the pointer.
func (s *Store) Load(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.data[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return p.Clone(), nil
}

// Delete removes the project.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored ids in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}
