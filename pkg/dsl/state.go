package dsl

import "github.com/aretw0/fsmgen/pkg/domain"

// StateBuilder appends rows for one source state.
type StateBuilder struct {
	source  string
	builder *Builder
	last    int
	added   bool
}

// Branch adds a guarded transition to target.
func (s *StateBuilder) Branch(guard, target string) *StateBuilder {
	rows := &s.builder.project.Transitions
	*rows = append(*rows, domain.Transition{Source: s.source, Target: target, Guard: guard})
	s.last = len(*rows) - 1
	s.added = true
	return s
}

// Go adds an unconditional transition (guard "1") to target.
func (s *StateBuilder) Go(target string) *StateBuilder {
	return s.Branch(domain.DefaultGuard, target)
}

// Stay adds a guarded self-loop.
func (s *StateBuilder) Stay(guard string) *StateBuilder {
	return s.Branch(guard, s.source)
}

// Do sets the output actions of the row added last. Multiple calls are joined with ", ".
func (s *StateBuilder) Do(actions string) *StateBuilder {
	if !s.added {
		return s
	}
	rows := s.builder.project.Transitions
	if rows[s.last].Actions != "" {
		actions = rows[s.last].Actions + ", " + actions
	}
	rows[s.last].Actions = actions
	return s
}

// From switches to another source state on the same builder.
func (s *StateBuilder) From(state string) *StateBuilder {
	return s.builder.From(state)
}

// Build is a shortcut for the parent builder's Build.
func (s *StateBuilder) Build() *domain.Project {
	return s.builder.Build()
}
