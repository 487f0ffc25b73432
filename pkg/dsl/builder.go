package dsl

import "github.com/aretw0/fsmgen/pkg/domain"

// Builder accumulates transition and parameter rows in call order.
type Builder struct {
	project domain.Project
}

// New creates an empty builder (Binary encoding, no reset).
func New() *Builder {
	return &Builder{}
}

// Param appends a parameter row.
func (b *Builder) Param(name, value, note string) *Builder {
	b.project.Parameters = append(b.project.Parameters, domain.Parameter{Name: name, Value: value, Note: note})
	return b
}

// Reset selects the reset state.
func (b *Builder) Reset(state string) *Builder {
	b.project.Reset = state
	return b
}

// Encoding selects the encoding scheme.
func (b *Builder) Encoding(e domain.Encoding) *Builder {
	b.project.Encoding = e
	return b
}

// From starts adding rows whose source is state.
func (b *Builder) From(state string) *StateBuilder {
	return &StateBuilder{source: state, builder: b}
}

// Build returns a copy of the accumulated project.
func (b *Builder) Build() *domain.Project {
	return b.project.Clone()
}
