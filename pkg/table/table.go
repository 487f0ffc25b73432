// Package table holds the ordered row collections edited by the user.
//
// A Table performs no validation: every derivation (state registry, conflict
// flags, encoding) happens in the packages that consume its Snapshot.
package table

import (
	"errors"
	"fmt"

	"github.com/aretw0/fsmgen/pkg/domain"
)

// ErrIndexOutOfRange is returned when a row index does not exist.
var ErrIndexOutOfRange = errors.New("row index out of range")

// Table is an ordered collection of rows. Order is insertion order.
// It is not safe for concurrent use.
type Table[T any] struct {
	rows []T
}

// Transitions is the transition table.
type Transitions = Table[domain.Transition]

// Parameters is the parameter table.
type Parameters = Table[domain.Parameter]

// New creates a table holding a copy of rows.
func New[T any](rows ...T) *Table[T] {
	t := &Table[T]{}
	t.Replace(rows)
	return t
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Append adds a row at the end and returns its index.
func (t *Table[T]) Append(row T) int {
	t.rows = append(t.rows, row)
	return len(t.rows) - 1
}

// Get returns the row at index i.
func (t *Table[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(t.rows) {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(t.rows))
	}
	return t.rows[i], nil
}

// Set overwrites the row at index i in place.
func (t *Table[T]) Set(i int, row T) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(t.rows))
	}
	t.rows[i] = row
	return nil
}

// Remove deletes the row at index i, shifting later rows up.
func (t *Table[T]) Remove(i int) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(t.rows))
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

// Replace swaps every row for a copy of rows (used by project load).
func (t *Table[T]) Replace(rows []T) {
	t.rows = append([]T(nil), rows...)
}

// Snapshot returns a copy of the rows that callers may keep or modify freely.
func (t *Table[T]) Snapshot() []T {
	return append([]T(nil), t.rows...)
}
