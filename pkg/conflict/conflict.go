// Package conflict flags transitions that are non-deterministic: two or more
// rows leaving the same source state under the same guard text.
//
// Detection is an annotation pass only. It never reorders, removes or rejects
// rows; generation proceeds and the first matching row wins at run time.
package conflict

import (
	"github.com/aretw0/fsmgen/pkg/domain"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Group is a set of rows sharing one ConflictKey.
type Group struct {
	Key  domain.ConflictKey
	Rows []int
}

// Detect returns one flag per transition, true when the row belongs to a
// conflicting group. Rows with an empty source or guard are never flagged.
func Detect(transitions []domain.Transition) []bool {
	flags := make([]bool, len(transitions))
	for _, g := range Groups(transitions) {
		for _, row := range g.Rows {
			flags[row] = true
		}
	}
	return flags
}

// Groups returns the conflicting groups in order of first appearance.
func Groups(transitions []domain.Transition) []Group {
	byKey := orderedmap.New[domain.ConflictKey, []int]()
	for i, t := range transitions {
		if t.Source == "" || t.Guard == "" {
			continue
		}
		rows, _ := byKey.Get(t.Key())
		byKey.Set(t.Key(), append(rows, i))
	}

	var groups []Group
	for pair := byKey.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) > 1 {
			groups = append(groups, Group{Key: pair.Key, Rows: pair.Value})
		}
	}
	return groups
}

// Count returns the number of flagged rows.
func Count(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
