// Package registry derives the set of state names from the transition table.
package registry

import (
	"slices"

	"github.com/aretw0/fsmgen/pkg/domain"
)

// States returns every non-empty Source and Target value, deduplicated and
// sorted lexicographically (byte order, case sensitive).
//
// The order fixes the encoding index of each state, so encoded values stay
// stable across regenerations as long as the set of names is unchanged.
// The registry is recomputed from scratch on every call.
func States(transitions []domain.Transition) []string {
	seen := make(map[string]struct{}, len(transitions)*2)
	states := make([]string, 0, len(transitions)*2)

	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		states = append(states, name)
	}

	for _, t := range transitions {
		add(t.Source)
		add(t.Target)
	}

	slices.Sort(states)
	return states
}

// Contains reports whether name is a registered state.
func Contains(states []string, name string) bool {
	if name == "" {
		return false
	}
	_, found := slices.BinarySearch(states, name)
	return found
}

// ResolveReset re-validates a reset selection against the registry.
// It returns reset unchanged when it is still a state, otherwise "" (cleared).
func ResolveReset(states []string, reset string) string {
	if Contains(states, reset) {
		return reset
	}
	return ""
}

// Index returns the registry position of name, or -1.
func Index(states []string, name string) int {
	i, found := slices.BinarySearch(states, name)
	if !found {
		return -1
	}
	return i
}
