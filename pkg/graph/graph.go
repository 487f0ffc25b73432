// Package graph projects a transition table onto nodes and labelled edges and
// emits them as Graphviz DOT or Mermaid text.
//
// Layout and rasterisation are delegated to an external engine (see
// ports.GraphRenderer); this package never lays anything out itself.
package graph

import (
	"errors"

	"github.com/aretw0/fsmgen/pkg/domain"
)

// ErrRender wraps every failure reported by an external layout engine.
var ErrRender = errors.New("graph rendering failed")

// Node is one state. Reset marks the selected reset state.
type Node struct {
	Name  string `json:"name"`
	Reset bool   `json:"reset"`
}

// Edge is one transition row.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Graph is the input handed to a layout engine.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Empty reports whether there is nothing worth drawing (no edges).
func (g Graph) Empty() bool {
	return len(g.Edges) == 0
}

// Project builds the graph from the registry states (in registry order) and the
// table rows (in table order). Rows missing a source or target are left out.
// A reset that is not a state marks no node.
func Project(states []string, transitions []domain.Transition, reset string) Graph {
	g := Graph{
		Nodes: make([]Node, 0, len(states)),
		Edges: make([]Edge, 0, len(transitions)),
	}
	for _, s := range states {
		g.Nodes = append(g.Nodes, Node{Name: s, Reset: reset != "" && s == reset})
	}
	for _, t := range transitions {
		if t.Source == "" || t.Target == "" {
			continue
		}
		g.Edges = append(g.Edges, Edge{Source: t.Source, Target: t.Target, Label: EdgeLabel(t)})
	}
	return g
}

// EdgeLabel is the guard, followed by "\n/ " and the actions when there are any.
func EdgeLabel(t domain.Transition) string {
	if t.Actions == "" {
		return t.Guard
	}
	return t.Guard + "\n/ " + t.Actions
}
