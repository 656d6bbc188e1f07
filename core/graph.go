// SPDX-License-Identifier: MIT
// Package: routepuzzle/core
//
// graph.go - NewGraph (the graph builder) and read-only accessors.
//
// Determinism:
//   • No randomness; identical nodes always yield identical weights.
//   • Edges() order is lexicographic by (u,v), u<v.

package core

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/planar"
)

const methodNewGraph = "NewGraph"

// NewGraph builds the complete Euclidean graph over nodes.
//
// Implementation:
//   - Stage 1: validate count, identities and coordinates.
//   - Stage 2: copy nodes so the caller keeps ownership of its slice.
//   - Stage 3: fill the upper triangle with planar.Distance and mirror it.
//
// Errors:
//   - ErrTooFewNodes, ErrNodeIDMismatch, ErrBadPosition (wrapped with context).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewGraph(nodes []Node) (*Graph, error) {
	var n = len(nodes)
	if n < MinNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodNewGraph, n, MinNodes, ErrTooFewNodes)
	}

	var i int
	for i = 0; i < n; i++ {
		if nodes[i].ID != NodeID(i) {
			return nil, fmt.Errorf("%s: nodes[%d].ID=%d: %w", methodNewGraph, i, nodes[i].ID, ErrNodeIDMismatch)
		}
		if !finite(nodes[i].Pos.X()) || !finite(nodes[i].Pos.Y()) {
			return nil, fmt.Errorf("%s: nodes[%d]=%v: %w", methodNewGraph, i, nodes[i].Pos, ErrBadPosition)
		}
	}

	g := &Graph{
		nodes:   append([]Node(nil), nodes...),
		n:       n,
		weights: make([]float64, n*n),
	}

	var (
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = planar.Distance(g.nodes[i].Pos, g.nodes[j].Pos)
			g.weights[i*n+j] = d
			g.weights[j*n+i] = d
		}
	}

	return g, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return g.n }

// EdgeCount returns n·(n−1)/2, the number of unordered pairs.
func (g *Graph) EdgeCount() int { return g.n * (g.n - 1) / 2 }

// Nodes returns a copy of the node set in identity order.
// Complexity: O(n).
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Node returns the node with the given identity.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.has(id) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// Weight returns the Euclidean distance between u and v; Weight(u,u) is 0.
// Complexity: O(1).
func (g *Graph) Weight(u, v NodeID) (float64, error) {
	if !g.has(u) || !g.has(v) {
		return 0, fmt.Errorf("Weight(%d,%d): %w", u, v, ErrNodeNotFound)
	}

	return g.weights[int(u)*g.n+int(v)], nil
}

// Edges returns every unordered pair once, ordered lexicographically by (U,V).
//
// Complexity: O(n²) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())

	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			out = append(out, Edge{U: NodeID(i), V: NodeID(j), Weight: g.weights[i*g.n+j]})
		}
	}

	return out
}

// Endpoints selects start (minimum X) and end (maximum X).
// The lowest identity wins ties on either side.
//
// Errors:
//   - ErrDegenerateEndpoints when every node shares one X coordinate.
//
// Complexity: O(n).
func (g *Graph) Endpoints() (start, end NodeID, err error) {
	var i int
	for i = 1; i < g.n; i++ {
		if g.nodes[i].Pos.X() < g.nodes[start].Pos.X() {
			start = NodeID(i)
		}
		if g.nodes[i].Pos.X() > g.nodes[end].Pos.X() {
			end = NodeID(i)
		}
	}
	if start == end {
		return 0, 0, fmt.Errorf("Endpoints: x=%v: %w", g.nodes[start].Pos.X(), ErrDegenerateEndpoints)
	}

	return start, end, nil
}

// has reports whether id addresses a stored node.
func (g *Graph) has(id NodeID) bool {
	return id >= 0 && int(id) < g.n
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
