// SPDX-License-Identifier: MIT
// Package: routepuzzle/tsp
//
// bound.go - minimum-spanning-tree lower bound for path costs.
//
// Every start→…→end Hamiltonian path is a spanning tree of the graph, so the
// MST weight never exceeds the optimal path cost. Hosts use the gap between
// the two as a difficulty hint; tests use it as an independent sanity check.

package tsp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/routepuzzle/core"
)

// SpanningBound is the Kruskal MST of a graph.
type SpanningBound struct {
	// Edges holds the n−1 tree edges in the order Kruskal accepted them.
	Edges []core.Edge

	// Weight is the summed edge weight, rounded to 1e-9.
	Weight float64
}

// MSTLowerBound computes the minimum spanning tree of g with Kruskal's
// algorithm over a union-find with path halving and union by rank.
//
// Steps:
//  1. Take g.Edges() (lexicographic) and stable-sort by weight so equal
//     weights keep a deterministic order.
//  2. Accept each edge joining two components until n−1 edges are chosen.
//
// Errors: ErrNilGraph.
//
// Complexity: O(E log E) with E = n(n−1)/2. Memory: O(E).
func MSTLowerBound(g *core.Graph) (SpanningBound, error) {
	if g == nil {
		return SpanningBound{}, fmt.Errorf("MSTLowerBound: %w", ErrNilGraph)
	}

	n := g.Order()
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	var (
		tree  = make([]core.Edge, 0, n-1)
		total float64
	)
	for _, e := range edges {
		ru, rv := find(int(e.U)), find(int(e.V))
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}

	return SpanningBound{Edges: tree, Weight: round1e9(total)}, nil
}
