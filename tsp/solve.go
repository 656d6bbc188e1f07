// SPDX-License-Identifier: MIT
// Package: routepuzzle/tsp
//
// solve.go - canonical exhaustive solver for fixed-endpoint paths.
//
// Tie policy:
//   • Intermediates are enumerated in lexicographic order of their identity
//     sequence, and a candidate replaces the incumbent only when strictly
//     cheaper. The first-encountered optimum therefore wins every tie.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/routepuzzle/core"
)

const methodSolvePath = "SolvePath"

// SolvePath returns the minimum-cost route start → (all other nodes) → end.
//
// Implementation:
//   - Stage 1: validate endpoints and the node budget.
//   - Stage 2: prefetch weights; collect intermediates in ascending order.
//   - Stage 3: step through every permutation, scoring start→perm→end.
//
// Errors:
//   - ErrNilGraph, ErrEndpointOutOfRange, ErrSameEndpoints, ErrTooManyNodes.
//   - ErrNoRoute if no candidate was scored (invariant violation).
//
// Complexity:
//   - Time O((n−2)!·n), Space O(n²).
func SolvePath(g *core.Graph, start, end core.NodeID, opts Options) (PathResult, error) {
	n, err := validateEndpoints(g, start, end)
	if err != nil {
		return PathResult{}, fmt.Errorf("%s: %w", methodSolvePath, err)
	}
	if n > opts.maxNodes() {
		return PathResult{}, fmt.Errorf("%s: n=%d > max=%d: %w", methodSolvePath, n, opts.maxNodes(), ErrTooManyNodes)
	}

	table, err := prefetch(g)
	if err != nil {
		return PathResult{}, fmt.Errorf("%s: %w", methodSolvePath, err)
	}

	// Candidate buffer: [start, intermediates..., end]; only the middle moves.
	var (
		cand = make([]core.NodeID, 0, n)
		v    core.NodeID
	)
	cand = append(cand, start)
	for v = 0; int(v) < n; v++ {
		if v != start && v != end {
			cand = append(cand, v)
		}
	}
	cand = append(cand, end)
	middle := cand[1 : n-1] // ascending by construction

	var (
		best      = make([]core.NodeID, n)
		bestCost  float64
		cost      float64
		evaluated int
	)
	for {
		cost = table.sum(cand)
		if evaluated == 0 || cost < bestCost {
			bestCost = cost
			copy(best, cand)
		}
		evaluated++

		if !nextPermutation(middle) {
			break
		}
	}
	if evaluated == 0 {
		return PathResult{}, fmt.Errorf("%s: %w", methodSolvePath, ErrNoRoute)
	}

	return PathResult{Route: best, Cost: round1e9(bestCost), Evaluated: evaluated}, nil
}
