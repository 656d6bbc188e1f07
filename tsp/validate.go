// SPDX-License-Identifier: MIT
// Package: routepuzzle/tsp
//
// validate.go - input and route validation shared by both solvers.
//
// Design:
//   • Deterministic, side-effect free.
//   • Sentinel errors only; no logging, no panics on user input.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/routepuzzle/core"
)

// validateEndpoints checks g, start and end. It returns n on success.
// Complexity: O(1).
func validateEndpoints(g *core.Graph, start, end core.NodeID) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.Order()
	if start < 0 || int(start) >= n {
		return 0, fmt.Errorf("start=%d n=%d: %w", start, n, ErrEndpointOutOfRange)
	}
	if end < 0 || int(end) >= n {
		return 0, fmt.Errorf("end=%d n=%d: %w", end, n, ErrEndpointOutOfRange)
	}
	if start == end {
		return 0, fmt.Errorf("start=end=%d: %w", start, ErrSameEndpoints)
	}

	return n, nil
}

// ValidatePath enforces the route invariants:
//
//	len(route) == n, route[0] == start, route[n−1] == end,
//	each v∈[0..n−1] appears exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidatePath(route []core.NodeID, n int, start, end core.NodeID) error {
	if n < core.MinNodes || len(route) != n {
		return fmt.Errorf("len=%d n=%d: %w", len(route), n, ErrInvalidPath)
	}
	if route[0] != start || route[n-1] != end {
		return fmt.Errorf("endpoints %d..%d, want %d..%d: %w", route[0], route[n-1], start, end, ErrInvalidPath)
	}

	seen := make([]bool, n)

	var (
		i int
		v core.NodeID
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || int(v) >= n {
			return fmt.Errorf("route[%d]=%d: %w", i, v, ErrInvalidPath)
		}
		if seen[v] {
			return fmt.Errorf("route[%d]=%d repeats: %w", i, v, ErrInvalidPath)
		}
		seen[v] = true
	}

	return nil
}
