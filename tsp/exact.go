// SPDX-License-Identifier: MIT
// Package: routepuzzle/tsp
//
// exact.go - Held–Karp dynamic programming for fixed-endpoint paths.

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routepuzzle/core"
)

const methodHeldKarpPath = "HeldKarpPath"

// HeldKarpPath solves the same problem as SolvePath by dynamic programming
// over subsets of the m = n−2 intermediate nodes.
//
// dp[mask][j] = minimum cost to leave start, visit exactly the intermediates
// in mask, and stand on intermediate j (bit j set in mask).
//
// After filling dp, the path is closed by the edge j→end. The returned cost
// always equals SolvePath's; on ties the route may be a different optimum.
//
// Time complexity:   O(m² · 2ᵐ)
// Memory complexity: O(m · 2ᵐ)
func HeldKarpPath(g *core.Graph, start, end core.NodeID) (PathResult, error) {
	n, err := validateEndpoints(g, start, end)
	if err != nil {
		return PathResult{}, fmt.Errorf("%s: %w", methodHeldKarpPath, err)
	}
	table, err := prefetch(g)
	if err != nil {
		return PathResult{}, fmt.Errorf("%s: %w", methodHeldKarpPath, err)
	}

	// Intermediates by bit position.
	mids := make([]core.NodeID, 0, n-2)
	for v := core.NodeID(0); int(v) < n; v++ {
		if v != start && v != end {
			mids = append(mids, v)
		}
	}
	m := len(mids)
	if m == 0 {
		return PathResult{
			Route:     []core.NodeID{start, end},
			Cost:      round1e9(table.at(start, end)),
			Evaluated: 1,
		}, nil
	}

	// --- 1. Allocate DP and parent tables ---
	full := (1 << m) - 1
	dp := make([][]float64, 1<<m)
	parent := make([][]int, 1<<m)
	for mask := 0; mask <= full; mask++ {
		dp[mask] = make([]float64, m)
		parent[mask] = make([]int, m)
		for j := 0; j < m; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	// Base case: start → j directly.
	for j := 0; j < m; j++ {
		dp[1<<j][j] = table.at(start, mids[j])
	}

	// --- 2. Fill DP in increasing mask order ---
	evaluated := 0
	for mask := 1; mask <= full; mask++ {
		for j := 0; j < m; j++ {
			if mask&(1<<j) == 0 {
				continue // j not in subset
			}
			prev := mask ^ (1 << j)
			if prev == 0 {
				continue // base case already set
			}
			for k := 0; k < m; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				cand := dp[prev][k] + table.at(mids[k], mids[j])
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
			evaluated++
		}
	}

	// --- 3. Close the path into end ---
	bestCost := math.Inf(1)
	last := -1
	for j := 0; j < m; j++ {
		total := dp[full][j] + table.at(mids[j], end)
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 {
		return PathResult{}, fmt.Errorf("%s: %w", methodHeldKarpPath, ErrNoRoute)
	}

	// --- 4. Reconstruct from the parent table ---
	route := make([]core.NodeID, n)
	route[0] = start
	route[n-1] = end
	mask, j := full, last
	for i := n - 2; i >= 1; i-- {
		route[i] = mids[j]
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	return PathResult{Route: route, Cost: round1e9(bestCost), Evaluated: evaluated}, nil
}
