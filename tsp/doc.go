// Package tsp solves the fixed-endpoint Hamiltonian path problem on a
// complete core.Graph: find the cheapest route that starts at a given node,
// ends at another given node and visits every remaining node exactly once.
//
// Two exact solvers are provided:
//
//   - SolvePath - exhaustive enumeration of the intermediate nodes in
//     lexicographic order. This is the canonical solver: among equal-cost
//     optima it returns the FIRST one in that order, so its answer is a
//     single, reproducible "correct" route.
//
//   - Complexity: O((n−2)!·n)
//
//   - Memory:     O(n²) (prefetched weights)
//
//   - HeldKarpPath - bitmask dynamic programming over subsets of the
//     intermediate nodes. Its cost is always equal to SolvePath's; the route
//     may differ on ties.
//
//   - Complexity: O(m²·2ᵐ), m = n−2
//
//   - Memory:     O(m·2ᵐ)
//
// Helpers PathCost and ValidatePath score and check arbitrary routes.
//
// Use SolvePath for n ≤ Options.MaxNodes (10 by default: 8! = 40320 routes).
// Both solvers are deterministic and allocation-bounded; neither mutates g.
package tsp
