// SPDX-License-Identifier: MIT
// Package: routepuzzle/tsp
//
// permute.go - lexicographic permutation stepping.

package tsp

import "github.com/katalvlaran/routepuzzle/core"

// nextPermutation rearranges a into its lexicographic successor in place and
// reports whether one existed. Starting from ascending order and stepping
// until false visits all len(a)! arrangements exactly once, in order.
//
// Complexity: O(len(a)) worst case, O(1) amortized.
func nextPermutation(a []core.NodeID) bool {
	var i = len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	var j = len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]

	// Reverse the suffix to its smallest arrangement.
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}

// Factorial returns m! for small m (m ≤ 20 fits in int64).
func Factorial(m int) int {
	f := 1
	for i := 2; i <= m; i++ {
		f *= i
	}

	return f
}
