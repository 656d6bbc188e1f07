// SPDX-License-Identifier: MIT
// Package: routepuzzle/tsp
//
// cost.go - route cost utilities.
//
// Design:
//   • Weights are prefetched once into a dense buffer so hot loops never go
//     through the error-returning accessor.
//   • Returned costs are rounded to 1e-9 to hide FP noise across platforms;
//     comparisons inside solvers use the raw sums.

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routepuzzle/core"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 rounds v to 9 decimal places.
func round1e9(v float64) float64 {
	return math.Round(v*roundScale) / roundScale
}

// weightTable is a dense n×n copy of g's weights.
type weightTable struct {
	n int
	w []float64
}

func (t weightTable) at(u, v core.NodeID) float64 {
	return t.w[int(u)*t.n+int(v)]
}

// prefetch copies every weight of g into a row-major table.
// Complexity: O(n²).
func prefetch(g *core.Graph) (weightTable, error) {
	n := g.Order()
	t := weightTable{n: n, w: make([]float64, n*n)}

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w, err = g.Weight(core.NodeID(i), core.NodeID(j)); err != nil {
				return weightTable{}, err
			}
			t.w[i*n+j] = w
		}
	}

	return t, nil
}

// sum adds the consecutive weights along route without validation.
func (t weightTable) sum(route []core.NodeID) float64 {
	var (
		s float64
		i int
	)
	for i = 0; i+1 < len(route); i++ {
		s += t.at(route[i], route[i+1])
	}

	return s
}

// PathCost returns the total weight of route on g.
//
// Contract:
//   - route must be a valid start→end Hamiltonian path over g
//     (see ValidatePath); start and end are taken from route itself.
//
// Complexity: O(n).
func PathCost(g *core.Graph, route []core.NodeID) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(route) < core.MinNodes {
		return 0, fmt.Errorf("PathCost: len=%d: %w", len(route), ErrInvalidPath)
	}
	if err := ValidatePath(route, g.Order(), route[0], route[len(route)-1]); err != nil {
		return 0, fmt.Errorf("PathCost: %w", err)
	}

	var (
		s   float64
		w   float64
		i   int
		err error
	)
	for i = 0; i+1 < len(route); i++ {
		if w, err = g.Weight(route[i], route[i+1]); err != nil {
			return 0, fmt.Errorf("PathCost: %w", err)
		}
		s += w
	}

	return round1e9(s), nil
}
