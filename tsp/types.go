// SPDX-License-Identifier: MIT
// Package: routepuzzle/tsp
//
// types.go - result type, options and sentinel errors.

package tsp

import (
	"errors"

	"github.com/katalvlaran/routepuzzle/core"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrNilGraph is returned when g is nil.
	ErrNilGraph = errors.New("tsp: nil graph")

	// ErrEndpointOutOfRange is returned when start or end is not a node of g.
	ErrEndpointOutOfRange = errors.New("tsp: endpoint out of range")

	// ErrSameEndpoints is returned when start == end.
	ErrSameEndpoints = errors.New("tsp: start and end coincide")

	// ErrTooManyNodes is returned when n exceeds Options.MaxNodes.
	ErrTooManyNodes = errors.New("tsp: node count exceeds solver budget")

	// ErrInvalidPath is returned by ValidatePath and PathCost for routes that
	// are not start→…→end Hamiltonian paths.
	ErrInvalidPath = errors.New("tsp: invalid path")

	// ErrNoRoute signals that no route was evaluated. On a complete graph this
	// is an invariant violation, never an expected runtime outcome.
	ErrNoRoute = errors.New("tsp: no route evaluated")
)

// DefaultMaxNodes keeps the exhaustive search inside an interactive budget.
const DefaultMaxNodes = 10

// PathResult holds the outcome of a path solver.
type PathResult struct {
	// Route is start, the intermediates in visiting order, then end.
	// len(Route) == n.
	Route []core.NodeID

	// Cost is the summed edge weight along Route, rounded to 1e-9.
	Cost float64

	// Evaluated is the number of complete candidates scored
	// ((n−2)! for SolvePath, subset states for HeldKarpPath).
	Evaluated int
}

// Options configures SolvePath.
type Options struct {
	// MaxNodes bounds n; 0 means DefaultMaxNodes.
	MaxNodes int
}

// DefaultOptions returns the interactive-budget configuration.
func DefaultOptions() Options {
	return Options{MaxNodes: DefaultMaxNodes}
}

func (o Options) maxNodes() int {
	if o.MaxNodes <= 0 {
		return DefaultMaxNodes
	}

	return o.MaxNodes
}
