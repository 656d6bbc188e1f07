// SPDX-License-Identifier: MIT
// Package: routepuzzle/core
//
// types.go - Node, Edge, Graph and sentinel errors.
//
// Contract:
//   • Node identities are small integers assigned in generation order.
//   • Graph is complete and immutable once NewGraph returns.
//   • Only sentinel errors are returned; callers branch with errors.Is.

package core

import (
	"errors"
	"strconv"

	"github.com/paulmach/orb"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrTooFewNodes indicates fewer than MinNodes nodes were supplied.
	ErrTooFewNodes = errors.New("core: too few nodes")

	// ErrNodeIDMismatch indicates a Node whose ID differs from its index.
	ErrNodeIDMismatch = errors.New("core: node id does not match its index")

	// ErrBadPosition indicates a NaN or infinite coordinate.
	ErrBadPosition = errors.New("core: node position is not finite")

	// ErrNodeNotFound indicates a query referenced a node outside [0..n-1].
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDegenerateEndpoints indicates start and end would coincide.
	ErrDegenerateEndpoints = errors.New("core: start and end coincide")
)

// MinNodes is the smallest graph that has two distinct endpoints.
const MinNodes = 2

// NodeID identifies a Node within its Graph.
type NodeID int

// String renders the identity in decimal form.
func (id NodeID) String() string { return strconv.Itoa(int(id)) }

// Node is a point in the puzzle's play area.
//
// ID is unique and equals the generation order; Pos is never mutated.
type Node struct {
	// ID is the stable identity of this Node.
	ID NodeID

	// Pos is the 2-D position (X, Y) in play-area units.
	Pos orb.Point
}

// Edge is one unordered pair {U,V} with U < V.
type Edge struct {
	U, V NodeID

	// Weight is the Euclidean distance between the endpoint positions.
	Weight float64
}

// Graph is the complete weighted graph over a fixed node set.
//
// weights is a row-major n×n buffer; the diagonal is zero.
type Graph struct {
	nodes   []Node
	n       int
	weights []float64
}
