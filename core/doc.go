// Package core defines the spatial Node, the weighted Edge and the complete
// Euclidean Graph that every other routepuzzle package reads from.
//
// A Graph G = (V,E) is built exactly once from a slice of Nodes:
//
//   - V holds the Nodes in identity order (Node.ID == index).
//   - E holds every unordered pair {u,v}, u<v, weighted by the Euclidean
//     distance between the two positions (planar.Distance from paulmach/orb).
//   - Weights live in a dense row-major buffer (offset = u*n + v), mirrored
//     so that Weight(u,v) == Weight(v,u) without branching.
//
// Endpoints:
//
//	start = the node with minimum X (lowest ID wins a tie)
//	end   = the node with maximum X (lowest ID wins a tie)
//
// Why is Graph read-only?
//
//   - The exact solver and the puzzle session both read it after construction,
//     so no locks are taken anywhere; a built Graph is safe for concurrent reads.
//   - Accessors return copies; callers can never mutate the stored Nodes.
//
// Core Methods:
//
//	NewGraph(nodes []Node) (*Graph, error)   // O(n²)
//	Order() int                              // O(1)
//	Nodes() []Node                           // O(n) copy
//	Node(id NodeID) (Node, error)            // O(1)
//	Weight(u, v NodeID) (float64, error)     // O(1)
//	Edges() []Edge                           // O(n²), lexicographic (u,v), u<v
//	EdgeCount() int                          // O(1), n·(n−1)/2
//	Endpoints() (start, end NodeID, err)     // O(n)
//
// Errors:
//
//	ErrTooFewNodes         - fewer than MinNodes nodes.
//	ErrNodeIDMismatch      - Node.ID is not equal to its index.
//	ErrBadPosition         - a coordinate is NaN or ±Inf.
//	ErrNodeNotFound        - requested node identity is out of range.
//	ErrDegenerateEndpoints - every node shares the same X coordinate.
package core
