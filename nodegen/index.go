// SPDX-License-Identifier: MIT
// Package: routepuzzle/nodegen
//
// index.go - R-tree backed spacing index over accepted nodes.

package nodegen

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/routepuzzle/core"
)

// pointTol is the half-side of the degenerate box stored per node.
const pointTol = 1e-9

// nodeEntry wraps an accepted node for R-tree storage.
type nodeEntry struct {
	node core.Node
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// spacingIndex answers "is any accepted node closer than d?" queries.
type spacingIndex struct {
	tree *rtreego.Rtree
	d    float64
}

func newSpacingIndex(d float64) *spacingIndex {
	return &spacingIndex{
		tree: rtreego.NewTree(2, 25, 50), // 2D, min 25, max 50 entries per node
		d:    d,
	}
}

// insert stores n in the tree.
func (s *spacingIndex) insert(n core.Node) {
	s.tree.Insert(&nodeEntry{
		node: n,
		bbox: rtreego.Point{n.Pos.X(), n.Pos.Y()}.ToRect(pointTol),
	})
}

// clear reports whether p keeps at least d from every stored node.
//
// Implementation:
//   - Stage 1: box query of side 2d centred on p (superset of the disc).
//   - Stage 2: exact planar distance on the few candidates returned.
func (s *spacingIndex) clear(p orb.Point) (bool, error) {
	box, err := rtreego.NewRect(
		rtreego.Point{p.X() - s.d, p.Y() - s.d},
		[]float64{2 * s.d, 2 * s.d},
	)
	if err != nil {
		return false, err
	}

	for _, item := range s.tree.SearchIntersect(box) {
		if planar.Distance(item.(*nodeEntry).node.Pos, p) < s.d {
			return false, nil
		}
	}

	return true, nil
}

// size returns the number of stored nodes.
func (s *spacingIndex) size() int {
	return s.tree.Size()
}
