// SPDX-License-Identifier: MIT
// Package: routepuzzle/puzzle
//
// controls.go - clickable controls and their explicit node mapping.
//
// Contract:
//   • ControlID 0 is Back; node v is served by ControlID v+1.
//   • Each handler is bound to its own node identity at construction; the
//     mapping is data, never inferred from widget state.
//   • Node squares never overlap: two ControlSize squares intersect only when
//     centres are closer than ControlSize·√2 < the default spacing.

package puzzle

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/core"
)

// ControlID identifies a clickable element.
type ControlID int

// BackControl is the identity of the Back button.
const BackControl ControlID = 0

// ControlSize is the side of a node's square, in area units.
const ControlSize = 40.0

var backBound = orb.Bound{Min: orb.Point{15, 15}, Max: orb.Point{75, 55}}

// Control is one clickable element with its label and hit box.
type Control struct {
	ID    ControlID
	Label string
	Bound orb.Bound

	// Node is the bound identity; meaningless when IsBack.
	Node   core.NodeID
	IsBack bool
}

// Center returns the middle of the hit box.
func (c Control) Center() orb.Point { return c.Bound.Center() }

// Contains reports whether p lies in the hit box, edges included.
func (c Control) Contains(p orb.Point) bool { return c.Bound.Contains(p) }

// nodeLabel is "S" for start, "E" for end and the identity otherwise.
func nodeLabel(id, start, end core.NodeID) string {
	switch id {
	case start:
		return "S"
	case end:
		return "E"
	default:
		return id.String()
	}
}

// buildControls lays out Back followed by one square per node and binds a
// handler to each.
func (s *Session) buildControls() {
	nodes := s.graph.Nodes()
	s.controls = make([]Control, 0, len(nodes)+1)
	s.handlers = make(map[ControlID]func() Result, len(nodes)+1)

	s.controls = append(s.controls, Control{ID: BackControl, Label: "Back", Bound: backBound, IsBack: true})
	s.handlers[BackControl] = s.Back

	half := ControlSize / 2
	for _, n := range nodes {
		id := n.ID
		cid := ControlID(int(id) + 1)
		s.controls = append(s.controls, Control{
			ID:    cid,
			Label: nodeLabel(id, s.start, s.end),
			Bound: orb.Bound{
				Min: orb.Point{n.Pos.X() - half, n.Pos.Y() - half},
				Max: orb.Point{n.Pos.X() + half, n.Pos.Y() + half},
			},
			Node: id,
		})
		s.handlers[cid] = func() Result { return s.HandleSelection(id) }
	}
}

// Controls returns a copy of every control, Back first.
func (s *Session) Controls() []Control {
	out := make([]Control, len(s.controls))
	copy(out, s.controls)

	return out
}

// ControlAt returns the control under p, if any.
func (s *Session) ControlAt(p orb.Point) (Control, bool) {
	for _, c := range s.controls {
		if c.Contains(p) {
			return c, true
		}
	}

	return Control{}, false
}

// Press dispatches a control activation to its bound handler.
func (s *Session) Press(id ControlID) Result {
	h, ok := s.handlers[id]
	if !ok {
		s.metrics.RecordSelection(IgnoredUnknownControl.String())
		return IgnoredUnknownControl
	}

	return h()
}

// Back asks the injected Navigator to return to the menu. Without a
// Navigator it only reports the request.
func (s *Session) Back() Result {
	s.logger.Debug("back requested", "session", s.id, "phase", s.phase.String())
	if s.phase != Finished && !s.ended {
		s.ended = true
		s.metrics.SessionEnded()
	}
	if s.navigator != nil {
		s.navigator.ReturnToMenu()
	}

	return BackRequested
}
