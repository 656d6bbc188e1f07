// SPDX-License-Identifier: MIT
// Package: routepuzzle/puzzle
//
// types.go - tiers, phases, outcomes, selection results and render state.

package puzzle

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/core"
)

// ErrUnknownTier indicates a tier outside 1..3.
var ErrUnknownTier = errors.New("puzzle: unknown tier")

// Tier is a difficulty level controlling node count.
type Tier int

// Supported tiers. TierCustom marks sessions built from explicit nodes.
const (
	TierCustom Tier = 0
	TierEasy   Tier = 1
	TierNormal Tier = 2
	TierHard   Tier = 3
)

// Tiers lists the selectable difficulty tiers in menu order.
var Tiers = []Tier{TierEasy, TierNormal, TierHard}

// NodeCount returns 6, 8 or 10 for tiers 1, 2 and 3.
func (t Tier) NodeCount() (int, error) {
	switch t {
	case TierEasy:
		return 6, nil
	case TierNormal:
		return 8, nil
	case TierHard:
		return 10, nil
	default:
		return 0, fmt.Errorf("tier %d: %w", int(t), ErrUnknownTier)
	}
}

// String returns the menu label.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierNormal:
		return "Normal"
	case TierHard:
		return "Hard"
	case TierCustom:
		return "Custom"
	default:
		return "Tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// label is the metrics label value.
func (t Tier) label() string { return strconv.Itoa(int(t)) }

// Phase is the state-machine position.
type Phase int

const (
	AwaitingStart Phase = iota
	Building
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingStart:
		return "awaiting_start"
	case Building:
		return "building"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome of a session.
type Outcome int

const (
	InProgress Outcome = iota
	Success
	Failure
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result reports how a selection event was handled. Ignored results are
// normal control flow, not errors.
type Result int

const (
	// Started: the start node was selected; the route is now being built.
	Started Result = iota
	// Accepted: an intermediate node was appended.
	Accepted
	// Completed: end was selected and the session finished.
	Completed
	// IgnoredNotStart: the route has not begun and the node is not start.
	IgnoredNotStart
	// IgnoredRepeatLast: the node is the one selected last.
	IgnoredRepeatLast
	// IgnoredRevisit: the node is already on the route.
	IgnoredRevisit
	// IgnoredFinished: the session is terminal.
	IgnoredFinished
	// IgnoredUnknownNode: the identity is not part of the puzzle.
	IgnoredUnknownNode
	// BackRequested: the Back control was pressed.
	BackRequested
	// IgnoredUnknownControl: the control identity is not registered.
	IgnoredUnknownControl
)

var resultNames = [...]string{
	Started:               "started",
	Accepted:              "accepted",
	Completed:             "completed",
	IgnoredNotStart:       "ignored_not_start",
	IgnoredRepeatLast:     "ignored_repeat_last",
	IgnoredRevisit:        "ignored_revisit",
	IgnoredFinished:       "ignored_finished",
	IgnoredUnknownNode:    "ignored_unknown_node",
	BackRequested:         "back",
	IgnoredUnknownControl: "ignored_unknown_control",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

// Ignored reports whether the event left the session unchanged.
func (r Result) Ignored() bool {
	switch r {
	case IgnoredNotStart, IgnoredRepeatLast, IgnoredRevisit, IgnoredFinished,
		IgnoredUnknownNode, IgnoredUnknownControl:
		return true
	default:
		return false
	}
}

// Connection is one drawn segment of the player's route.
type Connection struct {
	From, To core.NodeID
	A, B     orb.Point
}

// State is a snapshot for the host's per-frame draw. Every slice is a fresh
// copy, so repeated calls between events return equal values.
type State struct {
	SessionID string
	Tier      Tier
	Phase     Phase
	Outcome   Outcome

	Start, End core.NodeID

	// LastSelected is valid when HasLastSelected; hosts draw a rubber band
	// from it to the pointer while Phase == Building.
	LastSelected    core.NodeID
	HasLastSelected bool

	// PlayerRoute is the accumulated route, start first; end is appended on finish.
	PlayerRoute []core.NodeID
	Connections []Connection

	// OptimalRoute is set only when Outcome == Failure.
	OptimalRoute []core.NodeID
	OptimalCost  float64

	// PlayerCost is set once finished with a complete route.
	PlayerCost     float64
	PlayerComplete bool
}
