// SPDX-License-Identifier: MIT
// Package: routepuzzle/puzzle
//
// session.go - construction and the selection state machine.
//
// Contract:
//   • The optimal route is computed once, before the first event.
//   • Phase moves AwaitingStart → Building → Finished and never back.
//   • Finished is entered exactly once; later events are ignored.
//
// Complexity:
//   • New: O(A·log k) generation + O((k−2)!·k) solving.
//   • HandleSelection / RenderState: O(k).

package puzzle

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/routepuzzle/core"
	"github.com/katalvlaran/routepuzzle/metrics"
	"github.com/katalvlaran/routepuzzle/nodegen"
	"github.com/katalvlaran/routepuzzle/tsp"
)

// costTolerance is the equivalence window used by WithCostEquivalence.
const costTolerance = 1e-9

// Session is one puzzle round.
type Session struct {
	id     string
	tier   Tier
	graph  *core.Graph
	start  core.NodeID
	end    core.NodeID
	best   tsp.PathResult
	solved time.Duration

	phase   Phase
	outcome Outcome
	last    core.NodeID
	onRoute []bool
	route   []core.NodeID
	conns   []Connection

	playerCost     float64
	playerComplete bool
	ended          bool

	controls []Control
	handlers map[ControlID]func() Result

	logger          *slog.Logger
	metrics         *metrics.Registry
	navigator       Navigator
	costEquivalence bool
}

// New generates a puzzle for tier and precomputes its optimal route.
//
// Errors:
//   - ErrUnknownTier for tiers outside 1..3.
//   - config.ErrInvalidConfig when WithConfig carries invalid settings.
//   - nodegen.ErrGenerationExhausted when spacing cannot be satisfied.
//   - tsp errors; a solver failure is fatal to the session.
func New(tier Tier, opts ...Option) (*Session, error) {
	sc := newSessionConfig(opts...)

	k, err := tier.NodeCount()
	if err != nil {
		return nil, err
	}
	if err = sc.cfg.Validate(); err != nil {
		return nil, err
	}

	nodes, stats, err := nodegen.Generate(k,
		nodegen.WithRand(sc.rng),
		nodegen.WithArea(sc.cfg.Area.Width, sc.cfg.Area.Height),
		nodegen.WithMargin(sc.cfg.Area.Margin),
		nodegen.WithMinDistance(sc.cfg.Generation.MinDistance),
		nodegen.WithMaxAttempts(sc.cfg.Generation.MaxAttempts),
		nodegen.WithLogger(sc.logger),
	)
	if err != nil {
		if errors.Is(err, nodegen.ErrGenerationExhausted) {
			sc.metrics.RecordGenerationFailure()
		}
		return nil, fmt.Errorf("puzzle: generate tier %d: %w", int(tier), err)
	}
	sc.metrics.RecordGeneration(tier.label(), stats.Attempts)

	return newSession(tier, nodes, sc)
}

// NewFromNodes builds a session over explicit nodes (identities 0..k−1).
// The resulting session reports TierCustom.
func NewFromNodes(nodes []core.Node, opts ...Option) (*Session, error) {
	return newSession(TierCustom, nodes, newSessionConfig(opts...))
}

func newSession(tier Tier, nodes []core.Node, sc sessionConfig) (*Session, error) {
	g, err := core.NewGraph(nodes)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	start, end, err := g.Endpoints()
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}

	t0 := time.Now()
	best, err := tsp.SolvePath(g, start, end, tsp.Options{MaxNodes: sc.cfg.Solver.MaxNodes})
	if err != nil {
		return nil, fmt.Errorf("puzzle: solve: %w", err)
	}
	elapsed := time.Since(t0)
	sc.metrics.RecordSolve(elapsed, best.Evaluated, best.Cost)

	s := &Session{
		id:              uuid.NewString(),
		tier:            tier,
		graph:           g,
		start:           start,
		end:             end,
		best:            best,
		solved:          elapsed,
		phase:           AwaitingStart,
		outcome:         InProgress,
		onRoute:         make([]bool, g.Order()),
		logger:          sc.logger,
		metrics:         sc.metrics,
		navigator:       sc.navigator,
		costEquivalence: sc.costEquivalence,
	}
	s.buildControls()
	s.metrics.SessionStarted()

	s.logger.Info("puzzle ready",
		"session", s.id,
		"tier", tier.String(),
		"nodes", g.Order(),
		"start", start,
		"end", end,
		"optimal_cost", best.Cost,
		"candidates", best.Evaluated,
		"solve_time", elapsed,
	)

	return s, nil
}

// HandleSelection applies one node-selection event.
func (s *Session) HandleSelection(id core.NodeID) Result {
	r := s.handle(id)
	s.metrics.RecordSelection(r.String())
	if r.Ignored() {
		s.logger.Debug("selection ignored", "session", s.id, "node", id, "reason", r.String())
	}

	return r
}

func (s *Session) handle(id core.NodeID) Result {
	if s.phase == Finished {
		return IgnoredFinished
	}
	if _, err := s.graph.Node(id); err != nil {
		return IgnoredUnknownNode
	}

	if s.phase == AwaitingStart {
		if id != s.start {
			return IgnoredNotStart
		}
		s.visit(id)
		s.phase = Building
		return Started
	}

	if id == s.last {
		return IgnoredRepeatLast
	}
	if s.onRoute[id] {
		return IgnoredRevisit
	}

	s.conns = append(s.conns, s.connect(s.last, id))
	s.visit(id)
	if id == s.end {
		s.finish()
		return Completed
	}

	return Accepted
}

func (s *Session) visit(id core.NodeID) {
	s.onRoute[id] = true
	s.route = append(s.route, id)
	s.last = id
}

func (s *Session) connect(from, to core.NodeID) Connection {
	a, _ := s.graph.Node(from)
	b, _ := s.graph.Node(to)

	return Connection{From: from, To: to, A: a.Pos, B: b.Pos}
}

// finish scores the route and enters the terminal phase.
func (s *Session) finish() {
	s.phase = Finished

	if tsp.ValidatePath(s.route, s.graph.Order(), s.start, s.end) == nil {
		s.playerComplete = true
		s.playerCost, _ = tsp.PathCost(s.graph, s.route)
	}

	switch {
	case slices.Equal(s.route, s.best.Route):
		s.outcome = Success
	case s.costEquivalence && s.playerComplete && math.Abs(s.playerCost-s.best.Cost) <= costTolerance:
		s.outcome = Success
	default:
		s.outcome = Failure
	}

	s.metrics.RecordOutcome(s.tier.label(), s.outcome.String())
	if !s.ended {
		s.ended = true
		s.metrics.SessionEnded()
	}

	s.logger.Debug("puzzle finished",
		"session", s.id,
		"outcome", s.outcome.String(),
		"player_route", s.route,
		"optimal_route", s.best.Route,
		"player_cost", s.playerCost,
		"optimal_cost", s.best.Cost,
	)
}

// RenderState snapshots the session for drawing.
func (s *Session) RenderState() State {
	st := State{
		SessionID:       s.id,
		Tier:            s.tier,
		Phase:           s.phase,
		Outcome:         s.outcome,
		Start:           s.start,
		End:             s.end,
		LastSelected:    s.last,
		HasLastSelected: s.phase != AwaitingStart,
		PlayerRoute:     slices.Clone(s.route),
		Connections:     slices.Clone(s.conns),
		OptimalCost:     s.best.Cost,
		PlayerCost:      s.playerCost,
		PlayerComplete:  s.playerComplete,
	}
	if s.outcome == Failure {
		st.OptimalRoute = slices.Clone(s.best.Route)
	}

	return st
}

// ID returns the session's unique identity.
func (s *Session) ID() string { return s.id }

// Tier returns the difficulty the session was generated for.
func (s *Session) Tier() Tier { return s.tier }

// Graph returns the puzzle graph. It is read-only by construction.
func (s *Session) Graph() *core.Graph { return s.graph }

// Start returns the start node identity.
func (s *Session) Start() core.NodeID { return s.start }

// End returns the end node identity.
func (s *Session) End() core.NodeID { return s.end }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Optimal returns a copy of the precomputed optimal route and its cost.
func (s *Session) Optimal() tsp.PathResult {
	r := s.best
	r.Route = slices.Clone(s.best.Route)

	return r
}

// SolveTime returns how long the optimal route took to compute.
func (s *Session) SolveTime() time.Duration { return s.solved }
