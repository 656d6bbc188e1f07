package puzzle_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routepuzzle/config"
	"github.com/katalvlaran/routepuzzle/core"
	"github.com/katalvlaran/routepuzzle/metrics"
	"github.com/katalvlaran/routepuzzle/nodegen"
	"github.com/katalvlaran/routepuzzle/puzzle"
	"github.com/katalvlaran/routepuzzle/tsp"
)

// lineNodes places six nodes on y=300 with shuffled identities.
// Start is 1 (x=100), end is 2 (x=600); the optimum walks by ascending x.
func lineNodes() []core.Node {
	xs := []float64{300, 100, 600, 200, 500, 400}
	nodes := make([]core.Node, len(xs))
	for i, x := range xs {
		nodes[i] = core.Node{ID: core.NodeID(i), Pos: orb.Point{x, 300}}
	}
	return nodes
}

var lineOptimal = []core.NodeID{1, 3, 0, 5, 4, 2}

func newLine(t *testing.T, opts ...puzzle.Option) *puzzle.Session {
	t.Helper()
	s, err := puzzle.NewFromNodes(lineNodes(), opts...)
	require.NoError(t, err)
	return s
}

func selectAll(t *testing.T, s *puzzle.Session, ids ...core.NodeID) {
	t.Helper()
	for _, id := range ids {
		r := s.HandleSelection(id)
		require.False(t, r.Ignored(), "selection %d was %s", id, r)
	}
}

func TestSession_Construction(t *testing.T) {
	s := newLine(t)

	assert.Equal(t, core.NodeID(1), s.Start())
	assert.Equal(t, core.NodeID(2), s.End())
	assert.Equal(t, puzzle.TierCustom, s.Tier())
	assert.Equal(t, puzzle.AwaitingStart, s.Phase())
	assert.Equal(t, puzzle.InProgress, s.Outcome())
	assert.NotEmpty(t, s.ID())

	best := s.Optimal()
	assert.Equal(t, lineOptimal, best.Route)
	assert.InDelta(t, 500.0, best.Cost, 1e-9)
	assert.Equal(t, 24, best.Evaluated)
}

func TestSession_OptimalRouteSucceeds(t *testing.T) {
	s := newLine(t)

	require.Equal(t, puzzle.Started, s.HandleSelection(1))
	for _, id := range []core.NodeID{3, 0, 5, 4} {
		require.Equal(t, puzzle.Accepted, s.HandleSelection(id))
	}
	require.Equal(t, puzzle.Completed, s.HandleSelection(2))

	st := s.RenderState()
	assert.Equal(t, puzzle.Finished, st.Phase)
	assert.Equal(t, puzzle.Success, st.Outcome)
	assert.Equal(t, lineOptimal, st.PlayerRoute)
	assert.Nil(t, st.OptimalRoute, "optimal route is only shown on failure")
	assert.True(t, st.PlayerComplete)
	assert.InDelta(t, 500.0, st.PlayerCost, 1e-9)
	require.Len(t, st.Connections, 5)
	assert.Equal(t, puzzle.Connection{From: 1, To: 3, A: orb.Point{100, 300}, B: orb.Point{200, 300}}, st.Connections[0])
}

func TestSession_SuboptimalRouteFails(t *testing.T) {
	s := newLine(t)
	selectAll(t, s, 1, 0, 3, 5, 4, 2)

	st := s.RenderState()
	assert.Equal(t, puzzle.Failure, st.Outcome)
	assert.Equal(t, lineOptimal, st.OptimalRoute)
	assert.True(t, st.PlayerComplete)
	assert.Greater(t, st.PlayerCost, st.OptimalCost)
}

func TestSession_IgnoresUntilStart(t *testing.T) {
	s := newLine(t)

	for _, id := range []core.NodeID{0, 2, 3, 4, 5} {
		assert.Equal(t, puzzle.IgnoredNotStart, s.HandleSelection(id))
	}
	assert.Equal(t, puzzle.IgnoredUnknownNode, s.HandleSelection(42))

	st := s.RenderState()
	assert.Equal(t, puzzle.AwaitingStart, st.Phase)
	assert.False(t, st.HasLastSelected)
	assert.Empty(t, st.PlayerRoute)
	assert.Empty(t, st.Connections)
}

func TestSession_RejectsSelfAndRevisit(t *testing.T) {
	s := newLine(t)
	selectAll(t, s, 1, 3)

	assert.Equal(t, puzzle.IgnoredRepeatLast, s.HandleSelection(3))
	assert.Equal(t, puzzle.IgnoredRevisit, s.HandleSelection(1), "start is on the route")

	selectAll(t, s, 0)
	assert.Equal(t, puzzle.IgnoredRevisit, s.HandleSelection(3))

	st := s.RenderState()
	assert.Equal(t, []core.NodeID{1, 3, 0}, st.PlayerRoute)
	assert.Len(t, st.Connections, 2)
	assert.Equal(t, core.NodeID(0), st.LastSelected)
	assert.True(t, st.HasLastSelected)
}

func TestSession_EndFinishesEarly(t *testing.T) {
	s := newLine(t)
	selectAll(t, s, 1, 3)

	require.Equal(t, puzzle.Completed, s.HandleSelection(2))

	st := s.RenderState()
	assert.Equal(t, puzzle.Finished, st.Phase)
	assert.Equal(t, puzzle.Failure, st.Outcome)
	assert.Equal(t, []core.NodeID{1, 3, 2}, st.PlayerRoute)
	assert.False(t, st.PlayerComplete)
	assert.Zero(t, st.PlayerCost)
}

func TestSession_StartThenEnd(t *testing.T) {
	s := newLine(t)
	selectAll(t, s, 1, 2)
	assert.Equal(t, puzzle.Failure, s.Outcome())
}

func TestSession_TerminalIgnoresEvents(t *testing.T) {
	s := newLine(t)
	selectAll(t, s, 1, 3, 0, 5, 4, 2)
	before := s.RenderState()

	for id := core.NodeID(0); id < 6; id++ {
		assert.Equal(t, puzzle.IgnoredFinished, s.HandleSelection(id))
	}
	assert.Equal(t, before, s.RenderState())
}

func TestSession_RenderStateIsIdempotent(t *testing.T) {
	s := newLine(t)
	selectAll(t, s, 1, 0)

	a := s.RenderState()
	b := s.RenderState()
	require.Equal(t, a, b)

	a.PlayerRoute[0] = 99
	a.Connections[0].From = 99
	assert.Equal(t, b, s.RenderState(), "snapshots must not alias session state")
}

// tieNodes has two intermediates mirrored across the start-end axis.
func tieNodes() []core.Node {
	pts := []orb.Point{{300, 200}, {100, 300}, {500, 300}, {300, 400}}
	nodes := make([]core.Node, len(pts))
	for i, p := range pts {
		nodes[i] = core.Node{ID: core.NodeID(i), Pos: p}
	}
	return nodes
}

func TestSession_CostTieFailsByDefault(t *testing.T) {
	s, err := puzzle.NewFromNodes(tieNodes())
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{1, 0, 3, 2}, s.Optimal().Route)

	selectAll(t, s, 1, 3, 0, 2)
	st := s.RenderState()
	assert.Equal(t, puzzle.Failure, st.Outcome)
	assert.InDelta(t, st.OptimalCost, st.PlayerCost, 1e-9)
}

func TestSession_CostEquivalence(t *testing.T) {
	s, err := puzzle.NewFromNodes(tieNodes(), puzzle.WithCostEquivalence())
	require.NoError(t, err)

	selectAll(t, s, 1, 3, 0, 2)
	assert.Equal(t, puzzle.Success, s.Outcome())
	assert.Nil(t, s.RenderState().OptimalRoute)
}

func TestNewFromNodes_Errors(t *testing.T) {
	_, err := puzzle.NewFromNodes(nil)
	require.ErrorIs(t, err, core.ErrTooFewNodes)

	vertical := []core.Node{{ID: 0, Pos: orb.Point{5, 0}}, {ID: 1, Pos: orb.Point{5, 9}}}
	_, err = puzzle.NewFromNodes(vertical)
	require.ErrorIs(t, err, core.ErrDegenerateEndpoints)
}

func TestNew_Tiers(t *testing.T) {
	for _, tier := range puzzle.Tiers {
		t.Run(tier.String(), func(t *testing.T) {
			s, err := puzzle.New(tier, puzzle.WithSeed(7))
			require.NoError(t, err)

			want, err := tier.NodeCount()
			require.NoError(t, err)
			assert.Equal(t, want, s.Graph().Order())
			assert.NotEqual(t, s.Start(), s.End())
			assert.Len(t, s.Optimal().Route, want)
			assert.Equal(t, tier, s.Tier())
		})
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := puzzle.New(puzzle.TierNormal, puzzle.WithSeed(99))
	require.NoError(t, err)
	b, err := puzzle.New(puzzle.TierNormal, puzzle.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, a.Graph().Nodes(), b.Graph().Nodes())
	assert.Equal(t, a.Optimal(), b.Optimal())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNew_Errors(t *testing.T) {
	_, err := puzzle.New(puzzle.Tier(4))
	require.ErrorIs(t, err, puzzle.ErrUnknownTier)

	bad := config.Default()
	bad.Area.Margin = 400
	_, err = puzzle.New(puzzle.TierEasy, puzzle.WithConfig(bad))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cramped := config.Default()
	cramped.Area = config.Area{Width: 100, Height: 100}
	cramped.Generation.MinDistance = 80
	cramped.Generation.MaxAttempts = 2000
	reg := metrics.NewRegistry()
	_, err = puzzle.New(puzzle.TierHard, puzzle.WithConfig(cramped), puzzle.WithSeed(1), puzzle.WithMetrics(reg))
	require.True(t, errors.Is(err, nodegen.ErrGenerationExhausted), "got %v", err)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.GenerationFailuresTotal))

	small := config.Default()
	small.Solver.MaxNodes = 8
	_, err = puzzle.New(puzzle.TierHard, puzzle.WithConfig(small), puzzle.WithSeed(1))
	require.ErrorIs(t, err, tsp.ErrTooManyNodes, "solver budget below tier size is fatal")
}

func TestSession_Metrics(t *testing.T) {
	reg := metrics.NewRegistry()
	s, err := puzzle.New(puzzle.TierEasy, puzzle.WithSeed(3), puzzle.WithMetrics(reg))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.PuzzlesGeneratedTotal.WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SessionsActive))

	route := s.Optimal().Route
	require.Equal(t, puzzle.IgnoredNotStart, s.HandleSelection(route[1]))
	selectAll(t, s, route...)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.OutcomesTotal.WithLabelValues("1", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SelectionsTotal.WithLabelValues("ignored_not_start")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SelectionsTotal.WithLabelValues("completed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.SessionsActive))

	s.Back()
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.SessionsActive), "a finished session is not ended twice")
}

func TestTier_NodeCount(t *testing.T) {
	cases := map[puzzle.Tier]int{puzzle.TierEasy: 6, puzzle.TierNormal: 8, puzzle.TierHard: 10}
	for tier, want := range cases {
		got, err := tier.NodeCount()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, tier := range []puzzle.Tier{puzzle.TierCustom, -1, 4} {
		_, err := tier.NodeCount()
		assert.ErrorIs(t, err, puzzle.ErrUnknownTier)
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { puzzle.WithRand(nil) })
	assert.Panics(t, func() { puzzle.WithLogger(nil) })
}
