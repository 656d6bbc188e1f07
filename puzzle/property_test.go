package puzzle_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/routepuzzle/core"
	"github.com/katalvlaran/routepuzzle/puzzle"
)

// TestSessionInvariants checks that generated sessions have distinct
// endpoints and that replaying the optimal route always succeeds.
func TestSessionInvariants(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 30
	properties := gopter.NewProperties(params)

	properties.Property("endpoints distinct and optimal replay succeeds", prop.ForAll(
		func(seed int64, tier puzzle.Tier) bool {
			s, err := puzzle.New(tier, puzzle.WithSeed(seed))
			if err != nil || s.Start() == s.End() {
				return false
			}
			route := s.Optimal().Route
			if route[0] != s.Start() || route[len(route)-1] != s.End() {
				return false
			}
			for _, id := range route {
				if s.HandleSelection(id).Ignored() {
					return false
				}
			}
			st := s.RenderState()
			return st.Outcome == puzzle.Success && slices.Equal(st.PlayerRoute, route)
		},
		gen.Int64(),
		gen.OneConstOf(puzzle.TierEasy, puzzle.TierNormal),
	))

	properties.Property("reversed intermediates never beat the optimum", prop.ForAll(
		func(seed int64) bool {
			s, err := puzzle.New(puzzle.TierEasy, puzzle.WithSeed(seed))
			if err != nil {
				return false
			}
			best := s.Optimal()
			mid := slices.Clone(best.Route[1 : len(best.Route)-1])
			slices.Reverse(mid)
			player := append(append([]core.NodeID{s.Start()}, mid...), s.End())
			for _, id := range player {
				s.HandleSelection(id)
			}
			st := s.RenderState()
			if slices.Equal(player, best.Route) {
				return st.Outcome == puzzle.Success
			}
			return st.Outcome == puzzle.Failure && st.PlayerCost >= st.OptimalCost-1e-9
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
