package core_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/core"
)

// TestGraphInvariants checks edge count, symmetry and Euclidean weights
// for arbitrary coordinate sets.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("k·(k-1)/2 symmetric euclidean edges", prop.ForAll(
		func(xs []float64) bool {
			if len(xs) < 4 {
				return true
			}
			// Consume coordinates pairwise.
			nodes := make([]core.Node, 0, len(xs)/2)
			for i := 0; i+1 < len(xs); i += 2 {
				nodes = append(nodes, core.Node{ID: core.NodeID(len(nodes)), Pos: orb.Point{xs[i], xs[i+1]}})
			}

			g, err := core.NewGraph(nodes)
			if err != nil {
				return false
			}
			k := len(nodes)
			edges := g.Edges()
			if len(edges) != k*(k-1)/2 {
				return false
			}
			for _, e := range edges {
				a, b := nodes[e.U].Pos, nodes[e.V].Pos
				want := math.Hypot(a.X()-b.X(), a.Y()-b.Y())
				if math.Abs(e.Weight-want) > 1e-9 {
					return false
				}
				back, err := g.Weight(e.V, e.U)
				if err != nil || back != e.Weight {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 800)),
	))

	properties.TestingRun(t)
}
