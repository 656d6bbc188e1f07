package nodegen_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/routepuzzle/nodegen"
)

// TestGenerateInvariants checks spacing and margins across seeds and tier sizes.
func TestGenerateInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	properties.Property("nodes are spaced and inside the margin", prop.ForAll(
		func(seed int64, k int) bool {
			nodes, _, err := nodegen.Generate(k, nodegen.WithSeed(seed))
			if err != nil || len(nodes) != k {
				return false
			}
			lo := nodegen.DefaultMargin
			for i, n := range nodes {
				if n.Pos.X() < lo || n.Pos.X() > nodegen.DefaultWidth-lo ||
					n.Pos.Y() < lo || n.Pos.Y() > nodegen.DefaultHeight-lo {
					return false
				}
				for j := i + 1; j < len(nodes); j++ {
					if planar.Distance(n.Pos, nodes[j].Pos) < nodegen.DefaultMinDistance {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.OneConstOf(6, 8, 10),
	))

	properties.TestingRun(t)
}
