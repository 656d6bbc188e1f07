package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routepuzzle/core"
)

// epsCost is the tolerance used when comparing rounded costs.
const epsCost = 1e-9

// mustGraph builds a graph from raw coordinates or fails the test.
func mustGraph(t testing.TB, pts ...[2]float64) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, len(pts))
	for i, p := range pts {
		nodes[i] = core.Node{ID: core.NodeID(i), Pos: orb.Point{p[0], p[1]}}
	}
	g, err := core.NewGraph(nodes)
	require.NoError(t, err)
	return g
}

// randomGraph places n nodes uniformly in an 800×600 box.
func randomGraph(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Float64() * 800, r.Float64() * 600}
	}
	return mustGraph(t, pts...)
}

// bruteMin recursively enumerates every start→…→end route and returns the
// cheapest cost. Independent of the package's permutation stepping.
func bruteMin(t testing.TB, g *core.Graph, start, end core.NodeID) float64 {
	t.Helper()
	n := g.Order()
	used := make([]bool, n)
	used[start], used[end] = true, true

	w := func(u, v core.NodeID) float64 {
		x, err := g.Weight(u, v)
		require.NoError(t, err)
		return x
	}

	best := math.Inf(1)
	var walk func(last core.NodeID, depth int, acc float64)
	walk = func(last core.NodeID, depth int, acc float64) {
		if depth == n-2 {
			if c := acc + w(last, end); c < best {
				best = c
			}
			return
		}
		for v := core.NodeID(0); int(v) < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			walk(v, depth+1, acc+w(last, v))
			used[v] = false
		}
	}
	walk(start, 0, 0)
	return best
}
