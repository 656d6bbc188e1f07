package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routepuzzle/core"
	"github.com/katalvlaran/routepuzzle/tsp"
)

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		route []core.NodeID
		ok    bool
	}{
		{name: "valid", route: []core.NodeID{0, 2, 1, 3}, ok: true},
		{name: "too short", route: []core.NodeID{0, 2, 3}},
		{name: "too long", route: []core.NodeID{0, 2, 1, 2, 3}},
		{name: "wrong start", route: []core.NodeID{2, 0, 1, 3}},
		{name: "wrong end", route: []core.NodeID{0, 2, 3, 1}},
		{name: "repeat", route: []core.NodeID{0, 1, 1, 3}},
		{name: "out of range", route: []core.NodeID{0, 7, 1, 3}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tsp.ValidatePath(tc.route, 4, 0, 3)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tsp.ErrInvalidPath)
		})
	}
}

func TestPathCost(t *testing.T) {
	g := mustGraph(t, [2]float64{0, 0}, [2]float64{3, 4}, [2]float64{3, 0})

	c, err := tsp.PathCost(g, []core.NodeID{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 9.0, c)

	_, err = tsp.PathCost(g, []core.NodeID{0, 1})
	require.ErrorIs(t, err, tsp.ErrInvalidPath)

	_, err = tsp.PathCost(nil, []core.NodeID{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrNilGraph)
}
