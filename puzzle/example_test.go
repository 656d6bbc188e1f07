package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/routepuzzle/core"
	"github.com/katalvlaran/routepuzzle/puzzle"
)

func ExampleSession_HandleSelection() {
	s, err := puzzle.NewFromNodes(lineNodes())
	if err != nil {
		panic(err)
	}

	fmt.Println(s.HandleSelection(0))
	for _, id := range []core.NodeID{1, 3, 0, 5, 4, 2} {
		s.HandleSelection(id)
	}
	st := s.RenderState()
	fmt.Println(st.Outcome, st.PlayerRoute)
	// Output:
	// ignored_not_start
	// success [1 3 0 5 4 2]
}
