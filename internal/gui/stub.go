//go:build !ebiten

package gui

import "github.com/katalvlaran/routepuzzle/puzzle"

// Run reports ErrUnavailable; rebuild with -tags ebiten for a window.
func Run(_ func(puzzle.Tier, ...puzzle.Option) (*puzzle.Session, error), _, _ float64) error {
	return ErrUnavailable
}
