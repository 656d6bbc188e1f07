// SPDX-License-Identifier: MIT
// Package: routepuzzle/internal/gui
//
// menu.go - difficulty menu layout shared by every build.

package gui

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/puzzle"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: built without the ebiten tag")

// Menu button geometry.
const (
	buttonWidth  = 200.0
	buttonHeight = 50.0
	buttonGap    = 20.0
)

type menuButton struct {
	tier  puzzle.Tier
	label string
	bound orb.Bound
}

// menuButtons stacks one button per tier, centred in a width×height window.
func menuButtons(width, height float64) []menuButton {
	n := float64(len(puzzle.Tiers))
	total := n*buttonHeight + (n-1)*buttonGap
	x0 := (width - buttonWidth) / 2
	y0 := (height - total) / 2

	out := make([]menuButton, len(puzzle.Tiers))
	for i, t := range puzzle.Tiers {
		y := y0 + float64(i)*(buttonHeight+buttonGap)
		out[i] = menuButton{
			tier:  t,
			label: t.String(),
			bound: orb.Bound{Min: orb.Point{x0, y}, Max: orb.Point{x0 + buttonWidth, y + buttonHeight}},
		}
	}

	return out
}

// menuAt returns the tier whose button contains p.
func menuAt(buttons []menuButton, p orb.Point) (puzzle.Tier, bool) {
	for _, b := range buttons {
		if b.bound.Contains(p) {
			return b.tier, true
		}
	}

	return 0, false
}

// bannerText is the centred result line.
func bannerText(o puzzle.Outcome) string {
	switch o {
	case puzzle.Success:
		return "SUCCESS!"
	case puzzle.Failure:
		return "TRY AGAIN!"
	default:
		return ""
	}
}
