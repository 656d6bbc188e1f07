//go:build ebiten

// SPDX-License-Identifier: MIT
// Package: routepuzzle/internal/gui
//
// game.go - ebiten host: window, menu, board and result overlay.

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/puzzle"
)

var (
	background   = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	buttonFill   = color.RGBA{R: 60, G: 60, B: 90, A: 255}
	startFill    = color.RGBA{R: 40, G: 160, B: 60, A: 255}
	endFill      = color.RGBA{R: 180, G: 50, B: 50, A: 255}
	routeColor   = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	bandColor    = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	optimalColor = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

// Game implements ebiten.Game and puzzle.Navigator.
type Game struct {
	factory func(puzzle.Tier, ...puzzle.Option) (*puzzle.Session, error)
	width   int
	height  int
	buttons []menuButton
	session *puzzle.Session
	message string
}

// Run opens the window and blocks until it is closed.
func Run(factory func(puzzle.Tier, ...puzzle.Option) (*puzzle.Session, error), width, height float64) error {
	g := &Game{
		factory: factory,
		width:   int(width),
		height:  int(height),
		buttons: menuButtons(width, height),
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Shortest Route Puzzle")

	return ebiten.RunGame(g)
}

// ReturnToMenu implements puzzle.Navigator.
func (g *Game) ReturnToMenu() { g.session = nil }

func (g *Game) Update() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	x, y := ebiten.CursorPosition()
	p := orb.Point{float64(x), float64(y)}

	if g.session == nil {
		if tier, ok := menuAt(g.buttons, p); ok {
			s, err := g.factory(tier, puzzle.WithNavigator(g))
			if err != nil {
				g.message = err.Error()
				return nil
			}
			g.session, g.message = s, ""
		}
		return nil
	}

	if ctl, ok := g.session.ControlAt(p); ok {
		g.session.Press(ctl.ID)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.session == nil {
		g.drawMenu(screen)
		return
	}
	g.drawBoard(screen)
}

func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

func (g *Game) drawMenu(screen *ebiten.Image) {
	for _, b := range g.buttons {
		fillBound(screen, b.bound, buttonFill)
		c := b.bound.Center()
		ebitenutil.DebugPrintAt(screen, b.label, int(c.X())-3*len(b.label), int(c.Y())-8)
	}
	if g.message != "" {
		ebitenutil.DebugPrintAt(screen, g.message, 10, g.height-20)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	st := g.session.RenderState()
	graph := g.session.Graph()

	if st.Outcome == puzzle.Failure {
		for i := 1; i < len(st.OptimalRoute); i++ {
			a, _ := graph.Node(st.OptimalRoute[i-1])
			b, _ := graph.Node(st.OptimalRoute[i])
			strokePoints(screen, a.Pos, b.Pos, 2, optimalColor)
		}
	}
	for _, c := range st.Connections {
		strokePoints(screen, c.A, c.B, 3, routeColor)
	}
	if st.Phase == puzzle.Building && st.HasLastSelected {
		last, _ := graph.Node(st.LastSelected)
		x, y := ebiten.CursorPosition()
		strokePoints(screen, last.Pos, orb.Point{float64(x), float64(y)}, 1, bandColor)
	}

	for _, ctl := range g.session.Controls() {
		fill := buttonFill
		switch {
		case ctl.IsBack:
		case ctl.Node == st.Start:
			fill = startFill
		case ctl.Node == st.End:
			fill = endFill
		}
		fillBound(screen, ctl.Bound, fill)
		c := ctl.Center()
		ebitenutil.DebugPrintAt(screen, ctl.Label, int(c.X())-3*len(ctl.Label), int(c.Y())-8)
	}

	if banner := bannerText(st.Outcome); banner != "" {
		ebitenutil.DebugPrintAt(screen, banner, g.width/2-3*len(banner), 20)
	}
}

func fillBound(dst *ebiten.Image, b orb.Bound, clr color.Color) {
	vector.DrawFilledRect(dst,
		float32(b.Min.X()), float32(b.Min.Y()),
		float32(b.Max.X()-b.Min.X()), float32(b.Max.Y()-b.Min.Y()),
		clr, false)
}

func strokePoints(dst *ebiten.Image, a, b orb.Point, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), width, clr, true)
}
