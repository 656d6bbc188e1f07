// SPDX-License-Identifier: MIT
// Package: routepuzzle/internal/tui
//
// canvas.go - rasterizes a puzzle onto a character grid.
//
// Contract:
//   • Area coordinates map linearly onto cols×rows; ToArea inverts ToCell
//     to the centre of a cell so mouse hits land inside node squares.
//   • Layers are painted in order: optimal overlay, player route, rubber
//     band, labels. Later layers overwrite earlier ones.

package tui

import (
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/puzzle"
)

// Glyphs used on the board.
const (
	glyphEmpty   = ' '
	glyphRoute   = '*'
	glyphOptimal = '~'
	glyphBand    = '.'
)

// Canvas is a fixed-size character raster over an area.
type Canvas struct {
	cols, rows int
	sx, sy     float64
	cells      [][]rune
}

// NewCanvas maps a width×height area onto cols×rows cells.
func NewCanvas(cols, rows int, width, height float64) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &Canvas{
		cols:  cols,
		rows:  rows,
		sx:    width / float64(cols),
		sy:    height / float64(rows),
		cells: make([][]rune, rows),
	}
	c.Clear()

	return c
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for r := range c.cells {
		row := make([]rune, c.cols)
		for i := range row {
			row[i] = glyphEmpty
		}
		c.cells[r] = row
	}
}

// ToCell returns the cell containing p, clamped to the grid.
func (c *Canvas) ToCell(p orb.Point) (col, row int) {
	col = clamp(int(math.Floor(p.X()/c.sx)), 0, c.cols-1)
	row = clamp(int(math.Floor(p.Y()/c.sy)), 0, c.rows-1)

	return col, row
}

// ToArea returns the area point at the centre of a cell.
func (c *Canvas) ToArea(col, row int) orb.Point {
	return orb.Point{(float64(col) + 0.5) * c.sx, (float64(row) + 0.5) * c.sy}
}

// Set writes ch at (col,row) when inside the grid.
func (c *Canvas) Set(col, row int, ch rune) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row][col] = ch
}

// Line draws a segment between two area points with Bresenham's algorithm.
func (c *Canvas) Line(a, b orb.Point, ch rune) {
	x0, y0 := c.ToCell(a)
	x1, y1 := c.ToCell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, ch)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += stepX
		}
		if e2 <= dx {
			e += dx
			y0 += stepY
		}
	}
}

// Text writes s so that it is centred on p.
func (c *Canvas) Text(p orb.Point, s string) {
	col, row := c.ToCell(p)
	rs := []rune(s)
	col -= len(rs) / 2
	for i, r := range rs {
		c.Set(col+i, row, r)
	}
}

// String joins the rows with newlines, trailing spaces kept.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.cols + 1) * c.rows)
	for r, row := range c.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}

	return b.String()
}

// Paint draws one frame of s. pointer is the hovered area point, used for the
// rubber band while a route is being built; hasPointer=false skips it.
func (c *Canvas) Paint(s *puzzle.Session, pointer orb.Point, hasPointer bool) {
	c.Clear()
	st := s.RenderState()
	g := s.Graph()

	if st.Outcome == puzzle.Failure {
		for i := 1; i < len(st.OptimalRoute); i++ {
			a, _ := g.Node(st.OptimalRoute[i-1])
			b, _ := g.Node(st.OptimalRoute[i])
			c.Line(a.Pos, b.Pos, glyphOptimal)
		}
	}
	for _, conn := range st.Connections {
		c.Line(conn.A, conn.B, glyphRoute)
	}
	if st.Phase == puzzle.Building && st.HasLastSelected && hasPointer {
		last, _ := g.Node(st.LastSelected)
		c.Line(last.Pos, pointer, glyphBand)
	}
	for _, ctl := range s.Controls() {
		c.Text(ctl.Center(), "["+ctl.Label+"]")
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
