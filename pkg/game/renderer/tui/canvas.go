package tui

import (
	"math"
	"strings"

	"mazeball/pkg/engine/physics"
	"mazeball/pkg/engine/world"
	"mazeball/pkg/game/state"
)

// Icon constants
const (
	IconBall  = '@'
	IconGoal  = '⌂'
	IconHint  = '·'
	IconPost  = '+'
	IconHWall = '-'
	IconVWall = '|'
)

type kind uint8

const (
	kindEmpty kind = iota
	kindWall
	kindHint
	kindGoal
	kindBall
)

type cell struct {
	r    rune
	kind kind
}

// Canvas is the maze drawn as characters: each grid cell is 4 columns by
// 2 rows, the same layout as world.Grid.String.
type Canvas struct {
	cells [][]cell

	// characters per virtual pixel
	sx, sy float64
}

func newCanvas(g *state.Game) *Canvas {
	rows, cols := g.Grid.Dimensions()
	c := &Canvas{
		cells: make([][]cell, 2*rows+1),
		sx:    4 / g.Scene.Unit.W,
		sy:    2 / g.Scene.Unit.H,
	}
	for i := range c.cells {
		line := make([]cell, 4*cols+1)
		for j := range line {
			line[j] = cell{r: ' '}
		}
		c.cells[i] = line
	}
	return c
}

func (c *Canvas) set(row, col int, r rune, k kind) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = cell{r: r, kind: k}
}

// At returns the rune at a canvas position, or 0 outside.
func (c *Canvas) At(row, col int) rune {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return 0
	}
	return c.cells[row][col].r
}

// String returns the canvas without colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, line := range c.cells {
		for _, ch := range line {
			b.WriteRune(ch.r)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// wall rasterises a rectangle body. Wide bodies become a row of dashes,
// tall ones a column of bars, both capped with posts.
func (c *Canvas) wall(b *physics.Body) {
	if b.W >= b.H {
		row := round(b.Pos.Y * c.sy)
		x0 := round((b.Pos.X - b.W/2) * c.sx)
		x1 := round((b.Pos.X + b.W/2) * c.sx)
		for x := x0; x <= x1; x++ {
			r := IconHWall
			if x == x0 || x == x1 {
				r = IconPost
			}
			c.set(row, x, r, kindWall)
		}
		return
	}

	col := round(b.Pos.X * c.sx)
	y0 := round((b.Pos.Y - b.H/2) * c.sy)
	y1 := round((b.Pos.Y + b.H/2) * c.sy)
	for y := y0; y <= y1; y++ {
		r := IconVWall
		if y == y0 || y == y1 {
			r = IconPost
		}
		if r == IconPost && c.At(y, col) == IconHWall {
			continue
		}
		c.set(y, col, r, kindWall)
	}
}

// Draw renders the game's current physics state onto a canvas. Walls are
// drawn from their bodies so released walls are seen falling.
func Draw(g *state.Game) *Canvas {
	c := newCanvas(g)

	if g.ShowHint {
		for _, p := range g.Solution() {
			row, col := CellOrigin(p)
			c.set(row, col, IconHint, kindHint)
		}
	}

	for _, b := range g.World.Bodies() {
		switch b.Label {
		case state.LabelBorder, state.LabelWall:
			c.wall(b)
		}
	}

	if g.Goal != nil {
		c.set(round(g.Goal.Pos.Y*c.sy), round(g.Goal.Pos.X*c.sx), IconGoal, kindGoal)
	}
	if g.Ball != nil {
		c.set(round(g.Ball.Pos.Y*c.sy), round(g.Ball.Pos.X*c.sx), IconBall, kindBall)
	}

	return c
}

// CellOrigin returns the canvas position of a grid cell's interior center.
func CellOrigin(p world.Position) (row, col int) {
	return 2*p.Row + 1, 4*p.Col + 2
}

func round(v float64) int {
	return int(math.Round(v))
}
