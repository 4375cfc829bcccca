// Package geometry lays a generated maze out in pixel space: one rectangle
// per closed edge, a border around the viewport, the goal square and the
// ball's starting circle.
package geometry

import (
	"math"

	"mazeball/pkg/engine/world"
)

// Default proportions
const (
	DefaultWallThickness   = 3.5
	DefaultBorderThickness = 5.0
	GoalScale              = 0.7 // goal side as a fraction of the smaller unit length
	BallScale              = 0.25
)

// Rect is an axis-aligned rectangle given by its center and size.
type Rect struct {
	X, Y float64 // center
	W, H float64
}

// Circle is given by its center and radius.
type Circle struct {
	X, Y float64
	R    float64
}

// Wall is a rectangle standing on a closed grid edge.
type Wall struct {
	Rect
	Edge world.Edge
}

// Unit holds the pixel size of one cell.
type Unit struct {
	W, H float64
}

// Style controls wall proportions.
type Style struct {
	WallThickness   float64
	BorderThickness float64
}

// DefaultStyle returns the stock wall proportions.
func DefaultStyle() Style {
	return Style{
		WallThickness:   DefaultWallThickness,
		BorderThickness: DefaultBorderThickness,
	}
}

// Scene is the complete static layout for one maze.
type Scene struct {
	Width  float64
	Height float64
	Unit   Unit

	Border [4]Rect // top, bottom, left, right
	Walls  []Wall
	Goal   Rect
	Ball   Circle
}

// UnitFor returns the cell size when a rows x cols grid fills width x height.
func UnitFor(width, height float64, rows, cols int) Unit {
	return Unit{W: width / float64(cols), H: height / float64(rows)}
}

// WallFor returns the rectangle for a closed edge. Horizontal walls run
// along the bottom of their upper cell, vertical walls along the right side
// of their left cell.
func WallFor(e world.Edge, u Unit, thickness float64) Rect {
	if e.Kind == world.EdgeHorizontal {
		return Rect{
			X: float64(e.Col)*u.W + u.W/2,
			Y: float64(e.Row)*u.H + u.H,
			W: u.W,
			H: thickness,
		}
	}
	return Rect{
		X: float64(e.Col)*u.W + u.W,
		Y: float64(e.Row)*u.H + u.H/2,
		W: thickness,
		H: u.H,
	}
}

// CellCenter returns the pixel center of a cell.
func CellCenter(p world.Position, u Unit) (x, y float64) {
	return float64(p.Col)*u.W + u.W/2, float64(p.Row)*u.H + u.H/2
}

// CellAt maps a pixel position back to the cell containing it, clamped to
// the grid.
func CellAt(x, y float64, u Unit, rows, cols int) world.Position {
	col := int(math.Floor(x / u.W))
	row := int(math.Floor(y / u.H))
	return world.Position{Row: clamp(row, 0, rows-1), Col: clamp(col, 0, cols-1)}
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

// Layout builds the scene for grid stretched over width x height pixels.
// The ball starts in the top-left cell and the goal sits in the bottom-right.
func Layout(grid *world.Grid, width, height float64, style Style) Scene {
	rows, cols := grid.Dimensions()
	u := UnitFor(width, height, rows, cols)

	s := Scene{
		Width:  width,
		Height: height,
		Unit:   u,
		Border: [4]Rect{
			{X: width / 2, Y: 0, W: width, H: style.BorderThickness},
			{X: width / 2, Y: height, W: width, H: style.BorderThickness},
			{X: 0, Y: height / 2, W: style.BorderThickness, H: height},
			{X: width, Y: height / 2, W: style.BorderThickness, H: height},
		},
	}

	grid.ForEachClosedEdge(func(e world.Edge) {
		s.Walls = append(s.Walls, Wall{Rect: WallFor(e, u, style.WallThickness), Edge: e})
	})

	side := math.Min(u.W, u.H)

	goalSide := side * GoalScale
	gx, gy := CellCenter(GoalCell(grid), u)
	s.Goal = Rect{X: gx, Y: gy, W: goalSide, H: goalSide}

	bx, by := CellCenter(StartCell(), u)
	s.Ball = Circle{X: bx, Y: by, R: side * BallScale}

	return s
}

// GoalCell returns the grid cell holding the goal.
func GoalCell(grid *world.Grid) world.Position {
	rows, cols := grid.Dimensions()
	return world.Position{Row: rows - 1, Col: cols - 1}
}

// StartCell returns the grid cell holding the ball at the start.
func StartCell() world.Position {
	return world.Position{}
}
