// Package world provides the maze grid model: per-cell visitation and the
// open/closed state of every edge between orthogonally adjacent cells.
package world

import "fmt"

// Position identifies a cell by row and column.
type Position struct {
	Row int
	Col int
}

// String returns the position as "row:col"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Step returns the position one cell away in the given direction.
// The result is not bounds checked.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// EdgeKind distinguishes the two edge arrays of a grid.
type EdgeKind int

const (
	// EdgeVertical separates (row, col) from (row, col+1).
	EdgeVertical EdgeKind = iota
	// EdgeHorizontal separates (row, col) from (row+1, col).
	EdgeHorizontal
)

// String returns the string representation of an edge kind
func (k EdgeKind) String() string {
	switch k {
	case EdgeVertical:
		return "vertical"
	case EdgeHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Edge names one wall/passage slot. Row and Col are the canonical indices:
// a vertical edge is indexed by the cell on its left, a horizontal edge by
// the cell above it.
type Edge struct {
	Kind EdgeKind
	Row  int
	Col  int
}

// String returns e.g. "vertical(2,3)"
func (e Edge) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Row, e.Col)
}
