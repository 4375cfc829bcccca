package world

import "fmt"

// Grid represents the maze state: which cells have been visited and which
// edges between adjacent cells are open.
//
// verticals is rows x (cols-1), horizontals is (rows-1) x cols. A grid is
// mutated only during generation and frozen afterwards.
type Grid struct {
	rows int
	cols int

	visited     [][]bool
	verticals   [][]bool
	horizontals [][]bool

	frozen bool
}

// NewGrid creates a new grid with all cells unvisited and all edges closed
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("world: %dx%d: %w", rows, cols, ErrInvalidDimension)
	}

	g := &Grid{
		rows:        rows,
		cols:        cols,
		visited:     makeBoolMatrix(rows, cols),
		verticals:   makeBoolMatrix(rows, cols-1),
		horizontals: makeBoolMatrix(rows-1, cols),
	}
	return g, nil
}

func makeBoolMatrix(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains is IsValidPosition for a Position.
func (g *Grid) Contains(p Position) bool {
	return g.IsValidPosition(p.Row, p.Col)
}

// Freeze makes the grid read-only. Mutators return ErrFrozen afterwards.
func (g *Grid) Freeze() {
	g.frozen = true
}

// Frozen reports whether Freeze has been called.
func (g *Grid) Frozen() bool {
	return g.frozen
}

// IsVisited reports whether the cell has been visited.
// It panics with a *RangeError if the cell is outside the grid.
func (g *Grid) IsVisited(row, col int) bool {
	if err := checkIndex("IsVisited", row, col, g.rows, g.cols); err != nil {
		panic(err)
	}
	return g.visited[row][col]
}

// MarkVisited sets the cell's visited flag. Marking twice is a no-op.
func (g *Grid) MarkVisited(row, col int) error {
	if err := g.checkMutable("MarkVisited", row, col, g.rows, g.cols); err != nil {
		return err
	}
	g.visited[row][col] = true
	return nil
}

// OpenVerticalEdge opens the edge between (row, col) and (row, col+1).
func (g *Grid) OpenVerticalEdge(row, col int) error {
	if err := g.checkMutable("OpenVerticalEdge", row, col, g.rows, g.cols-1); err != nil {
		return err
	}
	g.verticals[row][col] = true
	return nil
}

// OpenHorizontalEdge opens the edge between (row, col) and (row+1, col).
func (g *Grid) OpenHorizontalEdge(row, col int) error {
	if err := g.checkMutable("OpenHorizontalEdge", row, col, g.rows-1, g.cols); err != nil {
		return err
	}
	g.horizontals[row][col] = true
	return nil
}

// IsVerticalOpen reports whether the edge between (row, col) and (row, col+1)
// is a passage. It panics with a *RangeError for an edge that does not exist.
func (g *Grid) IsVerticalOpen(row, col int) bool {
	if err := checkIndex("IsVerticalOpen", row, col, g.rows, g.cols-1); err != nil {
		panic(err)
	}
	return g.verticals[row][col]
}

// IsHorizontalOpen reports whether the edge between (row, col) and (row+1, col)
// is a passage. It panics with a *RangeError for an edge that does not exist.
func (g *Grid) IsHorizontalOpen(row, col int) bool {
	if err := checkIndex("IsHorizontalOpen", row, col, g.rows-1, g.cols); err != nil {
		panic(err)
	}
	return g.horizontals[row][col]
}

// EdgeBetween returns the canonical edge crossed when moving from p in dir.
// Moving right from (r,c) and left from (r,c+1) yield the same edge.
// ok is false when the move would leave the grid.
func (g *Grid) EdgeBetween(p Position, dir Direction) (e Edge, ok bool) {
	if !g.Contains(p) || !dir.IsValid() || !g.Contains(p.Step(dir)) {
		return Edge{}, false
	}

	// Edges are owned by the left or upper cell.
	if dir == West || dir == North {
		p, dir = p.Step(dir), dir.Opposite()
	}
	if dir.Vertical() {
		return Edge{Kind: EdgeVertical, Row: p.Row, Col: p.Col}, true
	}
	return Edge{Kind: EdgeHorizontal, Row: p.Row, Col: p.Col}, true
}

// OpenEdge opens the edge crossed when moving from p in dir.
func (g *Grid) OpenEdge(p Position, dir Direction) error {
	e, ok := g.EdgeBetween(p, dir)
	if !ok {
		next := p.Step(dir)
		return &RangeError{Op: "OpenEdge", Row: next.Row, Col: next.Col, Rows: g.rows, Cols: g.cols}
	}
	return g.Open(e)
}

// Open opens the given edge.
func (g *Grid) Open(e Edge) error {
	if e.Kind == EdgeVertical {
		return g.OpenVerticalEdge(e.Row, e.Col)
	}
	return g.OpenHorizontalEdge(e.Row, e.Col)
}

// IsEdgeOpen reports whether the given edge is a passage.
func (g *Grid) IsEdgeOpen(e Edge) bool {
	if e.Kind == EdgeVertical {
		return g.IsVerticalOpen(e.Row, e.Col)
	}
	return g.IsHorizontalOpen(e.Row, e.Col)
}

// IsOpen reports whether a player at p can move in dir. Moves off the grid
// are never open.
func (g *Grid) IsOpen(p Position, dir Direction) bool {
	e, ok := g.EdgeBetween(p, dir)
	if !ok {
		return false
	}
	return g.IsEdgeOpen(e)
}

// VisitedCount returns how many cells are marked visited.
func (g *Grid) VisitedCount() int {
	n := 0
	for _, row := range g.visited {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// OpenEdgeCount returns the number of open edges of both kinds.
func (g *Grid) OpenEdgeCount() int {
	n := 0
	for _, m := range [][][]bool{g.verticals, g.horizontals} {
		for _, row := range m {
			for _, open := range row {
				if open {
					n++
				}
			}
		}
	}
	return n
}

// ForEachEdge calls fn for every edge in the grid, horizontals first, each
// in row-major order.
func (g *Grid) ForEachEdge(fn func(e Edge, open bool)) {
	for row, line := range g.horizontals {
		for col, open := range line {
			fn(Edge{Kind: EdgeHorizontal, Row: row, Col: col}, open)
		}
	}
	for row, line := range g.verticals {
		for col, open := range line {
			fn(Edge{Kind: EdgeVertical, Row: row, Col: col}, open)
		}
	}
}

// ForEachClosedEdge calls fn for every wall, in ForEachEdge order.
func (g *Grid) ForEachClosedEdge(fn func(e Edge)) {
	g.ForEachEdge(func(e Edge, open bool) {
		if !open {
			fn(e)
		}
	})
}

func (g *Grid) checkMutable(op string, row, col, rows, cols int) error {
	if g.frozen {
		return fmt.Errorf("world: %s(%d, %d): %w", op, row, col, ErrFrozen)
	}
	return checkIndex(op, row, col, rows, cols)
}

func checkIndex(op string, row, col, rows, cols int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return &RangeError{Op: op, Row: row, Col: col, Rows: rows, Cols: cols}
	}
	return nil
}
