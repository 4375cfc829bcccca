// Package generator carves perfect mazes into a world.Grid.
package generator

import (
	"fmt"

	"mazeball/pkg/engine/world"
)

// BacktrackerGenerator generates mazes with a randomized depth-first
// traversal (the "recursive backtracker").
type BacktrackerGenerator struct {
	rand      Source
	lastStart world.Position
}

// NewBacktracker creates a backtracker drawing from src.
func NewBacktracker(src Source) *BacktrackerGenerator {
	return &BacktrackerGenerator{rand: src}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// LastStart returns the start cell picked by the most recent Generate.
func (g *BacktrackerGenerator) LastStart() world.Position {
	return g.lastStart
}

// Generate builds a rows x cols grid, carves it from a uniformly random
// start cell, and returns it frozen.
func (g *BacktrackerGenerator) Generate(rows, cols int) (*world.Grid, error) {
	grid, err := world.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	start := world.Position{Row: g.rand.Intn(rows), Col: g.rand.Intn(cols)}
	g.lastStart = start

	if err := Carve(grid, start.Row, start.Col, g.rand); err != nil {
		return nil, err
	}

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %s produced an invalid maze: %w", g.Name(), err)
	}

	grid.Freeze()
	return grid, nil
}

// frame is one pending cell of the depth-first traversal: the cell, its
// shuffled neighbor order, and how many of those neighbors were tried.
type frame struct {
	pos   world.Position
	order [4]world.Direction
	next  int
}

// Carve mutates grid into a spanning-tree maze rooted at (startRow, startCol).
//
// Each cell is entered once: it is marked visited, its four neighbors are
// shuffled, and each in-bounds unvisited neighbor has its edge opened and is
// fully explored before the next neighbor is tried. The traversal keeps an
// explicit stack, so depth is bounded by rows*cols frames rather than the
// goroutine stack. Randomness is consumed in the same order as the recursive
// formulation: four draws (bounds 4, 3, 2, 1) on entering each cell.
func Carve(grid *world.Grid, startRow, startCol int, src Source) error {
	if !grid.IsValidPosition(startRow, startCol) {
		rows, cols := grid.Dimensions()
		return fmt.Errorf("generator: start (%d, %d) in %dx%d grid: %w", startRow, startCol, rows, cols, ErrInvalidStartCell)
	}

	start := world.Position{Row: startRow, Col: startCol}
	if grid.IsVisited(start.Row, start.Col) {
		return nil
	}

	enter := func(p world.Position) (frame, error) {
		if err := grid.MarkVisited(p.Row, p.Col); err != nil {
			return frame{}, err
		}
		f := frame{pos: p, order: world.AllDirections()}
		Shuffle(f.order[:], src)
		return f, nil
	}

	first, err := enter(start)
	if err != nil {
		return err
	}
	stack := []frame{first}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := top.order[top.next]
		top.next++

		next := top.pos.Step(dir)
		if !grid.Contains(next) {
			continue
		}
		if grid.IsVisited(next.Row, next.Col) {
			continue
		}

		if err := grid.OpenEdge(top.pos, dir); err != nil {
			return err
		}

		// top is invalid once the stack grows
		f, err := enter(next)
		if err != nil {
			return err
		}
		stack = append(stack, f)
	}

	return nil
}

// Shuffle permutes dirs uniformly at random in place. It walks from the last
// index down to the first, swapping each element with one drawn from
// [0, i] inclusive.
func Shuffle(dirs []world.Direction, src Source) {
	for i := len(dirs) - 1; i >= 0; i-- {
		j := src.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}
