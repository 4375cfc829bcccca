// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazeball/pkg/engine/world"
	"mazeball/pkg/game/state"
)

const mapDumpFilename = "maze.txt"

// WriteMaze writes the maze with the ball (@), goal (G), carve start (S)
// and, when the hint is on, the solution trail (.).
func WriteMaze(w io.Writer, g *state.Game) {
	ball := g.BallCell()
	goal := g.GoalCell()

	trail := map[world.Position]bool{}
	if g.ShowHint {
		for _, p := range g.Solution() {
			trail[p] = true
		}
	}

	fmt.Fprint(w, g.Grid.Render(func(p world.Position) rune {
		switch {
		case p == ball:
			return '@'
		case p == goal && !g.Won:
			return 'G'
		case trail[p]:
			return '.'
		case p == g.Start:
			return 'S'
		}
		return 0
	}))
}

// DumpMazeToFile writes a debug dump to maze.txt: metadata, legend and the
// maze itself. Returns the absolute path written.
func DumpMazeToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}
	if err := WriteDumpFile(absPath, g); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteDumpFile writes the dump to path, reporting write and close errors.
func WriteDumpFile(path string, g *state.Game) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	WriteDump(f, g)
	return f.Sync()
}

// WriteDump writes the full dump that DumpMazeToFile stores.
func WriteDump(w io.Writer, g *state.Game) {
	rows, cols := g.Grid.Dimensions()
	ball := g.BallCell()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "grid_rows: %d\n", rows)
	fmt.Fprintf(w, "grid_cols: %d\n", cols)
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "carve_start: %d,%d\n", g.Start.Row, g.Start.Col)
	fmt.Fprintf(w, "ball_cell: %d,%d\n", ball.Row, ball.Col)
	fmt.Fprintf(w, "ball_pos: %.1f,%.1f\n", g.Ball.Pos.X, g.Ball.Pos.Y)
	fmt.Fprintf(w, "open_edges: %d\n", g.Grid.OpenEdgeCount())
	fmt.Fprintf(w, "walls: %d\n", len(g.Scene.Walls))
	fmt.Fprintf(w, "won: %v\n", g.Won)
	fmt.Fprintf(w, "ticks: %d\n", g.Ticks)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "@ = ball  G = goal  S = carve start  . = solution trail")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Maze ---")
	WriteMaze(w, g)
	fmt.Fprintln(w, "")

	if path := g.Solution(); path != nil {
		fmt.Fprintf(w, "solution_length: %d\n", len(path))
	}
	fmt.Fprintln(w, "=== END MAZE DUMP ===")
}
