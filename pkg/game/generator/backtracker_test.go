// Package generator tests the backtracker: spanning-tree shape, unique paths,
// shuffle uniformity, determinism, and the small fixed scenarios.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"mazeball/pkg/engine/world"
)

// lastIndexSource always returns n-1, which makes Shuffle leave its input in
// place: the neighbor order stays up, right, down, left.
type lastIndexSource struct {
	calls []int
}

func (s *lastIndexSource) Intn(n int) int {
	s.calls = append(s.calls, n)
	return n - 1
}

// scriptedSource replays fixed draws in order.
type scriptedSource struct {
	draws []int
	i     int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.draws[s.i] % n
	s.i++
	return v
}

func newGrid(t *testing.T, rows, cols int) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error = %v", rows, cols, err)
	}
	return g
}

// countSimplePaths counts the distinct simple paths from -> to over open edges.
func countSimplePaths(g *world.Grid, from, to world.Position, onPath map[world.Position]bool) int {
	if from == to {
		return 1
	}
	onPath[from] = true
	defer delete(onPath, from)

	n := 0
	for _, dir := range world.AllDirections() {
		if !g.IsOpen(from, dir) {
			continue
		}
		next := from.Step(dir)
		if onPath[next] {
			continue
		}
		n += countSimplePaths(g, next, to, onPath)
	}
	return n
}

func TestCarve_SpanningTreeProperties(t *testing.T) {
	dims := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 5}, {10, 10}, {17, 31}}
	for _, d := range dims {
		rows, cols := d[0], d[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			src := rand.New(rand.NewSource(int64(rows*100 + cols)))
			for trial := 0; trial < 5; trial++ {
				g := newGrid(t, rows, cols)
				start := world.Position{Row: src.Intn(rows), Col: src.Intn(cols)}
				if err := Carve(g, start.Row, start.Col, src); err != nil {
					t.Fatalf("Carve error = %v", err)
				}
				if n := g.VisitedCount(); n != rows*cols {
					t.Errorf("VisitedCount() = %d, want %d", n, rows*cols)
				}
				if n := g.OpenEdgeCount(); n != rows*cols-1 {
					t.Errorf("OpenEdgeCount() = %d, want %d", n, rows*cols-1)
				}
				if err := g.Validate(); err != nil {
					t.Errorf("Validate() = %v", err)
				}
				for r := 0; r < rows; r++ {
					for c := 0; c < cols; c++ {
						if p := g.Path(start, world.Position{Row: r, Col: c}); p == nil {
							t.Fatalf("cell (%d,%d) unreachable from start %v", r, c, start)
						}
					}
				}
			}
		})
	}
}

func TestCarve_ExactlyOneSimplePath(t *testing.T) {
	src := rand.New(rand.NewSource(11))
	g := newGrid(t, 3, 4)
	start := world.Position{Row: 1, Col: 2}
	if err := Carve(g, start.Row, start.Col, src); err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			target := world.Position{Row: r, Col: c}
			if n := countSimplePaths(g, start, target, map[world.Position]bool{}); n != 1 {
				t.Errorf("simple paths %v -> %v = %d, want 1", start, target, n)
			}
		}
	}
}

func TestCarve_SingleCell(t *testing.T) {
	g := newGrid(t, 1, 1)
	src := &lastIndexSource{}
	if err := Carve(g, 0, 0, src); err != nil {
		t.Fatalf("Carve error = %v", err)
	}
	if !g.IsVisited(0, 0) {
		t.Error("single cell not visited")
	}
	if n := g.OpenEdgeCount(); n != 0 {
		t.Errorf("OpenEdgeCount() = %d, want 0", n)
	}
	// One shuffle for the only cell entered.
	if len(src.calls) != 4 {
		t.Errorf("draws = %v, want exactly one shuffle of 4", src.calls)
	}
}

func TestCarve_TwoByTwoIdentityOrder(t *testing.T) {
	g := newGrid(t, 2, 2)
	src := &lastIndexSource{}
	if err := Carve(g, 0, 0, src); err != nil {
		t.Fatalf("Carve error = %v", err)
	}

	// right from (0,0), down from (0,1), left from (1,1)
	if !g.IsVerticalOpen(0, 0) {
		t.Error("vertical(0,0) between (0,0) and (0,1) should be open")
	}
	if !g.IsHorizontalOpen(0, 1) {
		t.Error("horizontal(0,1) between (0,1) and (1,1) should be open")
	}
	if !g.IsVerticalOpen(1, 0) {
		t.Error("vertical(1,0) between (1,0) and (1,1) should be open")
	}
	if g.IsHorizontalOpen(0, 0) {
		t.Error("horizontal(0,0) should stay closed (no cycle)")
	}
	if n := g.OpenEdgeCount(); n != 3 {
		t.Errorf("OpenEdgeCount() = %d, want 3", n)
	}
	if n := g.VisitedCount(); n != 4 {
		t.Errorf("VisitedCount() = %d, want 4", n)
	}

	// Four cells entered, four draws each with bounds 4, 3, 2, 1.
	want := []int{4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1}
	if fmt.Sprint(src.calls) != fmt.Sprint(want) {
		t.Errorf("draw bounds = %v, want %v", src.calls, want)
	}
}

func TestCarve_InvalidStart(t *testing.T) {
	g := newGrid(t, 2, 3)
	for _, start := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		err := Carve(g, start[0], start[1], &lastIndexSource{})
		if !errors.Is(err, ErrInvalidStartCell) {
			t.Errorf("Carve(%d, %d) error = %v, want ErrInvalidStartCell", start[0], start[1], err)
		}
	}
	if g.VisitedCount() != 0 {
		t.Error("invalid start should not touch the grid")
	}
}

func TestCarve_VisitedStartIsNoop(t *testing.T) {
	g := newGrid(t, 2, 2)
	if err := g.MarkVisited(1, 1); err != nil {
		t.Fatal(err)
	}
	src := &lastIndexSource{}
	if err := Carve(g, 1, 1, src); err != nil {
		t.Fatal(err)
	}
	if g.VisitedCount() != 1 || g.OpenEdgeCount() != 0 || len(src.calls) != 0 {
		t.Errorf("Carve from a visited cell changed state: visited=%d open=%d draws=%d",
			g.VisitedCount(), g.OpenEdgeCount(), len(src.calls))
	}
}

func TestCarve_FrozenGrid(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.Freeze()
	if err := Carve(g, 0, 0, &lastIndexSource{}); !errors.Is(err, world.ErrFrozen) {
		t.Errorf("Carve on frozen grid error = %v, want ErrFrozen", err)
	}
}

func TestCarve_Deterministic(t *testing.T) {
	carve := func() string {
		g := newGrid(t, 12, 20)
		if err := Carve(g, 4, 9, rand.New(rand.NewSource(42))); err != nil {
			t.Fatal(err)
		}
		return g.String()
	}
	if a, b := carve(), carve(); a != b {
		t.Errorf("same seed produced different mazes:\n%s\n%s", a, b)
	}
}

// carveRecursive is the textbook recursive formulation, used as a reference.
func carveRecursive(t *testing.T, g *world.Grid, p world.Position, src Source) {
	if g.IsVisited(p.Row, p.Col) {
		return
	}
	if err := g.MarkVisited(p.Row, p.Col); err != nil {
		t.Fatal(err)
	}
	order := world.AllDirections()
	Shuffle(order[:], src)
	for _, dir := range order {
		next := p.Step(dir)
		if !g.Contains(next) || g.IsVisited(next.Row, next.Col) {
			continue
		}
		if err := g.OpenEdge(p, dir); err != nil {
			t.Fatal(err)
		}
		carveRecursive(t, g, next, src)
	}
}

func TestCarve_MatchesRecursiveFormulation(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		iterative := newGrid(t, 9, 13)
		recursive := newGrid(t, 9, 13)
		if err := Carve(iterative, 3, 5, rand.New(rand.NewSource(seed))); err != nil {
			t.Fatal(err)
		}
		carveRecursive(t, recursive, world.Position{Row: 3, Col: 5}, rand.New(rand.NewSource(seed)))
		if iterative.String() != recursive.String() {
			t.Fatalf("seed %d: explicit stack diverged from recursion:\n%s\n%s", seed, iterative, recursive)
		}
	}
}

func TestShuffle_EveryDrawSequenceIsDistinctPermutation(t *testing.T) {
	// The 4*3*2*1 possible draw sequences must map onto the 24 permutations
	// one-to-one; that is what makes the shuffle exactly uniform.
	seen := map[[4]world.Direction]bool{}
	for a := 0; a < 4; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 2; c++ {
				dirs := world.AllDirections()
				Shuffle(dirs[:], &scriptedSource{draws: []int{a, b, c, 0}})
				seen[dirs] = true
			}
		}
	}
	if len(seen) != 24 {
		t.Errorf("distinct permutations = %d, want 24", len(seen))
	}
}

func TestShuffle_Uniformity(t *testing.T) {
	const trials = 48000
	src := rand.New(rand.NewSource(7))
	counts := map[[4]world.Direction]int{}
	for i := 0; i < trials; i++ {
		dirs := world.AllDirections()
		Shuffle(dirs[:], src)
		counts[dirs]++
	}
	if len(counts) != 24 {
		t.Fatalf("observed %d permutations, want 24", len(counts))
	}

	expected := float64(trials) / 24
	chi2 := 0.0
	for _, n := range counts {
		d := float64(n) - expected
		chi2 += d * d / expected
	}
	// 23 degrees of freedom, p = 0.001
	if chi2 > 49.73 {
		t.Errorf("chi-square = %.2f over 24 permutations, want <= 49.73", chi2)
	}
}

func TestBacktracker_Generate(t *testing.T) {
	gen := NewBacktracker(rand.New(rand.NewSource(3)))
	if gen.Name() == "" {
		t.Error("Name() is empty")
	}
	g, err := gen.Generate(6, 9)
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if !g.Frozen() {
		t.Error("generated grid is not frozen")
	}
	if rows, cols := g.Dimensions(); rows != 6 || cols != 9 {
		t.Errorf("Dimensions() = (%d, %d), want (6, 9)", rows, cols)
	}
	if !g.Contains(gen.LastStart()) {
		t.Errorf("LastStart() = %v outside grid", gen.LastStart())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	if _, err := gen.Generate(0, 4); !errors.Is(err, world.ErrInvalidDimension) {
		t.Errorf("Generate(0, 4) error = %v, want ErrInvalidDimension", err)
	}
}

func TestBacktracker_SameSeedSameMaze(t *testing.T) {
	a, err := NewBacktracker(NewSource(99)).Generate(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBacktracker(NewSource(99)).Generate(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("NewSource(99) produced two different mazes")
	}
}
