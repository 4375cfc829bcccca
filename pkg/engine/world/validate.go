package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Validate checks that the grid is a perfect maze: every cell visited,
// exactly rows*cols-1 open edges, and every cell reachable from (0,0).
// Connectivity plus the edge count rules out cycles.
func (g *Grid) Validate() error {
	cells := g.rows * g.cols

	if n := g.VisitedCount(); n != cells {
		return fmt.Errorf("world: %d of %d cells visited: %w", n, cells, ErrNotSpanningTree)
	}

	if n := g.OpenEdgeCount(); n != cells-1 {
		return fmt.Errorf("world: %d open edges, want %d: %w", n, cells-1, ErrNotSpanningTree)
	}

	reached := g.reachable(Position{})
	if reached.Size() != cells {
		return fmt.Errorf("world: %d of %d cells reachable: %w", reached.Size(), cells, ErrNotSpanningTree)
	}

	return nil
}

// reachable collects every cell connected to start through open edges using BFS
func (g *Grid) reachable(start Position) mapset.Set[Position] {
	visited := mapset.New[Position]()
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		for _, dir := range AllDirections() {
			if g.IsOpen(current, dir) {
				next := current.Step(dir)
				if !visited.Has(next) {
					queue = append(queue, next)
				}
			}
		}
	}

	return visited
}

// Path returns the cells on the route from -> to through open edges,
// both ends included. In a perfect maze this route is unique. Path returns
// nil if either end is outside the grid or to is unreachable.
func (g *Grid) Path(from, to Position) []Position {
	if !g.Contains(from) || !g.Contains(to) {
		return nil
	}

	parent := map[Position]Position{}
	seen := mapset.New[Position]()
	seen.Put(from)
	queue := []Position{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			break
		}

		for _, dir := range AllDirections() {
			if !g.IsOpen(current, dir) {
				continue
			}
			next := current.Step(dir)
			if seen.Has(next) {
				continue
			}
			seen.Put(next)
			parent[next] = current
			queue = append(queue, next)
		}
	}

	if !seen.Has(to) {
		return nil
	}

	var path []Position
	for p := to; p != from; p = parent[p] {
		path = append(path, p)
	}
	path = append(path, from)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
