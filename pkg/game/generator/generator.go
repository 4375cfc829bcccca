package generator

import (
	"errors"
	"math/rand"
	"time"

	"mazeball/pkg/engine/world"
)

// ErrInvalidStartCell is returned when carving starts outside the grid.
var ErrInvalidStartCell = errors.New("start cell outside grid")

// Source is the randomness a generator draws from. Intn returns a uniform
// value in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(rows, cols int) (*world.Grid, error)
	Name() string
}

// NewSource returns a seeded math/rand source. A zero seed uses the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = NewBacktracker(NewSource(0))
