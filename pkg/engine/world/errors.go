package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a grid is built with rows or cols <= 0.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfRange is the kind of every out-of-bounds cell or edge access.
	ErrOutOfRange = errors.New("index out of range")

	// ErrFrozen is returned by mutators once generation has finished.
	ErrFrozen = errors.New("grid is frozen")

	// ErrNotSpanningTree is returned by Validate.
	ErrNotSpanningTree = errors.New("open edges do not form a spanning tree")
)

// RangeError describes an access outside the grid. It matches ErrOutOfRange
// with errors.Is.
type RangeError struct {
	Op   string // accessor that was called
	Row  int
	Col  int
	Rows int // valid row bound for the accessed array
	Cols int // valid column bound for the accessed array
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("world: %s(%d, %d): index out of range [%d x %d]", e.Op, e.Row, e.Col, e.Rows, e.Cols)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
