// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/heatpath.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
//
// Every construction failure wraps ErrInvalidGrid, so callers can test a
// single sentinel and still inspect the concrete reason with errors.Is.
var (
	// ErrInvalidGrid is the umbrella for all construction-time rejections.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCost indicates a negative cost or a non-digit cost character.
	ErrInvalidCost = errors.New("gridgraph: cell cost must be a non-negative integer")
	// ErrOutOfBounds indicates a lookup outside [0,Rows) × [0,Cols).
	ErrOutOfBounds = errors.New("gridgraph: cell coordinates out of bounds")
)

// Cell represents a single grid cell with its coordinates and stored cost.
type Cell struct {
	Row, Col int   // Coordinates within the grid
	Cost     int64 // Cost paid for entering (Row, Col)
}

// Grid is a rectangular cost map. It is immutable once built:
// cells are stored row-major in a private slice and only exposed by value.
type Grid struct {
	rows, cols int
	cells      []int64
	maxCost    int64
}
