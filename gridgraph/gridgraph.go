package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrInvalidCost for a
// negative cell; each of them wrapped together with ErrInvalidGrid.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, ErrEmptyGrid)
	}
	h, w := len(values), len(values[0])
	g := &Grid{rows: h, cols: w, cells: make([]int64, 0, h*w)}
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				ErrInvalidGrid, ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %w: (%d,%d)=%d", ErrInvalidGrid, ErrInvalidCost, r, c, v)
			}
			g.push(int64(v))
		}
	}

	return g, nil
}

// FromDigits constructs a Grid from rows of decimal digit characters,
// one cost per rune ('0'..'9'). Surrounding whitespace on each row is trimmed.
// Returns the same error set as NewGrid; a non-digit rune is ErrInvalidCost.
func FromDigits(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, ErrEmptyGrid)
	}
	first := strings.TrimSpace(lines[0])
	if first == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, ErrEmptyGrid)
	}
	h, w := len(lines), len(first)
	g := &Grid{rows: h, cols: w, cells: make([]int64, 0, h*w)}
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != w {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				ErrInvalidGrid, ErrNonRectangular, r, len(line), w)
		}
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %w: (%d,%d)=%q", ErrInvalidGrid, ErrInvalidCost, r, c, ch)
			}
			g.push(int64(ch - '0'))
		}
	}

	return g, nil
}

// push appends the next row-major cell during construction.
func (g *Grid) push(v int64) {
	g.cells = append(g.cells, v)
	if v > g.maxCost {
		g.maxCost = v
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// MaxCost returns the largest cell cost in the grid.
func (g *Grid) MaxCost() int64 { return g.maxCost }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cost returns the cost of entering (row,col).
// Returns ErrOutOfBounds if the coordinates fall outside the grid.
// Complexity: O(1).
func (g *Grid) Cost(row, col int) (int64, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}

	return g.cells[g.Index(row, col)], nil
}

// Cell returns the cell at (row,col) together with its cost.
func (g *Grid) Cell(row, col int) (Cell, error) {
	v, err := g.Cost(row, col)
	if err != nil {
		return Cell{}, err
	}

	return Cell{Row: row, Col: col, Cost: v}, nil
}

// Index maps (row,col) to a row‑major index: row*Cols + col.
// The coordinates are not validated.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row‑major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// String renders the grid back into digit rows when every cost fits a
// single digit; wider costs are separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	sep := ""
	if g.maxCost > 9 {
		sep = " "
	}
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteString(sep)
			}
			fmt.Fprintf(&sb, "%d", g.cells[g.Index(r, c)])
		}
	}

	return sb.String()
}
