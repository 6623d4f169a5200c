// Package gridgraph treats a rectangular 2D array of non-negative cell
// costs as the backing store of an implicit graph.
//
// What:
//
//   - Grid wraps a rectangular cost matrix and never mutates it after
//     construction, so a single Grid may be shared by any number of
//     concurrent searches.
//   - Cost(row, col) is an O(1) lookup; coordinates outside the grid are
//     reported as ErrOutOfBounds rather than silently clamped.
//   - FromDigits accepts the classic puzzle layout: one decimal digit per cell.
//
// Why:
//
//   - Heat-loss maps, terrain costs, and any "pay to enter a cell" model.
//   - A building block for state spaces that add movement history on top of
//     plain positions (see package crucible).
//
// Complexity:
//
//   - NewGrid / FromDigits: O(R×C), Memory: O(R×C).
//   - Cost, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrInvalidGrid: wrapped by every construction failure below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCost: a negative cost, or a non-digit character in FromDigits.
//   - ErrOutOfBounds: Cost/Cell called outside [0,Rows) × [0,Cols).
package gridgraph
