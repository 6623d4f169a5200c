// Package crucible routes a crucible of lava across a heat-loss grid with
// run-length constraints on its movement.
//
// The crucible starts in the top-left cell and must reach the bottom-right
// cell. Entering a cell costs that cell's digit; the start cell is free.
// It may never reverse, must keep going straight for at least MinStraight
// cells before turning or stopping, and may go straight for at most
// MaxStraight cells before it has to turn.
//
// Because the legal next moves depend on movement history, the search node
// is State{Row, Col, Dir, Straight}, not a bare cell. Two arrivals at the
// same cell from the same heading with different straight counts are
// different nodes and are never merged. Space exposes this graph to
// dijkstra.Search.
//
// Variants:
//
//   - Basic: MinStraight=0, MaxStraight=3.
//   - Ultra: MinStraight=4, MaxStraight=10.
//   - Custom presets can be decoded from YAML with LoadVariants.
//
// Start equals goal:
//
//   - On a 1×1 grid no move is needed and the answer is 0 for every variant.
//
// Errors:
//
//   - ErrNilGrid: NewSpace was given a nil grid.
//   - ErrBadVariant: MinStraight < 0, MaxStraight < 1, or MinStraight > MaxStraight;
//     also unnamed or duplicate entries in LoadVariants.
//   - dijkstra.ErrNoPath: no legal route reaches the goal.
//
// Example:
//
//	g, _ := gridgraph.FromDigits(lines)
//	basic, _ := crucible.MinHeatLoss(g, crucible.Basic)
//	ultra, _ := crucible.MinHeatLoss(g, crucible.Ultra)
package crucible
