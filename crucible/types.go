// Package crucible defines the search state, sentinel errors, and route
// types for minimal heat-loss routing of a crucible across a cost grid.
package crucible

import (
	"errors"
	"fmt"
)

// Sentinel errors for crucible operations.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to NewSpace.
	ErrNilGrid = errors.New("crucible: grid is nil")
	// ErrBadVariant indicates inconsistent MinStraight/MaxStraight bounds.
	ErrBadVariant = errors.New("crucible: invalid variant")
)

// State is one node of the implicit search graph: the current cell, the
// heading of the move that entered it, and how many consecutive moves were
// made in that heading. State is comparable and is used directly as a map key.
type State struct {
	Row, Col int
	Dir      Direction
	Straight int
}

// String renders the state as "(row,col)dir×straight".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)%s×%d", s.Row, s.Col, s.Dir, s.Straight)
}

// Run is a maximal stretch of moves in one heading.
type Run struct {
	Dir    Direction
	Length int
}

// Route is an optimal crucible path: its total heat loss and every state
// from the first move to the goal.
type Route struct {
	Cost  int64
	Steps []State
}
