package crucible

import (
	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// Space is the crucible state space over a Grid. It implements
// dijkstra.Space[State]. The start is the top-left cell and the goal is the
// bottom-right cell. A Space is read-only after construction and may be
// searched concurrently.
type Space struct {
	grid    *gridgraph.Grid
	variant Variant
	goalRow int
	goalCol int
}

var _ dijkstra.Space[State] = (*Space)(nil)

// NewSpace binds a variant to a grid.
// Returns ErrNilGrid for a nil grid and ErrBadVariant for invalid bounds.
func NewSpace(g *gridgraph.Grid, v Variant) (*Space, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	return &Space{
		grid:    g,
		variant: v,
		goalRow: g.Rows() - 1,
		goalCol: g.Cols() - 1,
	}, nil
}

// Variant returns the constraints the space was built with.
func (sp *Space) Variant() Variant { return sp.variant }

// Grid returns the underlying cost map.
func (sp *Space) Grid() *gridgraph.Grid { return sp.grid }

// Initial returns the legal first moves out of the top-left cell: one step
// Right and one step Down, each with Straight = 1 and the cost of the cell
// entered. When start and goal coincide (1×1 grid) it returns the single
// zero-cost state {0,0,None,0}.
func (sp *Space) Initial() []dijkstra.Step[State] {
	if sp.goalRow == 0 && sp.goalCol == 0 {
		return []dijkstra.Step[State]{{State: State{Dir: None}, Cost: 0}}
	}
	steps := make([]dijkstra.Step[State], 0, 2)
	for _, d := range [2]Direction{Right, Down} {
		if st, ok := sp.move(State{}, d, 1); ok {
			steps = append(steps, st)
		}
	}

	return steps
}

// Successors returns the legal moves out of s: straight ahead while
// s.Straight < MaxStraight, and a quarter turn either way once
// s.Straight ≥ MinStraight. Reversing is never legal; moves leaving the
// grid are omitted.
func (sp *Space) Successors(s State) []dijkstra.Step[State] {
	if s.Dir == None {
		return nil
	}
	steps := make([]dijkstra.Step[State], 0, 3)
	if s.Straight < sp.variant.MaxStraight {
		if st, ok := sp.move(s, s.Dir, s.Straight+1); ok {
			steps = append(steps, st)
		}
	}
	if s.Straight >= sp.variant.MinStraight {
		for _, right := range [2]bool{false, true} {
			if st, ok := sp.move(s, s.Dir.Turn(right), 1); ok {
				steps = append(steps, st)
			}
		}
	}

	return steps
}

// IsGoal reports whether s sits on the bottom-right cell at the end of a
// run of at least MinStraight moves, or is the move-less start of a 1×1 grid.
func (sp *Space) IsGoal(s State) bool {
	if s.Row != sp.goalRow || s.Col != sp.goalCol {
		return false
	}

	return s.Dir == None || s.Straight >= sp.variant.MinStraight
}

// move advances one cell from s in direction d, producing a state with the
// given straight count. ok is false when the target cell is off the grid.
func (sp *Space) move(s State, d Direction, straight int) (dijkstra.Step[State], bool) {
	dr, dc := d.Delta()
	next := State{Row: s.Row + dr, Col: s.Col + dc, Dir: d, Straight: straight}
	if !sp.grid.InBounds(next.Row, next.Col) {
		return dijkstra.Step[State]{}, false
	}
	cost, err := sp.grid.Cost(next.Row, next.Col)
	if err != nil {
		return dijkstra.Step[State]{}, false
	}

	return dijkstra.Step[State]{State: next, Cost: cost}, true
}
