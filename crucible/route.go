package crucible

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// MinHeatLoss returns the minimal total cost of moving a crucible from the
// top-left to the bottom-right cell of g under variant v. The cost of the
// start cell is never paid. Extra dijkstra options (logger, hooks, caps) are
// passed through.
//
// Returns dijkstra.ErrNoPath when no legal route exists, plus the errors of
// NewSpace. Each call owns a fresh search; g may be shared across goroutines.
func MinHeatLoss(g *gridgraph.Grid, v Variant, opts ...dijkstra.Option) (int64, error) {
	sp, err := NewSpace(g, v)
	if err != nil {
		return 0, err
	}
	res, err := dijkstra.Search[State](sp, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// FindRoute is MinHeatLoss plus the optimal route itself, rebuilt from
// parent pointers.
func FindRoute(g *gridgraph.Grid, v Variant, opts ...dijkstra.Option) (Route, error) {
	sp, err := NewSpace(g, v)
	if err != nil {
		return Route{}, err
	}
	opts = append(opts[:len(opts):len(opts)], dijkstra.WithReturnPath())
	res, err := dijkstra.Search[State](sp, opts...)
	if err != nil {
		return Route{}, err
	}

	return Route{Cost: res.Cost, Steps: res.Path}, nil
}

// Runs collapses the route into maximal straight runs.
// The move-less start of a 1×1 grid yields no runs.
func (r Route) Runs() []Run {
	var runs []Run
	for _, s := range r.Steps {
		if s.Dir == None {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].Dir == s.Dir {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run{Dir: s.Dir, Length: 1})
	}

	return runs
}

// Render draws the route over g: visited cells show the arrow of the move
// that entered them, all other cells keep their cost. Cells are laid out
// like g.String(), space separated once any cost has more than one digit.
// The start cell is drawn as-is.
func (r Route) Render(g *gridgraph.Grid) string {
	marks := make(map[[2]int]Direction, len(r.Steps))
	for _, s := range r.Steps {
		if s.Dir != None {
			marks[[2]int{s.Row, s.Col}] = s.Dir
		}
	}
	sep := ""
	if g.MaxCost() > 9 {
		sep = " "
	}
	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols(); col++ {
			if col > 0 {
				sb.WriteString(sep)
			}
			if d, ok := marks[[2]int{row, col}]; ok {
				sb.WriteString(d.String())
				continue
			}
			cost, _ := g.Cost(row, col)
			sb.WriteString(strconv.FormatInt(cost, 10))
		}
	}

	return sb.String()
}
