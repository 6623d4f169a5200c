// Package dijkstra implements Dijkstra's shortest-path search over implicit
// state graphs with non-negative step costs.
//
// Notes on implementation choices:
//
//   - The cost table is created lazily: a state gets an entry the first time
//     it is reached, never up front.
//   - The frontier is an indexed heap with real decrease-key, but the loop
//     still skips already-finalized pops, so a Space that seeds the same
//     state twice cannot corrupt the table.
//   - Goal states are not expanded. The search keeps a running minimum over
//     finalized goals and stops once the frontier minimum exceeds it.
//   - We treat any step with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never generate states whose distance exceeds MaxDistance.
package dijkstra

import (
	"fmt"
	"math"
)

// Search runs Dijkstra relaxation over space until the best goal state is
// finalized or the frontier is exhausted. It accepts functional options to
// customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold, Logger, ...).
//
// Returns:
//
//   - res: the minimal goal cost, the goal state attaining it, search
//     statistics and, with WithReturnPath(), the state path seed → goal.
//   - err: ErrNilSpace, ErrNegativeWeight (wrapped with the offending step),
//     or ErrNoPath when no goal state is reachable. On ErrNoPath the
//     statistics in res are still populated.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Search[S comparable](space Space[S], opts ...Option) (Result[S], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the space is non-nil
	if space == nil {
		return Result[S]{}, ErrNilSpace
	}

	// 3) Per-query state: nothing here outlives this call.
	r := &runner[S]{
		space:    space,
		options:  cfg,
		table:    make(map[S]*record[S]),
		frontier: NewFrontier[S](64),
	}

	// 4) Seed the frontier and run the main loop.
	err := r.init()
	if err == nil {
		err = r.process()
	}
	res := Result[S]{Finalized: r.finalized, Pushes: r.pushes}
	if err != nil {
		return res, err
	}

	cfg.Logger.Debug().
		Int("finalized", r.finalized).
		Int("pushes", r.pushes).
		Bool("found", r.found).
		Int64("cost", r.best).
		Msg("dijkstra: search finished")

	if !r.found {
		return res, ErrNoPath
	}

	// 5) Fill the answer and, if requested, walk the parent pointers back.
	res.Cost = r.best
	res.Goal = r.goal
	if cfg.ReturnPath {
		res.Path = r.path(r.goal)
	}

	return res, nil
}

// record is one CostTable entry: best known cost, finalization flag and
// the parent pointer used for path reconstruction.
type record[S comparable] struct {
	cost    int64
	visited bool
	prev    S
	hasPrev bool
}

// runner holds the mutable state for a single search execution.
type runner[S comparable] struct {
	space     Space[S]          // The implicit graph; read-only within Search.
	options   Options           // Configuration options (thresholds, hooks, ...).
	table     map[S]*record[S]  // Maps state → cost, visited flag, parent.
	frontier  *Frontier[S]      // Pending states ordered by cost.
	best      int64             // Running minimum over finalized goals.
	goal      S                 // Goal state attaining best.
	found     bool              // Whether any goal was finalized.
	finalized int               // Number of finalized states.
	pushes    int               // Number of successful frontier updates.
}

// init seeds the cost table and frontier with Space.Initial().
func (r *runner[S]) init() error {
	for _, st := range r.space.Initial() {
		if st.Cost < 0 {
			return fmt.Errorf("%w: seed %v cost=%d", ErrNegativeWeight, st.State, st.Cost)
		}
		if st.Cost >= r.options.InfEdgeThreshold || st.Cost > r.options.MaxDistance {
			continue
		}
		r.offer(st.State, st.Cost, nil)
	}

	return nil
}

// process is the core loop. It repeatedly extracts the cheapest pending
// state, finalizes it, and either records it as a goal or relaxes its
// successors.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - A goal has been found and the frontier minimum exceeds its cost.
//
// States beyond MaxDistance never reach the frontier; init and relax drop them.
func (r *runner[S]) process() error {
	cfg := r.options
	for {
		// 1) Pop the cheapest state.
		s, d, ok := r.frontier.PopMin()
		if !ok {
			return nil
		}

		// 2) Nothing pending can beat the best goal any more.
		if r.found && d > r.best {
			return nil
		}

		// 3) Skip stale entries.
		rec := r.table[s]
		if rec.visited {
			continue
		}

		// 4) d is now final for s.
		rec.visited = true
		r.finalized++
		if cfg.OnFinalize != nil {
			cfg.OnFinalize(s, d)
		}

		// 5) Goals update the running minimum and are not expanded.
		if r.space.IsGoal(s) {
			if !r.found || d < r.best {
				r.found, r.best, r.goal = true, d, s
			}
			cfg.Logger.Trace().Interface("state", s).Int64("cost", d).Msg("dijkstra: goal finalized")
			continue
		}

		// 6) Relax outgoing steps.
		if err := r.relax(s, d); err != nil {
			return err
		}
	}
}

// relax examines each successor of s and offers the improved distance.
// Assumes d == r.table[s].cost is final.
func (r *runner[S]) relax(s S, d int64) error {
	var st Step[S]
	var nd int64
	for _, st = range r.space.Successors(s) {
		if st.Cost < 0 {
			return fmt.Errorf("%w: step %v→%v cost=%d", ErrNegativeWeight, s, st.State, st.Cost)
		}
		// Impassable step.
		if st.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		// Guard against int64 overflow.
		if st.Cost > math.MaxInt64-d {
			continue
		}
		nd = d + st.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		r.offer(st.State, nd, &s)
	}

	return nil
}

// offer lowers the recorded cost of s to cost if that is an improvement
// and s is not finalized, updating the parent pointer and the frontier.
func (r *runner[S]) offer(s S, cost int64, from *S) {
	rec, ok := r.table[s]
	if ok && (rec.visited || rec.cost <= cost) {
		return
	}
	if !ok {
		rec = &record[S]{}
		r.table[s] = rec
	}
	rec.cost = cost
	rec.hasPrev = from != nil
	if from != nil {
		rec.prev = *from
	}
	if r.frontier.PushOrImprove(s, cost) {
		r.pushes++
	}
}

// path rebuilds seed → goal by following parent pointers.
func (r *runner[S]) path(goal S) []S {
	var out []S
	cur := goal
	for {
		out = append(out, cur)
		rec := r.table[cur]
		if rec == nil || !rec.hasPrev {
			break
		}
		cur = rec.prev
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
