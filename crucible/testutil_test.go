package crucible_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// sample is the classic 13×13 heat-loss map.
var sample = []string{
	"2413432311323",
	"3215453535623",
	"3255245654254",
	"3446585845452",
	"4546657867536",
	"1438598798454",
	"4457876987766",
	"3637877979653",
	"4654967986887",
	"4564679986453",
	"1224686865563",
	"2546548887735",
	"4322674655533",
}

// unfortunate punishes the ultra crucible for stopping early.
var unfortunate = []string{
	"111111111111",
	"999999999991",
	"999999999991",
	"999999999991",
	"999999999991",
}

func mustDigits(t testing.TB, lines []string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromDigits(lines)
	require.NoError(t, err)
	return g
}

func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int) *gridgraph.Grid {
	t.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewGrid(values)
	require.NoError(t, err)
	return g
}

// oracleState is the oracle's own state key. Headings index oracleDeltas
// and turn i is i±1 mod 4, so nothing here goes through crucible.Space.
type oracleState struct {
	row, col, dir, straight int
}

var oracleDeltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// fixedPoint is an independent oracle: Bellman-Ford relaxation over every
// reachable state, with move rules rebuilt from the variant bounds, until
// nothing changes. It returns false if no goal is reachable.
func fixedPoint(t testing.TB, g *gridgraph.Grid, v crucible.Variant) (int64, bool) {
	t.Helper()
	rows, cols := g.Rows(), g.Cols()
	cost := func(r, c int) int64 {
		w, err := g.Cost(r, c)
		require.NoError(t, err)
		return w
	}

	dist := make(map[oracleState]int64)
	relax := func(s oracleState, d int64) bool {
		if old, ok := dist[s]; ok && old <= d {
			return false
		}
		dist[s] = d
		return true
	}
	for dir, dl := range oracleDeltas {
		r, c := dl[0], dl[1]
		if r >= 0 && r < rows && c >= 0 && c < cols {
			relax(oracleState{r, c, dir, 1}, cost(r, c))
		}
	}
	for changed := true; changed; {
		changed = false
		for s, d := range snapshot(dist) {
			if s.row == rows-1 && s.col == cols-1 && s.straight >= v.MinStraight {
				continue
			}
			for turn := -1; turn <= 1; turn++ {
				dir, straight := (s.dir+turn+4)%4, 1
				if turn == 0 {
					if s.straight >= v.MaxStraight {
						continue
					}
					straight = s.straight + 1
				} else if s.straight < v.MinStraight {
					continue
				}
				r, c := s.row+oracleDeltas[dir][0], s.col+oracleDeltas[dir][1]
				if r < 0 || r >= rows || c < 0 || c >= cols {
					continue
				}
				if relax(oracleState{r, c, dir, straight}, d+cost(r, c)) {
					changed = true
				}
			}
		}
	}

	best, found := int64(math.MaxInt64), false
	for s, d := range dist {
		if s.row == rows-1 && s.col == cols-1 && s.straight >= v.MinStraight && d < best {
			best, found = d, true
		}
	}
	return best, found
}

func snapshot(m map[oracleState]int64) map[oracleState]int64 {
	out := make(map[oracleState]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// simplePathBound enumerates every legal route that never revisits a
// cell and returns the cheapest one. Optimal routes may revisit cells, so
// this is only an upper bound.
func simplePathBound(g *gridgraph.Grid, v crucible.Variant) (int64, bool) {
	rows, cols := g.Rows(), g.Cols()
	seen := make([]bool, rows*cols)
	best, found := int64(math.MaxInt64), false

	var walk func(s crucible.State, cost int64)
	walk = func(s crucible.State, cost int64) {
		if s.Row == rows-1 && s.Col == cols-1 {
			if s.Straight >= v.MinStraight && cost < best {
				best, found = cost, true
			}
			return
		}
		for _, d := range crucible.Directions {
			if d == s.Dir.Reverse() {
				continue
			}
			straight := 1
			if d == s.Dir {
				if s.Straight >= v.MaxStraight {
					continue
				}
				straight = s.Straight + 1
			} else if s.Dir != crucible.None && s.Straight < v.MinStraight {
				continue
			}
			dr, dc := d.Delta()
			nr, nc := s.Row+dr, s.Col+dc
			if !g.InBounds(nr, nc) || seen[g.Index(nr, nc)] {
				continue
			}
			w, _ := g.Cost(nr, nc)
			seen[g.Index(nr, nc)] = true
			walk(crucible.State{Row: nr, Col: nc, Dir: d, Straight: straight}, cost+w)
			seen[g.Index(nr, nc)] = false
		}
	}
	seen[0] = true
	walk(crucible.State{}, 0)

	return best, found
}
