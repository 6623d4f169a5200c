package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// BenchmarkNewGrid measures construction of a 1000×1000 grid with costs in [1,9].
// Complexity: O(R×C)
func BenchmarkNewGrid(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			row[c] = 1 + rng.Intn(9)
		}
		values[r] = row
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewGrid(values); err != nil {
			b.Fatalf("NewGrid failed: %v", err)
		}
	}
}

// BenchmarkCost measures checked cell lookups across the whole grid.
// Complexity: O(1) per lookup
func BenchmarkCost(b *testing.B) {
	const n = 500
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
	}
	g, err := gridgraph.NewGrid(values)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Cost(i%n, (i/n)%n)
	}
}
