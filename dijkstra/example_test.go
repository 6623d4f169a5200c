// Package dijkstra_test provides examples demonstrating how to use Search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heatpath/dijkstra"
)

// ExampleSearch demonstrates computing a shortest path on a small explicit graph.
// Complexity: O((V+E) log V).
func ExampleSearch() {
	// 1) Describe the graph: start at A, goal is D.
	gs := newGraphSpace("D").seed("A", 0).
		edge("A", "B", 2).
		edge("A", "C", 1).
		edge("C", "B", 1).
		edge("B", "D", 3).
		edge("C", "D", 5)

	// 2) Search and ask for the path.
	res, err := dijkstra.Search[string](gs, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) A→B costs 2 directly; A→C→B also costs 2 but B was first reached directly.
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)
	// Output:
	// cost: 5
	// path: [A B D]
}

// ExampleSearch_noPath shows how an unreachable goal is reported.
func ExampleSearch_noPath() {
	gs := newGraphSpace("Z").seed("A", 0).edge("A", "B", 1)

	_, err := dijkstra.Search[string](gs)
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath))
	// Output: true
}

// ExampleFrontier shows insert-or-improve semantics.
func ExampleFrontier() {
	f := dijkstra.NewFrontier[string](0)
	f.PushOrImprove("x", 10)
	f.PushOrImprove("y", 4)
	f.PushOrImprove("x", 3) // improves x

	for !f.IsEmpty() {
		s, c, _ := f.PopMin()
		fmt.Println(s, c)
	}
	// Output:
	// x 3
	// y 4
}
