// Package heatpath is a small toolkit for shortest-path puzzles whose
// search nodes carry movement history, not just a position.
//
// 🚀 What is heatpath?
//
//	Three layers, each usable on its own:
//		• gridgraph — immutable rectangular cost maps with O(1) lookups
//		• dijkstra  — a generic Dijkstra engine over implicit state spaces,
//		              with an indexed insert-or-improve frontier
//		• crucible  — the run-length constrained state space: at least
//		              MinStraight and at most MaxStraight moves between turns
//
// ✨ Why?
//
//   - Constraint in the state – direction and straight-run count are part
//     of the node identity, so plain Dijkstra stays correct
//   - Deterministic – insertion-order tie-breaks, reproducible routes
//   - No hidden state – every query owns its cost table and frontier
//   - Observable – zerolog summaries and a per-state finalization hook
//
// Quick ASCII example (basic crucible, cost 5):
//
//	1911
//	v>91
//	9v>>
//
// Layout:
//
//	crucible/  — Direction, State, Space, Variant, MinHeatLoss, FindRoute
//	dijkstra/  — Space[S], Step[S], Search[S], Frontier[S], options
//	gridgraph/ — Grid, NewGrid, FromDigits
//
//	go get github.com/katalvlaran/heatpath
package heatpath
