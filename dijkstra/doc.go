// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm over implicit state graphs with non-negative
// step costs.
//
// Overview:
//
//   - The caller describes the graph through the generic Space interface
//     (Initial, Successors, IsGoal) instead of materializing vertices and
//     edges. A state can therefore carry arbitrary movement history, such as
//     the direction of the last move and how many moves were made in it.
//   - Search computes the minimal cost over all accepting goal states. Several
//     distinct states may satisfy IsGoal at different costs; the search keeps
//     a running minimum and stops once nothing pending can improve it.
//   - Frontier is exported on its own: an indexed min-heap with
//     insert-or-improve semantics and deterministic insertion-order tie-breaks.
//
// When to use:
//
//   - Grid puzzles with turn or run-length constraints (see package crucible).
//   - Any search whose state identity is richer than a vertex ID.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, Result.Path holds the optimal state sequence.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any step with cost ≥ threshold as impassable.
//   - Logger / OnFinalize: observe the search without modifying it.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), V reached states, E generated steps.
//   - Space: O(V) for the cost table and the frontier index.
//
// Error handling (sentinel errors):
//
//   - ErrNilSpace:
//     Returned if you pass a nil Space to Search.
//   - ErrNegativeWeight:
//     Returned if Initial or Successors yields a negative step cost.
//   - ErrNoPath:
//     Returned if the frontier empties before any goal is finalized.
//     Use errors.Is to tell it apart from a genuine zero-cost answer.
//   - ErrBadMaxDistance:
//     Raised (via panic) if you set MaxDistance to a negative value.
//   - ErrBadInfThreshold:
//     Raised (via panic) if you set InfEdgeThreshold to zero or a negative value.
//
// Thread safety:
//
//   - Search owns its cost table and frontier for the duration of the call.
//     Concurrent searches are safe as long as the Space implementations they
//     read are not mutated concurrently.
package dijkstra
