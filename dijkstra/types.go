// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over implicit state graphs.
//
// The graph is never materialized. A Space describes it: the seed states
// reachable by a first move, the successors of any state, and which states
// are accepting goals. States are comparable values, so the cost table and
// the frontier key directly on them.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |reached states|, E = |generated steps|
//	   • Each state is extracted from the frontier at most once (V extracts).
//	   • Each relaxation is an insert or an in-place decrease-key (up to E).
//	   • Each heap operation (push/pop/fix) costs O(log V).
//	– Space: O(V)
//	   • O(V) for the cost table and the frontier index.
//
// Options:
//
//	– ReturnPath:       if true, reconstruct the state path to the best goal.
//	– MaxDistance:      optional cap on distances to explore; states beyond this are skipped.
//	– InfEdgeThreshold: steps with cost >= this threshold are treated as impassable.
//	– Logger:           zerolog logger receiving search summaries (silent by default).
//	– OnFinalize:       hook invoked each time a state's cost becomes final.
//
// Errors (sentinel):
//
//	– ErrNilSpace        if the provided Space is nil.
//	– ErrNegativeWeight  if a step with negative cost is generated.
//	– ErrNoPath          if the frontier empties without finalizing a goal.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	res, err := dijkstra.Search[crucible.State](space, dijkstra.WithReturnPath())
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable goal
//	}
//	fmt.Println(res.Cost, len(res.Path))
package dijkstra

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilSpace indicates that a nil Space was passed to Search.
	ErrNilSpace = errors.New("dijkstra: state space is nil")

	// ErrNegativeWeight indicates that a step with negative cost was generated.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the frontier was exhausted without any goal
	// state being finalized. It is a legitimate outcome, distinct from a
	// zero-cost answer.
	ErrNoPath = errors.New("dijkstra: no path to any goal state")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all steps (including zero-cost steps) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Step is one move in the implicit graph: the state it leads to and the
// incremental cost of taking it. Space.Initial returns steps taken from an
// implicit origin, so their Cost is the full cost of the seed state.
type Step[S comparable] struct {
	State S
	Cost  int64
}

//go:generate mockgen -source=types.go -destination=mocks/mock_space.go -package=mocks

// Space describes an implicit, non-negatively weighted state graph.
//
// Implementations must be deterministic: the same state always yields the
// same successors in the same order. Successors that would leave the
// underlying domain are simply omitted.
type Space[S comparable] interface {
	// Initial returns the seed states together with their immediate cost.
	Initial() []Step[S]
	// Successors returns the legal moves out of s.
	Successors(s S) []Step[S]
	// IsGoal reports whether s is an accepting terminal state.
	IsGoal(s S) bool
}

// Result is the outcome of a successful Search.
type Result[S comparable] struct {
	Cost      int64 // minimal cost over all finalized goal states
	Goal      S     // the goal state that attains Cost
	Path      []S   // seed → Goal, only with WithReturnPath()
	Finalized int   // number of states whose cost became final
	Pushes    int   // number of frontier inserts and decrease-keys
}

// Options configures the behavior of the Dijkstra search.
//
// ReturnPath       – if true, Result.Path holds the states from seed to goal.
// MaxDistance      – optional cap on distances to explore (states beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat steps with cost ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// Logger           – receives Debug summaries and Trace goal events.
// OnFinalize       – called once per finalized state, in non-decreasing cost order.
type Options struct {
	ReturnPath       bool           // Whether to reconstruct the path to the goal
	MaxDistance      int64          // Maximum distance to explore
	InfEdgeThreshold int64          // Weight threshold above which steps are non-traversable
	Logger           zerolog.Logger // Structured logger; zerolog.Nop() by default
	OnFinalize       func(state any, cost int64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables path reconstruction via parent pointers.
// If not set (default), Result.Path is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored.
// A negative value panics with ErrBadMaxDistance when the option is built.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which steps are
// considered non-traversable (treated as infinite weight).
// Steps with cost ≥ threshold are skipped entirely.
// A zero or negative value panics with ErrBadInfThreshold when the option
// is built.
// Default (if not set) is math.MaxInt64 (no steps treated as impassable).
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger attaches a zerolog logger. The search emits one Debug event
// when it finishes and a Trace event per finalized goal state.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnFinalize registers a hook called each time a state is finalized.
// The state is passed as the concrete S value boxed in an interface.
func WithOnFinalize(fn func(state any, cost int64)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as a starting point for further functional-options overrides.
//
// Defaults:
//   - ReturnPath:       false (no path reconstruction).
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no steps treated as impassable).
//   - Logger:           zerolog.Nop().
//   - OnFinalize:       nil.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Logger:           zerolog.Nop(),
	}
}
