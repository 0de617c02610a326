package hampath

import (
	"errors"
	"time"
)

var (
	// ErrOrderOutOfRange is returned when the target vertex count p admits
	// no non-trivial path (p < 2).
	ErrOrderOutOfRange = errors.New("hampath: vertex count out of range")

	// ErrHopOutOfRange is returned when the target partition requires a hop
	// length outside [1, ⌊p/2⌋] — no cyclic distance on a p-cycle can
	// realize it, so the target is malformed rather than merely infeasible.
	ErrHopOutOfRange = errors.New("hampath: hop length out of range")

	// ErrNegativeCount is returned when the target partition carries a
	// negative occurrence count.
	ErrNegativeCount = errors.New("hampath: negative hop count")

	// ErrEdgeCountMismatch is returned when the target partition does not
	// account for exactly p−1 edges.
	ErrEdgeCountMismatch = errors.New("hampath: partition edge count does not match vertex count")

	// ErrTimeLimit is returned by Backtrack (and propagated by Construct)
	// when a positive soft time budget is exceeded before the search settles.
	ErrTimeLimit = errors.New("hampath: time limit exceeded")

	// ErrInconsistentResult is returned by Construct when a stage hands back
	// a path whose observed frequency does not equal the target — an
	// internal contradiction that must be surfaced, never trusted.
	ErrInconsistentResult = errors.New("hampath: stage result does not realize the target partition")
)

// Method identifies which construction strategy produced a Result.
type Method uint8

const (
	// MethodNone means no strategy succeeded (or none has run yet).
	MethodNone Method = iota
	// MethodReuseInsert is the exact-match single-vertex insertion.
	MethodReuseInsert
	// MethodGreedyInsert is the best-of-top-k scored insertion.
	MethodGreedyInsert
	// MethodBacktrack is the exhaustive depth-first construction.
	MethodBacktrack
)

// String returns the canonical method name used in growth records.
func (m Method) String() string {
	switch m {
	case MethodReuseInsert:
		return "reuse-insert"
	case MethodGreedyInsert:
		return "greedy-insert"
	case MethodBacktrack:
		return "backtrack"
	default:
		return "none"
	}
}

// Result holds the outcome of one construction attempt.
// Path == nil signals a normal negative outcome, not an error: the strategy
// ran to completion without finding a realizing path.
type Result struct {
	// Path is the constructed p-vertex path starting at vertex 0,
	// or nil when the strategy found none.
	Path []int

	// Method is the strategy that produced (or failed to produce) Path.
	Method Method

	// Backtracks counts rejected candidate vertices during Backtrack
	// (pruned dead-ends); always 0 for the insertion heuristics.
	Backtracks int

	// Elapsed is wall-clock time spent; Construct accumulates it across
	// every attempted stage.
	Elapsed time.Duration
}

// DefaultTopK is the number of best-scored insertion candidates
// GreedyInsert inspects.
const DefaultTopK = 3

// Options configures the construction strategies.
type Options struct {
	// TopK bounds how many of the best-scored candidates GreedyInsert
	// inspects; non-positive values fall back to DefaultTopK.
	TopK int

	// TimeLimit is a soft wall-clock budget for the exhaustive search
	// (checked sparsely, every 4096 node events). Zero disables it; an
	// exceeded budget surfaces as ErrTimeLimit. Insertion heuristics are
	// O(p²) single passes and ignore it.
	TimeLimit time.Duration
}

// DefaultOptions returns the canonical configuration:
//   - TopK = DefaultTopK (3)
//   - TimeLimit = 0 (unbounded exhaustive search)
func DefaultOptions() Options {
	return Options{
		TopK:      DefaultTopK,
		TimeLimit: 0,
	}
}
