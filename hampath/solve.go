// Package hampath - staged construction dispatcher.
//
// Construct is the canonical entry point for one growth step: it runs the
// strategies in strict escalation order — exact insertion, scored insertion,
// exhaustive backtracking — and the first success wins; no later stage runs.
//
// Design principles:
//   - Deterministic: every stage has fixed, documented tie-breaks.
//   - Defensive: a path returned by any stage is revalidated against the
//     target before it is accepted. A stage that misbehaves surfaces as
//     ErrInconsistentResult instead of propagating a wrong path.
//   - Elapsed time accumulates across every attempted stage, so the Result
//     reports the cost of the whole step, not just the winning strategy.
package hampath

import (
	"time"

	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
)

// Construct tries to build a p-vertex path realizing target, escalating
// through reuse-insert, greedy-insert and exhaustive backtracking.
//
// Contracts:
//   - p ≥ 2; target must be a well-formed partition for p (see Backtrack).
//   - base is the previous valid path; the insertion stages run only when
//     len(base) == p−1 (otherwise there is no single-vertex extension to
//     try and the dispatcher goes straight to Backtrack).
//   - base and target are never mutated.
//
// Errors: validation sentinels, ErrTimeLimit, ErrInconsistentResult.
// Exhaustion of all three stages is a Result with a nil Path and nil error.
//
// Complexity: O(p²) for the insertion stages; the fallback is exponential
// in the worst case (see backtrack.go).
func Construct(base []int, target cyclic.Frequency, p int, opts Options) (Result, error) {
	if p < 2 {
		return Result{}, ErrOrderOutOfRange
	}
	if err := validateTarget(target, p); err != nil {
		return Result{}, err
	}

	var total time.Duration // cost of every attempted stage so far

	// Stages 1–2: single-vertex insertion, only meaningful when the base
	// path is exactly one vertex short of the target order.
	if len(base) == p-1 {
		r := ReuseInsert(base, target, p)
		total += r.Elapsed
		if r.Path != nil {
			r.Elapsed = total

			return accept(r, target, p)
		}

		r = GreedyInsert(base, target, p, opts)
		total += r.Elapsed
		if r.Path != nil {
			r.Elapsed = total

			return accept(r, target, p)
		}
	}

	// Stage 3: exhaustive fallback.
	r, err := Backtrack(target, p, opts)
	total += r.Elapsed
	r.Elapsed = total
	if err != nil {
		r.Path = nil

		return r, err
	}
	if r.Path == nil {
		return r, nil // all three stages exhausted; a normal negative outcome
	}

	return accept(r, target, p)
}

// accept revalidates a stage's path against the target before handing it to
// the caller. Stages are trusted to be correct, but a zero-score greedy hit
// after an exact-insertion miss (or any future stage bug) is contradictory;
// per the dispatcher's contract such a path is surfaced, never trusted.
func accept(r Result, target cyclic.Frequency, p int) (Result, error) {
	obs, err := cyclic.Observed(r.Path, p)
	if err != nil || !obs.Equal(target) {
		r.Path = nil

		return r, ErrInconsistentResult
	}

	return r, nil
}
