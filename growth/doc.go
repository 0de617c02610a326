// Package growth drives repeated path-growth steps: it evolves a frequency
// partition, filters it through the divisor necessary condition, runs the
// staged construction pipeline, and carries the best successful path forward
// into the next iteration.
//
// What:
//
//   - Run: for a caller-supplied iteration budget, each 1-indexed iteration i
//     evolves a copy of the current FP tuple (increment-mode bumps part
//     (i−1) mod |FP|; append-mode appends a new hop of count 1 unless that
//     would exceed the ⌊p/2⌋ distinct-hop bound), derives the target vertex
//     count p = sum(FP)+1, skips any evolved partition needing a hop length
//     beyond ⌊p/2⌋, applies bhr.Check, and on a pass escalates through
//     hampath.Construct. Only a successful construction commits the evolved
//     FP and the new path as the next iteration's base.
//   - Record: one per iteration — including skipped ones — carrying the
//     previous and evolved partitions, the outcome, feasibility diagnostics,
//     the winning method, the path, the backtrack count and elapsed time.
//   - Sink: an injected consumer receiving each Record as it is produced;
//     persistence formats live entirely outside this package.
//   - Summary: aggregate statistics over a run's records.
//
// Why:
//   - Whether a valid path of p vertices can always be grown into one of
//     p+1 as its FP evolves is the structural question this library exists
//     to explore; the orchestrator is the experiment loop.
//
// Key Types & Constants:
//
//   - Mode: ModeIncrement, ModeAppend
//   - Outcome: OutcomeSuccess, OutcomeSkipped, OutcomeInfeasible, OutcomeExhausted
//   - Option: WithSink, WithTopK, WithTimeLimit
//   - MaxIterations = 50 (iteration-budget bound)
//
// Concurrency:
//
//	Run is strictly sequential: iteration i+1 never starts before i's
//	construction attempt fully resolves, because it consumes i's resulting
//	path. The only cross-iteration mutable state is the base path/FP pair,
//	owned exclusively by the loop.
//
// Errors (preconditions only; negative iteration outcomes are Records):
//
//   - ErrUnknownMode          unrecognized evolution mode
//   - ErrIterationBudget      iteration count outside [1, MaxIterations]
//   - ErrEdgeCountMismatch    sum(FP) ≠ len(path) − 1
//   - ErrHopOutOfRange        initial FP uses a hop beyond ⌊p/2⌋
//   - cyclic sentinels        initial path is not a permutation of [0, p)
package growth
