// Package growth - the iteration loop.
//
// Design principles:
//   - Fail fast on preconditions, then never abort on a negative search
//     outcome: infeasibility, exhaustion and hop-limit skips are Records.
//   - The evolved partition lives on a copy of the base tuple and is
//     committed only on success; a failed evolution is discarded, never
//     carried into the next iteration.
//   - Strictly sequential; the base path/FP pair is the loop's only
//     cross-iteration state.
package growth

import (
	"errors"

	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/bhr"
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/hampath"
)

// Run grows the initial path through `iterations` evolution steps of its
// frequency partition and returns one Record per iteration, skipped ones
// included.
//
// Contracts:
//   - path must be a permutation of {0,…,len(path)−1} with at least two
//     vertices; fp is its partition in 1-indexed tuple form (position =
//     hop length) with sum(fp) == len(path)−1.
//   - 1 ≤ iterations ≤ MaxIterations; mode is ModeIncrement or ModeAppend.
//   - Neither path nor fp is mutated; the loop works on its own copies.
//
// Errors: precondition sentinels only (see types.go and package cyclic).
// Every in-loop negative outcome is an ordinary Record.
//
// Complexity: per iteration O(p·τ(p)) for the filter and O(p²) for the
// insertion stages; the exhaustive fallback is exponential worst-case.
func Run(path []int, fp []int, mode Mode, iterations int, opts ...Option) ([]Record, error) {
	cfg := DefaultRunOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if mode != ModeIncrement && mode != ModeAppend {
		return nil, ErrUnknownMode
	}
	if iterations < 1 || iterations > MaxIterations {
		return nil, ErrIterationBudget
	}

	// Explicit, validated p-derivation: the initial path must be a genuine
	// permutation before the loop trusts its length.
	p0 := len(path)
	if _, err := cyclic.Observed(path, p0); err != nil {
		return nil, err
	}
	baseFP := cyclic.FromTuple(fp)
	if baseFP.Edges() != p0-1 {
		return nil, ErrEdgeCountMismatch
	}
	for _, hop := range baseFP.Hops() {
		if hop > cyclic.MaxHop(p0) {
			return nil, ErrHopOutOfRange
		}
	}

	var (
		base  = append([]int(nil), path...) // current best path
		tuple = append([]int(nil), fp...)   // its partition, tuple form
	)

	records := make([]Record, 0, iterations)
	emit := func(r Record) {
		if cfg.Sink != nil {
			cfg.Sink.Record(r)
		}
		records = append(records, r)
	}

	var i int
	for i = 1; i <= iterations; i++ {
		var (
			pPrev  = len(base)
			prevFP = cyclic.FromTuple(tuple)
		)

		// Evolve a copy; the base tuple is only replaced on success.
		evolved := append([]int(nil), tuple...)
		switch mode {
		case ModeIncrement:
			evolved[(i-1)%len(evolved)]++
		case ModeAppend:
			pNew := pPrev + 1
			if len(evolved)+1 > cyclic.MaxHop(pNew) {
				// Only ⌊p/2⌋ distinct cyclic hop lengths exist; record
				// the attempted partition and leave the base untouched.
				emit(Record{
					Iteration: i,
					P:         pNew,
					PrevFP:    prevFP,
					FP:        cyclic.FromTuple(append(append([]int(nil), evolved...), 1)),
					Outcome:   OutcomeSkipped,
				})

				continue
			}
			evolved = append(evolved, 1)
		}

		var (
			target = cyclic.FromTuple(evolved)
			pCurr  = target.Edges() + 1
		)

		// An increment can land on a tuple position whose hop length does
		// not exist on the pCurr-cycle. Like the append bound above, that
		// is a recorded skip, never a run-fatal fault.
		if hops := target.Hops(); len(hops) > 0 && hops[len(hops)-1] > cyclic.MaxHop(pCurr) {
			emit(Record{
				Iteration: i,
				P:         pCurr,
				PrevFP:    prevFP,
				FP:        target,
				Outcome:   OutcomeSkipped,
			})

			continue // evolved partition discarded, base unchanged
		}

		feas, err := bhr.Check(target, pCurr)
		if err != nil {
			return records, err
		}
		if !feas.OK {
			emit(Record{
				Iteration: i,
				P:         pCurr,
				PrevFP:    prevFP,
				FP:        target,
				Outcome:   OutcomeInfeasible,
				Violation: feas,
			})

			continue // evolved partition discarded, base unchanged
		}

		res, cerr := hampath.Construct(base, target, pCurr, cfg.Search)
		if cerr != nil && !errors.Is(cerr, hampath.ErrTimeLimit) {
			return records, cerr
		}
		if cerr != nil || res.Path == nil {
			// Exhaustion (or a blown time budget) is an expected outcome
			// of a search problem, not a fault.
			emit(Record{
				Iteration:  i,
				P:          pCurr,
				PrevFP:     prevFP,
				FP:         target,
				Outcome:    OutcomeExhausted,
				Feasible:   true,
				Method:     hampath.MethodNone,
				Backtracks: res.Backtracks,
				Elapsed:    res.Elapsed,
			})

			continue
		}

		// Commit: the evolved partition and its realizing path become the
		// next iteration's base.
		base = res.Path
		tuple = evolved
		emit(Record{
			Iteration:  i,
			P:          pCurr,
			PrevFP:     prevFP,
			FP:         target,
			Outcome:    OutcomeSuccess,
			Feasible:   true,
			Method:     res.Method,
			Path:       res.Path,
			Backtracks: res.Backtracks,
			Elapsed:    res.Elapsed,
		})
	}

	return records, nil
}

// Summary aggregates a run's records into per-outcome counts and totals.
// Pure; usable by any sink or caller after (or during) a run.
func Summary(records []Record) Stats {
	var s Stats
	s.Iterations = len(records)
	for _, r := range records {
		switch r.Outcome {
		case OutcomeSuccess:
			s.Successes++
			s.FinalP = r.P
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeInfeasible:
			s.Infeasible++
		case OutcomeExhausted:
			s.Exhausted++
		}
		s.TotalBacktracks += r.Backtracks
		s.TotalElapsed += r.Elapsed
	}

	return s
}
