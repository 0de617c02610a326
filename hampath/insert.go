// Package hampath - single-vertex insertion heuristics.
//
// Both strategies extend a known valid path of p−1 vertices to p vertices by
// inserting the next unused vertex (numerically p−1) into one of the p gap
// positions, and compare the resulting observed frequency against the target.
//
// Design:
//   - Deterministic scanning order: gap positions ascending, 0 = before the
//     first vertex, len(base) = after the last.
//   - A candidate extension that is not a permutation of {0,…,p−1} is
//     silently skipped — the frequency analyzer refuses to compare it, which
//     guards against accidental false positives on malformed bases.
//   - Failure is a Result with a nil Path; these heuristics never error.
//
// Contracts:
//   - The caller supplies p explicitly; a base of any other length than p−1
//     simply produces no match.
//   - Neither strategy re-tries with different parameters: one pass, fixed K.
//
// Complexity:
//   - ReuseInsert:  O(p²) time (p positions × O(p) analysis), O(p) space.
//   - GreedyInsert: O(p²) time + O(p·log p) sort, O(p²) space for the
//     retained candidate extensions.
package hampath

import (
	"sort"
	"time"

	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
)

// insertAt returns base with v inserted at gap position pos as a fresh slice.
func insertAt(base []int, pos, v int) []int {
	out := make([]int, 0, len(base)+1)
	out = append(out, base[:pos]...)
	out = append(out, v)
	out = append(out, base[pos:]...)

	return out
}

// ReuseInsert attempts the exact-match insertion: for each of the p gap
// positions in ascending order, insert vertex p−1 into base and return the
// first extension whose observed frequency equals target exactly.
//
// Tie-break: the lowest matching gap index wins (deterministic).
// Returns a nil Path when vertex p−1 is already present or no position
// matches.
func ReuseInsert(base []int, target cyclic.Frequency, p int) Result {
	var (
		t0   = time.Now()
		res  = Result{Method: MethodReuseInsert}
		newV = p - 1
	)

	for _, v := range base {
		if v == newV {
			res.Elapsed = time.Since(t0)

			return res // the vertex to insert must be genuinely new
		}
	}

	var (
		pos int
		ext []int
		obs cyclic.Frequency
		err error
	)
	for pos = 0; pos <= len(base); pos++ {
		ext = insertAt(base, pos, newV)
		obs, err = cyclic.Observed(ext, p)
		if err != nil {
			continue // not comparable; never a partial match
		}
		if obs.Equal(target) {
			res.Path = ext

			break
		}
	}
	res.Elapsed = time.Since(t0)

	return res
}

// insertCandidate is one scored extension retained by GreedyInsert.
type insertCandidate struct {
	score int   // L1 distance between observed and target frequencies
	pos   int   // gap position, for the deterministic tie-break
	path  []int // the extension itself
}

// GreedyInsert attempts the best-of-top-k scored insertion: every gap
// position is scored by the L1 distance between the extension's observed
// frequency and target, candidates are sorted ascending by (score, position),
// and the first zero-score candidate among the top K is returned.
//
// In the combined Construct pipeline this stage runs only after ReuseInsert
// has already failed, so a zero-score hit here is contradictory; Construct
// therefore revalidates it rather than trusting it silently.
func GreedyInsert(base []int, target cyclic.Frequency, p int, opts Options) Result {
	var (
		t0   = time.Now()
		res  = Result{Method: MethodGreedyInsert}
		newV = p - 1
	)

	for _, v := range base {
		if v == newV {
			res.Elapsed = time.Since(t0)

			return res
		}
	}

	var (
		pos        int
		ext        []int
		obs        cyclic.Frequency
		err        error
		candidates = make([]insertCandidate, 0, len(base)+1)
	)
	for pos = 0; pos <= len(base); pos++ {
		ext = insertAt(base, pos, newV)
		obs, err = cyclic.Observed(ext, p)
		if err != nil {
			continue
		}
		candidates = append(candidates, insertCandidate{score: obs.L1(target), pos: pos, path: ext})
	}

	// Ascending by score, position as the deterministic tie-break.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score == candidates[j].score {
			return candidates[i].pos < candidates[j].pos
		}

		return candidates[i].score < candidates[j].score
	})

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > len(candidates) {
		topK = len(candidates)
	}
	var i int
	for i = 0; i < topK; i++ {
		if candidates[i].score == 0 {
			res.Path = candidates[i].path

			break
		}
	}
	res.Elapsed = time.Since(t0)

	return res
}
