// Package hampath — exhaustive backtracking construction.
//
// Backtrack enumerates p-vertex paths realizing a target frequency partition
// via depth-first search with deterministic branching and a soft time budget.
//
// Rationale (succinct):
//  1. Strict input shape is enforced once at the entry point; the hot loop
//     works on dense count slices with no map lookups or allocations.
//  2. Branching goes once per *distinct* remaining hop value, ascending.
//     Duplicate occurrences of a hop are interchangeable, so per-value
//     branching prunes whole families of isomorphic subtrees — the key
//     optimization over instance-by-instance multiset enumeration.
//  3. From the current endpoint c, the two candidates (c+hop) mod p and
//     (c−hop) mod p are tried in that fixed order. A candidate already on
//     the path increments the backtrack counter (a "backtrack" is a rejected
//     candidate vertex, not a failed subtree).
//  4. The first complete valid path wins: an engine-local found flag
//     short-circuits every remaining branch of the call tree, so at most one
//     solution is materialized per invocation.
//  5. Soft time limit: rare deadline checks (every 4096 node events) keep
//     overhead negligible.
//  6. The prefix is fixed to [0]. Rotational symmetry of the cycle maps any
//     realizing path onto one through vertex 0, so no solution class is lost.
//
// Complexity:
//   - Worst case exponential in p (exact search).
//   - Per node: O(k) branching over k distinct hops, O(1) visited lookups.
//   - Memory: O(p) for path/visited + O(⌊p/2⌋) for the remaining counts.

package hampath

import (
	"sort"
	"time"

	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
)

// btEngine holds all search state for one Backtrack invocation.
// A dedicated engine struct (instead of shared globals or closures) keeps
// state ownership explicit: concurrent invocations never share anything.
type btEngine struct {
	p int

	// Remaining multiset of required hops: remain[hop] outstanding
	// occurrences, left the total still to consume. hops lists the distinct
	// values present at the start, ascending — the fixed branching order.
	remain []int
	hops   []int
	left   int

	// Current search state.
	visited []bool // O(1) membership; never scan the path
	path    []int  // path[0:depth], path[0] == 0

	// Outcome.
	found      bool  // global short-circuit across the whole call tree
	solution   []int // copy of the first complete valid path
	backtracks int   // rejected candidate vertices

	// Time budget.
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline checks counter
	timedOut    bool
}

// deadlineCheck performs a rare deadline test (every 4096 node events).
func (e *btEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// dfs extends the path from its current endpoint `last` at depth `depth`.
// Returns true exactly when a complete valid path has been committed.
func (e *btEngine) dfs(last, depth int) bool {
	if e.found {
		return true // short-circuit: a solution already exists somewhere above
	}
	if e.timedOut || e.deadlineCheck() {
		return false
	}

	// Terminal states at full length: complete-valid when every required
	// hop was consumed, complete-invalid otherwise.
	if depth == e.p {
		if e.left != 0 {
			return false
		}
		e.found = true
		e.solution = make([]int, e.p)
		copy(e.solution, e.path)

		return true
	}

	var (
		hop      int
		fwd, bwd int
		next     int
	)
	for _, hop = range e.hops {
		if e.remain[hop] == 0 {
			continue // this value is exhausted on the current branch
		}

		// Tentatively consume one occurrence of this hop value.
		e.remain[hop]--
		e.left--

		fwd = last + hop
		if fwd >= e.p {
			fwd -= e.p
		}
		bwd = last - hop
		if bwd < 0 {
			bwd += e.p
		}

		// Fixed candidate order: +hop first, then −hop.
		for _, next = range [2]int{fwd, bwd} {
			if e.visited[next] {
				e.backtracks++ // rejected candidate vertex

				continue
			}
			e.visited[next] = true
			e.path[depth] = next
			if e.dfs(next, depth+1) {
				return true // first-found, not best-found
			}
			e.visited[next] = false
			if e.timedOut {
				break
			}
		}

		// Restore the occurrence before trying the next distinct value.
		e.remain[hop]++
		e.left++

		if e.timedOut {
			return false
		}
	}

	return false
}

// Backtrack exhaustively searches for a p-vertex path starting at vertex 0
// whose consecutive cyclic distances realize target exactly.
//
// Contracts:
//   - p ≥ 2; target uses hops in [1, ⌊p/2⌋] and accounts for exactly p−1
//     edges (strict sentinels otherwise).
//   - target is never mutated; the engine works on its own count slice.
//
// Errors:
//   - ErrTimeLimit when a positive opts.TimeLimit is exceeded.
//   - Validation sentinels for malformed inputs (see types.go).
//
// Exhaustion without a solution is a Result with a nil Path and a nil error.
func Backtrack(target cyclic.Frequency, p int, opts Options) (Result, error) {
	res := Result{Method: MethodBacktrack}
	if p < 2 {
		return res, ErrOrderOutOfRange
	}
	if err := validateTarget(target, p); err != nil {
		return res, err
	}

	t0 := time.Now()

	// Engine initialization: dense counts indexed by hop value. Branching
	// covers positive counts only — a zero-count key is an absent hop and
	// must never reach the remain slice.
	var e btEngine
	e.p = p
	e.remain = make([]int, cyclic.MaxHop(p)+1)
	e.hops = make([]int, 0, len(target))
	for hop, c := range target {
		if c > 0 {
			e.remain[hop] = c
			e.left += c
			e.hops = append(e.hops, hop)
		}
	}
	sort.Ints(e.hops)
	e.visited = make([]bool, p)
	e.path = make([]int, p)
	e.path[0] = 0
	e.visited[0] = true

	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = t0.Add(opts.TimeLimit)
	}

	e.dfs(0, 1)

	res.Backtracks = e.backtracks
	res.Elapsed = time.Since(t0)
	if e.timedOut {
		return res, ErrTimeLimit
	}
	if e.found {
		res.Path = e.solution
	}

	return res, nil
}
