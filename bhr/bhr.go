// Package bhr - divisor-condition evaluation.
//
// Design principles:
//   - Deterministic, side-effect free: repeated calls on the same inputs
//     return identical Results.
//   - Divisors are scanned ascending, so the reported violation is the
//     smallest failing divisor.
//   - No fmt.Errorf, no logging; sentinel errors only (see types.go).
package bhr

import (
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
)

// Check applies the BHR necessary condition to a target frequency partition
// fp at vertex count p: for every divisor d of p, the total count of hop
// lengths divisible by d must not exceed p − d.
//
// Contract:
//   - p ≥ 1; fp may be empty (an empty partition passes trivially for p = 1).
//   - Pure function of its inputs; fp is never mutated.
//
// Returns the first violation (smallest divisor) for diagnostics, or an
// OK Result. Passing the check does not guarantee a realizing path exists.
//
// Complexity: O(p·τ(p)) time, O(τ(p)) space, τ(p) = number of divisors.
func Check(fp cyclic.Frequency, p int) (Result, error) {
	if p < 1 {
		return Result{}, ErrNonPositiveOrder
	}

	var (
		d     int // candidate divisor of p
		hop   int // hop length from the partition
		c     int // count of that hop
		count int // accumulated count of hops divisible by d
	)
	for _, d = range divisors(p) {
		count = 0
		for hop, c = range fp {
			if hop%d == 0 {
				count += c
			}
		}
		if count > p-d {
			return Result{OK: false, Divisor: d, Count: count, Limit: p - d}, nil
		}
	}

	return Result{OK: true}, nil
}

// divisors returns every divisor of p in ascending order, 1 and p included.
//
// Complexity: O(p) time, O(τ(p)) space. The trial range is linear rather
// than √p: p stays small in growth runs and the ascending order falls out
// for free.
func divisors(p int) []int {
	out := make([]int, 0, 8)
	for d := 1; d <= p; d++ {
		if p%d == 0 {
			out = append(out, d)
		}
	}

	return out
}
