// Package hampath - validation helpers shared by the construction strategies.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user input —
//     only sentinel errors from types.go.
//   - Validation runs once at each public entry point; hot search loops
//     never re-check.
package hampath

import (
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
)

// validateTarget verifies that target is a well-formed partition for vertex
// count p: positive counts only, hops within [1, ⌊p/2⌋], and exactly p−1
// edges in total.
//
// Complexity: O(|target|).
func validateTarget(target cyclic.Frequency, p int) error {
	var (
		hop, c int
		edges  int
	)
	for hop, c = range target {
		if c < 0 {
			return ErrNegativeCount
		}
		if c == 0 {
			continue // absent and zero-count are the same state
		}
		if hop < 1 || hop > cyclic.MaxHop(p) {
			return ErrHopOutOfRange
		}
		edges += c
	}
	if edges != p-1 {
		return ErrEdgeCountMismatch
	}

	return nil
}
