// Package cyclic - cycle metric primitives.
//
// Design principles:
//   - Pure, side-effect-free functions; no allocations.
//   - Total over the documented domain; callers validate ranges once,
//     hot loops call the metric without re-checking.
package cyclic

// Distance returns the cyclic (shortest-arc) distance between u and v on a
// p-vertex cycle: min(|u−v|, p−|u−v|).
//
// Contract:
//   - 0 ≤ u, v < p; p ≥ 1. Total for every such pair.
//
// Complexity: O(1) time, zero allocations.
func Distance(u, v, p int) int {
	d := u - v
	if d < 0 {
		d = -d
	}
	if r := p - d; r < d {
		return r
	}

	return d
}

// MaxHop returns the largest cyclic distance realizable on a p-vertex cycle,
// ⌊p/2⌋. It bounds both valid hop lengths and the number of distinct hop
// lengths a frequency partition may use.
//
// Complexity: O(1).
func MaxHop(p int) int { return p / 2 }
