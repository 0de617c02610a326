// Package cyclic provides the cycle metric and frequency-partition
// primitives shared by every other package of the library.
//
// What:
//
//   - Distance: the cyclic (shortest-arc) distance between two vertices on a
//     p-vertex cycle, min(|u−v|, p−|u−v|).
//   - Frequency: a hop-length → count map describing how often each cyclic
//     distance occurs across the edges of a Hamiltonian path (a Frequency
//     Partition, FP). Supports cloning, equality, L1 distance, flattening
//     to a multiset, and tuple round-trips.
//   - Observed: computes the Frequency realized by a candidate path, after
//     verifying that the path is a genuine permutation of {0,…,p−1}. A path
//     that is not comparable yields an error, never a partial Frequency.
//
// Why:
//   - A target FP and an observed FP must be compared exactly (insertion
//     heuristics) and approximately (L1 scoring); both live here.
//   - The permutation guard protects the heuristics against accidental
//     false positives on malformed candidate paths.
//
// Key Types & Functions:
//
//   - Frequency: map[int]int with zero counts never stored
//   - Distance(u, v, p int) int
//   - MaxHop(p int) int — the largest cyclic distance on a p-cycle, ⌊p/2⌋
//   - FromTuple(t []int) Frequency — 1-indexed tuple form, position = hop
//   - Observed(path []int, p int) (Frequency, error)
//
// Complexity:
//
//   - Distance, MaxHop:  O(1)
//   - Observed:          Time O(p), Memory O(p)
//   - Frequency methods: O(k) or O(k·log k) for sorted views, k = #hops
//
// Errors:
//
//   - ErrPathTooShort       path has fewer than two vertices
//   - ErrVertexOutOfRange   some coordinate is outside [0, p)
//   - ErrNotPermutation     path does not visit exactly p distinct vertices
package cyclic
