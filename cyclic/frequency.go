// Package cyclic - Frequency (frequency partition) type and path analysis.
//
// A Frequency maps hop lengths to occurrence counts. The invariant held by
// every constructor and method here is that zero counts are never stored:
// "hop absent" and "hop with count 0" are the same state, which keeps Equal
// and L1 free of special cases.
package cyclic

import (
	"sort"
	"strconv"
	"strings"
)

// Frequency is a frequency partition: hop length → occurrence count.
// Keys are positive hop lengths; values are positive counts.
type Frequency map[int]int

// FromTuple converts the 1-indexed tuple form of a frequency partition into
// a Frequency: position i (0-based) holds the count of hop length i+1.
// Non-positive entries are dropped.
//
// Complexity: O(len(t)).
func FromTuple(t []int) Frequency {
	f := make(Frequency, len(t))
	var i, c int
	for i, c = range t {
		if c > 0 {
			f[i+1] = c
		}
	}

	return f
}

// Edges returns the total number of path edges the partition accounts for,
// i.e. the sum of all counts. A partition feasible for vertex count p has
// Edges() == p−1.
func (f Frequency) Edges() int {
	var sum int
	for _, c := range f {
		sum += c
	}

	return sum
}

// Clone returns an independent copy of f.
func (f Frequency) Clone() Frequency {
	out := make(Frequency, len(f))
	for hop, c := range f {
		out[hop] = c
	}

	return out
}

// Equal reports whether f and o describe the same multiset of hops.
// Zero counts are treated as absent on both sides.
func (f Frequency) Equal(o Frequency) bool {
	var hop, c int
	for hop, c = range f {
		if c != o[hop] {
			return false
		}
	}
	for hop, c = range o {
		if c != f[hop] {
			return false
		}
	}

	return true
}

// L1 returns the L1 distance between f and o: the sum of |f[k]−o[k]| over
// every hop length present in either partition. This is the greedy-insert
// score; zero means the partitions are equal.
//
// Complexity: O(|f| + |o|).
func (f Frequency) L1(o Frequency) int {
	var (
		hop, c, d int
		dist      int
	)
	for hop, c = range f {
		d = c - o[hop]
		if d < 0 {
			d = -d
		}
		dist += d
	}
	for hop, c = range o {
		if _, ok := f[hop]; !ok {
			dist += c
		}
	}

	return dist
}

// Hops returns the distinct hop lengths of f in ascending order.
// Zero-count keys are absent hops and do not appear.
func (f Frequency) Hops() []int {
	hops := make([]int, 0, len(f))
	for hop, c := range f {
		if c > 0 {
			hops = append(hops, hop)
		}
	}
	sort.Ints(hops)

	return hops
}

// Multiset flattens f into one entry per counted occurrence, ascending:
// the explicit list of hop lengths a realizing path must consume.
//
// Complexity: O(Edges() + k·log k), k = #distinct hops.
func (f Frequency) Multiset() []int {
	out := make([]int, 0, f.Edges())
	var hop, c, i int
	for _, hop = range f.Hops() {
		c = f[hop]
		for i = 0; i < c; i++ {
			out = append(out, hop)
		}
	}

	return out
}

// Tuple returns the 1-indexed tuple form of f: a slice whose i-th entry
// (0-based) is the count of hop length i+1, long enough to reach the largest
// hop present. An empty partition yields an empty tuple.
func (f Frequency) Tuple() []int {
	var maxHop int
	for hop, c := range f {
		if c > 0 && hop > maxHop {
			maxHop = hop
		}
	}
	t := make([]int, maxHop)
	for hop, c := range f {
		if c > 0 {
			t[hop-1] = c
		}
	}

	return t
}

// String renders f in its tuple form, e.g. "(2,0,1)". Deterministic, so
// sinks and tests can compare renderings directly.
func (f Frequency) String() string {
	t := f.Tuple()
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = strconv.Itoa(c)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// Observed computes the frequency partition realized by path on a p-vertex
// cycle: the multiset of Distance(path[i], path[i+1], p) over consecutive
// pairs.
//
// Contract:
//   - path must be a permutation of {0,…,p−1} (all p vertices, each once,
//     all in range). Anything else returns a sentinel and a nil Frequency —
//     never a partial result — so callers comparing against a target cannot
//     obtain an accidental match from a malformed path.
//
// Complexity: O(p) time, O(p) space.
func Observed(path []int, p int) (Frequency, error) {
	if len(path) < 2 {
		return nil, ErrPathTooShort
	}
	if p < 1 || len(path) != p {
		return nil, ErrNotPermutation
	}

	seen := make([]bool, p)
	var v int
	for _, v = range path {
		if v < 0 || v >= p {
			return nil, ErrVertexOutOfRange
		}
		if seen[v] {
			return nil, ErrNotPermutation
		}
		seen[v] = true
	}

	f := make(Frequency, MaxHop(p))
	var i int
	for i = 0; i+1 < len(path); i++ {
		f[Distance(path[i], path[i+1], p)]++
	}

	return f, nil
}
