// Package cyclic defines the sentinel errors shared by the metric and
// frequency-analysis entry points.
package cyclic

import "errors"

var (
	// ErrPathTooShort is returned when a candidate path has fewer than two
	// vertices and therefore carries no edges to analyze.
	ErrPathTooShort = errors.New("cyclic: path must contain at least two vertices")

	// ErrVertexOutOfRange is returned when a path coordinate lies outside
	// the vertex range [0, p).
	ErrVertexOutOfRange = errors.New("cyclic: vertex out of range")

	// ErrNotPermutation is returned when a path does not visit exactly p
	// distinct vertices, i.e. it is not a permutation of {0,…,p−1}.
	ErrNotPermutation = errors.New("cyclic: path is not a permutation of the vertex set")
)
