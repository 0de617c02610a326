package bhr

import "errors"

// ErrNonPositiveOrder is returned when the target vertex count p is not a
// positive integer. It is the only error Check can produce: an infeasible
// partition is an expected negative outcome, reported as a Result value.
var ErrNonPositiveOrder = errors.New("bhr: vertex count must be positive")

// Result reports the outcome of the divisor (BHR) necessary condition.
// When OK is false, Divisor holds the first failing divisor d (ascending
// order), Count the sum of frequencies of hops divisible by d, and Limit
// the bound p − d that Count exceeded.
type Result struct {
	OK      bool
	Divisor int
	Count   int
	Limit   int
}
