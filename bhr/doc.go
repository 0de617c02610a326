// Package bhr implements the divisor-based necessary condition (the BHR
// condition) that a target frequency partition must satisfy before any
// attempt to realize it as a Hamiltonian path on a p-vertex cycle.
//
// What:
//
//   - Check: for every divisor d of p (1 and p included), the counts of all
//     hop lengths that are multiples of d are summed; the condition requires
//     that sum ≤ p − d. Hops that are multiples of d collapse modulo d, and
//     at most p − d edges can avoid returning to an already-visited residue
//     class.
//
// Why:
//   - The check is a cheap filter: it rejects clearly infeasible targets in
//     O(p·τ(p)) before the expensive construction stages run. Passing it is
//     NOT a certificate that a realizing path exists.
//
// Key Types & Functions:
//
//   - Result: OK flag plus, on a violation, the failing divisor d, the
//     observed multiple-count and the limit p − d for diagnostics.
//   - Check(fp cyclic.Frequency, p int) (Result, error)
//
// Complexity:
//
//   - Check: Time O(p·τ(p)) with τ(p) = number of divisors of p, Memory O(τ(p))
//
// Errors:
//
//   - ErrNonPositiveOrder  p < 1; an infeasible partition is a Result value,
//     never an error
package bhr
