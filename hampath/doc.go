// Package hampath constructs Hamiltonian paths on cyclic vertex sets whose
// edge hop-lengths realize a prescribed frequency partition, via two fast
// insertion heuristics and an exhaustive backtracking fallback.
//
// What:
//
//   - ReuseInsert: extends a known valid path of p−1 vertices by inserting
//     the new vertex p−1 into each of the p gap positions (ascending) and
//     returns the first extension whose observed frequency equals the target
//     exactly.
//   - GreedyInsert: scores every gap position by the L1 distance between the
//     observed and target frequencies, sorts ascending (stable position
//     tie-break) and accepts the first zero-score candidate among the top K.
//   - Backtrack: exhaustive depth-first construction of a full p-vertex path
//     from scratch. Branches once per *distinct* remaining hop value —
//     duplicate occurrences are interchangeable, so per-value branching
//     collapses isomorphic subtrees — and tries (c+hop) mod p then
//     (c−hop) mod p from the current endpoint c. First found solution wins;
//     a found-flag short-circuits the entire remaining tree.
//   - Construct: the staged dispatcher — reuse-insert, then greedy-insert,
//     then backtracking; the first success wins and later stages never run.
//     Every returned path is revalidated against the target before being
//     accepted.
//
// Why:
//   - Growing a valid path by one vertex rarely needs full search; the two
//     heuristics are O(p²) passes that succeed on most growth steps, while
//     the backtracking fallback guarantees exhaustiveness when they fail.
//
// Key Types & Constants:
//
//   - Method: MethodNone, MethodReuseInsert, MethodGreedyInsert, MethodBacktrack
//   - Result: resulting path (nil on a normal negative outcome), method,
//     rejected-candidate count ("backtracks") and elapsed wall-clock time
//   - Options: TopK (default 3) and an optional soft TimeLimit for the
//     exhaustive search (0 = unbounded)
//
// Complexity:
//
//   - ReuseInsert: Time O(p²), Memory O(p)
//   - GreedyInsert: Time O(p²), Memory O(p²) (retained candidate extensions)
//   - Backtrack: worst case exponential in p (exact search); per node O(k)
//     branching over k distinct hops, O(1) visited lookups, Memory O(p)
//
// Errors:
//
//   - ErrOrderOutOfRange      p < 2
//   - ErrHopOutOfRange        target uses a hop outside [1, ⌊p/2⌋]
//   - ErrNegativeCount        target carries a negative count
//   - ErrEdgeCountMismatch    sum of target counts ≠ p − 1
//   - ErrTimeLimit            soft time budget exceeded (Backtrack only)
//   - ErrInconsistentResult   a stage returned a path not realizing the target
//
// Failure to find a path is NOT an error: it is a Result with a nil Path.
package hampath
