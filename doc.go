// Package hpgen grows Hamiltonian paths on cyclic vertex sets whose edge
// "hop lengths" realize a prescribed Frequency Partition (FP) — a structural
// tool for cyclic-graph labeling and bandwidth (BHR) research.
//
// What lives here?
//
//	A small, deterministic, pure-Go engine that takes a known valid path on
//	p vertices and an evolving target FP, and tries to produce a valid path
//	on p+1 vertices, iteration after iteration:
//		• Cyclic metric & frequency analysis of candidate paths
//		• Divisor-based (BHR) necessary-condition filter for target FPs
//		• Two fast one-vertex insertion heuristics
//		• An exhaustive backtracking search as the last resort
//		• A growth orchestrator that drives the triad across many steps
//
// Why choose this engine?
//
//   - Deterministic – fixed tie-breaks, no RNG, reproducible runs
//   - Strict sentinels – negative search outcomes are values, errors are errors
//   - Pure Go – no cgo, no hidden deps
//   - Decoupled – per-iteration records flow through an injected sink,
//     never through a hardwired log file
//
// Everything is organized under four subpackages:
//
//	cyclic/  — cycle metric, Frequency type, observed-frequency analysis
//	bhr/     — divisor-based necessary-condition (feasibility) check
//	hampath/ — insertion heuristics, exhaustive backtracking, staged dispatcher
//	growth/  — FP evolution policies and the iteration loop
//
// Quick ASCII example (p = 5, path 0 2 4 1 3):
//
//	    0───2───4───1───3      hops: 2 2 2 2  ⇒  FP {2:4}
//
//	every consecutive pair sits at cyclic distance 2 on the 5-cycle.
//
// Terminal I/O, log formats and re-prompt loops are deliberately excluded;
// supply an initial path/FP and consume growth.Record values instead.
package hpgen
