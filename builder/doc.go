// Package builder provides deterministic constructors for the standard
// graph families used throughout lvlmatch: paths, cycles, complete and
// complete bipartite graphs, the Petersen graph, and Erdős–Rényi-style
// random graphs.
//
// Overview:
//
//   - Every constructor returns a fresh *core.Graph over dense ids 0..n-1
//     with a fixed, documented edge emission order, so algorithm runs on
//     built graphs are reproducible byte for byte.
//   - RandomSparse takes an explicit seed; the same (n, p, seed) triple
//     always yields the same graph.
//
// When to use:
//
//   - Test fixtures and benchmarks for the matching engine.
//   - Quick experiments: known families have known maximum matchings
//     (C_n has ⌊n/2⌋, K_{a,b} has min(a,b), Petersen has 5).
//
// Errors (sentinel):
//
//   - ErrTooFewNodes       if a family's minimum size is violated
//     (Path/Complete need ≥ 1, Cycle needs ≥ 3, partitions need ≥ 1).
//   - ErrBadProbability    if RandomSparse receives p outside [0, 1].
//
// Complexity: each constructor is linear in the size of the graph it
// emits; RandomSparse performs O(n²) Bernoulli trials.
package builder
