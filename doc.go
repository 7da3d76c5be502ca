// Package lvlmatch is a compact toolkit for maximum-cardinality matching
// on undirected simple graphs, built around Edmonds' blossom algorithm.
//
// 🚀 What is lvlmatch?
//
//	A small, focused library that brings together:
//		• Core primitives: a dense, integer-indexed adjacency container
//		• Matching: Edmonds' blossom algorithm with frustrated-tree pruning
//		• Builders: paths, cycles, complete & bipartite graphs, Petersen, random graphs
//		• DIMACS I/O: read problem files, write matchings in the same format
//		• CLI: cmd/lvlmatch for one-shot matching runs from the shell
//
// ✨ Why choose lvlmatch?
//
//   - Exact – maximum cardinality on general graphs, blossoms included
//   - Fast – O(1)-amortized scratch reset between searches, near-linear label merging
//   - Predictable – deterministic for a fixed edge insertion order
//   - Minimal API – one container, one algorithm entry point, one file format
//
// Everything is organized under four subpackages and one command:
//
//	core/     — NodeID, Graph: build once, read everywhere
//	matching/ — Matching state + Edmonds / Maximum entry points
//	builder/  — deterministic graph generators for tests and experiments
//	dimacs/   — "p edge" / "e v w" reader and writer
//	cmd/      — the lvlmatch command-line front-end
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	a 4-cycle has a perfect matching of size 2: {1–2, 3–4} (or the other pair).
//
// Dive into the per-package docs for complexity notes, error contracts and
// worked examples.
//
//	go get github.com/katalvlaran/lvlmatch
package lvlmatch
