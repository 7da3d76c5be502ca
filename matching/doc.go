// Package matching provides a precise, high-performance implementation of
// Edmonds' blossom algorithm for maximum-cardinality matching on undirected
// simple graphs.
//
// Overview:
//
//   - A matching is a set of edges sharing no endpoint; it is maximum when no
//     larger matching exists. On bipartite graphs alternating BFS suffices,
//     but general graphs contain odd cycles (blossoms) that defeat it.
//     Edmonds' insight is to contract each odd cycle found during the search
//     into a single pseudonode and keep searching in the shrunken graph.
//   - Edmonds(g, m) augments an existing matching in place until no
//     augmenting path remains; Maximum(g) is the convenience form starting
//     from the empty matching (or from a hint).
//   - One search is run per exposed node: it grows an alternating tree of
//     even/odd layers, contracts blossoms on the fly, and either applies an
//     augmenting path or marks the whole frustrated tree as permanently
//     dead — such nodes can never be on an augmenting path again, so later
//     searches skip them.
//
// When to use:
//
//   - Whenever you need an exact maximum-cardinality matching on a general
//     (non-bipartite) graph: pairing problems, 2-factor preprocessing,
//     odd-vertex pairing in route planning, test-bed reductions.
//   - As a verification oracle for heuristic or bipartite-only matchers.
//
// How the engine works (per search):
//
//   - Pseudonodes are never materialized as a tree. Every in-tree node
//     carries a label; nodes sharing a label form one pseudonode, and a
//     per-label registry keeps the label's member list plus its root — the
//     even node through which the alternating tree entered the pseudonode.
//   - Blossom contraction backtracks two branches simultaneously, always
//     advancing the branch whose pseudonode root is deeper, until both
//     land in the same pseudonode: the lowest common ancestor. Labels on
//     both branches are then merged by weighted union (the largest member
//     list absorbs the rest), keeping total relabeling near-linear.
//   - Augmentation is iterative, not recursive: every absorbed pseudonode
//     root stores the one cross edge (prev, rep) by which the augmenting
//     path re-enters it, so splicing a path through arbitrarily nested
//     blossoms is a simple work-queue loop over those stored edges.
//   - Scratch arrays are allocated once per Edmonds call and recycled
//     between searches; cleanup touches only the nodes labeled during the
//     search that just ended, never all n of them.
//
// Complexity:
//
//   - Time:  O(V · E · α(V)) worst case — V searches, each scanning every
//     edge at most twice through resumable per-node cursors, with label
//     merging amortized by weighted union.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrNilGraph            if the graph is nil.
//   - ErrNilMatching         if the matching is nil.
//   - ErrNegativeNodeCount   if NewMatching receives n < 0.
//   - ErrSizeMismatch        if the matching and graph disagree on n.
//   - ErrNodeOutOfRange      if a mate id lies outside [0, n).
//   - ErrSelfMatched         if a node is recorded as its own mate.
//   - ErrAsymmetricMatching  if mate[v] = w but mate[w] ≠ v.
//   - ErrEdgeNotInGraph      if a matched pair is not an edge of the graph.
//   - ErrAlreadyMatched      if Pair targets a covered node.
//
// API reference:
//
//	func Edmonds(g Graph, m *Matching) error
//	  - augments m in place to maximum cardinality; g is never mutated.
//	  - m must be a valid matching of g (checked; see errors above).
//
//	func Maximum(g Graph, opts ...Option) (*Matching, error)
//	  - WithHint(h): start from a copy of h instead of the empty matching.
//	    The hint itself is not mutated.
//
// Determinism:
//
//   - For a fixed neighbor order the result is fully deterministic: running
//     Edmonds twice, or re-running it on its own output, returns the exact
//     same mate array.
//
// Thread safety:
//
//   - Edmonds owns the matching and its scratch state for the duration of a
//     call; the graph is only read. Do not share one *Matching between
//     concurrent calls.
package matching
