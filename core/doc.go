// Package core defines the fundamental graph container used across lvlmatch:
// a dense, integer-indexed, undirected simple graph.
//
// Overview:
//
//   - Nodes are identified by NodeID values in the half-open range [0, n),
//     fixed at construction time. The sentinel None (-1) means "no node".
//   - Edges are undirected, unweighted, and simple: self-loops and duplicate
//     edges are rejected at AddEdge with sentinel errors.
//   - Adjacency is stored as one neighbor slice per node, in edge insertion
//     order. Neighbors returns that backing slice directly, so neighbor
//     enumeration is allocation-free and its order is stable across the
//     whole run — algorithms that resume a per-node neighbor cursor rely
//     on exactly this stability.
//
// When to use:
//
//   - As the input container for matching.Edmonds / matching.Maximum.
//   - Anywhere a read-mostly adjacency structure over dense integer ids is
//     preferable to a string-keyed graph: the id doubles as the array index.
//
// Concurrency:
//
//   - Build first, then share. AddEdge is not synchronized; once the graph
//     is handed to an algorithm, treat it as immutable. All read accessors
//     are safe for concurrent use on an immutable graph.
//
// Errors (sentinel):
//
//   - ErrNegativeNodeCount if NewGraph receives n < 0.
//   - ErrNodeOutOfRange    if an endpoint is outside [0, n).
//   - ErrSelfLoop          if both endpoints are the same node.
//   - ErrDuplicateEdge     if the edge is already present.
//
// Complexity:
//
//   - AddEdge: O(deg) duplicate scan; NumNodes/Degree/Neighbors: O(1);
//     HasEdge: O(min deg); Edges: O(V + E log E); Clone: O(V + E).
//   - Space: O(V + E).
package core
