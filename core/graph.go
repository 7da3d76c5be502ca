package core

import (
	"fmt"
	"sort"
)

// Graph is a dense, integer-indexed, undirected simple graph.
// The node count is fixed at construction; edges are appended with AddEdge.
// Once a Graph is handed to an algorithm it must not be mutated.
type Graph struct {
	adj      [][]NodeID // adj[v] lists v's neighbors in insertion order
	numEdges int
}

// NewGraph allocates a graph on n isolated nodes, ids 0..n-1.
// Returns ErrNegativeNodeCount if n < 0.
// Complexity: O(n) time and memory.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, n)
	}

	return &Graph{adj: make([][]NodeID, n)}, nil
}

// NumNodes returns the number of nodes. Complexity: O(1).
func (g *Graph) NumNodes() int { return len(g.adj) }

// NumEdges returns the number of undirected edges. Complexity: O(1).
func (g *Graph) NumEdges() int { return g.numEdges }

// valid reports whether v is a usable node id for this graph.
func (g *Graph) valid(v NodeID) bool {
	return v >= 0 && int(v) < len(g.adj)
}

// AddEdge inserts the undirected edge {u, v}.
//
// Returns:
//   - ErrNodeOutOfRange if either endpoint is outside [0, NumNodes).
//   - ErrSelfLoop       if u == v.
//   - ErrDuplicateEdge  if {u, v} was already added.
//
// Complexity: O(deg(u)) for the duplicate scan.
func (g *Graph) AddEdge(u, v NodeID) error {
	// 1) Range-check both endpoints before touching adjacency.
	if !g.valid(u) {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, u, len(g.adj))
	}
	if !g.valid(v) {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, v, len(g.adj))
	}

	// 2) Reject self-loops: the matching core assumes a simple graph.
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}

	// 3) Reject duplicates. Scanning one endpoint suffices: adjacency is
	//    kept symmetric, so {u,v} present implies v appears in adj[u].
	var w NodeID
	for _, w = range g.adj[u] {
		if w == v {
			return fmt.Errorf("%w: {%d,%d}", ErrDuplicateEdge, u, v)
		}
	}

	// 4) Append both directions; insertion order is the neighbor order.
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.numEdges++

	return nil
}

// Neighbors returns v's neighbor list in edge insertion order.
// The returned slice is the graph's backing storage: callers must treat it
// as read-only. For an invalid id it returns nil.
// Complexity: O(1).
func (g *Graph) Neighbors(v NodeID) []NodeID {
	if !g.valid(v) {
		return nil
	}

	return g.adj[v]
}

// Degree returns the number of neighbors of v, or 0 for an invalid id.
// Complexity: O(1).
func (g *Graph) Degree(v NodeID) int {
	if !g.valid(v) {
		return 0
	}

	return len(g.adj[v])
}

// HasEdge reports whether the undirected edge {u, v} is present.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v NodeID) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	// Scan the smaller adjacency list.
	a, b := u, v
	if len(g.adj[b]) < len(g.adj[a]) {
		a, b = b, a
	}
	var w NodeID
	for _, w = range g.adj[a] {
		if w == b {
			return true
		}
	}

	return false
}

// Edges returns every undirected edge exactly once as {u, v} with u < v,
// sorted lexicographically. Complexity: O(V + E log E).
func (g *Graph) Edges() [][2]NodeID {
	out := make([][2]NodeID, 0, g.numEdges)
	var u NodeID
	var w NodeID
	for u = 0; int(u) < len(g.adj); u++ {
		for _, w = range g.adj[u] {
			if u < w { // emit each edge from its smaller endpoint only
				out = append(out, [2]NodeID{u, w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		adj:      make([][]NodeID, len(g.adj)),
		numEdges: g.numEdges,
	}
	var v int
	for v = range g.adj {
		if len(g.adj[v]) == 0 {
			continue
		}
		cp.adj[v] = append([]NodeID(nil), g.adj[v]...)
	}

	return cp
}
