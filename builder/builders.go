package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmatch/core"
)

// Path builds the path graph P_n: edges i—(i+1) for i = 0..n-2,
// emitted in ascending i order. n = 1 yields a single isolated node.
// Returns ErrTooFewNodes if n < 1.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewNodes)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n-1; i++ {
		if err = g.AddEdge(core.NodeID(i), core.NodeID(i+1)); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n: edges i—(i+1)%n in ascending i order.
// Returns ErrTooFewNodes if n < 3.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		if err = g.AddEdge(core.NodeID(i), core.NodeID((i+1)%n)); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n: every unordered pair {i, j},
// emitted with i ascending, then j ascending above i.
// Returns ErrTooFewNodes if n < 1.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewNodes)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = g.AddEdge(core.NodeID(i), core.NodeID(j)); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return g, nil
}

// CompleteBipartite builds K_{a,b}: left partition 0..a-1, right partition
// a..a+b-1, every cross edge, left index ascending then right ascending.
// Returns ErrTooFewNodes if a < 1 or b < 1.
// Complexity: O(a·b).
func CompleteBipartite(a, b int) (*core.Graph, error) {
	if a < minPartitionNodes || b < minPartitionNodes {
		return nil, fmt.Errorf("CompleteBipartite: a=%d b=%d: %w", a, b, ErrTooFewNodes)
	}
	g, err := core.NewGraph(a + b)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < a; i++ {
		for j = 0; j < b; j++ {
			if err = g.AddEdge(core.NodeID(i), core.NodeID(a+j)); err != nil {
				return nil, fmt.Errorf("CompleteBipartite: %w", err)
			}
		}
	}

	return g, nil
}

// Petersen builds the Petersen graph: outer 5-cycle 0..4, inner pentagram
// 5..9 (inner node i+5 joined to ((i+2) mod 5)+5), and spokes i—(i+5).
// 10 nodes, 15 edges; its maximum matching is perfect (size 5).
// Complexity: O(1).
func Petersen() *core.Graph {
	const outer = 5
	g, _ := core.NewGraph(2 * outer)
	var i int
	for i = 0; i < outer; i++ {
		// outer cycle
		_ = g.AddEdge(core.NodeID(i), core.NodeID((i+1)%outer))
		// spoke
		_ = g.AddEdge(core.NodeID(i), core.NodeID(i+outer))
		// inner pentagram
		_ = g.AddEdge(core.NodeID(i+outer), core.NodeID((i+2)%outer+outer))
	}

	return g
}

// RandomSparse samples an Erdős–Rényi-style graph G(n, p): each unordered
// pair {i, j} is an edge independently with probability p. Trial order is
// i ascending, j ascending above i, so a fixed (n, p, seed) triple always
// produces the same graph.
// Returns ErrTooFewNodes if n < 1, ErrBadProbability if p ∉ [0, 1].
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64, seed int64) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrBadProbability)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err = g.AddEdge(core.NodeID(i), core.NodeID(j)); err != nil {
					return nil, fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}
	}

	return g, nil
}
