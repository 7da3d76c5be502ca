package matching

import (
	"fmt"

	"github.com/katalvlaran/lvlmatch/core"
)

// Matching records which nodes are paired with which: mate[v] == w exactly
// when {v, w} is a matching edge, and mate[v] == core.None when v is
// exposed. The mate array is kept symmetric at all times.
type Matching struct {
	mate []core.NodeID
}

// NewMatching returns the empty matching on n nodes.
// Returns ErrNegativeNodeCount if n < 0.
// Complexity: O(n).
func NewMatching(n int) (*Matching, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, n)
	}
	mate := make([]core.NodeID, n)
	var v int
	for v = range mate {
		mate[v] = core.None
	}

	return &Matching{mate: mate}, nil
}

// NumNodes returns the node count this matching was built for.
// Complexity: O(1).
func (m *Matching) NumNodes() int { return len(m.mate) }

// Mate returns v's partner, or core.None if v is exposed or out of range.
// Complexity: O(1).
func (m *Matching) Mate(v core.NodeID) core.NodeID {
	if v < 0 || int(v) >= len(m.mate) {
		return core.None
	}

	return m.mate[v]
}

// Covered reports whether v is an endpoint of a matching edge.
// Complexity: O(1).
func (m *Matching) Covered(v core.NodeID) bool {
	return m.Mate(v) != core.None
}

// Pair adds {v, w} as a matching edge.
//
// Returns:
//   - ErrNodeOutOfRange if either id is outside [0, n).
//   - ErrSelfMatched    if v == w.
//   - ErrAlreadyMatched if either node is already covered.
//
// Complexity: O(1).
func (m *Matching) Pair(v, w core.NodeID) error {
	n := len(m.mate)
	if v < 0 || int(v) >= n {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, v, n)
	}
	if w < 0 || int(w) >= n {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, w, n)
	}
	if v == w {
		return fmt.Errorf("%w: %d", ErrSelfMatched, v)
	}
	if m.mate[v] != core.None {
		return fmt.Errorf("%w: %d", ErrAlreadyMatched, v)
	}
	if m.mate[w] != core.None {
		return fmt.Errorf("%w: %d", ErrAlreadyMatched, w)
	}
	m.mate[v] = w
	m.mate[w] = v

	return nil
}

// Size returns the number of matching edges |M|.
// Complexity: O(n).
func (m *Matching) Size() int {
	var covered int
	var w core.NodeID
	for _, w = range m.mate {
		if w != core.None {
			covered++
		}
	}

	return covered / 2
}

// Edges returns the matching as {v, w} pairs with v < w, ascending by v.
// Complexity: O(n).
func (m *Matching) Edges() [][2]core.NodeID {
	out := make([][2]core.NodeID, 0, m.Size())
	var v int
	for v = range m.mate {
		if w := m.mate[v]; w != core.None && core.NodeID(v) < w {
			out = append(out, [2]core.NodeID{core.NodeID(v), w})
		}
	}

	return out
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(n).
func (m *Matching) Clone() *Matching {
	return &Matching{mate: append([]core.NodeID(nil), m.mate...)}
}

// Validate checks that the receiver is a valid matching of g:
// every mate id in range, no node its own mate, the mate array symmetric,
// and every matched pair an actual edge of g.
//
// Returns the first violation found as one of ErrNodeOutOfRange,
// ErrSelfMatched, ErrAsymmetricMatching, ErrEdgeNotInGraph; nil if valid.
// Complexity: O(n + Σ deg over matched nodes).
func (m *Matching) Validate(g Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	n := len(m.mate)
	var v int
	var w core.NodeID
	for v = range m.mate {
		w = m.mate[v]
		if w == core.None {
			continue
		}
		if w < 0 || int(w) >= n {
			return fmt.Errorf("%w: mate[%d]=%d (n=%d)", ErrNodeOutOfRange, v, w, n)
		}
		if w == core.NodeID(v) {
			return fmt.Errorf("%w: %d", ErrSelfMatched, v)
		}
		if m.mate[w] != core.NodeID(v) {
			return fmt.Errorf("%w: mate[%d]=%d but mate[%d]=%d", ErrAsymmetricMatching, v, w, w, m.mate[w])
		}
		// Check edge membership once per pair, from the smaller endpoint.
		if core.NodeID(v) < w && !hasNeighbor(g, core.NodeID(v), w) {
			return fmt.Errorf("%w: {%d,%d}", ErrEdgeNotInGraph, v, w)
		}
	}

	return nil
}

// hasNeighbor scans g's adjacency for the edge {v, w}.
func hasNeighbor(g Graph, v, w core.NodeID) bool {
	var u core.NodeID
	for _, u = range g.Neighbors(v) {
		if u == w {
			return true
		}
	}

	return false
}
