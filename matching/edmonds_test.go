// Package matching_test runs the blossom engine through the canonical
// scenarios: odd cycles, paths, bipartite graphs, the Petersen graph,
// nested blossoms, and hinted starts.
package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlmatch/builder"
	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
)

// EdmondsSuite exercises Edmonds/Maximum under various graph shapes.
type EdmondsSuite struct {
	suite.Suite
}

// requireMaximumOf runs Maximum, asserts validity and the expected size.
func (s *EdmondsSuite) requireMaximumOf(g *core.Graph, want int, opts ...matching.Option) *matching.Matching {
	m, err := matching.Maximum(g, opts...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), m.Validate(g), "result must be a valid matching")
	require.Equal(s.T(), want, m.Size())

	return m
}

// TestTriangle: K3 admits exactly one matching edge.
func (s *EdmondsSuite) TestTriangle() {
	g, err := builder.Cycle(3)
	require.NoError(s.T(), err)
	s.requireMaximumOf(g, 1)
}

// TestPathP4: P4 has the unique maximum matching {0–1, 2–3}.
func (s *EdmondsSuite) TestPathP4() {
	g, err := builder.Path(4)
	require.NoError(s.T(), err)
	m := s.requireMaximumOf(g, 2)
	require.Equal(s.T(), core.NodeID(1), m.Mate(0))
	require.Equal(s.T(), core.NodeID(3), m.Mate(2))
}

// TestOddCycleWithMaximumHint: C5 with two matched edges is already
// maximum; the engine must leave the hint untouched, mate for mate.
func (s *EdmondsSuite) TestOddCycleWithMaximumHint() {
	g, err := builder.Cycle(5)
	require.NoError(s.T(), err)
	hint, err := matching.NewMatching(5)
	require.NoError(s.T(), err)
	require.NoError(s.T(), hint.Pair(1, 2))
	require.NoError(s.T(), hint.Pair(3, 4))

	m := s.requireMaximumOf(g, 2, matching.WithHint(hint))
	require.Equal(s.T(), core.NodeID(2), m.Mate(1))
	require.Equal(s.T(), core.NodeID(4), m.Mate(3))
	require.Equal(s.T(), core.None, m.Mate(0))
	// The caller's hint must not have been mutated.
	require.Equal(s.T(), 2, hint.Size())
	require.Equal(s.T(), core.NodeID(2), hint.Mate(1))
}

// TestPetersen: the Petersen graph has a perfect matching of size 5.
func (s *EdmondsSuite) TestPetersen() {
	s.requireMaximumOf(builder.Petersen(), 5)
}

// TestCompleteBipartite: K3,3 has a perfect matching of size 3.
func (s *EdmondsSuite) TestCompleteBipartite() {
	g, err := builder.CompleteBipartite(3, 3)
	require.NoError(s.T(), err)
	s.requireMaximumOf(g, 3)
}

// TestDisjointTriangles: two components, one matched edge in each.
func (s *EdmondsSuite) TestDisjointTriangles() {
	g, err := core.NewGraph(6)
	require.NoError(s.T(), err)
	for _, e := range [][2]core.NodeID{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}} {
		require.NoError(s.T(), g.AddEdge(e[0], e[1]))
	}
	s.requireMaximumOf(g, 2)
}

// TestBlossomAugment: C5 with a pendant edge off the blossom. With two
// edges hinted, the search from the exposed cycle node must contract the
// odd cycle and route an augmenting path through it.
func (s *EdmondsSuite) TestBlossomAugment() {
	// 0-1-2-3-4-0 cycle, pendant 2-5.
	g, err := builder.Cycle(5)
	require.NoError(s.T(), err)
	six, err := core.NewGraph(6)
	require.NoError(s.T(), err)
	for _, e := range g.Edges() {
		require.NoError(s.T(), six.AddEdge(e[0], e[1]))
	}
	require.NoError(s.T(), six.AddEdge(2, 5))

	hint, err := matching.NewMatching(6)
	require.NoError(s.T(), err)
	require.NoError(s.T(), hint.Pair(1, 2))
	require.NoError(s.T(), hint.Pair(3, 4))

	m := s.requireMaximumOf(six, 3, matching.WithHint(hint))
	// Perfect on the 6 nodes: nobody stays exposed.
	for v := core.NodeID(0); v < 6; v++ {
		require.True(s.T(), m.Covered(v), "node %d exposed in a perfect matching", v)
	}
}

// TestNestedBlossoms: a triangle blossom nested inside a larger odd cycle.
//
//	0─1, 1─2, triangle {2,3,4}, 4─5, 5─6, 6─0 close the outer cycle,
//	pendant 3─7. Hint: {1,2}, {3,4}, {5,6}. Every augmenting path from 0
//	to 7 ends 4─3─7; with this edge order the search contracts the
//	triangle and then the outer cycle before it reaches 7, so augment
//	unwinds the inner blossom inside the outer one.
func (s *EdmondsSuite) TestNestedBlossoms() {
	g, err := core.NewGraph(8)
	require.NoError(s.T(), err)
	edges := [][2]core.NodeID{
		{0, 1}, {1, 2},
		{2, 3}, {3, 4}, {4, 2},
		{4, 5}, {5, 6}, {6, 0},
		{3, 7},
	}
	for _, e := range edges {
		require.NoError(s.T(), g.AddEdge(e[0], e[1]))
	}
	hint, err := matching.NewMatching(8)
	require.NoError(s.T(), err)
	require.NoError(s.T(), hint.Pair(1, 2))
	require.NoError(s.T(), hint.Pair(3, 4))
	require.NoError(s.T(), hint.Pair(5, 6))

	m := s.requireMaximumOf(g, 4, matching.WithHint(hint))
	for v := core.NodeID(0); v < 8; v++ {
		require.True(s.T(), m.Covered(v), "node %d exposed in a perfect matching", v)
	}
}

// TestStar: K1,3, where the center can serve only one leaf.
func (s *EdmondsSuite) TestStar() {
	g, err := builder.CompleteBipartite(1, 3)
	require.NoError(s.T(), err)
	s.requireMaximumOf(g, 1)
}

// TestEdgelessAndEmpty: degenerate graphs terminate with size 0.
func (s *EdmondsSuite) TestEdgelessAndEmpty() {
	empty, err := core.NewGraph(0)
	require.NoError(s.T(), err)
	s.requireMaximumOf(empty, 0)

	isolated, err := core.NewGraph(4)
	require.NoError(s.T(), err)
	s.requireMaximumOf(isolated, 0)
}

// TestValidationErrors: the precondition checks of Edmonds and Maximum.
func (s *EdmondsSuite) TestValidationErrors() {
	g, err := builder.Path(4)
	require.NoError(s.T(), err)

	err = matching.Edmonds(nil, nil)
	require.ErrorIs(s.T(), err, matching.ErrNilGraph)

	err = matching.Edmonds(g, nil)
	require.ErrorIs(s.T(), err, matching.ErrNilMatching)

	small, err := matching.NewMatching(3)
	require.NoError(s.T(), err)
	err = matching.Edmonds(g, small)
	require.ErrorIs(s.T(), err, matching.ErrSizeMismatch)

	bad, err := matching.NewMatching(4)
	require.NoError(s.T(), err)
	require.NoError(s.T(), bad.Pair(0, 3)) // {0,3} is not an edge of P4
	err = matching.Edmonds(g, bad)
	require.ErrorIs(s.T(), err, matching.ErrEdgeNotInGraph)

	_, err = matching.Maximum(nil)
	require.ErrorIs(s.T(), err, matching.ErrNilGraph)

	_, err = matching.Maximum(g, matching.WithHint(bad))
	require.ErrorIs(s.T(), err, matching.ErrEdgeNotInGraph)
}

func TestEdmondsSuite(t *testing.T) {
	suite.Run(t, new(EdmondsSuite))
}
