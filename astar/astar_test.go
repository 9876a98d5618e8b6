// Package astar_test validates the guided segment search: scoring, the
// forbidden-set and guide-path override rules, lazy frontier updates,
// deterministic tie-breaking and input validation.
package astar_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tourplan/astar"
	"github.com/katalvlaran/tourplan/core"
)

// diamond builds A–B–C and A–D–C (undirected) with B on the A→C axis
// and D far off it.
//
//	        D
//	       / \
//	      /   \
//	     A──B──C
func diamond() (*core.Graph, core.Coords) {
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "D", 1)
	_ = g.AddEdge("D", "C", 1)
	coords := core.Coords{
		"A": {0, 0},
		"B": {50, 0},
		"C": {100, 0},
		"D": {50, 80},
	}

	return g, coords
}

// SearchSuite groups behavioral tests for astar.Search.
type SearchSuite struct {
	suite.Suite
	g      *core.Graph
	coords core.Coords
}

func (s *SearchSuite) SetupTest() {
	s.g, s.coords = diamond()
}

// TestStartIsGoal: the trivial segment is the single start node.
func (s *SearchSuite) TestStartIsGoal() {
	res, err := astar.Search(s.g, s.coords, "A", "A")
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), []string{"A"}, res.Path)
	require.Zero(s.T(), res.Cost)
	require.Zero(s.T(), res.Expanded)
}

// TestShortestEuclidean: without guide or forbidden nodes the on-axis route wins.
func (s *SearchSuite) TestShortestEuclidean() {
	res, err := astar.Search(s.g, s.coords, "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
	require.InDelta(s.T(), 100.0, res.Cost, 1e-9)
	require.Equal(s.T(), 2, res.Expanded, "A and B are expanded, C is popped as goal")
}

// TestForbiddenInteriorAvoided: a forbidden interior node forces the detour.
func (s *SearchSuite) TestForbiddenInteriorAvoided() {
	res, err := astar.Search(s.g, s.coords, "A", "C",
		astar.WithForbidden(core.NewNodeSet("B")),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "D", "C"}, res.Path)
	require.InDelta(s.T(), 2*math.Hypot(50, 80), res.Cost, 1e-9)
}

// TestForbiddenWithoutAlternative: no silent use of a forbidden node.
func (s *SearchSuite) TestForbiddenWithoutAlternative() {
	res, err := astar.Search(s.g, s.coords, "A", "C",
		astar.WithForbidden(core.NewNodeSet("B", "D")),
	)
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
	require.False(s.T(), res.Found)
	require.Empty(s.T(), res.Path)
}

// TestGuideOverridesForbidden: a guide path re-permits a forbidden node.
func (s *SearchSuite) TestGuideOverridesForbidden() {
	res, err := astar.Search(s.g, s.coords, "A", "C",
		astar.WithForbidden(core.NewNodeSet("B", "D")),
		astar.WithGuidePath(core.NewGuidePath("B")),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
}

// TestForbiddenGoalAllowed: the goal itself may be in the forbidden set.
func (s *SearchSuite) TestForbiddenGoalAllowed() {
	res, err := astar.Search(s.g, s.coords, "A", "C",
		astar.WithForbidden(core.NewNodeSet("C")),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
}

// TestGuideAttracts: the bias pulls the search onto a longer guided route.
func (s *SearchSuite) TestGuideAttracts() {
	guide := core.NewGuidePath("A", "D", "C")
	res, err := astar.Search(s.g, s.coords, "A", "C", astar.WithGuidePath(guide))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "D", "C"}, res.Path)

	// W = 0 turns the bias off.
	res, err = astar.Search(s.g, s.coords, "A", "C",
		astar.WithGuidePath(guide),
		astar.WithBiasWeight(0),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)

	// Penalty 0 has the same effect.
	res, err = astar.Search(s.g, s.coords, "A", "C",
		astar.WithGuidePath(guide),
		astar.WithPenalty(0),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
}

// TestForbiddenSetNotMutated: Search only reads the forbidden set.
func (s *SearchSuite) TestForbiddenSetNotMutated() {
	forbidden := core.NewNodeSet("D")
	_, err := astar.Search(s.g, s.coords, "A", "C", astar.WithForbidden(forbidden))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"D"}, forbidden.Sorted())
}

// TestNoUTurn: no route ever steps straight back to the node it came from.
func (s *SearchSuite) TestNoUTurn() {
	for _, pair := range [][2]string{{"A", "C"}, {"C", "A"}, {"B", "D"}, {"D", "B"}} {
		res, err := astar.Search(s.g, s.coords, pair[0], pair[1])
		require.NoError(s.T(), err)
		for i := 0; i+2 < len(res.Path); i++ {
			require.NotEqual(s.T(), res.Path[i], res.Path[i+2], "U-turn in %v", res.Path)
		}
	}
}

// TestMissingCoordinates: a node without a position is never used favorably.
func (s *SearchSuite) TestMissingCoordinates() {
	delete(s.coords, "B")
	res, err := astar.Search(s.g, s.coords, "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "D", "C"}, res.Path)

	delete(s.coords, "D")
	_, err = astar.Search(s.g, s.coords, "A", "C")
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
}

// TestStartNotInGraph: an unknown start has no neighbors.
func (s *SearchSuite) TestStartNotInGraph() {
	_, err := astar.Search(s.g, s.coords, "Z", "C")
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
}

// TestValidation covers the sentinel errors for bad input.
func (s *SearchSuite) TestValidation() {
	_, err := astar.Search(nil, s.coords, "A", "C")
	require.ErrorIs(s.T(), err, astar.ErrNilGraph)
	_, err = astar.Search(s.g, s.coords, "", "C")
	require.ErrorIs(s.T(), err, astar.ErrEmptyStart)
	_, err = astar.Search(s.g, s.coords, "A", "")
	require.ErrorIs(s.T(), err, astar.ErrEmptyGoal)
	_, err = astar.Search(s.g, s.coords, "A", "C", astar.WithBiasWeight(-1))
	require.ErrorIs(s.T(), err, astar.ErrOptionViolation)
	_, err = astar.Search(s.g, s.coords, "A", "C", astar.WithPenalty(-1))
	require.ErrorIs(s.T(), err, astar.ErrOptionViolation)
	_, err = astar.Search(s.g, s.coords, "A", "C", astar.WithMaxExpansions(-1))
	require.ErrorIs(s.T(), err, astar.ErrOptionViolation)
}

// TestExpansionLimit: the cap aborts before the goal is popped.
func (s *SearchSuite) TestExpansionLimit() {
	res, err := astar.Search(s.g, s.coords, "A", "C", astar.WithMaxExpansions(1))
	require.ErrorIs(s.T(), err, astar.ErrExpansionLimit)
	require.False(s.T(), res.Found)
	require.Equal(s.T(), 1, res.Expanded)

	// A cap large enough leaves the output unchanged.
	res, err = astar.Search(s.g, s.coords, "A", "C", astar.WithMaxExpansions(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
}

// TestCancelledContext surfaces ctx.Err().
func (s *SearchSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.Search(s.g, s.coords, "A", "C", astar.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestEdgeWeightIgnored: nominal weights never influence the route.
func TestEdgeWeightIgnored(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "Near", 1e9))
	require.NoError(t, g.AddEdge("S", "Far", 0))
	require.NoError(t, g.AddEdge("Near", "G", 1e9))
	require.NoError(t, g.AddEdge("Far", "G", 0))
	coords := core.Coords{
		"S":    {0, 0},
		"Near": {10, 1},
		"Far":  {10, 300},
		"G":    {20, 0},
	}

	res, err := astar.Search(g, coords, "S", "G")
	require.NoError(t, err)
	require.Equal(t, []string{"S", "Near", "G"}, res.Path)
}

// TestLazyImprovementOfPendingNode: a pending node whose g improves keeps
// its stale frontier entry, yet the improved predecessor wins the path.
//
// The guide pulls X ahead of Y; X relaxes V first, then Y finds a shorter
// route to V while V is still pending.
func TestLazyImprovementOfPendingNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "X", 1))
	require.NoError(t, g.AddEdge("A", "Y", 1))
	require.NoError(t, g.AddEdge("X", "V", 1))
	require.NoError(t, g.AddEdge("Y", "V", 1))
	require.NoError(t, g.AddEdge("V", "G", 1))
	coords := core.Coords{
		"A": {0, 0},
		"X": {50, 60},
		"Y": {50, -5},
		"V": {100, 0},
		"G": {200, 0},
	}

	res, err := astar.Search(g, coords, "A", "G",
		astar.WithGuidePath(core.NewGuidePath("A", "X", "G")),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "Y", "V", "G"}, res.Path)
	require.InDelta(t, 2*math.Hypot(50, 5)+100, res.Cost, 1e-9)
	require.Equal(t, 4, res.Expanded)
}

// TestTieBreakByID: equal scores pop in ascending ID order regardless of
// adjacency order.
func TestTieBreakByID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	coords := core.Coords{
		"A": {0, 0},
		"B": {50, 50},
		"C": {50, -50},
		"D": {100, 0},
	}

	for i := 0; i < 5; i++ {
		res, err := astar.Search(g, coords, "A", "D")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D"}, res.Path)
	}
}
