package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/wayfind/core"
)

// buildCompleteDiamond returns the fully connected directed diamond:
// a→b 0.5, a→c 2, b→d 2, c→d 0.5, b→c 0.5, a→d 2.
func buildCompleteDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New("complete-diamond")
	require.NoError(t, g.AddEdge("a", "b", 0.5))
	require.NoError(t, g.AddEdge("a", "c", 2.0))
	require.NoError(t, g.AddEdge("b", "d", 2.0))
	require.NoError(t, g.AddEdge("c", "d", 0.5))
	require.NoError(t, g.AddEdge("b", "c", 0.5))
	require.NoError(t, g.AddEdge("a", "d", 2.0))

	return g
}

// pathOf builds a Path from names, failing the test on invalid names.
func pathOf(t *testing.T, names ...string) core.Path {
	t.Helper()
	p := make(core.Path, 0, len(names))
	for _, n := range names {
		p = p.Extend(vtx(t, n))
	}

	return p
}

func TestPathWeight_Sums(t *testing.T) {
	g := buildCompleteDiamond(t)

	for _, tc := range []struct {
		names []string
		want  float64
	}{
		{[]string{"a", "d"}, 2.0},
		{[]string{"a", "c", "d"}, 2.5},
		{[]string{"a", "b", "c", "d"}, 1.5},
	} {
		w, err := g.PathWeight(pathOf(t, tc.names...))
		require.NoError(t, err)
		assert.Equal(t, tc.want, w, "sequence %v", tc.names)
	}
}

func TestPathWeight_TrivialSequences(t *testing.T) {
	g := buildCompleteDiamond(t)

	w, err := g.PathWeight(nil)
	require.NoError(t, err)
	assert.Zero(t, w)

	w, err = g.PathWeight(pathOf(t, "a"))
	require.NoError(t, err)
	assert.Zero(t, w)
}

func TestPathWeight_MissingEdge(t *testing.T) {
	g := buildCompleteDiamond(t)

	// d→a is not stored in this directed graph.
	_, err := g.PathWeight(pathOf(t, "a", "d", "a"))
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestPathWeight_UndirectedReverseLookup(t *testing.T) {
	g := core.New("triangle", core.WithUndirected())
	require.NoError(t, g.AddEdge("a", "b", 0.5))
	require.NoError(t, g.AddEdge("a", "c", 0.5))
	require.NoError(t, g.AddEdge("b", "c", 0.5))

	// (c, a, b) walks both edges against their stored orientation.
	w, err := g.PathWeight(pathOf(t, "c", "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestPathWeight_CacheInvalidatedByAddEdge(t *testing.T) {
	g := core.New("g")
	require.NoError(t, g.AddEdge("a", "b", 0.5))

	w, err := g.PathWeight(pathOf(t, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, w)

	// Overwriting the edge must not serve the memoized old weight.
	require.NoError(t, g.AddEdge("a", "b", 9.0))
	w, err = g.PathWeight(pathOf(t, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 9.0, w)
}

func TestMinWeightSequence(t *testing.T) {
	g := buildCompleteDiamond(t)

	ad := pathOf(t, "a", "d")
	acd := pathOf(t, "a", "c", "d")
	abcd := pathOf(t, "a", "b", "c", "d")

	got, err := g.MinWeightSequence(ad, acd)
	require.NoError(t, err)
	assert.True(t, got.Equal(ad))

	got, err = g.MinWeightSequence(ad, abcd)
	require.NoError(t, err)
	assert.True(t, got.Equal(abcd))
}

func TestMinWeightSequence_TieKeepsFirst(t *testing.T) {
	g := buildCompleteDiamond(t)

	ad := pathOf(t, "a", "d")  // weight 2.0
	ac := pathOf(t, "a", "c")  // weight 2.0

	got, err := g.MinWeightSequence(ad, ac)
	require.NoError(t, err)
	assert.True(t, got.Equal(ad), "tie must keep the first argument")

	got, err = g.MinWeightSequence(ac, ad)
	require.NoError(t, err)
	assert.True(t, got.Equal(ac), "tie must keep the first argument")
}

func TestMinWeightSequence_ErrorPropagates(t *testing.T) {
	g := buildCompleteDiamond(t)

	_, err := g.MinWeightSequence(pathOf(t, "d", "a"), pathOf(t, "a", "d"))
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestPathWeight_NilGraph(t *testing.T) {
	var g *core.Graph
	_, err := g.PathWeight(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}
