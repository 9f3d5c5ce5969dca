package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/wayfind/core"
)

func TestNewVertex(t *testing.T) {
	v, err := core.NewVertex("a")
	require.NoError(t, err)
	assert.Equal(t, "a", v.Name())

	_, err = core.NewVertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexName)
}

func TestVertex_IdentityByName(t *testing.T) {
	v1, err := core.NewVertex("a")
	require.NoError(t, err)
	v2, err := core.NewVertex("a")
	require.NoError(t, err)

	// Equal names must be interchangeable identities, including as map keys.
	assert.Equal(t, v1, v2)
	m := map[core.Vertex]int{v1: 1}
	m[v2] = 2
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[v1])
}

func TestNewEdge_SelfLoopRejected(t *testing.T) {
	for _, directed := range []bool{true, false} {
		_, err := core.NewEdge("a", "a", 1.0, directed)
		assert.ErrorIs(t, err, core.ErrSelfLoop, "directed=%t", directed)
	}
}

func TestNewEdge_EmptyName(t *testing.T) {
	_, err := core.NewEdge("", "b", 1.0, true)
	assert.ErrorIs(t, err, core.ErrEmptyVertexName)
	_, err = core.NewEdge("a", "", 1.0, true)
	assert.ErrorIs(t, err, core.ErrEmptyVertexName)
}

func TestNewEdge_UndirectedCanonicalOrder(t *testing.T) {
	ab, err := core.NewEdge("A", "B", 1.0, false)
	require.NoError(t, err)
	ba, err := core.NewEdge("B", "A", 1.0, false)
	require.NoError(t, err)

	// Canonicalization makes endpoint order irrelevant for undirected edges.
	assert.Equal(t, ab, ba)
	assert.Equal(t, "A", ba.V1().Name())
	assert.Equal(t, "B", ba.V2().Name())
}

func TestNewEdge_DirectedKeepsOrder(t *testing.T) {
	e, err := core.NewEdge("B", "A", 1.0, true)
	require.NoError(t, err)
	assert.Equal(t, "B", e.V1().Name())
	assert.Equal(t, "A", e.V2().Name())
	assert.True(t, e.Directed())
}

func TestPath_ExtendDoesNotAlias(t *testing.T) {
	a, _ := core.NewVertex("a")
	b, _ := core.NewVertex("b")
	c, _ := core.NewVertex("c")

	base := core.Path{a}
	p1 := base.Extend(b)
	p2 := base.Extend(c)

	assert.Equal(t, []string{"a", "b"}, p1.Names())
	assert.Equal(t, []string{"a", "c"}, p2.Names())
	assert.Equal(t, []string{"a"}, base.Names())
}

func TestPath_String(t *testing.T) {
	a, _ := core.NewVertex("a")
	b, _ := core.NewVertex("b")

	assert.Equal(t, "a → b", core.Path{a, b}.String())
	assert.Equal(t, "∅", core.Path{}.String())
}
