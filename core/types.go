// Package core defines the central Vertex, Edge, Path and Graph types
// used by the wayfind traversal engine.
//
// Vertices are value types identified purely by name; two Vertex values
// with equal names are the same identity everywhere, including as map keys.
// Edges are weighted pairs of vertices, directed or undirected; undirected
// edges canonicalize endpoint order so a single stored edge represents
// traversal in both directions.
//
// This file declares Vertex, Edge, the edge factory, sentinel errors,
// and the GraphOption type.
//
// Errors:
//
//	ErrEmptyVertexName - vertex name is the empty string.
//	ErrSelfLoop        - edge endpoints share the same name.
//	ErrEdgeNotFound    - a vertex pair has no stored edge.
//	ErrNilGraph        - a nil *Graph was passed to an operation.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates a vertex was constructed with an empty name.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrSelfLoop indicates an edge was requested with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop edges are not supported")

	// ErrEdgeNotFound indicates a lookup referenced a vertex pair with no stored edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilGraph indicates a nil *Graph was passed to an operation.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Vertex is an immutable named node identity.
//
// Vertex is a comparable value type: equality and map-key behavior follow
// the name alone, so distinct Vertex values with equal names are
// interchangeable.
type Vertex struct {
	name string
}

// NewVertex returns a Vertex with the given name.
// Returns ErrEmptyVertexName if name is empty.
func NewVertex(name string) (Vertex, error) {
	if name == "" {
		return Vertex{}, ErrEmptyVertexName
	}

	return Vertex{name: name}, nil
}

// Name returns the identifying name of the vertex.
func (v Vertex) Name() string { return v.name }

// String implements fmt.Stringer.
func (v Vertex) String() string { return v.name }

// Edge is a weighted connection between two vertices.
//
// A directed edge is traversable only from V1 to V2. An undirected edge
// holds its endpoints in canonical order (V1.Name() ≤ V2.Name()) and is
// traversable both ways; the reverse direction is recovered by
// Graph.Neighbors via a reverse scan rather than by storing the edge twice.
//
// Negative weights are representable but void the minimum-weight guarantee
// of the traversal engine; see the traverse package documentation.
type Edge struct {
	v1, v2   Vertex
	weight   float64
	directed bool
}

// NewEdge builds an edge between two named vertices.
//
// Returns ErrSelfLoop if the names are equal, or ErrEmptyVertexName if
// either name is empty. For undirected edges the endpoints are swapped
// when needed so that V1.Name() ≤ V2.Name(), making
// NewEdge(a, b, w, false) == NewEdge(b, a, w, false).
func NewEdge(name1, name2 string, weight float64, directed bool) (Edge, error) {
	if name1 == name2 {
		return Edge{}, ErrSelfLoop
	}
	v1, err := NewVertex(name1)
	if err != nil {
		return Edge{}, err
	}
	v2, err := NewVertex(name2)
	if err != nil {
		return Edge{}, err
	}
	// Canonical ordering invariant for undirected edges.
	if !directed && v2.name < v1.name {
		v1, v2 = v2, v1
	}

	return Edge{v1: v1, v2: v2, weight: weight, directed: directed}, nil
}

// V1 returns the stored first endpoint (the source for directed edges).
func (e Edge) V1() Vertex { return e.v1 }

// V2 returns the stored second endpoint (the target for directed edges).
func (e Edge) V2() Vertex { return e.v2 }

// Weight returns the edge weight.
func (e Edge) Weight() float64 { return e.weight }

// Directed reports whether the edge is traversable only from V1 to V2.
func (e Edge) Directed() bool { return e.directed }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes every edge added to the graph undirected.
// The default is directed.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.directed = false }
}
