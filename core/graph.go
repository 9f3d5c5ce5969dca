// Package core: Graph storage and neighbor enumeration.
//
// The adjacency structure maps each vertex to its directly stored outgoing
// edges, keyed by neighbor. Both the set of rows and the entries inside a
// row preserve insertion order, because neighbor enumeration order is part
// of the public contract (renderers and traversal determinism depend on it).

package core

import "iter"

// adjacencyRow holds the edges stored under a single vertex, keyed by the
// edge's second endpoint, with neighbor insertion order preserved.
type adjacencyRow struct {
	order []Vertex
	edges map[Vertex]Edge
}

// Graph is an in-memory weighted graph with insertion-ordered adjacency.
//
// Every edge is stored exactly once, under the edge's effective first
// endpoint; for undirected graphs the reverse direction is discovered by
// scanning the other rows instead of mirroring each edge.
//
// A Graph is not safe for concurrent use, and must not be mutated while a
// traversal over it is in flight.
type Graph struct {
	name     string
	directed bool

	adjacency map[Vertex]*adjacencyRow
	rowOrder  []Vertex // insertion order of adjacency rows

	// weightCache memoizes PathWeight per vertex sequence; AddEdge clears it.
	weightCache map[string]float64
}

// New creates an empty named Graph. Edges default to directed;
// pass WithUndirected to flip.
func New(name string, opts ...GraphOption) *Graph {
	g := &Graph{
		name:        name,
		directed:    true,
		adjacency:   make(map[Vertex]*adjacencyRow),
		weightCache: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// Directed reports whether edges added to this graph are directed.
func (g *Graph) Directed() bool { return g.directed }

// AddEdge builds an edge between the named vertices via NewEdge and stores
// it under the edge's effective first endpoint. Adding an edge for a
// (v1, v2) pair that already holds one overwrites it in place: last write
// wins, and the pair keeps its original enumeration position.
//
// Returns ErrSelfLoop or ErrEmptyVertexName from the factory.
// Any successful AddEdge invalidates the path-weight cache.
func (g *Graph) AddEdge(name1, name2 string, weight float64) error {
	e, err := NewEdge(name1, name2, weight, g.directed)
	if err != nil {
		return err
	}

	row, ok := g.adjacency[e.v1]
	if !ok {
		row = &adjacencyRow{edges: make(map[Vertex]Edge)}
		g.adjacency[e.v1] = row
		g.rowOrder = append(g.rowOrder, e.v1)
	}
	if _, exists := row.edges[e.v2]; !exists {
		row.order = append(row.order, e.v2)
	}
	row.edges[e.v2] = e

	// Stored weights changed; memoized sequence weights are stale.
	clear(g.weightCache)

	return nil
}

// Neighbors returns a lazy, restartable sequence of (neighbor, edge) pairs
// for v. It first yields the directly stored row for v in insertion order.
// For undirected graphs it then scans every other row in row-insertion
// order and yields edges that store v as their second endpoint, an O(|V|)
// reverse scan per call.
func (g *Graph) Neighbors(v Vertex) iter.Seq2[Vertex, Edge] {
	return func(yield func(Vertex, Edge) bool) {
		if row, ok := g.adjacency[v]; ok {
			for _, nbr := range row.order {
				if !yield(nbr, row.edges[nbr]) {
					return
				}
			}
		}
		if g.directed {
			return
		}
		// Reverse-direction discovery: v may be the stored second endpoint.
		for _, u := range g.rowOrder {
			if u == v {
				continue
			}
			if e, ok := g.adjacency[u].edges[v]; ok {
				if !yield(u, e) {
					return
				}
			}
		}
	}
}

// EdgeBetween returns the stored edge connecting u to v.
// The (u, v) row is consulted first; for undirected graphs the reverse
// (v, u) storage also matches. Returns ErrEdgeNotFound otherwise.
func (g *Graph) EdgeBetween(u, v Vertex) (Edge, error) {
	if row, ok := g.adjacency[u]; ok {
		if e, ok := row.edges[v]; ok {
			return e, nil
		}
	}
	if !g.directed {
		if row, ok := g.adjacency[v]; ok {
			if e, ok := row.edges[u]; ok {
				return e, nil
			}
		}
	}

	return Edge{}, ErrEdgeNotFound
}

// HasVertex reports whether v owns an adjacency row, i.e. appears as the
// stored first endpoint of at least one edge.
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns the adjacency row keys in insertion order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.rowOrder))
	copy(out, g.rowOrder)

	return out
}

// Edges returns every stored edge, enumerated row by row in insertion order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, u := range g.rowOrder {
		row := g.adjacency[u]
		for _, nbr := range row.order {
			out = append(out, row.edges[nbr])
		}
	}

	return out
}
