// Package wayfind is a small weighted-graph toolkit whose traversals find
// minimum-weight vertex sequences as a side effect of walking the graph.
//
// The pieces:
//
//	core/       Vertex, Edge, Path and Graph primitives with
//	            insertion-ordered adjacency and memoized sequence weights
//	traverse/   recursive DFS, iterative DFS and BFS sharing one
//	            path-relaxation rule, plus the shortest-path query
//	graphfile/  TOML graph documents
//	render/     text, DOT and SVG renderings
//	cmd/wayfind the CLI front-end
//
// Quick example:
//
//	g := core.New("diamond")
//	g.AddEdge("a", "b", 0.5)
//	g.AddEdge("b", "d", 0.5)
//	g.AddEdge("a", "d", 2.0)
//	path, _ := traverse.ShortestPath(g, "a", "d", traverse.StrategyBFS)
//	fmt.Println(path) // a → b → d
//
// See the traverse package documentation for the limits of the relaxation
// scheme on arbitrary weighted graphs.
package wayfind
