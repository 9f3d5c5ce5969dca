// Package traverse implements depth-first and breadth-first traversal over
// a core.Graph that simultaneously computes minimum-weight vertex sequences
// from the source to every reachable vertex.
//
// Unlike a plain graph search, the shared visit primitive does not stop at
// visited/unvisited: reaching an already-visited vertex along a strictly
// lighter path replaces its recorded path and re-explores its neighbors, so
// improvements propagate downstream. All three strategies are built on that
// one rule and converge to the same final visited map for a given graph and
// source, despite visiting in different orders.
//
// Correctness limitation: relaxation happens
// in traversal order, not in priority order as in Dijkstra's algorithm. For
// graphs with non-negative weights the recorded paths stabilize to the
// minimum-weight sequences reachable under these traversal semantics, but
// there is no general guarantee for arbitrary weighted graphs; negative
// weights in particular void the minimum-weight property. Callers needing
// hard shortest-path guarantees should not use this package.
//
// Complexity: O(V + E) per relaxation wave; the number of waves is bounded
// by the number of strict path improvements, which is finite whenever no
// negative-weight cycle is reachable.
package traverse
