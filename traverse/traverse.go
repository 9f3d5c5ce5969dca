// Package traverse: the relaxing traversal strategies and the
// shortest-path query built on them.

package traverse

import (
	"fmt"

	"github.com/avolkov/wayfind/core"
)

// walker carries the mutable state of a single traversal run.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited Visited
}

// newWalker validates g, applies options, seeds the visited map with the
// start vertex's trivial path, and returns the ready walker.
func newWalker(g *core.Graph, start core.Vertex, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(Visited, len(g.Vertices())),
	}
	// Seed: visiting the start "from itself" records the single-vertex path.
	if _, err := w.visit(start, start); err != nil {
		return nil, err
	}

	return w, nil
}

// visit applies the relaxation rule for reaching v from the recorded path
// of from, and reports whether v's neighbors should now be (re)explored.
//
// An unseen v records the candidate path and warrants exploration. A seen v
// keeps whichever of its recorded path and the candidate weighs less (ties
// keep the recorded one) and warrants re-exploration only on a strict
// improvement, since only then can v's downstream vertices become reachable
// more cheaply.
func (w *walker) visit(v, from core.Vertex) (bool, error) {
	candidate := w.visited[from].Extend(v)
	current, seen := w.visited[v]
	if !seen {
		w.visited[v] = candidate
		w.opts.OnVisit(v, candidate)

		return true, nil
	}

	best, err := w.graph.MinWeightSequence(current, candidate)
	if err != nil {
		return false, fmt.Errorf("traverse: relaxing %s: %w", v, err)
	}
	w.visited[v] = best
	if best.Equal(current) {
		return false, nil
	}
	w.opts.OnImprove(v, current, best)

	return true, nil
}

// expand visits every neighbor of v and appends those whose paths were
// recorded or improved to the work list, returning the grown list.
func (w *walker) expand(v core.Vertex, list []core.Vertex) ([]core.Vertex, error) {
	for nbr := range w.graph.Neighbors(v) {
		explore, err := w.visit(nbr, v)
		if err != nil {
			return nil, err
		}
		if explore {
			list = append(list, nbr)
		}
	}

	return list, nil
}

// DFSRecursive runs a recursive depth-first traversal from start, relaxing
// recorded paths as it goes, and returns the final visited map.
// Recursion depth is bounded by the length of the longest relaxed path.
func DFSRecursive(g *core.Graph, start core.Vertex, opts ...Option) (Visited, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if err := w.dfs(start); err != nil {
		return nil, err
	}

	return w.visited, nil
}

// dfs explores v's neighbors pre-order, recursing immediately into any
// neighbor whose path was recorded or improved.
func (w *walker) dfs(v core.Vertex) error {
	for nbr := range w.graph.Neighbors(v) {
		explore, err := w.visit(nbr, v)
		if err != nil {
			return err
		}
		if explore {
			if err := w.dfs(nbr); err != nil {
				return err
			}
		}
	}

	return nil
}

// DFSIterative runs a depth-first traversal from start using an explicit
// LIFO work list, and returns the final visited map. It produces
// the same final map as DFSRecursive through a different visit order.
func DFSIterative(g *core.Graph, start core.Vertex, opts ...Option) (Visited, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	stack, err := w.expand(start, nil)
	if err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if stack, err = w.expand(next, stack); err != nil {
			return nil, err
		}
	}

	return w.visited, nil
}

// BFS runs a breadth-first traversal from start using a FIFO work list,
// structurally identical to DFSIterative apart from which end of the list
// is taken, and returns the final visited map.
func BFS(g *core.Graph, start core.Vertex, opts ...Option) (Visited, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	queue, err := w.expand(start, nil)
	if err != nil {
		return nil, err
	}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if queue, err = w.expand(next, queue); err != nil {
			return nil, err
		}
	}

	return w.visited, nil
}

// Run dispatches to the traversal named by strategy.
// Returns ErrUnknownStrategy for anything else; there is no default.
func Run(g *core.Graph, start core.Vertex, strategy Strategy, opts ...Option) (Visited, error) {
	switch strategy {
	case StrategyDFSRecursive:
		return DFSRecursive(g, start, opts...)
	case StrategyDFSIterative:
		return DFSIterative(g, start, opts...)
	case StrategyBFS:
		return BFS(g, start, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// ShortestPath runs the named strategy from the vertex named from and
// returns the recorded path to the vertex named to. An unreached target
// yields a nil path and no error.
//
// Vertex name validation errors (empty names) and ErrUnknownStrategy are
// returned as-is; the traversal itself cannot fail on a well-formed graph.
func ShortestPath(g *core.Graph, from, to string, strategy Strategy, opts ...Option) (core.Path, error) {
	source, err := core.NewVertex(from)
	if err != nil {
		return nil, err
	}
	target, err := core.NewVertex(to)
	if err != nil {
		return nil, err
	}
	visited, err := Run(g, source, strategy, opts...)
	if err != nil {
		return nil, err
	}

	return visited[target], nil
}
