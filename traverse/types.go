package traverse

import (
	"errors"

	"github.com/avolkov/wayfind/core"
)

// Strategy names a traversal algorithm accepted by Run and ShortestPath.
type Strategy string

// Supported strategies. The string values are part of the public surface
// (they arrive from CLI flags and config files verbatim).
const (
	// StrategyDFSRecursive explores depth-first by recursion,
	// stack depth bounded by the longest relaxed path.
	StrategyDFSRecursive Strategy = "dfs-recursive"

	// StrategyDFSIterative explores depth-first with an explicit LIFO
	// work list.
	StrategyDFSIterative Strategy = "dfs-nonrecursive"

	// StrategyBFS explores breadth-first with a FIFO work list.
	StrategyBFS Strategy = "bfs"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrUnknownStrategy is returned for an unrecognized strategy name.
	// There is no fallback strategy.
	ErrUnknownStrategy = errors.New("traverse: unsupported strategy")
)

// Visited maps each reached vertex to the best-known path from the
// traversal source. Map presence is the "visited" marker: an absent key
// means the vertex was never reached. Each traversal run owns a fresh
// Visited; runs never share one.
type Visited map[core.Vertex]core.Path

// Equal reports whether two visited maps record identical paths for
// identical vertex sets.
func (vm Visited) Equal(other Visited) bool {
	if len(vm) != len(other) {
		return false
	}
	for v, p := range vm {
		q, ok := other[v]
		if !ok || !p.Equal(q) {
			return false
		}
	}

	return true
}

// Option configures optional traversal behavior.
type Option func(*Options)

// Options holds the traversal hooks. Hooks are diagnostics only: they
// cannot abort a run, because traversals always run to completion.
type Options struct {
	// OnVisit fires when a vertex is reached for the first time,
	// with its freshly recorded path.
	OnVisit func(v core.Vertex, path core.Path)

	// OnImprove fires when relaxation replaces a vertex's recorded path
	// with a strictly lighter one.
	OnImprove func(v core.Vertex, old, now core.Path)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(core.Vertex, core.Path) {},
		OnImprove: func(core.Vertex, core.Path, core.Path) {},
	}
}

// WithOnVisit installs fn as the first-visit hook.
func WithOnVisit(fn func(v core.Vertex, path core.Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnImprove installs fn as the relaxation hook.
func WithOnImprove(fn func(v core.Vertex, old, now core.Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}
