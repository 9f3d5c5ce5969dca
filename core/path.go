package core

import "strings"

// Path is an ordered vertex sequence, typically from a traversal source to
// one of its reachable vertices. A nil or empty Path means "no path".
//
// Paths are treated as immutable values: Extend copies rather than appending
// in place, so paths recorded in a visited map never alias each other.
type Path []Vertex

// Extend returns a fresh Path consisting of p followed by v.
// The receiver is never mutated.
func (p Path) Extend(v Vertex) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = v

	return out
}

// Equal reports whether p and q contain the same vertices in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Names returns the vertex names in sequence order.
func (p Path) Names() []string {
	out := make([]string, len(p))
	for i, v := range p {
		out[i] = v.Name()
	}

	return out
}

// String renders the path as "a → b → c"; empty paths render as "∅".
func (p Path) String() string {
	if len(p) == 0 {
		return "∅"
	}

	return strings.Join(p.Names(), " → ")
}

// cacheKey builds the memoization key used by Graph.PathWeight.
// The unit separator cannot occur in sensible vertex names, which keeps
// distinct sequences from colliding.
func (p Path) cacheKey() string {
	return strings.Join(p.Names(), "\x1f")
}
