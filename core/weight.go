// Package core: vertex-sequence weight computation.
//
// PathWeight is a pure function of the (immutable) sequence for a fixed set
// of stored edges, so results are memoized per Graph; AddEdge clears the
// cache because an overwrite can change the weight of an already-cached
// sequence.

package core

import "fmt"

// PathWeight sums the edge weights along the ordered vertex sequence p by
// looking up each consecutive pair's stored edge. Sequences with fewer than
// two vertices weigh 0.
//
// Returns an error wrapping ErrEdgeNotFound naming the first consecutive
// pair with no stored edge; there is no silent zero-weight fallback.
func (g *Graph) PathWeight(p Path) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(p) < 2 {
		return 0, nil
	}
	key := p.cacheKey()
	if w, ok := g.weightCache[key]; ok {
		return w, nil
	}

	var total float64
	for i := 1; i < len(p); i++ {
		e, err := g.EdgeBetween(p[i-1], p[i])
		if err != nil {
			return 0, fmt.Errorf("%w: no edge %s→%s in sequence %s", ErrEdgeNotFound, p[i-1], p[i], p)
		}
		total += e.Weight()
	}
	g.weightCache[key] = total

	return total, nil
}

// MinWeightSequence returns whichever of the two sequences has the lower
// total weight. Ties keep the first argument: the second sequence wins only
// on a strict improvement. This tie-break is what keeps the traversal
// engine's relaxation stable, so it must not change.
func (g *Graph) MinWeightSequence(p, q Path) (Path, error) {
	pw, err := g.PathWeight(p)
	if err != nil {
		return nil, err
	}
	qw, err := g.PathWeight(q)
	if err != nil {
		return nil, err
	}
	if qw < pw {
		return q, nil
	}

	return p, nil
}
