// Package graphfile reads and writes graphs as TOML documents.
//
// A document names the graph, fixes its directedness, and lists its edges:
//
//	name = "diamond"
//	directed = true
//
//	[[edge]]
//	from = "a"
//	to = "b"
//	weight = 0.5
//
// Edge order in the document becomes adjacency insertion order, so a
// round-tripped graph enumerates neighbors identically to the original.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/avolkov/wayfind/core"
)

// ErrBadDocument wraps TOML decode failures.
var ErrBadDocument = errors.New("graphfile: malformed graph document")

// document is the TOML shape of a stored graph. Directed defaults to true
// when absent, matching core.New.
type document struct {
	Name     string         `toml:"name"`
	Directed *bool          `toml:"directed"`
	Edges    []documentEdge `toml:"edge"`
}

type documentEdge struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// Parse decodes a TOML graph document and builds the graph edge by edge.
// Decode failures wrap ErrBadDocument; edge construction failures (empty
// names, self-loops) propagate from core and name the offending edge.
func Parse(data []byte) (*core.Graph, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	var opts []core.GraphOption
	if doc.Directed != nil && !*doc.Directed {
		opts = append(opts, core.WithUndirected())
	}
	g := core.New(doc.Name, opts...)
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Load reads and parses the graph document at path.
func Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}

	return Parse(data)
}

// Encode renders g as a TOML graph document, edges in enumeration order.
func Encode(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	directed := g.Directed()
	doc := document{Name: g.Name(), Directed: &directed}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, documentEdge{
			From:   e.V1().Name(),
			To:     e.V2().Name(),
			Weight: e.Weight(),
		})
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("graphfile: encode: %w", err)
	}

	return buf.Bytes(), nil
}
