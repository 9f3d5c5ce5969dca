// Package render turns graphs into human- and tool-readable forms: an
// indented text listing, Graphviz DOT, and SVG rendered through Graphviz.
//
// All renderers enumerate vertices and edges in the graph's insertion
// order, exactly as core.Graph.Neighbors yields them; the output order is
// therefore deterministic for a deterministically built graph.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/avolkov/wayfind/core"
)

// Text renders g as an indented neighbor listing:
//
//	Graph(name="diamond", directed=true)
//	  Neighbors of a
//	    b  (a→b, weight=0.5)
//	    c  (a→c, weight=2)
//
// Vertices appear in adjacency-row insertion order and neighbors in
// Neighbors() enumeration order.
func Text(g *core.Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph(name=%q, directed=%t)\n", g.Name(), g.Directed())
	arrow := "→"
	if !g.Directed() {
		arrow = "—"
	}
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "  Neighbors of %s\n", v)
		for nbr, e := range g.Neighbors(v) {
			fmt.Fprintf(&b, "    %s  (%s%s%s, weight=%v)\n", nbr, e.V1(), arrow, e.V2(), e.Weight())
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ToDOT converts g to Graphviz DOT. Directed graphs become a digraph with
// "->" connectors, undirected ones a graph with "--". Edge weights become
// edge labels.
func ToDOT(g *core.Graph) string {
	keyword, connector := "digraph", "->"
	if !g.Directed() {
		keyword, connector = "graph", "--"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", keyword, g.Name())
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q %s %q [label=\"%v\"];\n", e.V1().Name(), connector, e.V2().Name(), e.Weight())
	}
	buf.WriteString("}\n")

	return buf.String()
}

// SVG renders a DOT document to SVG bytes using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
