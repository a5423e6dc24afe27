// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emit renders a parsed TSG document into the downstream formats
// named in §6: DOT, GTF, VCF, FASTA and JSON. Each emitter is a thin,
// mechanical projection of the in-memory model; none of them re-derive
// graph semantics.
package emit

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/tsgeco/tsg-go/tsg"
)

// DOT renders one section as its own top-level DOT digraph named by the
// section's graph_id, with nodes labeled by id and location and edges
// labeled by id and sv_type. Sections are not nested as subgraphs of one
// enclosing graph; a multi-section document yields one digraph per section.
func DOT(sec *tsg.GraphSection) ([]byte, error) {
	g := &dotGraph{GraphSection: sec}
	b, err := dot.MarshalMulti(g, sanitizeID(sec.GraphID), "", "\t")
	if err != nil {
		return nil, fmt.Errorf("emit: dot: %w", err)
	}
	return b, nil
}

// dotGraph shims a *tsg.GraphSection so its nodes and lines carry DOT
// attributes, the same wrapping pattern the debug DOT writer uses over
// *gogo.Graph: embed the underlying graph, override only the iteration
// methods whose elements need shimming.
type dotGraph struct {
	*tsg.GraphSection
}

func (g *dotGraph) DOTAttributers() (graphAttrs, node, edge encoding.Attributer) {
	return dotAttrs{{Key: "rankdir", Value: "LR"}}, dotAttrs{}, dotAttrs{}
}

type dotAttrs []encoding.Attribute

func (a dotAttrs) Attributes() []encoding.Attribute { return a }

func (g *dotGraph) Nodes() graph.Nodes {
	return shimNodes(g.GraphSection.Nodes())
}

func (g *dotGraph) From(id int64) graph.Nodes {
	return shimNodes(g.GraphSection.From(id))
}

func shimNodes(it graph.Nodes) graph.Nodes {
	var out []graph.Node
	for it.Next() {
		out = append(out, dotNode{Node: it.Node().(*tsg.Node)})
	}
	if len(out) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(out)
}

func (g *dotGraph) Lines(uid, vid int64) graph.Lines {
	it := g.GraphSection.Lines(uid, vid)
	lines := make([]graph.Line, 0, it.Len())
	for it.Next() {
		lines = append(lines, dotLine{Edge: it.Line().(*tsg.Edge)})
	}
	return iterator.NewOrderedLines(lines)
}

// dotNode implements graph.Node and dot.Node to give a node's TSG element
// id and location to the DOT encoder.
type dotNode struct {
	*tsg.Node
}

func (n dotNode) DOTID() string { return n.StringID() }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("%s\\n%s", n.StringID(), n.Location.String())},
	}
}

// dotLine implements graph.Line and encoding.Attributer so the edge's id
// and sv_type reach the DOT encoder, and so its endpoints come back as
// dotNode rather than *tsg.Node.
//
// The graph here is directed and lines are never reversed in place, so
// ReversedLine is inherited unchanged from the embedded *tsg.Edge.
type dotLine struct {
	*tsg.Edge
}

func (l dotLine) From() graph.Node { return dotNode{Node: l.Edge.From().(*tsg.Node)} }
func (l dotLine) To() graph.Node   { return dotNode{Node: l.Edge.To().(*tsg.Node)} }

func (l dotLine) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("%s:%s", l.StringID(), l.SV.SVType)},
	}
}

// sanitizeID quotes graph ids that dot's unquoted identifier grammar
// would otherwise reject; the DOT package itself handles node/edge id
// quoting, so only the subgraph name needs this here.
func sanitizeID(id string) string {
	for _, r := range id {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return fmt.Sprintf("%q", id)
		}
	}
	return id
}
