// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import "gonum.org/v1/gonum/graph"

// ElementKind tags which record family an element ID belongs to, so that
// cross-kind ID collisions (§3 invariant 1, §9 design notes) can be
// detected independently of the per-kind storage maps.
type ElementKind int

const (
	KindNode ElementKind = iota
	KindEdge
	KindGroup
	KindPath
	KindChain

	// KindSection tags a graph_id, for the DuplicateError raised when a
	// document reuses one across sections. It is not a per-element kind
	// tracked by GraphSection.kindOf: graph_ids and element IDs live in
	// separate namespaces.
	KindSection
)

func (k ElementKind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindGroup:
		return "set"
	case KindPath:
		return "path"
	case KindChain:
		return "chain"
	case KindSection:
		return "graph section"
	default:
		return "unknown"
	}
}

// Node is an exon or transcript segment: a vertex with genomic
// coordinates, read evidence and optional inline sequence.
//
// Node implements graph.Node so that a *GraphSection can be walked
// directly with gonum/graph/traverse.
type Node struct {
	id    string
	index int64

	Location    GenomicLocation
	Reads       []ReadEvidence
	Seq         string
	Attrs       []Attribute
	placeholder bool
}

// ID returns the node's internal graph index, required by graph.Node.
// It is not the TSG element ID; use StringID for that.
func (n *Node) ID() int64 { return n.index }

// StringID returns the node's TSG element ID.
func (n *Node) StringID() string { return n.id }

// Placeholder reports whether the node was synthesized to satisfy a
// forward reference and has not yet been completed by an explicit N
// record (§4.3, §9 "forward references").
func (n *Node) Placeholder() bool { return n.placeholder }

// hasReadType reports whether the node carries at least one read tagged t.
func (n *Node) hasReadType(t ReadType) bool {
	for _, r := range n.Reads {
		if r.Type == t {
			return true
		}
	}
	return false
}

// readSet returns the set of read IDs carried by the node, regardless of
// type tag.
func (n *Node) readSet() map[string]bool {
	if len(n.Reads) == 0 {
		return nil
	}
	s := make(map[string]bool, len(n.Reads))
	for _, r := range n.Reads {
		s[r.ReadID] = true
	}
	return s
}

// Edge is a directed connection between two nodes, annotated with a
// structural-variant descriptor.
//
// Edge implements graph.Line (not graph.Edge) because a GraphSection is a
// multigraph: parallel edges between the same pair of nodes are permitted.
type Edge struct {
	id    string
	index int64

	from, to    *Node
	SV          SVDescriptor
	Attrs       []Attribute
	placeholder bool
}

// From returns the edge's source node.
func (e *Edge) From() graph.Node { return e.from }

// To returns the edge's sink node.
func (e *Edge) To() graph.Node { return e.to }

// ReversedLine is required by graph.Line; TSG edges are never reversed in
// place, so it returns the edge unchanged.
func (e *Edge) ReversedLine() graph.Line { return e }

// ID returns the edge's internal line index, required by graph.Line.
func (e *Edge) ID() int64 { return e.index }

// StringID returns the edge's TSG element ID.
func (e *Edge) StringID() string { return e.id }

// SourceID returns the TSG element ID of the edge's source node.
func (e *Edge) SourceID() string { return e.from.StringID() }

// SinkID returns the TSG element ID of the edge's sink node.
func (e *Edge) SinkID() string { return e.to.StringID() }

// Placeholder reports whether the edge was synthesized from a chain
// (§4.4 mode 2) and has not yet been completed by an explicit E record.
func (e *Edge) Placeholder() bool { return e.placeholder }

// Chain is a construction witness: an odd-length alternating sequence of
// node, edge, node, ..., node element IDs (§3 invariant 3).
type Chain struct {
	ID       string
	Elements []string
	Attrs    []Attribute
}

// Nodes returns the node IDs at even positions of the chain.
func (c *Chain) Nodes() []string {
	out := make([]string, 0, (len(c.Elements)+1)/2)
	for i := 0; i < len(c.Elements); i += 2 {
		out = append(out, c.Elements[i])
	}
	return out
}

// Edges returns the edge IDs at odd positions of the chain.
func (c *Chain) Edges() []string {
	if len(c.Elements) < 2 {
		return nil
	}
	out := make([]string, 0, len(c.Elements)/2)
	for i := 1; i < len(c.Elements); i += 2 {
		out = append(out, c.Elements[i])
	}
	return out
}

// OrderedPath is a traversal of already-constructed elements: an ordered
// list of oriented element references.
type OrderedPath struct {
	ID       string
	Elements []OrientedRef
	Attrs    []Attribute
}

// UnorderedSet is an unordered subgraph selection.
type UnorderedSet struct {
	ID       string
	Elements []string
	Attrs    []Attribute
}

// InterGraphLink is a document-scope relation between elements in two
// different sections.
type InterGraphLink struct {
	ID        string
	Endpoint1 ElementRef
	Endpoint2 ElementRef
	LinkType  string
	Attrs     []Attribute
}

// GlobalHeader is a file-wide key/value pair, parsed before any section.
type GlobalHeader struct {
	Tag   string
	Value string
}
