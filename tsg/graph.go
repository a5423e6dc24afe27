// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/set/uid"
)

// GraphSection is one TSG section: a directed multigraph of nodes and
// edges, plus its chains, paths and sets. GraphSection implements
// graph.Directed (and so gonum/graph/traverse and gonum/graph/encoding/dot
// can operate on it directly), with TSG string element IDs layered over
// gonum's internal int64 indices.
type GraphSection struct {
	GraphID string
	Attrs   []Attribute

	nodes    map[int64]graph.Node
	nodeByID map[string]*Node
	nodeOrder []string

	from map[int64]map[int64]map[int64]graph.Line
	to   map[int64]map[int64]map[int64]graph.Line
	edgeByID  map[string]*Edge
	edgeOrder []string

	chainByID  map[string]*Chain
	chainOrder []string

	pathByID  map[string]*OrderedPath
	pathOrder []string

	setByID  map[string]*UnorderedSet
	setOrder []string

	// kindOf records which record family first claimed a given element
	// ID within this section, so that a later record reusing the ID
	// under a different kind is rejected (§3 invariant 1).
	kindOf map[string]ElementKind

	ids *uid.Set
}

// NewGraphSection returns a new, empty section named graphID.
func NewGraphSection(graphID string) *GraphSection {
	return &GraphSection{
		GraphID: graphID,

		nodes:    make(map[int64]graph.Node),
		nodeByID: make(map[string]*Node),

		from:     make(map[int64]map[int64]map[int64]graph.Line),
		to:       make(map[int64]map[int64]map[int64]graph.Line),
		edgeByID: make(map[string]*Edge),

		chainByID: make(map[string]*Chain),
		pathByID:  make(map[string]*OrderedPath),
		setByID:   make(map[string]*UnorderedSet),

		kindOf: make(map[string]ElementKind),

		ids: uid.NewSet(),
	}
}

// NodeData is the value-model content of an N record, prior to storage.
type NodeData struct {
	ID       string
	Location GenomicLocation
	Reads    []ReadEvidence
	Seq      string
	Attrs    []Attribute
}

// claimKind records id as belonging to kind, or reports a DuplicateError
// if it was already claimed under a different kind.
func (g *GraphSection) claimKind(id string, kind ElementKind) error {
	if existing, ok := g.kindOf[id]; ok && existing != kind {
		return &DuplicateError{GraphID: g.GraphID, ID: id, Kind: kind, Conflicting: existing}
	}
	g.kindOf[id] = kind
	return nil
}

// addGraphNode inserts n into the gonum-facing storage, allocating its
// internal index.
func (g *GraphSection) addGraphNode(n *Node) {
	n.index = g.ids.NewID()
	g.ids.Use(n.index)
	g.nodes[n.index] = n
	g.nodeByID[n.id] = n
}

// placeholderNode returns the existing node for id, creating an incomplete
// placeholder node if none exists yet (§4.3 forward references).
func (g *GraphSection) placeholderNode(id string) *Node {
	if n, ok := g.nodeByID[id]; ok {
		return n
	}
	n := &Node{id: id, placeholder: true}
	g.addGraphNode(n)
	g.nodeOrder = append(g.nodeOrder, id)
	return n
}

// AddNode adds or completes the node named by data.ID. If a placeholder was
// previously synthesized for this ID by a forward-referencing edge or
// chain, it is completed in place, preserving its internal index and
// its position in nodeOrder. A second explicit N record for the same ID is
// a DuplicateError.
func (g *GraphSection) AddNode(data NodeData) (*Node, error) {
	if err := g.claimKind(data.ID, KindNode); err != nil {
		return nil, err
	}
	if existing, ok := g.nodeByID[data.ID]; ok {
		if !existing.placeholder {
			return nil, &DuplicateError{GraphID: g.GraphID, ID: data.ID, Kind: KindNode, Conflicting: KindNode}
		}
		existing.Location = data.Location
		existing.Reads = data.Reads
		existing.Seq = data.Seq
		existing.Attrs = data.Attrs
		existing.placeholder = false
		return existing, nil
	}
	n := &Node{
		id:       data.ID,
		Location: data.Location,
		Reads:    data.Reads,
		Seq:      data.Seq,
		Attrs:    data.Attrs,
	}
	g.addGraphNode(n)
	g.nodeOrder = append(g.nodeOrder, data.ID)
	return n, nil
}

// GetNode returns the node named id, or nil if no such node (placeholder or
// complete) exists.
func (g *GraphSection) GetNode(id string) *Node {
	return g.nodeByID[id]
}

// EdgeData is the value-model content of an E record, prior to storage.
type EdgeData struct {
	ID       string
	SourceID string
	SinkID   string
	SV       SVDescriptor
	Attrs    []Attribute
}

// AddEdge adds or completes the edge named by data.ID. If a placeholder was
// previously synthesized for this ID by a chain-derived construction
// (§4.4 mode 2), it is completed in place, preserving its internal index
// and its position in edgeOrder, the same way AddNode completes a
// placeholder node. A second explicit E record for the same ID is a
// DuplicateError; an edge ID matching a non-edge element is a
// DuplicateError reporting the conflicting kind.
func (g *GraphSection) AddEdge(data EdgeData) (*Edge, error) {
	return g.addEdge(data, false)
}

// addEdge is the shared implementation behind AddEdge and placeholderEdge.
// placeholder marks an edge synthesized from a chain position rather than
// an explicit E record (§4.4 mode 2).
func (g *GraphSection) addEdge(data EdgeData, placeholder bool) (*Edge, error) {
	if err := g.claimKind(data.ID, KindEdge); err != nil {
		return nil, err
	}
	from := g.placeholderNode(data.SourceID)
	to := g.placeholderNode(data.SinkID)
	if existing, ok := g.edgeByID[data.ID]; ok {
		if !existing.placeholder {
			return nil, &DuplicateError{GraphID: g.GraphID, ID: data.ID, Kind: KindEdge, Conflicting: KindEdge}
		}
		g.unsetLine(existing)
		existing.from = from
		existing.to = to
		existing.SV = data.SV
		existing.Attrs = data.Attrs
		existing.placeholder = placeholder
		g.setLine(existing)
		return existing, nil
	}
	e := &Edge{
		id:          data.ID,
		index:       g.ids.NewID(),
		from:        from,
		to:          to,
		SV:          data.SV,
		Attrs:       data.Attrs,
		placeholder: placeholder,
	}
	g.ids.Use(e.index)
	g.setLine(e)
	g.edgeByID[e.id] = e
	g.edgeOrder = append(g.edgeOrder, e.id)
	return e, nil
}

// GetEdge returns the edge named id, or nil if none exists.
func (g *GraphSection) GetEdge(id string) *Edge {
	return g.edgeByID[id]
}

// setLine installs e into the from/to adjacency maps that back the
// gonum/graph.Directed implementation.
func (g *GraphSection) setLine(e *Edge) {
	fid, tid, lid := e.from.ID(), e.to.ID(), e.ID()

	switch {
	case g.from[fid] == nil:
		g.from[fid] = map[int64]map[int64]graph.Line{tid: {lid: e}}
	case g.from[fid][tid] == nil:
		g.from[fid][tid] = map[int64]graph.Line{lid: e}
	default:
		g.from[fid][tid][lid] = e
	}
	switch {
	case g.to[tid] == nil:
		g.to[tid] = map[int64]map[int64]graph.Line{fid: {lid: e}}
	case g.to[tid][fid] == nil:
		g.to[tid][fid] = map[int64]graph.Line{lid: e}
	default:
		g.to[tid][fid][lid] = e
	}
}

// unsetLine removes e from the from/to adjacency maps, so it can be
// rewired by setLine under new endpoints.
func (g *GraphSection) unsetLine(e *Edge) {
	fid, tid, lid := e.from.ID(), e.to.ID(), e.ID()
	if byTo := g.from[fid]; byTo != nil {
		delete(byTo[tid], lid)
		if len(byTo[tid]) == 0 {
			delete(byTo, tid)
		}
	}
	if byFrom := g.to[tid]; byFrom != nil {
		delete(byFrom[fid], lid)
		if len(byFrom[fid]) == 0 {
			delete(byFrom, fid)
		}
	}
}

// placeholderEdge returns the existing edge for id, synthesizing an
// incomplete placeholder edge between from and to if none exists yet
// (§4.4 mode 2: chain-derived construction). A later explicit E record for
// the same ID completes it in place via AddEdge, the same way a forward
// edge/chain reference completes a placeholder node.
func (g *GraphSection) placeholderEdge(id, fromID, toID string) (*Edge, error) {
	if e, ok := g.edgeByID[id]; ok {
		return e, nil
	}
	return g.addEdge(EdgeData{ID: id, SourceID: fromID, SinkID: toID}, true)
}

// AddChain adds a construction-witness chain. Each referenced node ID is
// completed as a placeholder if not already present. Each referenced edge ID
// either already exists (explicit construction, §4.4 mode 1) or is
// synthesized as a placeholder edge from its chain position (chain-derived
// construction, §4.4 mode 2); a placeholder edge synthesized this way is
// later completed in place by AddEdge if a separate E record supplies one.
func (g *GraphSection) AddChain(ch *Chain) error {
	if err := g.claimKind(ch.ID, KindChain); err != nil {
		return err
	}
	if _, ok := g.chainByID[ch.ID]; ok {
		return &DuplicateError{GraphID: g.GraphID, ID: ch.ID, Kind: KindChain, Conflicting: KindChain}
	}
	if len(ch.Elements)%2 == 0 {
		return &ChainError{GraphID: g.GraphID, ChainID: ch.ID, Msg: fmt.Sprintf("chain has even length %d, want odd", len(ch.Elements))}
	}
	for i, id := range ch.Elements {
		if i%2 == 0 {
			g.placeholderNode(id)
			continue
		}
		prevNode, nextNode := ch.Elements[i-1], ch.Elements[i+1]
		existed := g.edgeByID[id] != nil
		edge, err := g.placeholderEdge(id, prevNode, nextNode)
		if err != nil {
			return err
		}
		if existed && (edge.SourceID() != prevNode || edge.SinkID() != nextNode) {
			return &ChainError{GraphID: g.GraphID, ChainID: ch.ID, Msg: fmt.Sprintf("edge %q connects %s->%s, not %s->%s", id, edge.SourceID(), edge.SinkID(), prevNode, nextNode)}
		}
	}
	g.chainByID[ch.ID] = ch
	g.chainOrder = append(g.chainOrder, ch.ID)
	return nil
}

// GetChain returns the chain named id, or nil if none exists.
func (g *GraphSection) GetChain(id string) *Chain { return g.chainByID[id] }

// Chains returns the section's chains in declaration order.
func (g *GraphSection) Chains() []*Chain {
	out := make([]*Chain, len(g.chainOrder))
	for i, id := range g.chainOrder {
		out[i] = g.chainByID[id]
	}
	return out
}

// AddPath adds an ordered path. Every referenced element must already exist
// in the section (paths are traversals of already-constructed elements).
func (g *GraphSection) AddPath(p *OrderedPath) error {
	if err := g.claimKind(p.ID, KindPath); err != nil {
		return err
	}
	if _, ok := g.pathByID[p.ID]; ok {
		return &DuplicateError{GraphID: g.GraphID, ID: p.ID, Kind: KindPath, Conflicting: KindPath}
	}
	for _, ref := range p.Elements {
		if !g.hasElement(ref.ID) {
			return &ReferenceError{GraphID: g.GraphID, ElementID: ref.ID, Msg: "referenced by path but not defined in this section"}
		}
	}
	g.pathByID[p.ID] = p
	g.pathOrder = append(g.pathOrder, p.ID)
	return nil
}

// GetPath returns the path named id, or nil if none exists.
func (g *GraphSection) GetPath(id string) *OrderedPath { return g.pathByID[id] }

// Paths returns the section's ordered paths in declaration order.
func (g *GraphSection) Paths() []*OrderedPath {
	out := make([]*OrderedPath, len(g.pathOrder))
	for i, id := range g.pathOrder {
		out[i] = g.pathByID[id]
	}
	return out
}

// AddSet adds an unordered set. Every referenced element must already exist
// in the section.
func (g *GraphSection) AddSet(s *UnorderedSet) error {
	if err := g.claimKind(s.ID, KindGroup); err != nil {
		return err
	}
	if _, ok := g.setByID[s.ID]; ok {
		return &DuplicateError{GraphID: g.GraphID, ID: s.ID, Kind: KindGroup, Conflicting: KindGroup}
	}
	for _, id := range s.Elements {
		if !g.hasElement(id) {
			return &ReferenceError{GraphID: g.GraphID, ElementID: id, Msg: "referenced by set but not defined in this section"}
		}
	}
	g.setByID[s.ID] = s
	g.setOrder = append(g.setOrder, s.ID)
	return nil
}

// GetSet returns the set named id, or nil if none exists.
func (g *GraphSection) GetSet(id string) *UnorderedSet { return g.setByID[id] }

// Sets returns the section's unordered sets in declaration order.
func (g *GraphSection) Sets() []*UnorderedSet {
	out := make([]*UnorderedSet, len(g.setOrder))
	for i, id := range g.setOrder {
		out[i] = g.setByID[id]
	}
	return out
}

// hasElement reports whether id names a node or edge in this section.
func (g *GraphSection) hasElement(id string) bool {
	if _, ok := g.nodeByID[id]; ok {
		return true
	}
	_, ok := g.edgeByID[id]
	return ok
}

// NodeIDs returns the section's node IDs in declaration order, including
// any unresolved placeholders.
func (g *GraphSection) NodeIDs() []string { return g.nodeOrder }

// EdgeIDs returns the section's edge IDs in declaration order.
func (g *GraphSection) EdgeIDs() []string { return g.edgeOrder }

// Placeholders returns the IDs of nodes referenced but never completed by
// an explicit N record.
func (g *GraphSection) Placeholders() []string {
	var out []string
	for _, id := range g.nodeOrder {
		if g.nodeByID[id].placeholder {
			out = append(out, id)
		}
	}
	return out
}

// The methods below implement gonum.org/v1/gonum/graph.Directed.

// Node returns the node with the given internal index, or nil.
func (g *GraphSection) Node(id int64) graph.Node { return g.nodes[id] }

// Nodes returns all nodes in the section.
func (g *GraphSection) Nodes() graph.Nodes {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	return iterator.NewNodes(g.nodes)
}

// From returns all nodes reachable directly from n.
func (g *GraphSection) From(id int64) graph.Nodes {
	if len(g.from[id]) == 0 {
		return graph.Empty
	}
	return iterator.NewNodesByLines(g.nodes, g.from[id])
}

// To returns all nodes that reach directly to n.
func (g *GraphSection) To(id int64) graph.Nodes {
	if len(g.to[id]) == 0 {
		return graph.Empty
	}
	return iterator.NewNodesByLines(g.nodes, g.to[id])
}

// HasEdgeBetween reports whether an edge exists between x and y, in either
// direction.
func (g *GraphSection) HasEdgeBetween(xid, yid int64) bool {
	if _, ok := g.from[xid][yid]; ok {
		return true
	}
	_, ok := g.from[yid][xid]
	return ok
}

// HasEdgeFromTo reports whether an edge exists from u to v.
func (g *GraphSection) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.from[uid][vid]
	return ok
}

// Edge returns the multi-edge from u to v, or nil if none exists.
func (g *GraphSection) Edge(uid, vid int64) graph.Edge {
	if len(g.from[uid][vid]) == 0 {
		return nil
	}
	return multi.Edge{F: g.Node(uid), T: g.Node(vid), Lines: g.Lines(uid, vid)}
}

// Lines returns the parallel edges from u to v, or graph.Empty.
func (g *GraphSection) Lines(uid, vid int64) graph.Lines {
	edges := g.from[uid][vid]
	if len(edges) == 0 {
		return graph.Empty
	}
	lines := make([]graph.Line, 0, len(edges))
	for _, l := range edges {
		lines = append(lines, l)
	}
	return iterator.NewOrderedLines(lines)
}

// Edges returns all edges in the section, each as a multi.Edge aggregating
// parallel lines between the same pair of nodes.
func (g *GraphSection) Edges() graph.Edges {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	var edges []graph.Edge
	for _, u := range g.nodes {
		for _, byLine := range g.from[u.ID()] {
			var lines []graph.Line
			for _, l := range byLine {
				lines = append(lines, l)
			}
			if len(lines) != 0 {
				edges = append(edges, multi.Edge{
					F:     g.Node(u.ID()),
					T:     g.Node(lines[0].To().ID()),
					Lines: iterator.NewOrderedLines(lines),
				})
			}
		}
	}
	if len(edges) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedEdges(edges)
}

// InDegree returns the number of edges whose sink is id.
func (g *GraphSection) InDegree(id string) int {
	n, ok := g.nodeByID[id]
	if !ok {
		return 0
	}
	count := 0
	for _, byLine := range g.to[n.ID()] {
		count += len(byLine)
	}
	return count
}

// OutDegree returns the number of edges whose source is id.
func (g *GraphSection) OutDegree(id string) int {
	n, ok := g.nodeByID[id]
	if !ok {
		return 0
	}
	count := 0
	for _, byLine := range g.from[n.ID()] {
		count += len(byLine)
	}
	return count
}
