// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/stat"
)

// undirectedView adapts a *GraphSection to an edge-direction-blind graph,
// the way gogo's reverse{g} wrapper adapts *Graph for ancestor/descendant
// walks: embed the section for Node, override From to return neighbors
// reachable by either direction.
type undirectedView struct{ *GraphSection }

func (g undirectedView) From(id int64) graph.Nodes {
	seen := make(map[int64]graph.Node)
	fit := g.GraphSection.From(id)
	for fit.Next() {
		n := fit.Node()
		seen[n.ID()] = n
	}
	tit := g.GraphSection.To(id)
	for tit.Next() {
		n := tit.Node()
		seen[n.ID()] = n
	}
	if len(seen) == 0 {
		return graph.Empty
	}
	return iterator.NewNodes(seen)
}

// WeaklyConnectedComponents partitions the section's node IDs into
// weakly connected components, using traverse.BreadthFirst over an
// edge-direction-blind view (§4.6).
func WeaklyConnectedComponents(sec *GraphSection) [][]string {
	seen := make(map[int64]bool)
	view := undirectedView{sec}
	var comps [][]string
	for _, id := range sec.NodeIDs() {
		n := sec.GetNode(id)
		if seen[n.ID()] {
			continue
		}
		var comp []string
		var bf traverse.BreadthFirst
		bf.Walk(view, n, func(v graph.Node, _ int) bool {
			seen[v.ID()] = true
			comp = append(comp, v.(*Node).StringID())
			return false
		})
		comps = append(comps, comp)
	}
	return comps
}

// IsWeaklyConnected reports whether the section has at most one weakly
// connected component.
func IsWeaklyConnected(sec *GraphSection) bool {
	return len(WeaklyConnectedComponents(sec)) <= 1
}

// stronglyConnectedComponents returns the section's SCCs via Tarjan's
// algorithm, reusing gonum/graph/topo directly since *GraphSection
// already implements graph.Directed.
func stronglyConnectedComponents(sec *GraphSection) [][]graph.Node {
	return topo.TarjanSCC(sec)
}

// IsStronglyConnected reports whether the whole section collapses to a
// single strongly connected component.
func IsStronglyConnected(sec *GraphSection) bool {
	n := len(sec.NodeIDs())
	if n == 0 {
		return true
	}
	sccs := stronglyConnectedComponents(sec)
	return len(sccs) == 1 && len(sccs[0]) == n
}

// IsCyclic reports whether the section's directed graph contains a
// cycle: a self-loop, or a strongly connected component of size > 1.
func IsCyclic(sec *GraphSection) bool {
	for _, id := range sec.EdgeIDs() {
		e := sec.GetEdge(id)
		if e.SourceID() == e.SinkID() {
			return true
		}
	}
	for _, scc := range stronglyConnectedComponents(sec) {
		if len(scc) > 1 {
			return true
		}
	}
	return false
}

// IsBipartite reports whether the section's underlying undirected graph
// is 2-colorable (§4.6).
func IsBipartite(sec *GraphSection) bool {
	color := make(map[int64]int)
	view := undirectedView{sec}
	for _, id := range sec.NodeIDs() {
		n := sec.GetNode(id)
		if _, ok := color[n.ID()]; ok {
			continue
		}
		color[n.ID()] = 0
		ok := true
		// Two-coloring needs the traversing node's own color at each
		// step, which traverse.BreadthFirst's Walk callback doesn't
		// carry, so this uses a plain queue directly over the same
		// undirectedView used elsewhere in this file.
		queue := []graph.Node{n}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			nbrs := view.From(cur.ID())
			for nbrs.Next() {
				nb := nbrs.Node()
				if c, seen := color[nb.ID()]; seen {
					if c == color[cur.ID()] {
						ok = false
					}
					continue
				}
				color[nb.ID()] = 1 - color[cur.ID()]
				queue = append(queue, nb)
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Bubble is a pair (Source, Sink) with at least two internally
// vertex-disjoint directed paths between them (§4.6).
type Bubble struct {
	Source, Sink string
	Paths        [][]string
}

// maxSimplePathsExplored bounds the per-pair simple-path search in
// Bubbles so that a densely connected section cannot blow up combinatorially;
// bubbles needing more than this many candidate paths to find two
// disjoint ones are not reported.
const maxSimplePathsExplored = 256

// Bubbles detects (source, sink) pairs satisfying §4.6's four bubble
// conditions: source out-degree ≥ 2, sink in-degree ≥ 2, and at least
// two internally vertex-disjoint s→t paths. Condition (iv), "no path
// from s to t avoids this pair", holds trivially here since only paths
// with s and t as exact endpoints are considered.
func Bubbles(sec *GraphSection) []Bubble {
	outEdges := orderedOutEdges(sec)
	var bubbles []Bubble
	for _, sid := range sec.NodeIDs() {
		if sec.OutDegree(sid) < 2 {
			continue
		}
		for _, tid := range sec.NodeIDs() {
			if tid == sid || sec.InDegree(tid) < 2 {
				continue
			}
			paths := simplePaths(sid, tid, outEdges, maxSimplePathsExplored)
			disjoint := disjointInteriorPaths(paths)
			if len(disjoint) >= 2 {
				bubbles = append(bubbles, Bubble{Source: sid, Sink: tid, Paths: disjoint})
			}
		}
	}
	return bubbles
}

// simplePaths enumerates simple (no repeated node) directed node-id
// paths from src to dst, stopping once limit candidates have been
// found.
func simplePaths(src, dst string, outEdges map[string][]*Edge, limit int) [][]string {
	var out [][]string
	visited := map[string]bool{src: true}
	var walk func(cur string, path []string)
	walk = func(cur string, path []string) {
		if len(out) >= limit {
			return
		}
		if cur == dst && len(path) > 1 {
			out = append(out, append([]string(nil), path...))
			return
		}
		for _, e := range outEdges[cur] {
			next := e.SinkID()
			if visited[next] {
				continue
			}
			visited[next] = true
			walk(next, append(path, next))
			delete(visited, next)
		}
	}
	walk(src, []string{src})
	return out
}

// disjointInteriorPaths greedily selects paths whose interior nodes
// (excluding the shared endpoints) do not overlap with any previously
// selected path.
func disjointInteriorPaths(paths [][]string) [][]string {
	var selected [][]string
	used := make(map[string]bool)
	for _, p := range paths {
		interior := p
		if len(interior) > 2 {
			interior = interior[1 : len(interior)-1]
		} else {
			interior = nil
		}
		conflict := false
		for _, n := range interior {
			if used[n] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		for _, n := range interior {
			used[n] = true
		}
		selected = append(selected, p)
	}
	return selected
}

// Topology is a coarse structural classification tag (§4.6).
type Topology string

const (
	TopoLinear    Topology = "linear"
	TopoBranching Topology = "branching"
	TopoCyclic    Topology = "cyclic"
	TopoBubble    Topology = "bubble"
	TopoFadeIn    Topology = "fade_in"
	TopoFadeOut   Topology = "fade_out"
	TopoComplex   Topology = "complex"
)

// Classify returns every Topology tag that applies to sec. "complex" is
// added whenever more than one of the other non-linear tags applies;
// "linear" is returned alone when none of them do.
func Classify(sec *GraphSection) []Topology {
	var tags []Topology
	branching := false
	for _, id := range sec.NodeIDs() {
		if sec.OutDegree(id) > 1 || sec.InDegree(id) > 1 {
			branching = true
			break
		}
	}
	if branching {
		tags = append(tags, TopoBranching)
	}
	if IsCyclic(sec) {
		tags = append(tags, TopoCyclic)
	}
	if len(Bubbles(sec)) > 0 {
		tags = append(tags, TopoBubble)
	}
	srcs := len(sourceNodes(sec))
	sinks := len(sinkNodes(sec))
	if srcs > 1 && sinks == 1 {
		tags = append(tags, TopoFadeIn)
	}
	if srcs == 1 && sinks > 1 {
		tags = append(tags, TopoFadeOut)
	}
	if len(tags) == 0 {
		return []Topology{TopoLinear}
	}
	if len(tags) > 1 {
		tags = append(tags, TopoComplex)
	}
	return tags
}

// MatchesTopology reports whether tag is among sec's classification.
func MatchesTopology(sec *GraphSection, tag Topology) bool {
	for _, t := range Classify(sec) {
		if t == tag {
			return true
		}
	}
	return false
}

// Summary is a structural snapshot of one section, including
// degree-distribution statistics computed with gonum/stat.
type Summary struct {
	Nodes, Edges, Chains, Paths int
	Sources, Sinks              int
	ConnectedComponents         int
	TotalDegree                 int
	MeanInDegree, StdDevInDegree   float64
	MeanOutDegree, StdDevOutDegree float64
}

// Summarize computes a Summary for sec.
func Summarize(sec *GraphSection) Summary {
	nodeIDs := sec.NodeIDs()
	ins := make([]float64, len(nodeIDs))
	outs := make([]float64, len(nodeIDs))
	for i, id := range nodeIDs {
		ins[i] = float64(sec.InDegree(id))
		outs[i] = float64(sec.OutDegree(id))
	}
	s := Summary{
		Nodes:               len(nodeIDs),
		Edges:               len(sec.EdgeIDs()),
		Chains:              len(sec.Chains()),
		Paths:               len(sec.Paths()),
		Sources:             len(sourceNodes(sec)),
		Sinks:               len(sinkNodes(sec)),
		ConnectedComponents: len(WeaklyConnectedComponents(sec)),
	}
	if len(ins) > 0 {
		s.TotalDegree = int(floats.Sum(ins) + floats.Sum(outs))
		s.MeanInDegree = stat.Mean(ins, nil)
		s.StdDevInDegree = stat.StdDev(ins, nil)
		s.MeanOutDegree = stat.Mean(outs, nil)
		s.StdDevOutDegree = stat.StdDev(outs, nil)
	}
	return s
}
