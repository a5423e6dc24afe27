// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"fmt"
	"strings"
)

// TraverseOptions configures a traversal. RevisitCap bounds how many
// times any single node may appear on one enumerated path; the default
// of 2 is a deliberate design choice (§4.7, §9) that permits
// tandem-duplication-like revisits while still preventing unbounded
// cyclic enumeration. It must always be supplied explicitly by callers
// that care about the default, since future versions may change it.
type TraverseOptions struct {
	RevisitCap int
}

// DefaultRevisitCap is the cap used by Traverse when a zero
// TraverseOptions is supplied.
const DefaultRevisitCap = 2

// TSGPath is one enumerated source-to-sink traversal: an alternating
// sequence of node and edge references, each carrying the orientation
// the path was walked in.
type TSGPath struct {
	ID       string
	Elements []OrientedRef
}

// String returns the path's display form, e.g. "n1+ e1+ n2+ e2+ n3+".
func (p TSGPath) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// IsSuperOf reports whether other's element sequence is a contiguous
// subsequence of p's (§4.7 "Super-path predicate").
func (p TSGPath) IsSuperOf(other TSGPath) bool {
	n, m := len(p.Elements), len(other.Elements)
	if m == 0 {
		return true
	}
	if m > n {
		return false
	}
	for start := 0; start+m <= n; start++ {
		match := true
		for i := 0; i < m; i++ {
			if p.Elements[start+i] != other.Elements[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// sourceNodes returns the section's source set: nodes carrying an
// SO-tagged read, or, if none exist in the section, nodes with
// in-degree 0 (§4.7 step 1).
func sourceNodes(sec *GraphSection) []*Node {
	var tagged []*Node
	for _, id := range sec.NodeIDs() {
		n := sec.GetNode(id)
		if n.hasReadType(ReadSO) {
			tagged = append(tagged, n)
		}
	}
	if len(tagged) > 0 {
		return tagged
	}
	var out []*Node
	for _, id := range sec.NodeIDs() {
		if sec.InDegree(id) == 0 {
			out = append(out, sec.GetNode(id))
		}
	}
	return out
}

// sinkNodes returns the section's sink set: nodes carrying an SI-tagged
// read, or, if none exist, nodes with out-degree 0 (§4.7 step 2).
func sinkNodes(sec *GraphSection) map[string]bool {
	tagged := make(map[string]bool)
	for _, id := range sec.NodeIDs() {
		if sec.GetNode(id).hasReadType(ReadSI) {
			tagged[id] = true
		}
	}
	if len(tagged) > 0 {
		return tagged
	}
	out := make(map[string]bool)
	for _, id := range sec.NodeIDs() {
		if sec.OutDegree(id) == 0 {
			out[id] = true
		}
	}
	return out
}

// orderedOutEdges groups edges by source node id, preserving the
// section's edge insertion order, so DFS exploration order matches
// neighbor insertion order (§5 "Ordering guarantees").
func orderedOutEdges(sec *GraphSection) map[string][]*Edge {
	m := make(map[string][]*Edge)
	for _, id := range sec.EdgeIDs() {
		e := sec.GetEdge(id)
		m[e.SourceID()] = append(m[e.SourceID()], e)
	}
	return m
}

// continuous reports whether the edge from a to b satisfies the
// read-continuity predicate (§3 invariant 7, §4.7 step 4). Since read
// set intersection is symmetric, the two directional checks in §4.7
// ("v has IN" and "v is IN" from the other side) collapse to one rule:
// if either endpoint carries an IN-tagged read, the pair must share at
// least one read_id.
func continuous(a, b *Node) bool {
	if !a.hasReadType(ReadIN) && !b.hasReadType(ReadIN) {
		return true
	}
	as, bs := a.readSet(), b.readSet()
	for id := range as {
		if bs[id] {
			return true
		}
	}
	return false
}

// Traverse enumerates every read-continuity-valid directed path from a
// source node to a sink node in which no node appears more than
// opts.RevisitCap times (§4.7). A zero opts uses DefaultRevisitCap.
func Traverse(sec *GraphSection, opts TraverseOptions) ([]TSGPath, error) {
	cap := opts.RevisitCap
	if cap <= 0 {
		cap = DefaultRevisitCap
	}
	sinks := sinkNodes(sec)
	srcs := sourceNodes(sec)
	outEdges := orderedOutEdges(sec)

	var paths []TSGPath
	counter := 0
	for _, src := range srcs {
		visits := map[string]int{src.StringID(): 1}
		elements := []OrientedRef{{ID: src.StringID(), Orientation: OrientPlus}}
		walk(sec, src, elements, visits, sinks, cap, outEdges, &counter, &paths)
	}
	return paths, nil
}

func walk(sec *GraphSection, cur *Node, elements []OrientedRef, visits map[string]int, sinks map[string]bool, cap int, outEdges map[string][]*Edge, counter *int, paths *[]TSGPath) {
	if sinks[cur.StringID()] {
		*counter++
		*paths = append(*paths, TSGPath{
			ID:       fmt.Sprintf("P.%d", *counter),
			Elements: append([]OrientedRef(nil), elements...),
		})
	}
	for _, e := range outEdges[cur.StringID()] {
		next, ok := e.To().(*Node)
		if !ok {
			continue
		}
		if visits[next.StringID()] >= cap {
			continue
		}
		if !continuous(cur, next) {
			continue
		}
		visits[next.StringID()]++
		extended := append(elements,
			OrientedRef{ID: e.StringID(), Orientation: OrientPlus},
			OrientedRef{ID: next.StringID(), Orientation: OrientPlus},
		)
		walk(sec, next, extended, visits, sinks, cap, outEdges, counter, paths)
		visits[next.StringID()]--
	}
}
