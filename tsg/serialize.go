// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Serialize writes doc to w in the canonical TSG text form described in
// §4.5: global headers, then each section (its G line, then N*, E*, C*,
// P*, U*, A* record groups in insertion order), then all inter-graph L
// lines. The result satisfies the round-trip law parse(serialize(parse(D)))
// = parse(D).
func Serialize(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	for _, h := range doc.Headers {
		if h.Value != "" {
			fmt.Fprintf(bw, "H\t%s\t%s\n", h.Tag, h.Value)
		} else {
			fmt.Fprintf(bw, "H\t%s\n", h.Tag)
		}
	}
	for _, sec := range doc.Sections {
		writeSection(bw, sec)
	}
	for _, link := range doc.Links {
		writeLink(bw, link)
	}
	return bw.Flush()
}

// SerializeString is a convenience wrapper around Serialize for tests and
// callers that want the text directly.
func SerializeString(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := Serialize(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeSection(w *bufio.Writer, sec *GraphSection) {
	fmt.Fprintf(w, "G\t%s", sec.GraphID)
	writeAttrsInline(w, sec.Attrs)
	fmt.Fprint(w, "\n")

	for _, id := range sec.NodeIDs() {
		writeNode(w, sec.GetNode(id))
	}
	for _, id := range sec.EdgeIDs() {
		writeEdge(w, sec.GetEdge(id))
	}
	for _, c := range sec.Chains() {
		writeChain(w, c)
	}
	for _, p := range sec.Paths() {
		writePath(w, p)
	}
	for _, s := range sec.Sets() {
		writeSet(w, s)
	}
	writeAttrLines(w, sec)
}

func writeNode(w *bufio.Writer, n *Node) {
	reads := joinReads(n.Reads)
	if reads == "" {
		reads = "."
	}
	fmt.Fprintf(w, "N\t%s\t%s\t%s", n.StringID(), n.Location.String(), reads)
	if n.Seq != "" {
		fmt.Fprintf(w, "\t%s", n.Seq)
	}
	fmt.Fprint(w, "\n")
}

func writeEdge(w *bufio.Writer, e *Edge) {
	fmt.Fprintf(w, "E\t%s\t%s\t%s\t%s\n", e.StringID(), e.SourceID(), e.SinkID(), e.SV.String())
}

func writeChain(w *bufio.Writer, c *Chain) {
	fmt.Fprintf(w, "C\t%s", c.ID)
	for _, el := range c.Elements {
		fmt.Fprintf(w, "\t%s", el)
	}
	fmt.Fprint(w, "\n")
}

func writePath(w *bufio.Writer, p *OrderedPath) {
	fmt.Fprintf(w, "P\t%s", p.ID)
	for _, ref := range p.Elements {
		fmt.Fprintf(w, "\t%s", ref.String())
	}
	fmt.Fprint(w, "\n")
}

func writeSet(w *bufio.Writer, s *UnorderedSet) {
	fmt.Fprintf(w, "U\t%s", s.ID)
	for _, id := range s.Elements {
		fmt.Fprintf(w, "\t%s", id)
	}
	fmt.Fprint(w, "\n")
}

func writeLink(w *bufio.Writer, l *InterGraphLink) {
	fmt.Fprintf(w, "L\t%s\t%s\t%s\t%s", l.ID, l.Endpoint1.String(), l.Endpoint2.String(), l.LinkType)
	for _, a := range l.Attrs {
		fmt.Fprintf(w, "\t%s", a.String())
	}
	fmt.Fprint(w, "\n")
}

func writeAttrsInline(w *bufio.Writer, attrs []Attribute) {
	for _, a := range attrs {
		fmt.Fprintf(w, "\t%s", a.String())
	}
}

// writeAttrLines emits the section's A* group: attributes grouped by
// (element_type, element_id) in N, E, C, P, U family order (matching the
// record grouping above), each element's triplets sorted by (type_code,
// tag) for stable diffs (§4.5).
func writeAttrLines(w *bufio.Writer, sec *GraphSection) {
	for _, id := range sec.NodeIDs() {
		writeAttrGroup(w, "N", id, sec.GetNode(id).Attrs)
	}
	for _, id := range sec.EdgeIDs() {
		writeAttrGroup(w, "E", id, sec.GetEdge(id).Attrs)
	}
	for _, c := range sec.Chains() {
		writeAttrGroup(w, "C", c.ID, c.Attrs)
	}
	for _, p := range sec.Paths() {
		writeAttrGroup(w, "P", p.ID, p.Attrs)
	}
	for _, s := range sec.Sets() {
		writeAttrGroup(w, "U", s.ID, s.Attrs)
	}
}

func writeAttrGroup(w *bufio.Writer, elementType, id string, attrs []Attribute) {
	if len(attrs) == 0 {
		return
	}
	sorted := append([]Attribute(nil), attrs...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Type != sorted[j].Type {
			return sorted[i].Type < sorted[j].Type
		}
		return sorted[i].Tag < sorted[j].Tag
	})
	for _, a := range sorted {
		fmt.Fprintf(w, "A\t%s\t%s\t%s\n", elementType, id, a.String())
	}
}
