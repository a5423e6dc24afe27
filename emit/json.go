// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"encoding/json"
	"io"

	"github.com/tsgeco/tsg-go/tsg"
)

// JSON writes doc to w as a JSON mirror of the in-memory document (§6).
// Node and edge ids are taken through their accessor methods, since the
// underlying gonum graph index is an implementation detail that plays no
// part in the TSG text form.
func JSON(w io.Writer, doc *tsg.Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(documentDTO(doc))
}

type docDoc struct {
	Headers  []tsg.GlobalHeader `json:"headers,omitempty"`
	Sections []sectionDoc       `json:"sections"`
	Links    []linkDoc          `json:"links,omitempty"`
}

type sectionDoc struct {
	GraphID string        `json:"graph_id"`
	Attrs   []tsg.Attribute `json:"attrs,omitempty"`
	Nodes   []nodeDoc     `json:"nodes"`
	Edges   []edgeDoc     `json:"edges"`
	Chains  []chainDoc    `json:"chains,omitempty"`
	Paths   []pathDoc     `json:"paths,omitempty"`
	Sets    []setDoc      `json:"sets,omitempty"`
}

type nodeDoc struct {
	ID    string              `json:"id"`
	Loc   string              `json:"loc"`
	Reads []tsg.ReadEvidence  `json:"reads,omitempty"`
	Seq   string              `json:"seq,omitempty"`
	Attrs []tsg.Attribute     `json:"attrs,omitempty"`
}

type edgeDoc struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Sink   string          `json:"sink"`
	SV     tsg.SVDescriptor `json:"sv"`
	Attrs  []tsg.Attribute `json:"attrs,omitempty"`
}

type chainDoc struct {
	ID       string          `json:"id"`
	Elements []string        `json:"elements"`
	Attrs    []tsg.Attribute `json:"attrs,omitempty"`
}

type pathDoc struct {
	ID       string             `json:"id"`
	Elements []tsg.OrientedRef  `json:"elements"`
	Attrs    []tsg.Attribute    `json:"attrs,omitempty"`
}

type setDoc struct {
	ID       string          `json:"id"`
	Elements []string        `json:"elements"`
	Attrs    []tsg.Attribute `json:"attrs,omitempty"`
}

type linkDoc struct {
	ID        string          `json:"id"`
	Endpoint1 tsg.ElementRef  `json:"endpoint1"`
	Endpoint2 tsg.ElementRef  `json:"endpoint2"`
	LinkType  string          `json:"link_type"`
	Attrs     []tsg.Attribute `json:"attrs,omitempty"`
}

func documentDTO(doc *tsg.Document) docDoc {
	out := docDoc{Headers: doc.Headers}
	for _, sec := range doc.Sections {
		sd := sectionDoc{GraphID: sec.GraphID, Attrs: sec.Attrs}
		for _, id := range sec.NodeIDs() {
			n := sec.GetNode(id)
			sd.Nodes = append(sd.Nodes, nodeDoc{
				ID: n.StringID(), Loc: n.Location.String(), Reads: n.Reads, Seq: n.Seq, Attrs: n.Attrs,
			})
		}
		for _, id := range sec.EdgeIDs() {
			e := sec.GetEdge(id)
			sd.Edges = append(sd.Edges, edgeDoc{
				ID: e.StringID(), Source: e.SourceID(), Sink: e.SinkID(), SV: e.SV, Attrs: e.Attrs,
			})
		}
		for _, c := range sec.Chains() {
			sd.Chains = append(sd.Chains, chainDoc{ID: c.ID, Elements: c.Elements, Attrs: c.Attrs})
		}
		for _, p := range sec.Paths() {
			sd.Paths = append(sd.Paths, pathDoc{ID: p.ID, Elements: p.Elements, Attrs: p.Attrs})
		}
		for _, s := range sec.Sets() {
			sd.Sets = append(sd.Sets, setDoc{ID: s.ID, Elements: s.Elements, Attrs: s.Attrs})
		}
		out.Sections = append(out.Sections, sd)
	}
	for _, l := range doc.Links {
		out.Links = append(out.Links, linkDoc{
			ID: l.ID, Endpoint1: l.Endpoint1, Endpoint2: l.Endpoint2, LinkType: l.LinkType, Attrs: l.Attrs,
		})
	}
	return out
}
