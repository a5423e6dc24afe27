// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"bufio"
	"fmt"
	"io"
)

// defaultGraphID is the stable section name synthesized when N/E/U/P/C
// records appear before any G line (§4.4, resolved Open Question in §9).
const defaultGraphID = "default"

// parserState is the ingest state machine's current mode.
type parserState int

const (
	statePreamble parserState = iota
	stateInSection
	statePostSections
)

// Parser drives the section-aware ingest state machine described in
// §4.4: it reads records in order, dispatches them to the current
// section, and synthesizes or completes nodes as forward references
// demand.
type Parser struct {
	doc   *Document
	state parserState
	cur   *GraphSection

	line int

	// Warnings accumulates non-fatal diagnostics: placeholder retention
	// at section close, per §7 propagation rules.
	Warnings []error
}

// NewParser returns a Parser that builds into a fresh Document.
func NewParser() *Parser {
	return &Parser{doc: NewDocument(), state: statePreamble}
}

// Parse reads a complete TSG document from r. It is not safe to reuse a
// Parser across calls to Parse.
func Parse(r io.Reader) (*Document, error) {
	doc, _, err := ParseWithWarnings(r)
	return doc, err
}

// ParseWithWarnings is Parse, additionally returning any accumulated
// non-fatal warnings (placeholder retention, per §7).
func ParseWithWarnings(r io.Reader) (*Document, []error, error) {
	p := NewParser()
	if err := p.feed(r); err != nil {
		return nil, p.Warnings, err
	}
	doc, err := p.Finish()
	return doc, p.Warnings, err
}

// feed reads every line of r and dispatches it.
func (p *Parser) feed(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		p.line++
		rec, err := SplitRecord(scanner.Text(), p.line)
		if err != nil {
			return err
		}
		if rec.IsBlank() {
			continue
		}
		if err := p.dispatch(rec); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &IOError{Path: "<input>", Err: err}
	}
	return nil
}

// dispatch routes one record to the handler for its tag, opening an
// implicit default section if a graph-scoped tag arrives in Preamble.
func (p *Parser) dispatch(rec Record) error {
	switch rec.Tag {
	case TagHeader:
		if p.state != statePreamble {
			return &ReferenceError{Msg: "H record must precede all G records", ElementID: rec.Fields[0]}
		}
		return p.handleHeader(rec)
	case TagGraph:
		return p.handleGraph(rec)
	case TagLink:
		return p.handleLink(rec)
	case TagNode, TagEdge, TagSet, TagPath, TagChain, TagAttr:
		if p.state == statePreamble {
			if err := p.openSection(defaultGraphID, nil); err != nil {
				return err
			}
		}
		if p.state == statePostSections {
			if rec.Tag != TagAttr {
				return &ReferenceError{Msg: fmt.Sprintf("record %q cannot follow a later section without reopening it", string(rec.Tag))}
			}
		}
		return p.handleSectionRecord(rec)
	default:
		return &LexError{Line: rec.Line, Kind: UnknownTag, Msg: fmt.Sprintf("unhandled tag %q", string(rec.Tag))}
	}
}

func (p *Parser) handleHeader(rec Record) error {
	h := GlobalHeader{Tag: rec.Fields[0]}
	if len(rec.Fields) > 1 {
		h.Value = rec.Fields[1]
	}
	p.doc.Headers = append(p.doc.Headers, h)
	return nil
}

// openSection closes the current section (if any) and opens a new one.
func (p *Parser) openSection(graphID string, attrFields []string) error {
	if p.cur != nil {
		if err := p.closeSection(p.cur); err != nil {
			return err
		}
	}
	sec, err := p.doc.AddSection(graphID)
	if err != nil {
		return err
	}
	attrs, err := ParseAttributes(attrFields)
	if err != nil {
		return &ValueError{Line: p.line, Msg: "bad section attribute", Err: err}
	}
	sec.Attrs = attrs
	p.cur = sec
	p.state = stateInSection
	return nil
}

func (p *Parser) handleGraph(rec Record) error {
	if len(rec.Fields) == 0 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "G record requires a graph_id"}
	}
	return p.openSection(rec.Fields[0], rec.Fields[1:])
}

// handleSectionRecord dispatches N/E/U/P/C/A to the open section.
func (p *Parser) handleSectionRecord(rec Record) error {
	sec := p.cur
	switch rec.Tag {
	case TagNode:
		return p.handleNode(sec, rec)
	case TagEdge:
		return p.handleEdge(sec, rec)
	case TagSet:
		return p.handleSet(sec, rec)
	case TagPath:
		return p.handlePath(sec, rec)
	case TagChain:
		return p.handleChain(sec, rec)
	case TagAttr:
		return p.handleAttr(sec, rec)
	}
	return nil
}

func (p *Parser) handleNode(sec *GraphSection, rec Record) error {
	if len(rec.Fields) < 3 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "N record requires id, genomic_location, reads"}
	}
	loc, err := ParseGenomicLocation(rec.Fields[1])
	if err != nil {
		return &ValueError{Line: rec.Line, Msg: "bad genomic location", Err: err}
	}
	reads, err := ParseReads(rec.Fields[2])
	if err != nil {
		return &ValueError{Line: rec.Line, Msg: "bad reads field", Err: err}
	}
	var seq string
	if len(rec.Fields) > 3 {
		seq = rec.Fields[3]
	}
	_, err = sec.AddNode(NodeData{ID: rec.Fields[0], Location: loc, Reads: reads, Seq: seq})
	return wrapLine(err, rec.Line)
}

func (p *Parser) handleEdge(sec *GraphSection, rec Record) error {
	if len(rec.Fields) != 4 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "E record requires id, source_id, sink_id, sv_descriptor"}
	}
	sv, err := ParseSVDescriptor(rec.Fields[3])
	if err != nil {
		return &ValueError{Line: rec.Line, Msg: "bad SV descriptor", Err: err}
	}
	_, err = sec.AddEdge(EdgeData{ID: rec.Fields[0], SourceID: rec.Fields[1], SinkID: rec.Fields[2], SV: sv})
	return wrapLine(err, rec.Line)
}

func (p *Parser) handleSet(sec *GraphSection, rec Record) error {
	if len(rec.Fields) < 1 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "U record requires an id"}
	}
	s := &UnorderedSet{ID: rec.Fields[0], Elements: append([]string(nil), rec.Fields[1:]...)}
	return wrapLine(sec.AddSet(s), rec.Line)
}

func (p *Parser) handlePath(sec *GraphSection, rec Record) error {
	if len(rec.Fields) < 1 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "P record requires an id"}
	}
	refs := make([]OrientedRef, 0, len(rec.Fields)-1)
	for _, f := range rec.Fields[1:] {
		ref, err := ParseOrientedRef(f)
		if err != nil {
			return &ValueError{Line: rec.Line, Msg: "bad oriented reference", Err: err}
		}
		refs = append(refs, ref)
	}
	path := &OrderedPath{ID: rec.Fields[0], Elements: refs}
	return wrapLine(sec.AddPath(path), rec.Line)
}

func (p *Parser) handleChain(sec *GraphSection, rec Record) error {
	if len(rec.Fields) < 2 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "C record requires an id and at least one node"}
	}
	ch := &Chain{ID: rec.Fields[0], Elements: append([]string(nil), rec.Fields[1:]...)}
	return wrapLine(sec.AddChain(ch), rec.Line)
}

func (p *Parser) handleAttr(sec *GraphSection, rec Record) error {
	if len(rec.Fields) != 3 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "A record requires element_type, element_id, attr_triplet"}
	}
	attr, err := ParseAttribute(rec.Fields[2])
	if err != nil {
		return &ValueError{Line: rec.Line, Msg: "bad attribute triplet", Err: err}
	}
	id := rec.Fields[1]
	switch rec.Fields[0] {
	case "N":
		n := sec.GetNode(id)
		if n == nil {
			return &ReferenceError{Line: rec.Line, GraphID: sec.GraphID, ElementID: id, Msg: "A record targets undefined node"}
		}
		n.Attrs = append(n.Attrs, attr)
	case "E":
		e := sec.GetEdge(id)
		if e == nil {
			return &ReferenceError{Line: rec.Line, GraphID: sec.GraphID, ElementID: id, Msg: "A record targets undefined edge"}
		}
		e.Attrs = append(e.Attrs, attr)
	case "U":
		s := sec.GetSet(id)
		if s == nil {
			return &ReferenceError{Line: rec.Line, GraphID: sec.GraphID, ElementID: id, Msg: "A record targets undefined set"}
		}
		s.Attrs = append(s.Attrs, attr)
	case "P":
		path := sec.GetPath(id)
		if path == nil {
			return &ReferenceError{Line: rec.Line, GraphID: sec.GraphID, ElementID: id, Msg: "A record targets undefined path"}
		}
		path.Attrs = append(path.Attrs, attr)
	case "C":
		c := sec.GetChain(id)
		if c == nil {
			return &ReferenceError{Line: rec.Line, GraphID: sec.GraphID, ElementID: id, Msg: "A record targets undefined chain"}
		}
		c.Attrs = append(c.Attrs, attr)
	default:
		return &LexError{Line: rec.Line, Kind: BadAttributeTriplet, Msg: fmt.Sprintf("unknown element_type %q", rec.Fields[0])}
	}
	return nil
}

func (p *Parser) handleLink(rec Record) error {
	if len(rec.Fields) < 4 {
		return &LexError{Line: rec.Line, Kind: EmptyField, Msg: "L record requires id, endpoint1, endpoint2, link_type"}
	}
	ep1, err := ParseElementRef(rec.Fields[1])
	if err != nil {
		return &ValueError{Line: rec.Line, Msg: "bad link endpoint1", Err: err}
	}
	ep2, err := ParseElementRef(rec.Fields[2])
	if err != nil {
		return &ValueError{Line: rec.Line, Msg: "bad link endpoint2", Err: err}
	}
	attrs, err := ParseAttributes(rec.Fields[4:])
	if err != nil {
		return &ValueError{Line: rec.Line, Msg: "bad link attribute", Err: err}
	}
	link := &InterGraphLink{
		ID:        rec.Fields[0],
		Endpoint1: ep1,
		Endpoint2: ep2,
		LinkType:  rec.Fields[3],
		Attrs:     attrs,
	}
	if err := p.doc.AddLink(link); err != nil {
		return wrapLine(err, rec.Line)
	}
	if p.state == stateInSection {
		// An L record after at least one completed section does not
		// itself close the current section; subsequent section
		// records keep extending it. Only a further G line or EOF
		// closes a section.
		return nil
	}
	p.state = statePostSections
	return nil
}

// closeSection runs §4.4's section-close validation: placeholder
// retention is a warning, not an error, and is left to the caller
// (serialize.go completes retained placeholders with a minimal N line).
func (p *Parser) closeSection(sec *GraphSection) error {
	for _, id := range sec.Placeholders() {
		p.Warnings = append(p.Warnings, &ContinuityWarning{
			GraphID: sec.GraphID, NodeID: id,
			Msg: "node referenced but never defined by an N record; retained as placeholder",
		})
	}
	return nil
}

// Finish closes the current section, if any, and returns the completed
// Document. Call this once after feeding all input.
func (p *Parser) Finish() (*Document, error) {
	if p.cur != nil {
		if err := p.closeSection(p.cur); err != nil {
			return nil, err
		}
	}
	return p.doc, nil
}

// wrapLine attaches line context to an error returned by a GraphSection
// mutator, without altering its underlying type.
func wrapLine(err error, line int) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *DuplicateError:
		e.Line = line
		return e
	case *ReferenceError:
		e.Line = line
		return e
	case *ChainError:
		e.Line = line
		return e
	default:
		return err
	}
}
