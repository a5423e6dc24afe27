// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

// Document is a fully parsed TSG file: global headers, an ordered list of
// independent graph sections, and the inter-graph links that relate
// elements across them.
type Document struct {
	Headers  []GlobalHeader
	Sections []*GraphSection
	Links    []*InterGraphLink

	sectionByID map[string]*GraphSection
}

// NewDocument returns a new, empty Document.
func NewDocument() *Document {
	return &Document{sectionByID: make(map[string]*GraphSection)}
}

// AddSection appends a new, empty section named graphID and returns it. It
// reports a DuplicateError if graphID has already been used in this
// document.
func (d *Document) AddSection(graphID string) (*GraphSection, error) {
	if _, ok := d.sectionByID[graphID]; ok {
		return nil, &DuplicateError{GraphID: graphID, ID: graphID, Kind: KindSection, Conflicting: KindSection}
	}
	sec := NewGraphSection(graphID)
	d.Sections = append(d.Sections, sec)
	d.sectionByID[graphID] = sec
	return sec, nil
}

// Section returns the section named graphID, or nil if none exists.
func (d *Document) Section(graphID string) *GraphSection {
	return d.sectionByID[graphID]
}

// AddLink appends an inter-graph link after validating that both endpoints
// name sections and elements that already exist in the document.
func (d *Document) AddLink(link *InterGraphLink) error {
	for _, ref := range [2]ElementRef{link.Endpoint1, link.Endpoint2} {
		sec, ok := d.sectionByID[ref.GraphID]
		if !ok {
			return &ReferenceError{GraphID: ref.GraphID, ElementID: ref.ElementID, Msg: "link endpoint names an undefined graph section"}
		}
		if !sec.hasElement(ref.ElementID) {
			return &ReferenceError{GraphID: ref.GraphID, ElementID: ref.ElementID, Msg: "link endpoint is not defined in that section"}
		}
	}
	d.Links = append(d.Links, link)
	return nil
}

// Header returns the value of the first global header with the given tag,
// and whether it was present.
func (d *Document) Header(tag string) (string, bool) {
	for _, h := range d.Headers {
		if h.Tag == tag {
			return h.Value, true
		}
	}
	return "", false
}
