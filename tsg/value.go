// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Strand is the genomic strand of a node's location. The zero value is
// StrandUnknown.
type Strand byte

const (
	StrandUnknown Strand = 0
	StrandPlus    Strand = '+'
	StrandMinus   Strand = '-'
)

// String returns the TSG text form of the strand: "+", "-" or "?".
func (s Strand) String() string {
	switch s {
	case StrandPlus:
		return "+"
	case StrandMinus:
		return "-"
	default:
		return "?"
	}
}

func parseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return StrandPlus, nil
	case "-":
		return StrandMinus, nil
	case "", "?":
		return StrandUnknown, nil
	default:
		return StrandUnknown, fmt.Errorf("unknown strand: %q", s)
	}
}

// Interval is a closed [Start, End] genomic interval.
type Interval struct {
	Start, End int
}

func (iv Interval) String() string {
	return fmt.Sprintf("%d-%d", iv.Start, iv.End)
}

// GenomicLocation is a chromosome, strand and ordered list of intervals,
// encoded as "chromosome:strand:start-end,start-end,...".
type GenomicLocation struct {
	Chromosome string
	Strand     Strand
	Intervals  []Interval
}

// String returns the TSG text encoding of the location.
func (loc GenomicLocation) String() string {
	parts := make([]string, len(loc.Intervals))
	for i, iv := range loc.Intervals {
		parts[i] = iv.String()
	}
	return fmt.Sprintf("%s:%s:%s", loc.Chromosome, loc.Strand, strings.Join(parts, ","))
}

// ParseGenomicLocation parses the "chromosome:strand:interval_list" form
// described in §4.2 of the TSG specification.
func ParseGenomicLocation(s string) (GenomicLocation, error) {
	fields := strings.SplitN(s, ":", 3)
	if len(fields) != 3 {
		return GenomicLocation{}, fmt.Errorf("malformed genomic location: %q", s)
	}
	strand, err := parseStrand(fields[1])
	if err != nil {
		return GenomicLocation{}, fmt.Errorf("malformed genomic location %q: %w", s, err)
	}
	var intervals []Interval
	for _, part := range strings.Split(fields[2], ",") {
		if part == "" {
			continue
		}
		se := strings.SplitN(part, "-", 2)
		if len(se) != 2 {
			return GenomicLocation{}, fmt.Errorf("malformed interval %q in location %q", part, s)
		}
		start, err := strconv.Atoi(se[0])
		if err != nil {
			return GenomicLocation{}, fmt.Errorf("malformed interval start %q in location %q: %w", part, s, err)
		}
		end, err := strconv.Atoi(se[1])
		if err != nil {
			return GenomicLocation{}, fmt.Errorf("malformed interval end %q in location %q: %w", part, s, err)
		}
		if start > end {
			return GenomicLocation{}, fmt.Errorf("interval start after end %q in location %q", part, s)
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}
	return GenomicLocation{Chromosome: fields[0], Strand: strand, Intervals: intervals}, nil
}

// ReadType is the opaque evidence tag attached to a read ID. Its only
// semantic effect anywhere in this package is in the continuity predicate
// (ReadIN) and in source/sink detection (ReadSO, ReadSI); see §4.7.
type ReadType string

const (
	ReadSO ReadType = "SO"
	ReadIN ReadType = "IN"
	ReadSI ReadType = "SI"
)

func parseReadType(s string) (ReadType, error) {
	switch ReadType(s) {
	case ReadSO, ReadIN, ReadSI:
		return ReadType(s), nil
	default:
		return "", fmt.Errorf("unknown read type: %q", s)
	}
}

// ReadEvidence is one (read_id, type) pair in a node's reads field.
type ReadEvidence struct {
	ReadID string
	Type   ReadType
}

func (r ReadEvidence) String() string {
	return r.ReadID + ":" + string(r.Type)
}

// ParseReads parses a comma-separated reads field. "." is the
// conventional sentinel for a node with no read evidence, since the
// field is a mandatory whitespace-delimited position and so cannot
// itself be empty.
func ParseReads(s string) ([]ReadEvidence, error) {
	if s == "" || s == "." {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]ReadEvidence, len(parts))
	for i, p := range parts {
		fields := strings.SplitN(p, ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed read evidence %q in reads field %q", p, s)
		}
		typ, err := parseReadType(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed read evidence %q in reads field %q: %w", p, s, err)
		}
		out[i] = ReadEvidence{ReadID: fields[0], Type: typ}
	}
	return out, nil
}

func joinReads(reads []ReadEvidence) string {
	parts := make([]string, len(reads))
	for i, r := range reads {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// SVDescriptor is an edge's structural-variant annotation:
// "ref1,ref2,bp1,bp2,sv_type".
type SVDescriptor struct {
	Ref1, Ref2 string
	BP1, BP2   int
	SVType     string
}

func (sv SVDescriptor) String() string {
	return fmt.Sprintf("%s,%s,%d,%d,%s", sv.Ref1, sv.Ref2, sv.BP1, sv.BP2, sv.SVType)
}

// ParseSVDescriptor parses the five comma-separated fields of an edge's SV
// descriptor.
func ParseSVDescriptor(s string) (SVDescriptor, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 5 {
		return SVDescriptor{}, fmt.Errorf("malformed SV descriptor %q: want 5 comma-separated fields, got %d", s, len(fields))
	}
	bp1, err := strconv.Atoi(fields[2])
	if err != nil {
		return SVDescriptor{}, fmt.Errorf("malformed SV descriptor %q: bad bp1: %w", s, err)
	}
	bp2, err := strconv.Atoi(fields[3])
	if err != nil {
		return SVDescriptor{}, fmt.Errorf("malformed SV descriptor %q: bad bp2: %w", s, err)
	}
	return SVDescriptor{
		Ref1:   fields[0],
		Ref2:   fields[1],
		BP1:    bp1,
		BP2:    bp2,
		SVType: fields[4],
	}, nil
}

// AttrType is the one-letter type code of an attribute triplet.
type AttrType byte

const (
	AttrInt       AttrType = 'i'
	AttrFloat     AttrType = 'f'
	AttrString    AttrType = 'Z'
	AttrJSON      AttrType = 'J'
	AttrHex       AttrType = 'H'
	AttrByteArray AttrType = 'B'
)

func (t AttrType) valid() bool {
	switch t {
	case AttrInt, AttrFloat, AttrString, AttrJSON, AttrHex, AttrByteArray:
		return true
	default:
		return false
	}
}

// Attribute is a single typed tag:type:value triplet attached to an
// element. Value holds the raw, unparsed text so that round-trip emission
// never loses precision or formatting; use the Int/Float/JSON/Hex/ByteArray
// accessors to decode it.
type Attribute struct {
	Tag   string
	Type  AttrType
	Value string
}

// String returns the "tag:type:value" encoding of the attribute.
func (a Attribute) String() string {
	return fmt.Sprintf("%s:%c:%s", a.Tag, byte(a.Type), a.Value)
}

// ParseAttribute parses a single "tag:type:value" triplet.
func ParseAttribute(s string) (Attribute, error) {
	fields := strings.SplitN(s, ":", 3)
	if len(fields) != 3 {
		return Attribute{}, fmt.Errorf("malformed attribute triplet: %q", s)
	}
	if len(fields[1]) != 1 || !AttrType(fields[1][0]).valid() {
		return Attribute{}, fmt.Errorf("malformed attribute triplet %q: bad type code %q", s, fields[1])
	}
	return Attribute{Tag: fields[0], Type: AttrType(fields[1][0]), Value: fields[2]}, nil
}

// Int decodes the attribute's value as a signed integer. The attribute's
// Type must be AttrInt.
func (a Attribute) Int() (int64, error) {
	if a.Type != AttrInt {
		return 0, fmt.Errorf("attribute %q is not type i: %c", a.Tag, byte(a.Type))
	}
	return strconv.ParseInt(a.Value, 10, 64)
}

// Float decodes the attribute's value as an IEEE-754 double. The
// attribute's Type must be AttrFloat.
func (a Attribute) Float() (float64, error) {
	if a.Type != AttrFloat {
		return 0, fmt.Errorf("attribute %q is not type f: %c", a.Tag, byte(a.Type))
	}
	return strconv.ParseFloat(a.Value, 64)
}

// JSON decodes the attribute's value as arbitrary JSON. The attribute's
// Type must be AttrJSON.
func (a Attribute) JSON() (interface{}, error) {
	if a.Type != AttrJSON {
		return nil, fmt.Errorf("attribute %q is not type J: %c", a.Tag, byte(a.Type))
	}
	var v interface{}
	if err := json.Unmarshal([]byte(a.Value), &v); err != nil {
		return nil, fmt.Errorf("attribute %q: %w", a.Tag, err)
	}
	return v, nil
}

// Hex decodes the attribute's value as a hex byte string. The attribute's
// Type must be AttrHex.
func (a Attribute) Hex() ([]byte, error) {
	if a.Type != AttrHex {
		return nil, fmt.Errorf("attribute %q is not type H: %c", a.Tag, byte(a.Type))
	}
	return hex.DecodeString(a.Value)
}

// ByteArray splits the attribute's value at commas and returns the items
// as unparsed strings; no numeric decoding of the items is done. The
// attribute's Type must be AttrByteArray.
func (a Attribute) ByteArray() ([]string, error) {
	if a.Type != AttrByteArray {
		return nil, fmt.Errorf("attribute %q is not type B: %c", a.Tag, byte(a.Type))
	}
	if a.Value == "" {
		return nil, nil
	}
	return strings.Split(a.Value, ","), nil
}

// ParseAttributes splits whitespace-separated attribute triplets, as found
// trailing a G or L record.
func ParseAttributes(fields []string) ([]Attribute, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]Attribute, len(fields))
	for i, f := range fields {
		a, err := ParseAttribute(f)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// Orientation is the sign of an oriented element reference.
type Orientation byte

const (
	OrientPlus  Orientation = '+'
	OrientMinus Orientation = '-'
)

func (o Orientation) String() string {
	return string(rune(o))
}

// OrientedRef is an element ID immediately followed by its orientation
// sign, as used in P records. L record endpoints use ElementRef instead.
type OrientedRef struct {
	ID          string
	Orientation Orientation
}

func (r OrientedRef) String() string {
	return r.ID + r.Orientation.String()
}

// ParseOrientedRef parses a single "element_id+" or "element_id-" token.
func ParseOrientedRef(s string) (OrientedRef, error) {
	if len(s) < 2 {
		return OrientedRef{}, fmt.Errorf("malformed oriented reference: %q", s)
	}
	sign := s[len(s)-1]
	if sign != '+' && sign != '-' {
		return OrientedRef{}, fmt.Errorf("malformed oriented reference %q: missing +/- sign", s)
	}
	return OrientedRef{ID: s[:len(s)-1], Orientation: Orientation(sign)}, nil
}

// ElementRef is a (graph_id, element_id) pair identifying an element in a
// specific section, as used by inter-graph links.
type ElementRef struct {
	GraphID   string
	ElementID string
}

func (r ElementRef) String() string {
	return r.GraphID + ":" + r.ElementID
}

// ParseElementRef parses a "graph_id:element_id" token.
func ParseElementRef(s string) (ElementRef, error) {
	fields := strings.SplitN(s, ":", 2)
	if len(fields) != 2 {
		return ElementRef{}, fmt.Errorf("malformed element reference: %q", s)
	}
	return ElementRef{GraphID: fields[0], ElementID: fields[1]}, nil
}
