// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import "testing"

func TestGenomicLocationRoundTrip(t *testing.T) {
	for _, s := range []string{
		"chr1:+:1000-1200",
		"chr1:-:1000-1200,2000-2200",
		"chrX:?:1-1",
	} {
		loc, err := ParseGenomicLocation(s)
		if err != nil {
			t.Fatalf("ParseGenomicLocation(%q): %v", s, err)
		}
		if got := loc.String(); got != s {
			t.Errorf("ParseGenomicLocation(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestGenomicLocationErrors(t *testing.T) {
	for _, s := range []string{
		"chr1+1000-1200",
		"chr1:+:1200-1000",
		"chr1:+:abc-100",
	} {
		if _, err := ParseGenomicLocation(s); err == nil {
			t.Errorf("ParseGenomicLocation(%q): want error, got nil", s)
		}
	}
}

func TestReadEvidenceRoundTrip(t *testing.T) {
	reads, err := ParseReads("read1:SO,read2:IN")
	if err != nil {
		t.Fatalf("ParseReads: %v", err)
	}
	want := []ReadEvidence{{ReadID: "read1", Type: ReadSO}, {ReadID: "read2", Type: ReadIN}}
	if len(reads) != len(want) || reads[0] != want[0] || reads[1] != want[1] {
		t.Fatalf("ParseReads = %+v, want %+v", reads, want)
	}
	if got := joinReads(reads); got != "read1:SO,read2:IN" {
		t.Errorf("joinReads = %q", got)
	}
}

func TestReadEvidenceRejectsUnknownType(t *testing.T) {
	if _, err := ParseReads("read1:XX"); err == nil {
		t.Error("ParseReads with unknown type tag: want error, got nil")
	}
}

func TestSVDescriptorRoundTrip(t *testing.T) {
	sv, err := ParseSVDescriptor("chr1,chr1,1200,2000,splice")
	if err != nil {
		t.Fatalf("ParseSVDescriptor: %v", err)
	}
	want := SVDescriptor{Ref1: "chr1", Ref2: "chr1", BP1: 1200, BP2: 2000, SVType: "splice"}
	if sv != want {
		t.Fatalf("ParseSVDescriptor = %+v, want %+v", sv, want)
	}
	if got := sv.String(); got != "chr1,chr1,1200,2000,splice" {
		t.Errorf("SVDescriptor.String() = %q", got)
	}
}

func TestAttributeAccessors(t *testing.T) {
	a, err := ParseAttribute("depth:i:42")
	if err != nil {
		t.Fatalf("ParseAttribute: %v", err)
	}
	n, err := a.Int()
	if err != nil || n != 42 {
		t.Errorf("Attribute.Int() = %d, %v, want 42, nil", n, err)
	}
	if _, err := a.Float(); err == nil {
		t.Error("Attribute.Float() on type i: want error, got nil")
	}

	f, err := ParseAttribute("score:f:0.5")
	if err != nil {
		t.Fatalf("ParseAttribute: %v", err)
	}
	fv, err := f.Float()
	if err != nil || fv != 0.5 {
		t.Errorf("Attribute.Float() = %v, %v, want 0.5, nil", fv, err)
	}

	j, err := ParseAttribute(`meta:J:{"k":1}`)
	if err != nil {
		t.Fatalf("ParseAttribute: %v", err)
	}
	v, err := j.JSON()
	if err != nil {
		t.Fatalf("Attribute.JSON(): %v", err)
	}
	if m, ok := v.(map[string]interface{}); !ok || m["k"] != 1.0 {
		t.Errorf("Attribute.JSON() = %#v", v)
	}
}

func TestOrientedRefRoundTrip(t *testing.T) {
	r, err := ParseOrientedRef("n1+")
	if err != nil {
		t.Fatalf("ParseOrientedRef: %v", err)
	}
	if r.ID != "n1" || r.Orientation != OrientPlus {
		t.Errorf("ParseOrientedRef = %+v", r)
	}
	if got := r.String(); got != "n1+" {
		t.Errorf("OrientedRef.String() = %q", got)
	}
}

func TestElementRefRoundTrip(t *testing.T) {
	r, err := ParseElementRef("gene_a:n3")
	if err != nil {
		t.Fatalf("ParseElementRef: %v", err)
	}
	if r.GraphID != "gene_a" || r.ElementID != "n3" {
		t.Errorf("ParseElementRef = %+v", r)
	}
	if got := r.String(); got != "gene_a:n3" {
		t.Errorf("ElementRef.String() = %q", got)
	}
}
