// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"reflect"
	"testing"
)

func TestSplitRecordSkipsBlankAndComment(t *testing.T) {
	for _, line := range []string{"", "   ", "# a comment", "  # indented comment"} {
		rec, err := SplitRecord(line, 1)
		if err != nil {
			t.Errorf("SplitRecord(%q): unexpected error: %v", line, err)
		}
		if !rec.IsBlank() {
			t.Errorf("SplitRecord(%q) = %+v, want blank", line, rec)
		}
	}
}

func TestSplitRecordFields(t *testing.T) {
	tests := []struct {
		line string
		tag  RecordTag
		want []string
	}{
		{"H TSG 1.0", TagHeader, []string{"TSG", "1.0"}},
		{"G gene_a", TagGraph, []string{"gene_a"}},
		{"G gene_a depth:i:4 note:Z:hi", TagGraph, []string{"gene_a", "depth:i:4", "note:Z:hi"}},
		{"N n1 chr1:+:1000-1200 read1:SO ACGT", TagNode, []string{"n1", "chr1:+:1000-1200", "read1:SO", "ACGT"}},
		{"N n1 chr1:+:1000-1200 read1:SO", TagNode, []string{"n1", "chr1:+:1000-1200", "read1:SO"}},
		{"E e1 n1 n2 chr1,chr1,1200,2000,splice", TagEdge, []string{"e1", "n1", "n2", "chr1,chr1,1200,2000,splice"}},
		{"C chain1 n1 e1 n2", TagChain, []string{"chain1", "n1", "e1", "n2"}},
		{"P t1 n1+ e1+ n2+", TagPath, []string{"t1", "n1+", "e1+", "n2+"}},
		{"A N n1 depth:i:4", TagAttr, []string{"N", "n1", "depth:i:4"}},
		{"L link1 a:n1 b:n2 fusion", TagLink, []string{"link1", "a:n1", "b:n2", "fusion"}},
	}
	for _, test := range tests {
		rec, err := SplitRecord(test.line, 1)
		if err != nil {
			t.Errorf("SplitRecord(%q): unexpected error: %v", test.line, err)
			continue
		}
		if rec.Tag != test.tag {
			t.Errorf("SplitRecord(%q).Tag = %v, want %v", test.line, rec.Tag, test.tag)
		}
		if !reflect.DeepEqual(rec.Fields, test.want) {
			t.Errorf("SplitRecord(%q).Fields = %#v, want %#v", test.line, rec.Fields, test.want)
		}
	}
}

func TestSplitRecordAttributeValueMayContainSpaces(t *testing.T) {
	rec, err := SplitRecord(`A N n1 meta:J:{"a": 1, "b": 2}`, 1)
	if err != nil {
		t.Fatalf("SplitRecord: %v", err)
	}
	want := []string{"N", "n1", `meta:J:{"a": 1, "b": 2}`}
	if !reflect.DeepEqual(rec.Fields, want) {
		t.Errorf("Fields = %#v, want %#v", rec.Fields, want)
	}
}

func TestSplitRecordUnknownTag(t *testing.T) {
	_, err := SplitRecord("X whatever", 7)
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("SplitRecord: got %T, want *LexError", err)
	}
	if lexErr.Kind != UnknownTag || lexErr.Line != 7 {
		t.Errorf("LexError = %+v", lexErr)
	}
}
