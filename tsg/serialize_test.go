// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/diff"
	"github.com/pkg/diff/write"
)

// assertRoundTrip checks the §4.5 round-trip law: parse(serialize(parse(D))) = parse(D),
// compared at the re-serialized text level so the diff output is readable.
func assertRoundTrip(t *testing.T, input string) {
	t.Helper()
	doc1, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	out1, err := SerializeString(doc1)
	if err != nil {
		t.Fatalf("first SerializeString: %v", err)
	}
	doc2, err := Parse(strings.NewReader(out1))
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	out2, err := SerializeString(doc2)
	if err != nil {
		t.Fatalf("second SerializeString: %v", err)
	}
	if out1 != out2 {
		var buf bytes.Buffer
		if err := diff.Text("first", "second", out1, out2, &buf, write.TerminalColor()); err != nil {
			t.Fatalf("diff.Text: %v", err)
		}
		t.Errorf("round trip not idempotent:\n%s", &buf)
	}
}

func TestRoundTripScenarioA(t *testing.T) {
	assertRoundTrip(t, scenarioA)
}

func TestRoundTripChainOnly(t *testing.T) {
	assertRoundTrip(t, "C chain1 n1 e1 n2 e2 n3\n")
}

func TestRoundTripWithAttributes(t *testing.T) {
	assertRoundTrip(t, `G g1 depth:i:4
N n1 chr1:+:1-10 .
N n2 chr1:+:10-20 .
E e1 n1 n2 chr1,chr1,10,10,splice
A N n1 score:f:0.25
A N n1 tag:Z:alpha
A E e1 kind:Z:bridge
`)
}

func TestSerializeAttributesSortedByTypeThenTag(t *testing.T) {
	doc, err := Parse(strings.NewReader(`N n1 chr1:+:1-10 .
A N n1 zzz:i:1
A N n1 aaa:i:2
A N n1 mmm:f:3
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := SerializeString(doc)
	if err != nil {
		t.Fatalf("SerializeString: %v", err)
	}
	iAaa := strings.Index(out, "aaa:i:2")
	iZzz := strings.Index(out, "zzz:i:1")
	iMmm := strings.Index(out, "mmm:f:3")
	// Sorted by (type_code, tag): 'f' < 'i', so mmm:f comes first, then
	// the two i-typed attributes ordered by tag (aaa before zzz).
	if !(iMmm < iAaa && iAaa < iZzz) {
		t.Errorf("attribute order wrong, want mmm(f) < aaa(i) < zzz(i):\n%s", out)
	}
}
