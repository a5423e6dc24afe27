// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"strings"
	"testing"
)

// scenarioA is §8 Scenario A: single-graph parse and round-trip.
const scenarioA = `H TSG 1.0
N n1 chr1:+:1000-1200 read1:SO ACGT
N n2 chr1:+:2000-2200 read1:SI TGCA
E e1 n1 n2 chr1,chr1,1200,2000,splice
C chain1 n1 e1 n2
P t1 n1+ e1+ n2+
`

func TestParseScenarioA(t *testing.T) {
	doc, err := Parse(strings.NewReader(scenarioA))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("len(Sections) = %d, want 1", len(doc.Sections))
	}
	sec := doc.Sections[0]
	if sec.GraphID != defaultGraphID {
		t.Errorf("GraphID = %q, want %q", sec.GraphID, defaultGraphID)
	}
	if len(sec.NodeIDs()) != 2 || len(sec.EdgeIDs()) != 1 || len(sec.Chains()) != 1 || len(sec.Paths()) != 1 {
		t.Fatalf("section shape = nodes:%d edges:%d chains:%d paths:%d", len(sec.NodeIDs()), len(sec.EdgeIDs()), len(sec.Chains()), len(sec.Paths()))
	}

	paths, err := Traverse(sec, TraverseOptions{})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if len(paths) != 1 || paths[0].String() != "n1+ e1+ n2+" {
		t.Fatalf("Traverse = %v, want one path n1+ e1+ n2+", paths)
	}
}

func TestParseScenarioB(t *testing.T) {
	input := `G gene_a
N n1 chr1:+:1-100 .
N n2 chr1:+:100-200 .
N n3 chr1:+:200-300 .
E e1 n1 n2 chr1,chr1,100,100,splice
E e2 n2 n3 chr1,chr1,200,200,splice
G gene_b
N n1 chr2:+:1-100 .
N n2 chr2:+:100-200 .
N n3 chr2:+:200-300 .
E e1 n1 n2 chr2,chr2,100,100,splice
E e2 n2 n3 chr2,chr2,200,200,splice
L fusion1 gene_a:n3 gene_b:n1 fusion
`
	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(doc.Sections))
	}
	if len(doc.Links) != 1 {
		t.Fatalf("len(Links) = %d, want 1", len(doc.Links))
	}
	link := doc.Links[0]
	if link.Endpoint1.GraphID != "gene_a" || link.Endpoint1.ElementID != "n3" {
		t.Errorf("Endpoint1 = %+v", link.Endpoint1)
	}
	if link.Endpoint2.GraphID != "gene_b" || link.Endpoint2.ElementID != "n1" {
		t.Errorf("Endpoint2 = %+v", link.Endpoint2)
	}
}

func TestParseScenarioC(t *testing.T) {
	input := "C chain1 n1 e1 n2 e2 n3\n"
	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sec := doc.Sections[0]
	if len(sec.NodeIDs()) != 3 || len(sec.EdgeIDs()) != 2 {
		t.Fatalf("chain-only construction: nodes=%d edges=%d, want 3 and 2", len(sec.NodeIDs()), len(sec.EdgeIDs()))
	}
	for _, id := range sec.NodeIDs() {
		if !sec.GetNode(id).Placeholder() {
			t.Errorf("node %q: want placeholder (no N record supplied it)", id)
		}
	}

	out, err := SerializeString(doc)
	if err != nil {
		t.Fatalf("SerializeString: %v", err)
	}
	for _, want := range []string{"N\tn1\t", "N\tn2\t", "N\tn3\t", "E\te1\tn1\tn2\t", "E\te2\tn2\tn3\t"} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized output missing %q:\n%s", want, out)
		}
	}
}

func TestParseRejectsUnknownReadType(t *testing.T) {
	input := "N n1 chr1:+:1-10 read1:ZZ\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("Parse with unknown read type tag: want error, got nil")
	}
}

func TestParseRejectsDuplicateGraphID(t *testing.T) {
	input := "G a\nN n1 chr1:+:1-10 .\nG a\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("Parse with duplicate graph_id: want error, got nil")
	}
}
