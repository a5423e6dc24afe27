// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import (
	"strings"
	"testing"
)

// scenarioD (§8) is a continuity-filtering fixture: the middle node's IN
// read set is disjoint from one neighbor, so that branch is excluded,
// while the alternative branch through a continuity-valid middle node is
// retained.
const scenarioD = `N n1 chr1:+:1-10 read1:SO,read2:SO
N n2a chr1:+:10-20 read1:IN
N n2b chr1:+:10-20 read2:IN
N n3 chr1:+:20-30 read2:SI
E e1 n1 n2a chr1,chr1,10,10,splice
E e2 n2a n3 chr1,chr1,20,20,splice
E e3 n1 n2b chr1,chr1,10,10,splice
E e4 n2b n3 chr1,chr1,20,20,splice
`

func TestTraverseScenarioD(t *testing.T) {
	doc, err := Parse(strings.NewReader(scenarioD))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	paths, err := Traverse(doc.Sections[0], TraverseOptions{})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	var forms []string
	for _, p := range paths {
		forms = append(forms, p.String())
	}
	wantPresent := "n1+ e3+ n2b+ e4+ n3+"
	wantAbsent := "n1+ e1+ n2a+ e2+ n3+"
	found := false
	for _, f := range forms {
		if f == wantPresent {
			found = true
		}
		if f == wantAbsent {
			t.Errorf("continuity-invalid path %q was enumerated; paths = %v", wantAbsent, forms)
		}
	}
	if !found {
		t.Errorf("continuity-valid path %q not enumerated; paths = %v", wantPresent, forms)
	}
}

// scenarioE (§8) exercises the revisit cap: n1->n2->n3->n2->n4, default
// cap 2 permits exactly one revisit of n2 before the enumeration must
// terminate.
const scenarioE = `N n1 chr1:+:1-10 .
N n2 chr1:+:10-20 .
N n3 chr1:+:20-30 .
N n4 chr1:+:30-40 .
E e1 n1 n2 chr1,chr1,10,10,splice
E e2 n2 n3 chr1,chr1,20,20,splice
E e3 n3 n2 chr1,chr1,20,20,splice
E e4 n2 n4 chr1,chr1,30,30,splice
`

func TestTraverseScenarioERevisitCap(t *testing.T) {
	doc, err := Parse(strings.NewReader(scenarioE))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	paths, err := Traverse(doc.Sections[0], TraverseOptions{RevisitCap: 2})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	want := "n1+ e1+ n2+ e2+ n3+ e3+ n2+ e4+ n4+"
	found := false
	for _, p := range paths {
		if p.String() == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected revisiting path %q not found; got %v", want, paths)
	}
	if len(paths) == 0 {
		t.Fatal("Traverse returned no paths")
	}
}

func TestIsSuperOf(t *testing.T) {
	a := TSGPath{Elements: []OrientedRef{{ID: "n1", Orientation: OrientPlus}, {ID: "e1", Orientation: OrientPlus}, {ID: "n2", Orientation: OrientPlus}, {ID: "e2", Orientation: OrientPlus}, {ID: "n3", Orientation: OrientPlus}}}
	b := TSGPath{Elements: []OrientedRef{{ID: "n1", Orientation: OrientPlus}, {ID: "e1", Orientation: OrientPlus}, {ID: "n2", Orientation: OrientPlus}}}
	if !a.IsSuperOf(b) {
		t.Error("a.IsSuperOf(b) = false, want true")
	}
	if b.IsSuperOf(a) {
		t.Error("b.IsSuperOf(a) = true, want false")
	}
}

func TestTraverseEmptySourceOrSinkIsNotAnError(t *testing.T) {
	sec := NewGraphSection("empty")
	paths, err := Traverse(sec, TraverseOptions{})
	if err != nil {
		t.Fatalf("Traverse on empty section: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("Traverse on empty section = %v, want none", paths)
	}
}
