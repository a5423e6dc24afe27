// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsg

import "testing"

func TestAddEdgeCreatesPlaceholderEndpoints(t *testing.T) {
	sec := NewGraphSection("g1")
	_, err := sec.AddEdge(EdgeData{ID: "e1", SourceID: "n1", SinkID: "n2"})
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	n1 := sec.GetNode("n1")
	if n1 == nil || !n1.Placeholder() {
		t.Fatalf("GetNode(n1) = %+v, want placeholder node", n1)
	}
}

func TestAddNodeCompletesPlaceholderPreservingIndex(t *testing.T) {
	sec := NewGraphSection("g1")
	if _, err := sec.AddEdge(EdgeData{ID: "e1", SourceID: "n1", SinkID: "n2"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	placeholder := sec.GetNode("n1")
	idx := placeholder.ID()

	loc, _ := ParseGenomicLocation("chr1:+:1000-1200")
	n, err := sec.AddNode(NodeData{ID: "n1", Location: loc})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if n.ID() != idx {
		t.Errorf("completed node index = %d, want %d (preserved)", n.ID(), idx)
	}
	if n.Placeholder() {
		t.Error("completed node still reports Placeholder() = true")
	}
	if n.Location.Chromosome != "chr1" {
		t.Errorf("completed node Location = %+v", n.Location)
	}
}

func TestAddNodeDuplicateIsError(t *testing.T) {
	sec := NewGraphSection("g1")
	if _, err := sec.AddNode(NodeData{ID: "n1"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	_, err := sec.AddNode(NodeData{ID: "n1"})
	if _, ok := err.(*DuplicateError); !ok {
		t.Fatalf("second AddNode(n1) = %v (%T), want *DuplicateError", err, err)
	}
}

func TestCrossKindIDCollision(t *testing.T) {
	sec := NewGraphSection("g1")
	if _, err := sec.AddNode(NodeData{ID: "x1"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	err := sec.AddSet(&UnorderedSet{ID: "x1"})
	dupErr, ok := err.(*DuplicateError)
	if !ok {
		t.Fatalf("AddSet with node-claimed id = %v (%T), want *DuplicateError", err, err)
	}
	if dupErr.Kind != KindGroup || dupErr.Conflicting != KindNode {
		t.Errorf("DuplicateError = %+v", dupErr)
	}
}

func TestChainDerivedConstruction(t *testing.T) {
	sec := NewGraphSection("g1")
	ch := &Chain{ID: "c1", Elements: []string{"n1", "e1", "n2", "e2", "n3"}}
	if err := sec.AddChain(ch); err != nil {
		t.Fatalf("AddChain: %v", err)
	}
	if len(sec.NodeIDs()) != 3 {
		t.Errorf("NodeIDs() = %v, want 3 nodes", sec.NodeIDs())
	}
	if len(sec.EdgeIDs()) != 2 {
		t.Errorf("EdgeIDs() = %v, want 2 edges", sec.EdgeIDs())
	}
	e1 := sec.GetEdge("e1")
	if e1.SourceID() != "n1" || e1.SinkID() != "n2" {
		t.Errorf("synthesized e1 = %s -> %s, want n1 -> n2", e1.SourceID(), e1.SinkID())
	}
}

func TestChainEvenLengthIsError(t *testing.T) {
	sec := NewGraphSection("g1")
	ch := &Chain{ID: "c1", Elements: []string{"n1", "e1"}}
	if err := sec.AddChain(ch); err == nil {
		t.Fatal("AddChain with even-length chain: want error, got nil")
	}
}

func TestExplicitEdgeCompletesChainSynthesizedEdge(t *testing.T) {
	sec := NewGraphSection("g1")
	ch := &Chain{ID: "c1", Elements: []string{"n1", "e1", "n2"}}
	if err := sec.AddChain(ch); err != nil {
		t.Fatalf("AddChain: %v", err)
	}
	synthesized := sec.GetEdge("e1")
	if !synthesized.Placeholder() {
		t.Fatal("chain-derived e1 should report Placeholder() = true before an explicit E record")
	}
	idx := synthesized.ID()

	sv := SVDescriptor{Ref1: "chr1", Ref2: "chr1", BP1: 1200, BP2: 2000, SVType: "tra"}
	e, err := sec.AddEdge(EdgeData{ID: "e1", SourceID: "n1", SinkID: "n2", SV: sv})
	if err != nil {
		t.Fatalf("AddEdge(e1) after chain: %v", err)
	}
	if e.ID() != idx {
		t.Errorf("completed edge index = %d, want %d (preserved)", e.ID(), idx)
	}
	if e.Placeholder() {
		t.Error("completed edge still reports Placeholder() = true")
	}
	if e.SV.SVType != "tra" {
		t.Errorf("completed edge SV = %+v, want SVType tra", e.SV)
	}

	again, err := sec.AddEdge(EdgeData{ID: "e1", SourceID: "n1", SinkID: "n2"})
	if err == nil {
		t.Fatalf("second explicit AddEdge(e1) = %v, want DuplicateError", again)
	}
	if _, ok := err.(*DuplicateError); !ok {
		t.Fatalf("second explicit AddEdge(e1) error = %v (%T), want *DuplicateError", err, err)
	}
}

func TestChainMismatchedConnectivityIsError(t *testing.T) {
	sec := NewGraphSection("g1")
	if _, err := sec.AddEdge(EdgeData{ID: "e1", SourceID: "n1", SinkID: "n2"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	ch := &Chain{ID: "c1", Elements: []string{"n1", "e1", "n3"}}
	if err := sec.AddChain(ch); err == nil {
		t.Fatal("AddChain with mismatched connectivity: want error, got nil")
	}
}

func TestDegrees(t *testing.T) {
	sec := NewGraphSection("g1")
	mustAddEdge(t, sec, "e1", "n1", "n2")
	mustAddEdge(t, sec, "e2", "n1", "n3")
	if got := sec.OutDegree("n1"); got != 2 {
		t.Errorf("OutDegree(n1) = %d, want 2", got)
	}
	if got := sec.InDegree("n2"); got != 1 {
		t.Errorf("InDegree(n2) = %d, want 1", got)
	}
}

func mustAddEdge(t *testing.T, sec *GraphSection, id, src, sink string) {
	t.Helper()
	if _, err := sec.AddEdge(EdgeData{ID: id, SourceID: src, SinkID: sink}); err != nil {
		t.Fatalf("AddEdge(%s): %v", id, err)
	}
}
