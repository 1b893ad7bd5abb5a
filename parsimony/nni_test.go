// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parsimony_test

import (
	"errors"
	"testing"

	"github.com/js-arias/treepars/parsimony"
)

func TestNNIPrice(t *testing.T) {
	nwk := "(((A,C),B),(D,E));"
	seqs := map[string]string{
		"A": "ACGTRA",
		"B": "ACTTG-",
		"C": "CCGTAN",
		"D": "CTGAAC",
		"E": "GTGAAC",
	}

	nt, sc := newScorer(t, nwk, seqs)
	for _, id := range nt.Nodes() {
		// a fresh scorer for every candidate move
		mt, ms := newScorer(t, nwk, seqs)

		delta, err := ms.TestNNI(id)
		if err != nil {
			if errors.Is(err, parsimony.ErrInvalidNNITarget) {
				continue
			}
			t.Fatalf("node %d: unable to price move: %v", id, err)
		}
		before := ms.Score()
		if g := sc.Score(); before != g {
			t.Fatalf("node %d: fresh scorer: got score %d, want %d", id, before, g)
		}

		if err := ms.DoNNI(id); err != nil {
			t.Fatalf("node %d: unable to apply move: %v", id, err)
		}
		if err := ms.ComputeScores(); err != nil {
			t.Fatalf("node %d: unable to compute scores: %v", id, err)
		}
		if g := ms.Score(); g != before+delta {
			t.Errorf("node %d: applied score: got %d, want %d (priced delta %d)", id, g, before+delta, delta)
		}

		// the moved node is now a child of its old grandfather
		if g := mt.Parent(id); g != nt.Parent(nt.Parent(id)) {
			t.Errorf("node %d: parent after move: got %d, want %d", id, g, nt.Parent(nt.Parent(id)))
		}
	}
}

func TestNNIMultifurcation(t *testing.T) {
	nwk := "(A,B,(C,D));"
	seqs := map[string]string{
		"A": "AA",
		"B": "CC",
		"C": "AC",
		"D": "CA",
	}

	nt, _ := newScorer(t, nwk, seqs)
	for _, id := range nt.Nodes() {
		mt, ms := newScorer(t, nwk, seqs)

		delta, err := ms.TestNNI(id)
		if err != nil {
			if errors.Is(err, parsimony.ErrInvalidNNITarget) {
				continue
			}
			t.Fatalf("node %d: unable to price move: %v", id, err)
		}
		before := ms.Score()
		if err := ms.DoNNI(id); err != nil {
			t.Fatalf("node %d: unable to apply move: %v", id, err)
		}
		if err := ms.ComputeScores(); err != nil {
			t.Fatalf("node %d: unable to compute scores: %v", id, err)
		}
		if g := ms.Score(); g != before+delta {
			t.Errorf("node %d: applied score: got %d, want %d (priced delta %d)", id, g, before+delta, delta)
		}
		if g := mt.Parent(id); g != nt.Parent(nt.Parent(id)) {
			t.Errorf("node %d: parent after move: got %d, want %d", id, g, nt.Parent(nt.Parent(id)))
		}
	}
}

func TestNNIInvalid(t *testing.T) {
	nt, sc := newScorer(t, "((A,B),(C,D));", map[string]string{
		"A": "A",
		"B": "A",
		"C": "C",
		"D": "C",
	})

	root := nt.Root()
	if _, err := sc.TestNNI(root); !errors.Is(err, parsimony.ErrInvalidNNITarget) {
		t.Errorf("root: got error %v, want %v", err, parsimony.ErrInvalidNNITarget)
	}
	if err := sc.DoNNI(root); !errors.Is(err, parsimony.ErrInvalidNNITarget) {
		t.Errorf("root: got error %v, want %v", err, parsimony.ErrInvalidNNITarget)
	}
	for _, c := range nt.Children(root) {
		if _, err := sc.TestNNI(c); !errors.Is(err, parsimony.ErrInvalidNNITarget) {
			t.Errorf("root child %d: got error %v, want %v", c, err, parsimony.ErrInvalidNNITarget)
		}
	}
}

func TestSearch(t *testing.T) {
	// the data support the tree "(((A,B),C),(D,E))":
	// the starting tree has one extra state change
	// per site
	_, sc := newScorer(t, "(((A,C),B),(D,E));", map[string]string{
		"A": "AAAA",
		"B": "AAAA",
		"C": "CCCC",
		"D": "CCCC",
		"E": "CCCC",
	})
	if g := sc.Score(); g != 8 {
		t.Fatalf("search: starting score: got %d, want %d", g, 8)
	}

	best, err := sc.Search()
	if err != nil {
		t.Fatalf("unable to search: %v", err)
	}
	if best != 4 {
		t.Errorf("search: got score %d, want %d", best, 4)
	}
	if g := sc.Score(); g != best {
		t.Errorf("search: scorer state: got score %d, want %d", g, best)
	}
}
