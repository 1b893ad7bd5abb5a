// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parsimony_test

import (
	"strings"
	"testing"

	"github.com/js-arias/treepars/align"
	"github.com/js-arias/treepars/parsimony"
	"github.com/js-arias/treepars/tree"
)

// NewScorer builds a scorer
// for a newick tree and a set of aligned sequences.
func newScorer(t testing.TB, nwk string, seqs map[string]string) (*tree.Tree, *parsimony.Scorer) {
	t.Helper()

	nt, err := tree.ReadNewick(strings.NewReader(nwk), "test")
	if err != nil {
		t.Fatalf("unable to read tree %q: %v", nwk, err)
	}
	a := align.New()
	for tx, s := range seqs {
		if err := a.Add(tx, s); err != nil {
			t.Fatalf("unable to add sequence for %q: %v", tx, err)
		}
	}
	p, err := align.NewPatterns(a)
	if err != nil {
		t.Fatalf("unable to build patterns: %v", err)
	}
	sc, err := parsimony.New(nt, p)
	if err != nil {
		t.Fatalf("unable to build scorer: %v", err)
	}
	return nt, sc
}

func TestTwoLeaf(t *testing.T) {
	_, sc := newScorer(t, "(A,B);", map[string]string{
		"A": "ACGT",
		"B": "ACGT",
	})
	if g := sc.Score(); g != 0 {
		t.Errorf("identical terminals: got score %d, want %d", g, 0)
	}

	_, sc = newScorer(t, "(A,B);", map[string]string{
		"A": "ACGA",
		"B": "ACGC",
	})
	if g := sc.Score(); g != 1 {
		t.Errorf("disjoint site: got score %d, want %d", g, 1)
	}
	if g := sc.SiteScore(3); g != 1 {
		t.Errorf("disjoint site: site %d: got score %d, want %d", 3, g, 1)
	}
	if g := sc.SiteScore(0); g != 0 {
		t.Errorf("disjoint site: site %d: got score %d, want %d", 0, g, 0)
	}
}

func TestBalanced(t *testing.T) {
	// on "((A,B),(C,D))" the down pass gives
	// state {A} with cost 0 for node (A,B),
	// and state {C} with cost 0 for node (C,D);
	// the root merge is disjoint:
	// set {A,C} with cost 1
	_, sc := newScorer(t, "((A,B),(C,D));", map[string]string{
		"A": "A",
		"B": "A",
		"C": "C",
		"D": "C",
	})
	if g := sc.Score(); g != 1 {
		t.Errorf("balanced: got score %d, want %d", g, 1)
	}
}

func TestCaterpillar(t *testing.T) {
	// states A, C, A, G, C on a caterpillar:
	// (A,B) disagree: {A,C} cost 1,
	// with C: {A} cost 1,
	// with D: {A,G} cost 2,
	// with E: {A,C,G} cost 3
	_, sc := newScorer(t, "((((A,B),C),D),E);", map[string]string{
		"A": "A",
		"B": "C",
		"C": "A",
		"D": "G",
		"E": "C",
	})
	if g := sc.Score(); g != 3 {
		t.Errorf("caterpillar: got score %d, want %d", g, 3)
	}
}

func TestRecompute(t *testing.T) {
	_, sc := newScorer(t, "(((A,C),B),(D,E));", map[string]string{
		"A": "ACGTRA",
		"B": "ACTTG-",
		"C": "CCGTAN",
		"D": "CTGAAC",
		"E": "GTGAAC",
	})

	want := sc.Score()
	for i := 0; i < 3; i++ {
		if err := sc.ComputeScores(); err != nil {
			t.Fatalf("unable to compute scores: %v", err)
		}
		if g := sc.Score(); g != want {
			t.Errorf("recompute %d: got score %d, want %d", i, g, want)
		}
	}
}

func TestSiteScores(t *testing.T) {
	seqs := map[string]string{
		"A": "AACCGT",
		"B": "AACTGT",
		"C": "CACTAT",
		"D": "CTCTAA",
		"E": "CTGTAA",
	}
	_, sc := newScorer(t, "(((A,C),B),(D,E));", seqs)

	// with weights of one per site,
	// the sum of the site scores
	// must be the total score
	sum := 0
	for s := 0; s < len(seqs["A"]); s++ {
		sum += sc.SiteScore(s)
	}
	if g := sc.Score(); g != sum {
		t.Errorf("site scores: got total %d, want %d", g, sum)
	}

	if g := sc.SiteScore(100); g != 0 {
		t.Errorf("site scores: undefined site: got %d, want %d", g, 0)
	}
}

func TestScorerErrors(t *testing.T) {
	nt, err := tree.ReadNewick(strings.NewReader("(A,(B,X));"), "test")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	a := align.New()
	a.Add("A", "ACGT")
	a.Add("B", "ACGT")
	p, err := align.NewPatterns(a)
	if err != nil {
		t.Fatalf("unable to build patterns: %v", err)
	}
	if _, err := parsimony.New(nt, p); err == nil {
		t.Errorf("scorer: expecting error for a taxon without data")
	}
}
