// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package distance_test

import (
	"bytes"
	"math"
	"reflect"
	"testing"

	"github.com/js-arias/treepars/align"
	"github.com/js-arias/treepars/distance"
)

func TestP(t *testing.T) {
	a := align.New()
	a.Add("A", "ACGTACGT")
	a.Add("B", "ACGAACGT")
	a.Add("C", "NCGAACGA")

	m, err := distance.P(a)
	if err != nil {
		t.Fatalf("unable to estimate distances: %v", err)
	}
	if g := m.Len(); g != 3 {
		t.Errorf("matrix: got %d taxa, want %d", g, 3)
	}

	if g := m.Distance("A", "B"); math.Abs(g-0.125) > 1e-6 {
		t.Errorf("p-distance of %q-%q: got %.6f, want %.6f", "A", "B", g, 0.125)
	}

	// the site with 'N' is not compared
	want := 2.0 / 7
	if g := m.Distance("A", "C"); math.Abs(g-want) > 1e-6 {
		t.Errorf("p-distance of %q-%q: got %.6f, want %.6f", "A", "C", g, want)
	}
	if g := m.Distance("A", "A"); g != 0 {
		t.Errorf("p-distance of %q-%q: got %.6f, want %.6f", "A", "A", g, 0.0)
	}
}

func TestJC(t *testing.T) {
	a := align.New()
	a.Add("A", "ACGT")
	a.Add("B", "ACGA")

	m, err := distance.JC(a)
	if err != nil {
		t.Fatalf("unable to estimate distances: %v", err)
	}
	want := -0.75 * math.Log(1-4*0.25/3)
	if g := m.Distance("A", "B"); math.Abs(g-want) > 1e-6 {
		t.Errorf("jc distance of %q-%q: got %.6f, want %.6f", "A", "B", g, want)
	}

	sat := align.New()
	sat.Add("A", "AAAA")
	sat.Add("B", "CCCC")
	if _, err := distance.JC(sat); err == nil {
		t.Errorf("jc distance: expecting error for saturated distances")
	}
}

func TestNJ(t *testing.T) {
	// the additive matrix of the tree
	// "(D:2,E:1,(C:4,(A:2,B:3):3):2)"
	m := distance.NewMatrix([]string{"A", "B", "C", "D", "E"})
	dist := map[[2]string]float64{
		{"A", "B"}: 5,
		{"A", "C"}: 9,
		{"A", "D"}: 9,
		{"A", "E"}: 8,
		{"B", "C"}: 10,
		{"B", "D"}: 10,
		{"B", "E"}: 9,
		{"C", "D"}: 8,
		{"C", "E"}: 7,
		{"D", "E"}: 3,
	}
	for p, d := range dist {
		if err := m.Set(p[0], p[1], d); err != nil {
			t.Fatalf("unable to set distance: %v", err)
		}
	}

	nt, err := distance.NJ("nj", m)
	if err != nil {
		t.Fatalf("unable to build nj tree: %v", err)
	}

	terms := []string{"A", "B", "C", "D", "E"}
	if g := nt.Terms(); !reflect.DeepEqual(g, terms) {
		t.Errorf("nj: terms: got %v, want %v", g, terms)
	}

	var w bytes.Buffer
	if err := nt.Newick(&w); err != nil {
		t.Fatalf("unable to write nj tree: %v", err)
	}
	want := "(D:2,E:1,(C:4,(A:2,B:3):3):2);\n"
	if g := w.String(); g != want {
		t.Errorf("nj: tree: got %q, want %q", g, want)
	}
}

func TestNJPair(t *testing.T) {
	m := distance.NewMatrix([]string{"A", "B"})
	m.Set("A", "B", 4)

	nt, err := distance.NJ("pair", m)
	if err != nil {
		t.Fatalf("unable to build nj tree: %v", err)
	}
	terms := []string{"A", "B"}
	if g := nt.Terms(); !reflect.DeepEqual(g, terms) {
		t.Errorf("nj: terms: got %v, want %v", g, terms)
	}
	for _, id := range nt.Nodes() {
		if nt.IsRoot(id) {
			continue
		}
		if g := nt.Len(id); g != 2 {
			t.Errorf("nj: length of %d: got %.6f, want %.6f", id, g, 2.0)
		}
	}
}

func TestNJFromAlignment(t *testing.T) {
	a := align.New()
	a.Add("A", "AAAAAAAA")
	a.Add("B", "AAAAAACC")
	a.Add("C", "CCCCAACC")
	a.Add("D", "CCCCCCCC")

	m, err := distance.P(a)
	if err != nil {
		t.Fatalf("unable to estimate distances: %v", err)
	}
	nt, err := distance.NJ("aln", m)
	if err != nil {
		t.Fatalf("unable to build nj tree: %v", err)
	}
	terms := []string{"A", "B", "C", "D"}
	if g := nt.Terms(); !reflect.DeepEqual(g, terms) {
		t.Errorf("nj: terms: got %v, want %v", g, terms)
	}
}
