// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parsimony

import (
	"errors"
	"testing"

	"github.com/js-arias/treepars/bitfield"
)

// Set creates a state set with the indicated bits on.
func set(states ...int) bitfield.Bitfield {
	f := bitfield.New(4)
	for _, s := range states {
		f.PutOn(s)
	}
	return f
}

func TestMerge(t *testing.T) {
	in := []*profile{
		{sets: []bitfield.Bitfield{set(0), set(0)}, costs: []int{0, 0}},
		{sets: []bitfield.Bitfield{set(0), set(1)}, costs: []int{0, 0}},
	}
	out, err := mergeProfiles(in)
	if err != nil {
		t.Fatalf("unable to merge: %v", err)
	}
	if g := out.costs[0]; g != 0 {
		t.Errorf("merge: cost of pattern %d: got %d, want %d", 0, g, 0)
	}
	if !out.sets[0].Equal(set(0)) {
		t.Errorf("merge: set of pattern %d: got %v, want %v", 0, out.sets[0], set(0))
	}
	if g := out.costs[1]; g != 1 {
		t.Errorf("merge: cost of pattern %d: got %d, want %d", 1, g, 1)
	}
	if !out.sets[1].Equal(set(0, 1)) {
		t.Errorf("merge: set of pattern %d: got %v, want %v", 1, out.sets[1], set(0, 1))
	}
}

func TestMergeFoldOrder(t *testing.T) {
	in := []*profile{
		{sets: []bitfield.Bitfield{set(0)}, costs: []int{0}},
		{sets: []bitfield.Bitfield{set(0, 1)}, costs: []int{1}},
		{sets: []bitfield.Bitfield{set(2)}, costs: []int{2}},
		{sets: []bitfield.Bitfield{set(1, 2)}, costs: []int{0}},
	}

	want := -1
	perms(in, func(p []*profile) {
		out, err := mergeProfiles(p)
		if err != nil {
			t.Fatalf("unable to merge: %v", err)
		}
		if want < 0 {
			want = out.costs[0]
			return
		}
		if g := out.costs[0]; g != want {
			t.Errorf("merge order: got cost %d, want %d", g, want)
		}
	})
	if want < 0 {
		t.Fatalf("merge order: no permutations tested")
	}
}

// Perms calls fn with every permutation of in.
func perms(in []*profile, fn func([]*profile)) {
	p := make([]*profile, len(in))
	copy(p, in)

	var rec func(k int)
	rec = func(k int) {
		if k == len(p)-1 {
			fn(p)
			return
		}
		for i := k; i < len(p); i++ {
			p[k], p[i] = p[i], p[k]
			rec(k + 1)
			p[k], p[i] = p[i], p[k]
		}
	}
	rec(0)
}

func TestMergeErrors(t *testing.T) {
	if _, err := mergeProfiles(nil); !errors.Is(err, ErrDegenerateMerge) {
		t.Errorf("merge: got error %v, want %v", err, ErrDegenerateMerge)
	}

	in := []*profile{
		{sets: []bitfield.Bitfield{set(0), set(1)}, costs: []int{0, 0}},
		{sets: []bitfield.Bitfield{set(0)}, costs: []int{0}},
	}
	if _, err := mergeProfiles(in); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("merge: got error %v, want %v", err, ErrLengthMismatch)
	}
}
