// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bitfield

import "testing"

func TestBitfieldOps(t *testing.T) {
	f := New(100)
	if len(f) != 2 {
		t.Errorf("New: expecting %d fields, found %d", 2, len(f))
	}

	bt := []int{0, 3, 26, 64, 88, 99}
	for _, i := range bt {
		f.PutOn(i)
	}
	for _, i := range bt {
		if !f.IsOn(i) {
			t.Errorf("IsOn: expecting bit %d on", i)
		}
	}
	if f.IsOn(4) {
		t.Errorf("IsOn: expecting bit %d off", 4)
	}
	if f.Count() != len(bt) {
		t.Errorf("Count: expecting %d, found %d", len(bt), f.Count())
	}

	f.PutOff(26)
	if f.IsOn(26) {
		t.Errorf("PutOff: expecting bit %d off", 26)
	}
	f.PutOn(26)

	b := New(100)
	b.PutOn(3)
	b.PutOn(4)
	b.PutOn(88)
	if c := f.Common(b); c != 2 {
		t.Errorf("Common: expecting %d, found %d", 2, c)
	}

	and := f.And(b)
	if and.Count() != 2 {
		t.Errorf("And: expecting %d bits, found %d", 2, and.Count())
	}
	if !and.IsOn(3) || !and.IsOn(88) {
		t.Errorf("And: expecting bits %d and %d on", 3, 88)
	}

	or := f.Or(b)
	if or.Count() != len(bt)+1 {
		t.Errorf("Or: expecting %d bits, found %d", len(bt)+1, or.Count())
	}

	cp := f.Copy()
	if !cp.Equal(f) {
		t.Errorf("Copy: expecting equal bitfields")
	}
	cp.PutOn(50)
	if cp.Equal(f) {
		t.Errorf("Equal: expecting different bitfields")
	}
	if f.IsOn(50) {
		t.Errorf("Copy: copies must be independent")
	}

	f.Union(b)
	if !f.IsOn(4) {
		t.Errorf("Union: expecting bit %d on", 4)
	}

	if f.IsZero() {
		t.Errorf("IsZero: expecting a non zero bitfield")
	}
	f.Reset()
	if !f.IsZero() {
		t.Errorf("Reset: expecting a zero bitfield")
	}
}
