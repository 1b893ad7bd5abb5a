// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bitfield provides a field of bits
// used to store sets of discrete character states.
package bitfield

import "math/bits"

// A Bitfield is a field of bits.
type Bitfield []uint64

// BitsPerField is the number of bits in each field element.
const BitsPerField = 64

// New creates a new bitfield
// with storage for the indicated number of bits.
func New(b int) Bitfield {
	sz := b / BitsPerField
	if b%BitsPerField > 0 {
		sz++
	}
	return make(Bitfield, sz)
}

// IsOn returns true if the indicated bit is on in the bitfield.
func (f Bitfield) IsOn(b int) bool {
	i := b / BitsPerField
	s := uint(b) % BitsPerField
	if (f[i] & (1 << s)) == 0 {
		return false
	}
	return true
}

// PutOn sets a bit as on.
func (f Bitfield) PutOn(b int) {
	i := b / BitsPerField
	s := uint(b) % BitsPerField
	f[i] |= 1 << s
}

// PutOff sets a bit as off.
func (f Bitfield) PutOff(b int) {
	i := b / BitsPerField
	s := uint(b) % BitsPerField
	f[i] &^= 1 << s
}

// Union adds the content of bitfield b into f.
func (f Bitfield) Union(b Bitfield) {
	for i, x := range b {
		f[i] |= x
	}
}

// And returns a new bitfield
// with the bits that are on in both f and b.
func (f Bitfield) And(b Bitfield) Bitfield {
	n := make(Bitfield, len(f))
	for i, x := range b {
		n[i] = f[i] & x
	}
	return n
}

// Or returns a new bitfield
// with the bits that are on in f, in b, or in both.
func (f Bitfield) Or(b Bitfield) Bitfield {
	n := make(Bitfield, len(f))
	for i, x := range b {
		n[i] = f[i] | x
	}
	return n
}

// Common returns the number of common on bits between f and b.
func (f Bitfield) Common(b Bitfield) int {
	c := 0
	for i, x := range b {
		c += bits.OnesCount64(f[i] & x)
	}
	return c
}

// Count returns the number of on bits in a bitfield.
func (f Bitfield) Count() int {
	c := 0
	for _, x := range f {
		c += bits.OnesCount64(x)
	}
	return c
}

// Copy returns a new bitfield with the same bits of f.
func (f Bitfield) Copy() Bitfield {
	n := make(Bitfield, len(f))
	copy(n, f)
	return n
}

// Equal returns true if f and b have the same on bits.
func (f Bitfield) Equal(b Bitfield) bool {
	if len(f) != len(b) {
		return false
	}
	for i, x := range b {
		if f[i] != x {
			return false
		}
	}
	return true
}

// IsZero returns true if all bits of f are off.
func (f Bitfield) IsZero() bool {
	for _, x := range f {
		if x != 0 {
			return false
		}
	}
	return true
}

// Reset put in zero (off) all bits of f.
func (f Bitfield) Reset() {
	for i := range f {
		f[i] = 0
	}
}
