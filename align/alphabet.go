// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package align

import "github.com/js-arias/treepars/bitfield"

// NumStates is the number of states of the DNA alphabet.
const NumStates = 4

// DNA nucleotide states.
const (
	Adenine = iota
	Cytosine
	Guanine
	Thymine
)

// Masks for the IUPAC nucleotide codes.
// Ambiguity codes map to the set of compatible states;
// gaps and unknown symbols map to the full set.
var iupac = map[byte]uint8{
	'A': 1 << Adenine,
	'C': 1 << Cytosine,
	'G': 1 << Guanine,
	'T': 1 << Thymine,
	'U': 1 << Thymine,
	'R': 1<<Adenine | 1<<Guanine,
	'Y': 1<<Cytosine | 1<<Thymine,
	'S': 1<<Cytosine | 1<<Guanine,
	'W': 1<<Adenine | 1<<Thymine,
	'K': 1<<Guanine | 1<<Thymine,
	'M': 1<<Adenine | 1<<Cytosine,
	'B': 1<<Cytosine | 1<<Guanine | 1<<Thymine,
	'D': 1<<Adenine | 1<<Guanine | 1<<Thymine,
	'H': 1<<Adenine | 1<<Cytosine | 1<<Thymine,
	'V': 1<<Adenine | 1<<Cytosine | 1<<Guanine,
}

// StateSet returns the set of nucleotide states
// compatible with a given symbol.
func StateSet(sym byte) bitfield.Bitfield {
	f := bitfield.New(NumStates)
	m, ok := iupac[sym]
	if !ok {
		// gap, '?', 'N', 'X', or any unknown symbol
		m = 1<<Adenine | 1<<Cytosine | 1<<Guanine | 1<<Thymine
	}
	for s := 0; s < NumStates; s++ {
		if m&(1<<s) != 0 {
			f.PutOn(s)
		}
	}
	return f
}

// IsUnambiguous returns true if a symbol
// maps to exactly one nucleotide state.
func IsUnambiguous(sym byte) bool {
	switch sym {
	case 'A', 'C', 'G', 'T', 'U':
		return true
	}
	return false
}
