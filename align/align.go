// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package align provides aligned molecular sequences
// for a set of taxa,
// and the compression of the alignment
// into distinct site patterns.
package align

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// An Alignment is a collection of aligned sequences
// indexed by taxon name.
// All sequences have the same length.
type Alignment struct {
	len   int
	taxon map[string]string
}

// New creates a new empty alignment.
func New() *Alignment {
	return &Alignment{
		taxon: make(map[string]string),
	}
}

// Add adds a sequence for a given taxon.
// All sequences must have the same length.
func (a *Alignment) Add(taxon, seq string) error {
	taxon = canon(taxon)
	if taxon == "" {
		return fmt.Errorf("taxon without name")
	}
	seq = strings.ToUpper(strings.Join(strings.Fields(seq), ""))
	if seq == "" {
		return fmt.Errorf("taxon %q: empty sequence", taxon)
	}
	if _, ok := a.taxon[taxon]; ok {
		return fmt.Errorf("taxon %q repeated", taxon)
	}
	if a.len == 0 {
		a.len = len(seq)
	}
	if len(seq) != a.len {
		return fmt.Errorf("taxon %q: got %d sites, want %d", taxon, len(seq), a.len)
	}
	a.taxon[taxon] = seq
	return nil
}

// Len returns the number of sites of the alignment.
func (a *Alignment) Len() int {
	return a.len
}

// Sequence returns the sequence of a given taxon.
func (a *Alignment) Sequence(taxon string) string {
	return a.taxon[canon(taxon)]
}

// Taxa returns the taxa of the alignment,
// in alphabetical order.
func (a *Alignment) Taxa() []string {
	taxa := make([]string, 0, len(a.taxon))
	for tx := range a.taxon {
		taxa = append(taxa, tx)
	}
	slices.Sort(taxa)
	return taxa
}

// Canon returns a taxon name in its canonical form.
func canon(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}
