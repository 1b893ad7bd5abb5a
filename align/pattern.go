// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package align

import (
	"errors"

	"github.com/js-arias/treepars/bitfield"
)

// Patterns is the compression of an alignment
// into its distinct site patterns.
//
// A pattern is a distinct column of the alignment;
// its weight is the number of sites
// with that column.
// Patterns are stored in order of first appearance.
type Patterns struct {
	weight []int
	sites  []int // site to pattern index
	states map[string][]bitfield.Bitfield
}

// NewPatterns compress an alignment
// into its distinct site patterns.
func NewPatterns(a *Alignment) (*Patterns, error) {
	if a.Len() == 0 {
		return nil, errors.New("patterns: empty alignment")
	}

	taxa := a.Taxa()
	p := &Patterns{
		sites:  make([]int, a.Len()),
		states: make(map[string][]bitfield.Bitfield, len(taxa)),
	}

	cols := make(map[string]int)
	var kept []int
	for s := 0; s < a.Len(); s++ {
		var col []byte
		for _, tx := range taxa {
			col = append(col, a.taxon[tx][s])
		}
		i, ok := cols[string(col)]
		if !ok {
			i = len(p.weight)
			cols[string(col)] = i
			p.weight = append(p.weight, 0)
			kept = append(kept, s)
		}
		p.weight[i]++
		p.sites[s] = i
	}

	for _, tx := range taxa {
		seq := a.taxon[tx]
		sets := make([]bitfield.Bitfield, len(kept))
		for i, s := range kept {
			sets[i] = StateSet(seq[s])
		}
		p.states[tx] = sets
	}
	return p, nil
}

// Len returns the number of distinct patterns.
func (p *Patterns) Len() int {
	return len(p.weight)
}

// NumSites returns the number of sites
// of the source alignment.
func (p *Patterns) NumSites() int {
	return len(p.sites)
}

// Pattern returns the pattern index of a given site,
// or -1 if the site is not in the alignment.
func (p *Patterns) Pattern(site int) int {
	if site < 0 || site >= len(p.sites) {
		return -1
	}
	return p.sites[site]
}

// States returns the state set of a taxon
// at a given pattern.
// It returns nil if the taxon is not in the alignment.
func (p *Patterns) States(taxon string, pattern int) bitfield.Bitfield {
	sets, ok := p.states[canon(taxon)]
	if !ok {
		return nil
	}
	if pattern < 0 || pattern >= len(sets) {
		return nil
	}
	return sets[pattern]
}

// Weight returns the weight of a given pattern,
// that is the number of sites with that pattern.
func (p *Patterns) Weight(pattern int) int {
	if pattern < 0 || pattern >= len(p.weight) {
		return 0
	}
	return p.weight[pattern]
}
