// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parsimony

import (
	"errors"

	"github.com/js-arias/treepars/bitfield"
)

var (
	// ErrDegenerateMerge is returned by a merge
	// without input views.
	ErrDegenerateMerge = errors.New("parsimony: merge without input views")

	// ErrLengthMismatch is returned by a merge
	// of views with different lengths.
	ErrLengthMismatch = errors.New("parsimony: input views with different lengths")
)

// MergeProfiles folds several directional views
// into a single view.
//
// At each site pattern the views are combined
// with the generalized Fitch rule:
// if the running state set
// and the next state set intersect,
// the intersection is kept
// and the costs are added;
// otherwise the union is kept
// and an extra state change is charged.
// The resulting cost does not depend
// on the order of the input views.
func mergeProfiles(in []*profile) (*profile, error) {
	if len(in) == 0 {
		return nil, ErrDegenerateMerge
	}
	np := len(in[0].sets)
	for _, p := range in[1:] {
		if len(p.sets) != np {
			return nil, ErrLengthMismatch
		}
	}

	out := &profile{
		sets:  make([]bitfield.Bitfield, np),
		costs: make([]int, np),
	}
	for i := 0; i < np; i++ {
		f := in[0].sets[i].Copy()
		c := in[0].costs[i]
		for _, p := range in[1:] {
			and := f.And(p.sets[i])
			c += p.costs[i]
			if and.IsZero() {
				and = f.Or(p.sets[i])
				c++
			}
			f = and
		}
		out.sets[i] = f
		out.costs[i] = c
	}
	return out, nil
}
