// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package parsimony implements a doubly-recursive
// maximum parsimony scoring engine
// over a phylogenetic tree.
//
// The engine keeps one directional view
// per internal node and incident edge:
// the most parsimonious state assignments,
// and their cost,
// for the part of the tree
// that lies beyond that edge.
// With the views of all directed edges cached,
// the score of a local rearrangement
// (a nearest neighbor interchange)
// can be computed without a full traversal
// of the tree.
package parsimony

import (
	"errors"
	"fmt"
	"slices"

	"github.com/js-arias/treepars/align"
	"github.com/js-arias/treepars/bitfield"
	"github.com/js-arias/treepars/tree"
)

// A Scorer computes parsimony scores
// for a tree and a set of site patterns.
type Scorer struct {
	t *tree.Tree
	d *align.Patterns

	// state sets of each terminal,
	// one per site pattern
	terms map[int][]bitfield.Bitfield

	// directional views of each internal node
	nodes map[int]*nodeData

	// view at the root,
	// merged over all of its neighbors
	root *profile
}

// A nodeData holds the directional views
// of an internal node,
// one per incident edge,
// keyed by the ID of the neighbor
// at the other side of the edge.
type nodeData struct {
	views map[int]*profile
}

// A profile is the view across a directed edge:
// for each site pattern,
// the set of most parsimonious ancestral states
// of the part of the tree beyond the edge,
// and the number of state changes
// required within that part.
type profile struct {
	sets  []bitfield.Bitfield
	costs []int
}

// New creates a new scorer
// for the given tree and site patterns,
// and computes the scores
// for the current topology.
//
// Every terminal of the tree
// must have states defined in the patterns.
func New(t *tree.Tree, d *align.Patterns) (*Scorer, error) {
	if d.Len() == 0 {
		return nil, errors.New("parsimony: patterns without sites")
	}

	s := &Scorer{
		t:     t,
		d:     d,
		terms: make(map[int][]bitfield.Bitfield),
		nodes: make(map[int]*nodeData),
	}
	for _, id := range t.Nodes() {
		if !t.IsTerm(id) {
			s.nodes[id] = &nodeData{
				views: make(map[int]*profile),
			}
			continue
		}
		tx := t.Taxon(id)
		if tx == "" {
			return nil, fmt.Errorf("parsimony: tree %q: node %d: terminal without taxon name", t.Name(), id)
		}
		sets := make([]bitfield.Bitfield, d.Len())
		for i := range sets {
			f := d.States(tx, i)
			if f == nil {
				return nil, fmt.Errorf("parsimony: tree %q: taxon %q: no sequence data", t.Name(), tx)
			}
			sets[i] = f
		}
		s.terms[id] = sets
	}
	if len(s.terms) < 2 {
		return nil, fmt.Errorf("parsimony: tree %q: less than two terminals", t.Name())
	}

	if err := s.ComputeScores(); err != nil {
		return nil, err
	}
	return s, nil
}

// ComputeScores performs a full re-computation
// of the directional views of every directed edge,
// with a down pass (terminals to root)
// followed by an up pass (root to terminals),
// and then aggregates the views at the root.
//
// It must be called after any change of the topology
// (see DoNNI)
// for the score queries to be valid again.
// Without topology changes the results are stable,
// no matter how many times it is called.
func (s *Scorer) ComputeScores() error {
	root := s.t.Root()
	if err := s.downPass(root); err != nil {
		return err
	}
	if err := s.upPass(root); err != nil {
		return err
	}

	p, err := mergeProfiles(s.views(root))
	if err != nil {
		return err
	}
	s.root = p
	return nil
}

// Score returns the parsimony score of the whole tree:
// the sum over all site patterns
// of the cost at the root
// multiplied by the pattern weight.
func (s *Scorer) Score() int {
	return s.weighted(s.root)
}

// SiteScore returns the parsimony score
// of a single site of the source alignment
// (without the pattern weight).
func (s *Scorer) SiteScore(site int) int {
	if s.root == nil {
		return 0
	}
	p := s.d.Pattern(site)
	if p < 0 {
		return 0
	}
	return s.root.costs[p]
}

// Weighted returns the weighted sum of the costs of a view.
func (s *Scorer) weighted(p *profile) int {
	if p == nil {
		return 0
	}
	sc := 0
	for i, c := range p.costs {
		sc += c * s.d.Weight(i)
	}
	return sc
}

// LeafProfile returns the view toward a terminal:
// the observed state sets with a cost of zero.
func (s *Scorer) leafProfile(id int) *profile {
	leaf := s.terms[id]
	p := &profile{
		sets:  make([]bitfield.Bitfield, len(leaf)),
		costs: make([]int, len(leaf)),
	}
	for i, f := range leaf {
		p.sets[i] = f.Copy()
	}
	return p
}

// Views returns the directional views of a node
// toward all of its neighbors,
// except the ones indicated in skip.
func (s *Scorer) views(id int, skip ...int) []*profile {
	nd := s.nodes[id]
	neighbors := s.t.Children(id)
	if f := s.t.Parent(id); f >= 0 {
		neighbors = append(neighbors, f)
	}

	in := make([]*profile, 0, len(neighbors))
	for _, n := range neighbors {
		if slices.Contains(skip, n) {
			continue
		}
		if p, ok := nd.views[n]; ok {
			in = append(in, p)
		}
	}
	return in
}
