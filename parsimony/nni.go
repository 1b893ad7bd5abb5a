// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parsimony

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidNNITarget is returned when a nearest neighbor interchange
// is requested on the root,
// on a child of the root,
// or on a node without a sibling for its parent.
var ErrInvalidNNITarget = errors.New("parsimony: invalid NNI target")

// TestNNI returns the change of the parsimony score
// produced by the nearest neighbor interchange
// on the edge between the indicated node
// and its parent:
// the node is exchanged with its uncle
// (a sibling of its parent).
//
// The move is only priced,
// using the cached directional views;
// neither the tree nor the views are modified.
// The returned value is the candidate score
// minus the current score,
// so an improvement is negative.
func (s *Scorer) TestNNI(id int) (int, error) {
	parent, gf, uncle, err := s.nniNodes(id)
	if err != nil {
		return 0, err
	}

	sonView := s.nodes[parent].views[id]
	uncleView := s.nodes[gf].views[uncle]

	// the candidate view at the position of the parent,
	// toward the rest of the tree:
	// the grandfather keeps all of its neighbors
	// except the parent and the uncle,
	// and receives the node
	gfView, err := mergeProfiles(append(s.views(gf, parent, uncle), sonView))
	if err != nil {
		return 0, err
	}

	// the candidate aggregate at the position of the parent:
	// the parent keeps all of its neighbors
	// except the node,
	// and receives the uncle
	agg, err := mergeProfiles(append(s.views(parent, gf, id), uncleView, gfView))
	if err != nil {
		return 0, err
	}

	return s.weighted(agg) - s.Score(), nil
}

// DoNNI performs the nearest neighbor interchange
// priced by TestNNI on the indicated node:
// the node is detached from its parent
// and attached to its grandfather,
// and its uncle is detached from the grandfather
// and attached to the parent.
//
// Only the topology is modified:
// the cached directional views become stale,
// and ComputeScores must be called
// before any new score query.
func (s *Scorer) DoNNI(id int) error {
	parent, gf, uncle, err := s.nniNodes(id)
	if err != nil {
		return err
	}

	if err := s.t.Move(uncle, parent); err != nil {
		return err
	}
	if err := s.t.Move(id, gf); err != nil {
		return err
	}
	return nil
}

// NniNodes returns the parent,
// the grandfather,
// and the uncle
// for an interchange on the indicated node.
//
// The uncle is the sibling of the parent
// at a fixed position:
// the other sibling on a bifurcation;
// on a multifurcation the previous sibling
// (or the second one,
// if the parent is the first child).
func (s *Scorer) nniNodes(id int) (parent, gf, uncle int, err error) {
	parent = s.t.Parent(id)
	if parent < 0 {
		return 0, 0, 0, fmt.Errorf("%w: node %d is the root", ErrInvalidNNITarget, id)
	}
	gf = s.t.Parent(parent)
	if gf < 0 {
		return 0, 0, 0, fmt.Errorf("%w: node %d is a child of the root", ErrInvalidNNITarget, id)
	}

	children := s.t.Children(gf)
	pos := slices.Index(children, parent)
	up := 1 - pos
	if pos > 1 {
		up = pos - 1
	}
	if up >= len(children) {
		return 0, 0, 0, fmt.Errorf("%w: node %d: parent without sibling", ErrInvalidNNITarget, id)
	}
	uncle = children[up]
	return parent, gf, uncle, nil
}

// Search improves the tree
// by nearest neighbor interchanges:
// on each round every valid move is priced,
// the best improving move is applied,
// and the views are recomputed;
// the search stops when no move
// improves the score.
// It returns the score of the final tree.
func (s *Scorer) Search() (int, error) {
	for {
		best := 0
		move := -1
		for _, id := range s.t.Nodes() {
			d, err := s.TestNNI(id)
			if err != nil {
				if errors.Is(err, ErrInvalidNNITarget) {
					continue
				}
				return 0, err
			}
			if d < best {
				best = d
				move = id
			}
		}
		if move < 0 {
			break
		}
		if err := s.DoNNI(move); err != nil {
			return 0, err
		}
		if err := s.ComputeScores(); err != nil {
			return 0, err
		}
	}
	return s.Score(), nil
}
