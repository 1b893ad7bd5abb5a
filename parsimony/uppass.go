// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parsimony

// UpPass computes,
// for every internal node,
// the directional view toward its parent,
// processing every node
// after all of its ancestors.
//
// The view toward the parent
// is the merge of the views of the parent
// toward all of its neighbors
// except the node itself.
// The view of a node toward a neighbor
// above its parent was stored
// on an earlier step of the same pass,
// so the down pass over the whole tree
// must be finished before the up pass starts.
func (s *Scorer) upPass(id int) error {
	if s.t.IsTerm(id) {
		return nil
	}
	nd := s.nodes[id]
	if f := s.t.Parent(id); f >= 0 {
		p, err := mergeProfiles(s.views(f, id))
		if err != nil {
			return err
		}
		nd.views[f] = p
	}

	for _, c := range s.t.Children(id) {
		if err := s.upPass(c); err != nil {
			return err
		}
	}
	return nil
}
