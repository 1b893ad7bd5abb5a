// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parsimony

// DownPass computes,
// for every internal node,
// the directional view toward each of its children,
// processing every node
// after all of its descendants.
//
// The view toward a child
// is the merge of the views of the child
// toward all of its neighbors
// except the node itself;
// if the child is a terminal
// it is just a copy of its observed states.
func (s *Scorer) downPass(id int) error {
	if s.t.IsTerm(id) {
		return nil
	}
	nd := s.nodes[id]
	for _, c := range s.t.Children(id) {
		if err := s.downPass(c); err != nil {
			return err
		}
		if s.t.IsTerm(c) {
			nd.views[c] = s.leafProfile(c)
			continue
		}
		p, err := mergeProfiles(s.views(c, id))
		if err != nil {
			return err
		}
		nd.views[c] = p
	}
	return nil
}
