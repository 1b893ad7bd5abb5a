// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package distance

import (
	"fmt"

	"github.com/js-arias/treepars/tree"
)

// A cluster is a subtree
// built during an agglomerative clustering.
type cluster struct {
	taxon string
	desc  []*cluster
	lens  []float64
}

// NJ builds a phylogenetic tree
// from a distance matrix
// with the neighbor joining method:
// on each round the pair of clusters
// with the smallest rate-corrected distance
// is joined into a new cluster,
// and the matrix is reduced,
// until three (or two) clusters remain
// and are joined at the root.
//
// Ties are resolved deterministically,
// keeping the first smallest pair
// in matrix order.
func NJ(name string, m *Matrix) (*tree.Tree, error) {
	n := m.Len()
	if n < 2 {
		return nil, fmt.Errorf("distance: nj: matrix with %d taxa", n)
	}

	clusters := make([]*cluster, 0, 2*n)
	for _, tx := range m.Taxa() {
		clusters = append(clusters, &cluster{taxon: tx})
	}

	// working copy of the distances,
	// with room for the joined clusters
	d := make([][]float64, 2*n)
	for i := range d {
		d[i] = make([]float64, 2*n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d[i][j] = m.At(i, j)
		}
	}

	act := make([]int, n)
	for i := range act {
		act[i] = i
	}

	for len(act) > 3 {
		r := len(act)

		// net divergence of each active cluster
		sum := make(map[int]float64, r)
		for _, i := range act {
			for _, j := range act {
				sum[i] += d[i][j]
			}
		}

		// pair with the smallest rate-corrected distance
		bi, bj := -1, -1
		best := 0.0
		for x, i := range act {
			for _, j := range act[x+1:] {
				q := float64(r-2)*d[i][j] - sum[i] - sum[j]
				if bi < 0 || q < best {
					best = q
					bi, bj = i, j
				}
			}
		}

		li := d[bi][bj]/2 + (sum[bi]-sum[bj])/(2*float64(r-2))
		lj := d[bi][bj] - li
		u := len(clusters)
		clusters = append(clusters, &cluster{
			desc: []*cluster{clusters[bi], clusters[bj]},
			lens: []float64{li, lj},
		})

		na := make([]int, 0, r-1)
		for _, k := range act {
			if k == bi || k == bj {
				continue
			}
			d[u][k] = (d[bi][k] + d[bj][k] - d[bi][bj]) / 2
			d[k][u] = d[u][k]
			na = append(na, k)
		}
		act = append(na, u)
	}

	root := &cluster{}
	if len(act) == 3 {
		i, j, k := act[0], act[1], act[2]
		root.desc = []*cluster{clusters[i], clusters[j], clusters[k]}
		root.lens = []float64{
			(d[i][j] + d[i][k] - d[j][k]) / 2,
			(d[i][j] + d[j][k] - d[i][k]) / 2,
			(d[i][k] + d[j][k] - d[i][j]) / 2,
		}
	} else {
		i, j := act[0], act[1]
		root.desc = []*cluster{clusters[i], clusters[j]}
		root.lens = []float64{d[i][j] / 2, d[i][j] / 2}
	}

	t := tree.New(name)
	id, err := t.Add(-1, "")
	if err != nil {
		return nil, fmt.Errorf("distance: nj: %v", err)
	}
	if err := attach(t, id, root); err != nil {
		return nil, fmt.Errorf("distance: nj: %v", err)
	}
	return t, nil
}

// Attach adds the descendants of a cluster
// to a tree node.
func attach(t *tree.Tree, id int, c *cluster) error {
	for i, nc := range c.desc {
		nid, err := t.Add(id, nc.taxon)
		if err != nil {
			return err
		}
		t.SetLen(nid, c.lens[i])
		if err := attach(t, nid, nc); err != nil {
			return err
		}
	}
	return nil
}
