// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package distance provides pairwise distance matrices
// estimated from aligned sequences,
// and distance based clustering of taxa
// into phylogenetic trees.
package distance

import (
	"fmt"
	"math"

	"github.com/js-arias/treepars/align"
	"gonum.org/v1/gonum/mat"
)

// A Matrix is a symmetric matrix
// of pairwise distances between taxa.
type Matrix struct {
	taxa []string
	ids  map[string]int
	m    *mat.SymDense
}

// NewMatrix creates a new zero distance matrix
// for a set of taxa.
func NewMatrix(taxa []string) *Matrix {
	ids := make(map[string]int, len(taxa))
	for i, tx := range taxa {
		ids[tx] = i
	}
	return &Matrix{
		taxa: taxa,
		ids:  ids,
		m:    mat.NewSymDense(len(taxa), nil),
	}
}

// P estimates the matrix of uncorrected distances
// (p-distances)
// of an alignment:
// the fraction of compared sites
// with different states.
// Only sites in which both sequences
// have an unambiguous state are compared.
func P(a *align.Alignment) (*Matrix, error) {
	taxa := a.Taxa()
	if len(taxa) < 2 {
		return nil, fmt.Errorf("distance: alignment with %d taxa", len(taxa))
	}

	m := NewMatrix(taxa)
	for i, tx1 := range taxa {
		s1 := a.Sequence(tx1)
		for j := i + 1; j < len(taxa); j++ {
			s2 := a.Sequence(taxa[j])
			p, err := pDist(s1, s2)
			if err != nil {
				return nil, fmt.Errorf("distance: taxa %q and %q: %v", tx1, taxa[j], err)
			}
			m.m.SetSym(i, j, p)
		}
	}
	return m, nil
}

// JC estimates the matrix of Jukes-Cantor distances
// of an alignment:
// the p-distance corrected
// for unseen substitutions,
// d = -3/4 ln(1 - 4p/3).
func JC(a *align.Alignment) (*Matrix, error) {
	m, err := P(a)
	if err != nil {
		return nil, err
	}
	for i := range m.taxa {
		for j := i + 1; j < len(m.taxa); j++ {
			p := m.m.At(i, j)
			if p >= 0.75 {
				return nil, fmt.Errorf("distance: taxa %q and %q: saturated distance", m.taxa[i], m.taxa[j])
			}
			m.m.SetSym(i, j, -0.75*math.Log(1-4*p/3))
		}
	}
	return m, nil
}

// PDist returns the fraction of different sites
// between two sequences,
// over the sites in which both sequences
// have an unambiguous state.
func pDist(s1, s2 string) (float64, error) {
	comp := 0
	diff := 0
	for i := range s1 {
		if !align.IsUnambiguous(s1[i]) || !align.IsUnambiguous(s2[i]) {
			continue
		}
		comp++
		if s1[i] != s2[i] {
			diff++
		}
	}
	if comp == 0 {
		return 0, fmt.Errorf("no comparable sites")
	}
	return float64(diff) / float64(comp), nil
}

// At returns the distance between two taxa
// by their position in the matrix.
func (m *Matrix) At(i, j int) float64 {
	return m.m.At(i, j)
}

// Distance returns the distance between two named taxa.
func (m *Matrix) Distance(tx1, tx2 string) float64 {
	i, ok := m.ids[tx1]
	if !ok {
		return 0
	}
	j, ok := m.ids[tx2]
	if !ok {
		return 0
	}
	return m.m.At(i, j)
}

// Len returns the number of taxa of the matrix.
func (m *Matrix) Len() int {
	return len(m.taxa)
}

// Set sets the distance between two named taxa.
func (m *Matrix) Set(tx1, tx2 string, d float64) error {
	i, ok := m.ids[tx1]
	if !ok {
		return fmt.Errorf("distance: taxon %q not in matrix", tx1)
	}
	j, ok := m.ids[tx2]
	if !ok {
		return fmt.Errorf("distance: taxon %q not in matrix", tx2)
	}
	if i == j {
		return nil
	}
	m.m.SetSym(i, j, d)
	return nil
}

// Taxa returns the taxa of the matrix,
// in matrix order.
func (m *Matrix) Taxa() []string {
	taxa := make([]string, len(m.taxa))
	copy(taxa, m.taxa)
	return taxa
}
