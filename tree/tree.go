// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree provides a phylogenetic tree
// that can be edited by local topology moves.
//
// Nodes are identified by stable integer IDs,
// and adjacency is stored as ID lists,
// so node data owned by other packages
// can be keyed by node ID
// and survive topology changes.
package tree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Tree is a rooted phylogenetic tree.
type Tree struct {
	name string
	root int

	nodes map[int]*node
}

// A node is a node of a phylogenetic tree.
type node struct {
	id       int
	parent   int
	children []int
	taxon    string
	length   float64
}

// New creates a new empty tree with a given name.
func New(name string) *Tree {
	name = strings.Join(strings.Fields(name), " ")
	return &Tree{
		name:  name,
		root:  -1,
		nodes: make(map[int]*node),
	}
}

// Add adds a new node as a child of the indicated node.
// To add the root use -1 as the parent.
// If the node is a terminal,
// use taxon to set the taxon name of the node.
// It returns the ID of the added node.
func (t *Tree) Add(parent int, taxon string) (int, error) {
	taxon = canon(taxon)
	if parent < 0 {
		if t.root >= 0 {
			return -1, errors.New("tree already has a root")
		}
		n := &node{
			id:     0,
			parent: -1,
			taxon:  taxon,
		}
		t.root = n.id
		t.nodes[n.id] = n
		return n.id, nil
	}

	p, ok := t.nodes[parent]
	if !ok {
		return -1, fmt.Errorf("parent node %d not in tree", parent)
	}
	if p.taxon != "" {
		return -1, fmt.Errorf("parent node %d is a terminal", parent)
	}
	n := &node{
		id:     len(t.nodes),
		parent: parent,
		taxon:  taxon,
	}
	p.children = append(p.children, n.id)
	t.nodes[n.id] = n
	return n.id, nil
}

// Children returns the IDs of the children of the indicated node.
func (t *Tree) Children(id int) []int {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	children := make([]int, len(n.children))
	copy(children, n.children)
	return children
}

// Degree returns the number of edges
// incident to the indicated node.
func (t *Tree) Degree(id int) int {
	n, ok := t.nodes[id]
	if !ok {
		return 0
	}
	d := len(n.children)
	if n.parent >= 0 {
		d++
	}
	return d
}

// IsRoot returns true if the indicated node is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	n, ok := t.nodes[id]
	if !ok {
		return false
	}
	return n.parent < 0
}

// IsTerm returns true if the indicated node is a terminal.
func (t *Tree) IsTerm(id int) bool {
	n, ok := t.nodes[id]
	if !ok {
		return false
	}
	return len(n.children) == 0
}

// Len returns the branch length of the indicated node,
// that is the length of the branch
// between the node and its parent.
func (t *Tree) Len(id int) float64 {
	n, ok := t.nodes[id]
	if !ok {
		return 0
	}
	return n.length
}

// Move detaches the indicated node from its current parent
// and attaches it as the last child of a new parent.
// The moved node keeps its ID
// and the IDs of all of its descendants.
func (t *Tree) Move(id, parent int) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("node %d not in tree", id)
	}
	if n.parent < 0 {
		return fmt.Errorf("node %d is the root", id)
	}
	p, ok := t.nodes[parent]
	if !ok {
		return fmt.Errorf("parent node %d not in tree", parent)
	}
	if len(p.children) == 0 {
		return fmt.Errorf("parent node %d is a terminal", parent)
	}
	if id == parent {
		return fmt.Errorf("node %d can not be its own parent", id)
	}
	for a := p.parent; a >= 0; a = t.nodes[a].parent {
		if a == id {
			return fmt.Errorf("parent node %d is a descendant of node %d", parent, id)
		}
	}

	old := t.nodes[n.parent]
	for i, c := range old.children {
		if c == id {
			old.children = slices.Delete(old.children, i, i+1)
			break
		}
	}
	p.children = append(p.children, id)
	n.parent = parent
	return nil
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Nodes returns the IDs of all nodes of the tree,
// in ascending order.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Parent returns the ID of the parent of the indicated node.
// It returns -1 for the root
// or an invalid node.
func (t *Tree) Parent(id int) int {
	n, ok := t.nodes[id]
	if !ok {
		return -1
	}
	return n.parent
}

// Root returns the ID of the root node of the tree,
// or -1 for an empty tree.
func (t *Tree) Root() int {
	return t.root
}

// SetLen sets the branch length of the indicated node.
func (t *Tree) SetLen(id int, length float64) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	if length < 0 {
		length = 0
	}
	n.length = length
}

// Taxon returns the taxon name of the indicated node.
func (t *Tree) Taxon(id int) string {
	n, ok := t.nodes[id]
	if !ok {
		return ""
	}
	return n.taxon
}

// Terms returns the name of all terminals of the tree,
// in alphabetical order.
func (t *Tree) Terms() []string {
	var terms []string
	for _, n := range t.nodes {
		if len(n.children) > 0 {
			continue
		}
		if n.taxon == "" {
			continue
		}
		terms = append(terms, n.taxon)
	}
	slices.Sort(terms)
	return terms
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
