// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// A Collection is a set of named phylogenetic trees.
type Collection struct {
	trees map[string]*Tree
}

// NewCollection creates a new empty collection.
func NewCollection() *Collection {
	return &Collection{
		trees: make(map[string]*Tree),
	}
}

// Add adds a tree to a collection.
// It returns an error if there is a tree
// with the same name in the collection.
func (c *Collection) Add(t *Tree) error {
	name := t.Name()
	if name == "" {
		return errors.New("tree without name")
	}
	if _, ok := c.trees[name]; ok {
		return fmt.Errorf("tree %q already in collection", name)
	}
	c.trees[name] = t
	return nil
}

// Names returns the names of the trees in the collection,
// in alphabetical order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.trees))
	for name := range c.trees {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Tree returns a tree with a given name.
func (c *Collection) Tree(name string) *Tree {
	return c.trees[name]
}

var header = []string{
	"tree",
	"node",
	"parent",
	"length",
	"taxon",
}

// ReadTSV reads a collection of trees from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tree, the name of the tree
//   - node, the ID of the node
//   - parent, the ID of the parent node
//     (-1 for the root)
//   - taxon, the taxon name of a terminal node
//
// An additional field "length" with the branch length
// of the node is optional.
// Parent nodes must be defined before their children.
//
// Here is an example file:
//
//	tree	node	parent	length	taxon
//	balanced	0	-1	0.000000
//	balanced	1	0	1.000000
//	balanced	2	1	1.000000	Homo sapiens
//	balanced	3	1	1.000000	Pan troglodytes
//	balanced	4	0	2.000000	Pongo abelii
func ReadTSV(r io.Reader) (*Collection, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"tree", "node", "parent", "taxon"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	c := NewCollection()
	// map of tree name to map of file node IDs to tree node IDs
	ids := make(map[string]map[string]int)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tree"
		name := strings.Join(strings.Fields(row[fields[f]]), " ")
		if name == "" {
			continue
		}
		t := c.trees[name]
		if t == nil {
			t = New(name)
			c.trees[name] = t
			ids[name] = make(map[string]int)
		}
		tn := ids[name]

		f = "node"
		node := row[fields[f]]
		if node == "" {
			continue
		}
		if _, ok := tn[node]; ok {
			return nil, fmt.Errorf("on row %d: tree %q: node %q repeated", ln, name, node)
		}

		f = "parent"
		pID := row[fields[f]]
		parent := -1
		if pID != "" && pID != "-1" {
			p, ok := tn[pID]
			if !ok {
				return nil, fmt.Errorf("on row %d: tree %q: parent %q not defined", ln, name, pID)
			}
			parent = p
		}

		f = "taxon"
		taxon := row[fields[f]]

		id, err := t.Add(parent, taxon)
		if err != nil {
			return nil, fmt.Errorf("on row %d: tree %q: %v", ln, name, err)
		}
		tn[node] = id

		if lf, ok := fields["length"]; ok && len(row) > lf && row[lf] != "" {
			l, err := strconv.ParseFloat(row[lf], 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, "length", err)
			}
			t.SetLen(id, l)
		}
	}

	if len(c.trees) == 0 {
		return nil, errors.New("while reading data: no trees in file")
	}
	return c, nil
}

// TSV writes a collection of trees into a TSV file.
// Nodes are written in pre-order,
// so parents are always defined before their children.
func (c *Collection) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for _, name := range c.Names() {
		t := c.trees[name]
		if t.root < 0 {
			continue
		}
		if err := t.writeTSVNode(tab, t.root); err != nil {
			return fmt.Errorf("when writing tree %q: %v", name, err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

func (t *Tree) writeTSVNode(tab *csv.Writer, id int) error {
	n := t.nodes[id]
	row := []string{
		t.name,
		strconv.Itoa(n.id),
		strconv.Itoa(n.parent),
		strconv.FormatFloat(n.length, 'f', 6, 64),
		n.taxon,
	}
	if err := tab.Write(row); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := t.writeTSVNode(tab, c); err != nil {
			return err
		}
	}
	return nil
}
