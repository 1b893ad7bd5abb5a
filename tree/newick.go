// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ReadNewick reads a single tree
// in parenthetical (newick) format
// from an input stream.
func ReadNewick(in io.Reader, name string) (*Tree, error) {
	r := bufio.NewReader(in)
	for {
		r1, _, err := r.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("(tree %q): %v", name, err)
		}
		if r1 == '(' {
			break
		}
	}
	t := New(name)
	if _, err := t.readNode(r, -1); err != nil {
		return nil, fmt.Errorf("(tree %q): %v", name, err)
	}
	return t, nil
}

// ReadNode reads a node in parenthetical format.
func (t *Tree) readNode(r *bufio.Reader, parent int) (int, error) {
	id, err := t.Add(parent, "")
	if err != nil {
		return -1, err
	}
	num := 0
	last := -1
	for {
		r1, _, err := r.ReadRune()
		if err != nil {
			return -1, err
		}
		if unicode.IsSpace(r1) || (r1 == ',') {
			continue
		}
		if r1 == ':' {
			if last < 0 {
				return -1, errors.New("unexpected branch length")
			}
			ln, err := readLen(r)
			if err != nil {
				return -1, err
			}
			t.SetLen(last, ln)
			continue
		}
		if r1 == '(' {
			desc, err := t.readNode(r, id)
			if err != nil {
				return -1, err
			}
			num++
			last = desc
			continue
		}
		if r1 == ')' {
			break
		}

		// a terminal
		r.UnreadRune()
		tx, err := readTerm(r)
		if err != nil {
			return -1, err
		}
		desc, err := t.Add(id, tx)
		if err != nil {
			return -1, err
		}
		num++
		last = desc
	}
	if num < 2 {
		return -1, fmt.Errorf("node with %d descendants", num)
	}
	return id, nil
}

// ReadTerm reads a terminal name from a tree string.
func readTerm(r *bufio.Reader) (string, error) {
	r1, _, _ := r.ReadRune()
	if r1 == '\'' {
		return readBlock(r, '\'')
	}
	r.UnreadRune()
	var nm []rune
	for {
		r1, _, err := r.ReadRune()
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r1) || (r1 == ',') {
			break
		}
		if (r1 == '(') || (r1 == ')') || (r1 == ':') {
			r.UnreadRune()
			break
		}
		if r1 == '_' {
			r1 = ' '
		}
		nm = append(nm, r1)
	}
	name := strings.Join(strings.Fields(string(nm)), " ")
	if name == "" {
		return "", errors.New("empty taxon name")
	}
	return name, nil
}

// ReadBlock reads a string inside a quoted block.
func readBlock(r *bufio.Reader, delim rune) (string, error) {
	var s []rune
	for {
		r1, _, err := r.ReadRune()
		if err != nil {
			return "", err
		}
		if r1 == delim {
			break
		}
		s = append(s, r1)
	}
	name := strings.Join(strings.Fields(string(s)), " ")
	if name == "" {
		return "", errors.New("empty quoted taxon name")
	}
	return name, nil
}

// ReadLen reads a branch length, if defined.
func readLen(r *bufio.Reader) (float64, error) {
	var s []rune
	for {
		r1, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(r1) || (r1 == ',') {
			break
		}
		if (r1 == '(') || (r1 == ')') {
			r.UnreadRune()
			break
		}
		s = append(s, r1)
	}
	return strconv.ParseFloat(string(s), 64)
}

// Newick writes a tree in parenthetical (newick) format
// into an output stream.
func (t *Tree) Newick(out io.Writer) error {
	if t.root < 0 {
		return fmt.Errorf("(tree %q): empty tree", t.name)
	}
	w := bufio.NewWriter(out)
	t.writeNode(w, t.root)
	fmt.Fprintf(w, ";\n")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("(tree %q): %v", t.name, err)
	}
	return nil
}

func (t *Tree) writeNode(w *bufio.Writer, id int) {
	n := t.nodes[id]
	if len(n.children) == 0 {
		w.WriteString(strings.Join(strings.Fields(n.taxon), "_"))
	} else {
		w.WriteRune('(')
		for i, c := range n.children {
			if i > 0 {
				w.WriteRune(',')
			}
			t.writeNode(w, c)
		}
		w.WriteRune(')')
	}
	if n.parent >= 0 && n.length > 0 {
		fmt.Fprintf(w, ":%.6g", n.length)
	}
}
