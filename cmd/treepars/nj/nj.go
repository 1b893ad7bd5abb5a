// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nj implements a command to build
// a neighbor joining tree
// from the alignment of a TreePars project.
package nj

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/treepars/distance"
	"github.com/js-arias/treepars/project"
	"github.com/js-arias/treepars/tree"
)

var Command = &command.Command{
	Usage: `nj [--name <tree-name>] [--jc]
	<project-file>`,
	Short: "build a neighbor joining tree",
	Long: `
Command nj reads the alignment from a TreePars project, estimates the matrix
of pairwise distances between the taxa, builds a tree with the neighbor
joining method, and adds the tree to the tree file of the project. If the
project does not have a tree file, a new one will be created with the name
'trees.tab'.

The argument of the command is the name of the project file.

By default the tree will be named 'nj'. Use the flag --name to set a
different name.

By default the uncorrected distances (p-distances) will be used. If the flag
--jc is set, distances will be corrected with the Jukes-Cantor model.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var useJC bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "name", "nj", "")
	c.Flags().BoolVar(&useJC, "jc", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	a, err := p.Alignment()
	if err != nil {
		return err
	}

	var m *distance.Matrix
	if useJC {
		m, err = distance.JC(a)
	} else {
		m, err = distance.P(a)
	}
	if err != nil {
		return err
	}

	t, err := distance.NJ(treeName, m)
	if err != nil {
		return err
	}

	var tc *tree.Collection
	tf := p.Path(project.Trees)
	if tf != "" {
		tc, err = readTreeFile(tf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", tf, err)
		}
	} else {
		tf = "trees.tab"
		tc = tree.NewCollection()
	}
	if err := tc.Add(t); err != nil {
		return err
	}

	if err := writeTrees(tc, tf); err != nil {
		return err
	}
	p.Add(project.Trees, tf)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func readTreeFile(name string) (*tree.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := tree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func writeTrees(tc *tree.Collection, name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
