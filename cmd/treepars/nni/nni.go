// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nni implements a command to search
// for more parsimonious trees
// with nearest neighbor interchanges.
package nni

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/treepars/align"
	"github.com/js-arias/treepars/parsimony"
	"github.com/js-arias/treepars/project"
	"github.com/js-arias/treepars/tree"
)

var Command = &command.Command{
	Usage: `nni [--tree <tree-name>] [-o|--output <tree-file>]
	<project-file>`,
	Short: "search for better trees with nearest neighbor interchanges",
	Long: `
Command nni reads the trees and the alignment from a TreePars project, and
searches for trees with a smaller parsimony score, swapping branches with
nearest neighbor interchanges. On each round the interchange with the largest
score improvement is applied, and the search stops when no interchange
improves the score. The resulting score of each tree is printed in the
standard output.

The argument of the command is the name of the project file.

By default all trees will be used as starting points. If the flag --tree is
set, only the indicated tree will be used.

By default the rearranged trees will replace the starting trees in the tree
file of the project. If the flag --output, or -o, is set, the rearranged trees
will be written to the indicated file, and the project will be left untouched.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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
	pt, err := align.NewPatterns(a)
	if err != nil {
		return err
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}

	ls := tc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			return fmt.Errorf("tree %q not in project %q", tn, args[0])
		}
		sc, err := parsimony.New(t, pt)
		if err != nil {
			return fmt.Errorf("on tree %q: %v", tn, err)
		}
		start := sc.Score()
		best, err := sc.Search()
		if err != nil {
			return fmt.Errorf("on tree %q: %v", tn, err)
		}
		fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\n", tn, start, best)
	}

	tf := output
	if tf == "" {
		tf = p.Path(project.Trees)
	}
	if err := writeTrees(tc, tf); err != nil {
		return err
	}
	return nil
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
