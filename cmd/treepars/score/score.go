// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package score implements a command to report
// the parsimony score of the trees of a TreePars project.
package score

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/treepars/align"
	"github.com/js-arias/treepars/parsimony"
	"github.com/js-arias/treepars/project"
)

var Command = &command.Command{
	Usage: "score [--tree <tree-name>] <project-file>",
	Short: "print the parsimony score of the trees",
	Long: `
Command score reads the trees and the alignment from a TreePars project,
calculates the parsimony score of each tree, and prints the scores in the
standard output.

The argument of the command is the name of the project file.

By default all trees will be scored. If the flag --tree is set, only the
indicated tree will be scored.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
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
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", tn, sc.Score())
	}

	return nil
}
