// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sites implements a command to report
// the parsimony score of each site of an alignment.
package sites

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/treepars/align"
	"github.com/js-arias/treepars/parsimony"
	"github.com/js-arias/treepars/project"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `sites [--tree <tree-name>] [--plot <prefix>]
	<project-file>`,
	Short: "print the parsimony score of each site",
	Long: `
Command sites reads the trees and the alignment from a TreePars project,
calculates the parsimony score of each site of the alignment on each tree,
and prints a tab-delimited table with the site scores in the standard output.

The argument of the command is the name of the project file.

By default all trees will be used. If the flag --tree is set, only the
indicated tree will be used.

If the flag --plot is set with a file prefix, a plot of the site scores of
each tree will be saved as a PNG file, using the prefix and the tree name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var plotPrefix string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&plotPrefix, "plot", "", "")
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

	fmt.Fprintf(c.Stdout(), "tree\tsite\tscore\n")
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			return fmt.Errorf("tree %q not in project %q", tn, args[0])
		}
		sc, err := parsimony.New(t, pt)
		if err != nil {
			return fmt.Errorf("on tree %q: %v", tn, err)
		}

		scores := make([]float64, pt.NumSites())
		for s := range scores {
			v := sc.SiteScore(s)
			scores[s] = float64(v)
			fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\n", tn, s, v)
		}
		fmt.Fprintf(c.Stdout(), "# %s: mean site score: %.3f\n", tn, stat.Mean(scores, nil))

		if plotPrefix != "" {
			if err := sitePlot(tn, scores); err != nil {
				return fmt.Errorf("on tree %q: %v", tn, err)
			}
		}
	}

	return nil
}
