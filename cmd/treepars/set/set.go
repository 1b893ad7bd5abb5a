// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package set implements a command to set
// the data files of a TreePars project.
package set

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/treepars/project"
)

var Command = &command.Command{
	Usage: `set [--alignment <alignment-file>]
	[--trees <tree-file>]
	<project-file>`,
	Short: "set the data files of a TreePars project",
	Long: `
Command set adds one or more data file paths to a TreePars project. If no
project file exists, a new project will be created.

The argument of the command is the name of the project file.

The flag --alignment sets the file with the aligned sequences of the taxa in
the project, in FASTA format. The flag --trees sets the file with the
phylogenetic trees of the project, as a tab-delimited file. An empty argument
removes the dataset from the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var alignFile string
var treeFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&alignFile, "alignment", "", "")
	c.Flags().StringVar(&treeFile, "trees", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	c.Flags().Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alignment":
			p.Add(project.Alignment, alignFile)
		case "trees":
			p.Add(project.Trees, treeFile)
		}
	})

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}
