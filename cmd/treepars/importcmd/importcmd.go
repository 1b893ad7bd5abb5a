// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package importcmd implements a command to import
// time calibrated trees
// into a TreePars project.
package importcmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/treepars/project"
	"github.com/js-arias/treepars/tree"
)

var Command = &command.Command{
	Usage: `import [-f|--file <tree-file>]
	<project-file> [<time-tree-file>...]`,
	Short: "import time calibrated trees",
	Long: `
Command import reads one or more time calibrated trees, in the form of
tab-delimited files as used by the TimeTree package, and adds the tree
topologies to a TreePars project. Branch lengths are set from the node ages,
in million years.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input.

By default the trees will be stored in the tree file currently defined for
the project. If the project does not have a tree file, a new one will be
created with the name 'trees.tab'. A different tree file name can be defined
using the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

// A million years in the age units of a time tree.
const millionYears = 1_000_000

var treeFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
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

	var tc *tree.Collection
	if tf := p.Path(project.Trees); tf != "" {
		tc, err = readTreeFile(tf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", tf, err)
		}
	}
	if tc == nil {
		tc = tree.NewCollection()
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		ttc, err := readTimeTrees(c.Stdin(), fn)
		if err != nil {
			return err
		}
		for _, tn := range ttc.Names() {
			t, err := importTree(ttc.Tree(tn))
			if err != nil {
				return fmt.Errorf("when importing tree %q from %q: %v", tn, a, err)
			}
			if err := tc.Add(t); err != nil {
				return fmt.Errorf("when adding trees from %q: %v", a, err)
			}
		}
	}

	if treeFile == "" {
		treeFile = p.Path(project.Trees)
		if treeFile == "" {
			treeFile = "trees.tab"
		}
	}

	if err := writeTrees(tc); err != nil {
		return err
	}
	p.Add(project.Trees, treeFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

// ImportTree copies the topology of a time calibrated tree,
// setting branch lengths from the node ages.
func importTree(tt *timetree.Tree) (*tree.Tree, error) {
	t := tree.New(tt.Name())
	root, err := t.Add(-1, "")
	if err != nil {
		return nil, err
	}
	if err := copyNodes(t, root, tt, tt.Root()); err != nil {
		return nil, err
	}
	return t, nil
}

func copyNodes(t *tree.Tree, id int, tt *timetree.Tree, tn int) error {
	for _, d := range tt.Children(tn) {
		tax := ""
		if tt.IsTerm(d) {
			tax = tt.Taxon(d)
		}
		nid, err := t.Add(id, tax)
		if err != nil {
			return err
		}
		t.SetLen(nid, float64(tt.Age(tn)-tt.Age(d))/millionYears)
		if !tt.IsTerm(d) {
			if err := copyNodes(t, nid, tt, d); err != nil {
				return err
			}
		}
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

func readTimeTrees(r io.Reader, name string) (*timetree.Collection, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func writeTrees(tc *tree.Collection) (err error) {
	f, err := os.Create(treeFile)
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
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}
	return nil
}
