// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/treepars/align"
	"github.com/js-arias/treepars/tree"
)

// Alignment reads an alignment file
// as defined in a project.
func (p *Project) Alignment() (*align.Alignment, error) {
	name := p.Path(Alignment)
	if name == "" {
		return nil, fmt.Errorf("alignment not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := align.ReadFasta(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return a, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*tree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

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
