// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// TreePars is a tool for maximum parsimony analysis
// of phylogenetic trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/treepars/cmd/treepars/add"
	"github.com/js-arias/treepars/cmd/treepars/importcmd"
	"github.com/js-arias/treepars/cmd/treepars/list"
	"github.com/js-arias/treepars/cmd/treepars/nj"
	"github.com/js-arias/treepars/cmd/treepars/nni"
	"github.com/js-arias/treepars/cmd/treepars/score"
	"github.com/js-arias/treepars/cmd/treepars/set"
	"github.com/js-arias/treepars/cmd/treepars/sites"
	"github.com/js-arias/treepars/cmd/treepars/terms"
)

var app = &command.Command{
	Usage: "treepars <command> [<argument>...]",
	Short: "a tool for maximum parsimony phylogenetics",
}

func init() {
	app.Add(add.Command)
	app.Add(importcmd.Command)
	app.Add(list.Command)
	app.Add(nj.Command)
	app.Add(nni.Command)
	app.Add(score.Command)
	app.Add(set.Command)
	app.Add(sites.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
