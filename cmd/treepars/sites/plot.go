// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sites

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A siteScorePlot is a plot of the score at each site
type siteScorePlot struct {
	scores []float64
	mean   float64
	style  draw.LineStyle
}

// DataRange implements the plot.DataRanger interface.
func (sp *siteScorePlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	for _, s := range sp.scores {
		if s > yMax {
			yMax = s
		}
	}
	return 0, float64(len(sp.scores)), 0, yMax + 1
}

// Plot implements the plot.Plotter interface.
func (sp *siteScorePlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	c.SetLineStyle(sp.style)
	var p vg.Path
	for i, s := range sp.scores {
		x := trX(float64(i))
		y := trY(s)
		if i == 0 {
			p.Move(vg.Point{X: x, Y: y})
		} else {
			p.Line(vg.Point{X: x, Y: y})
		}
		p.Line(vg.Point{X: trX(float64(i + 1)), Y: y})
	}
	c.Stroke(p)

	// mean score line
	var m vg.Path
	m.Move(vg.Point{X: trX(0), Y: trY(sp.mean)})
	m.Line(vg.Point{X: trX(float64(len(sp.scores))), Y: trY(sp.mean)})
	ms := sp.style
	ms.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	c.SetLineStyle(ms)
	c.Stroke(m)
}

func sitePlot(name string, scores []float64) error {
	p := plot.New()
	p.X.Label.Text = "site"
	p.Y.Label.Text = "score"

	sp := &siteScorePlot{
		scores: scores,
		mean:   stat.Mean(scores, nil),
		style:  plotter.DefaultLineStyle,
	}

	p.Add(sp)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s-%s-sites.png", plotPrefix, name)); err != nil {
		return err
	}
	return nil
}
