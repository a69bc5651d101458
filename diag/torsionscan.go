/*
 * torsionscan.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package diag renders diagnostic plots useful while grounding a receptor
// grid or scoring table against known-good ligand poses.
package diag

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// TorsionScan holds one torsion's angle/energy samples, as produced by
// sweeping a single degree of freedom through Evaluate while holding every
// other coordinate fixed.
type TorsionScan struct {
	AngleRadians []float64
	Energy       []float64
}

// Plot renders the scan as a line plot, angle in degrees on the x axis, and
// saves it to path as a PNG.
func (s TorsionScan) Plot(path, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "torsion angle (deg)"
	p.Y.Label.Text = "energy (kcal/mol)"

	pts := make(plotter.XYs, len(s.AngleRadians))
	for i, a := range s.AngleRadians {
		pts[i].X = a * 180 / math.Pi
		pts[i].Y = s.Energy[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
