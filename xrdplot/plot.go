/*
 * plot.go, part of deepKNet.
 *
 *
 * Copyright 2021 The deepKNet Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package xrdplot renders simulated diffraction patterns as stick plots,
//the usual way powder patterns are inspected by eye.
package xrdplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/usccolumbia/deepKNet/xrd"
)

func basicPatternPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "2theta (degrees)"
	p.Y.Label.Text = "Intensity"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//PlotPattern produces a png stick plot of the pattern: one vertical line
//per peak at its 2theta position, with height proportional to intensity.
//The .png extension is appended to plotname.
func PlotPattern(pat *xrd.Pattern, title, plotname string) error {
	if pat == nil || len(pat.Peaks) == 0 {
		return fmt.Errorf("PlotPattern: given nil or empty pattern")
	}
	p := basicPatternPlot(title)
	for _, peak := range pat.Peaks {
		stick := plotter.XYs{
			{X: peak.TwoTheta, Y: 0},
			{X: peak.TwoTheta, Y: peak.Intensity},
		}
		line, err := plotter.NewLine(stick)
		if err != nil {
			return err
		}
		line.Color = color.RGBA{A: 255}
		line.Width = vg.Points(1)
		p.Add(line)
	}
	//some margin so edge peaks do not sit on the frame
	p.X.Min = pat.Peaks[0].TwoTheta - 2
	p.X.Max = pat.Peaks[len(pat.Peaks)-1].TwoTheta + 2
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
