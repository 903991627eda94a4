/*
 * cloud.go, part of deepKNet.
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

/*Package pointcloud turns per-reflection diffraction feature lists into
fixed-size point clouds for machine-learning models, and reads/writes the
compressed dataset files holding them.

A cloud is built in three steps: a fixed-size crop of the Miller-index
lattice around the origin, a Cartesian projection of the surviving
indices through the reciprocal basis (scaled into the unit ball by the
limiting-sphere radius), and an intensity normalization, logarithmic for
X-ray features and identity for neutron ones.
*/
package pointcloud

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/usccolumbia/deepKNet/xrd"
)

//DefaultMaxR is the limiting-sphere radius used to scale Cartesian
//coordinates into the unit ball: 2/lambda for CuKa radiation, the
//wavelength the datasets are generated with.
const DefaultMaxR = 2.0 / 1.54184

//maxIntensity is the upper bound a normalized intensity may reach; a
//value beyond it means the features were not produced by the simulator
//and the cloud would be out of scale for training.
const maxIntensity = 2.5

//Point is one point of a cloud: Cartesian reciprocal-space coordinates
//in the unit ball and a normalized intensity.
type Point struct {
	X, Y, Z   float64
	Intensity float64
}

//Select crops a feature list to a fixed-size point budget. The
//supported budgets mirror the cubic index windows of the datasets:
//3 (the three positive axis reflections), 27, 125 and 343 (all indices
//with |h|,|k|,|l| at most 1, 2 and 3, including the origin row). The
//result has at most npoints rows; for npoints=3 exactly three rows are
//required, since a pattern missing an axis reflection cannot feed the
//three-point model.
func Select(feats []xrd.Feature, npoints int) ([]xrd.Feature, error) {
	var keep func(f xrd.Feature) bool
	switch npoints {
	case 3:
		keep = func(f xrd.Feature) bool {
			return f.H+f.K+f.L == 1 && f.H >= 0 && f.K >= 0 && f.L >= 0
		}
	case 27:
		keep = window(1)
	case 125:
		keep = window(2)
	case 343:
		keep = window(3)
	default:
		return nil, Error{UnsupportedBudget, "", fmt.Sprintf("%d points", npoints), []string{"Select"}, true}
	}
	var sel []xrd.Feature
	for _, f := range feats {
		if keep(f) {
			sel = append(sel, f)
		}
	}
	if npoints == 3 && len(sel) != 3 {
		return nil, Error{IncompleteAxes, "", fmt.Sprintf("%d points", len(sel)), []string{"Select"}, true}
	}
	if len(sel) > npoints {
		return nil, Error{BudgetOverflow, "", fmt.Sprintf("%d points", len(sel)), []string{"Select"}, true}
	}
	return sel, nil
}

func window(n int) func(f xrd.Feature) bool {
	return func(f xrd.Feature) bool {
		return abs(f.H) <= n && abs(f.K) <= n && abs(f.L) <= n
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

//Project maps the Miller indices of a selected feature list to Cartesian
//reciprocal-space coordinates through the reciprocal basis (rows are the
//reciprocal vectors), and scales them into the unit ball by maxR. A
//point landing outside the ball means the features and the basis do not
//belong together, and is a hard error.
func Project(feats []xrd.Feature, recip *mat.Dense, maxR float64) ([]Point, error) {
	if maxR <= 0 {
		return nil, Error{NonPositiveRadius, "", "", []string{"Project"}, true}
	}
	pts := make([]Point, 0, len(feats))
	for _, f := range feats {
		h, k, l := float64(f.H), float64(f.K), float64(f.L)
		p := Point{
			X:         (h*recip.At(0, 0) + k*recip.At(1, 0) + l*recip.At(2, 0)) / maxR,
			Y:         (h*recip.At(0, 1) + k*recip.At(1, 1) + l*recip.At(2, 1)) / maxR,
			Z:         (h*recip.At(0, 2) + k*recip.At(1, 2) + l*recip.At(2, 2)) / maxR,
			Intensity: f.Intensity,
		}
		if math.Abs(p.X) > 1 || math.Abs(p.Y) > 1 || math.Abs(p.Z) > 1 {
			return nil, Error{OutsideUnitBall, "",
				fmt.Sprintf("(%d,%d,%d)", f.H, f.K, f.L), []string{"Project"}, true}
		}
		pts = append(pts, p)
	}
	return pts, nil
}

//Normalize rescales the intensities in place. X-ray intensities are
//compressed as log(1+I)/3, which keeps silicon-scale patterns well
//inside [0,1]; neutron features arrive already normalized and are kept
//as they are. Either way a result outside [0, 2.5] is a hard error, not
//a clamp.
func Normalize(pts []Point, neutron bool) error {
	for i := range pts {
		v := pts[i].Intensity
		if !neutron {
			v = math.Log1p(v) / 3
		}
		if v < 0 || v > maxIntensity {
			return Error{IntensityOutOfScale, "",
				fmt.Sprintf("%g", v), []string{"Normalize"}, true}
		}
		pts[i].Intensity = v
	}
	return nil
}

//Build runs the full pipeline on a raw feature list: crop to the point
//budget, project through the reciprocal basis with the default CuKa
//limiting-sphere radius, and normalize intensities.
func Build(feats []xrd.Feature, recip *mat.Dense, npoints int, neutron bool) ([]Point, error) {
	sel, err := Select(feats, npoints)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	pts, err := Project(sel, recip, DefaultMaxR)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	if err := Normalize(pts, neutron); err != nil {
		return nil, errDecorate(err, "Build")
	}
	return pts, nil
}
