/*
 * recip.go, part of deepKNet.
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

package xrd

import (
	"math"
	"sort"

	knet "github.com/usccolumbia/deepKNet"
)

//minG is the magnitude below which a reciprocal point is considered the
//origin and discarded. Points with g at or beyond the limiting-sphere
//radius 2/lambda are discarded as well, to avoid precision artifacts at
//the boundary.
const minG = 1e-4

//recipPoint is one reciprocal lattice point: the integer Miller triple
//and the magnitude g = |g_hkl| = 1/d_hkl.
type recipPoint struct {
	hkl [3]int
	g   float64
}

//reciprocalPoints enumerates every reciprocal lattice point other than
//the origin whose magnitude lies inside the limiting sphere of radius
//2/lambda, ordered by ascending magnitude with the (-h,-k,-l) tie-break
//that makes the output deterministic.
//
//The candidate box per axis follows from h_i = g.a_i, so |h_i| can never
//exceed |g||a_i| and scanning |h_i| <= ceil(gmax*|a_i|) covers the whole
//sphere.
func reciprocalPoints(latt *knet.Lattice, lambda float64) ([]recipPoint, error) {
	if lambda <= 0 {
		return nil, Error{NonPositiveWavelength, "", []string{"reciprocalPoints"}, true}
	}
	gmax := 2.0 / lambda
	lengths, _ := latt.LengthsAndAngles()
	var hmax [3]int
	for i := 0; i < 3; i++ {
		hmax[i] = int(math.Ceil(gmax * lengths[i]))
	}
	//reciprocal metric: g^2 = (h,k,l) M (h,k,l)^T
	metric := latt.RecipMetric()
	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = metric.At(i, j)
		}
	}
	var pts []recipPoint
	for h := -hmax[0]; h <= hmax[0]; h++ {
		for k := -hmax[1]; k <= hmax[1]; k++ {
			for l := -hmax[2]; l <= hmax[2]; l++ {
				hf, kf, lf := float64(h), float64(k), float64(l)
				g2 := hf*(m[0][0]*hf+m[0][1]*kf+m[0][2]*lf) +
					kf*(m[1][0]*hf+m[1][1]*kf+m[1][2]*lf) +
					lf*(m[2][0]*hf+m[2][1]*kf+m[2][2]*lf)
				g := math.Sqrt(g2)
				//skip the origin and anything on or outside the
				//limiting sphere
				if g < minG || g >= gmax {
					continue
				}
				pts = append(pts, recipPoint{hkl: [3]int{h, k, l}, g: g})
			}
		}
	}
	sort.SliceStable(pts, func(i, j int) bool {
		if pts[i].g != pts[j].g {
			return pts[i].g < pts[j].g
		}
		if pts[i].hkl[0] != pts[j].hkl[0] {
			return pts[i].hkl[0] > pts[j].hkl[0]
		}
		if pts[i].hkl[1] != pts[j].hkl[1] {
			return pts[i].hkl[1] > pts[j].hkl[1]
		}
		return pts[i].hkl[2] > pts[j].hkl[2]
	})
	return pts, nil
}
