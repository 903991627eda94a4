/*
 * peaks.go, part of deepKNet.
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
)

const (
	//TwoThetaTol is the angular tolerance, in degrees, within which two
	//reflections are merged into the same observable peak.
	TwoThetaTol = 1e-5
	//ScaledIntensityTol is the minimum peak intensity, as a percentage
	//of the maximum merged intensity, below which a peak is dropped
	//from the human-readable pattern. The feature list is never
	//filtered this way.
	ScaledIntensityTol = 1e-3
)

//Peak is one merged diffraction peak of the human-readable pattern.
type Peak struct {
	TwoTheta  float64  //scattering angle 2theta, degrees
	Intensity float64  //summed Lorentz-corrected intensity, raw or scaled to max=100
	Families  []Family //unique contributing Miller-index families
	DSpacing  float64  //d-spacing of the first-seen contributing reflection, Angstrom
}

//Pattern is an ordered diffraction pattern: merged peaks sorted by
//ascending 2theta.
type Pattern struct {
	Peaks []Peak
}

//accumulator merges individual reflections into peaks as they arrive.
//Reflections come ordered by ascending g (hence ascending 2theta), and
//two reflections land in the same bucket when their 2theta differ by
//less than TwoThetaTol.
type accumulator struct {
	twoThetas []float64
	intens    []float64
	hkls      [][][]int
	dSpacings []float64
}

//add accumulates one Lorentz-corrected reflection. The index tuple is
//recorded as given (already Miller-Bravais-reindexed for hexagonal
//lattices); the d-spacing of a bucket is the first one seen.
func (a *accumulator) add(twoTheta, intensity float64, hkl []int, d float64) {
	for i, t := range a.twoThetas {
		if math.Abs(t-twoTheta) < TwoThetaTol {
			a.intens[i] += intensity
			a.hkls[i] = append(a.hkls[i], hkl)
			return
		}
	}
	a.twoThetas = append(a.twoThetas, twoTheta)
	a.intens = append(a.intens, intensity)
	a.hkls = append(a.hkls, [][]int{hkl})
	a.dSpacings = append(a.dSpacings, d)
}

//pattern reduces the accumulated buckets to the final pattern: family
//reduction, sub-threshold filtering, ascending-2theta ordering and the
//optional max=100 scaling. An empty accumulator is an explicit error:
//dividing by the maximum of an empty peak set is undefined, and an empty
//pattern with no diagnostic would hide an unreasonable input.
func (a *accumulator) pattern(scale bool) (*Pattern, error) {
	if len(a.twoThetas) == 0 {
		return nil, Error{EmptyPattern, "", []string{"pattern"}, true}
	}
	max := a.intens[0]
	for _, v := range a.intens[1:] {
		if v > max {
			max = v
		}
	}
	order := make([]int, len(a.twoThetas))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return a.twoThetas[order[i]] < a.twoThetas[order[j]]
	})
	p := &Pattern{}
	for _, i := range order {
		if a.intens[i]/max*100 <= ScaledIntensityTol {
			continue
		}
		p.Peaks = append(p.Peaks, Peak{
			TwoTheta:  a.twoThetas[i],
			Intensity: a.intens[i],
			Families:  uniqueFamilies(a.hkls[i]),
			DSpacing:  a.dSpacings[i],
		})
	}
	if scale {
		for i := range p.Peaks {
			p.Peaks[i].Intensity *= 100 / max
		}
	}
	return p, nil
}
