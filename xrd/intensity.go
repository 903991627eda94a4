/*
 * intensity.go, part of deepKNet.
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
	"fmt"
	"math"
	"math/cmplx"

	knet "github.com/usccolumbia/deepKNet"
)

//mottBethe is the prefactor of the Mott-Bethe relation converting the
//Gaussian-fitted electron scattering factor to the X-ray scattering
//factor: f(s) = Z - mottBethe * s^2 * sum_i a_i exp(-b_i s^2).
const mottBethe = 41.78214

//flatSites is the per-site data of one structure flattened into parallel
//slices, the layout the intensity engine iterates over for every
//reciprocal point.
type flatSites struct {
	zs     []float64
	coeffs []knet.ScatteringCoeffs
	coords [][3]float64
	occus  []float64
	total  float64 //total electron count, sum of zs
}

//flatten extracts and validates the per-site data. Any site with an
//occupancy other than 1 and any element without scattering coefficients
//is a typed error naming the offender; sites are never silently dropped.
func flatten(c *knet.Crystal) (*flatSites, error) {
	sites := c.Sites()
	f := &flatSites{
		zs:     make([]float64, 0, len(sites)),
		coeffs: make([]knet.ScatteringCoeffs, 0, len(sites)),
		coords: make([][3]float64, 0, len(sites)),
		occus:  make([]float64, 0, len(sites)),
	}
	for i, s := range sites {
		if s.Occupancy != 1 {
			return nil, Error{OccupancyUnsupported,
				site(i, s.Symbol), []string{"flatten"}, true}
		}
		coeff, err := knet.GetScatteringCoeffs(s.Symbol)
		if err != nil {
			return nil, Error{MissingCoefficients,
				site(i, s.Symbol), []string{"flatten"}, true}
		}
		f.zs = append(f.zs, float64(s.Z))
		f.coeffs = append(f.coeffs, coeff)
		f.coords = append(f.coords, s.FracCoords)
		f.occus = append(f.occus, s.Occupancy)
		f.total += float64(s.Z)
	}
	return f, nil
}

func site(i int, symbol string) string {
	return fmt.Sprintf("site %d (%s)", i, symbol)
}

//scatteringFactor evaluates the atomic X-ray scattering factor for one
//site at s^2 = (g/2)^2, via the Mott-Bethe relation over the 4-term
//Gaussian fit.
func scatteringFactor(z float64, coeff knet.ScatteringCoeffs, s2 float64) float64 {
	sum := 0.0
	for _, ab := range coeff {
		sum += ab[0] * math.Exp(-ab[1]*s2)
	}
	return z - mottBethe*s2*sum
}

//structureFactor sums f_j * occu_j * exp(2*pi*i * g.r_j) over all
//(flattened) sites for the reciprocal point hkl.
func structureFactor(f *flatSites, hkl [3]int, s2 float64) complex128 {
	var F complex128
	for j := range f.zs {
		gr := float64(hkl[0])*f.coords[j][0] +
			float64(hkl[1])*f.coords[j][1] +
			float64(hkl[2])*f.coords[j][2]
		fs := scatteringFactor(f.zs[j], f.coeffs[j], s2)
		F += complex(fs*f.occus[j], 0) * cmplx.Exp(complex(0, 2*math.Pi*gr))
	}
	return F
}

//lorentzFactor is the Lorentz-polarization correction
//(1+cos^2(2theta)) / (sin^2(theta) cos(theta)). It diverges at theta=0
//and theta=90 degrees, both of which are excluded by the origin and
//limiting-sphere filters of the enumerator.
func lorentzFactor(theta float64) float64 {
	c := math.Cos(2 * theta)
	return (1 + c*c) / (math.Sin(theta) * math.Sin(theta) * math.Cos(theta))
}
