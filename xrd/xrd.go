/*
 * xrd.go, part of deepKNet.
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

/*Package xrd computes simulated X-ray diffraction patterns of crystal
structures, following the formalism of Chapters 11 and 12 of De Graef and
McHenry, Structure of Materials. The computation goes through all
reciprocal lattice points within the limiting sphere of radius 2/lambda,
so no multiplicity correction is needed: symmetry-equivalent facets are
enumerated explicitly. Atomic scattering factors and the Lorentz
polarization factor are taken into account; the Debye-Waller temperature
factor is not.

Besides the merged, human-readable pattern, every call also produces a
per-reflection feature list for point-cloud models: one row per unmerged
reciprocal point carrying (h, k, l) and the intensity divided by the
squared cell volume, preceded by a synthetic origin row whose intensity
is the squared electron density (total electron count over cell volume).
The feature list is never merged, filtered, or scaled.

A Simulator is pure and safe for concurrent use across independent
structures: it only reads the immutable scattering tables of the root
package.
*/
package xrd

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	knet "github.com/usccolumbia/deepKNet"
)

//Simulator computes diffraction patterns for a fixed radiation
//wavelength.
type Simulator struct {
	wavelength float64 //Angstrom
}

//New returns a Simulator for a wavelength given in Angstrom. The
//wavelength must be positive.
func New(lambda float64) (*Simulator, error) {
	if lambda <= 0 {
		return nil, Error{NonPositiveWavelength, fmt.Sprintf("%g", lambda), []string{"New"}, true}
	}
	return &Simulator{wavelength: lambda}, nil
}

//NewRadiation returns a Simulator for a symbolic radiation name, e.g.
//"CuKa" or "MoKa1", resolved through the knet wavelength table.
func NewRadiation(name string) (*Simulator, error) {
	w, err := knet.Wavelength(name)
	if err != nil {
		return nil, Error{UnknownRadiation, name, []string{"NewRadiation"}, true}
	}
	return New(w)
}

//Wavelength returns the simulator's wavelength in Angstrom.
func (S *Simulator) Wavelength() float64 {
	return S.wavelength
}

//Options controls a Pattern computation. The zero value is not the
//default: use DefaultOptions, or pass nil to Pattern.
type Options struct {
	//ScaleIntensity normalizes the pattern so that the maximum peak
	//intensity is 100. Use false to keep absolute values, e.g. to
	//combine several patterns in one plot. The feature list is never
	//scaled either way.
	ScaleIntensity bool
	//TwoThetaRange restricts the pattern to a 2theta sub-range. Only
	//the full limiting sphere is supported: any non-nil value is
	//rejected before computation, since silently widening the range
	//would produce a pattern the caller did not ask for.
	TwoThetaRange *[2]float64
	//Symprec is a symmetry-refinement precision. Refinement is an
	//external concern: any non-zero value is rejected before
	//computation.
	Symprec float64
}

//DefaultOptions returns the default Pattern options: scaled intensities,
//full sphere, no symmetry refinement.
func DefaultOptions() *Options {
	return &Options{ScaleIntensity: true}
}

//Feature is one row of the point-cloud feature list: a raw Miller index
//triple and its volume-normalized intensity I_hkl / V^2. The first row
//of every feature list is the synthetic origin (0,0,0) with intensity
//(total electrons / V)^2, the forward-scattering term.
type Feature struct {
	H, K, L   int
	Intensity float64
}

//Pattern computes the diffraction pattern and the point-cloud feature
//list of a crystal. It returns the merged pattern, the unmerged feature
//list, and the crystallographic reciprocal basis used, which downstream
//consumers need for geometric projection. A nil opts means
//DefaultOptions.
//
//Either all three outputs are produced or the call fails; there is no
//partial-result mode, and since the computation is deterministic there
//are no retry semantics.
func (S *Simulator) Pattern(c *knet.Crystal, opts *Options) (*Pattern, []Feature, *mat.Dense, error) {
	if c == nil {
		return nil, nil, nil, Error{NilCrystal, "", []string{"Pattern"}, true}
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Symprec != 0 {
		return nil, nil, nil, Error{SymprecUnsupported, fmt.Sprintf("symprec=%g", opts.Symprec), []string{"Pattern"}, true}
	}
	if opts.TwoThetaRange != nil {
		return nil, nil, nil, Error{RangeUnsupported, fmt.Sprintf("%v", *opts.TwoThetaRange), []string{"Pattern"}, true}
	}
	latt := c.Lattice()
	volume := c.Volume()
	isHex := latt.IsHexagonal()

	pts, err := reciprocalPoints(latt, S.wavelength)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "Pattern")
	}
	sites, err := flatten(c)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "Pattern")
	}

	features := make([]Feature, 0, len(pts)+1)
	features = append(features, Feature{0, 0, 0, (sites.total / volume) * (sites.total / volume)})

	acc := &accumulator{}
	totalSq := sites.total * sites.total
	for _, pt := range pts {
		dHkl := 1.0 / pt.g
		sinTheta := S.wavelength * pt.g / 2
		if sinTheta > 1 {
			//cannot happen after the sphere filter, but asin must
			//never see an out-of-domain argument
			return nil, nil, nil, Error{BraggDomain,
				fmt.Sprintf("hkl=%v g=%g", pt.hkl, pt.g), []string{"Pattern"}, true}
		}
		theta := math.Asin(sinTheta)
		s := pt.g / 2
		s2 := s * s

		F := structureFactor(sites, pt.hkl, s2)
		iHkl := real(F * cmplx.Conj(F))
		if iHkl >= totalSq {
			//physical bound |F|^2 < (sum Z)^2; a violation is a bug
			//in the computation, not a property of the input
			return nil, nil, nil, Error{IntensityOverflow,
				fmt.Sprintf("hkl=%v I=%g bound=%g", pt.hkl, iHkl, totalSq), []string{"Pattern"}, true}
		}
		features = append(features, Feature{pt.hkl[0], pt.hkl[1], pt.hkl[2], iHkl / (volume * volume)})

		//pattern bookkeeping only, from here on
		twoTheta := 2 * theta * knet.Rad2Deg
		hkl := []int{pt.hkl[0], pt.hkl[1], pt.hkl[2]}
		if isHex {
			//Miller-Bravais indices for hexagonal lattices
			hkl = []int{pt.hkl[0], pt.hkl[1], -pt.hkl[0] - pt.hkl[1], pt.hkl[2]}
		}
		acc.add(twoTheta, iHkl*lorentzFactor(theta), hkl, dHkl)
	}
	pattern, err := acc.pattern(opts.ScaleIntensity)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "Pattern")
	}
	return pattern, features, latt.Recip(), nil
}
