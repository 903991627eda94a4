/*
 * crystal.go, part of deepKNet.
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

package knet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Tolerances for the hexagonal-lattice test. Angles in degrees,
//lengths in Angstrom. These match the conventional-cell checks used
//when the source database was curated.
const (
	hexAngleTol  = 5.0
	hexLengthTol = 0.01
)

//Lattice represents a real-space crystal lattice and its derived
//crystallographic reciprocal lattice. The basis is a 3x3 matrix whose
//rows are the lattice vectors a, b and c, in Angstrom. A Lattice is
//immutable once built.
type Lattice struct {
	basis  *mat.Dense //rows are a, b, c
	recip  *mat.Dense //inverse transpose of basis, no 2pi factor
	volume float64
}

//NewLattice builds a Lattice from a 3x3 real-space basis matrix, deriving
//the reciprocal basis and the cell volume. It returns an error if the
//matrix is not 3x3 or is singular (i.e. the vectors do not span a cell).
func NewLattice(basis *mat.Dense) (*Lattice, error) {
	r, c := basis.Dims()
	if r != 3 || c != 3 {
		return nil, fmt.Errorf("knet.NewLattice: basis must be 3x3, got %dx%d", r, c)
	}
	vol := math.Abs(mat.Det(basis))
	if vol < 1e-10 {
		return nil, fmt.Errorf("knet.NewLattice: singular basis, cell volume %g", vol)
	}
	var inv mat.Dense
	if err := inv.Inverse(basis); err != nil {
		return nil, fmt.Errorf("knet.NewLattice: %v", err)
	}
	recip := mat.DenseCopyOf(inv.T())
	return &Lattice{basis: mat.DenseCopyOf(basis), recip: recip, volume: vol}, nil
}

//LatticeFromParameters builds a Lattice from the six conventional cell
//parameters: lengths a, b, c in Angstrom and angles alpha, beta, gamma in
//degrees. The a vector is placed along x and the b vector in the xy plane,
//which is the usual crystallographic setting.
func LatticeFromParameters(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("knet.LatticeFromParameters: non-positive cell length")
	}
	alphaR := alpha * Deg2Rad
	betaR := beta * Deg2Rad
	gammaR := gamma * Deg2Rad
	cx := c * math.Cos(betaR)
	cy := c * (math.Cos(alphaR) - math.Cos(betaR)*math.Cos(gammaR)) / math.Sin(gammaR)
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= 0 {
		return nil, fmt.Errorf("knet.LatticeFromParameters: inconsistent cell angles %g %g %g", alpha, beta, gamma)
	}
	basis := mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * math.Cos(gammaR), b * math.Sin(gammaR), 0,
		cx, cy, math.Sqrt(cz2),
	})
	return NewLattice(basis)
}

//Basis returns a copy of the real-space basis matrix, rows a, b, c.
func (L *Lattice) Basis() *mat.Dense {
	return mat.DenseCopyOf(L.basis)
}

//Recip returns a copy of the crystallographic reciprocal basis, i.e. the
//inverse transpose of the real basis. Note that there is no 2pi factor:
//the length of a reciprocal vector g_hkl is 1/d_hkl.
func (L *Lattice) Recip() *mat.Dense {
	return mat.DenseCopyOf(L.recip)
}

//Volume returns the cell volume in cubic Angstrom.
func (L *Lattice) Volume() float64 {
	return L.volume
}

//RecipMetric returns the metric tensor of the reciprocal lattice,
//M = B* B*^T, so that |g_hkl|^2 = (h,k,l) M (h,k,l)^T.
func (L *Lattice) RecipMetric() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Mul(L.recip, L.recip.T())
	return m
}

//LengthsAndAngles returns the three cell lengths in Angstrom and the
//three cell angles alpha, beta, gamma in degrees.
func (L *Lattice) LengthsAndAngles() ([3]float64, [3]float64) {
	var lengths [3]float64
	var vecs [3][]float64
	for i := 0; i < 3; i++ {
		vecs[i] = L.basis.RawRowView(i)
		lengths[i] = math.Hypot(math.Hypot(vecs[i][0], vecs[i][1]), vecs[i][2])
	}
	var angles [3]float64
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3
		dot := vecs[j][0]*vecs[k][0] + vecs[j][1]*vecs[k][1] + vecs[j][2]*vecs[k][2]
		cos := dot / (lengths[j] * lengths[k])
		//clamp against rounding before acos
		cos = math.Max(-1, math.Min(1, cos))
		angles[i] = math.Acos(cos) * Rad2Deg
	}
	return lengths, angles
}

//IsHexagonal returns true if the lattice has hexagonal metric: two cell
//angles of 90 degrees, one of 60 or 120 degrees, and equal lengths for
//the two vectors spanning the hexagonal plane.
func (L *Lattice) IsHexagonal() bool {
	lengths, angles := L.LengthsAndAngles()
	var right, hex []int
	for i := 0; i < 3; i++ {
		if math.Abs(angles[i]-90) < hexAngleTol {
			right = append(right, i)
		} else if math.Abs(angles[i]-60) < hexAngleTol || math.Abs(angles[i]-120) < hexAngleTol {
			hex = append(hex, i)
		}
	}
	return len(right) == 2 && len(hex) == 1 &&
		math.Abs(lengths[right[0]]-lengths[right[1]]) < hexLengthTol
}

//Site is one atomic site of a crystal: a fractional coordinate in the
//unit cell, exactly one occupying species, and its occupancy fraction.
//Mixed occupancy at a single site is not representable, which is a
//deliberate restriction of the pipeline.
type Site struct {
	FracCoords [3]float64
	Symbol     string
	Z          int
	Occupancy  float64
}

//Crystal is a full crystal structure: a lattice plus the atomic sites of
//one unit cell. Build it with NewCrystal, which validates the sites.
type Crystal struct {
	lattice *Lattice
	sites   []Site
}

//NewCrystal builds a Crystal from a lattice and a list of sites. A zero
//Z is filled in from the element table and a zero occupancy defaults to
//1. It returns an error for an unknown element symbol or for a site
//with a non-positive occupancy. Fractional coordinates are expected in
//[0,1) by convention but this is not enforced.
func NewCrystal(latt *Lattice, sites []Site) (*Crystal, error) {
	if latt == nil {
		return nil, fmt.Errorf("knet.NewCrystal: nil lattice")
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("knet.NewCrystal: no sites")
	}
	s := make([]Site, len(sites))
	copy(s, sites)
	for i := range s {
		if s[i].Z == 0 {
			z, err := AtomicNumber(s[i].Symbol)
			if err != nil {
				return nil, fmt.Errorf("knet.NewCrystal: site %d: %v", i, err)
			}
			s[i].Z = z
		}
		if s[i].Occupancy == 0 {
			s[i].Occupancy = 1
		}
		if s[i].Occupancy < 0 {
			return nil, fmt.Errorf("knet.NewCrystal: site %d (%s): negative occupancy %g", i, s[i].Symbol, s[i].Occupancy)
		}
	}
	return &Crystal{lattice: latt, sites: s}, nil
}

//Lattice returns the crystal's lattice.
func (C *Crystal) Lattice() *Lattice {
	return C.lattice
}

//Sites returns the crystal's sites. The returned slice must not be
//modified.
func (C *Crystal) Sites() []Site {
	return C.sites
}

//Len returns the number of sites.
func (C *Crystal) Len() int {
	return len(C.sites)
}

//Volume returns the cell volume in cubic Angstrom.
func (C *Crystal) Volume() float64 {
	return C.lattice.Volume()
}

//TotalElectrons returns the sum of the atomic numbers over all sites,
//i.e. the electron count of the unit cell.
func (C *Crystal) TotalElectrons() int {
	t := 0
	for _, s := range C.sites {
		t += s.Z
	}
	return t
}
