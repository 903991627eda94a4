/*
 * radiation.go, part of deepKNet.
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

import "fmt"

//Diffractometer radiation wavelengths in Angstrom, keyed by the usual
//anode/line names (Ka is the intensity-weighted Ka1/Ka2 average). The
//"mywave" entry is a plain 1 Angstrom probe kept for parity with the
//datasets generated before this rewrite.
var wavelengths = map[string]float64{
	"CrKa2":  2.29361,
	"CrKa":   2.29100,
	"CrKa1":  2.28970,
	"CrKb1":  2.08487,
	"FeKa2":  1.93998,
	"FeKa":   1.93735,
	"FeKa1":  1.93604,
	"CoKa2":  1.79285,
	"CoKa":   1.79026,
	"CoKa1":  1.78896,
	"FeKb1":  1.75661,
	"CoKb1":  1.63079,
	"CuKa2":  1.54439,
	"CuKa":   1.54184,
	"CuKa1":  1.54056,
	"CuKb1":  1.39222,
	"mywave": 1.0000,
	"MoKa2":  0.71359,
	"MoKa":   0.71073,
	"MoKa1":  0.70930,
	"MoKb1":  0.63229,
	"AgKa2":  0.563813,
	"AgKa":   0.560885,
	"AgKa1":  0.559421,
	"AgKb1":  0.497082,
}

//Wavelength resolves a symbolic radiation name (e.g. "CuKa") to its
//wavelength in Angstrom. An unknown name is a hard error.
func Wavelength(name string) (float64, error) {
	w, ok := wavelengths[name]
	if !ok {
		return 0, fmt.Errorf("knet.Wavelength: unknown radiation %q", name)
	}
	return w, nil
}
