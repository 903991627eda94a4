/*
 * scattering.go, part of deepKNet.
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

//ScatteringCoeffs is one element's entry of the atomic scattering table:
//four (a_i, b_i) pairs of a Gaussian fit to the elastic electron
//scattering factor, f_e(s) = sum_i a_i exp(-b_i s^2), with s in 1/Angstrom.
//The X-ray scattering factor follows through the Mott-Bethe relation,
//which is applied in the xrd package.
type ScatteringCoeffs [4][2]float64

//Four-Gaussian fits from Doyle and Turner, Acta Cryst. A24, 390 (1968),
//as tabulated in De Graef and McHenry, Structure of Materials. Elements
//without a fitted entry are deliberately absent: looking them up is a
//hard error rather than a silent zero. The table is read-only for the
//process lifetime.
var scatteringCoeffs = map[string]ScatteringCoeffs{
	"H":  {{0.202, 30.868}, {0.244, 8.544}, {0.082, 1.273}, {0.000, 0.000}},
	"He": {{0.091, 18.183}, {0.181, 6.212}, {0.110, 1.803}, {0.036, 0.284}},
	"Li": {{1.611, 107.638}, {1.246, 30.480}, {0.326, 4.533}, {0.099, 0.495}},
	"Be": {{1.250, 60.804}, {1.334, 18.591}, {0.360, 3.653}, {0.106, 0.416}},
	"B":  {{0.945, 46.444}, {1.312, 14.178}, {0.419, 3.223}, {0.116, 0.377}},
	"C":  {{0.731, 36.995}, {1.195, 11.297}, {0.456, 2.814}, {0.125, 0.346}},
	"N":  {{0.572, 28.847}, {1.043, 9.054}, {0.465, 2.421}, {0.131, 0.317}},
	"O":  {{0.455, 23.780}, {0.917, 7.622}, {0.472, 2.144}, {0.138, 0.296}},
	"F":  {{0.387, 20.239}, {0.811, 6.609}, {0.475, 1.931}, {0.146, 0.279}},
	"Ne": {{0.303, 17.640}, {0.720, 5.860}, {0.475, 1.762}, {0.153, 0.266}},
	"Na": {{2.241, 108.004}, {1.333, 24.505}, {0.907, 3.391}, {0.286, 0.435}},
	"Mg": {{2.268, 73.670}, {1.803, 20.175}, {0.839, 3.013}, {0.289, 0.405}},
	"Al": {{2.276, 72.322}, {2.428, 19.773}, {0.858, 3.080}, {0.317, 0.408}},
	"Si": {{2.129, 57.775}, {2.533, 16.476}, {0.835, 2.880}, {0.322, 0.386}},
	"P":  {{1.888, 44.876}, {2.469, 13.538}, {0.805, 2.642}, {0.320, 0.361}},
	"S":  {{1.659, 36.650}, {2.386, 11.488}, {0.790, 2.469}, {0.321, 0.340}},
	"Cl": {{1.452, 30.935}, {2.292, 9.980}, {0.787, 2.234}, {0.322, 0.323}},
	"Ar": {{1.274, 26.682}, {2.190, 8.813}, {0.793, 2.219}, {0.326, 0.307}},
	"K":  {{3.951, 137.075}, {2.545, 22.402}, {1.980, 4.532}, {0.482, 0.434}},
	"Ca": {{4.470, 99.523}, {2.971, 22.696}, {1.970, 4.195}, {0.482, 0.417}},
	"Ti": {{3.565, 81.982}, {2.818, 19.049}, {1.893, 3.590}, {0.483, 0.386}},
	"Cr": {{2.307, 78.405}, {2.334, 15.785}, {1.823, 3.157}, {0.490, 0.364}},
	"Mn": {{2.747, 67.786}, {2.456, 15.674}, {1.792, 3.000}, {0.498, 0.357}},
	"Fe": {{2.544, 64.424}, {2.343, 14.880}, {1.759, 2.854}, {0.506, 0.350}},
	"Co": {{2.367, 61.431}, {2.236, 14.180}, {1.724, 2.725}, {0.515, 0.344}},
	"Ni": {{2.210, 58.727}, {2.134, 13.553}, {1.689, 2.609}, {0.524, 0.339}},
	"Cu": {{1.579, 62.940}, {1.820, 12.453}, {1.658, 2.504}, {0.532, 0.333}},
	"Zn": {{1.942, 54.162}, {1.950, 12.518}, {1.619, 2.416}, {0.543, 0.330}},
	"Ga": {{2.321, 65.602}, {2.486, 15.458}, {1.688, 2.581}, {0.599, 0.351}},
	"Ge": {{2.447, 55.893}, {2.702, 14.393}, {1.616, 2.446}, {0.601, 0.342}},
	"As": {{2.399, 45.718}, {2.790, 12.817}, {1.529, 2.280}, {0.594, 0.328}},
	"Se": {{2.298, 38.830}, {2.854, 11.536}, {1.456, 2.146}, {0.590, 0.316}},
	"Br": {{2.166, 33.899}, {2.904, 10.497}, {1.395, 2.041}, {0.589, 0.307}},
	"Rb": {{4.776, 140.782}, {3.859, 18.991}, {2.234, 3.701}, {0.868, 0.419}},
	"Sr": {{5.848, 104.972}, {4.003, 19.367}, {2.342, 3.737}, {0.880, 0.414}},
	"Ag": {{2.036, 61.497}, {3.272, 11.824}, {2.511, 2.846}, {0.837, 0.327}},
	"Cd": {{2.574, 55.675}, {3.259, 11.838}, {2.547, 2.784}, {0.838, 0.322}},
	"In": {{3.153, 66.649}, {3.557, 14.449}, {2.818, 2.976}, {0.884, 0.335}},
	"Sb": {{3.564, 50.487}, {3.844, 13.316}, {2.687, 2.691}, {0.864, 0.316}},
	"I":  {{3.473, 39.441}, {4.060, 11.816}, {2.522, 2.415}, {0.840, 0.298}},
	"Cs": {{6.062, 155.837}, {5.986, 19.695}, {3.303, 3.335}, {1.096, 0.379}},
	"Ba": {{7.821, 117.657}, {6.004, 18.778}, {3.280, 3.263}, {1.103, 0.376}},
	"Au": {{2.388, 42.866}, {4.226, 9.743}, {2.689, 2.264}, {1.255, 0.307}},
	"Hg": {{2.682, 42.822}, {4.241, 9.856}, {2.755, 2.295}, {1.270, 0.307}},
	"Pb": {{3.510, 52.914}, {4.552, 11.884}, {3.154, 2.571}, {1.359, 0.321}},
}

//GetScatteringCoeffs returns the scattering-coefficient entry for an
//element symbol. A symbol with no fitted coefficients is a hard error:
//a structure containing such an element cannot have its diffraction
//pattern computed, and silently dropping the site would produce a
//physically wrong pattern.
func GetScatteringCoeffs(symbol string) (ScatteringCoeffs, error) {
	c, ok := scatteringCoeffs[symbol]
	if !ok {
		return ScatteringCoeffs{}, fmt.Errorf("knet.GetScatteringCoeffs: no scattering coefficients for %q", symbol)
	}
	return c, nil
}
