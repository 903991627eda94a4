/*
 * doc.go, part of deepKNet.
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

/*Package knet provides the crystal-structure model and the static atomic
data tables used by the deepKNet diffraction data-generation pipeline.

The root package holds what every other package needs: the Lattice type
with its crystallographic reciprocal basis (the inverse transpose of the
real-space basis, with no 2pi factor), the Site and Crystal types, the
element to atomic-number table, the 4-term Gaussian atomic scattering
coefficient table, and the table of common diffractometer radiation
wavelengths.

The actual physics lives in the subpackages: xrd computes diffraction
patterns and per-reflection point-cloud features, pointcloud turns feature
lists into fixed-size point clouds and writes/reads the compressed dataset
files, dataset splits a corpus into train/valid/test and runs the batch
generation pipeline, and xrdplot renders patterns.

All packages in this library return errors implementing the knet.Error
interface, which allows decorating an error with the call path as it
propagates.
*/
package knet
