/*
 * errors.go, part of deepKNet.
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

	knet "github.com/usccolumbia/deepKNet"
)

//errDecorate is a helper that asserts that the error implements
//knet.Error and decorates it with the caller's name before returning it.
//Used with an error of any other type, it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(knet.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the concrete error type of the xrd package. It fulfills
//knet.Error. The context field carries whatever identifies the failure
//(a site, an element symbol, an option value), or is empty.
type Error struct {
	message  string
	context  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.context == "" {
		return fmt.Sprintf("xrd error: %s", err.message)
	}
	return fmt.Sprintf("xrd error: %s: %s", err.message, err.context)
}

//Decorate adds new information to the error and returns the accumulated
//decoration.
func (E Error) Decorate(deco string) []string {
	//The receiver is not a pointer, but E.deco is a slice, hence a
	//pointer itself, so the append is visible to holders of the error.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical returns true if the error invalidates the whole computation.
func (err Error) Critical() bool { return err.critical }

const (
	NonPositiveWavelength = "non-positive wavelength"
	UnknownRadiation      = "unknown radiation name"
	RangeUnsupported      = "restricted two-theta range requested; the simulator always computes the full limiting sphere"
	SymprecUnsupported    = "non-zero symmetry precision requested; symmetry refinement is not performed here"
	OccupancyUnsupported  = "site with occupancy other than 1"
	MissingCoefficients   = "no scattering coefficients for element"
	BraggDomain           = "Bragg condition out of domain: lambda*g/2 > 1"
	IntensityOverflow     = "computed intensity exceeds the total-electron-count bound"
	EmptyPattern          = "no reciprocal points inside the limiting sphere"
	NilCrystal            = "given nil crystal"
)
