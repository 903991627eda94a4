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

package knet

//Error is the interface for errors that the packages in this library
//implement. The Decorate method adds the name of the caller to the
//error as it propagates, and returns the accumulated call path.
//Critical distinguishes errors that invalidate the whole computation
//from those a caller may choose to tolerate.
type Error interface {
	error
	Decorate(string) []string
	Critical() bool
}
