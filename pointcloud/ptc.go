/*
 * ptc.go, part of deepKNet.
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

//ptc is the on-disk format for point clouds. A ptc file is ASCII
//compressed with z-standard. It starts with a header of key=value lines
//(free-form metadata: material id, point budget, radiation, neutron
//flag), terminated by a line starting with "**" followed by the number
//of points. Then one line per point with four floating-point numbers:
//x y z intensity. The cloud ends with a single "*" line. The "**"
//sequence may only appear as the header terminator.

package pointcloud

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//PtcW writes one point cloud to a zstd-compressed ptc file.
type PtcW struct {
	f         *os.File
	h         *zstd.Encoder
	filename  string
	writeable bool
}

//NewWriter opens filename for writing and emits the header. The header
//map is written as key=value lines in sorted key order, so identical
//inputs produce identical files.
func NewWriter(filename string, header map[string]string) (*PtcW, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, err.Error(), []string{"NewWriter"}, true}
	}
	h, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, Error{err.Error(), filename, "", []string{"NewWriter"}, true}
	}
	W := &PtcW{f: f, h: h, filename: filename, writeable: true}
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.ContainsAny(k, "=\n") || strings.Contains(header[k], "\n") {
			W.Close()
			return nil, Error{WrongFormat, filename, "header key/value with = or newline", []string{"NewWriter"}, true}
		}
		if _, err := fmt.Fprintf(h, "%s=%s\n", k, header[k]); err != nil {
			W.Close()
			return nil, Error{err.Error(), filename, "", []string{"NewWriter"}, true}
		}
	}
	return W, nil
}

//WCloud writes the points as the file's cloud. It may be called only
//once per file.
func (W *PtcW) WCloud(points []Point) error {
	if W == nil {
		return Error{CloudUnIniWrite, "", "", []string{"WCloud"}, true}
	}
	if !W.writeable {
		return Error{CloudUnIniWrite, W.filename, "", []string{"WCloud"}, true}
	}
	if _, err := fmt.Fprintf(W.h, "** %d\n", len(points)); err != nil {
		return Error{err.Error(), W.filename, "", []string{"WCloud"}, true}
	}
	for _, p := range points {
		_, err := fmt.Fprintf(W.h, "%.8f %.8f %.8f %.8f\n", p.X, p.Y, p.Z, p.Intensity)
		if err != nil {
			return Error{err.Error(), W.filename, "", []string{"WCloud"}, true}
		}
	}
	if _, err := fmt.Fprintln(W.h, "*"); err != nil {
		return Error{err.Error(), W.filename, "", []string{"WCloud"}, true}
	}
	W.writeable = false
	return nil
}

//Close flushes and closes the underlying compressor and file. It is
//safe to call on an already-closed writer.
func (W *PtcW) Close() error {
	if W == nil || W.h == nil {
		return nil
	}
	err := W.h.Close()
	err2 := W.f.Close()
	W.h = nil
	W.writeable = false
	if err != nil {
		return Error{err.Error(), W.filename, "", []string{"Close"}, true}
	}
	if err2 != nil {
		return Error{err2.Error(), W.filename, "", []string{"Close"}, true}
	}
	return nil
}

//PtcR reads a ptc file.
type PtcR struct {
	f        *os.File
	h        *zstd.Decoder
	br       *bufio.Reader
	filename string
	header   map[string]string
	npoints  int
	readable bool
}

//NewReader opens filename and parses the header, leaving the reader
//positioned at the first point row.
func NewReader(filename string) (*PtcR, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, err.Error(), []string{"NewReader"}, true}
	}
	h, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, Error{err.Error(), filename, "", []string{"NewReader"}, true}
	}
	R := &PtcR{f: f, h: h, br: bufio.NewReader(h), filename: filename, header: map[string]string{}}
	for {
		line, err := R.br.ReadString('\n')
		if err != nil {
			R.Close()
			return nil, Error{WrongFormat, filename, "EOF inside header", []string{"NewReader"}, true}
		}
		line = strings.TrimRight(line, "\n")
		if strings.HasPrefix(line, "**") {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "**")))
			if err != nil || n < 0 {
				R.Close()
				return nil, Error{WrongFormat, filename, "bad point count: " + line, []string{"NewReader"}, true}
			}
			R.npoints = n
			break
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			R.Close()
			return nil, Error{WrongFormat, filename, "header line without =: " + line, []string{"NewReader"}, true}
		}
		R.header[k] = v
	}
	R.readable = true
	return R, nil
}

//Header returns the metadata parsed from the file header.
func (R *PtcR) Header() map[string]string {
	return R.header
}

//Len returns the number of points announced by the header terminator.
func (R *PtcR) Len() int {
	return R.npoints
}

//RCloud reads the cloud. It may be called only once per file.
func (R *PtcR) RCloud() ([]Point, error) {
	if R == nil {
		return nil, Error{CloudUnIniRead, "", "", []string{"RCloud"}, true}
	}
	if !R.readable {
		return nil, Error{CloudUnIniRead, R.filename, "", []string{"RCloud"}, true}
	}
	points := make([]Point, 0, R.npoints)
	for i := 0; i < R.npoints; i++ {
		line, err := R.br.ReadString('\n')
		if err != nil {
			return nil, Error{WrongFormat, R.filename, "EOF inside cloud", []string{"RCloud"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, Error{WrongFormat, R.filename, "point row: " + strings.TrimSpace(line), []string{"RCloud"}, true}
		}
		var vals [4]float64
		for j, fld := range fields {
			vals[j], err = strconv.ParseFloat(fld, 64)
			if err != nil {
				return nil, Error{WrongFormat, R.filename, "point row: " + strings.TrimSpace(line), []string{"RCloud"}, true}
			}
		}
		points = append(points, Point{vals[0], vals[1], vals[2], vals[3]})
	}
	line, err := R.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, Error{err.Error(), R.filename, "", []string{"RCloud"}, true}
	}
	if strings.TrimSpace(line) != "*" {
		return nil, Error{WrongFormat, R.filename, "missing cloud terminator", []string{"RCloud"}, true}
	}
	R.readable = false
	return points, nil
}

//Close releases the decompressor and the file. It is safe to call on an
//already-closed reader.
func (R *PtcR) Close() error {
	if R == nil || R.h == nil {
		return nil
	}
	R.h.Close()
	R.h = nil
	R.readable = false
	if err := R.f.Close(); err != nil {
		return Error{err.Error(), R.filename, "", []string{"Close"}, true}
	}
	return nil
}
