/*
 * split.go, part of deepKNet.
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

//Package dataset turns a corpus of crystals into training-ready point
//cloud files: a deterministic train/valid/test partition, an id_prop.csv
//per partition, and one ptc file per material, generated in parallel.
package dataset

import (
	"encoding/csv"
	"math/rand"
	"os"
	"strconv"

	knet "github.com/usccolumbia/deepKNet"
)

//Entry is one material of the corpus: an identifier (say, a Materials
//Project id), the structure, and the target property to learn.
type Entry struct {
	ID       string
	Crystal  *knet.Crystal
	Property float64
}

//Splits holds the three partitions of a corpus.
type Splits struct {
	Train []Entry
	Valid []Entry
	Test  []Entry
}

//Split shuffles the entries with the given seed and partitions them
//60/20/20 into train, valid and test. The same entries and seed always
//produce the same partition. Entry ids must be unique and non-empty.
func Split(entries []Entry, seed int64) (*Splits, error) {
	if len(entries) == 0 {
		return nil, Error{EmptyCorpus, "", "", []string{"Split"}, true}
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, Error{EmptyID, "", "", []string{"Split"}, true}
		}
		if seen[e.ID] {
			return nil, Error{DuplicateID, e.ID, "", []string{"Split"}, true}
		}
		seen[e.ID] = true
	}
	shuffled := make([]Entry, len(entries))
	copy(shuffled, entries)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	ntrain := int(0.6 * float64(len(shuffled)))
	nvalid := int(0.2 * float64(len(shuffled)))
	return &Splits{
		Train: shuffled[:ntrain],
		Valid: shuffled[ntrain : ntrain+nvalid],
		Test:  shuffled[ntrain+nvalid:],
	}, nil
}

//WriteIDProp writes the entries as an id_prop.csv file: one id,property
//row per entry, no header row.
func WriteIDProp(entries []Entry, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return Error{UnableToWrite, "", err.Error(), []string{"WriteIDProp"}, true}
	}
	w := csv.NewWriter(f)
	for _, e := range entries {
		err := w.Write([]string{e.ID, strconv.FormatFloat(e.Property, 'g', -1, 64)})
		if err != nil {
			f.Close()
			return Error{UnableToWrite, e.ID, err.Error(), []string{"WriteIDProp"}, true}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return Error{UnableToWrite, "", err.Error(), []string{"WriteIDProp"}, true}
	}
	if err := f.Close(); err != nil {
		return Error{UnableToWrite, "", err.Error(), []string{"WriteIDProp"}, true}
	}
	return nil
}
