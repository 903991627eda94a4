/*
 * families.go, part of deepKNet.
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

import "sort"

//Family is one symmetry family of Miller indices contributing to a
//merged peak: a canonical representative index (3 indices, or 4 in the
//Miller-Bravais convention for hexagonal lattices) and the number of
//contributing reflections.
type Family struct {
	Index        []int
	Multiplicity int
}

//samePerm reports whether two index tuples belong to the same family,
//i.e. whether their absolute values are permutations of each other.
func samePerm(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	sa := make([]int, len(a))
	sb := make([]int, len(b))
	for i := range a {
		sa[i] = abs(a[i])
		sb[i] = abs(b[i])
	}
	sort.Ints(sa)
	sort.Ints(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

//lexLess is the lexicographic order on index tuples, used to pick the
//family representative.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

//uniqueFamilies reduces the raw index tuples contributing to one peak to
//its unique families. The representative of each family is its
//lexicographically greatest member, and families are returned in order
//of first appearance, which keeps the output deterministic.
func uniqueFamilies(hkls [][]int) []Family {
	type group struct {
		rep   []int
		count int
	}
	var groups []*group
	for _, hkl := range hkls {
		found := false
		for _, g := range groups {
			if samePerm(hkl, g.rep) {
				g.count++
				if lexLess(g.rep, hkl) {
					g.rep = hkl
				}
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, &group{rep: hkl, count: 1})
		}
	}
	fams := make([]Family, len(groups))
	for i, g := range groups {
		fams[i] = Family{Index: g.rep, Multiplicity: g.count}
	}
	return fams
}
