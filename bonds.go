/*
 * bonds.go, part of gochemfiles.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package chem

import (
	"cmp"
	"slices"
)

// Bond is an unordered pair of atom indexes, stored with
// the smallest index first.
type Bond [2]int

// NewBond returns the canonical bond between atoms i and j.
// It returns an error if i==j.
func NewBond(i, j int) (Bond, error) {
	if i == j {
		return Bond{}, NewError(ErrOutOfBounds, "NewBond", "can't have a bond between atom %d and itself", i)
	}
	if i > j {
		i, j = j, i
	}
	return Bond{i, j}, nil
}

// Cross returns the atom bonded to origin through B, or -1 if origin is
// not part of the bond.
func (B Bond) Cross(origin int) int {
	switch origin {
	case B[0]:
		return B[1]
	case B[1]:
		return B[0]
	}
	return -1
}

// Angle is a triple of atoms i, j, k where i-j and j-k are bonds.
// The canonical form has i<k.
type Angle [3]int

// NewAngle returns the canonical angle i-j-k. It returns an error if an atom
// is repeated.
func NewAngle(i, j, k int) (Angle, error) {
	if i == j || j == k || i == k {
		return Angle{}, NewError(ErrOutOfBounds, "NewAngle", "can't have the same atom twice in an angle (%d, %d, %d)", i, j, k)
	}
	if i > k {
		i, k = k, i
	}
	return Angle{i, j, k}, nil
}

// Dihedral is a quadruple of atoms i, j, k, m where i-j, j-k and k-m are bonds.
// The canonical form has max(i,j) < max(k,m).
type Dihedral [4]int

// NewDihedral returns the canonical dihedral i-j-k-m. It returns an error if
// an atom is repeated.
func NewDihedral(i, j, k, m int) (Dihedral, error) {
	if i == j || j == k || k == m || i == k || j == m || i == m {
		return Dihedral{}, NewError(ErrOutOfBounds, "NewDihedral", "can't have the same atom twice in a dihedral (%d, %d, %d, %d)", i, j, k, m)
	}
	if max(i, j) < max(k, m) {
		return Dihedral{i, j, k, m}, nil
	}
	return Dihedral{m, k, j, i}, nil
}

func compareBonds(a, b Bond) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}
	return cmp.Compare(a[1], b[1])
}

func compareAngles(a, b Angle) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareDihedrals(a, b Dihedral) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Connectivity stores the bonds in a system. Bonds are the only
// real data; angles and dihedrals are derived from them on each call,
// so the read methods never modify the Connectivity and can be used
// from several goroutines at once.
// Connectivity doesn't know how many atoms exist, range checks
// belong to the Topology.
type Connectivity struct {
	bonds []Bond //sorted, no repetitions
}

// AddBond adds a bond between i and j. It does nothing if the bond
// already exists, and returns an error if i==j.
func (C *Connectivity) AddBond(i, j int) error {
	b, err := NewBond(i, j)
	if err != nil {
		return errDecorate(err, "AddBond")
	}
	pos, found := slices.BinarySearchFunc(C.bonds, b, compareBonds)
	if found {
		return nil
	}
	C.bonds = slices.Insert(C.bonds, pos, b)
	return nil
}

// RemoveBond removes the bond between i and j, if any.
func (C *Connectivity) RemoveBond(i, j int) {
	if i == j {
		return
	}
	b, _ := NewBond(i, j)
	pos, found := slices.BinarySearchFunc(C.bonds, b, compareBonds)
	if !found {
		return
	}
	C.bonds = slices.Delete(C.bonds, pos, pos+1)
}

// Clear removes all bonds, and hence all angles and dihedrals.
func (C *Connectivity) Clear() {
	C.bonds = nil
}

// IsBond returns true if i and j are bonded.
func (C *Connectivity) IsBond(i, j int) bool {
	if i == j {
		return false
	}
	b, _ := NewBond(i, j)
	_, found := slices.BinarySearchFunc(C.bonds, b, compareBonds)
	return found
}

// IsAngle returns true if i-j and j-k are bonds, and i!=k.
func (C *Connectivity) IsAngle(i, j, k int) bool {
	return i != k && C.IsBond(i, j) && C.IsBond(j, k)
}

// IsDihedral returns true if i-j, j-k and k-m are bonds and
// no atom is repeated.
func (C *Connectivity) IsDihedral(i, j, k, m int) bool {
	if i == k || j == m || i == m {
		return false
	}
	return C.IsBond(i, j) && C.IsBond(j, k) && C.IsBond(k, m)
}

// Bonds returns a copy of the bonds, in lexicographic order.
func (C *Connectivity) Bonds() []Bond {
	return slices.Clone(C.bonds)
}

// Angles returns all the angles derived from the current bonds, in lexicographic
// order of their canonical form.
func (C *Connectivity) Angles() []Angle {
	return C.angles(C.adjacency())
}

// Dihedrals returns all the dihedrals derived from the current bonds, in lexicographic
// order of their canonical form.
func (C *Connectivity) Dihedrals() []Dihedral {
	return C.dihedrals(C.adjacency())
}

// Neighbors returns the atoms bonded to atom i, in increasing order.
func (C *Connectivity) Neighbors(i int) []int {
	ret := make([]int, 0, 4)
	for _, b := range C.bonds {
		if c := b.Cross(i); c >= 0 {
			ret = append(ret, c)
		}
	}
	slices.Sort(ret)
	return ret
}

// adjacency returns the neighbors of every atom that appears in a bond.
func (C *Connectivity) adjacency() map[int][]int {
	adj := make(map[int][]int)
	for _, b := range C.bonds {
		adj[b[0]] = append(adj[b[0]], b[1])
		adj[b[1]] = append(adj[b[1]], b[0])
	}
	return adj
}

// angles builds the angles from the adjacency lists.
func (C *Connectivity) angles(adj map[int][]int) []Angle {
	angles := make([]Angle, 0, 2*len(C.bonds))
	for j, neigh := range adj {
		for a := 0; a < len(neigh); a++ {
			for b := a + 1; b < len(neigh); b++ {
				angle, err := NewAngle(neigh[a], j, neigh[b])
				if err != nil {
					continue //can't happen with a valid bond set
				}
				angles = append(angles, angle)
			}
		}
	}
	slices.SortFunc(angles, compareAngles)
	return slices.CompactFunc(angles, func(a, b Angle) bool { return a == b })
}

// dihedrals builds the dihedrals from the adjacency lists. Every
// bond is the central j-k bond of its dihedrals.
func (C *Connectivity) dihedrals(adj map[int][]int) []Dihedral {
	dihedrals := make([]Dihedral, 0, 2*len(C.bonds))
	for _, b := range C.bonds {
		j, k := b[0], b[1]
		for _, i := range adj[j] {
			if i == k {
				continue
			}
			for _, m := range adj[k] {
				if m == j || m == i {
					continue
				}
				d, err := NewDihedral(i, j, k, m)
				if err != nil {
					continue
				}
				dihedrals = append(dihedrals, d)
			}
		}
	}
	slices.SortFunc(dihedrals, compareDihedrals)
	return slices.CompactFunc(dihedrals, func(a, b Dihedral) bool { return a == b })
}

// removeAtom deletes every bond involving atom i and shifts
// every index greater than i down by one.
func (C *Connectivity) removeAtom(i int) {
	bonds := make([]Bond, 0, len(C.bonds))
	for _, b := range C.bonds {
		if b[0] == i || b[1] == i {
			continue
		}
		if b[0] > i {
			b[0]--
		}
		if b[1] > i {
			b[1]--
		}
		bonds = append(bonds, b)
	}
	//shifting both indexes of a bond by the same amount, or only the
	//larger one, keeps the lexicographic order.
	C.bonds = bonds
}

// copy returns a deep copy of the connectivity.
func (C *Connectivity) copy() Connectivity {
	return Connectivity{bonds: slices.Clone(C.bonds)}
}
