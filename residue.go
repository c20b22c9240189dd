/*
 * residue.go, part of gochemfiles.
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
	"fmt"
	"slices"
)

// Residue is a named, optionally numbered, group of atoms. A residue can
// be a monomer in a protein or nucleic acid, or a whole small molecule.
// The atoms are referred to by their index in a Topology, and kept sorted.
type Residue struct {
	name  string
	id    int
	hasID bool
	atoms []int
}

// NewResidue returns an empty residue with the given name and, if given,
// the given residue number.
func NewResidue(name string, id ...int) *Residue {
	R := &Residue{name: name}
	if len(id) > 0 {
		R.id = id[0]
		R.hasID = true
	}
	return R
}

// Name returns the name of the residue.
func (R *Residue) Name() string {
	return R.name
}

// ID returns the residue number and true, or 0 and false if the residue
// has no number.
func (R *Residue) ID() (int, bool) {
	return R.id, R.hasID
}

// AddAtom adds the atom with index i to the residue. Adding an atom
// twice does nothing.
func (R *Residue) AddAtom(i int) {
	pos, found := slices.BinarySearch(R.atoms, i)
	if found {
		return
	}
	R.atoms = slices.Insert(R.atoms, pos, i)
}

// Contains returns true if the atom with index i is in the residue.
func (R *Residue) Contains(i int) bool {
	_, found := slices.BinarySearch(R.atoms, i)
	return found
}

// Atoms returns a copy of the sorted atom indexes in the residue.
func (R *Residue) Atoms() []int {
	return slices.Clone(R.atoms)
}

// Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.atoms)
}

// Copy returns a deep copy of the residue.
func (R *Residue) Copy() *Residue {
	ret := *R
	ret.atoms = slices.Clone(R.atoms)
	return &ret
}

// Equal returns true if both residues have the same name, number and atoms.
func (R *Residue) Equal(other *Residue) bool {
	if R == nil || other == nil {
		return R == other
	}
	return R.name == other.name && R.hasID == other.hasID && R.id == other.id && slices.Equal(R.atoms, other.atoms)
}

func (R *Residue) String() string {
	if R.hasID {
		return fmt.Sprintf("%s %d (%d atoms)", R.name, R.id, len(R.atoms))
	}
	return fmt.Sprintf("%s (%d atoms)", R.name, len(R.atoms))
}

//removeAtom drops the atom i from the residue, if present, and
//shifts all larger indexes down by one.
func (R *Residue) removeAtom(i int) {
	atoms := R.atoms[:0]
	for _, v := range R.atoms {
		if v == i {
			continue
		}
		if v > i {
			v--
		}
		atoms = append(atoms, v)
	}
	R.atoms = atoms
}
