/*
 * chem.go, part of gochemfiles.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"maps"
	"slices"
)

/**Note: The accessors (Atom) panic instead of returning errors. An out of range access
 * means the program is wrong and should crash. Everything that mutates the topology
 * returns an error instead, and leaves the topology untouched when it does.**/

//Atom contains the atom information except for the coordinates, which
//belong to a Frame.
type Atom struct {
	Name   string
	Type   string //normally the element symbol
	Mass   float64
	Charge float64
	//Props is not used or checked by this library, it is just carried around.
	Props map[string]interface{}
}

//NewAtom returns an atom with the given name. The type is the same as the name
//unless a type is also given. If the type is a known element, the mass is set.
func NewAtom(name string, typ ...string) *Atom {
	A := &Atom{Name: name, Type: name}
	if len(typ) > 0 {
		A.Type = typ[0]
	}
	A.Mass = symbolMass[A.Type]
	return A
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	N.Props = maps.Clone(A.Props)
	return &N
}

//AtomicNumber returns the atomic number for the type of the atom, and
//false if the type is not a known element.
func (A *Atom) AtomicNumber() (int, bool) {
	n, ok := symbolNumber[A.Type]
	return n, ok
}

//CovRadius returns the covalent radius for the type of the atom, and
//false if the type is not a known element.
func (A *Atom) CovRadius() (float64, bool) {
	r, ok := symbolCovrad[A.Type]
	return r, ok
}

//VdwRadius returns the van der Waals radius for the type of the atom, and
//false if the type is not a known element.
func (A *Atom) VdwRadius() (float64, bool) {
	r, ok := symbolVdwrad[A.Type]
	return r, ok
}

/*****Topology type***/

//Topology contains the information about a system which is not expected to change in time,
//i.e. everything except for coordinates and the cell: atoms, bonds and residues.
//The Topology is the only owner of these, and keeps them consistent: removing an atom
//renumbers the bonds and residues that refer to higher indexes.
//A Topology is not safe for concurrent mutation.
type Topology struct {
	atoms    []*Atom
	connect  Connectivity
	residues []*Residue
	resOf    map[int]int //atom index -> position in residues
}

//NewTopology returns an empty topology, with space reserved for
//natoms atoms, if given.
func NewTopology(natoms ...int) *Topology {
	T := &Topology{resOf: make(map[int]int)}
	if len(natoms) > 0 && natoms[0] > 0 {
		T.atoms = make([]*Atom, 0, natoms[0])
	}
	return T
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i < 0 || i >= T.Len() {
		panic(NewError(ErrOutOfBounds, "Topology.Atom", "we have %d atoms, but the index is %d", T.Len(), i))
	}
	return T.atoms[i]
}

//Append adds an atom at the end of the topology.
func (T *Topology) Append(at *Atom) {
	if at == nil {
		at = NewAtom("")
	}
	T.atoms = append(T.atoms, at)
}

//Reserve makes room for natoms atoms without reallocation.
func (T *Topology) Reserve(natoms int) {
	if natoms > cap(T.atoms) {
		T.atoms = slices.Grow(T.atoms, natoms-len(T.atoms))
	}
}

//Resize changes the number of atoms in the topology to natoms. New atoms
//are empty placeholders. When shrinking, the atoms are removed from the end,
//together with their bonds and residue memberships.
func (T *Topology) Resize(natoms int) {
	if natoms < 0 {
		natoms = 0
	}
	for T.Len() < natoms {
		T.Append(NewAtom(""))
	}
	for T.Len() > natoms {
		T.remove(T.Len() - 1)
	}
}

//Remove deletes the atom i. All the atoms after i are shifted one place back, and
//bonds and residues are renumbered accordingly. Bonds involving i are deleted.
func (T *Topology) Remove(i int) error {
	if i < 0 || i >= T.Len() {
		return NewError(ErrOutOfBounds, "Topology.Remove", "we have %d atoms, but the index is %d", T.Len(), i)
	}
	T.remove(i)
	return nil
}

//remove does the actual work for Remove, which has checked that i is valid.
//Nothing can fail after the check, so no caller ever sees a partial update.
func (T *Topology) remove(i int) {
	T.atoms = slices.Delete(T.atoms, i, i+1)
	T.connect.removeAtom(i)
	for _, r := range T.residues {
		r.removeAtom(i)
	}
	T.rebuildResidueMap()
}

func (T *Topology) rebuildResidueMap() {
	T.resOf = make(map[int]int, len(T.atoms))
	for k, r := range T.residues {
		for _, a := range r.atoms {
			T.resOf[a] = k
		}
	}
}

func (T *Topology) checkIndexes(caller string, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= T.Len() {
			return NewError(ErrOutOfBounds, caller, "we have %d atoms, but the indexes are %v", T.Len(), idx)
		}
	}
	return nil
}

//AddBond adds a bond between atoms i and j. Adding an existing bond does nothing.
//It returns an error if any index is out of range or if i==j.
func (T *Topology) AddBond(i, j int) error {
	if err := T.checkIndexes("Topology.AddBond", i, j); err != nil {
		return err
	}
	return errDecorate(T.connect.AddBond(i, j), "Topology.AddBond")
}

//RemoveBond removes the bond between atoms i and j, if it exists.
//It returns an error if any index is out of range.
func (T *Topology) RemoveBond(i, j int) error {
	if err := T.checkIndexes("Topology.RemoveBond", i, j); err != nil {
		return err
	}
	T.connect.RemoveBond(i, j)
	return nil
}

//ClearBonds removes all the bonds, and with them all angles and dihedrals.
//Atoms and residues are not touched.
func (T *Topology) ClearBonds() {
	T.connect.Clear()
}

//IsBond returns true if atoms i and j are bonded.
func (T *Topology) IsBond(i, j int) bool {
	return T.connect.IsBond(i, j)
}

//IsAngle returns true if i-j and j-k are bonds and i!=k.
func (T *Topology) IsAngle(i, j, k int) bool {
	return T.connect.IsAngle(i, j, k)
}

//IsDihedral returns true if i-j, j-k and k-m are bonds, with no repeated atoms.
func (T *Topology) IsDihedral(i, j, k, m int) bool {
	return T.connect.IsDihedral(i, j, k, m)
}

//Bonds returns all the bonds in the topology.
func (T *Topology) Bonds() []Bond {
	return T.connect.Bonds()
}

//Angles returns all the angles in the topology.
func (T *Topology) Angles() []Angle {
	return T.connect.Angles()
}

//Dihedrals returns all the dihedrals in the topology.
func (T *Topology) Dihedrals() []Dihedral {
	return T.connect.Dihedrals()
}

//Neighbors returns the indexes of the atoms bonded to i, in increasing order.
func (T *Topology) Neighbors(i int) []int {
	return T.connect.Neighbors(i)
}

//AddResidue adds a copy of R to the topology. It returns an error, without changing
//anything, if any atom in R is already part of a residue, or doesn't exist.
func (T *Topology) AddResidue(R *Residue) error {
	for _, i := range R.atoms {
		if i < 0 || i >= T.Len() {
			return NewError(ErrOutOfBounds, "Topology.AddResidue", "we have %d atoms, but residue %s contains atom %d", T.Len(), R.name, i)
		}
		if k, ok := T.resOf[i]; ok {
			resid, _ := T.residues[k].ID()
			return NewError(ErrResidueConflict, "Topology.AddResidue", "can't add residue %s: atom %d is already in the residue %s %d", R.name, i, T.residues[k].name, resid)
		}
	}
	if T.resOf == nil {
		T.resOf = make(map[int]int)
	}
	T.residues = append(T.residues, R.Copy())
	k := len(T.residues) - 1
	for _, i := range R.atoms {
		T.resOf[i] = k
	}
	return nil
}

//Residue returns a copy of the residue containing the atom i, and true,
//or nil and false if the atom doesn't belong to any residue.
func (T *Topology) Residue(i int) (*Residue, bool) {
	k, ok := T.resOf[i]
	if !ok {
		return nil, false
	}
	return T.residues[k].Copy(), true
}

//Residues returns copies of all the residues, in the order they were added.
func (T *Topology) Residues() []*Residue {
	ret := make([]*Residue, 0, len(T.residues))
	for _, r := range T.residues {
		ret = append(ret, r.Copy())
	}
	return ret
}

//AreLinked returns true if first and second are the same residue,
//or if there is a bond between an atom in first and an atom in second.
func (T *Topology) AreLinked(first, second *Residue) bool {
	if first.Equal(second) {
		return true
	}
	for _, i := range first.atoms {
		for _, j := range second.atoms {
			if T.IsBond(i, j) {
				return true
			}
		}
	}
	return false
}

//Copy returns a deep copy of the topology.
func (T *Topology) Copy() *Topology {
	N := NewTopology(T.Len())
	for _, at := range T.atoms {
		N.atoms = append(N.atoms, at.Copy())
	}
	N.connect = T.connect.copy()
	for _, r := range T.residues {
		N.residues = append(N.residues, r.Copy())
	}
	N.rebuildResidueMap()
	return N
}
