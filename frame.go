/*
 * frame.go, part of gochemfiles.
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
	"slices"

	v3 "github.com/rmera/gochemfiles/v3"
)

//Frame is one snapshot of a system: a topology, one position per atom
//and a unit cell. The number of positions always matches the number of
//atoms in the topology.
type Frame struct {
	top       *Topology
	positions [][3]float64
	cell      UnitCell
	step      int
}

//NewFrame returns a frame with natoms placeholder atoms at the origin,
//and an infinite cell.
func NewFrame(natoms int) *Frame {
	F := &Frame{top: NewTopology(natoms), cell: NewUnitCell()}
	F.Resize(natoms)
	return F
}

//NewFrameFromTopology returns a frame for top, with all the atoms at the
//origin. The cell is infinite unless one is given.
func NewFrameFromTopology(top *Topology, cell ...UnitCell) *Frame {
	F := &Frame{top: top, cell: NewUnitCell()}
	if len(cell) > 0 {
		F.cell = cell[0]
	}
	F.positions = make([][3]float64, top.Len())
	return F
}

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return len(F.positions)
}

//Topology returns the topology of the frame. The frame keeps owning it,
//so changing its number of atoms directly breaks the frame. Use the frame's
//methods for that.
func (F *Frame) Topology() *Topology {
	return F.top
}

//SetTopology replaces the topology of the frame. It returns an error if
//top doesn't have as many atoms as the frame.
func (F *Frame) SetTopology(top *Topology) error {
	if top.Len() != F.Len() {
		return NewError(ErrOutOfBounds, "Frame.SetTopology", "the topology contains %d atoms, but the frame contains %d atoms", top.Len(), F.Len())
	}
	F.top = top
	return nil
}

//Cell returns the unit cell of the frame.
func (F *Frame) Cell() UnitCell {
	return F.cell
}

//SetCell sets the unit cell of the frame.
func (F *Frame) SetCell(cell UnitCell) {
	F.cell = cell
}

//Step returns the step (frame number in a trajectory) of the frame.
func (F *Frame) Step() int {
	return F.step
}

//SetStep sets the step of the frame.
func (F *Frame) SetStep(step int) {
	F.step = step
}

//Position returns the position of the atom i. Panics if out of range.
func (F *Frame) Position(i int) [3]float64 {
	if i < 0 || i >= F.Len() {
		panic(NewError(ErrOutOfBounds, "Frame.Position", "we have %d atoms, but the index is %d", F.Len(), i))
	}
	return F.positions[i]
}

//SetPosition sets the position of the atom i. Panics if out of range.
func (F *Frame) SetPosition(i int, pos [3]float64) {
	if i < 0 || i >= F.Len() {
		panic(NewError(ErrOutOfBounds, "Frame.SetPosition", "we have %d atoms, but the index is %d", F.Len(), i))
	}
	F.positions[i] = pos
}

//Coords returns a copy of the positions as a v3.Matrix.
func (F *Frame) Coords() *v3.Matrix {
	data := make([]float64, 0, 3*F.Len())
	for _, p := range F.positions {
		data = append(data, p[:]...)
	}
	ret, err := v3.NewMatrix(data)
	if err != nil {
		panic(err) //data always has 3 values per atom
	}
	return ret
}

//SetCoords replaces all the positions with those in coords, which must
//have one vector per atom.
func (F *Frame) SetCoords(coords *v3.Matrix) error {
	if coords.NVecs() != F.Len() {
		return NewError(ErrOutOfBounds, "Frame.SetCoords", "%d coordinates given, but the frame contains %d atoms", coords.NVecs(), F.Len())
	}
	for i := range F.positions {
		F.positions[i] = coords.Vec(i)
	}
	return nil
}

//Resize changes the number of atoms in the frame, adding placeholder atoms at the
//origin, or removing atoms from the end.
func (F *Frame) Resize(natoms int) {
	if natoms < 0 {
		natoms = 0
	}
	F.top.Resize(natoms)
	if natoms <= len(F.positions) {
		F.positions = F.positions[:natoms]
		return
	}
	F.positions = append(F.positions, make([][3]float64, natoms-len(F.positions))...)
}

//Reserve makes room for natoms atoms without reallocation.
func (F *Frame) Reserve(natoms int) {
	F.top.Reserve(natoms)
	if natoms > cap(F.positions) {
		F.positions = slices.Grow(F.positions, natoms-len(F.positions))
	}
}

//AddAtom appends an atom at the given position.
func (F *Frame) AddAtom(at *Atom, pos [3]float64) {
	F.top.Append(at)
	F.positions = append(F.positions, pos)
}

//Remove deletes the atom i and its position. Bonds and residues in the
//topology are renumbered.
func (F *Frame) Remove(i int) error {
	if err := F.top.Remove(i); err != nil {
		return errDecorate(err, "Frame.Remove")
	}
	F.positions = slices.Delete(F.positions, i, i+1)
	return nil
}
