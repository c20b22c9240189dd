/*
 * cell.go, part of gochemfiles.
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
	"math"
)

//CellShape classifies a unit cell.
type CellShape int

const (
	Infinite CellShape = iota //no periodicity, all lengths are zero
	Orthorhombic
	Triclinic
)

func (S CellShape) String() string {
	switch S {
	case Infinite:
		return "infinite"
	case Orthorhombic:
		return "orthorhombic"
	case Triclinic:
		return "triclinic"
	}
	return fmt.Sprintf("CellShape(%d)", int(S))
}

//UnitCell is the periodic box of a frame, given as three lengths (in A)
//and three angles (in degrees).
type UnitCell struct {
	lengths [3]float64
	angles  [3]float64
	shape   CellShape
}

//NewUnitCell returns an infinite cell if no length is given,
//a cubic cell for one length, and an orthorhombic cell for three lengths.
//Other numbers of lengths cause a panic.
func NewUnitCell(lengths ...float64) UnitCell {
	switch len(lengths) {
	case 0:
		return UnitCell{angles: [3]float64{90, 90, 90}, shape: Infinite}
	case 1:
		return NewTriclinicCell(lengths[0], lengths[0], lengths[0], 90, 90, 90)
	case 3:
		return NewTriclinicCell(lengths[0], lengths[1], lengths[2], 90, 90, 90)
	}
	panic(fmt.Sprintf("NewUnitCell: can't build a cell from %d lengths", len(lengths)))
}

//NewTriclinicCell returns a cell with the given lengths and angles. The shape is
//infinite if all the lengths are zero, orthorhombic if all the angles are 90
//degrees, and triclinic otherwise.
func NewTriclinicCell(a, b, c, alpha, beta, gamma float64) UnitCell {
	U := UnitCell{lengths: [3]float64{a, b, c}, angles: [3]float64{alpha, beta, gamma}}
	switch {
	case a == 0 && b == 0 && c == 0:
		U.shape = Infinite
	case isRight(alpha) && isRight(beta) && isRight(gamma):
		U.shape = Orthorhombic
	default:
		U.shape = Triclinic
	}
	return U
}

func isRight(angle float64) bool {
	return math.Abs(angle-90) < 1e-5
}

//Lengths returns the a, b and c lengths of the cell.
func (U UnitCell) Lengths() [3]float64 { return U.lengths }

//Angles returns the alpha, beta and gamma angles of the cell.
func (U UnitCell) Angles() [3]float64 { return U.angles }

//Shape returns the shape of the cell.
func (U UnitCell) Shape() CellShape { return U.shape }

//Volume returns the volume of the cell, 0 for an infinite cell.
func (U UnitCell) Volume() float64 {
	if U.shape == Infinite {
		return 0
	}
	a, b, c := U.lengths[0], U.lengths[1], U.lengths[2]
	ca := math.Cos(U.angles[0] * math.Pi / 180)
	cb := math.Cos(U.angles[1] * math.Pi / 180)
	cg := math.Cos(U.angles[2] * math.Pi / 180)
	return a * b * c * math.Sqrt(1-ca*ca-cb*cb-cg*cg+2*ca*cb*cg)
}

func (U UnitCell) String() string {
	return fmt.Sprintf("%s [%.3f %.3f %.3f] [%.2f %.2f %.2f]", U.shape, U.lengths[0], U.lengths[1], U.lengths[2],
		U.angles[0], U.angles[1], U.angles[2])
}
