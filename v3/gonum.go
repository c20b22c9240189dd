/*
 * gonum.go, part of gochemfiles.
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

//All the *Vec functions operate on row vectors, i.e. the cartesian coordinates
//of one atom.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
//A Matrix with zero vectors is valid, but gonum doesn't allow zero-sized
//Dense matrices, so most gonum methods can't be used on it.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs <= 0 {
		return &Matrix{new(mat.Dense)}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil || F.Dense.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) [3]float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	for k := 0; k < 3; k++ {
		F.Set(i, k, v[k])
	}
}

func (F *Matrix) String() string {
	if F.NVecs() == 0 {
		return "[]"
	}
	var b strings.Builder
	for i := 0; i < F.NVecs(); i++ {
		v := F.Vec(i)
		fmt.Fprintf(&b, "%8.3f %8.3f %8.3f\n", v[0], v[1], v[2])
	}
	return b.String()
}

//the same as chem.Error but avoid circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//Error is returned by the functions of this package that can fail.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

var _ errorInt = &Error{}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("v3: A VecMatrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("v3: Index out of range")
)
