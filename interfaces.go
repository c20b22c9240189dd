/*
 * interfaces.go, part of gochemfiles.
 *
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
 *
 */

package chem

import (
	"errors"
	"fmt"
)

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Bonder is anything that can tell whether two atoms are bonded.
type Bonder interface {
	Atomer
	IsBond(i, j int) bool
	Bonds() []Bond
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}

//The error kinds. Every error produced by this library that belongs to one of
//these kinds can be identified with errors.Is.
var (
	//An operation referenced an atom index outside [0, natoms), or a self-bond.
	ErrOutOfBounds = errors.New("out of bounds atomic index")
	//An atom was already owned by another residue.
	ErrResidueConflict = errors.New("atom already in a residue")
	//A value can't be represented in a record, or a record can't be parsed.
	ErrFormat = errors.New("format error")
)

// CError is the general error type of the chem package. It fulfills chem.Error.
type CError struct {
	msg  string
	kind error
	deco []string
}

// NewError returns a new *CError of the given kind. The caller is
// added as the first decoration.
func NewError(kind error, caller, format string, args ...interface{}) *CError {
	err := &CError{msg: fmt.Sprintf(format, args...), kind: kind}
	err.Decorate(caller)
	return err
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.deco[0], err.msg)
}

// Decorate adds new information to the error and returns the decorations.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the kind of the error, so errors.Is works against
// ErrOutOfBounds, ErrResidueConflict and ErrFormat.
func (err *CError) Unwrap() error {
	return err.kind
}

//errDecorate decorates err with the caller's name if err
//implements Error, and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
