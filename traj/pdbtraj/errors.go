/*
 * errors.go, part of gochemfiles.
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
 */

package pdbtraj

import (
	"fmt"

	chem "github.com/rmera/gochemfiles"
)

//errDecorate decorates err with the caller's name, if err implements chem.Error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//Error is the general structure for PDB trajectory errors. It fulfills chem.Error and chem.TrajError.
//The error that caused it, if any, can be reached with errors.Is and errors.As.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	cause    error
}

//newError returns a critical error for filename. cause can be nil.
func newError(message, filename, caller string, cause error) *Error {
	return &Error{message: message, filename: filename, deco: []string{caller}, critical: true, cause: cause}
}

func (err *Error) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("pdb file %s error: %s: %s", err.filename, err.message, err.cause.Error())
	}
	return fmt.Sprintf("pdb file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err *Error) FileName() string { return err.filename }

//Format returns the format of the file (always "pdb") associated to the error
func (err *Error) Format() string { return "pdb" }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the error that caused this one, or nil.
func (err *Error) Unwrap() error { return err.cause }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	ReadError      = "Error reading frame"
	UnableToOpen   = "Unable to open file"
	NilFrame       = "Given nil frame"
)

//lastFrameError implements chem.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "pdb" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	return &lastFrameError{fileName: filename, deco: []string{caller}}
}

var (
	_ chem.TrajError      = &Error{}
	_ chem.LastFrameError = &lastFrameError{}
)
