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

package pdb

import (
	"fmt"

	chem "github.com/rmera/gochemfiles"
)

//Error is the error type of the pdb package. It fulfills chem.Error,
//and errors.Is(err, chem.ErrFormat) is true for all of them.
type Error struct {
	message string
	record  int    //1-based number of the offending record, 0 if none
	name    string //record name (ATOM, CONECT...), if any
	deco    []string
}

func newError(record int, name, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), record: record, name: name}
}

func (err *Error) Error() string {
	if err.record > 0 {
		return fmt.Sprintf("pdb: record %d (%s): %s", err.record, err.name, err.message)
	}
	return "pdb: " + err.message
}

//Record returns the number of the record that caused the error,
//counting from 1, or 0 if the error is not about a particular record.
func (err *Error) Record() int { return err.record }

//Decorate adds new information to the error and returns the decorations.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) Unwrap() error { return chem.ErrFormat }

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
