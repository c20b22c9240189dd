/*
 * options.go, part of gochemfiles.
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

import "go.uber.org/zap"

//Options contains the options for reading and writing records.
type Options struct {
	layout *Layout
	strict bool
	logger *zap.Logger
}

//DefaultOptions returns options for the PDB layout, accepting
//short records, and with a logger that discards everything.
func DefaultOptions() *Options {
	r := new(Options)
	l := PDB
	r.layout = &l
	r.strict = false
	r.logger = zap.NewNop()
	return r
}

//Returns the layout used,
//and sets it to a new value, if given.
func (O *Options) Layout(l ...*Layout) *Layout {
	if len(l) > 0 && l[0] != nil {
		O.layout = l[0]
	}
	return O.layout
}

//Returns whether short records are rejected,
//and sets it to a new value, if given.
//Non-strict reading accepts ATOM/HETATM records that end after the
//Z coordinate, and CRYST1 records that end after the last angle.
func (O *Options) Strict(s ...bool) bool {
	if len(s) > 0 {
		O.strict = s[0]
	}
	return O.strict
}

//Returns the logger used,
//and sets it to a new value, if given.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}
