/*
 * read.go, part of gochemfiles.
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
	"math"
	"strconv"
	"strings"

	chem "github.com/rmera/gochemfiles"
	"go.uber.org/zap"
)

//readAtom is an atom record waiting for the whole frame to be read.
type readAtom struct {
	atom    *chem.Atom
	pos     [3]float64
	resName string
	resSeq  int
	hasRes  bool
}

//readBond is a pair of serials from a CONECT record.
type readBond struct {
	record int
	first  int
	second int
}

type resKey struct {
	name string
	seq  int
}

//field returns the trimmed content of the columns c of line. Columns beyond
//the end of the line are taken as blank.
func field(line string, c [2]int) string {
	if c[0] >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[c[0]:min(c[1], len(line))])
}

//RecordName returns the name of the record (ATOM, CONECT, etc.) in line.
func RecordName(line string) string {
	return strings.TrimSpace(line[:min(6, len(line))])
}

//IsTerminator returns true if line is an END or ENDMDL record.
func IsTerminator(line string) bool {
	name := RecordName(line)
	return name == "END" || name == "ENDMDL"
}

//Decode builds a frame from the records, which are read until the first END or ENDMDL
//record or the end of the slice. Residues are assembled from the residue names and numbers
//of the atom records, in order of first appearance. A frame without CRYST1 record has an
//infinite cell. MODEL, TER, REMARK and any unknown records are ignored.
//If a record can't be read, no frame is returned, and the error gives the number
//of the offending record.
func (C *Codec) Decode(records []string) (*chem.Frame, error) {
	var atoms []readAtom
	var bonds []readBond
	serials := make(map[int]int)
	cell := chem.NewUnitCell()
reading:
	for n, line := range records {
		rec := n + 1
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name := RecordName(line)
		switch name {
		case "CRYST1":
			c, err := C.readCryst1(rec, line)
			if err != nil {
				return nil, errDecorate(err, "Decode")
			}
			cell = c
		case "ATOM", "HETATM":
			a, serial, err := C.readAtom(rec, name, line)
			if err != nil {
				return nil, errDecorate(err, "Decode")
			}
			if _, ok := serials[serial]; ok {
				return nil, errDecorate(newError(rec, name, "atom serial %d appears twice", serial), "Decode")
			}
			serials[serial] = len(atoms)
			atoms = append(atoms, a)
		case "CONECT":
			b, err := C.readConect(rec, line)
			if err != nil {
				return nil, errDecorate(err, "Decode")
			}
			bonds = append(bonds, b...)
		case "END", "ENDMDL":
			break reading
		default:
			C.log.Debug("ignoring record", zap.Int("record", rec), zap.String("name", name))
		}
	}
	F, err := assemble(atoms, bonds, serials, cell)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return F, nil
}

//assemble builds the frame once all the records have been read.
func assemble(atoms []readAtom, bonds []readBond, serials map[int]int, cell chem.UnitCell) (*chem.Frame, error) {
	F := chem.NewFrame(0)
	F.Reserve(len(atoms))
	F.SetCell(cell)
	var order []resKey
	groups := make(map[resKey]*chem.Residue)
	for i, a := range atoms {
		F.AddAtom(a.atom, a.pos)
		if !a.hasRes {
			continue
		}
		k := resKey{a.resName, a.resSeq}
		r, ok := groups[k]
		if !ok {
			r = chem.NewResidue(a.resName, a.resSeq)
			groups[k] = r
			order = append(order, k)
		}
		r.AddAtom(i)
	}
	top := F.Topology()
	for _, k := range order {
		if err := top.AddResidue(groups[k]); err != nil {
			return nil, err
		}
	}
	for _, b := range bonds {
		i, ok := serials[b.first]
		if !ok {
			return nil, newError(b.record, "CONECT", "no atom with serial %d", b.first)
		}
		j, ok := serials[b.second]
		if !ok {
			return nil, newError(b.record, "CONECT", "no atom with serial %d", b.second)
		}
		if i == j {
			return nil, newError(b.record, "CONECT", "atom %d bonded to itself", b.first)
		}
		if err := top.AddBond(i, j); err != nil {
			return nil, err
		}
	}
	return F, nil
}

//parseFinite parses a float field, rejecting NaN and infinities,
//which no record can be written with.
func parseFinite(f string) (float64, error) {
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", f)
	}
	return v, nil
}

//minLen returns an error if line is shorter than need.
func minLen(rec int, name, line string, need int) error {
	if len(line) < need {
		return newError(rec, name, "record has %d columns, at least %d are needed", len(line), need)
	}
	return nil
}

func (C *Codec) readCryst1(rec int, line string) (chem.UnitCell, error) {
	need := C.cols.cellAngles[2][1]
	if C.strict {
		need = C.cols.z[1]
	}
	if err := minLen(rec, "CRYST1", line, need); err != nil {
		return chem.UnitCell{}, err
	}
	var v [6]float64
	for i := 0; i < 3; i++ {
		var err error
		v[i], err = parseFinite(field(line, C.cols.cellLengths[i]))
		if err != nil {
			return chem.UnitCell{}, newError(rec, "CRYST1", "can't read cell length %d: %s", i, err.Error())
		}
		v[i+3], err = parseFinite(field(line, C.cols.cellAngles[i]))
		if err != nil {
			return chem.UnitCell{}, newError(rec, "CRYST1", "can't read cell angle %d: %s", i, err.Error())
		}
	}
	return chem.NewTriclinicCell(v[0], v[1], v[2], v[3], v[4], v[5]), nil
}

//readAtom parses an ATOM or HETATM record. It returns the atom and its serial.
func (C *Codec) readAtom(rec int, name, line string) (readAtom, int, error) {
	var ret readAtom
	need := C.cols.coords[2][1]
	if C.strict {
		need = C.cols.tempFactor[1]
	}
	if err := minLen(rec, name, line, need); err != nil {
		return ret, 0, err
	}
	if len(line) < C.cols.tempFactor[1] {
		C.log.Debug("short atom record", zap.Int("record", rec), zap.Int("columns", len(line)))
	}
	serial, err := strconv.Atoi(field(line, C.cols.serial))
	if err != nil {
		return ret, 0, newError(rec, name, "can't read atom serial: %s", err.Error())
	}
	for i := range ret.pos {
		ret.pos[i], err = parseFinite(field(line, C.cols.coords[i]))
		if err != nil {
			return ret, 0, newError(rec, name, "can't read coordinate %d: %s", i, err.Error())
		}
	}
	atname := field(line, C.cols.name)
	element := field(line, C.cols.element)
	if element == "" {
		element = elementFromName(atname)
	}
	if element == "" {
		element = atname
	}
	ret.atom = chem.NewAtom(atname, element)
	//Occupancy and temperature factor are optional, and kept only if readable.
	if occ, err := parseFinite(field(line, C.cols.occupancy)); err == nil {
		ret.atom.Props = map[string]interface{}{"occupancy": occ}
	}
	if bf, err := parseFinite(field(line, C.cols.tempFactor)); err == nil {
		if ret.atom.Props == nil {
			ret.atom.Props = make(map[string]interface{})
		}
		ret.atom.Props["bfactor"] = bf
	}
	if seq := field(line, C.cols.resSeq); seq != "" {
		ret.resSeq, err = strconv.Atoi(seq)
		if err != nil {
			return ret, 0, newError(rec, name, "can't read residue number: %s", err.Error())
		}
		ret.resName = field(line, C.cols.resName)
		ret.hasRes = true
	}
	return ret, serial, nil
}

//readConect parses a CONECT record, returning a pair of serials for
//each partner listed.
func (C *Codec) readConect(rec int, line string) ([]readBond, error) {
	if err := minLen(rec, "CONECT", line, C.cols.conect[1]); err != nil {
		return nil, err
	}
	first, err := strconv.Atoi(field(line, C.cols.conect))
	if err != nil {
		return nil, newError(rec, "CONECT", "can't read atom serial: %s", err.Error())
	}
	w := C.layout.ConectSerial
	ret := make([]readBond, 0, C.layout.MaxPartners)
	for k := 0; k < C.layout.MaxPartners; k++ {
		f := field(line, span(C.cols.conect[1]+k*w, w))
		if f == "" {
			continue
		}
		second, err := strconv.Atoi(f)
		if err != nil {
			return nil, newError(rec, "CONECT", "can't read partner %d: %s", k+1, err.Error())
		}
		ret = append(ret, readBond{record: rec, first: first, second: second})
	}
	return ret, nil
}
