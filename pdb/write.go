/*
 * write.go, part of gochemfiles.
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
	"io"
	"math"
	"strconv"
	"strings"

	chem "github.com/rmera/gochemfiles"
	"go.uber.org/zap"
)

//Residue name used for atoms that don't belong to any residue.
const defaultResName = "RES"

//Default values for the occupancy and temperature factor, used when the
//atom's Props don't contain "occupancy" or "bfactor" float64 values.
const (
	defaultOccupancy  = 1.0
	defaultTempFactor = 0.0
)

//Codec translates frames to and from fixed-width records.
//A Codec doesn't keep any state between calls, but it is not safe for concurrent
//use if its Options are changed meanwhile.
type Codec struct {
	layout Layout
	cols   columns
	strict bool
	log    *zap.Logger
}

//New returns a codec with the given options, or with the
//default options if o is nil. It returns an error if the
//layout is not valid.
func New(o *Options) (*Codec, error) {
	if o == nil {
		o = DefaultOptions()
	}
	L := o.Layout()
	if L == nil {
		L = &PDB
	}
	if err := L.Validate(); err != nil {
		return nil, errDecorate(err, "New")
	}
	C := &Codec{layout: *L, strict: o.Strict(), log: o.Logger()}
	if C.log == nil {
		C.log = zap.NewNop()
	}
	C.cols = C.layout.columns()
	return C, nil
}

//Layout returns a copy of the layout used by the codec.
func (C *Codec) Layout() Layout {
	return C.layout
}

//fits returns true if v can be written with the precision and
//width of the field.
func fits(v float64, f Field) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return len(strconv.FormatFloat(v, 'f', f.Precision, 64)) <= f.Width
}

func fitsInt(v, width int) bool {
	return len(strconv.Itoa(v)) <= width
}

func truncate(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s
}

func floatProp(at *chem.Atom, key string, def float64) float64 {
	if v, ok := at.Props[key].(float64); ok {
		return v
	}
	return def
}

//atomFields are the values of one atom record, except for the serial.
type atomFields struct {
	name, resName, element string
	resSeq                 int
	pos                    [3]float64
	occupancy, tempFactor  float64
}

//prepare collects the values for all atom records. Atoms outside any residue get
//the default residue name, and sequential residue numbers after the largest one in
//the topology. Residues without number are written with -1.
func (C *Codec) prepare(F *chem.Frame) []atomFields {
	top := F.Topology()
	ret := make([]atomFields, F.Len())
	done := make([]bool, F.Len())
	maxid := 0
	for _, r := range top.Residues() {
		id, ok := r.ID()
		if ok && id > maxid {
			maxid = id
		}
		if !ok {
			id = -1
		}
		for _, i := range r.Atoms() {
			ret[i].resName = truncate(r.Name(), C.layout.ResName)
			ret[i].resSeq = id
			done[i] = true
		}
	}
	next := maxid + 1
	for i := range ret {
		at := top.Atom(i)
		ret[i].name = truncate(at.Name, C.layout.AtomName)
		ret[i].element = truncate(at.Type, 2)
		ret[i].pos = F.Position(i)
		ret[i].occupancy = floatProp(at, "occupancy", defaultOccupancy)
		ret[i].tempFactor = floatProp(at, "bfactor", defaultTempFactor)
		if !done[i] {
			ret[i].resName = defaultResName
			ret[i].resSeq = next
			next++
		}
	}
	return ret
}

//check verifies that every value of the frame can be written
//in the layout, so nothing is written if something can't.
func (C *Codec) check(F *chem.Frame, atoms []atomFields) error {
	L := C.layout
	cell := F.Cell()
	lengths, angles := cell.Lengths(), cell.Angles()
	for i := 0; i < 3; i++ {
		if !fits(lengths[i], L.CellLength) {
			return newError(0, "", "cell length %v doesn't fit in the %d columns of the CRYST1 record", lengths[i], L.CellLength.Width)
		}
		if !fits(angles[i], L.CellAngle) {
			return newError(0, "", "cell angle %v doesn't fit in the %d columns of the CRYST1 record", angles[i], L.CellAngle.Width)
		}
	}
	if !fitsInt(len(atoms), L.Serial) {
		return newError(0, "", "%d atoms can't be numbered with %d columns", len(atoms), L.Serial)
	}
	if len(F.Topology().Bonds()) > 0 && !fitsInt(len(atoms), L.ConectSerial) {
		return newError(0, "", "%d atoms can't be numbered with %d columns in CONECT records", len(atoms), L.ConectSerial)
	}
	for i, a := range atoms {
		for k, v := range a.pos {
			if !fits(v, L.Coordinate) {
				return newError(0, "", "coordinate %d of atom %d (%v) doesn't fit in %d columns", k, i, v, L.Coordinate.Width)
			}
		}
		if !fitsInt(a.resSeq, L.ResSeq) {
			return newError(0, "", "residue number %d of atom %d doesn't fit in %d columns", a.resSeq, i, L.ResSeq)
		}
		if !fits(a.occupancy, L.Occupancy) {
			return newError(0, "", "occupancy %v of atom %d doesn't fit in %d columns", a.occupancy, i, L.Occupancy.Width)
		}
		if !fits(a.tempFactor, L.TempFactor) {
			return newError(0, "", "temperature factor %v of atom %d doesn't fit in %d columns", a.tempFactor, i, L.TempFactor.Width)
		}
	}
	return nil
}

//Encode returns the records for the frame F: a CRYST1 record, one HETATM record per atom,
//the CONECT records and an END record. If any value can't be represented in the layout,
//it returns an error and no records.
func (C *Codec) Encode(F *chem.Frame) ([]string, error) {
	if n := F.Topology().Len(); n != F.Len() {
		return nil, errDecorate(newError(0, "", "the topology has %d atoms but the frame has %d positions", n, F.Len()), "Encode")
	}
	atoms := C.prepare(F)
	if err := C.check(F, atoms); err != nil {
		return nil, errDecorate(err, "Encode")
	}
	top := F.Topology()
	recs := make([]string, 0, len(atoms)+2)
	recs = append(recs, C.cryst1(F.Cell()))
	for i, a := range atoms {
		recs = append(recs, C.hetatm(i+1, a))
	}
	recs = append(recs, C.conect(top)...)
	recs = append(recs, "END")
	return recs, nil
}

//Write writes the records for F to w, one per line. Nothing is
//written if the frame can't be encoded.
func (C *Codec) Write(w io.Writer, F *chem.Frame) error {
	recs, err := C.Encode(F)
	if err != nil {
		return errDecorate(err, "Write")
	}
	var b strings.Builder
	for _, r := range recs {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())
	return err
}

func (C *Codec) cryst1(cell chem.UnitCell) string {
	l, a := cell.Lengths(), cell.Angles()
	cl, ca := C.layout.CellLength, C.layout.CellAngle
	return fmt.Sprintf("CRYST1%*.*f%*.*f%*.*f%*.*f%*.*f%*.*f %-11s%4d",
		cl.Width, cl.Precision, l[0], cl.Width, cl.Precision, l[1], cl.Width, cl.Precision, l[2],
		ca.Width, ca.Precision, a[0], ca.Width, ca.Precision, a[1], ca.Width, ca.Precision, a[2],
		C.layout.SpaceGroup, 1)
}

func (C *Codec) hetatm(serial int, a atomFields) string {
	L := C.layout
	c, o, t := L.Coordinate, L.Occupancy, L.TempFactor
	return fmt.Sprintf("HETATM%*d %*s %*s X%*d    %*.*f%*.*f%*.*f%*.*f%*.*f          %2s",
		L.Serial, serial, L.AtomName, a.name, L.ResName, a.resName, L.ResSeq, a.resSeq,
		c.Width, c.Precision, a.pos[0], c.Width, c.Precision, a.pos[1], c.Width, c.Precision, a.pos[2],
		o.Width, o.Precision, a.occupancy, t.Width, t.Precision, a.tempFactor, a.element)
}

//conect returns the CONECT records for all the bonded atoms. Each atom lists all its
//partners, so every bond appears twice. Atoms with more partners than fit in one
//record get more records, each starting with the serial of the atom.
func (C *Codec) conect(top *chem.Topology) []string {
	w := C.layout.ConectSerial
	adj := make([][]int, top.Len())
	for _, b := range top.Bonds() {
		adj[b[0]] = append(adj[b[0]], b[1])
		adj[b[1]] = append(adj[b[1]], b[0])
	}
	var recs []string
	var b strings.Builder
	for i, partners := range adj {
		for start := 0; start < len(partners); start += C.layout.MaxPartners {
			end := min(start+C.layout.MaxPartners, len(partners))
			b.Reset()
			fmt.Fprintf(&b, "CONECT%*d", w, i+1)
			for _, j := range partners[start:end] {
				fmt.Fprintf(&b, "%*d", w, j+1)
			}
			recs = append(recs, b.String())
		}
	}
	return recs
}
