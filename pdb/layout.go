/*
 * layout.go, part of gochemfiles.
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
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

//Field is a fixed-width numeric field.
type Field struct {
	Width     int `yaml:"width" validate:"min=1,max=20"`
	Precision int `yaml:"precision" validate:"min=0,ltfield=Width"`
}

//Layout contains the widths and precisions of the fields in the records
//of a fixed-width format. Only the sizes can change, the order of the fields
//is always that of the PDB format.
type Layout struct {
	Name         string `yaml:"name" validate:"required"`
	CellLength   Field  `yaml:"cell_length"`
	CellAngle    Field  `yaml:"cell_angle"`
	Coordinate   Field  `yaml:"coordinate"`
	Occupancy    Field  `yaml:"occupancy"`
	TempFactor   Field  `yaml:"temp_factor"`
	Serial       int    `yaml:"serial" validate:"min=1,max=10"`
	AtomName     int    `yaml:"atom_name" validate:"min=1,max=10"`
	ResName      int    `yaml:"res_name" validate:"min=1,max=10"`
	ResSeq       int    `yaml:"res_seq" validate:"min=1,max=10"`
	ConectSerial int    `yaml:"conect_serial" validate:"min=1,max=10"`
	MaxPartners  int    `yaml:"max_partners" validate:"min=1,max=20"`
	SpaceGroup   string `yaml:"space_group" validate:"max=11"`
}

//PDB is the layout of the Protein Data Bank format.
var PDB = Layout{
	Name:         "pdb",
	CellLength:   Field{9, 3},
	CellAngle:    Field{7, 2},
	Coordinate:   Field{8, 3},
	Occupancy:    Field{6, 2},
	TempFactor:   Field{6, 2},
	Serial:       5,
	AtomName:     4,
	ResName:      3,
	ResSeq:       4,
	ConectSerial: 5,
	MaxPartners:  4,
	SpaceGroup:   "P 1",
}

//Layouts contains the known layouts, by format name (normally, the file extension).
var Layouts = map[string]Layout{
	"pdb": PDB,
	"ent": PDB,
}

//Validate returns an error if some width or precision in the layout is
//not usable.
func (L *Layout) Validate() error {
	if err := validate.Struct(L); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails '%s %s' (value %v)", e.Namespace(), e.Tag(), e.Param(), e.Value()))
			}
			return newError(0, "", "invalid layout: %s", strings.Join(msgs, "; "))
		}
		return newError(0, "", "invalid layout: %s", err.Error())
	}
	return nil
}

//LoadLayout reads a YAML layout from r. Fields not present in
//the YAML keep their PDB values. The layout is validated before
//being returned.
func LoadLayout(r io.Reader) (*Layout, error) {
	L := PDB
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&L); err != nil {
		return nil, newError(0, "", "can't decode layout: %s", err.Error())
	}
	if err := L.Validate(); err != nil {
		return nil, errDecorate(err, "LoadLayout")
	}
	return &L, nil
}

//columns are the positions of the fields of the ATOM/HETATM,
//CRYST1 and CONECT records for a layout. Each pair is [start, end).
type columns struct {
	serial, name, resName, chain, resSeq [2]int
	coords                               [3][2]int
	occupancy, tempFactor, element       [2]int
	cellLengths, cellAngles              [3][2]int
	spaceGroup, z                        [2]int
	conect                               [2]int //the serial of the first atom in CONECT
}

func span(start, width int) [2]int {
	return [2]int{start, start + width}
}

func (L *Layout) columns() columns {
	var c columns
	c.serial = span(6, L.Serial)
	c.name = span(c.serial[1]+1, L.AtomName)
	c.resName = span(c.name[1]+1, L.ResName) //the column before is the alternate location
	c.chain = span(c.resName[1]+1, 1)
	c.resSeq = span(c.chain[1], L.ResSeq)
	pos := c.resSeq[1] + 4 //insertion code, and 3 blanks
	for i := range c.coords {
		c.coords[i] = span(pos, L.Coordinate.Width)
		pos = c.coords[i][1]
	}
	c.occupancy = span(pos, L.Occupancy.Width)
	c.tempFactor = span(c.occupancy[1], L.TempFactor.Width)
	c.element = span(c.tempFactor[1]+10, 2)

	pos = 6
	for i := range c.cellLengths {
		c.cellLengths[i] = span(pos, L.CellLength.Width)
		pos = c.cellLengths[i][1]
	}
	for i := range c.cellAngles {
		c.cellAngles[i] = span(pos, L.CellAngle.Width)
		pos = c.cellAngles[i][1]
	}
	c.spaceGroup = span(pos+1, 11)
	c.z = span(c.spaceGroup[1], 4)
	c.conect = span(6, L.ConectSerial)
	return c
}
