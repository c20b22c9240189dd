/*
 * layout_test.go, part of gochemfiles.
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
	"errors"
	"strings"
	"testing"

	chem "github.com/rmera/gochemfiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDBColumns(Te *testing.T) {
	c := PDB.columns()
	assert.Equal(Te, [2]int{6, 11}, c.serial)
	assert.Equal(Te, [2]int{12, 16}, c.name)
	assert.Equal(Te, [2]int{17, 20}, c.resName)
	assert.Equal(Te, [2]int{22, 26}, c.resSeq)
	assert.Equal(Te, [3][2]int{{30, 38}, {38, 46}, {46, 54}}, c.coords)
	assert.Equal(Te, [2]int{60, 66}, c.tempFactor)
	assert.Equal(Te, [2]int{76, 78}, c.element)
	assert.Equal(Te, [2]int{47, 54}, c.cellAngles[2])
	assert.Equal(Te, [2]int{66, 70}, c.z)
	assert.Equal(Te, [2]int{6, 11}, c.conect)
	assert.Equal(Te, PDB, Layouts["ent"])
}

const wide = `name: wide
coordinate:
  width: 12
  precision: 4
max_partners: 2
`

func TestLoadLayout(Te *testing.T) {
	L, err := LoadLayout(strings.NewReader(wide))
	require.NoError(Te, err)
	assert.Equal(Te, "wide", L.Name)
	assert.Equal(Te, Field{12, 4}, L.Coordinate)
	assert.Equal(Te, 2, L.MaxPartners)
	assert.Equal(Te, PDB.CellLength, L.CellLength)

	bad := []string{
		"name: bad\ncoordinate:\n  width: 3\n  precision: 3\n",
		"name: bad\nserial: 0\n",
		"name: \"\"\n",
		"name: bad\nunknown: 3\n",
		"name: [",
	}
	for _, b := range bad {
		_, err := LoadLayout(strings.NewReader(b))
		assert.True(Te, errors.Is(err, chem.ErrFormat), b)
	}
}

//A wider layout can write what PDB can't, and read it back.
func TestWideLayout(Te *testing.T) {
	L, err := LoadLayout(strings.NewReader(wide))
	require.NoError(Te, err)
	o := DefaultOptions()
	o.Layout(L)
	W, err := New(o)
	require.NoError(Te, err)
	P, err := New(nil)
	require.NoError(Te, err)

	F := first(Te)
	F.SetPosition(0, [3]float64{12345.678, -1.5, 0})
	_, err = P.Encode(F)
	assert.Error(Te, err)
	recs, err := W.Encode(F)
	require.NoError(Te, err)
	assert.Equal(Te, "HETATM    1    A RES X   1      12345.6780     -1.5000      0.0000  1.00  0.00           A", recs[1])

	for _, b := range [][2]int{{0, 2}, {0, 3}} {
		require.NoError(Te, F.Topology().AddBond(b[0], b[1]))
	}
	recs, err = W.Encode(F)
	require.NoError(Te, err)
	assert.Contains(Te, recs, "CONECT    1    2    3")
	assert.Contains(Te, recs, "CONECT    1    4")

	G, err := W.Decode(recs)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{12345.678, -1.5, 0}, G.Position(0))
	assert.Equal(Te, F.Topology().Bonds(), G.Topology().Bonds())
}

func TestNewInvalid(Te *testing.T) {
	o := DefaultOptions()
	L := PDB
	L.MaxPartners = 0
	o.Layout(&L)
	_, err := New(o)
	assert.True(Te, errors.Is(err, chem.ErrFormat))
	assert.False(Te, o.Strict())
	assert.NotNil(Te, o.Logger())
}
