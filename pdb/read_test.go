/*
 * read_test.go, part of gochemfiles.
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
	"gonum.org/v1/gonum/floats"
)

const ala = `REMARK   a few atoms of an alanine and a water
CRYST1   10.000   12.000   14.000  90.00 100.00  90.00 P 1           1
MODEL        1
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.00  0.00           C
ATOM      3  C   ALA A   1      13.107   5.673  -5.220  1.00 10.50           C
HETATM    4  O   HOH B   2      13.700   5.400  -4.170  0.50  0.00           O
ATOM      5  CB  ALA A   1      10.850   5.000  -4.400  1.00  0.00
TER
CONECT    1    2
CONECT    2    1    3    5
CONECT    3    2
CONECT    5    2
ENDMDL
ATOM      6  N   GLY A   2       1.000   2.000   3.000  1.00  0.00           N
`

func sl(v [3]float64) []float64 { return v[:] }

func TestDecode(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	F, err := C.Decode(strings.Split(ala, "\n"))
	require.NoError(Te, err)
	assert.Equal(Te, 5, F.Len())
	top := F.Topology()
	assert.Equal(Te, "CA", top.Atom(1).Name)
	assert.Equal(Te, "C", top.Atom(1).Type)
	assert.Equal(Te, "C", top.Atom(4).Type) //guessed from CB
	assert.Equal(Te, 10.5, top.Atom(2).Props["bfactor"])
	assert.Equal(Te, 0.5, top.Atom(3).Props["occupancy"])
	assert.True(Te, floats.EqualApprox(sl(F.Position(0)), []float64{11.104, 6.134, -6.504}, 1e-9))
	assert.Equal(Te, []chem.Bond{{0, 1}, {1, 2}, {1, 4}}, top.Bonds())

	cell := F.Cell()
	assert.Equal(Te, chem.Triclinic, cell.Shape())
	assert.Equal(Te, [3]float64{10, 12, 14}, cell.Lengths())

	residues := top.Residues()
	require.Len(Te, residues, 2)
	assert.Equal(Te, "ALA", residues[0].Name())
	assert.Equal(Te, []int{0, 1, 2, 4}, residues[0].Atoms())
	id, ok := residues[1].ID()
	assert.True(Te, ok)
	assert.Equal(Te, 2, id)
}

func TestDecodeNoCell(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	F, err := C.Decode([]string{
		"HETATM    1    A                 1.000   2.000   3.000",
		"END",
	})
	require.NoError(Te, err)
	assert.Equal(Te, chem.Infinite, F.Cell().Shape())
	assert.Equal(Te, 1, F.Len())
	_, ok := F.Topology().Residue(0)
	assert.False(Te, ok) //blank residue number
}

func TestDecodeShortRecords(Te *testing.T) {
	lines := strings.Split(ala, "\n")
	short := []string{lines[1][:54], lines[3][:54], lines[4][:60]}

	C, err := New(nil)
	require.NoError(Te, err)
	F, err := C.Decode(short)
	require.NoError(Te, err)
	assert.Equal(Te, 2, F.Len())
	assert.Equal(Te, "N", F.Topology().Atom(0).Type)
	_, ok := F.Topology().Atom(0).Props["bfactor"]
	assert.False(Te, ok)

	//one column less and the Z coordinate is incomplete
	_, err = C.Decode([]string{lines[3][:53]})
	assert.True(Te, errors.Is(err, chem.ErrFormat))

	o := DefaultOptions()
	o.Strict(true)
	S, err := New(o)
	require.NoError(Te, err)
	_, err = S.Decode(short)
	var pdberr *Error
	require.True(Te, errors.As(err, &pdberr))
	assert.Equal(Te, 1, pdberr.Record())
	_, err = S.Decode(lines[3:5])
	assert.NoError(Te, err)
}

func TestDecodeErrors(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	atom := "ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N"
	cases := map[string][]string{
		"bad coordinate":    {"ATOM      1  N   ALA A   1      11.104   6.1x4  -6.504"},
		"bad serial":        {"ATOM     x1  N   ALA A   1      11.104   6.134  -6.504"},
		"bad residue":       {"ATOM      1  N   ALA A   Q      11.104   6.134  -6.504"},
		"repeated serial":   {atom, atom},
		"unknown partner":   {atom, "CONECT    1    9"},
		"self bond":         {atom, "CONECT    1    1"},
		"short CONECT":      {atom, "CONECT 1"},
		"bad CONECT":        {atom, "CONECT    1  abc"},
		"bad cell":          {"CRYST1   1o.000   12.000   14.000  90.00  90.00  90.00"},
		"short cell":        {"CRYST1   10.000   12.000"},
		"short atom record": {"ATOM      1  N   ALA A   1      11.104"},
		"NaN coordinate":    {"ATOM      1  N   ALA A   1      11.104     NaN  -6.504"},
		"infinite cell":     {"CRYST1      Inf   12.000   14.000  90.00  90.00  90.00"},
	}
	for name, recs := range cases {
		F, err := C.Decode(recs)
		assert.Nil(Te, F, name)
		assert.True(Te, errors.Is(err, chem.ErrFormat), name)
	}
	_, err = C.Decode([]string{atom, "CONECT    1    9"})
	var pdberr *Error
	require.True(Te, errors.As(err, &pdberr))
	assert.Equal(Te, 2, pdberr.Record())
	assert.Contains(Te, err.Error(), "CONECT")

	_, err = C.Decode([]string{atom, "HETATM    2    B                 1.000    +Inf   0.000"})
	require.True(Te, errors.As(err, &pdberr))
	assert.Equal(Te, 2, pdberr.Record())
	assert.Contains(Te, err.Error(), "not a finite number")
}

//Residues with the same name and number end up in the same residue even
//when they are not contiguous. Residues are ordered by first appearance.
func TestDecodeResidueGrouping(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	F, err := C.Decode([]string{
		"HETATM    1    A SOL X   7       0.000   0.000   0.000",
		"HETATM    2    B ION X   2       0.000   0.000   0.000",
		"HETATM    3    C SOL X   7       0.000   0.000   0.000",
		"HETATM    4    D SOL X   8       0.000   0.000   0.000",
	})
	require.NoError(Te, err)
	res := F.Topology().Residues()
	require.Len(Te, res, 3)
	assert.Equal(Te, []int{0, 2}, res[0].Atoms())
	assert.Equal(Te, "ION", res[1].Name())
	assert.Equal(Te, []int{3}, res[2].Atoms())
}

//Non-contiguous serials are mapped to consecutive indexes.
func TestDecodeSerials(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	F, err := C.Decode([]string{
		"HETATM   10    A                 0.000   0.000   0.000",
		"HETATM   20    B                 1.000   0.000   0.000",
		"CONECT   20   10",
	})
	require.NoError(Te, err)
	assert.Equal(Te, []chem.Bond{{0, 1}}, F.Topology().Bonds())
}

func TestRoundTrip(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	F := chem.NewFrame(0)
	F.SetCell(chem.NewTriclinicCell(20, 21, 22, 80, 90, 100))
	names := []string{"N", "CA", "C", "O", "OW", "HW1", "HW2"}
	for i, name := range names {
		F.AddAtom(chem.NewAtom(name, name[:1]), [3]float64{float64(i) * 1.5, -2.25, 0.125})
	}
	top := F.Topology()
	gly := chem.NewResidue("GLY", 1)
	wat := chem.NewResidue("HOH", 2)
	for i := 0; i < 4; i++ {
		gly.AddAtom(i)
	}
	for i := 4; i < 7; i++ {
		wat.AddAtom(i)
	}
	require.NoError(Te, top.AddResidue(gly))
	require.NoError(Te, top.AddResidue(wat))
	//atom 0 has more partners than fit in one CONECT record
	for _, b := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {4, 6}, {0, 3}, {0, 4}, {0, 5}, {0, 6}} {
		require.NoError(Te, top.AddBond(b[0], b[1]))
	}

	recs, err := C.Encode(F)
	require.NoError(Te, err)
	assert.Contains(Te, recs, "CONECT    1    2    4    5    6")
	assert.Contains(Te, recs, "CONECT    1    7")
	G, err := C.Decode(recs)
	require.NoError(Te, err)
	assert.Equal(Te, F.Len(), G.Len())
	assert.Equal(Te, top.Bonds(), G.Topology().Bonds())
	assert.Equal(Te, top.Angles(), G.Topology().Angles())
	res := G.Topology().Residues()
	require.Len(Te, res, 2)
	assert.True(Te, gly.Equal(res[0]))
	assert.True(Te, wat.Equal(res[1]))
	for i := 0; i < F.Len(); i++ {
		assert.True(Te, floats.EqualApprox(sl(F.Position(i)), sl(G.Position(i)), 1e-3))
		assert.Equal(Te, top.Atom(i).Name, G.Topology().Atom(i).Name)
		assert.Equal(Te, top.Atom(i).Type, G.Topology().Atom(i).Type)
	}
	assert.True(Te, floats.EqualApprox(sl(F.Cell().Lengths()), sl(G.Cell().Lengths()), 1e-3))
	assert.True(Te, floats.EqualApprox(sl(F.Cell().Angles()), sl(G.Cell().Angles()), 1e-2))

	//and the records are stable
	again, err := C.Encode(G)
	require.NoError(Te, err)
	assert.Equal(Te, recs, again)
}

//secondFrame returns the records of the second frame of the reference output.
func secondFrame(Te *testing.T) []string {
	frames := strings.SplitAfter(expected, "END\n")
	require.Len(Te, frames, 3)
	return strings.Split(strings.TrimSpace(frames[1]), "\n")
}

//CONECT records repeating the same leading serial add to the same atom.
func TestDecodeContinuation(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	F, err := C.Decode(secondFrame(Te))
	require.NoError(Te, err)
	assert.Equal(Te, 7, F.Len())
	assert.Equal(Te, []chem.Bond{{0, 1}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 5}, {4, 6}, {5, 6}}, F.Topology().Bonds())
	assert.Equal(Te, []int{0, 1, 2, 3, 4, 5}, F.Topology().Neighbors(6))
}

//Atoms without residue are written in residues of their own, named RES,
//so they come back as one residue each.
func TestDecodeUnresidued(Te *testing.T) {
	C, err := New(nil)
	require.NoError(Te, err)
	F, err := C.Decode(secondFrame(Te))
	require.NoError(Te, err)
	res := F.Topology().Residues()
	require.Len(Te, res, 6)
	type want struct {
		name  string
		id    int
		atoms []int
	}
	wants := []want{
		{"RES", 4, []int{0}},
		{"foo", 3, []int{1, 2}},
		{"bar", -1, []int{3}},
		{"RES", 5, []int{4}},
		{"RES", 6, []int{5}},
		{"RES", 7, []int{6}},
	}
	for k, w := range wants {
		id, ok := res[k].ID()
		assert.True(Te, ok)
		assert.Equal(Te, w.id, id, w.name)
		assert.Equal(Te, w.name, res[k].Name())
		assert.Equal(Te, w.atoms, res[k].Atoms())
	}
}
