/*
 * graph_test.go, part of gochemfiles.
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

package chemgraph

import (
	"errors"
	"testing"

	chem "github.com/rmera/gochemfiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//A 4-atom chain, a 3-membered ring and a lone atom.
func fragments(Te *testing.T) *chem.Topology {
	top := chem.NewTopology()
	top.Resize(8)
	for _, b := range [][2]int{{0, 1}, {1, 2}, {2, 6}, {3, 4}, {4, 5}, {5, 3}} {
		require.NoError(Te, top.AddBond(b[0], b[1]))
	}
	return top
}

func TestGraph(Te *testing.T) {
	top := fragments(Te)
	g := NewGraph(top)
	assert.Equal(Te, 8, g.Nodes().Len())
	assert.True(Te, g.HasEdgeBetween(6, 2))
	assert.False(Te, g.HasEdgeBetween(0, 2))
	assert.Equal(Te, 2, g.Node(2).(*Atom).Index())
}

func TestMolecules(Te *testing.T) {
	top := fragments(Te)
	assert.Equal(Te, [][]int{{0, 1, 2, 6}, {3, 4, 5}, {7}}, Molecules(top))
	assert.True(Te, Rings(top))
	require.NoError(Te, top.RemoveBond(3, 5))
	assert.False(Te, Rings(top))
	assert.Equal(Te, []string{"molecule 0: 4 atoms (0-6)", "molecule 1: 3 atoms (3-5)", "molecule 2: 1 atoms (7-7)"}, Summary(top))
}

func TestShortestPath(Te *testing.T) {
	top := fragments(Te)
	p, err := ShortestPath(top, 0, 6)
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 1, 2, 6}, p)
	p, err = ShortestPath(top, 0, 3)
	require.NoError(Te, err)
	assert.Nil(Te, p)
	p, err = ShortestPath(top, 4, 4)
	require.NoError(Te, err)
	assert.Equal(Te, []int{4}, p)
	_, err = ShortestPath(top, 0, 8)
	assert.True(Te, errors.Is(err, chem.ErrOutOfBounds))
}

func TestDegrees(Te *testing.T) {
	assert.Equal(Te, []int{1, 2, 2, 2, 2, 2, 1, 0}, Degrees(fragments(Te)))
}
