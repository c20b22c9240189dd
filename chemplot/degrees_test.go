/*
 * degrees_test.go
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/gochemfiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//methane plus a lone atom
func methane(Te *testing.T) *chem.Topology {
	top := chem.NewTopology()
	top.Append(chem.NewAtom("C"))
	for i := 0; i < 4; i++ {
		top.Append(chem.NewAtom("H"))
		require.NoError(Te, top.AddBond(0, i+1))
	}
	top.Append(chem.NewAtom("Ar"))
	return top
}

func TestDegreeCounts(Te *testing.T) {
	assert.Equal(Te, []float64{1, 4, 0, 0, 1}, DegreeCounts(methane(Te)))
}

func TestDegreePlot(Te *testing.T) {
	p, err := DegreePlot(methane(Te), "Methane")
	require.NoError(Te, err)
	assert.Contains(Te, p.Title.Text, "1.33 +/-")

	_, err = DegreePlot(chem.NewTopology(), "Empty")
	assert.Error(Te, err)

	name := filepath.Join(Te.TempDir(), "degrees")
	require.NoError(Te, SaveDegreePlot(methane(Te), "Methane", name))
	info, err := os.Stat(name + ".png")
	require.NoError(Te, err)
	assert.True(Te, info.Size() > 0)
}
