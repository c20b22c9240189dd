/*
 * v3_test.go
 *
 * Copyright 2013 Raul Mera <rmera@zinc>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))

	_, err = NewMatrix([]float64{1, 2})
	assert.Error(Te, err)

	E, err := NewMatrix(nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, E.NVecs())
	assert.Equal(Te, 0, Zeros(0).NVecs())
}

func TestVecs(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	A.SetVec(0, [3]float64{7, 8, 9})
	assert.Equal(Te, [3]float64{7, 8, 9}, A.Vec(0))
	assert.Equal(Te, 7.0, A.At(0, 0))
	assert.Panics(Te, func() { A.Vec(2) })
	assert.Panics(Te, func() { A.SetVec(-1, [3]float64{}) })
	assert.Equal(Te, "   7.000    8.000    9.000\n   4.000    5.000    6.000\n", A.String())
	assert.Equal(Te, "[]", Zeros(0).String())
}

func TestError(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	var verr *Error
	require.ErrorAs(Te, err, &verr)
	assert.True(Te, verr.Critical())
	assert.Equal(Te, []string{"NewMatrix", "Frame.SetCoords"}, verr.Decorate("Frame.SetCoords"))
}
