// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	mr, ok := Range([]float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5})
	assert.True(t, ok)
	assert.Equal(t, F64{Min: 1, Max: 9}, mr)

	_, ok = Range(nil)
	assert.False(t, ok)
	_, ok = Range([]float64{})
	assert.False(t, ok)

	mr, ok = Range([]float64{-2})
	assert.True(t, ok)
	assert.Equal(t, F64{Min: -2, Max: -2}, mr)
}

func TestRangeNaN(t *testing.T) {
	mr, ok := Range([]float64{2, math.NaN(), -1, 7})
	assert.True(t, ok)
	assert.Equal(t, F64{Min: -1, Max: 7}, mr)

	mr, ok = Range([]float64{math.NaN(), 1, 2})
	assert.True(t, ok)
	assert.True(t, math.IsNaN(mr.Min))
	assert.True(t, math.IsNaN(mr.Max))
}

func TestRange32(t *testing.T) {
	vtx := []float32{0, 10, -1, 5, -3, 2, -4, 8, 7}
	mr, ok := Range32(vtx, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, F32{Min: -3, Max: 10}, mr)
	assert.Equal(t, float32(3.5), mr.Midpoint())

	mr, ok = Range32(vtx, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, F32{Min: -4, Max: 10}, mr)

	_, ok = Range32(vtx, 3, 9)
	assert.False(t, ok)
}

func TestF64(t *testing.T) {
	mr := F64{Min: 2, Max: 6}
	assert.Equal(t, 4.0, mr.Range())
	assert.Equal(t, 4.0, mr.Midpoint())
	assert.Equal(t, 0.5, mr.NormValue(4))
	assert.Equal(t, 1.5, mr.NormValue(8))
	assert.Equal(t, 5.0, mr.ProjValue(0.75))
	assert.Equal(t, 6.0, mr.ClipValue(10))
	assert.True(t, mr.InRange(2))
	assert.False(t, mr.IsDegenerate())

	assert.True(t, F64{Min: 1, Max: 1}.IsDegenerate())
	assert.True(t, F64{Min: 0, Max: math.Inf(1)}.IsDegenerate())
	assert.True(t, F64{Min: math.NaN(), Max: 1}.IsDegenerate())

	var fit F64
	fit.SetInfinity()
	assert.False(t, fit.IsValid())
	assert.True(t, fit.FitValInRange(3))
	assert.True(t, fit.FitValInRange(-1))
	assert.False(t, fit.FitValInRange(0))
	assert.Equal(t, F64{Min: -1, Max: 3}, fit)
}
