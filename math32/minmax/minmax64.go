// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values,
// and the linear scan that finds them in a slice.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
// Supports clipping, renormalizing, etc
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +Inf, Max to -Inf -- suitable for
// iteratively calling FitValInRange
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// IsValid returns true if Min <= Max
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// IsDegenerate returns true if the range cannot be used to normalize
// values: Min == Max, or either bound is NaN or infinite.
func (mr F64) IsDegenerate() bool {
	if math.IsNaN(mr.Min) || math.IsNaN(mr.Max) || math.IsInf(mr.Min, 0) || math.IsInf(mr.Max, 0) {
		return true
	}
	return mr.Min == mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr F64) InRange(val float64) bool {
	return ((val >= mr.Min) && (val <= mr.Max))
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns point halfway between Min and Max
func (mr F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range.
// It does not clip: values outside the range map outside 0-1, and a
// zero Range yields a non-finite result.
func (mr F64) NormValue(val float64) float64 {
	return (val - mr.Min) / (mr.Max - mr.Min)
}

// ProjValue projects a 0-1 normalized unit value into current Min / Max range (inverse of NormValue)
func (mr F64) ProjValue(val float64) float64 {
	return mr.Min + (val * mr.Range())
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}
