// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

// Range returns the minimum and maximum of the given values in a single
// linear scan, and false if values is empty. Comparisons follow IEEE
// semantics, so a NaN never replaces a bound and is never replaced by one
// unless it is the first element.
func Range(values []float64) (F64, bool) {
	if len(values) == 0 {
		return F64{}, false
	}
	mr := F64{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if mr.Max < v {
			mr.Max = v
		}
		if mr.Min > v {
			mr.Min = v
		}
	}
	return mr, true
}

// F32 represents a min / max range for float32 values.
type F32 struct {
	Min float32
	Max float32
}

// Midpoint returns point halfway between Min and Max
func (mr F32) Midpoint() float32 {
	return 0.5 * (mr.Max + mr.Min)
}

// Range32 is the float32 version of [Range], with an optional stride
// and offset so that a single component of interleaved vectors can
// be scanned (e.g., stride 3, offset 1 for the y of xyz vertices).
func Range32(values []float32, stride, offset int) (F32, bool) {
	if stride <= 0 {
		stride = 1
	}
	if offset >= len(values) || offset < 0 {
		return F32{}, false
	}
	mr := F32{Min: values[offset], Max: values[offset]}
	for i := offset + stride; i < len(values); i += stride {
		v := values[i]
		if mr.Max < v {
			mr.Max = v
		}
		if mr.Min > v {
			mr.Min = v
		}
	}
	return mr, true
}
