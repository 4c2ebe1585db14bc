// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"math"

	"cogentcore.org/brainview/colors"
)

// basis is a scale passing a uniform cubic B-spline through the colors
// of a scheme, channel by channel in sRGB. t is clamped to [0, 1].
type basis struct {
	r, g, b []float64
	kind    Kinds
}

func newBasis(scheme string, kind Kinds) *basis {
	cs := schemeColors(scheme)
	bs := &basis{kind: kind}
	bs.r, bs.g, bs.b = channels(cs)
	return bs
}

func channels(cs []color.RGBA) (r, g, b []float64) {
	r = make([]float64, len(cs))
	g = make([]float64, len(cs))
	b = make([]float64, len(cs))
	for i, c := range cs {
		r[i], g[i], b[i] = float64(c.R), float64(c.G), float64(c.B)
	}
	return
}

func (bs *basis) Kind() Kinds { return bs.kind }

func (bs *basis) Interpolate(t float64) string {
	return colors.RGBString(splineBasis(bs.r, t), splineBasis(bs.g, t), splineBasis(bs.b, t))
}

// splineBasis evaluates the uniform B-spline through values at t,
// with phantom end points reflected about the first and last values.
func splineBasis(values []float64, t float64) float64 {
	n := len(values) - 1
	var i int
	switch {
	case t <= 0 || math.IsNaN(t):
		t = 0
		i = 0
	case t >= 1:
		t = 1
		i = n - 1
	default:
		i = int(math.Floor(t * float64(n)))
	}
	v1 := values[i]
	v2 := values[i+1]
	v0 := 2*v1 - v2
	if i > 0 {
		v0 = values[i-1]
	}
	v3 := 2*v2 - v1
	if i < n-1 {
		v3 = values[i+2]
	}
	return basisPoint((t-float64(i)/float64(n))*float64(n), v0, v1, v2, v3)
}

func basisPoint(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}
