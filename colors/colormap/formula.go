// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"math"

	"cogentcore.org/brainview/colors"
)

// turbo is Google's Turbo rainbow map as a polynomial in 8-bit space.
func turbo(t float64) string {
	t = clamp01(t)
	r := 34.61 + t*(1172.33-t*(10793.56-t*(33300.12-t*(38394.49-t*14825.05))))
	g := 23.31 + t*(557.33+t*(1225.33-t*(3574.96-t*(1073.77+t*707.56))))
	b := 27.2 + t*(3211.1-t*(15327.97-t*(27814-t*(22569.18-t*6838.66))))
	return colors.RGBString(r, g, b)
}

// cividis is the color vision deficiency optimized map as a polynomial in 8-bit space.
func cividis(t float64) string {
	t = clamp01(t)
	r := -4.54 - t*(35.34-t*(2381.73-t*(6402.7-t*(7024.72-t*2710.57))))
	g := 32.49 + t*(170.73+t*(52.82-t*(131.46-t*(176.58-t*67.37))))
	b := 81.24 + t*(442.36-t*(2482.43-t*(6167.24-t*(6614.94-t*2475.67))))
	return colors.RGBString(r, g, b)
}

// sinebow is a cyclical rainbow of squared sines, so it wraps naturally.
func sinebow(t float64) string {
	t = (0.5 - t) * math.Pi
	r := math.Sin(t)
	g := math.Sin(t + math.Pi/3)
	b := math.Sin(t + 2*math.Pi/3)
	return colors.RGBString(255*r*r, 255*g*g, 255*b*b)
}

// rainbow is the cyclical less-angry rainbow: warm and cool cubehelix
// halves joined at the ends. t wraps into [0, 1].
func rainbow(t float64) string {
	if t < 0 || t > 1 {
		t -= math.Floor(t)
	}
	ts := math.Abs(t - 0.5)
	return cubehelix{h: 360*t - 100, s: 1.5 - 1.5*ts, l: 0.8 - 0.9*ts}.String()
}

// cubehelix is a color in Dave Green's cubehelix space:
// hue in degrees, saturation and lightness.
type cubehelix struct {
	h, s, l float64
}

const (
	chA = -0.14861
	chB = +1.78277
	chC = -0.29227
	chD = -0.90649
	chE = +1.97294
)

// rgb returns the 0-255 sRGB channels of the color, unclamped.
func (c cubehelix) rgb() (r, g, b float64) {
	h := 0.0
	if !math.IsNaN(c.h) {
		h = (c.h + 120) * math.Pi / 180
	}
	l := c.l
	a := 0.0
	if !math.IsNaN(c.s) {
		a = c.s * l * (1 - l)
	}
	cosh, sinh := math.Cos(h), math.Sin(h)
	r = 255 * (l + a*(chA*cosh+chB*sinh))
	g = 255 * (l + a*(chC*cosh+chD*sinh))
	b = 255 * (l + a*(chE*cosh))
	return
}

func (c cubehelix) String() string {
	return colors.RGBString(c.rgb())
}

// cubehelixLong interpolates linearly in cubehelix space between a and b
// without taking the shortest hue path. t is not clamped, so values
// outside [0, 1] extrapolate; the encoded channels are clamped to 0-255.
type cubehelixLong struct {
	a, b cubehelix
}

func (cl cubehelixLong) Kind() Kinds { return Sequential }

func (cl cubehelixLong) Interpolate(t float64) string {
	return cubehelix{
		h: cl.a.h + t*(cl.b.h-cl.a.h),
		s: cl.a.s + t*(cl.b.s-cl.a.s),
		l: cl.a.l + t*(cl.b.l-cl.a.l),
	}.String()
}

// clamp01 clamps t to [0, 1], mapping NaN to 0.
func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
