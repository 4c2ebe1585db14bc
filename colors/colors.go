// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses the color strings used throughout brainview
// (hex, rgb() and CSS color names) and converts between 8-bit and
// unit-float representations.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for color strings that cannot be parsed.
var ErrInvalidColor = errors.New("colors: invalid color string")

// FromHex parses a color in the form #rrggbb or #rgb. The leading # is optional.
func FromHex(hex string) (color.RGBA, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 && len(hex) != 4 {
		return color.RGBA{A: 255}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 255}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FromRGBString parses a color in the form rgb(r, g, b) with 8-bit integer
// channels, as produced by d3 color formatting. Whitespace is ignored and
// channels are clamped to 0-255.
func FromRGBString(s string) (color.RGBA, error) {
	str := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	var r, g, b int
	if _, err := fmt.Sscanf(str, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
		return color.RGBA{A: 255}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: 255}, nil
}

// FromName returns the CSS (SVG 1.1) named color, case-insensitively.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{A: 255}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, name)
	}
	return c, nil
}

// FromString parses any of the supported color forms: #rrggbb, #rgb,
// rgb(r, g, b), 0xrrggbb and CSS color names.
func FromString(s string) (color.RGBA, error) {
	str := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(str, "#"):
		return FromHex(str)
	case strings.HasPrefix(str, "0x"), strings.HasPrefix(str, "0X"):
		return FromHex(str[2:])
	case strings.HasPrefix(strings.ToLower(str), "rgb("):
		return FromRGBString(strings.ToLower(str))
	}
	return FromName(str)
}

// Float returns the r, g, b channels of c as float32 values in [0, 1],
// dividing each 8-bit channel by 255.
func Float(c color.RGBA) [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString formats the given 0-255 channel values as rgb(r, g, b),
// rounding and clamping each channel. NaN channels format as 0.
func RGBString(r, g, b float64) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", clampRound(r), clampRound(g), clampRound(b))
}

// Blend returns the linear sRGB blend of a and b at fraction t of the way to b.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bb := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bb, A: 255}
}

func clamp8(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

func clampRound(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(255, int(math.Round(v))))
}
