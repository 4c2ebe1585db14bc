// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"math"

	"cogentcore.org/brainview/colors"
)

// Palette is a discrete list of colors. As a [Scale] it quantizes:
// t in [0, 1] is split into len(Colors) equal bins.
type Palette struct {
	Colors []color.RGBA
	kind   Kinds
}

func newPalette(scheme string, kind Kinds) *Palette {
	return &Palette{Colors: schemeColors(scheme), kind: kind}
}

func (pl *Palette) Kind() Kinds { return pl.kind }

// Len returns the number of colors in the palette.
func (pl *Palette) Len() int { return len(pl.Colors) }

// Index returns the color at index i, wrapping around for
// indexes beyond the palette length (including negative ones).
func (pl *Palette) Index(i int) color.RGBA {
	n := len(pl.Colors)
	return pl.Colors[((i%n)+n)%n]
}

func (pl *Palette) Interpolate(t float64) string {
	n := len(pl.Colors)
	i := 0
	if !math.IsNaN(t) {
		i = max(0, min(n-1, int(math.Floor(t*float64(n)))))
	}
	return colors.Hex(pl.Colors[i])
}
