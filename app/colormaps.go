// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/brainview/colors"
	"cogentcore.org/brainview/colors/colormap"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

// ListColorMaps writes the name and kind of every continuous scale and
// discrete palette to w, each followed by a swatch of steps colors
// rendered with the given terminal color profile.
func ListColorMaps(w io.Writer, profile termenv.Profile, steps int) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	all := append(colormap.Names(), colormap.PaletteNames()...)
	width := lo.Max(lo.Map(all, func(n colormap.Name, _ int) int { return len(n) }))

	swatch := func(cs []color.RGBA) string {
		var sb strings.Builder
		for _, c := range cs {
			sb.WriteString(out.String(" ").Background(out.Color(colors.Hex(c))).String())
		}
		return sb.String()
	}
	line := func(section string, name colormap.Name, kind colormap.Kinds, cs []color.RGBA) error {
		_, err := fmt.Fprintf(w, "%-7s %-*s %-11s %s\n", section, width, name, kind, swatch(cs))
		return err
	}

	for _, name := range colormap.Names() {
		sc := colormap.MustLookup(name)
		cs := make([]color.RGBA, steps)
		for i := range cs {
			c, err := colormap.Decode(sc.Interpolate((float64(i) + 0.5) / float64(steps)))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			cs[i] = color.RGBA{toByte(c[0]), toByte(c[1]), toByte(c[2]), 255}
		}
		if err := line("scale", name, sc.Kind(), cs); err != nil {
			return err
		}
	}
	for _, name := range colormap.PaletteNames() {
		pl, _ := colormap.LookupPalette(name)
		if err := line("palette", name, pl.Kind(), pl.Colors); err != nil {
			return err
		}
	}
	return nil
}

func toByte(v float32) uint8 {
	return uint8(max(0, min(255, v*255+0.5)))
}
