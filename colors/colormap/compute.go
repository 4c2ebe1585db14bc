// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"cogentcore.org/brainview/colors"
	"cogentcore.org/brainview/math32/minmax"
)

// ErrDegenerateLimits is returned when color limits cannot normalize
// intensity values: min == max, or a bound that is not finite.
var ErrDegenerateLimits = errors.New("colormap: degenerate color limits")

// ComputeColors maps each intensity value to a color of the named
// continuous scale and returns the flat r, g, b sequence, each channel
// in [0, 1], in input order. Values are normalized against limits
// without clamping, so values outside the limits are handled by the
// scale itself. NaN values map to black. Unknown names panic.
func ComputeColors(intensity []float64, name Name, limits minmax.F64) ([]float32, error) {
	return compute(intensity, MustLookup(name), limits)
}

// ComputePaletteColors is [ComputeColors] for a discrete palette.
// It returns an error for unknown palette names.
func ComputePaletteColors(intensity []float64, name Name, limits minmax.F64) ([]float32, error) {
	pl, ok := LookupPalette(name)
	if !ok {
		return nil, fmt.Errorf("colormap: unknown palette %q", name)
	}
	return compute(intensity, pl, limits)
}

func compute(intensity []float64, sc Scale, limits minmax.F64) ([]float32, error) {
	if limits.IsDegenerate() {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrDegenerateLimits, limits.Min, limits.Max)
	}
	clrs := make([]float32, 0, 3*len(intensity))
	for _, x := range intensity {
		if math.IsNaN(x) {
			clrs = append(clrs, 0, 0, 0)
			continue
		}
		c, err := Decode(sc.Interpolate(limits.NormValue(x)))
		if err != nil {
			return nil, err
		}
		clrs = append(clrs, c[:]...)
	}
	return clrs, nil
}

// Decode decodes a color produced by a [Scale], in either #rrggbb or
// rgb(r, g, b) form, into unit float channels. A string in neither
// form decodes to black with an error.
func Decode(encoded string) ([3]float32, error) {
	s := strings.TrimSpace(encoded)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colors.FromHex(s)
		if err != nil {
			return [3]float32{}, err
		}
		return colors.Float(c), nil
	case strings.HasPrefix(s, "rgb("):
		c, err := colors.FromRGBString(s)
		if err != nil {
			return [3]float32{}, err
		}
		return colors.Float(c), nil
	}
	return [3]float32{}, fmt.Errorf("%w: %q", colors.ErrInvalidColor, encoded)
}

// ColorFunc returns the scale of the given name as a function from
// a data value within limits to a decoded color, for legends.
func ColorFunc(name Name, limits minmax.F64) func(v float64) [3]float32 {
	sc := MustLookup(name)
	return func(v float64) [3]float32 {
		c, _ := Decode(sc.Interpolate(limits.NormValue(v)))
		return c
	}
}
