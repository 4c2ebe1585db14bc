// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides the closed registry of named color scales
// used to color scalar vertex data, and the engine that maps intensity
// arrays to flat RGB color buffers.
//
// A [Scale] maps a normalized value t to an encoded color string, either
// #rrggbb or rgb(r, g, b), following the conventions of d3-scale-chromatic.
// Continuous scales are looked up with [Lookup] and discrete palettes
// with [LookupPalette]; neither registry can be extended at runtime.
package colormap

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Name is the name of a color scale in one of the registries.
type Name string

// Kinds is the kind of a color scale.
type Kinds int32

const (
	// Sequential scales go from light to dark (or dark to light) in one direction.
	Sequential Kinds = iota

	// Diverging scales have a neutral midpoint and two contrasting ends.
	Diverging

	// Cyclical scales wrap around: t and t+1 map to the same color.
	Cyclical

	// Categorical scales are discrete sets of distinct colors.
	Categorical
)

var kindNames = [...]string{"Sequential", "Diverging", "Cyclical", "Categorical"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// Scale is a named function mapping a normalized value t to a color.
// Values of t outside [0, 1] are allowed; each scale decides whether
// it clamps, wraps or extrapolates.
type Scale interface {
	// Interpolate returns the color for t, encoded as #rrggbb or rgb(r, g, b).
	Interpolate(t float64) string

	// Kind returns the kind of scale.
	Kind() Kinds
}

// Func adapts an interpolation function to a [Scale].
type Func struct {
	Fun  func(t float64) string
	Type Kinds
}

func (f Func) Interpolate(t float64) string { return f.Fun(t) }

func (f Func) Kind() Kinds { return f.Type }

// Continuous color scale names.
const (
	Blues            Name = "Blues"
	BrBG             Name = "BrBG"
	BuGn             Name = "BuGn"
	BuPu             Name = "BuPu"
	Cividis          Name = "Cividis"
	Cool             Name = "Cool"
	CubehelixDefault Name = "CubehelixDefault"
	GnBu             Name = "GnBu"
	Greens           Name = "Greens"
	Greys            Name = "Greys"
	Inferno          Name = "Inferno"
	Magma            Name = "Magma"
	OrRd             Name = "OrRd"
	Oranges          Name = "Oranges"
	PRGn             Name = "PRGn"
	PiYG             Name = "PiYG"
	Plasma           Name = "Plasma"
	PuBu             Name = "PuBu"
	PuBuGn           Name = "PuBuGn"
	PuOr             Name = "PuOr"
	PuRd             Name = "PuRd"
	Purples          Name = "Purples"
	Rainbow          Name = "Rainbow"
	RdBu             Name = "RdBu"
	RdGy             Name = "RdGy"
	RdPu             Name = "RdPu"
	RdYlBu           Name = "RdYlBu"
	RdYlGn           Name = "RdYlGn"
	Reds             Name = "Reds"
	Sinebow          Name = "Sinebow"
	Spectral         Name = "Spectral"
	Turbo            Name = "Turbo"
	Viridis          Name = "Viridis"
	Warm             Name = "Warm"
	YlGn             Name = "YlGn"
	YlGnBu           Name = "YlGnBu"
	YlOrBr           Name = "YlOrBr"
	YlOrRd           Name = "YlOrRd"
)

// Discrete palette names that only exist in the palette registry.
const (
	Accent     Name = "Accent"
	Category10 Name = "Category10"
	Dark2      Name = "Dark2"
	Paired     Name = "Paired"
	Pastel1    Name = "Pastel1"
	Pastel2    Name = "Pastel2"
	Set1       Name = "Set1"
	Set2       Name = "Set2"
	Set3       Name = "Set3"
	Tableau10  Name = "Tableau10"
)

// Default is the scale used when no color map name is given.
const Default = Viridis

// interpolators is the registry of continuous scales.
var interpolators = map[Name]Scale{
	Blues:   newBasis(schemeBlues, Sequential),
	Greens:  newBasis(schemeGreens, Sequential),
	Greys:   newBasis(schemeGreys, Sequential),
	Oranges: newBasis(schemeOranges, Sequential),
	Purples: newBasis(schemePurples, Sequential),
	Reds:    newBasis(schemeReds, Sequential),

	BuGn:   newBasis(schemeBuGn, Sequential),
	BuPu:   newBasis(schemeBuPu, Sequential),
	GnBu:   newBasis(schemeGnBu, Sequential),
	OrRd:   newBasis(schemeOrRd, Sequential),
	PuBuGn: newBasis(schemePuBuGn, Sequential),
	PuBu:   newBasis(schemePuBu, Sequential),
	PuRd:   newBasis(schemePuRd, Sequential),
	RdPu:   newBasis(schemeRdPu, Sequential),
	YlGnBu: newBasis(schemeYlGnBu, Sequential),
	YlGn:   newBasis(schemeYlGn, Sequential),
	YlOrBr: newBasis(schemeYlOrBr, Sequential),
	YlOrRd: newBasis(schemeYlOrRd, Sequential),

	BrBG:     newBasis(schemeBrBG, Diverging),
	PRGn:     newBasis(schemePRGn, Diverging),
	PiYG:     newBasis(schemePiYG, Diverging),
	PuOr:     newBasis(schemePuOr, Diverging),
	RdBu:     newBasis(schemeRdBu, Diverging),
	RdGy:     newBasis(schemeRdGy, Diverging),
	RdYlBu:   newBasis(schemeRdYlBu, Diverging),
	RdYlGn:   newBasis(schemeRdYlGn, Diverging),
	Spectral: newBasis(schemeSpectral, Diverging),

	Viridis: newPalette(schemeViridis, Sequential),
	Magma:   newPalette(schemeMagma, Sequential),
	Inferno: newPalette(schemeInferno, Sequential),
	Plasma:  newPalette(schemePlasma, Sequential),

	Turbo:   Func{Fun: turbo, Type: Sequential},
	Cividis: Func{Fun: cividis, Type: Sequential},
	Sinebow: Func{Fun: sinebow, Type: Cyclical},
	Rainbow: Func{Fun: rainbow, Type: Cyclical},

	Warm:             cubehelixLong{a: cubehelix{-100, 0.75, 0.35}, b: cubehelix{80, 1.50, 0.8}},
	Cool:             cubehelixLong{a: cubehelix{260, 0.75, 0.35}, b: cubehelix{80, 1.50, 0.8}},
	CubehelixDefault: cubehelixLong{a: cubehelix{300, 0.5, 0.0}, b: cubehelix{-240, 0.5, 1.0}},
}

// palettes is the registry of discrete palettes.
var palettes = map[Name]*Palette{
	Accent:     newPalette(schemeAccent, Categorical),
	Category10: newPalette(schemeCategory10, Categorical),
	Dark2:      newPalette(schemeDark2, Categorical),
	Paired:     newPalette(schemePaired, Categorical),
	Pastel1:    newPalette(schemePastel1, Categorical),
	Pastel2:    newPalette(schemePastel2, Categorical),
	Set1:       newPalette(schemeSet1, Categorical),
	Set2:       newPalette(schemeSet2, Categorical),
	Set3:       newPalette(schemeSet3, Categorical),
	Tableau10:  newPalette(schemeTableau10, Categorical),

	Blues:   newPalette(schemeBlues, Sequential),
	Greens:  newPalette(schemeGreens, Sequential),
	Greys:   newPalette(schemeGreys, Sequential),
	Oranges: newPalette(schemeOranges, Sequential),
	Purples: newPalette(schemePurples, Sequential),
	Reds:    newPalette(schemeReds, Sequential),
	BuGn:    newPalette(schemeBuGn, Sequential),
	BuPu:    newPalette(schemeBuPu, Sequential),
	GnBu:    newPalette(schemeGnBu, Sequential),
	OrRd:    newPalette(schemeOrRd, Sequential),
	PuBuGn:  newPalette(schemePuBuGn, Sequential),
	PuBu:    newPalette(schemePuBu, Sequential),
	PuRd:    newPalette(schemePuRd, Sequential),
	RdPu:    newPalette(schemeRdPu, Sequential),
	YlGnBu:  newPalette(schemeYlGnBu, Sequential),
	YlGn:    newPalette(schemeYlGn, Sequential),
	YlOrBr:  newPalette(schemeYlOrBr, Sequential),
	YlOrRd:  newPalette(schemeYlOrRd, Sequential),

	BrBG:     newPalette(schemeBrBG, Diverging),
	PRGn:     newPalette(schemePRGn, Diverging),
	PiYG:     newPalette(schemePiYG, Diverging),
	PuOr:     newPalette(schemePuOr, Diverging),
	RdBu:     newPalette(schemeRdBu, Diverging),
	RdGy:     newPalette(schemeRdGy, Diverging),
	RdYlBu:   newPalette(schemeRdYlBu, Diverging),
	RdYlGn:   newPalette(schemeRdYlGn, Diverging),
	Spectral: newPalette(schemeSpectral, Diverging),
}

// Lookup returns the continuous scale of the given name.
func Lookup(name Name) (Scale, bool) {
	sc, ok := interpolators[name]
	return sc, ok
}

// MustLookup returns the continuous scale of the given name,
// panicking if there is none. Scale names are fixed at compile time,
// so a miss is a programming error.
func MustLookup(name Name) Scale {
	sc, ok := interpolators[name]
	if !ok {
		panic(fmt.Sprintf("colormap: unknown color scale %q", name))
	}
	return sc
}

// LookupPalette returns the discrete palette of the given name.
func LookupPalette(name Name) (*Palette, bool) {
	pl, ok := palettes[name]
	return pl, ok
}

// Names returns the sorted names of all continuous scales.
func Names() []Name {
	return sortedKeys(interpolators)
}

// PaletteNames returns the sorted names of all discrete palettes.
func PaletteNames() []Name {
	return sortedKeys(palettes)
}

func sortedKeys[V any](m map[Name]V) []Name {
	names := lo.Keys(m)
	slices.Sort(names)
	return names
}
