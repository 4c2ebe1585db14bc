// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"errors"
	"fmt"

	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/math32/minmax"
)

// ErrNoLimits is returned when color limits are neither given
// nor inferable because the intensity is empty.
var ErrNoLimits = errors.New("surface: no color limits for empty intensity")

// VertexMap is one scalar field over the vertices of a mesh, with the
// colors derived from it. The colors are always the result of
// [colormap.ComputeColors] on the other three fields: they are computed
// when the map is made and on every [VertexMap.Update], and there is
// no other way to change them.
type VertexMap struct {
	intensity    []float64
	limits       minmax.F64
	colorMapName colormap.Name
	colors       []float32
}

// VertexMapOption sets an optional field of a new [VertexMap].
type VertexMapOption func(s *vertexMapSettings)

type vertexMapSettings struct {
	name      colormap.Name
	limits    minmax.F64
	hasLimits bool
}

// WithColorMap sets the name of the color scale, [colormap.Default] otherwise.
func WithColorMap(name colormap.Name) VertexMapOption {
	return func(s *vertexMapSettings) {
		s.name = name
	}
}

// WithLimits sets the intensity values mapped to the two ends of the
// color scale. Without it, the range of the intensity is used.
func WithLimits(mn, mx float64) VertexMapOption {
	return func(s *vertexMapSettings) {
		s.limits = minmax.F64{Min: mn, Max: mx}
		s.hasLimits = true
	}
}

// VertexMapUpdate holds the fields to replace in [VertexMap.Update].
// Nil or empty fields keep their current value; in particular, new
// intensity values keep the current limits unless new ones are given.
type VertexMapUpdate struct {
	Intensity    []float64
	Limits       *minmax.F64
	ColorMapName colormap.Name
}

// NewVertexMap returns a new vertex map for the given intensity values,
// with colors computed. It returns an error if the limits are
// degenerate, or missing with no intensity to infer them from.
// An unknown color map name panics.
func NewVertexMap(intensity []float64, opts ...VertexMapOption) (*VertexMap, error) {
	s := vertexMapSettings{name: colormap.Default}
	for _, opt := range opts {
		opt(&s)
	}
	if !s.hasLimits {
		lim, ok := minmax.Range(intensity)
		if !ok {
			return nil, ErrNoLimits
		}
		s.limits = lim
	}
	vm := &VertexMap{intensity: intensity, limits: s.limits, colorMapName: s.name}
	if err := vm.computeColors(); err != nil {
		return nil, err
	}
	return vm, nil
}

func (vm *VertexMap) computeColors() error {
	clrs, err := colormap.ComputeColors(vm.intensity, vm.colorMapName, vm.limits)
	if err != nil {
		return fmt.Errorf("surface: vertex map colors: %w", err)
	}
	vm.colors = clrs
	return nil
}

// Update replaces the given fields and recomputes the colors. On error
// the vertex map is left unchanged.
func (vm *VertexMap) Update(up VertexMapUpdate) error {
	nvm := *vm
	if up.Intensity != nil {
		nvm.intensity = up.Intensity
	}
	if up.Limits != nil {
		nvm.limits = *up.Limits
	}
	if up.ColorMapName != "" {
		nvm.colorMapName = up.ColorMapName
	}
	if err := nvm.computeColors(); err != nil {
		return err
	}
	*vm = nvm
	return nil
}

// Intensity returns the scalar value of each vertex.
func (vm *VertexMap) Intensity() []float64 { return vm.intensity }

// Limits returns the intensity values mapped to the ends of the color scale.
func (vm *VertexMap) Limits() minmax.F64 { return vm.limits }

// ColorMapName returns the name of the color scale.
func (vm *VertexMap) ColorMapName() colormap.Name { return vm.colorMapName }

// Colors returns the flat r, g, b colors of each vertex, in [0, 1].
func (vm *VertexMap) Colors() []float32 { return vm.colors }

// Len returns the number of intensity values.
func (vm *VertexMap) Len() int { return len(vm.intensity) }
