// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"
	"testing"

	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/math32/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// octahedron with outward facing counter-clockwise faces
var (
	octVertices = []float32{1, 0, 0, -1, 0, 0, 0, 1, 0, 0, -1, 0, 0, 0, 1, 0, 0, -1}
	octFaces    = []uint32{0, 2, 4, 1, 4, 2, 0, 4, 3, 0, 5, 2, 1, 3, 4, 1, 2, 5, 0, 3, 5, 1, 5, 3}
)

func TestSurfaceMesh(t *testing.T) {
	sm := NewSurfaceMesh(octVertices, octFaces)
	assert.Equal(t, octVertices, sm.Vertices())
	assert.Equal(t, octFaces, sm.Faces())
	assert.Equal(t, 6, sm.VertexCount())
	assert.Equal(t, 8, sm.FaceCount())
	assert.NoError(t, sm.Validate())

	nv := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	sm.Update(MeshUpdate{Vertices: nv})
	assert.Equal(t, nv, sm.Vertices())
	assert.Equal(t, octFaces, sm.Faces())

	sm.Update(MeshUpdate{Faces: []uint32{0, 1, 2}})
	assert.Equal(t, nv, sm.Vertices())
	assert.Equal(t, []uint32{0, 1, 2}, sm.Faces())
	assert.NoError(t, sm.Validate())
}

func TestSurfaceMeshValidate(t *testing.T) {
	err := NewSurfaceMesh([]float32{0, 0, 0, 1}, []uint32{0, 0}).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMesh)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Problems, 2)

	err = NewSurfaceMesh([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 3}).Validate()
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Problems[0], "references vertex 3")
}

func TestVertexMap(t *testing.T) {
	intensity := []float64{3, 1, 2}
	vm, err := NewVertexMap(intensity)
	require.NoError(t, err)
	assert.Equal(t, intensity, vm.Intensity())
	assert.Equal(t, minmax.F64{Min: 1, Max: 3}, vm.Limits())
	assert.Equal(t, colormap.Viridis, vm.ColorMapName())
	want, err := colormap.ComputeColors(intensity, colormap.Viridis, minmax.F64{Min: 1, Max: 3})
	require.NoError(t, err)
	assert.Equal(t, want, vm.Colors())
	assert.Len(t, vm.Colors(), 9)

	vm, err = NewVertexMap(intensity, WithColorMap(colormap.Blues), WithLimits(0, 10))
	require.NoError(t, err)
	assert.Equal(t, minmax.F64{Min: 0, Max: 10}, vm.Limits())
	assert.Equal(t, colormap.Blues, vm.ColorMapName())
	want, err = colormap.ComputeColors(intensity, colormap.Blues, minmax.F64{Min: 0, Max: 10})
	require.NoError(t, err)
	assert.Equal(t, want, vm.Colors())
}

func TestVertexMapErrors(t *testing.T) {
	_, err := NewVertexMap(nil)
	assert.ErrorIs(t, err, ErrNoLimits)

	vm, err := NewVertexMap(nil, WithLimits(0, 1))
	require.NoError(t, err)
	assert.Empty(t, vm.Colors())

	_, err = NewVertexMap([]float64{2, 2, 2})
	assert.ErrorIs(t, err, colormap.ErrDegenerateLimits)

	_, err = NewVertexMap([]float64{1, 2}, WithLimits(5, 5))
	assert.ErrorIs(t, err, colormap.ErrDegenerateLimits)

	assert.Panics(t, func() {
		NewVertexMap([]float64{1, 2}, WithColorMap("NotAScale"))
	})
}

func TestVertexMapUpdate(t *testing.T) {
	vm, err := NewVertexMap([]float64{0, 1})
	require.NoError(t, err)

	require.NoError(t, vm.Update(VertexMapUpdate{ColorMapName: colormap.Blues}))
	want, _ := colormap.ComputeColors([]float64{0, 1}, colormap.Blues, minmax.F64{Min: 0, Max: 1})
	assert.Equal(t, want, vm.Colors())

	// new intensity keeps the current limits
	require.NoError(t, vm.Update(VertexMapUpdate{Intensity: []float64{0.5, 0.25, 1}}))
	assert.Equal(t, minmax.F64{Min: 0, Max: 1}, vm.Limits())
	want, _ = colormap.ComputeColors([]float64{0.5, 0.25, 1}, colormap.Blues, minmax.F64{Min: 0, Max: 1})
	assert.Equal(t, want, vm.Colors())

	lim := minmax.F64{Min: -1, Max: 1}
	require.NoError(t, vm.Update(VertexMapUpdate{Limits: &lim}))
	assert.Equal(t, lim, vm.Limits())
	want, _ = colormap.ComputeColors([]float64{0.5, 0.25, 1}, colormap.Blues, lim)
	assert.Equal(t, want, vm.Colors())

	bad := minmax.F64{Min: 1, Max: math.Inf(1)}
	err = vm.Update(VertexMapUpdate{Limits: &bad, ColorMapName: colormap.Reds})
	assert.ErrorIs(t, err, colormap.ErrDegenerateLimits)
	assert.Equal(t, lim, vm.Limits())
	assert.Equal(t, colormap.Blues, vm.ColorMapName())
	assert.Equal(t, want, vm.Colors())
}

func TestSurface(t *testing.T) {
	sf := NewSurface(octVertices, octFaces)
	require.Len(t, sf.Meshes(), 1)
	assert.Equal(t, octVertices, sf.Mesh().Vertices())
	assert.Equal(t, octFaces, sf.Mesh().Faces())
	assert.Equal(t, 0, sf.NumVertexMaps())
	assert.Nil(t, sf.ActiveVertexMap())
	assert.Equal(t, -1, sf.ActiveIndex())
	assert.NoError(t, sf.Validate())

	intensity := []float64{0, 1, 2, 3, 4, 5}
	require.NoError(t, sf.AddVertexMap(intensity, WithColorMap(colormap.Turbo), WithLimits(0, 5)))
	require.NoError(t, sf.AddVertexMap([]float64{5, 4, 3, 2, 1, 0}))
	assert.Equal(t, 2, sf.NumVertexMaps())
	assert.Equal(t, 1, sf.ActiveIndex())

	first, err := sf.VertexMap(0)
	require.NoError(t, err)
	want, err := colormap.ComputeColors(intensity, colormap.Turbo, minmax.F64{Min: 0, Max: 5})
	require.NoError(t, err)
	assert.Equal(t, want, first.Colors())

	last := sf.VertexMaps()[sf.NumVertexMaps()-1]
	assert.Same(t, last, sf.ActiveVertexMap())

	require.NoError(t, sf.SetActiveVertexMap(0))
	assert.Same(t, first, sf.ActiveVertexMap())

	err = sf.AddVertexMap(nil)
	assert.ErrorIs(t, err, ErrNoLimits)
	assert.Equal(t, 2, sf.NumVertexMaps())
}

func TestSurfaceDeleteVertexMap(t *testing.T) {
	sf := NewSurface(octVertices, octFaces)
	for i := range 3 {
		require.NoError(t, sf.AddVertexMap([]float64{0, 1, 2, 3, 4, 5}, WithLimits(0, float64(i+1))))
	}
	third := sf.ActiveVertexMap()

	assert.ErrorIs(t, sf.DeleteVertexMap(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, sf.DeleteVertexMap(-1), ErrIndexOutOfRange)
	assert.Equal(t, 3, sf.NumVertexMaps())

	require.NoError(t, sf.DeleteVertexMap(0))
	assert.Equal(t, 2, sf.NumVertexMaps())
	assert.Same(t, third, sf.ActiveVertexMap())
	assert.Equal(t, 1, sf.ActiveIndex())

	require.NoError(t, sf.DeleteVertexMap(1))
	assert.Equal(t, 0, sf.ActiveIndex())
	assert.Equal(t, 2.0, sf.ActiveVertexMap().Limits().Max)

	require.NoError(t, sf.DeleteVertexMap(0))
	assert.Nil(t, sf.ActiveVertexMap())

	_, err := sf.VertexMap(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, sf.SetActiveVertexMap(0), ErrIndexOutOfRange)
}

func TestSurfaceFrames(t *testing.T) {
	sf := NewSurface(octVertices, octFaces)
	inflated := make([]float32, len(octVertices))
	for i, v := range octVertices {
		inflated[i] = 2 * v
	}
	i := sf.AddMeshFrame(NewSurfaceMesh(inflated, octFaces))
	assert.Equal(t, 1, i)
	assert.Equal(t, 0, sf.ActiveFrame())
	require.NoError(t, sf.SetActiveFrame(1))
	assert.Equal(t, inflated, sf.Mesh().Vertices())
	assert.ErrorIs(t, sf.SetActiveFrame(2), ErrIndexOutOfRange)
}

func TestSurfaceValidate(t *testing.T) {
	sf := NewSurface(octVertices, octFaces)
	require.NoError(t, sf.AddVertexMap([]float64{1, 2, 3}))
	err := sf.Validate()
	assert.ErrorIs(t, err, ErrInvalidMesh)
	assert.Contains(t, err.Error(), "vertex map 0 has 3 values for 6 vertices")
}
