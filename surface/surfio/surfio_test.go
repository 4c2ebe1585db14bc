// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfio

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/math32/minmax"
	"cogentcore.org/brainview/surface"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = `{
	"xCoordinate": [0, 1, 0],
	"yCoordinate": [0, 0, 1],
	"zCoordinate": [0, 0, 0.5],
	"iFaces": [0],
	"jFaces": [1],
	"kFaces": [2]
}`

func TestDecodePayload(t *testing.T) {
	p, err := DecodePayload([]byte(triangle))
	require.NoError(t, err)
	sm, err := p.Mesh()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0.5}, sm.Vertices())
	assert.Equal(t, []uint32{0, 1, 2}, sm.Faces())

	sf, err := p.Surface()
	require.NoError(t, err)
	assert.NoError(t, sf.Validate())
	assert.Equal(t, 0, sf.NumVertexMaps())

	_, err = DecodePayload([]byte(`{"xCoordinate": "nope"}`))
	assert.ErrorIs(t, err, ErrPayload)
}

func TestPayloadMismatch(t *testing.T) {
	p := &Payload{X: []float64{0, 1}, Y: []float64{0}, Z: []float64{0, 1}}
	_, err := p.Mesh()
	assert.ErrorIs(t, err, ErrPayload)

	p = &Payload{I: []int64{0}, J: []int64{0}, K: nil}
	_, err = p.Mesh()
	assert.ErrorIs(t, err, ErrPayload)

	p = &Payload{X: []float64{0}, Y: []float64{0}, Z: []float64{0}, I: []int64{-1}, J: []int64{0}, K: []int64{0}}
	_, err = p.Mesh()
	assert.ErrorIs(t, err, ErrPayload)
}

func TestFromMesh(t *testing.T) {
	sm := surface.NewSurfaceMesh([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0.5}, []uint32{0, 1, 2})
	data, err := json.Marshal(FromMesh(sm))
	require.NoError(t, err)
	p, err := DecodePayload(data)
	require.NoError(t, err)
	got, err := p.Mesh()
	require.NoError(t, err)
	assert.Equal(t, sm.Vertices(), got.Vertices())
	assert.Equal(t, sm.Faces(), got.Faces())
}

func TestOpenPayload(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "surf.json")
	require.NoError(t, os.WriteFile(fn, []byte(triangle), 0o644))
	p, err := OpenPayload(fn)
	require.NoError(t, err)
	assert.Len(t, p.X, 3)

	_, err = OpenPayload(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeIntensity(t *testing.T) {
	in, err := DecodeIntensity([]byte(" [1, 2.5, -3]"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, in.Values)
	_, ok := in.Limits()
	assert.False(t, ok)
	assert.Empty(t, in.Options())

	in, err = DecodeIntensity([]byte(`{"intensity": [0, 1, 2], "colorLimits": [0, 4], "colorMapName": "Blues"}`))
	require.NoError(t, err)
	lim, ok := in.Limits()
	require.True(t, ok)
	assert.Equal(t, minmax.F64{Min: 0, Max: 4}, lim)
	assert.Equal(t, colormap.Blues, in.ColorMapName)

	vm, err := surface.NewVertexMap(in.Values, in.Options()...)
	require.NoError(t, err)
	assert.Equal(t, lim, vm.Limits())
	assert.Equal(t, colormap.Blues, vm.ColorMapName())

	_, err = DecodeIntensity([]byte(`{"intensity": [0], "colorLimits": [1]}`))
	assert.ErrorIs(t, err, ErrPayload)
	_, err = DecodeIntensity([]byte(`{"intensity": [0], "colorMapName": "Bogus"}`))
	assert.ErrorIs(t, err, ErrPayload)
	_, err = DecodeIntensity([]byte(`[1, "a"]`))
	assert.ErrorIs(t, err, ErrPayload)
}

func TestConversions(t *testing.T) {
	assert.Equal(t, []float32{1, 2, 3}, ToFloat32([]int8{1, 2, 3}))
	assert.Equal(t, []uint32{1, 2, 3}, ToUint32([]float32{1, 2, 3}))
	assert.Equal(t, []uint32{1}, ToUint32([]float64{1.9}))
	assert.Empty(t, ToFloat32([]int{}))
}
