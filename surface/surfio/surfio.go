// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surfio decodes the JSON surface payloads and intensity
// files that feed the surface data model.
package surfio

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/math32/minmax"
	"cogentcore.org/brainview/surface"
	"github.com/goccy/go-json"
)

// ErrPayload is wrapped by all payload decoding errors.
var ErrPayload = errors.New("surfio: malformed payload")

// Payload is the wire format of a surface: parallel arrays of vertex
// coordinates and of triangle corner indexes.
type Payload struct {
	X []float64 `json:"xCoordinate"`
	Y []float64 `json:"yCoordinate"`
	Z []float64 `json:"zCoordinate"`
	I []int64   `json:"iFaces"`
	J []int64   `json:"jFaces"`
	K []int64   `json:"kFaces"`
}

// DecodePayload decodes a JSON surface payload.
func DecodePayload(data []byte) (*Payload, error) {
	p := &Payload{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayload, err)
	}
	return p, nil
}

// OpenPayload reads and decodes the surface payload in the given file.
func OpenPayload(filename string) (*Payload, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return DecodePayload(data)
}

// Mesh interleaves the parallel arrays into a [surface.SurfaceMesh].
// The coordinate arrays must have equal lengths, as must the face arrays,
// and face indexes must be non-negative.
func (p *Payload) Mesh() (*surface.SurfaceMesh, error) {
	nv := len(p.X)
	if len(p.Y) != nv || len(p.Z) != nv {
		return nil, fmt.Errorf("%w: coordinate lengths %d, %d, %d differ", ErrPayload, len(p.X), len(p.Y), len(p.Z))
	}
	nf := len(p.I)
	if len(p.J) != nf || len(p.K) != nf {
		return nil, fmt.Errorf("%w: face lengths %d, %d, %d differ", ErrPayload, len(p.I), len(p.J), len(p.K))
	}
	vertices := make([]float32, 0, 3*nv)
	for i := range nv {
		vertices = append(vertices, float32(p.X[i]), float32(p.Y[i]), float32(p.Z[i]))
	}
	faces := make([]uint32, 0, 3*nf)
	for i := range nf {
		a, b, c := p.I[i], p.J[i], p.K[i]
		if a < 0 || b < 0 || c < 0 {
			return nil, fmt.Errorf("%w: negative index in face %d", ErrPayload, i)
		}
		faces = append(faces, uint32(a), uint32(b), uint32(c))
	}
	return surface.NewSurfaceMesh(vertices, faces), nil
}

// Surface returns a new [surface.Surface] with the payload geometry.
func (p *Payload) Surface() (*surface.Surface, error) {
	sm, err := p.Mesh()
	if err != nil {
		return nil, err
	}
	return surface.NewSurface(sm.Vertices(), sm.Faces()), nil
}

// FromMesh returns the payload for the given mesh.
func FromMesh(sm *surface.SurfaceMesh) *Payload {
	p := &Payload{}
	v := sm.Vertices()
	for i := 0; i+2 < len(v); i += 3 {
		p.X = append(p.X, float64(v[i]))
		p.Y = append(p.Y, float64(v[i+1]))
		p.Z = append(p.Z, float64(v[i+2]))
	}
	f := sm.Faces()
	for i := 0; i+2 < len(f); i += 3 {
		p.I = append(p.I, int64(f[i]))
		p.J = append(p.J, int64(f[i+1]))
		p.K = append(p.K, int64(f[i+2]))
	}
	return p
}

// Intensity is a scalar field read from an intensity file, with the
// optional color settings it carries.
type Intensity struct {
	Values       []float64     `json:"intensity"`
	ColorLimits  []float64     `json:"colorLimits,omitempty"`
	ColorMapName colormap.Name `json:"colorMapName,omitempty"`
}

// DecodeIntensity decodes an intensity file: either a bare JSON array
// of numbers or an object with intensity, colorLimits and colorMapName.
func DecodeIntensity(data []byte) (*Intensity, error) {
	in := &Intensity{}
	d := bytes.TrimSpace(data)
	if len(d) > 0 && d[0] == '[' {
		if err := json.Unmarshal(d, &in.Values); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPayload, err)
		}
		return in, nil
	}
	if err := json.Unmarshal(d, in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayload, err)
	}
	if in.ColorLimits != nil && len(in.ColorLimits) != 2 {
		return nil, fmt.Errorf("%w: colorLimits must have 2 values, not %d", ErrPayload, len(in.ColorLimits))
	}
	if in.ColorMapName != "" {
		if _, ok := colormap.Lookup(in.ColorMapName); !ok {
			return nil, fmt.Errorf("%w: unknown colorMapName %q", ErrPayload, in.ColorMapName)
		}
	}
	return in, nil
}

// OpenIntensity reads and decodes the intensity file with the given name.
func OpenIntensity(filename string) (*Intensity, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return DecodeIntensity(data)
}

// Limits returns the color limits given in the file, if any.
func (in *Intensity) Limits() (minmax.F64, bool) {
	if len(in.ColorLimits) != 2 {
		return minmax.F64{}, false
	}
	return minmax.F64{Min: in.ColorLimits[0], Max: in.ColorLimits[1]}, true
}

// Options returns the vertex map options for the settings in the file.
func (in *Intensity) Options() []surface.VertexMapOption {
	var opts []surface.VertexMapOption
	if lim, ok := in.Limits(); ok {
		opts = append(opts, surface.WithLimits(lim.Min, lim.Max))
	}
	if in.ColorMapName != "" {
		opts = append(opts, surface.WithColorMap(in.ColorMapName))
	}
	return opts
}

// Number is the set of element types accepted by the conversions.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ToFloat32 converts each value to float32.
func ToFloat32[T Number](values []T) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}

// ToUint32 converts each value to uint32, truncating fractions.
func ToUint32[T Number](values []T) []uint32 {
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = uint32(v)
	}
	return out
}
