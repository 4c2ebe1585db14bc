// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface provides the data model of a displayed brain surface:
// the triangle geometry ([SurfaceMesh]), scalar fields over its vertices
// with their derived colors ([VertexMap]), and the [Surface] combining them.
package surface

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMesh is wrapped by every [ValidationError].
	ErrInvalidMesh = errors.New("surface: invalid mesh")

	// ErrIndexOutOfRange is returned for vertex map and frame indexes
	// that do not exist.
	ErrIndexOutOfRange = errors.New("surface: index out of range")
)

// ValidationError lists the invariant violations found in a mesh or surface.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "surface: invalid mesh: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidMesh }

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ValidationError) err() error {
	if e == nil || len(e.Problems) == 0 {
		return nil
	}
	return e
}

// SurfaceMesh is triangle geometry: x, y, z interleaved vertex positions
// and three vertex indexes per face in counter-clockwise order.
// The slices are stored as given, without copying or validation.
type SurfaceMesh struct {
	vertices []float32
	faces    []uint32
}

// MeshUpdate holds the fields to replace in [SurfaceMesh.Update].
// Nil fields are left as they are.
type MeshUpdate struct {
	Vertices []float32
	Faces    []uint32
}

// NewSurfaceMesh returns a new mesh holding the given vertices and faces.
func NewSurfaceMesh(vertices []float32, faces []uint32) *SurfaceMesh {
	return &SurfaceMesh{vertices: vertices, faces: faces}
}

// Vertices returns the flat x, y, z vertex positions.
func (sm *SurfaceMesh) Vertices() []float32 { return sm.vertices }

// Faces returns the flat triangle vertex indexes.
func (sm *SurfaceMesh) Faces() []uint32 { return sm.faces }

// VertexCount returns the number of whole vertices.
func (sm *SurfaceMesh) VertexCount() int { return len(sm.vertices) / 3 }

// FaceCount returns the number of whole triangles.
func (sm *SurfaceMesh) FaceCount() int { return len(sm.faces) / 3 }

// Update replaces the non-nil fields of up wholesale.
func (sm *SurfaceMesh) Update(up MeshUpdate) {
	if up.Vertices != nil {
		sm.vertices = up.Vertices
	}
	if up.Faces != nil {
		sm.faces = up.Faces
	}
}

// Validate checks the mesh invariants, returning a [*ValidationError]
// describing every violation, or nil.
func (sm *SurfaceMesh) Validate() error {
	ve := &ValidationError{}
	sm.validate(ve)
	return ve.err()
}

func (sm *SurfaceMesh) validate(ve *ValidationError) {
	if len(sm.vertices)%3 != 0 {
		ve.add("vertex array length %d is not a multiple of 3", len(sm.vertices))
	}
	if len(sm.faces)%3 != 0 {
		ve.add("face array length %d is not a multiple of 3", len(sm.faces))
	}
	nv := uint32(sm.VertexCount())
	for i, f := range sm.faces {
		if f >= nv {
			ve.add("face %d references vertex %d of %d", i/3, f, nv)
			return
		}
	}
}
