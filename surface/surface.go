// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"slices"
)

// Surface is the unit handed to a viewer: one or more mesh frames, of
// which one is active, and zero or more vertex maps, of which at most
// one is active. A surface owns its meshes and vertex maps, and is
// meant to be displayed by at most one viewer at a time. Changes are
// only seen by a viewer when the surface is added again.
type Surface struct {
	meshes      []*SurfaceMesh
	frame       int
	vertexMaps  []*VertexMap
	activeIndex int
}

// NewSurface returns a new surface with a single mesh frame made
// from the given vertices and faces, and no vertex maps.
func NewSurface(vertices []float32, faces []uint32) *Surface {
	return &Surface{
		meshes:      []*SurfaceMesh{NewSurfaceMesh(vertices, faces)},
		activeIndex: -1,
	}
}

// Mesh returns the active mesh frame.
func (sf *Surface) Mesh() *SurfaceMesh { return sf.meshes[sf.frame] }

// Meshes returns all of the mesh frames.
func (sf *Surface) Meshes() []*SurfaceMesh { return sf.meshes }

// AddMeshFrame appends a mesh frame, for example a different
// inflation of the same cortex, and returns its index.
func (sf *Surface) AddMeshFrame(sm *SurfaceMesh) int {
	sf.meshes = append(sf.meshes, sm)
	return len(sf.meshes) - 1
}

// ActiveFrame returns the index of the active mesh frame.
func (sf *Surface) ActiveFrame() int { return sf.frame }

// SetActiveFrame makes the mesh frame at index i active.
func (sf *Surface) SetActiveFrame(i int) error {
	if i < 0 || i >= len(sf.meshes) {
		return fmt.Errorf("%w: frame %d of %d", ErrIndexOutOfRange, i, len(sf.meshes))
	}
	sf.frame = i
	return nil
}

// AddVertexMap appends a new vertex map made by [NewVertexMap]
// and makes it the active one.
func (sf *Surface) AddVertexMap(intensity []float64, opts ...VertexMapOption) error {
	vm, err := NewVertexMap(intensity, opts...)
	if err != nil {
		return err
	}
	sf.vertexMaps = append(sf.vertexMaps, vm)
	sf.activeIndex = len(sf.vertexMaps) - 1
	return nil
}

// DeleteVertexMap removes the vertex map at index i. Deleting the active
// map makes the last remaining one active; maps after it shift down.
func (sf *Surface) DeleteVertexMap(i int) error {
	if err := sf.checkIndex(i); err != nil {
		return err
	}
	sf.vertexMaps = slices.Delete(sf.vertexMaps, i, i+1)
	switch {
	case len(sf.vertexMaps) == 0:
		sf.activeIndex = -1
	case i == sf.activeIndex:
		sf.activeIndex = len(sf.vertexMaps) - 1
	case i < sf.activeIndex:
		sf.activeIndex--
	}
	return nil
}

// VertexMap returns the vertex map at index i.
func (sf *Surface) VertexMap(i int) (*VertexMap, error) {
	if err := sf.checkIndex(i); err != nil {
		return nil, err
	}
	return sf.vertexMaps[i], nil
}

// VertexMaps returns all of the vertex maps, in the order added.
func (sf *Surface) VertexMaps() []*VertexMap { return sf.vertexMaps }

// NumVertexMaps returns the number of vertex maps.
func (sf *Surface) NumVertexMaps() int { return len(sf.vertexMaps) }

// ActiveVertexMap returns the active vertex map, or nil if there is none,
// in which case the surface is shown with a uniform color.
func (sf *Surface) ActiveVertexMap() *VertexMap {
	if sf.activeIndex < 0 {
		return nil
	}
	return sf.vertexMaps[sf.activeIndex]
}

// ActiveIndex returns the index of the active vertex map, or -1.
func (sf *Surface) ActiveIndex() int { return sf.activeIndex }

// SetActiveVertexMap makes the vertex map at index i active.
func (sf *Surface) SetActiveVertexMap(i int) error {
	if err := sf.checkIndex(i); err != nil {
		return err
	}
	sf.activeIndex = i
	return nil
}

func (sf *Surface) checkIndex(i int) error {
	if i < 0 || i >= len(sf.vertexMaps) {
		return fmt.Errorf("%w: vertex map %d of %d", ErrIndexOutOfRange, i, len(sf.vertexMaps))
	}
	return nil
}

// Validate checks the active mesh frame, and that every vertex map
// has one intensity value per vertex.
func (sf *Surface) Validate() error {
	ve := &ValidationError{}
	sm := sf.Mesh()
	sm.validate(ve)
	nv := sm.VertexCount()
	for i, vm := range sf.vertexMaps {
		if vm.Len() != nv {
			ve.add("vertex map %d has %d values for %d vertices", i, vm.Len(), nv)
		}
	}
	return ve.err()
}
