// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is the indexed triangle data of a solid: x, y, z positions,
// per-vertex normals, optional per-vertex r, g, b colors, three indexes
// per triangle, and the bounding box of the positions.
type Geometry struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint32
	BBox      Box3
}

// NewGeometry returns a new geometry with the given positions, indexes
// and colors (which can be nil), with normals and bounding box computed.
func NewGeometry(positions []float32, indices []uint32, colors []float32) *Geometry {
	g := &Geometry{Positions: positions, Indices: indices, Colors: colors}
	g.ComputeNormals()
	g.ComputeBBox()
	return g
}

// NumVertices returns the number of vertices.
func (g *Geometry) NumVertices() int { return len(g.Positions) / 3 }

// NumTriangles returns the number of triangles.
func (g *Geometry) NumTriangles() int { return len(g.Indices) / 3 }

// Vertex returns the position of vertex i.
func (g *Geometry) Vertex(i uint32) mgl32.Vec3 {
	return mgl32.Vec3{g.Positions[3*i], g.Positions[3*i+1], g.Positions[3*i+2]}
}

// Triangle returns the positions of the corners of triangle t.
func (g *Geometry) Triangle(t int) (a, b, c mgl32.Vec3) {
	return g.Vertex(g.Indices[3*t]), g.Vertex(g.Indices[3*t+1]), g.Vertex(g.Indices[3*t+2])
}

// HasColors returns true if there is one color per vertex.
func (g *Geometry) HasColors() bool {
	return len(g.Colors) > 0 && len(g.Colors) == len(g.Positions)
}

// ComputeNormals computes the vertex normals as the normalized sum of
// the normals of the faces around each vertex, weighted by face area,
// assuming counter-clockwise winding.
func (g *Geometry) ComputeNormals() {
	norms := make([]float32, len(g.Positions))
	for t := range g.NumTriangles() {
		a, b, c := g.Triangle(t)
		fn := c.Sub(b).Cross(a.Sub(b))
		for k := range 3 {
			i := 3 * g.Indices[3*t+k]
			norms[i] += fn[0]
			norms[i+1] += fn[1]
			norms[i+2] += fn[2]
		}
	}
	for i := 0; i+2 < len(norms); i += 3 {
		n := mgl32.Vec3{norms[i], norms[i+1], norms[i+2]}
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		norms[i], norms[i+1], norms[i+2] = n[0], n[1], n[2]
	}
	g.Normals = norms
}

// Normal returns the normal of vertex i.
func (g *Geometry) Normal(i uint32) mgl32.Vec3 {
	return mgl32.Vec3{g.Normals[3*i], g.Normals[3*i+1], g.Normals[3*i+2]}
}

// ComputeBBox computes the bounding box of the positions.
func (g *Geometry) ComputeBBox() {
	b := EmptyBox3()
	for i := range g.NumVertices() {
		b = b.ExpandByPoint(g.Vertex(uint32(i)))
	}
	g.BBox = b
}

// GeometryEqual returns true if the two geometries have equal
// positions, normals, colors and indexes.
func GeometryEqual(a, b *Geometry) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.Positions, b.Positions) &&
		slices.Equal(a.Normals, b.Normals) &&
		slices.Equal(a.Colors, b.Colors) &&
		slices.Equal(a.Indices, b.Indices)
}
