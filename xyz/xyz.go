// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a small 3D scene graph for displaying surfaces: a
// [Scene] of [Solid] meshes, a [Grid] helper and lights, viewed through
// a perspective [Camera], with [Raycaster] picking of the solids.
// It has no renderer of its own; see package raster.
package xyz

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox3 returns an empty box, that any point expands.
func EmptyBox3() Box3 {
	inf := math32.Inf(1)
	return Box3{Min: mgl32.Vec3{inf, inf, inf}, Max: mgl32.Vec3{-inf, -inf, -inf}}
}

// IsEmpty returns true if the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandByPoint returns the box grown to contain p.
func (b Box3) ExpandByPoint(p mgl32.Vec3) Box3 {
	for i := range 3 {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
	return b
}

// Union returns the smallest box containing both boxes.
func (b Box3) Union(o Box3) Box3 {
	if o.IsEmpty() {
		return b
	}
	return b.ExpandByPoint(o.Min).ExpandByPoint(o.Max)
}

// Center returns the center of the box.
func (b Box3) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns true if p is inside or on the box.
func (b Box3) ContainsPoint(p mgl32.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// MulMatrix4 returns the bounding box of the box transformed by m.
func (b Box3) MulMatrix4(m mgl32.Mat4) Box3 {
	if b.IsEmpty() {
		return b
	}
	nb := EmptyBox3()
	for i := range 8 {
		c := mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		nb = nb.ExpandByPoint(mgl32.TransformCoordinate(c, m))
	}
	return nb
}

// Pose contains the full specification of position and orientation,
// and the Matrix computed from them.
type Pose struct {

	// Pos is the position of center of mass of object.
	Pos mgl32.Vec3

	// Scale is the scale factor of object along each axis.
	Scale mgl32.Vec3

	// Quat is the rotation quaternion of object.
	Quat mgl32.Quat

	// Matrix is the world transform, updated by [Pose.UpdateMatrix].
	Matrix mgl32.Mat4
}

// Defaults sets the identity pose.
func (ps *Pose) Defaults() {
	ps.Pos = mgl32.Vec3{}
	ps.Scale = mgl32.Vec3{1, 1, 1}
	ps.Quat = mgl32.QuatIdent()
	ps.UpdateMatrix()
}

// UpdateMatrix computes the matrix from the position, rotation and scale.
func (ps *Pose) UpdateMatrix() {
	ps.Matrix = mgl32.Translate3D(ps.Pos[0], ps.Pos[1], ps.Pos[2]).
		Mul4(ps.Quat.Mat4()).
		Mul4(mgl32.Scale3D(ps.Scale[0], ps.Scale[1], ps.Scale[2]))
}

// SetAxisRotation sets the rotation to angle degrees around the given axis,
// and updates the matrix.
func (ps *Pose) SetAxisRotation(axis mgl32.Vec3, angle float32) {
	ps.Quat = mgl32.QuatRotate(mgl32.DegToRad(angle), axis.Normalize())
	ps.UpdateMatrix()
}

// SetPos sets the position and updates the matrix.
func (ps *Pose) SetPos(x, y, z float32) {
	ps.Pos = mgl32.Vec3{x, y, z}
	ps.UpdateMatrix()
}
