// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Node is an element of a [Scene].
type Node interface {

	// AsNodeBase returns the [NodeBase] of the node.
	AsNodeBase() *NodeBase
}

// NodeBase is the common part of all nodes.
type NodeBase struct {

	// Name is the name of the node.
	Name string

	// ID uniquely identifies the node.
	ID uuid.UUID

	// Pose is the position and orientation of the node in the world.
	Pose Pose

	// Visible is whether the node is rendered and can be picked.
	Visible bool
}

func (nb *NodeBase) AsNodeBase() *NodeBase { return nb }

func (nb *NodeBase) init(name string) {
	nb.Name = name
	nb.ID = uuid.New()
	nb.Visible = true
	nb.Pose.Defaults()
}

// Sides are the faces of triangles that are drawn and picked.
type Sides int32

const (
	// FrontSide is the side facing the viewer with counter-clockwise winding.
	FrontSide Sides = iota

	// DoubleSide is both sides.
	DoubleSide
)

// Material contains the Lambert surface properties of a solid.
type Material struct {

	// Color is the uniform color of the surface, used when
	// VertexColors is false.
	Color color.RGBA

	// VertexColors uses the per-vertex colors of the geometry.
	VertexColors bool

	// Side is which side of the triangles is shown.
	Side Sides
}

// Solid is an individual 3D mesh in the scene. Its geometry is never
// changed in place once it is shown: a new solid replaces it.
type Solid struct {
	NodeBase

	// Geometry is the triangle data of the solid.
	Geometry *Geometry

	// Material contains the material properties of the surface.
	Material Material
}

// NewSolid returns a new visible solid with the given geometry and material.
func NewSolid(name string, g *Geometry, mat Material) *Solid {
	sld := &Solid{Geometry: g, Material: mat}
	sld.init(name)
	return sld
}

// WorldBBox returns the bounding box of the solid in world coordinates.
func (sld *Solid) WorldBBox() Box3 {
	return sld.Geometry.BBox.MulMatrix4(sld.Pose.Matrix)
}

// Grid is a helper showing a square grid of lines on the XZ plane.
// It is never picked.
type Grid struct {
	NodeBase

	// Size is the width of the grid.
	Size float32

	// Divisions is the number of cells along each side.
	Divisions int

	// CenterColor is the color of the two center lines.
	CenterColor color.RGBA

	// Color is the color of the other lines.
	Color color.RGBA
}

// NewGrid returns a new grid of the given size and divisions.
func NewGrid(size float32, divisions int) *Grid {
	gd := &Grid{
		Size:        size,
		Divisions:   max(divisions, 1),
		CenterColor: color.RGBA{0x44, 0x44, 0x44, 0xff},
		Color:       color.RGBA{0x88, 0x88, 0x88, 0xff},
	}
	gd.init("grid")
	return gd
}

// Lines returns the end points of each line of the grid, in world
// coordinates, two per line, with a flag for center lines.
func (gd *Grid) Lines() (pts []mgl32.Vec3, center []bool) {
	half := gd.Size / 2
	step := gd.Size / float32(gd.Divisions)
	for i := 0; i <= gd.Divisions; i++ {
		k := -half + float32(i)*step
		ctr := 2*i == gd.Divisions
		pts = append(pts,
			mgl32.TransformCoordinate(mgl32.Vec3{-half, 0, k}, gd.Pose.Matrix),
			mgl32.TransformCoordinate(mgl32.Vec3{half, 0, k}, gd.Pose.Matrix),
			mgl32.TransformCoordinate(mgl32.Vec3{k, 0, -half}, gd.Pose.Matrix),
			mgl32.TransformCoordinate(mgl32.Vec3{k, 0, half}, gd.Pose.Matrix))
		center = append(center, ctr, ctr)
	}
	return
}

// AmbientLight provides diffuse uniform lighting.
type AmbientLight struct {
	NodeBase

	// Color is the color of the light at full intensity.
	Color color.RGBA

	// Intensity multiplies the color.
	Intensity float32
}

// NewAmbientLight returns a new ambient light of the given color and intensity.
func NewAmbientLight(clr color.RGBA, intensity float32) *AmbientLight {
	lt := &AmbientLight{Color: clr, Intensity: intensity}
	lt.init("ambient")
	return lt
}

// DirLight is directional light, shining from Pos towards Target
// with no attenuation, like the Sun.
type DirLight struct {
	NodeBase

	// Color is the color of the light at full intensity.
	Color color.RGBA

	// Intensity multiplies the color.
	Intensity float32

	// Target is the point the light shines towards.
	Target mgl32.Vec3
}

// NewDirLight returns a new directional light of the given color and
// intensity, positioned above the origin.
func NewDirLight(clr color.RGBA, intensity float32) *DirLight {
	lt := &DirLight{Color: clr, Intensity: intensity}
	lt.init("directional")
	lt.Pose.SetPos(0, 1, 0)
	return lt
}

// Direction returns the unit vector pointing from the target towards the
// light, which is what is dotted with surface normals.
func (dl *DirLight) Direction() mgl32.Vec3 {
	d := dl.Pose.Pos.Sub(dl.Target)
	if d.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Normalize()
}
