// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defines the properties of a perspective camera
type Camera struct {

	// Pos is the position of the camera.
	Pos mgl32.Vec3

	// Target is the location the camera is pointing at.
	// It moves with panning movements.
	Target mgl32.Vec3

	// UpDir is the up direction of the camera, which defaults to the positive Y axis.
	UpDir mgl32.Vec3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near plane distance.
	Near float32

	// Far is the far plane distance.
	Far float32

	// ViewMatrix is the world to camera transform.
	ViewMatrix mgl32.Mat4

	// InvViewMatrix is the inverse of ViewMatrix: the camera world transform.
	InvViewMatrix mgl32.Mat4

	// PrjnMatrix is the projection matrix for the perspective transform.
	PrjnMatrix mgl32.Mat4

	// InvPrjnMatrix is the inverse of the projection matrix.
	InvPrjnMatrix mgl32.Mat4
}

// Defaults sets the default camera: 60 degree field of view, near 0.1,
// far 1000, positioned at (-150, 100, -100) looking at the origin.
func (cm *Camera) Defaults() {
	cm.FOV = 60
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 1000
	cm.Pos = mgl32.Vec3{-150, 100, -100}
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and prjn matricies
func (cm *Camera) UpdateMatrix() {
	cm.ViewMatrix = mgl32.LookAtV(cm.Pos, cm.Target, cm.UpDir)
	cm.InvViewMatrix = cm.ViewMatrix.Inv()
	cm.PrjnMatrix = mgl32.Perspective(mgl32.DegToRad(cm.FOV), cm.Aspect, cm.Near, cm.Far)
	cm.InvPrjnMatrix = cm.PrjnMatrix.Inv()
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir mgl32.Vec3) {
	cm.Target = target
	if upDir.Len() == 0 {
		upDir = mgl32.Vec3{0, 1, 0}
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// LookAtTarget points the camera at current target using current up direction
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() mgl32.Vec3 {
	return cm.Pos.Sub(cm.Target)
}

// Distance is the distance from the camera to the target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Len()
}

// Right returns the unit right vector of the camera view in world space.
func (cm *Camera) Right() mgl32.Vec3 {
	return cm.InvViewMatrix.Col(0).Vec3()
}

// Up returns the unit up vector of the camera view in world space.
func (cm *Camera) Up() mgl32.Vec3 {
	return cm.InvViewMatrix.Col(1).Vec3()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current window view)
// and it moves the target by the same increment, changing the target position.
func (cm *Camera) Pan(delX, delY float32) {
	td := cm.Right().Mul(-delX).Add(cm.Up().Mul(-delY))
	cm.Pos = cm.Pos.Add(td)
	cm.Target = cm.Target.Add(td)
	cm.UpdateMatrix()
}

// Zoom moves along axis given pct closer or further from the target
// it always moves the target back also if it distance is < 1
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis.Len() == 0 {
		ctaxis = mgl32.Vec3{0, 0, 1}
	}
	dist := ctaxis.Len()
	del := ctaxis.Mul(zoomPct)
	cm.Pos = cm.Pos.Add(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target = cm.Target.Add(del)
	}
	cm.UpdateMatrix()
}

// Project returns the normalized device coordinates of the world point p.
func (cm *Camera) Project(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, cm.PrjnMatrix.Mul4(cm.ViewMatrix))
}

// Unproject returns the world point at the given normalized device coordinates,
// with z of -1 at the near plane and 1 at the far plane.
func (cm *Camera) Unproject(ndc mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(ndc, cm.InvViewMatrix.Mul4(cm.InvPrjnMatrix))
}

// FitBox positions the camera along its current view direction so that a
// sphere around the box fills the vertical field of view, targeting its center.
func (cm *Camera) FitBox(b Box3) {
	if b.IsEmpty() {
		return
	}
	dir := cm.ViewVector()
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 0, 1}
	}
	radius := 0.5 * b.Size().Len()
	dist := radius / math32.Sin(0.5*mgl32.DegToRad(cm.FOV))
	center := b.Center()
	cm.Pos = center.Add(dir.Normalize().Mul(dist))
	cm.LookAt(center, cm.UpDir)
}
