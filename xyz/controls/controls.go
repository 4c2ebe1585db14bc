// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controls provides damped orbit controls for an [xyz.Camera]:
// the camera rotates around, dollies towards and trucks with its target,
// driven by pointer and touch input on a [system.Element].
package controls

import (
	"image"
	"time"

	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/system"
	"cogentcore.org/brainview/xyz"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinDistance is the default closest distance to the target.
	MinDistance = 0.1

	// polarEps keeps the camera off the poles of the orbit sphere.
	polarEps = 1e-4

	// settleEps is the amount of pending movement below which the
	// remaining movement is applied at once.
	settleEps = 1e-5
)

// Orbit moves a camera on a sphere around its target. Input accumulates
// pending movement, which [Orbit.Update] applies a fraction at a time
// so that the camera settles smoothly.
type Orbit struct {

	// Camera is the camera being controlled.
	Camera *xyz.Camera

	// Enabled is whether input moves the camera.
	Enabled bool

	// Damping is the rate per second at which pending movement is
	// applied. Zero or less applies movement at once.
	Damping float32

	// RotateSpeed scales rotation from dragging: dragging the height
	// of the element rotates by RotateSpeed times a full turn.
	RotateSpeed float32

	// DollySpeed scales dollying from scrolling.
	DollySpeed float32

	// TruckSpeed scales trucking from dragging with the right button.
	TruckSpeed float32

	// MinDistance and MaxDistance limit the distance to the target.
	MinDistance, MaxDistance float32

	// pending azimuth and polar angle changes in radians
	theta, phi float32

	// pending log of the distance scale
	dolly float32

	// pending truck in world units along camera right and up
	truck mgl32.Vec2

	elem    system.Element
	subs    []system.Subscription
	button  events.Buttons
	touches map[int]image.Point
}

// New returns enabled orbit controls for the camera.
func New(cam *xyz.Camera) *Orbit {
	return &Orbit{
		Camera:      cam,
		Enabled:     true,
		Damping:     10,
		RotateSpeed: 1,
		DollySpeed:  1,
		TruckSpeed:  1,
		MinDistance: MinDistance,
		MaxDistance: math32.Inf(1),
		touches:     map[int]image.Point{},
	}
}

// Rotate adds azimuth (around the up axis) and polar rotations, in radians.
func (or *Orbit) Rotate(azimuth, polar float32) {
	or.theta += azimuth
	or.phi += polar
}

// Dolly scales the distance to the target by the given factor.
func (or *Orbit) Dolly(scale float32) {
	if scale <= 0 {
		return
	}
	or.dolly += math32.Log(scale)
}

// Truck moves the camera and the target along the camera right and up
// axes, in world units.
func (or *Orbit) Truck(dx, dy float32) {
	or.truck = or.truck.Add(mgl32.Vec2{dx, dy})
}

// SetTarget points the camera at the given target, cancelling any
// pending movement.
func (or *Orbit) SetTarget(target mgl32.Vec3) {
	or.stop()
	or.Camera.LookAt(target, or.Camera.UpDir)
}

// Target returns the current orbit target.
func (or *Orbit) Target() mgl32.Vec3 {
	return or.Camera.Target
}

// Pending returns true if there is movement left to apply.
func (or *Orbit) Pending() bool {
	return or.theta != 0 || or.phi != 0 || or.dolly != 0 || or.truck != (mgl32.Vec2{})
}

func (or *Orbit) stop() {
	or.theta, or.phi, or.dolly = 0, 0, 0
	or.truck = mgl32.Vec2{}
}

// Update applies the share of the pending movement due after delta
// has elapsed, and returns true if the camera moved.
func (or *Orbit) Update(delta time.Duration) bool {
	if !or.Pending() {
		return false
	}
	frac := float32(1)
	if or.Damping > 0 {
		frac = math32.Min(1, or.Damping*float32(delta.Seconds()))
	}
	if frac <= 0 {
		return false
	}
	if math32.Abs(or.theta)+math32.Abs(or.phi)+math32.Abs(or.dolly)+or.truck.Len() < settleEps {
		frac = 1
	}
	dt, dp, dd := or.theta*frac, or.phi*frac, or.dolly*frac
	tr := or.truck.Mul(frac)
	or.theta -= dt
	or.phi -= dp
	or.dolly -= dd
	or.truck = or.truck.Sub(tr)
	if frac == 1 {
		or.stop()
	}
	or.apply(dt, dp, dd, tr)
	return true
}

// apply moves the camera by the given increments.
func (or *Orbit) apply(dtheta, dphi, ddolly float32, truck mgl32.Vec2) {
	cm := or.Camera
	if truck != (mgl32.Vec2{}) {
		cm.Pan(-truck[0], -truck[1])
	}
	off := cm.ViewVector()
	radius := off.Len()
	if radius == 0 {
		off = mgl32.Vec3{0, 0, 1}
		radius = 1
	}
	theta := math32.Atan2(off[0], off[2]) + dtheta
	phi := math32.Acos(mgl32.Clamp(off[1]/radius, -1, 1)) + dphi
	phi = mgl32.Clamp(phi, polarEps, math32.Pi-polarEps)
	radius = mgl32.Clamp(radius*math32.Exp(ddolly), or.MinDistance, or.MaxDistance)

	sp := math32.Sin(phi)
	off = mgl32.Vec3{radius * sp * math32.Sin(theta), radius * math32.Cos(phi), radius * sp * math32.Cos(theta)}
	cm.Pos = cm.Target.Add(off)
	cm.LookAt(cm.Target, mgl32.Vec3{0, 1, 0})
}

// Bind registers the input listeners of the controls on the element.
// Dragging with the left button rotates, with the right or middle
// button trucks, and scrolling dollies. One finger rotates and two
// fingers pinch to dolly.
func (or *Orbit) Bind(el system.Element) {
	or.Unbind()
	or.elem = el
	or.subs = append(or.subs,
		el.On(events.MouseDown, func(ev events.Event) {
			or.button = ev.(*events.Pointer).Button
		}),
		el.On(events.MouseUp, func(ev events.Event) {
			or.button = events.NoButton
		}),
		el.On(events.MouseDrag, or.onDrag),
		el.On(events.Scroll, or.onScroll),
		el.On(events.TouchStart, or.onTouch),
		el.On(events.TouchMove, or.onTouch),
		el.On(events.TouchEnd, or.onTouch),
	)
}

// Unbind removes the input listeners.
func (or *Orbit) Unbind() {
	for _, s := range or.subs {
		s.Unsubscribe()
	}
	or.subs = nil
	or.elem = nil
	or.button = events.NoButton
	clear(or.touches)
}

// Dispose unbinds the controls and stops any pending movement.
func (or *Orbit) Dispose() {
	or.Unbind()
	or.stop()
	or.Enabled = false
}

// height is the element height used to scale input, at least one pixel.
func (or *Orbit) height() float32 {
	if or.elem == nil {
		return 1
	}
	return float32(max(or.elem.ClientSize().Y, 1))
}

// rotateBy rotates for a movement of d pixels.
func (or *Orbit) rotateBy(d image.Point) {
	k := 2 * math32.Pi * or.RotateSpeed / or.height()
	or.Rotate(-float32(d.X)*k, -float32(d.Y)*k)
}

// truckBy trucks for a movement of d pixels, scaled so that the target
// follows the pointer.
func (or *Orbit) truckBy(d image.Point) {
	cm := or.Camera
	half := cm.Distance() * math32.Tan(0.5*mgl32.DegToRad(cm.FOV))
	k := 2 * half * or.TruckSpeed / or.height()
	or.Truck(-float32(d.X)*k, float32(d.Y)*k)
}

func (or *Orbit) onDrag(ev events.Event) {
	if !or.Enabled {
		return
	}
	pe := ev.(*events.Pointer)
	d := pe.Where.Sub(pe.Prev)
	but := pe.Button
	if but == events.NoButton {
		but = or.button
	}
	switch but {
	case events.Right, events.Middle:
		or.truckBy(d)
	default:
		or.rotateBy(d)
	}
}

func (or *Orbit) onScroll(ev events.Event) {
	if !or.Enabled {
		return
	}
	dy := ev.(*events.Pointer).Delta[1]
	if dy == 0 {
		return
	}
	or.Dolly(math32.Pow(0.95, -dy*or.DollySpeed/100))
}

func (or *Orbit) onTouch(ev events.Event) {
	te := ev.(*events.Touch)
	switch te.Type() {
	case events.TouchStart:
		for _, tp := range te.Touches {
			or.touches[tp.ID] = tp.Where
		}
		return
	case events.TouchEnd:
		for _, tp := range te.Touches {
			delete(or.touches, tp.ID)
		}
		return
	}
	prev := make(map[int]image.Point, len(or.touches))
	for id, p := range or.touches {
		prev[id] = p
	}
	for _, tp := range te.Touches {
		if _, ok := or.touches[tp.ID]; ok {
			or.touches[tp.ID] = tp.Where
		}
	}
	if !or.Enabled {
		return
	}
	switch len(or.touches) {
	case 1:
		for id, p := range or.touches {
			or.rotateBy(p.Sub(prev[id]))
		}
	case 2:
		var ids []int
		for id := range or.touches {
			ids = append(ids, id)
		}
		a0, b0 := prev[ids[0]], prev[ids[1]]
		a1, b1 := or.touches[ids[0]], or.touches[ids[1]]
		d0, d1 := pointDist(a0, b0), pointDist(a1, b1)
		if d0 > 0 && d1 > 0 {
			or.Dolly(d0 / d1)
		}
	}
}

func pointDist(a, b image.Point) float32 {
	d := a.Sub(b)
	return math32.Hypot(float32(d.X), float32(d.Y))
}
