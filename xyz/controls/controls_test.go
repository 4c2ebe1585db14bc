// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/brainview/base/tolassert"
	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/system/driver/base"
	"cogentcore.org/brainview/xyz"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newOrbit() (*Orbit, *xyz.Camera) {
	cm := &xyz.Camera{}
	cm.Defaults()
	return New(cm), cm
}

func assertVec3(t *testing.T, want, got mgl32.Vec3, tol float32) {
	t.Helper()
	tolassert.EqualTolSlice(t, want[:], got[:], tol)
}

func TestUpdateIdle(t *testing.T) {
	or, cm := newOrbit()
	pos := cm.Pos
	assert.False(t, or.Pending())
	assert.False(t, or.Update(time.Second))
	assert.Equal(t, pos, cm.Pos)
}

func TestRotate(t *testing.T) {
	or, cm := newOrbit()
	or.Rotate(math32.Pi/2, 0)
	assert.True(t, or.Pending())
	assert.True(t, or.Update(time.Second))
	assert.False(t, or.Pending())
	assertVec3(t, mgl32.Vec3{-100, 100, 150}, cm.Pos, 1e-2)
	assert.Equal(t, mgl32.Vec3{}, cm.Target)
}

func TestDamping(t *testing.T) {
	or, cm := newOrbit()
	d := cm.Distance()
	or.Dolly(0.5)
	assert.False(t, or.Update(0))
	assert.True(t, or.Update(50*time.Millisecond))
	assert.True(t, or.Pending())
	mid := cm.Distance()
	assert.Less(t, mid, d)
	assert.Greater(t, mid, d/2)
	for range 200 {
		or.Update(50 * time.Millisecond)
	}
	assert.False(t, or.Pending())
	tolassert.EqualTol(t, d/2, cm.Distance(), 1e-2)
}

func TestMinDistance(t *testing.T) {
	or, cm := newOrbit()
	or.Dolly(1e-6)
	or.Update(time.Second)
	tolassert.EqualTol(t, MinDistance, cm.Distance(), 1e-3)
	or.Dolly(0)
	assert.False(t, or.Pending())
}

func TestPolarClamp(t *testing.T) {
	or, cm := newOrbit()
	or.Rotate(0, -10)
	or.Update(time.Second)
	assert.Greater(t, cm.Pos[1], float32(0))
	tolassert.EqualTol(t, math32.Sqrt(42500), cm.Distance(), 1e-2)
	assert.Less(t, math32.Hypot(cm.Pos[0], cm.Pos[2]), float32(0.1))
}

func TestTruckSetTarget(t *testing.T) {
	or, cm := newOrbit()
	right := cm.Right()
	or.Truck(10, 0)
	or.Update(time.Second)
	assertVec3(t, right.Mul(10), cm.Target, 1e-3)
	tolassert.EqualTol(t, math32.Sqrt(42500), cm.Distance(), 1e-2)

	pos := cm.Pos
	or.Rotate(1, 0)
	or.SetTarget(mgl32.Vec3{1, 2, 3})
	assert.False(t, or.Pending())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, or.Target())
	assert.Equal(t, pos, cm.Pos)
}

func TestBind(t *testing.T) {
	or, cm := newOrbit()
	el := base.NewElement(image.Pt(200, 100))
	or.Bind(el)
	assert.Equal(t, 1, el.NumListeners(events.MouseDrag))
	assert.Equal(t, 1, el.NumListeners(events.Scroll))

	d := cm.Distance()
	el.Dispatch(events.NewScroll(image.Pt(10, 10), mgl32.Vec2{0, 100}))
	or.Update(time.Second)
	assert.Greater(t, cm.Distance(), d)

	pos := cm.Pos
	el.Dispatch(events.NewPointer(events.MouseDown, events.Left, image.Pt(10, 10)))
	el.Dispatch(events.NewDrag(events.Left, image.Pt(30, 10), image.Pt(10, 10), image.Pt(10, 10)))
	el.Dispatch(events.NewPointer(events.MouseUp, events.Left, image.Pt(30, 10)))
	or.Update(time.Second)
	assert.NotEqual(t, pos, cm.Pos)
	// horizontal drags keep the height
	tolassert.EqualTol(t, pos[1], cm.Pos[1], 1e-2)

	tgt := cm.Target
	el.Dispatch(events.NewDrag(events.Right, image.Pt(50, 10), image.Pt(30, 10), image.Pt(30, 10)))
	or.Update(time.Second)
	assert.NotEqual(t, tgt, cm.Target)

	or.Dispose()
	assert.Equal(t, 0, el.NumListeners(events.MouseDrag))
	assert.False(t, or.Enabled)
	pos = cm.Pos
	el.Dispatch(events.NewScroll(image.Pt(10, 10), mgl32.Vec2{0, 100}))
	assert.False(t, or.Update(time.Second))
	assert.Equal(t, pos, cm.Pos)
}

func TestPinch(t *testing.T) {
	or, cm := newOrbit()
	el := base.NewElement(image.Pt(200, 100))
	or.Bind(el)
	d := cm.Distance()
	el.Dispatch(events.NewTouch(events.TouchStart,
		events.TouchPoint{ID: 1, Where: image.Pt(90, 50)},
		events.TouchPoint{ID: 2, Where: image.Pt(110, 50)}))
	el.Dispatch(events.NewTouch(events.TouchMove,
		events.TouchPoint{ID: 1, Where: image.Pt(80, 50)},
		events.TouchPoint{ID: 2, Where: image.Pt(120, 50)}))
	or.Update(time.Second)
	tolassert.EqualTol(t, d/2, cm.Distance(), 1e-2)

	el.Dispatch(events.NewTouch(events.TouchEnd, events.TouchPoint{ID: 2, Where: image.Pt(120, 50)}))
	pos := cm.Pos
	el.Dispatch(events.NewTouch(events.TouchMove, events.TouchPoint{ID: 1, Where: image.Pt(100, 50)}))
	or.Update(time.Second)
	assert.NotEqual(t, pos, cm.Pos)
}
