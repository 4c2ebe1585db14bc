// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTypeNames(t *testing.T) {
	for tp := MouseDown; tp < typesN; tp++ {
		got, ok := TypeByName(tp.Name())
		assert.True(t, ok, tp.String())
		assert.Equal(t, tp, got)
	}
	tp, ok := TypeByName("dblclick")
	assert.True(t, ok)
	assert.Equal(t, DoubleClick, tp)
	tp, ok = TypeByName("mousewheel")
	assert.True(t, ok)
	assert.Equal(t, Scroll, tp)
	_, ok = TypeByName("keypress")
	assert.False(t, ok)
	_, ok = TypeByName("unknown")
	assert.False(t, ok)
	assert.Equal(t, "Types(99)", Types(99).String())
}

func TestUnion(t *testing.T) {
	var ev Event = NewPointer(Click, Left, image.Pt(3, 4))
	assert.Equal(t, PointerKind, ev.Kind())
	assert.Equal(t, Click, ev.Type())
	assert.Equal(t, []image.Point{{3, 4}}, Points(ev))

	ev = NewTouch(TouchStart, TouchPoint{ID: 1, Where: image.Pt(1, 1)}, TouchPoint{ID: 2, Where: image.Pt(5, 6)})
	assert.Equal(t, TouchKind, ev.Kind())
	assert.Equal(t, []image.Point{{1, 1}, {5, 6}}, Points(ev))

	ev = NewGeneric("keydown", "a")
	assert.Equal(t, GenericKind, ev.Kind())
	assert.Equal(t, Custom, ev.Type())
	assert.Nil(t, Points(ev))

	ev = NewGeneric("contextmenu", nil)
	assert.Equal(t, ContextMenu, ev.Type())

	sc := NewScroll(image.Pt(0, 0), mgl32.Vec2{0, -3})
	assert.Equal(t, Scroll, sc.Type())
	assert.Equal(t, float32(-3), sc.Delta.Y())
	assert.False(t, sc.Time().IsZero())
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(Click, func(ev Event) { order = append(order, 1) })
	id := ls.Add(Click, func(ev Event) { order = append(order, 2) })
	ls.Add(Click, func(ev Event) { order = append(order, 3) })
	ls.Add(MouseUp, func(ev Event) { order = append(order, 9) })
	assert.Equal(t, 3, ls.Len(Click))

	ls.Call(NewPointer(Click, Left, image.Point{}))
	assert.Equal(t, []int{1, 2, 3}, order)

	order = nil
	assert.True(t, ls.Remove(id))
	assert.False(t, ls.Remove(id))
	ls.Call(NewPointer(Click, Left, image.Point{}))
	assert.Equal(t, []int{1, 3}, order)

	order = nil
	ls.Add(Click, func(ev Event) { order = append(order, 4) })
	ls.Call(NewPointer(Click, Left, image.Point{}))
	assert.Equal(t, []int{1, 3, 4}, order)
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(MouseDown, func(ev Event) {
		order = append(order, 1)
		ev.SetHandled()
	})
	ls.Add(MouseDown, func(ev Event) { order = append(order, 2) })
	ev := NewPointer(MouseDown, Left, image.Point{})
	ls.Call(ev)
	assert.Equal(t, []int{1}, order)
	assert.True(t, ev.IsHandled())

	ls.Call(ev)
	assert.Equal(t, []int{1}, order)

	var empty Listeners
	empty.Call(NewPointer(MouseDown, Left, image.Point{}))
	assert.False(t, empty.Remove(1))
}
