// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"image"
	"slices"
	"time"

	"cogentcore.org/brainview/events"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DoubleClickTime is the maximum time between the two clicks
	// of a [events.DoubleClick].
	DoubleClickTime = 500 * time.Millisecond

	// ClickSlop is the distance in pixels the mouse can move between
	// a press and a release that still counts as a click.
	ClickSlop = 4
)

// Input turns the raw mouse and touch state reported by a driver into
// events dispatched on an [Element]. Only one mouse button is tracked
// at a time; presses of other buttons while one is down are ignored.
type Input struct {
	Element *Element

	pos       image.Point
	start     image.Point
	down      events.Buttons
	lastClick time.Time
	lastBut   events.Buttons
	touches   map[int]image.Point
}

// NewInput returns a new input dispatching on the given element.
func NewInput(el *Element) *Input {
	return &Input{Element: el, touches: map[int]image.Point{}}
}

func (in *Input) send(ev events.Event, b *events.Base, now time.Time) {
	b.GenTime = now
	in.Element.Dispatch(ev)
}

func (in *Input) pointer(now time.Time, typ events.Types, but events.Buttons) {
	ev := events.NewPointer(typ, but, in.pos)
	ev.Start = in.start
	in.send(ev, &ev.Base, now)
}

// Press reports that the button was pressed at pos.
func (in *Input) Press(now time.Time, but events.Buttons, pos image.Point) {
	if in.down != events.NoButton {
		return
	}
	in.Move(now, pos)
	in.down = but
	in.start = pos
	in.pointer(now, events.MouseDown, but)
	if but == events.Right {
		in.pointer(now, events.ContextMenu, but)
	}
}

// Release reports that the button was released at pos, sending
// a click if the mouse stayed near where it was pressed.
func (in *Input) Release(now time.Time, but events.Buttons, pos image.Point) {
	if but != in.down {
		return
	}
	in.Move(now, pos)
	in.down = events.NoButton
	in.pointer(now, events.MouseUp, but)
	d := pos.Sub(in.start)
	if d.X*d.X+d.Y*d.Y > ClickSlop*ClickSlop {
		return
	}
	in.pointer(now, events.Click, but)
	if but == in.lastBut && !in.lastClick.IsZero() && now.Sub(in.lastClick) <= DoubleClickTime {
		in.pointer(now, events.DoubleClick, but)
		in.lastClick = time.Time{}
		return
	}
	in.lastBut = but
	in.lastClick = now
}

// Move reports the mouse position, sending a drag if a button is down
// and a move otherwise. Nothing is sent if the position is unchanged.
func (in *Input) Move(now time.Time, pos image.Point) {
	if pos == in.pos {
		return
	}
	prev := in.pos
	in.pos = pos
	if in.down != events.NoButton {
		ev := events.NewDrag(in.down, pos, prev, in.start)
		in.send(ev, &ev.Base, now)
		return
	}
	ev := events.NewPointer(events.MouseMove, events.NoButton, pos)
	ev.Prev = prev
	in.send(ev, &ev.Base, now)
}

// Wheel reports scrolling by delta pixels at the mouse position.
func (in *Input) Wheel(now time.Time, delta mgl32.Vec2) {
	if delta == (mgl32.Vec2{}) {
		return
	}
	ev := events.NewScroll(in.pos, delta)
	in.send(ev, &ev.Base, now)
}

// Down returns the button that is down, if any.
func (in *Input) Down() events.Buttons { return in.down }

// Touches reports the current touch contacts by id, sending
// the contacts that started, then moved and then ended since the
// last call, each in id order.
func (in *Input) Touches(now time.Time, cur map[int]image.Point) {
	var started, moved, ended []events.TouchPoint
	for _, id := range sortedIDs(cur) {
		pos := cur[id]
		old, ok := in.touches[id]
		switch {
		case !ok:
			started = append(started, events.TouchPoint{ID: id, Where: pos})
		case old != pos:
			moved = append(moved, events.TouchPoint{ID: id, Where: pos})
		}
	}
	for _, id := range sortedIDs(in.touches) {
		if _, ok := cur[id]; !ok {
			ended = append(ended, events.TouchPoint{ID: id, Where: in.touches[id]})
		}
	}
	in.touches = make(map[int]image.Point, len(cur))
	for id, pos := range cur {
		in.touches[id] = pos
	}
	for _, tc := range []struct {
		typ events.Types
		tps []events.TouchPoint
	}{{events.TouchStart, started}, {events.TouchMove, moved}, {events.TouchEnd, ended}} {
		if len(tc.tps) == 0 {
			continue
		}
		ev := events.NewTouch(tc.typ, tc.tps...)
		in.send(ev, &ev.Base, now)
	}
}

func sortedIDs(m map[int]image.Point) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
