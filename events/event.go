// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered to viewer
// elements as a tagged union of payloads ([Pointer], [Touch] and
// [Generic]), and the [Listeners] that dispatch them.
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Event is the interface for all input events.
// Use [Event.Kind] to find the concrete payload type.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Kind returns the payload kind, which determines the concrete type.
	Kind() Kinds

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as handled, so that no further
	// listeners are called for it.
	SetHandled()
}

// Base is the common part of all events.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Handled indicates that the event has been handled.
	Handled bool
}

// Init sets the type and the generation time to now.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) IsHandled() bool { return ev.Handled }

func (ev *Base) SetHandled() { ev.Handled = true }

// Pointer is a mouse event: button presses, clicks, moves and scrolls.
type Pointer struct {
	Base

	// Button is the button that changed state, if any.
	Button Buttons

	// Where is the position in pixels relative to the top left
	// of the element.
	Where image.Point

	// Start is where a drag started.
	Start image.Point

	// Prev is the previous position, for moves and drags.
	Prev image.Point

	// Delta is the amount of scrolling in each axis, in pixels.
	Delta mgl32.Vec2
}

// NewPointer returns a new pointer event.
func NewPointer(typ Types, but Buttons, where image.Point) *Pointer {
	ev := &Pointer{Button: but, Where: where}
	ev.Init(typ)
	return ev
}

// NewDrag returns a new [MouseDrag] event.
func NewDrag(but Buttons, where, prev, start image.Point) *Pointer {
	ev := &Pointer{Button: but, Where: where, Prev: prev, Start: start}
	ev.Init(MouseDrag)
	return ev
}

// NewScroll returns a new [Scroll] event.
func NewScroll(where image.Point, delta mgl32.Vec2) *Pointer {
	ev := &Pointer{Where: where, Delta: delta}
	ev.Init(Scroll)
	return ev
}

func (ev *Pointer) Kind() Kinds { return PointerKind }

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Time().Format("04:05"))
}

// TouchPoint is one finger on a touch screen.
type TouchPoint struct {

	// ID identifies the finger across the events of one touch sequence.
	ID int

	// Where is the position in pixels relative to the top left
	// of the element.
	Where image.Point
}

// Touch is a touch screen event. Touches holds the contacts that
// changed, in touch-list order: the new fingers for [TouchStart],
// the lifted ones for [TouchEnd] and the moved ones for [TouchMove].
type Touch struct {
	Base

	Touches []TouchPoint
}

// NewTouch returns a new touch event for the given contacts.
func NewTouch(typ Types, touches ...TouchPoint) *Touch {
	ev := &Touch{Touches: touches}
	ev.Init(typ)
	return ev
}

func (ev *Touch) Kind() Kinds { return TouchKind }

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{Touches: %v, Time: %v}", ev.Type(), ev.Touches, ev.Time().Format("04:05"))
}

// Generic is any other event, with optional data. Name is the DOM
// event name, which is kept for events with no [Types] of their own.
type Generic struct {
	Base

	Name string

	Data any
}

// NewGeneric returns a new generic event with the given DOM name.
func NewGeneric(name string, data any) *Generic {
	typ, ok := TypeByName(name)
	if !ok {
		typ = Custom
	}
	ev := &Generic{Name: name, Data: data}
	ev.Init(typ)
	return ev
}

func (ev *Generic) Kind() Kinds { return GenericKind }

func (ev *Generic) String() string {
	return fmt.Sprintf("%v{Name: %q, Data: %v, Time: %v}", ev.Type(), ev.Name, ev.Data, ev.Time().Format("04:05"))
}

// Points returns the contact positions of the event, in order:
// one for a [Pointer], one per contact for a [Touch] and none otherwise.
func Points(ev Event) []image.Point {
	switch ev := ev.(type) {
	case *Pointer:
		return []image.Point{ev.Where}
	case *Touch:
		pts := make([]image.Point, len(ev.Touches))
		for i, tp := range ev.Touches {
			pts[i] = tp.Where
		}
		return pts
	}
	return nil
}
