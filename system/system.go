// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the windowing interface that the viewer runs
// on: a [Window] that reports resizes, an [Element] that hosts the
// rendered canvas and delivers input events, and a [Scheduler] of
// animation frames. Implementations live in the sub-packages; all of
// their callbacks run on a single goroutine, the host's frame goroutine.
package system

import (
	"errors"
	"image"
	"time"

	"cogentcore.org/brainview/events"
)

// ErrNotFound is returned when an element cannot be found.
var ErrNotFound = errors.New("system: element not found")

// Subscription is a handle to a registered callback.
// Unsubscribe removes exactly that callback, and can be called more than once.
type Subscription interface {
	Unsubscribe()
}

// NewSubscription returns a [Subscription] that calls remove
// the first time it is unsubscribed.
func NewSubscription(remove func()) Subscription {
	return &subscription{remove: remove}
}

type subscription struct {
	remove func()
}

func (s *subscription) Unsubscribe() {
	if s.remove == nil {
		return
	}
	s.remove()
	s.remove = nil
}

// Window is the top level window containing the elements.
type Window interface {

	// OnResize registers a function called after the window is resized.
	OnResize(fun func()) Subscription
}

// Canvas is a drawing surface attached to an element,
// such as the output of a renderer.
type Canvas interface {

	// Image returns the current contents of the canvas.
	Image() *image.RGBA
}

// Element is a rectangular region of a window hosting canvases.
type Element interface {

	// ClientSize returns the current size of the element in pixels.
	ClientSize() image.Point

	// Clear removes all children of the element.
	Clear()

	// AppendChild adds the canvas as the last child of the element.
	AppendChild(c Canvas)

	// On registers a function called for each event of the given type
	// on the element, in registration order.
	On(typ events.Types, fun func(ev events.Event)) Subscription
}

// FrameID identifies a requested animation frame.
type FrameID int64

// Scheduler runs animation frames, analogous to the browser's
// requestAnimationFrame.
type Scheduler interface {

	// RequestFrame requests that fun be called once, before the next frame
	// is presented, with the frame time.
	RequestFrame(fun func(now time.Time)) FrameID

	// CancelFrame cancels a requested frame that has not run yet.
	CancelFrame(id FrameID)

	// Post queues fun to run on the frame goroutine before the next frame.
	// It is the only method that can be called from other goroutines.
	Post(fun func())
}

// Document finds elements by id.
type Document interface {

	// ElementByID returns the element with the given id,
	// or [ErrNotFound].
	ElementByID(id string) (Element, error)
}

// Host is a complete windowing environment.
type Host interface {
	Document

	// Window returns the window of the host.
	Window() Window

	// Scheduler returns the frame scheduler of the host.
	Scheduler() Scheduler
}
