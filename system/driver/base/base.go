// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the scheduler, window and element logic common
// to all of the system drivers, which advance it from their own frame loop.
package base

import (
	"image"
	"slices"
	"sync"
	"time"

	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/system"
)

// Scheduler is a [system.Scheduler] whose frames are run by the driver
// calling [Scheduler.RunFrame].
type Scheduler struct {

	// mu protects posted, which is the only state shared across goroutines.
	mu     sync.Mutex
	posted []func()

	frames  []frame
	running []frame
	nextID  system.FrameID
}

type frame struct {
	id  system.FrameID
	fun func(now time.Time)
}

func (s *Scheduler) RequestFrame(fun func(now time.Time)) system.FrameID {
	s.nextID++
	s.frames = append(s.frames, frame{id: s.nextID, fun: fun})
	return s.nextID
}

func (s *Scheduler) CancelFrame(id system.FrameID) {
	s.frames = slices.DeleteFunc(s.frames, func(f frame) bool { return f.id == id })
	for i := range s.running {
		if s.running[i].id == id {
			s.running[i].fun = nil
		}
	}
}

func (s *Scheduler) Post(fun func()) {
	s.mu.Lock()
	s.posted = append(s.posted, fun)
	s.mu.Unlock()
}

// Pending returns the number of requested frames that have not run.
func (s *Scheduler) Pending() int {
	return len(s.frames)
}

// RunPosted runs the functions queued by [Scheduler.Post], in order.
func (s *Scheduler) RunPosted() {
	s.mu.Lock()
	posted := s.posted
	s.posted = nil
	s.mu.Unlock()
	for _, fun := range posted {
		fun()
	}
}

// RunFrame runs the posted functions and then every frame requested
// before the call, in request order, returning the number of frames run.
// Frames requested during the call run in the next one.
func (s *Scheduler) RunFrame(now time.Time) int {
	s.RunPosted()
	s.running = s.frames
	s.frames = nil
	n := 0
	for i := range s.running {
		fun := s.running[i].fun
		if fun == nil {
			continue
		}
		fun(now)
		n++
	}
	s.running = nil
	return n
}

// Window is a [system.Window] whose resize callbacks are
// called by the driver through [Window.Resized].
type Window struct {
	resize []callback
	nextID int
}

type callback struct {
	id  int
	fun func()
}

func (w *Window) OnResize(fun func()) system.Subscription {
	w.nextID++
	id := w.nextID
	w.resize = append(w.resize, callback{id: id, fun: fun})
	return system.NewSubscription(func() {
		w.resize = slices.DeleteFunc(w.resize, func(c callback) bool { return c.id == id })
	})
}

// Resized calls the resize callbacks in registration order.
func (w *Window) Resized() {
	for _, c := range slices.Clone(w.resize) {
		c.fun()
	}
}

// NumResize returns the number of resize callbacks.
func (w *Window) NumResize() int {
	return len(w.resize)
}

// Element is a [system.Element] whose size is set by the driver,
// and which receives events through [Element.Dispatch].
type Element struct {
	size      image.Point
	children  []system.Canvas
	listeners events.Listeners
}

// NewElement returns a new element of the given size.
func NewElement(size image.Point) *Element {
	return &Element{size: size}
}

func (el *Element) ClientSize() image.Point { return el.size }

// SetSize sets the client size of the element.
func (el *Element) SetSize(size image.Point) { el.size = size }

func (el *Element) Clear() { el.children = nil }

func (el *Element) AppendChild(c system.Canvas) {
	el.children = append(el.children, c)
}

// Children returns the canvases of the element.
func (el *Element) Children() []system.Canvas { return el.children }

func (el *Element) On(typ events.Types, fun func(ev events.Event)) system.Subscription {
	id := el.listeners.Add(typ, fun)
	return system.NewSubscription(func() {
		el.listeners.Remove(id)
	})
}

// NumListeners returns the number of listeners for the given type.
func (el *Element) NumListeners(typ events.Types) int {
	return el.listeners.Len(typ)
}

// Dispatch sends the event to the listeners of its type.
func (el *Element) Dispatch(ev events.Event) {
	el.listeners.Call(ev)
}
