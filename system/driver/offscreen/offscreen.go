// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless [system.Host], whose frames and
// events are driven by hand. It is used for tests and for rendering
// snapshots without a window.
package offscreen

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/brainview/system"
	"cogentcore.org/brainview/system/driver/base"
)

// Host is a headless [system.Host]. Its clock only moves in [Host.Step].
type Host struct {
	sched    base.Scheduler
	win      base.Window
	elements map[string]*base.Element
	now      time.Time
}

// New returns a new host with no elements, with its clock at the Unix epoch.
func New() *Host {
	return &Host{elements: map[string]*base.Element{}, now: time.Unix(0, 0)}
}

func (h *Host) Window() system.Window { return &h.win }

func (h *Host) Scheduler() system.Scheduler { return &h.sched }

// NewElement adds a new element of the given size with the given id.
func (h *Host) NewElement(id string, size image.Point) *base.Element {
	el := base.NewElement(size)
	h.elements[id] = el
	return el
}

func (h *Host) ElementByID(id string) (system.Element, error) {
	el, ok := h.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", system.ErrNotFound, id)
	}
	return el, nil
}

// Now returns the current time of the host clock.
func (h *Host) Now() time.Time { return h.now }

// Step advances the clock by d and runs one frame,
// returning the number of frame callbacks run.
func (h *Host) Step(d time.Duration) int {
	h.now = h.now.Add(d)
	return h.sched.RunFrame(h.now)
}

// Pending returns the number of requested frames that have not run.
func (h *Host) Pending() int { return h.sched.Pending() }

// Resize sets the size of the element and notifies the window
// resize callbacks.
func (h *Host) Resize(el *base.Element, size image.Point) {
	el.SetSize(size)
	h.win.Resized()
}

// NumResize returns the number of window resize callbacks.
func (h *Host) NumResize() int { return h.win.NumResize() }
