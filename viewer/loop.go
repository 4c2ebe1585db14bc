// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"time"

	"cogentcore.org/brainview/system"
)

// loop is the render loop: each frame it updates, requests the next
// frame while it is live, and renders exactly once.
type loop struct {
	sched  system.Scheduler
	update func(delta time.Duration)
	render func()

	// live is cleared by stop; no frame is requested after that.
	live bool

	// frame is the outstanding frame request, zero if none.
	frame system.FrameID

	last    time.Time
	hasLast bool
	ticks   int
}

func newLoop(sched system.Scheduler, update func(delta time.Duration), render func()) *loop {
	return &loop{sched: sched, update: update, render: render}
}

// start requests the first frame.
func (lp *loop) start() {
	if lp.live {
		return
	}
	lp.live = true
	lp.frame = lp.sched.RequestFrame(lp.tick)
}

func (lp *loop) tick(now time.Time) {
	lp.frame = 0
	if !lp.live {
		return
	}
	var delta time.Duration
	if lp.hasLast {
		delta = now.Sub(lp.last)
	}
	lp.last, lp.hasLast = now, true
	lp.ticks++
	lp.update(delta)
	if lp.live {
		lp.frame = lp.sched.RequestFrame(lp.tick)
	}
	lp.render()
}

// stop cancels the outstanding frame. It can be called more than once.
func (lp *loop) stop() {
	lp.live = false
	if lp.frame != 0 {
		lp.sched.CancelFrame(lp.frame)
		lp.frame = 0
	}
}
