// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"image"
	"sync"
	"testing"
	"time"

	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/system"
	"github.com/stretchr/testify/assert"
)

func TestSchedulerFrames(t *testing.T) {
	var s Scheduler
	var got []string
	now := time.Unix(100, 0)
	s.RequestFrame(func(tm time.Time) {
		got = append(got, "a")
		assert.Equal(t, now, tm)
		s.RequestFrame(func(time.Time) { got = append(got, "c") })
	})
	s.RequestFrame(func(time.Time) { got = append(got, "b") })
	assert.Equal(t, 2, s.Pending())

	assert.Equal(t, 2, s.RunFrame(now))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, s.Pending())

	assert.Equal(t, 1, s.RunFrame(now))
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, s.RunFrame(now))
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	ran := 0
	id := s.RequestFrame(func(time.Time) { ran++ })
	s.CancelFrame(id)
	assert.Equal(t, 0, s.Pending())
	s.RunFrame(time.Now())
	assert.Equal(t, 0, ran)

	// cancel a later frame of the same batch
	var later system.FrameID
	s.RequestFrame(func(time.Time) { s.CancelFrame(later) })
	later = s.RequestFrame(func(time.Time) { ran++ })
	assert.Equal(t, 1, s.RunFrame(time.Now()))
	assert.Equal(t, 0, ran)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerPost(t *testing.T) {
	var s Scheduler
	var mu sync.Mutex
	n := 0
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Post(func() {
				mu.Lock()
				n++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()
	s.RunFrame(time.Now())
	assert.Equal(t, 10, n)
}

func TestWindow(t *testing.T) {
	var w Window
	var got []int
	s1 := w.OnResize(func() { got = append(got, 1) })
	w.OnResize(func() { got = append(got, 2) })
	w.Resized()
	assert.Equal(t, []int{1, 2}, got)
	s1.Unsubscribe()
	s1.Unsubscribe()
	assert.Equal(t, 1, w.NumResize())
	got = nil
	w.Resized()
	assert.Equal(t, []int{2}, got)
}

type canvas struct{ im *image.RGBA }

func (c canvas) Image() *image.RGBA { return c.im }

func TestElement(t *testing.T) {
	el := NewElement(image.Pt(40, 30))
	assert.Equal(t, image.Pt(40, 30), el.ClientSize())
	el.AppendChild(canvas{image.NewRGBA(image.Rect(0, 0, 4, 3))})
	assert.Len(t, el.Children(), 1)
	el.Clear()
	assert.Empty(t, el.Children())

	clicks := 0
	sub := el.On(events.Click, func(ev events.Event) { clicks++ })
	el.Dispatch(events.NewPointer(events.Click, events.Left, image.Pt(1, 1)))
	el.Dispatch(events.NewPointer(events.MouseUp, events.Left, image.Pt(1, 1)))
	assert.Equal(t, 1, clicks)
	sub.Unsubscribe()
	assert.Equal(t, 0, el.NumListeners(events.Click))
	el.Dispatch(events.NewPointer(events.Click, events.Left, image.Pt(1, 1)))
	assert.Equal(t, 1, clicks)
}
