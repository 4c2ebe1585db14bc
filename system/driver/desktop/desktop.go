// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop provides a [system.Host] that shows a single element
// filling a desktop window, presenting its canvases through ebiten.
package desktop

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/brainview/base/errors"
	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/system"
	"cogentcore.org/brainview/system/driver/base"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WheelScale is the number of pixels of scrolling per wheel notch.
const WheelScale = 100

// Host is a desktop [system.Host] with a single element, whose id is given
// to [New], filling the window. Frames run on the ebiten update goroutine.
type Host struct {

	// Title is the window title.
	Title string

	sched base.Scheduler
	win   base.Window
	id    string
	el    *base.Element
	input *base.Input

	// layers are the ebiten images of the element canvases.
	layers []*ebiten.Image
	closed bool
}

// New returns a new host whose element has the given id and initial size.
func New(id string, size image.Point) *Host {
	el := base.NewElement(size)
	return &Host{Title: "brainview", id: id, el: el, input: base.NewInput(el)}
}

func (h *Host) Window() system.Window { return &h.win }

func (h *Host) Scheduler() system.Scheduler { return &h.sched }

func (h *Host) ElementByID(id string) (system.Element, error) {
	if id != h.id {
		return nil, fmt.Errorf("%w: %q", system.ErrNotFound, id)
	}
	return h.el, nil
}

// Close makes [Host.Run] return after the current frame.
// It can be called from any goroutine.
func (h *Host) Close() {
	h.sched.Post(func() { h.closed = true })
}

// Run opens the window and runs frames until it is closed.
// It must be called from the main goroutine.
func (h *Host) Run() error {
	sz := h.el.ClientSize()
	ebiten.SetWindowTitle(h.Title)
	ebiten.SetWindowSize(sz.X, sz.Y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(&game{h: h})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	h *Host
}

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	but events.Buttons
}{
	{ebiten.MouseButtonLeft, events.Left},
	{ebiten.MouseButtonMiddle, events.Middle},
	{ebiten.MouseButtonRight, events.Right},
}

func (g *game) Update() error {
	h := g.h
	now := time.Now()
	h.pollInput(now)
	h.sched.RunFrame(now)
	if h.closed {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) pollInput(now time.Time) {
	pos := image.Pt(ebiten.CursorPosition())
	h.input.Move(now, pos)
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			h.input.Press(now, mb.but, pos)
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			h.input.Release(now, mb.but, pos)
		}
	}
	// ebiten wheel offsets are positive scrolling up, the reverse of DOM deltas
	dx, dy := ebiten.Wheel()
	h.input.Wheel(now, mgl32.Vec2{float32(-dx * WheelScale), float32(-dy * WheelScale)})

	ids := ebiten.AppendTouchIDs(nil)
	cur := make(map[int]image.Point, len(ids))
	for _, id := range ids {
		cur[int(id)] = image.Pt(ebiten.TouchPosition(id))
	}
	h.input.Touches(now, cur)
}

func (g *game) Draw(screen *ebiten.Image) {
	h := g.h
	cs := h.el.Children()
	for len(h.layers) < len(cs) {
		h.layers = append(h.layers, nil)
	}
	for i, c := range cs {
		img := c.Image()
		if img == nil || img.Bounds().Empty() {
			continue
		}
		sz := img.Bounds().Size()
		ly := h.layers[i]
		if ly == nil || ly.Bounds().Size() != sz {
			if ly != nil {
				ly.Deallocate()
			}
			ly = ebiten.NewImage(sz.X, sz.Y)
			h.layers[i] = ly
		}
		ly.WritePixels(img.Pix)
		screen.DrawImage(ly, nil)
	}
	for _, ly := range h.layers[len(cs):] {
		if ly != nil {
			ly.Deallocate()
		}
	}
	h.layers = h.layers[:len(cs)]
}

// Layout sizes the element to the window, calling the resize callbacks
// when it changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h := g.h
	sz := image.Pt(outsideWidth, outsideHeight)
	if sz != h.el.ClientSize() {
		slog.Debug("desktop: window resized", "size", sz)
		h.el.SetSize(sz)
		h.win.Resized()
	}
	return outsideWidth, outsideHeight
}
