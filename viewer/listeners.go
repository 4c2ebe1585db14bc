// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"

	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/system"
	"cogentcore.org/brainview/xyz"
	"github.com/go-gl/mathgl/mgl32"
)

// Pick is the result of casting a ray through one contact point of an event.
type Pick struct {

	// Where is the contact point in element pixels.
	Where image.Point

	// NDC is the contact point in normalized device coordinates.
	NDC mgl32.Vec2

	// Hit is the nearest intersection with a model, nil if there is none.
	Hit *xyz.Intersection
}

// Handler is called for the events of a listener, with one pick per
// contact point for raycast events and nil picks otherwise.
type Handler func(ev events.Event, picks []Pick)

// IsRaycast returns whether events of the given type are resolved
// to picks: clicks, double clicks, mouse and touch presses and releases.
func IsRaycast(typ events.Types) bool {
	switch typ {
	case events.Click, events.DoubleClick, events.MouseDown, events.MouseUp, events.TouchStart, events.TouchEnd:
		return true
	}
	return false
}

// AddListener calls fun for every event of the given type on the element,
// synchronously during dispatch and in registration order.
func (cl *Client) AddListener(typ events.Types, fun Handler) system.Subscription {
	if cl.state == Disposed {
		return system.NewSubscription(nil)
	}
	raycast := IsRaycast(typ)
	sub := cl.elem.On(typ, func(ev events.Event) {
		var picks []Pick
		if raycast {
			picks = cl.Pick(ev)
		}
		fun(ev, picks)
	})
	cl.listeners = append(cl.listeners, sub)
	return sub
}

// AddListenerName is [Client.AddListener] for an event type given by its
// DOM name, such as "click" or "touchstart". Other names listen to the
// [events.Generic] events of that name.
func (cl *Client) AddListenerName(name string, fun Handler) system.Subscription {
	if typ, ok := events.TypeByName(name); ok {
		return cl.AddListener(typ, fun)
	}
	return cl.AddListener(events.Custom, func(ev events.Event, picks []Pick) {
		if ge, ok := ev.(*events.Generic); ok && ge.Name == name {
			fun(ev, picks)
		}
	})
}

// NDC returns the normalized device coordinates of a point in element
// pixels: x from -1 at the left to 1 at the right, and y from 1 at
// the top to -1 at the bottom.
func (cl *Client) NDC(p image.Point) mgl32.Vec2 {
	size := cl.elem.ClientSize()
	if size.X <= 0 || size.Y <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		2*float32(p.X)/float32(size.X) - 1,
		1 - 2*float32(p.Y)/float32(size.Y),
	}
}

// Pick casts a ray from the camera through each contact point of the event,
// in touch list order, and returns the nearest intersection of each with
// the models. Grids and lights are never picked.
func (cl *Client) Pick(ev events.Event) []Pick {
	pts := events.Points(ev)
	picks := make([]Pick, len(pts))
	solids := cl.scene.Solids()
	for i, p := range pts {
		pk := Pick{Where: p, NDC: cl.NDC(p)}
		cl.raycaster.SetFromCamera(pk.NDC, &cl.scene.Camera)
		if hits := cl.raycaster.IntersectSolids(solids); len(hits) > 0 {
			pk.Hit = &hits[0]
		}
		picks[i] = pk
	}
	return picks
}
