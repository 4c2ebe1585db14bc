// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer is the interactive surface viewer: it owns the scene,
// camera, orbit controls and render loop of one element, displays
// [surface.Surface] models and resolves pointer and touch events to
// intersections with them.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/brainview/colors"
	"cogentcore.org/brainview/raster"
	"cogentcore.org/brainview/system"
	"cogentcore.org/brainview/xyz"
	"cogentcore.org/brainview/xyz/controls"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrDisposed is returned by operations on a disposed client.
	ErrDisposed = errors.New("viewer: disposed")

	// ErrNoModel is returned by SetModel when no mesh was ever given,
	// and by AddModel for a nil surface.
	ErrNoModel = errors.New("viewer: no model")

	// ErrUnknownModel is returned for handles of models not in the viewer.
	ErrUnknownModel = errors.New("viewer: unknown model")
)

// States are the lifecycle states of a [Client].
type States int32

const (
	Initializing States = iota
	Running
	Disposed
)

func (s States) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Running:
		return "Running"
	case Disposed:
		return "Disposed"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

// Client is a viewer bound to one element of a host.
// All of its methods must be called on the host frame goroutine.
type Client struct {
	host  system.Host
	elem  system.Element
	opts  Options
	state States

	scene    *xyz.Scene
	renderer *raster.Renderer
	controls *controls.Orbit
	grid     *xyz.Grid
	ambient  *xyz.AmbientLight
	dirLight *xyz.DirLight

	loop      *loop
	resizeSub system.Subscription
	listeners []system.Subscription
	raycaster *xyz.Raycaster

	// models are the displayed solids, in the order added.
	models []*xyz.Solid

	// legacy is the state of SetModel.
	legacy legacyModel
}

// New returns a new client displaying into elem: it clears the element,
// appends the renderer canvas, subscribes to window resizes, binds the
// orbit controls to the element and starts the render loop.
// A nil element returns [system.ErrNotFound].
func New(host system.Host, elem system.Element, opts ...Option) (*Client, error) {
	if elem == nil {
		return nil, fmt.Errorf("viewer: %w", system.ErrNotFound)
	}
	if host == nil {
		return nil, errors.New("viewer: nil host")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bg, err := colors.FromString(o.Background)
	if err != nil {
		return nil, fmt.Errorf("viewer: background: %w", err)
	}
	if _, err := colors.FromString(o.FallbackColor); err != nil {
		return nil, fmt.Errorf("viewer: fallback color: %w", err)
	}

	cl := &Client{host: host, elem: elem, opts: o}
	cl.scene = xyz.NewScene()
	cm := &cl.scene.Camera
	cm.FOV, cm.Near, cm.Far = o.FOV, o.Near, o.Far
	cm.Pos = o.CameraPos
	size := elem.ClientSize()
	if size.X > 0 && size.Y > 0 {
		cm.Aspect = float32(size.X) / float32(size.Y)
	}
	cm.LookAtOrigin()

	cl.renderer = raster.New(size)
	cl.renderer.SetClearColor(bg)
	cl.renderer.SetClearAlpha(o.Alpha)

	cl.controls = controls.New(cm)
	cl.controls.MinDistance = o.MinDistance
	cl.controls.Bind(elem)

	if o.GridDivisions > 0 {
		cl.grid = xyz.NewGrid(o.GridSize, o.GridDivisions)
		cl.scene.Add(cl.grid)
	}
	cl.ambient = xyz.NewAmbientLight(colorWhite, o.AmbientIntensity)
	cl.scene.Add(cl.ambient)
	cl.dirLight = xyz.NewDirLight(colorWhite, o.DirIntensity)
	cl.scene.Add(cl.dirLight)
	cl.placeLight()

	cl.raycaster = xyz.NewRaycaster()

	elem.Clear()
	elem.AppendChild(cl.renderer)
	cl.resizeSub = host.Window().OnResize(cl.OnWindowResize)

	cl.loop = newLoop(host.Scheduler(), cl.update, cl.render)
	cl.loop.start()
	cl.state = Running
	slog.Debug("viewer: running", "size", size)
	return cl, nil
}

// State returns the lifecycle state.
func (cl *Client) State() States { return cl.state }

// Scene returns the scene.
func (cl *Client) Scene() *xyz.Scene { return cl.scene }

// Camera returns the camera.
func (cl *Client) Camera() *xyz.Camera { return &cl.scene.Camera }

// Controls returns the orbit controls.
func (cl *Client) Controls() *controls.Orbit { return cl.controls }

// Renderer returns the renderer.
func (cl *Client) Renderer() *raster.Renderer { return cl.renderer }

// Grid returns the grid helper, nil if there is none.
func (cl *Client) Grid() *xyz.Grid { return cl.grid }

// DirLight returns the directional light that follows the camera.
func (cl *Client) DirLight() *xyz.DirLight { return cl.dirLight }

// Options returns the options of the client.
func (cl *Client) Options() Options { return cl.opts }

// Ticks returns the number of render loop frames run.
func (cl *Client) Ticks() int { return cl.loop.ticks }

// update advances the controls and places the directional light.
func (cl *Client) update(delta time.Duration) {
	cl.controls.Update(delta)
	cl.placeLight()
}

// placeLight puts the directional light at a fixed offset from the camera,
// aimed at the orbit target, so that the model is lit from any angle.
func (cl *Client) placeLight() {
	p := cl.scene.Camera.Pos.Add(cl.opts.LightOffset)
	cl.dirLight.Pose.SetPos(p[0], p[1], p[2])
	cl.dirLight.Target = cl.controls.Target()
}

func (cl *Client) render() {
	cl.renderer.Render(cl.scene)
}

// Render renders one frame synchronously, outside of the render loop.
func (cl *Client) Render() error {
	if cl.state == Disposed {
		return ErrDisposed
	}
	cl.render()
	return nil
}

// OnWindowResize sets the camera aspect ratio and renderer size from
// the client size of the element, and renders one frame. Zero sized
// elements are ignored.
func (cl *Client) OnWindowResize() {
	if cl.state == Disposed {
		return
	}
	size := cl.elem.ClientSize()
	if size.X <= 0 || size.Y <= 0 {
		slog.Debug("viewer: ignoring resize to empty element", "size", size)
		return
	}
	cm := &cl.scene.Camera
	cm.Aspect = float32(size.X) / float32(size.Y)
	cm.UpdateMatrix()
	cl.renderer.SetSize(size)
	cl.render()
}

// SetBackgroundColor sets the clear color of the renderer.
func (cl *Client) SetBackgroundColor(color string) error {
	if cl.state == Disposed {
		return ErrDisposed
	}
	c, err := colors.FromString(color)
	if err != nil {
		return fmt.Errorf("viewer: background: %w", err)
	}
	cl.renderer.SetClearColor(c)
	return nil
}

// SetAlpha sets the clear alpha of the renderer.
func (cl *Client) SetAlpha(alpha float64) {
	if cl.state == Disposed {
		return
	}
	cl.renderer.SetClearAlpha(alpha)
}

// SetTarget points the orbit controls at a named target: "origin" is
// the world origin and "center" is the center of the bounding box of the
// displayed models, or the origin when there are none. Other names
// are logged and ignored.
func (cl *Client) SetTarget(name string) {
	if cl.state == Disposed {
		return
	}
	switch name {
	case "origin":
		cl.controls.SetTarget(mgl32.Vec3{})
	case "center":
		var tgt mgl32.Vec3
		if bb, ok := cl.scene.SolidsBBox(); ok {
			tgt = bb.Center()
		}
		cl.controls.SetTarget(tgt)
	default:
		slog.Warn("viewer: unknown target", "name", name)
		return
	}
	cl.placeLight()
}

// Dispose stops the render loop, unsubscribes from window resizes and
// removes the listeners and controls from the element.
// It can be called more than once.
func (cl *Client) Dispose() {
	if cl.state == Disposed {
		return
	}
	cl.loop.stop()
	cl.resizeSub.Unsubscribe()
	cl.controls.Dispose()
	for _, s := range cl.listeners {
		s.Unsubscribe()
	}
	cl.listeners = nil
	cl.state = Disposed
	slog.Debug("viewer: disposed")
}
