// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"cogentcore.org/brainview/legend"
	"github.com/go-gl/mathgl/mgl32"
)

// Options are the settings of a [Client], fixed at construction.
type Options struct {

	// CameraPos is the initial camera position. The camera looks at the origin.
	CameraPos mgl32.Vec3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clipping plane distances.
	Near, Far float32

	// MinDistance is the closest the camera orbits to its target.
	MinDistance float32

	// Background is the clear color, in any form [colors.FromString] accepts.
	Background string

	// Alpha is the opacity of the background.
	Alpha float64

	// FallbackColor is the uniform color of surfaces with no active vertex map.
	FallbackColor string

	// ModelRotation is the rotation about the X axis, in degrees,
	// applied to every model, turning z-up anatomical coordinates y-up.
	ModelRotation float32

	// GridSize and GridDivisions configure the grid helper.
	// No grid is shown if GridDivisions is zero.
	GridSize      float32
	GridDivisions int

	// AmbientIntensity and DirIntensity are the intensities of the
	// white ambient and directional lights.
	AmbientIntensity float32
	DirIntensity     float32

	// LightOffset is added to the camera position to place the
	// directional light on each frame.
	LightOffset mgl32.Vec3

	// Legend is updated with the limits and color map of the active
	// vertex map of the last added model. It can be nil.
	Legend legend.Legend

	// LegendTitle is the title passed to the legend.
	LegendTitle string
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		CameraPos:        mgl32.Vec3{-150, 100, -100},
		FOV:              60,
		Near:             0.1,
		Far:              1000,
		MinDistance:      0.1,
		Background:       "#000000",
		Alpha:            1,
		FallbackColor:    "orange",
		ModelRotation:    -90,
		GridSize:         1000,
		GridDivisions:    100,
		AmbientIntensity: 0.6,
		DirIntensity:     0.4,
		LightOffset:      mgl32.Vec3{100, 100, 100},
		LegendTitle:      legend.DefaultTitle,
	}
}

// Option changes the options of a new [Client].
type Option func(o *Options)

// WithOptions replaces all of the options.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// WithLegend sets the legend updated by the client.
func WithLegend(lg legend.Legend) Option {
	return func(o *Options) { o.Legend = lg }
}

// WithBackground sets the background color and opacity.
func WithBackground(color string, alpha float64) Option {
	return func(o *Options) {
		o.Background = color
		o.Alpha = alpha
	}
}

// WithCamera sets the initial camera position and field of view.
func WithCamera(pos mgl32.Vec3, fov float32) Option {
	return func(o *Options) {
		o.CameraPos = pos
		o.FOV = fov
	}
}

// WithFallbackColor sets the color of surfaces with no vertex map.
func WithFallbackColor(color string) Option {
	return func(o *Options) { o.FallbackColor = color }
}

// WithModelRotation sets the rotation about X applied to models, in degrees.
func WithModelRotation(deg float32) Option {
	return func(o *Options) { o.ModelRotation = deg }
}

// WithGrid sets the size and divisions of the grid helper;
// zero divisions hides it.
func WithGrid(size float32, divisions int) Option {
	return func(o *Options) {
		o.GridSize = size
		o.GridDivisions = divisions
	}
}
