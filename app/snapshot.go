// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"

	"cogentcore.org/brainview/legend"
	"cogentcore.org/brainview/surface"
	"cogentcore.org/brainview/surface/surfio"
	"cogentcore.org/brainview/system/driver/offscreen"
	"cogentcore.org/brainview/viewer"
	"golang.org/x/image/draw"
)

// SnapshotOptions are the settings of [Snapshot].
type SnapshotOptions struct {

	// Size is the size of the image.
	Size image.Point

	// Viewer are the viewer options.
	Viewer viewer.Options

	// Defaults and Overrides are the vertex map options
	// of the [Session].
	Defaults, Overrides []surface.VertexMapOption

	// Legend draws the legend over the top left corner.
	Legend bool
}

// Snapshot renders the mesh colored by the intensity data,
// which can be nil, without a window, and returns the image.
func Snapshot(sm *surface.SurfaceMesh, in *surfio.Intensity, so SnapshotOptions) (*image.RGBA, error) {
	host := offscreen.New()
	el := host.NewElement("viewer", so.Size)
	lg := legend.New()
	opts := so.Viewer
	opts.Legend = lg
	cl, err := viewer.New(host, el, viewer.WithOptions(opts))
	if err != nil {
		return nil, err
	}
	defer cl.Dispose()

	s := NewSession(cl, sm)
	s.Defaults = so.Defaults
	s.Overrides = so.Overrides
	if err := s.Show(in); err != nil {
		return nil, err
	}
	if err := cl.Render(); err != nil {
		return nil, err
	}
	src := cl.Renderer().Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
	if so.Legend {
		Composite(img, lg)
	}
	return img, nil
}

// Composite draws the legend image, if shown, over the top left of img.
func Composite(img *image.RGBA, lg *legend.Bar) {
	limg := lg.Image()
	if !lg.Visible() || limg == nil {
		return
	}
	draw.Draw(img, limg.Bounds().Add(img.Bounds().Min), limg, image.Point{}, draw.Over)
}
