// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend draws the color legend of a viewer: a title, a color
// ramp across the color limits and tick labels under it.
package legend

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Legend is what a viewer updates when the displayed colors change.
type Legend interface {

	// Update shows the legend for values from mn to mx, colored by fun,
	// under the given title.
	Update(mn, mx float64, fun func(v float64) [3]float32, title string)

	// Remove hides the legend.
	Remove()
}

// DefaultTitle is the title used when Update is given none.
const DefaultTitle = "Intensity"

// Bar is a [Legend] rendered into an image.
type Bar struct {

	// Width and Height are the size of the legend in pixels.
	Width, Height int

	// Steps is the number of color steps of the ramp.
	Steps int

	// TickSize is the length of tick lines.
	TickSize int

	// MarginTop is the space above the ramp, holding the title.
	MarginTop int

	// MarginBottom is the space below the ramp, holding the ticks.
	MarginBottom int

	// Background fills the legend behind the ramp.
	Background color.RGBA

	// Foreground is the color of the text and ticks.
	Foreground color.RGBA

	lo, hi float64
	fun    func(v float64) [3]float32
	title  string
	shown  bool
	img    *image.RGBA
}

// New returns a new hidden legend with the default layout.
func New() *Bar {
	return &Bar{
		Width:        320,
		Height:       60,
		Steps:        256,
		TickSize:     16,
		MarginTop:    18,
		MarginBottom: 32,
		Background:   color.RGBA{0, 0, 0, 0x88},
		Foreground:   color.RGBA{255, 255, 255, 255},
	}
}

// Update shows the legend for the given limits, color function and title,
// and redraws it.
func (lb *Bar) Update(mn, mx float64, fun func(v float64) [3]float32, title string) {
	if title == "" {
		title = DefaultTitle
	}
	lb.lo, lb.hi, lb.fun, lb.title = mn, mx, fun, title
	lb.shown = true
	lb.draw()
}

// Remove hides the legend.
func (lb *Bar) Remove() {
	lb.shown = false
	lb.img = nil
}

// Visible returns true if the legend is shown.
func (lb *Bar) Visible() bool { return lb.shown }

// Domain returns the limits of the legend.
func (lb *Bar) Domain() (mn, mx float64) { return lb.lo, lb.hi }

// Title returns the title of the legend.
func (lb *Bar) Title() string { return lb.title }

// Image returns the drawn legend, nil when it is hidden.
func (lb *Bar) Image() *image.RGBA { return lb.img }

// RampColor returns the color of step i of the ramp.
func (lb *Bar) RampColor(i int) color.RGBA {
	if lb.fun == nil {
		return lb.Background
	}
	n := max(lb.Steps, 2)
	v := lb.lo + (lb.hi-lb.lo)*float64(i)/float64(n-1)
	c := lb.fun(v)
	return color.RGBA{toByte(c[0]), toByte(c[1]), toByte(c[2]), 255}
}

// Ticks returns the tick values of the legend axis, about one per
// 64 pixels of width.
func (lb *Bar) Ticks() []float64 {
	return Ticks(lb.lo, lb.hi, max(lb.Width/64, 1))
}

// X returns the horizontal pixel position of the value v.
func (lb *Bar) X(v float64) int {
	if lb.hi == lb.lo {
		return 0
	}
	return int((v-lb.lo)/(lb.hi-lb.lo)*float64(lb.Width-1) + 0.5)
}

func (lb *Bar) draw() {
	img := image.NewRGBA(image.Rect(0, 0, lb.Width, lb.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(lb.Background), image.Point{}, draw.Src)

	y0, y1 := lb.MarginTop, lb.Height-lb.MarginBottom
	n := max(lb.Steps, 2)
	for x := range lb.Width {
		step := x * n / max(lb.Width, 1)
		c := lb.RampColor(step)
		for y := y0; y < y1; y++ {
			img.SetRGBA(x, y, c)
		}
	}

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(lb.Foreground), Face: face}
	dr.Dot = fixed.P(0, y0-6)
	dr.DrawString(lb.title)

	for _, v := range lb.Ticks() {
		x := lb.X(v)
		for y := y1; y < min(y1+lb.TickSize/2, lb.Height); y++ {
			img.SetRGBA(x, y, lb.Foreground)
		}
		label := FormatTick(v)
		w := dr.MeasureString(label).Round()
		lx := min(max(x-w/2, 0), lb.Width-w)
		dr.Dot = fixed.P(lx, y1+lb.TickSize/2+face.Ascent)
		dr.DrawString(label)
	}
	lb.img = img
}

// FormatTick formats a tick value compactly.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.4g", v)
}

func toByte(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
