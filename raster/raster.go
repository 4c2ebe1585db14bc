// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a software renderer for [xyz.Scene]: Gouraud shaded
// Lambert triangles and grid lines, depth tested in a z-buffer, drawn
// into an [image.RGBA].
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/brainview/xyz"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws scenes into an image. It implements [system.Canvas].
type Renderer struct {
	img   *image.RGBA
	depth []float32

	clearColor color.RGBA
	clearAlpha float64

	// number of frames rendered
	frames int

	// number of triangles drawn in the last frame, after culling
	triangles int
}

// New returns a new renderer of the given size in pixels,
// clearing to opaque black.
func New(size image.Point) *Renderer {
	r := &Renderer{clearColor: color.RGBA{0, 0, 0, 255}, clearAlpha: 1}
	r.SetSize(size)
	return r
}

// SetSize sets the size of the image in pixels, reallocating the buffers
// if it changed. Negative sizes are treated as zero.
func (r *Renderer) SetSize(size image.Point) {
	size.X, size.Y = max(size.X, 0), max(size.Y, 0)
	if r.img != nil && r.img.Rect.Size() == size {
		return
	}
	r.img = image.NewRGBA(image.Rectangle{Max: size})
	r.depth = make([]float32, size.X*size.Y)
}

// Size returns the size of the image in pixels.
func (r *Renderer) Size() image.Point { return r.img.Rect.Size() }

// Image returns the rendered image. It is reused across frames.
func (r *Renderer) Image() *image.RGBA { return r.img }

// SetClearColor sets the background color. Its alpha is ignored:
// see [Renderer.SetClearAlpha].
func (r *Renderer) SetClearColor(c color.RGBA) {
	c.A = 255
	r.clearColor = c
}

// ClearColor returns the background color.
func (r *Renderer) ClearColor() color.RGBA { return r.clearColor }

// SetClearAlpha sets the opacity of the background, clamped to [0, 1].
func (r *Renderer) SetClearAlpha(a float64) {
	r.clearAlpha = min(max(a, 0), 1)
}

// ClearAlpha returns the opacity of the background.
func (r *Renderer) ClearAlpha() float64 { return r.clearAlpha }

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() int { return r.frames }

// Triangles returns the number of triangles drawn in the last frame.
func (r *Renderer) Triangles() int { return r.triangles }

// clear fills the image with the premultiplied background color
// and resets the depth buffer.
func (r *Renderer) clear() {
	a := r.clearAlpha
	c := color.RGBA{
		R: uint8(float64(r.clearColor.R)*a + 0.5),
		G: uint8(float64(r.clearColor.G)*a + 0.5),
		B: uint8(float64(r.clearColor.B)*a + 0.5),
		A: uint8(255*a + 0.5),
	}
	pix := r.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	n := len(r.depth)
	if n == 0 {
		return
	}
	r.depth[0] = math32.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(r.depth[i:], r.depth[:i])
	}
}

// Render draws the scene as seen by its camera.
func (r *Renderer) Render(sc *xyz.Scene) {
	r.frames++
	r.triangles = 0
	r.clear()
	if len(r.depth) == 0 {
		return
	}
	cm := &sc.Camera
	viewProj := cm.PrjnMatrix.Mul4(cm.ViewMatrix)
	lt := newLighting(sc)
	for _, gd := range sc.Grids() {
		r.drawGrid(gd, viewProj)
	}
	for _, sld := range sc.Solids() {
		r.drawSolid(sld, viewProj, &lt)
	}
}

// vertex is a vertex in clip coordinates with its shaded color.
type vertex struct {
	clip  mgl32.Vec4
	color mgl32.Vec3
}

func lerpVertex(a, b vertex, t float32) vertex {
	return vertex{
		clip:  a.clip.Add(b.clip.Sub(a.clip).Mul(t)),
		color: a.color.Add(b.color.Sub(a.color).Mul(t)),
	}
}

// nearDist is the signed distance of the vertex inside the near plane.
func (v vertex) nearDist() float32 { return v.clip[2] + v.clip[3] }

// screen is a vertex in pixel coordinates, with the depth in z.
type screen struct {
	x, y, z float32
	color   mgl32.Vec3
}

func (r *Renderer) toScreen(v vertex) screen {
	sz := r.img.Rect.Size()
	iw := 1 / v.clip[3]
	return screen{
		x:     (v.clip[0]*iw + 1) * 0.5 * float32(sz.X),
		y:     (1 - v.clip[1]*iw) * 0.5 * float32(sz.Y),
		z:     v.clip[2] * iw,
		color: v.color,
	}
}

// clipNear clips the polygon against the near plane.
func clipNear(poly []vertex) []vertex {
	var out []vertex
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		da, db := a.nearDist(), b.nearDist()
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, lerpVertex(a, b, da/(da-db)))
		}
	}
	return out
}

func (r *Renderer) drawSolid(sld *xyz.Solid, viewProj mgl32.Mat4, lt *lighting) {
	g := sld.Geometry
	if g == nil || g.NumTriangles() == 0 {
		return
	}
	model := sld.Pose.Matrix
	mvp := viewProj.Mul4(model)
	normMat := model.Inv().Transpose()
	base := colorVec(sld.Material.Color)
	vcolors := sld.Material.VertexColors && g.HasColors()
	double := sld.Material.Side == xyz.DoubleSide

	nv := g.NumVertices()
	clips := make([]mgl32.Vec4, nv)
	normals := make([]mgl32.Vec3, nv)
	diffuse := make([]mgl32.Vec3, nv)
	for i := range nv {
		p := g.Vertex(uint32(i))
		clips[i] = mvp.Mul4x1(p.Vec4(1))
		normals[i] = mgl32.TransformNormal(g.Normal(uint32(i)), normMat)
		if l := normals[i].Len(); l > 0 {
			normals[i] = normals[i].Mul(1 / l)
		}
		if vcolors {
			diffuse[i] = mgl32.Vec3{g.Colors[3*i], g.Colors[3*i+1], g.Colors[3*i+2]}
		} else {
			diffuse[i] = base
		}
	}

	for t := range g.NumTriangles() {
		idx := [3]uint32{g.Indices[3*t], g.Indices[3*t+1], g.Indices[3*t+2]}
		poly := make([]vertex, 3)
		for k, vi := range idx {
			poly[k].clip = clips[vi]
		}
		front, ok := facing(poly)
		if !ok || (!front && !double) {
			continue
		}
		flip := float32(1)
		if !front {
			flip = -1
		}
		for k, vi := range idx {
			poly[k].color = lt.shade(diffuse[vi], normals[vi].Mul(flip))
		}
		poly = clipNear(poly)
		if len(poly) < 3 {
			continue
		}
		r.triangles++
		s0 := r.toScreen(poly[0])
		for k := 1; k+1 < len(poly); k++ {
			r.fillTriangle(s0, r.toScreen(poly[k]), r.toScreen(poly[k+1]))
		}
	}
}

// facing returns whether the triangle winds counter-clockwise on the
// screen, and false for ok if it is degenerate or entirely behind
// the near plane.
func facing(poly []vertex) (front, ok bool) {
	behind := 0
	for _, v := range poly {
		if v.nearDist() < 0 {
			behind++
		}
	}
	if behind == 3 {
		return false, false
	}
	// orientation in homogeneous coordinates, valid across w signs
	a, b, c := poly[0].clip, poly[1].clip, poly[2].clip
	m := mgl32.Mat3{a[0], a[1], a[3], b[0], b[1], b[3], c[0], c[1], c[3]}
	det := m.Det()
	if det == 0 {
		return false, false
	}
	return det > 0, true
}

func edge(a, b screen, x, y float32) float32 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

// fillTriangle fills a screen space triangle with either winding.
func (r *Renderer) fillTriangle(a, b, c screen) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	sz := r.img.Rect.Size()
	x0 := max(int(math32.Floor(min(a.x, b.x, c.x))), 0)
	x1 := min(int(math32.Ceil(max(a.x, b.x, c.x))), sz.X-1)
	y0 := max(int(math32.Floor(min(a.y, b.y, c.y))), 0)
	y1 := min(int(math32.Ceil(max(a.y, b.y, c.y))), sz.Y-1)
	inv := 1 / area
	for y := y0; y <= y1; y++ {
		py := float32(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float32(x) + 0.5
			w0 := edge(b, c, px, py) * inv
			w1 := edge(c, a, px, py) * inv
			w2 := edge(a, b, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.z + w1*b.z + w2*c.z
			if z < -1 || z > 1 {
				continue
			}
			clr := a.color.Mul(w0).Add(b.color.Mul(w1)).Add(c.color.Mul(w2))
			r.plot(x, y, z, clr)
		}
	}
}

// plot sets the pixel if z is nearer than the current depth.
func (r *Renderer) plot(x, y int, z float32, clr mgl32.Vec3) {
	i := y*r.img.Stride/4 + x
	if z >= r.depth[i] {
		return
	}
	r.depth[i] = z
	r.img.SetRGBA(x, y, toRGBA(clr))
}

func (r *Renderer) drawGrid(gd *xyz.Grid, viewProj mgl32.Mat4) {
	pts, center := gd.Lines()
	cc, oc := colorVec(gd.CenterColor), colorVec(gd.Color)
	for i := range center {
		clr := oc
		if center[i] {
			clr = cc
		}
		a := vertex{clip: viewProj.Mul4x1(pts[2*i].Vec4(1)), color: clr}
		b := vertex{clip: viewProj.Mul4x1(pts[2*i+1].Vec4(1)), color: clr}
		r.drawLine(a, b)
	}
}

// drawLine draws a depth tested line, clipped to the near plane.
func (r *Renderer) drawLine(a, b vertex) {
	da, db := a.nearDist(), b.nearDist()
	switch {
	case da < 0 && db < 0:
		return
	case da < 0:
		a = lerpVertex(a, b, da/(da-db))
	case db < 0:
		b = lerpVertex(a, b, da/(da-db))
	}
	sa, sb := r.toScreen(a), r.toScreen(b)
	sz := r.img.Rect.Size()
	t0, t1, ok := clipRect(sa, sb, float32(sz.X), float32(sz.Y))
	if !ok {
		return
	}
	dx, dy, dz := sb.x-sa.x, sb.y-sa.y, sb.z-sa.z
	steps := int(math32.Ceil((t1 - t0) * max(math32.Abs(dx), math32.Abs(dy))))
	steps = max(steps, 1)
	for s := 0; s <= steps; s++ {
		t := t0 + (t1-t0)*float32(s)/float32(steps)
		x := int(math32.Floor(sa.x + dx*t))
		y := int(math32.Floor(sa.y + dy*t))
		if x < 0 || y < 0 || x >= sz.X || y >= sz.Y {
			continue
		}
		z := sa.z + dz*t
		if z < -1 || z > 1 {
			continue
		}
		r.plot(x, y, z, sa.color)
	}
}

// clipRect returns the parameter range of the segment from a to b
// inside the rectangle from the origin to (w, h), Liang-Barsky style.
func clipRect(a, b screen, w, h float32) (t0, t1 float32, ok bool) {
	t0, t1 = 0, 1
	dx, dy := b.x-a.x, b.y-a.y
	p := [4]float32{-dx, dx, -dy, dy}
	q := [4]float32{a.x, w - a.x, a.y, h - a.y}
	for i := range 4 {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}
	return t0, t1, t0 <= t1
}

func colorVec(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	cv := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{cv(c[0]), cv(c[1]), cv(c[2]), 255}
}
