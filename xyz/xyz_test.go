// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"testing"

	"cogentcore.org/brainview/base/tolassert"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// octahedron with outward facing counter-clockwise faces
func octahedron(r float32) *Geometry {
	v := []float32{r, 0, 0, -r, 0, 0, 0, r, 0, 0, -r, 0, 0, 0, r, 0, 0, -r}
	f := []uint32{0, 2, 4, 1, 4, 2, 0, 4, 3, 0, 5, 2, 1, 3, 4, 1, 2, 5, 0, 3, 5, 1, 5, 3}
	return NewGeometry(v, f, nil)
}

func assertVec3(t *testing.T, want, got mgl32.Vec3, tol float32) {
	t.Helper()
	tolassert.EqualTolSlice(t, want[:], got[:], tol)
}

func TestBox3(t *testing.T) {
	b := EmptyBox3()
	assert.True(t, b.IsEmpty())
	b = b.ExpandByPoint(mgl32.Vec3{1, 2, 3}).ExpandByPoint(mgl32.Vec3{-1, 0, 5})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, mgl32.Vec3{-1, 0, 3}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 5}, b.Max)
	assert.Equal(t, mgl32.Vec3{0, 1, 4}, b.Center())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, b.Size())
	assert.True(t, b.ContainsPoint(mgl32.Vec3{0, 1, 4}))
	assert.False(t, b.ContainsPoint(mgl32.Vec3{0, 3, 4}))
	assert.Equal(t, b, b.Union(EmptyBox3()))

	mb := b.MulMatrix4(mgl32.Translate3D(10, 0, 0))
	assert.Equal(t, mgl32.Vec3{9, 0, 3}, mb.Min)
	assert.True(t, EmptyBox3().MulMatrix4(mgl32.Ident4()).IsEmpty())
}

func TestPose(t *testing.T) {
	var ps Pose
	ps.Defaults()
	assert.Equal(t, mgl32.Ident4(), ps.Matrix)

	ps.SetAxisRotation(mgl32.Vec3{1, 0, 0}, -90)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, mgl32.TransformCoordinate(mgl32.Vec3{0, 1, 0}, ps.Matrix), 1e-6)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 1}, ps.Matrix), 1e-6)

	ps.SetPos(1, 2, 3)
	assertVec3(t, mgl32.Vec3{1, 2, 2}, mgl32.TransformCoordinate(mgl32.Vec3{0, 1, 0}, ps.Matrix), 1e-6)
}

func TestCamera(t *testing.T) {
	var cm Camera
	cm.Defaults()
	assert.Equal(t, float32(60), cm.FOV)
	assert.Equal(t, mgl32.Vec3{-150, 100, -100}, cm.Pos)
	tolassert.EqualTol(t, math32.Sqrt(42500), cm.Distance(), 1e-3)

	ndc := cm.Project(mgl32.Vec3{})
	tolassert.EqualTol(t, 0, ndc[0], 1e-5)
	tolassert.EqualTol(t, 0, ndc[1], 1e-5)

	p := mgl32.Vec3{5, -3, 8}
	up := cm.Unproject(cm.Project(p))
	assertVec3(t, p.Sub(cm.Pos).Normalize(), up.Sub(cm.Pos).Normalize(), 1e-3)
	assertVec3(t, p, up, 0.5)

	// right is perpendicular to the view and to up
	vv := cm.ViewVector().Normalize()
	tolassert.EqualTol(t, 0, cm.Right().Dot(vv), 1e-5)
	tolassert.EqualTol(t, 0, cm.Up().Dot(vv), 1e-5)

	tgt := cm.Target
	cm.Pan(10, 0)
	tolassert.EqualTol(t, 10, cm.Target.Sub(tgt).Len(), 1e-4)
	tolassert.EqualTol(t, math32.Sqrt(42500), cm.Distance(), 1e-2)

	d := cm.Distance()
	cm.Zoom(-0.5)
	tolassert.EqualTol(t, d/2, cm.Distance(), 1e-2)
}

func TestCameraFitBox(t *testing.T) {
	var cm Camera
	cm.Defaults()
	b := Box3{Min: mgl32.Vec3{9, -1, -1}, Max: mgl32.Vec3{11, 1, 1}}
	cm.FitBox(b)
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, cm.Target)
	ndc := cm.Project(mgl32.Vec3{10, 0, 0})
	tolassert.EqualTol(t, 0, ndc[0], 1e-5)
	tolassert.EqualTol(t, 0, ndc[1], 1e-5)
}

func TestNormals(t *testing.T) {
	g := octahedron(2)
	assert.Equal(t, 6, g.NumVertices())
	assert.Equal(t, 8, g.NumTriangles())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, g.Normal(0), 1e-6)
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, g.Normal(1), 1e-6)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, g.Normal(2), 1e-6)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, g.Normal(5), 1e-6)
	assert.Equal(t, Box3{Min: mgl32.Vec3{-2, -2, -2}, Max: mgl32.Vec3{2, 2, 2}}, g.BBox)
	assert.False(t, g.HasColors())
}

func TestGeometryEqual(t *testing.T) {
	a, b := octahedron(1), octahedron(1)
	assert.True(t, GeometryEqual(a, b))
	assert.False(t, GeometryEqual(a, octahedron(2)))
	b.Colors = make([]float32, 18)
	assert.False(t, GeometryEqual(a, b))
	assert.True(t, b.HasColors())
	assert.True(t, GeometryEqual(nil, nil))
	assert.False(t, GeometryEqual(a, nil))
}

func TestIntersectTriangle(t *testing.T) {
	a, b, c := mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0}
	front := Ray{Origin: mgl32.Vec3{0, 0, 5}, Dir: mgl32.Vec3{0, 0, -1}}
	d, ok := front.IntersectTriangle(a, b, c, true)
	require.True(t, ok)
	assert.Equal(t, float32(5), d)

	back := Ray{Origin: mgl32.Vec3{0, 0, -5}, Dir: mgl32.Vec3{0, 0, 1}}
	_, ok = back.IntersectTriangle(a, b, c, true)
	assert.False(t, ok)
	d, ok = back.IntersectTriangle(a, b, c, false)
	require.True(t, ok)
	assert.Equal(t, float32(5), d)

	miss := Ray{Origin: mgl32.Vec3{3, 0, 5}, Dir: mgl32.Vec3{0, 0, -1}}
	_, ok = miss.IntersectTriangle(a, b, c, false)
	assert.False(t, ok)

	behind := Ray{Origin: mgl32.Vec3{0, 0, -5}, Dir: mgl32.Vec3{0, 0, -1}}
	_, ok = behind.IntersectTriangle(a, b, c, false)
	assert.False(t, ok)

	parallel := Ray{Origin: mgl32.Vec3{0, 0, 1}, Dir: mgl32.Vec3{1, 0, 0}}
	_, ok = parallel.IntersectTriangle(a, b, c, false)
	assert.False(t, ok)
}

func TestIntersectsBox(t *testing.T) {
	b := Box3{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	assert.True(t, Ray{Origin: mgl32.Vec3{0, 0, 5}, Dir: mgl32.Vec3{0, 0, -1}}.IntersectsBox(b))
	assert.False(t, Ray{Origin: mgl32.Vec3{0, 0, 5}, Dir: mgl32.Vec3{0, 0, 1}}.IntersectsBox(b))
	assert.False(t, Ray{Origin: mgl32.Vec3{3, 0, 5}, Dir: mgl32.Vec3{0, 0, -1}}.IntersectsBox(b))
	assert.True(t, Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{1, 0, 0}}.IntersectsBox(b))
	assert.False(t, Ray{Origin: mgl32.Vec3{}, Dir: mgl32.Vec3{1, 0, 0}}.IntersectsBox(EmptyBox3()))
}

func TestRaycaster(t *testing.T) {
	sc := NewScene()
	sld := NewSolid("oct", octahedron(10), Material{})
	sc.Add(sld)
	sc.Add(NewGrid(1000, 100))

	rc := NewRaycaster()
	rc.SetFromCamera(mgl32.Vec2{0, 0}, &sc.Camera)
	assertVec3(t, sc.Camera.Target.Sub(sc.Camera.Pos).Normalize(), rc.Ray.Dir, 1e-4)

	hits := rc.IntersectSolids(sc.Solids())
	require.Len(t, hits, 1)
	assert.Same(t, sld, hits[0].Solid)
	assert.Less(t, hits[0].Distance, sc.Camera.Distance())
	assert.Greater(t, hits[0].Distance, sc.Camera.Distance()-10.01)
	assertVec3(t, rc.Ray.At(hits[0].Distance), hits[0].Point, 1e-3)

	// double sided also hits the far side
	sld.Material.Side = DoubleSide
	hits = rc.IntersectSolids(sc.Solids())
	require.Len(t, hits, 2)
	assert.Less(t, hits[0].Distance, hits[1].Distance)

	rc.SetFromCamera(mgl32.Vec2{0.99, 0.99}, &sc.Camera)
	assert.Empty(t, rc.IntersectSolids(sc.Solids()))

	rc.SetFromCamera(mgl32.Vec2{0, 0}, &sc.Camera)
	rc.Far = 100
	assert.Empty(t, rc.IntersectSolids(sc.Solids()))
}

func TestRaycasterPose(t *testing.T) {
	sld := NewSolid("oct", octahedron(1), Material{})
	sld.Pose.SetPos(0, 0, -20)
	rc := NewRaycaster()
	rc.Ray = Ray{Origin: mgl32.Vec3{0.2, 0.1, 0}, Dir: mgl32.Vec3{0, 0, -1}}
	hits := rc.IntersectSolid(sld)
	require.Len(t, hits, 1)
	tolassert.EqualTol(t, 19.3, hits[0].Distance, 1e-4)
	assertVec3(t, mgl32.Vec3{0.2, 0.1, -19.3}, hits[0].Point, 1e-4)
	assert.Equal(t, 0, hits[0].Face)

	sld.Visible = false
	assert.Empty(t, rc.IntersectSolid(sld))
}

func TestScene(t *testing.T) {
	sc := NewScene()
	a := NewSolid("a", octahedron(1), Material{})
	b := NewSolid("b", octahedron(2), Material{})
	b.Pose.SetPos(10, 0, 0)
	gd := NewGrid(1000, 100)
	amb := NewAmbientLight(colorWhite, 0.6)
	dir := NewDirLight(colorWhite, 0.4)
	for _, n := range []Node{gd, amb, dir, a, b} {
		sc.Add(n)
	}
	sc.Add(a)
	assert.Len(t, sc.Nodes(), 5)
	assert.Equal(t, []*Solid{a, b}, sc.Solids())
	assert.Equal(t, []*Grid{gd}, sc.Grids())
	assert.Len(t, sc.AmbientLights(), 1)
	assert.Len(t, sc.DirLights(), 1)
	assert.NotEqual(t, a.ID, b.ID)

	bb, ok := sc.SolidsBBox()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{-1, -2, -2}, bb.Min)
	assert.Equal(t, mgl32.Vec3{12, 2, 2}, bb.Max)

	assert.True(t, sc.Remove(a))
	assert.False(t, sc.Remove(a))
	assert.False(t, sc.Contains(a))
	assert.True(t, sc.Remove(b))
	_, ok = sc.SolidsBBox()
	assert.False(t, ok)
}

func TestGridLights(t *testing.T) {
	gd := NewGrid(10, 4)
	pts, center := gd.Lines()
	assert.Len(t, pts, 20)
	assert.Len(t, center, 10)
	assert.Equal(t, []bool{false, false, false, false, true, true, false, false, false, false}, center)
	assert.Equal(t, mgl32.Vec3{-5, 0, -5}, pts[0])

	dl := NewDirLight(colorWhite, 1)
	dl.Pose.SetPos(0, 0, 10)
	dl.Target = mgl32.Vec3{0, 0, 5}
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, dl.Direction())
}

var colorWhite = color.RGBA{255, 255, 255, 255}
