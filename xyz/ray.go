// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half line from Origin along the unit vector Dir.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// MulMatrix4 returns the ray transformed by m, with a unit direction.
func (r Ray) MulMatrix4(m mgl32.Mat4) Ray {
	o := mgl32.TransformCoordinate(r.Origin, m)
	d := mgl32.TransformNormal(r.Dir, m)
	if d.Len() > 0 {
		d = d.Normalize()
	}
	return Ray{Origin: o, Dir: d}
}

// IntersectsBox returns true if the ray passes through the box,
// using the slab method.
func (r Ray) IntersectsBox(b Box3) bool {
	if b.IsEmpty() {
		return false
	}
	tmin := float32(0)
	tmax := math32.Inf(1)
	for i := range 3 {
		if r.Dir[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t0 := (b.Min[i] - r.Origin[i]) * inv
		t1 := (b.Max[i] - r.Origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math32.Max(tmin, t0)
		tmax = math32.Min(tmax, t1)
		if tmin > tmax {
			return false
		}
	}
	return true
}

// IntersectTriangle returns the distance along the ray to its
// intersection with the triangle a, b, c and whether there is one.
// With backfaceCulling, triangles facing away from the ray, whose
// counter-clockwise normal has a positive dot product with the ray
// direction, are not hit.
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3, backfaceCulling bool) (float32, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	normal := edge1.Cross(edge2)

	ddn := r.Dir.Dot(normal)
	var sign float32
	switch {
	case ddn > 0:
		if backfaceCulling {
			return 0, false
		}
		sign = 1
	case ddn < 0:
		sign = -1
		ddn = -ddn
	default:
		return 0, false
	}

	diff := r.Origin.Sub(a)
	ddqxe2 := sign * r.Dir.Dot(diff.Cross(edge2))
	if ddqxe2 < 0 {
		return 0, false
	}
	dde1xq := sign * r.Dir.Dot(edge1.Cross(diff))
	if dde1xq < 0 {
		return 0, false
	}
	if ddqxe2+dde1xq > ddn {
		return 0, false
	}
	qdn := -sign * diff.Dot(normal)
	if qdn < 0 {
		return 0, false
	}
	return qdn / ddn, true
}

// Intersection is a point where a ray hits a solid.
type Intersection struct {

	// Distance is the distance from the ray origin, in world units.
	Distance float32

	// Point is the world position of the hit.
	Point mgl32.Vec3

	// Face is the index of the triangle that was hit.
	Face int

	// Indices are the vertex indexes of the triangle that was hit.
	Indices [3]uint32

	// Solid is the solid that was hit.
	Solid *Solid
}

// Raycaster finds the intersections of a ray with solids.
type Raycaster struct {
	Ray Ray

	// Near and Far limit the distances of the intersections.
	Near, Far float32
}

// NewRaycaster returns a raycaster with no distance limits.
func NewRaycaster() *Raycaster {
	return &Raycaster{Far: math32.Inf(1)}
}

// SetFromCamera sets the ray to start at the camera position and pass
// through the point at the given normalized device coordinates.
func (rc *Raycaster) SetFromCamera(ndc mgl32.Vec2, cam *Camera) {
	rc.Ray.Origin = cam.Pos
	rc.Ray.Dir = cam.Unproject(mgl32.Vec3{ndc[0], ndc[1], 0.5}).Sub(cam.Pos).Normalize()
}

// IntersectSolid returns all intersections of the ray with the solid,
// sorted by distance.
func (rc *Raycaster) IntersectSolid(sld *Solid) []Intersection {
	g := sld.Geometry
	if g == nil || !sld.Visible {
		return nil
	}
	inv := sld.Pose.Matrix.Inv()
	local := rc.Ray.MulMatrix4(inv)
	if !local.IntersectsBox(g.BBox) {
		return nil
	}
	cull := sld.Material.Side == FrontSide
	var hits []Intersection
	for t := range g.NumTriangles() {
		a, b, c := g.Triangle(t)
		lt, ok := local.IntersectTriangle(a, b, c, cull)
		if !ok {
			continue
		}
		p := mgl32.TransformCoordinate(local.At(lt), sld.Pose.Matrix)
		d := p.Sub(rc.Ray.Origin).Len()
		if d < rc.Near || d > rc.Far {
			continue
		}
		hits = append(hits, Intersection{
			Distance: d,
			Point:    p,
			Face:     t,
			Indices:  [3]uint32{g.Indices[3*t], g.Indices[3*t+1], g.Indices[3*t+2]},
			Solid:    sld,
		})
	}
	sortHits(hits)
	return hits
}

// IntersectSolids returns all intersections of the ray with the solids,
// sorted by distance.
func (rc *Raycaster) IntersectSolids(solids []*Solid) []Intersection {
	var hits []Intersection
	for _, sld := range solids {
		hits = append(hits, rc.IntersectSolid(sld)...)
	}
	sortHits(hits)
	return hits
}

func sortHits(hits []Intersection) {
	slices.SortStableFunc(hits, func(a, b Intersection) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
}
