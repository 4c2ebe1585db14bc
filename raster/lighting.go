// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/brainview/xyz"
	"github.com/go-gl/mathgl/mgl32"
)

// lighting is the Lambert lighting of a scene: the sum of the ambient
// lights and the directional lights.
type lighting struct {
	ambient mgl32.Vec3
	dirs    []dirLight
}

type dirLight struct {
	dir   mgl32.Vec3
	color mgl32.Vec3
}

func newLighting(sc *xyz.Scene) lighting {
	var lt lighting
	for _, al := range sc.AmbientLights() {
		lt.ambient = lt.ambient.Add(colorVec(al.Color).Mul(al.Intensity))
	}
	for _, dl := range sc.DirLights() {
		lt.dirs = append(lt.dirs, dirLight{dir: dl.Direction(), color: colorVec(dl.Color).Mul(dl.Intensity)})
	}
	return lt
}

// shade returns the lit color of a surface of the given diffuse color
// and unit normal.
func (lt *lighting) shade(diffuse, normal mgl32.Vec3) mgl32.Vec3 {
	l := lt.ambient
	for _, d := range lt.dirs {
		if nd := normal.Dot(d.dir); nd > 0 {
			l = l.Add(d.color.Mul(nd))
		}
	}
	return mgl32.Vec3{diffuse[0] * l[0], diffuse[1] * l[1], diffuse[2] * l[2]}
}
