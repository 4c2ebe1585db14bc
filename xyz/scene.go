// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "slices"

// Scene is the top level of a 3D scenegraph: an ordered list of nodes
// viewed through a camera.
type Scene struct {

	// Camera determines view onto scene.
	Camera Camera

	nodes []Node
}

// NewScene returns a new empty scene with the default camera.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Camera.Defaults()
	return sc
}

// Add adds the node at the end of the scene, if it is not already in it.
func (sc *Scene) Add(n Node) {
	if sc.Contains(n) {
		return
	}
	sc.nodes = append(sc.nodes, n)
}

// Remove removes the node from the scene, returning false if it is not in it.
func (sc *Scene) Remove(n Node) bool {
	i := slices.Index(sc.nodes, n)
	if i < 0 {
		return false
	}
	sc.nodes = slices.Delete(sc.nodes, i, i+1)
	return true
}

// Contains returns true if the node is in the scene.
func (sc *Scene) Contains(n Node) bool {
	return slices.Contains(sc.nodes, n)
}

// Nodes returns the nodes of the scene, in the order added.
func (sc *Scene) Nodes() []Node { return sc.nodes }

// Solids returns the visible solids of the scene, in the order added.
// These are the nodes that can be picked.
func (sc *Scene) Solids() []*Solid {
	return nodesOf[*Solid](sc)
}

// Grids returns the visible grids of the scene.
func (sc *Scene) Grids() []*Grid {
	return nodesOf[*Grid](sc)
}

// AmbientLights returns the ambient lights of the scene.
func (sc *Scene) AmbientLights() []*AmbientLight {
	return nodesOf[*AmbientLight](sc)
}

// DirLights returns the directional lights of the scene.
func (sc *Scene) DirLights() []*DirLight {
	return nodesOf[*DirLight](sc)
}

func nodesOf[T Node](sc *Scene) []T {
	var ns []T
	for _, n := range sc.nodes {
		if t, ok := n.(T); ok && n.AsNodeBase().Visible {
			ns = append(ns, t)
		}
	}
	return ns
}

// SolidsBBox returns the world bounding box of the visible solids,
// and false if there are none with any vertices.
func (sc *Scene) SolidsBBox() (Box3, bool) {
	b := EmptyBox3()
	for _, sld := range sc.Solids() {
		b = b.Union(sld.WorldBBox())
	}
	return b, !b.IsEmpty()
}
