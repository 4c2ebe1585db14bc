// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/brainview/colors"
	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/surface"
	"cogentcore.org/brainview/xyz"
	"github.com/go-gl/mathgl/mgl32"
)

var colorWhite = color.RGBA{255, 255, 255, 255}

// legacyModel is the single model replaced by SetModel.
type legacyModel struct {
	mesh  *surface.SurfaceMesh
	vmap  *surface.VertexMap
	solid *xyz.Solid
}

// SurfaceToSolid converts the active frame of the surface into a new solid:
// positions and faces from its mesh, vertex colors from its active vertex
// map or else the uniform fallback color of the options, and normals
// computed from the geometry. The model rotation of the options is applied.
func SurfaceToSolid(sf *surface.Surface, opts Options) (*xyz.Solid, error) {
	if sf == nil {
		return nil, ErrNoModel
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	mesh := sf.Mesh()
	var clrs []float32
	mat := xyz.Material{}
	if vm := sf.ActiveVertexMap(); vm != nil {
		clrs = slices.Clone(vm.Colors())
		mat.VertexColors = true
	} else {
		fb, err := colors.FromString(opts.FallbackColor)
		if err != nil {
			return nil, fmt.Errorf("viewer: fallback color: %w", err)
		}
		mat.Color = fb
	}
	g := xyz.NewGeometry(slices.Clone(mesh.Vertices()), slices.Clone(mesh.Faces()), clrs)
	sld := xyz.NewSolid("surface", g, mat)
	sld.Pose.SetAxisRotation(mgl32.Vec3{1, 0, 0}, opts.ModelRotation)
	return sld, nil
}

// AddModel converts the surface with [SurfaceToSolid], adds it to the scene
// and returns it as the handle of the model. The legend shows the active
// vertex map of the surface, or is removed if there is none.
func (cl *Client) AddModel(sf *surface.Surface) (*xyz.Solid, error) {
	if cl.state == Disposed {
		return nil, ErrDisposed
	}
	sld, err := SurfaceToSolid(sf, cl.opts)
	if err != nil {
		return nil, err
	}
	cl.insert(sld)
	cl.updateLegend(sf.ActiveVertexMap())
	return sld, nil
}

// DeleteModel removes the model with the given handle from the scene.
func (cl *Client) DeleteModel(h *xyz.Solid) error {
	if cl.state == Disposed {
		return ErrDisposed
	}
	i := slices.Index(cl.models, h)
	if h == nil || i < 0 {
		return ErrUnknownModel
	}
	cl.models = slices.Delete(cl.models, i, i+1)
	cl.scene.Remove(h)
	if cl.legacy.solid == h {
		cl.legacy.solid = nil
	}
	return nil
}

// Models returns the handles of the displayed models, in the order added.
func (cl *Client) Models() []*xyz.Solid { return cl.models }

// SetModel replaces the mesh and/or the vertex map of the single legacy
// model and rebuilds it, removing the previous one. A nil argument keeps
// the previous value. It returns [ErrNoModel] if no mesh was ever given.
func (cl *Client) SetModel(mesh *surface.SurfaceMesh, vm *surface.VertexMap) error {
	if cl.state == Disposed {
		return ErrDisposed
	}
	if mesh == nil {
		mesh = cl.legacy.mesh
	}
	if mesh == nil {
		return ErrNoModel
	}
	if vm == nil {
		vm = cl.legacy.vmap
	}
	sf := surface.NewSurface(mesh.Vertices(), mesh.Faces())
	if vm != nil {
		lim := vm.Limits()
		err := sf.AddVertexMap(vm.Intensity(), surface.WithColorMap(vm.ColorMapName()), surface.WithLimits(lim.Min, lim.Max))
		if err != nil {
			return err
		}
	}
	sld, err := SurfaceToSolid(sf, cl.opts)
	if err != nil {
		return err
	}
	if old := cl.legacy.solid; old != nil {
		cl.DeleteModel(old)
	}
	cl.legacy = legacyModel{mesh: mesh, vmap: vm, solid: sld}
	cl.insert(sld)
	cl.updateLegend(vm)
	return nil
}

func (cl *Client) insert(sld *xyz.Solid) {
	cl.models = append(cl.models, sld)
	cl.scene.Add(sld)
}

// updateLegend shows the color map of vm in the legend, or removes it.
func (cl *Client) updateLegend(vm *surface.VertexMap) {
	lg := cl.opts.Legend
	if lg == nil {
		return
	}
	if vm == nil {
		lg.Remove()
		return
	}
	lim := vm.Limits()
	lg.Update(lim.Min, lim.Max, colormap.ColorFunc(vm.ColorMapName(), lim), cl.opts.LegendTitle)
}
