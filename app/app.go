// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app connects surface files, intensity sources and a viewer:
// it is the part of the brainview commands that does not depend on
// the window system.
package app

import (
	"log/slog"

	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/surface"
	"cogentcore.org/brainview/surface/surfio"
	"cogentcore.org/brainview/viewer"
	"cogentcore.org/brainview/xyz"
)

// OpenMesh reads the surface payload in the given file.
func OpenMesh(filename string) (*surface.SurfaceMesh, error) {
	p, err := surfio.OpenPayload(filename)
	if err != nil {
		return nil, err
	}
	sm, err := p.Mesh()
	if err != nil {
		return nil, err
	}
	if err := sm.Validate(); err != nil {
		return nil, err
	}
	return sm, nil
}

// Session shows one mesh in a viewer, replacing its model each time
// new intensity data is shown. Its methods must be called on the frame
// goroutine of the viewer host.
type Session struct {

	// Client is the viewer showing the mesh.
	Client *viewer.Client

	// Mesh is the geometry of every model.
	Mesh *surface.SurfaceMesh

	// Defaults are the vertex map options applied before
	// those given by the intensity data.
	Defaults []surface.VertexMapOption

	// Overrides are the vertex map options applied after
	// those given by the intensity data.
	Overrides []surface.VertexMapOption

	model *xyz.Solid
	sf    *surface.Surface
}

// NewSession returns a new session showing the mesh in the client.
func NewSession(cl *viewer.Client, sm *surface.SurfaceMesh) *Session {
	return &Session{Client: cl, Mesh: sm}
}

// Model returns the current model, if any.
func (s *Session) Model() *xyz.Solid { return s.model }

// Surface returns the surface of the current model, if any.
func (s *Session) Surface() *surface.Surface { return s.sf }

// Show replaces the model with one colored by the intensity data,
// or in the fallback color if in is nil. The previous model stays
// if the data cannot be shown.
func (s *Session) Show(in *surfio.Intensity) error {
	sf := surface.NewSurface(s.Mesh.Vertices(), s.Mesh.Faces())
	if in != nil {
		opts := append(append(append([]surface.VertexMapOption{}, s.Defaults...), in.Options()...), s.Overrides...)
		if err := sf.AddVertexMap(in.Values, opts...); err != nil {
			return err
		}
	}
	sld, err := s.Client.AddModel(sf)
	if err != nil {
		return err
	}
	if s.model != nil {
		s.Client.DeleteModel(s.model)
	}
	s.model = sld
	s.sf = sf
	return nil
}

// ShowFile shows the intensity file with the given name.
func (s *Session) ShowFile(filename string) error {
	in, err := surfio.OpenIntensity(filename)
	if err != nil {
		return err
	}
	return s.Show(in)
}

// Picked is a vertex found under the pointer.
type Picked struct {

	// Vertex is the index of the vertex of the hit triangle
	// closest to the hit point.
	Vertex uint32

	// Position is the vertex position in mesh coordinates.
	Position [3]float32

	// Intensity is the value of the active vertex map at the vertex,
	// if HasIntensity.
	Intensity    float64
	HasIntensity bool
}

// Picked returns the picked vertex for each pick that hit the current model.
func (s *Session) Picked(picks []viewer.Pick) []Picked {
	var res []Picked
	for _, pk := range picks {
		hit := pk.Hit
		if hit == nil || hit.Solid != s.model {
			continue
		}
		v := NearestVertex(hit)
		p := Picked{Vertex: v, Position: hit.Solid.Geometry.Vertex(v)}
		if vm := s.sf.ActiveVertexMap(); vm != nil && int(v) < vm.Len() {
			p.Intensity = vm.Intensity()[v]
			p.HasIntensity = true
		}
		res = append(res, p)
	}
	return res
}

// LogPicks is a [viewer.Handler] logging the picked vertices.
func (s *Session) LogPicks(ev events.Event, picks []viewer.Pick) {
	for _, p := range s.Picked(picks) {
		args := []any{"event", ev.Type(), "vertex", p.Vertex, "position", p.Position}
		if p.HasIntensity {
			args = append(args, "intensity", p.Intensity)
		}
		slog.Info("picked vertex", args...)
	}
}

// NearestVertex returns the corner of the hit triangle
// closest to the hit point.
func NearestVertex(hit *xyz.Intersection) uint32 {
	g := hit.Solid.Geometry
	m := hit.Solid.Pose.Matrix
	best := hit.Indices[0]
	bd := float32(-1)
	for _, i := range hit.Indices {
		wp := m.Mul4x1(g.Vertex(i).Vec4(1)).Vec3()
		d := wp.Sub(hit.Point).Len()
		if bd < 0 || d < bd {
			best, bd = i, d
		}
	}
	return best
}
