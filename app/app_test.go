// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"image"
	"image/color"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/brainview/base/errors"
	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/stream"
	"cogentcore.org/brainview/surface"
	"cogentcore.org/brainview/surface/surfio"
	"cogentcore.org/brainview/system/driver/offscreen"
	"cogentcore.org/brainview/viewer"
	"cogentcore.org/brainview/xyz"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var octFaces = []uint32{0, 2, 4, 1, 4, 2, 0, 4, 3, 0, 5, 2, 1, 3, 4, 1, 2, 5, 0, 3, 5, 1, 5, 3}

func octMesh(r float32) *surface.SurfaceMesh {
	v := []float32{r, 0, 0, -r, 0, 0, 0, r, 0, 0, -r, 0, 0, 0, r, 0, 0, -r}
	return surface.NewSurfaceMesh(v, octFaces)
}

func writeJSON(t *testing.T, filename string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filename, b, 0666))
}

func newSession(t *testing.T) (*offscreen.Host, *Session) {
	t.Helper()
	host := offscreen.New()
	el := host.NewElement("viewer", image.Pt(64, 64))
	cl, err := viewer.New(host, el)
	require.NoError(t, err)
	t.Cleanup(cl.Dispose)
	return host, NewSession(cl, octMesh(50))
}

func TestOpenMesh(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "mesh.json")
	writeJSON(t, fn, surfio.FromMesh(octMesh(1)))
	sm, err := OpenMesh(fn)
	require.NoError(t, err)
	assert.Equal(t, 6, sm.VertexCount())
	assert.Equal(t, octFaces, sm.Faces())

	bad := filepath.Join(dir, "bad.json")
	p := surfio.FromMesh(octMesh(1))
	p.I[0] = 6
	writeJSON(t, bad, p)
	_, err = OpenMesh(bad)
	assert.True(t, errors.Is(err, surface.ErrInvalidMesh))

	_, err = OpenMesh(filepath.Join(dir, "none.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSessionShow(t *testing.T) {
	_, s := newSession(t)
	require.NoError(t, s.Show(nil))
	first := s.Model()
	require.NotNil(t, first)
	assert.False(t, first.Material.VertexColors)
	assert.Nil(t, s.Surface().ActiveVertexMap())

	in := &surfio.Intensity{Values: []float64{0, 1, 2, 3, 4, 5}, ColorMapName: colormap.Blues}
	require.NoError(t, s.Show(in))
	assert.NotSame(t, first, s.Model())
	assert.Equal(t, []*xyz.Solid{s.Model()}, s.Client.Models())
	assert.True(t, s.Model().Material.VertexColors)
	assert.Equal(t, colormap.Blues, s.Surface().ActiveVertexMap().ColorMapName())

	s.Defaults = []surface.VertexMapOption{surface.WithColorMap(colormap.Reds)}
	require.NoError(t, s.Show(&surfio.Intensity{Values: in.Values}))
	assert.Equal(t, colormap.Reds, s.Surface().ActiveVertexMap().ColorMapName())
	require.NoError(t, s.Show(in))
	assert.Equal(t, colormap.Blues, s.Surface().ActiveVertexMap().ColorMapName(), "data settings override the defaults")
	s.Overrides = []surface.VertexMapOption{surface.WithColorMap(colormap.Greens)}
	require.NoError(t, s.Show(in))
	assert.Equal(t, colormap.Greens, s.Surface().ActiveVertexMap().ColorMapName())

	kept := s.Model()
	err := s.Show(&surfio.Intensity{Values: []float64{1, 2}})
	assert.True(t, errors.Is(err, surface.ErrInvalidMesh))
	assert.Same(t, kept, s.Model())
	assert.Len(t, s.Client.Models(), 1)
}

func TestShowFile(t *testing.T) {
	_, s := newSession(t)
	fn := filepath.Join(t.TempDir(), "intensity.json")
	require.NoError(t, os.WriteFile(fn, []byte("[0, 1, 2, 3, 4, 5]"), 0666))
	require.NoError(t, s.ShowFile(fn))
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, s.Surface().ActiveVertexMap().Intensity())
	assert.Error(t, s.ShowFile(fn+".none"))
}

func TestPicked(t *testing.T) {
	_, s := newSession(t)
	require.NoError(t, s.Show(&surfio.Intensity{Values: []float64{0, 1, 2, 3, 4, 5}}))
	sld := s.Model()
	m := sld.Pose.Matrix
	near4 := m.Mul4x1(sld.Geometry.Vertex(4).Vec4(1)).Vec3()
	near0 := m.Mul4x1(sld.Geometry.Vertex(0).Vec4(1)).Vec3()
	hit := &xyz.Intersection{Point: near4.Mul(0.9).Add(near0.Mul(0.1)), Indices: [3]uint32{0, 2, 4}, Solid: sld}
	assert.Equal(t, uint32(4), NearestVertex(hit))

	other := &xyz.Intersection{Point: near0, Indices: [3]uint32{0, 2, 4}, Solid: xyz.NewSolid("other", sld.Geometry, sld.Material)}
	picks := []viewer.Pick{{Hit: hit}, {}, {Hit: other}}
	got := s.Picked(picks)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(4), got[0].Vertex)
	assert.Equal(t, [3]float32{0, 0, 50}, got[0].Position)
	assert.True(t, got[0].HasIntensity)
	assert.Equal(t, 4.0, got[0].Intensity)
}

func TestWatch(t *testing.T) {
	host, s := newSession(t)
	fn := filepath.Join(t.TempDir(), "intensity.json")
	require.NoError(t, os.WriteFile(fn, []byte("[0, 0, 0, 0, 0, 1]"), 0666))
	w, err := Watch(fn, host.Scheduler(), func() { errors.Log(s.ShowFile(fn)) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(fn), "other.json"), []byte("[1]"), 0666))
	require.NoError(t, os.WriteFile(fn, []byte("[0, 1, 2, 3, 4, 5]"), 0666))
	assert.Eventually(t, func() bool {
		host.Step(time.Millisecond)
		sf := s.Surface()
		return sf != nil && sf.ActiveVertexMap() != nil && sf.ActiveVertexMap().Intensity()[5] == 5
	}, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, w.Close())
}

func TestFollow(t *testing.T) {
	host, s := newSession(t)
	srv := stream.NewServer(time.Hour, stream.Wave(6, 4))
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := s.Follow(ctx, "ws"+strings.TrimPrefix(ts.URL, "http"), host.Scheduler())
	require.NoError(t, err)
	defer c.Close()
	require.Eventually(t, func() bool { return srv.NumClients() == 1 }, 5*time.Second, 5*time.Millisecond)

	fr := srv.Next(time.Now())
	fr.ColorLimits = []float64{-1, 1}
	require.NoError(t, srv.Broadcast(fr))
	assert.Eventually(t, func() bool {
		host.Step(time.Millisecond)
		sf := s.Surface()
		return sf != nil && sf.ActiveVertexMap() != nil
	}, 5*time.Second, 10*time.Millisecond)
	vm := s.Surface().ActiveVertexMap()
	assert.Equal(t, fr.Values, vm.Intensity())
	assert.Equal(t, -1.0, vm.Limits().Min)
}

func TestSnapshot(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	so := SnapshotOptions{Size: image.Pt(64, 96), Viewer: viewer.DefaultOptions()}
	so.Viewer.Background = "#ffffff"
	so.Viewer.GridDivisions = 0
	in := &surfio.Intensity{Values: []float64{0, 1, 2, 3, 4, 5}}

	img, err := Snapshot(octMesh(50), in, so)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 96), img.Bounds())
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.NotEqual(t, white, img.RGBAAt(32, 48))

	so.Legend = true
	limg, err := Snapshot(octMesh(50), in, so)
	require.NoError(t, err)
	assert.NotEqual(t, white, limg.RGBAAt(0, 0))
	assert.Equal(t, img.RGBAAt(32, 90), limg.RGBAAt(32, 90), "the legend only covers the top")

	_, err = Snapshot(octMesh(50), &surfio.Intensity{Values: []float64{1}}, so)
	assert.Error(t, err)
}
