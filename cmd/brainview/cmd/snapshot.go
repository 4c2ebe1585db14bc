// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"image"
	"log/slog"

	"cogentcore.org/brainview/app"
	"cogentcore.org/brainview/base/iox/imagex"
	"cogentcore.org/brainview/config"
	"cogentcore.org/brainview/surface/surfio"
	"github.com/spf13/cobra"
)

// SnapshotOptions are the options of the snapshot command.
type SnapshotOptions struct {
	surfaceFlags

	// Out is the image file to write; its extension selects the format.
	Out string

	Width, Height int

	// Legend draws the legend over the image.
	Legend bool
}

func newSnapshot(g *globals) *cobra.Command {
	so := &SnapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a surface to an image file without a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Snapshot(g.Config, so)
		},
	}
	fs := cmd.Flags()
	so.add(fs)
	fs.StringVarP(&so.Out, "out", "o", "", "the output image file, with a .png, .jpg, .bmp or .tiff extension (required)")
	fs.IntVar(&so.Width, "width", 800, "the image width")
	fs.IntVar(&so.Height, "height", 600, "the image height")
	fs.BoolVar(&so.Legend, "legend", false, "draw the legend over the top left corner")
	cmd.MarkFlagRequired("mesh")
	cmd.MarkFlagRequired("out")
	return cmd
}

// Snapshot renders the mesh to the output file.
func Snapshot(c *config.Config, so *SnapshotOptions) error {
	over, err := so.overrides()
	if err != nil {
		return err
	}
	sm, err := app.OpenMesh(so.Mesh)
	if err != nil {
		return err
	}
	var in *surfio.Intensity
	if so.Intensity != "" {
		in, err = surfio.OpenIntensity(so.Intensity)
		if err != nil {
			return err
		}
	}
	img, err := app.Snapshot(sm, in, app.SnapshotOptions{
		Size:      image.Pt(so.Width, so.Height),
		Viewer:    c.Options(),
		Defaults:  c.VertexMapOptions(),
		Overrides: over,
		Legend:    so.Legend,
	})
	if err != nil {
		return err
	}
	if err := imagex.Save(img, so.Out); err != nil {
		return err
	}
	slog.Info("saved snapshot", "file", so.Out, "size", img.Bounds().Size())
	return nil
}
