// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/brainview/app"
	"cogentcore.org/brainview/config"
	"cogentcore.org/brainview/events"
	"cogentcore.org/brainview/legend"
	"cogentcore.org/brainview/surface/surfio"
	"cogentcore.org/brainview/system/driver/desktop"
	"cogentcore.org/brainview/viewer"
	"github.com/spf13/cobra"
)

// ViewOptions are the options of the view command.
type ViewOptions struct {
	surfaceFlags

	// Watch reloads the intensity file when it changes.
	Watch bool

	// Feed is the ws:// url of an intensity feed.
	Feed string

	Width, Height int
}

func newView(g *globals) *cobra.Command {
	vo := &ViewOptions{}
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window showing a surface",
		Long: "View opens a window showing the surface, colored by the intensity file or feed if given. " +
			"Drag to orbit, right drag to pan and scroll to zoom. Clicking logs the picked vertex.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return View(g.Config, vo)
		},
	}
	fs := cmd.Flags()
	vo.add(fs)
	fs.BoolVarP(&vo.Watch, "watch", "w", false, "reload the intensity file when it changes")
	fs.StringVar(&vo.Feed, "feed", "", "the ws:// url of an intensity feed to follow")
	fs.IntVar(&vo.Width, "width", 1024, "the initial window width")
	fs.IntVar(&vo.Height, "height", 768, "the initial window height")
	cmd.MarkFlagRequired("mesh")
	return cmd
}

// View opens a desktop window showing the mesh and blocks until it is closed.
func View(c *config.Config, vo *ViewOptions) error {
	over, err := vo.overrides()
	if err != nil {
		return err
	}
	sm, err := app.OpenMesh(vo.Mesh)
	if err != nil {
		return err
	}
	var in *surfio.Intensity
	if vo.Intensity != "" {
		in, err = surfio.OpenIntensity(vo.Intensity)
		if err != nil {
			return err
		}
	}

	host := desktop.New("viewer", image.Pt(vo.Width, vo.Height))
	host.Title = "brainview: " + vo.Mesh
	el, err := host.ElementByID("viewer")
	if err != nil {
		return err
	}
	lg := legend.New()
	cl, err := viewer.New(host, el, viewer.WithOptions(c.Options()), viewer.WithLegend(lg))
	if err != nil {
		return err
	}
	defer cl.Dispose()
	el.AppendChild(lg)

	s := app.NewSession(cl, sm)
	s.Defaults = c.VertexMapOptions()
	s.Overrides = over
	if err := s.Show(in); err != nil {
		return err
	}
	cl.AddListener(events.Click, s.LogPicks)
	cl.AddListener(events.DoubleClick, func(ev events.Event, picks []viewer.Pick) {
		cl.SetTarget("center")
	})

	if vo.Watch {
		if vo.Intensity == "" {
			return fmt.Errorf("--watch needs an --intensity file")
		}
		w, err := app.Watch(vo.Intensity, host.Scheduler(), func() {
			if err := s.ShowFile(vo.Intensity); err != nil {
				slog.Warn("cannot reload intensity", "file", vo.Intensity, "err", err)
				return
			}
			slog.Info("reloaded intensity", "file", vo.Intensity)
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	if vo.Feed != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		fc, err := s.Follow(ctx, vo.Feed, host.Scheduler())
		cancel()
		if err != nil {
			return fmt.Errorf("feed %s: %w", vo.Feed, err)
		}
		defer fc.Close()
		go func() {
			<-fc.Done()
			slog.Info("feed closed", "url", vo.Feed)
		}()
	}
	return host.Run()
}
