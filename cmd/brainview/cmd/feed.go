// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/brainview/base/errors"
	"cogentcore.org/brainview/config"
	"cogentcore.org/brainview/stream"
	"github.com/spf13/cobra"
)

// FeedOptions are the options of the feed command;
// unset flags keep the values of the config.
type FeedOptions struct {
	Addr     string
	Vertices int
	Interval time.Duration

	// Cycle is the number of frames per period of the wave.
	Cycle int
}

func newFeed(g *globals) *cobra.Command {
	fo := &FeedOptions{}
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Serve a synthetic intensity feed over websockets",
		Long: "Feed serves frames of a sine wave traveling along the vertex indexes " +
			"to every websocket client, for use with view --feed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := g.Config
			fs := cmd.Flags()
			if !fs.Changed("addr") {
				fo.Addr = c.Feed.Addr
			}
			if !fs.Changed("vertices") {
				fo.Vertices = c.Feed.Vertices
			}
			if !fs.Changed("interval") {
				fo.Interval = c.FeedInterval()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return Feed(ctx, c, fo)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&fo.Addr, "addr", "localhost:8080", "the address to listen on")
	fs.IntVar(&fo.Vertices, "vertices", 1000, "the number of values per frame")
	fs.DurationVar(&fo.Interval, "interval", 100*time.Millisecond, "the time between frames")
	fs.IntVar(&fo.Cycle, "cycle", 64, "the number of frames per period of the wave")
	return cmd
}

// Feed serves the feed until the context is done.
func Feed(ctx context.Context, c *config.Config, fo *FeedOptions) error {
	if fo.Interval <= 0 {
		return errors.New("the feed interval must be positive")
	}
	srv := stream.NewServer(fo.Interval, stream.Wave(fo.Vertices, fo.Cycle))
	srv.ColorLimits = []float64{-1, 1}
	srv.ColorMapName = c.Surface.ColorMap

	hs := &http.Server{Addr: fo.Addr, Handler: srv}
	errc := make(chan error, 1)
	go func() {
		errc <- hs.ListenAndServe()
	}()
	slog.Info("serving intensity feed", "url", "ws://"+fo.Addr, "vertices", fo.Vertices, "interval", fo.Interval)

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	<-runErr
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return hs.Shutdown(sctx)
}
