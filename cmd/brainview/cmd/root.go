// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the brainview tool.
package cmd

import (
	"fmt"
	"os"

	"cogentcore.org/brainview/base/logx"
	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/config"
	"cogentcore.org/brainview/surface"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globals are the settings shared by all of the commands.
type globals struct {
	configFile string
	logLevel   string

	// Config is set before any command runs.
	Config *config.Config
}

func (g *globals) init() error {
	c, err := config.Open(g.configFile)
	if err != nil {
		return err
	}
	if err := logx.SetLevel(c.Log.Level); err != nil {
		return err
	}
	if err := logx.SetLevel(g.logLevel); err != nil {
		return err
	}
	logx.InitLogger(os.Stderr)
	g.Config = c
	return nil
}

// NewRoot returns the root brainview command.
func NewRoot() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "brainview",
		Short:        "View triangulated surfaces colored by per-vertex intensity data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.init()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configFile, "config", "c", "brainview.toml", "the TOML config file; a missing file uses the defaults")
	pf.StringVar(&g.logLevel, "log-level", "", "the level of log messages shown (debug, info, warn, error), overriding the config")
	root.AddCommand(newView(g), newSnapshot(g), newFeed(g), newColormaps(g))
	return root
}

// surfaceFlags are the flags selecting a mesh and its intensity data.
type surfaceFlags struct {
	Mesh      string
	Intensity string
	ColorMap  string
	Limits    []float64

	flags *pflag.FlagSet
}

func (sf *surfaceFlags) add(fs *pflag.FlagSet) {
	sf.flags = fs
	fs.StringVarP(&sf.Mesh, "mesh", "m", "", "the surface payload JSON file (required)")
	fs.StringVarP(&sf.Intensity, "intensity", "i", "", "the intensity JSON file")
	fs.StringVar(&sf.ColorMap, "colormap", "", "the color map name, overriding the config and the intensity file")
	fs.Float64SliceVar(&sf.Limits, "limits", nil, "the color limits as min,max, overriding the config and the intensity file")
}

// overrides returns the vertex map options given by the flags.
func (sf *surfaceFlags) overrides() ([]surface.VertexMapOption, error) {
	var opts []surface.VertexMapOption
	if sf.ColorMap != "" {
		name := colormap.Name(sf.ColorMap)
		if _, ok := colormap.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown color map %q; see the colormaps command", sf.ColorMap)
		}
		opts = append(opts, surface.WithColorMap(name))
	}
	if sf.flags.Changed("limits") {
		if len(sf.Limits) != 2 {
			return nil, fmt.Errorf("--limits needs 2 values, not %d", len(sf.Limits))
		}
		opts = append(opts, surface.WithLimits(sf.Limits[0], sf.Limits[1]))
	}
	return opts, nil
}
