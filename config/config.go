// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the brainview tool, stored as TOML.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"time"

	"cogentcore.org/brainview/base/errors"
	"cogentcore.org/brainview/colors"
	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/surface"
	"cogentcore.org/brainview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrConfig is returned for invalid configuration values.
var ErrConfig = errors.New("config: invalid configuration")

// Config is the main config struct
// that contains all of the configuration
// options for the brainview tool.
type Config struct {

	// the options of the viewer
	Viewer Viewer `toml:"viewer"`

	// the color settings applied to intensity data
	Surface Surface `toml:"surface"`

	// the options of the intensity feed
	Feed Feed `toml:"feed"`

	// the options of logging
	Log Log `toml:"log"`
}

// Viewer contains the viewer options. See [viewer.Options].
type Viewer struct {
	Background    string     `toml:"background"`
	Alpha         float64    `toml:"alpha"`
	FOV           float32    `toml:"fov"`
	Near          float32    `toml:"near"`
	Far           float32    `toml:"far"`
	CameraPos     [3]float32 `toml:"camera_pos"`
	MinDistance   float32    `toml:"min_distance"`
	FallbackColor string     `toml:"fallback_color"`
	ModelRotation float32    `toml:"model_rotation"`

	// a zero division count hides the grid
	GridSize      float32 `toml:"grid_size"`
	GridDivisions int     `toml:"grid_divisions"`

	AmbientIntensity float32    `toml:"ambient_intensity"`
	DirIntensity     float32    `toml:"dir_intensity"`
	LightOffset      [3]float32 `toml:"light_offset"`
	LegendTitle      string     `toml:"legend_title"`
}

// Surface contains the color settings of vertex maps.
type Surface struct {

	// the color map name; empty means the vertex map default
	ColorMap colormap.Name `toml:"color_map"`

	// explicit color limits as [min, max]; empty infers them from the data
	Limits []float64 `toml:"limits,omitempty"`
}

// Feed contains the options of the websocket feed.
type Feed struct {

	// the address the feed server listens on
	Addr string `toml:"addr"`

	// the time between frames in milliseconds
	Interval int `toml:"interval"`

	// the number of values per frame of the synthetic source
	Vertices int `toml:"vertices"`
}

// Log contains the logging options.
type Log struct {

	// the level of messages shown: debug, info, warn or error
	Level string `toml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	o := viewer.DefaultOptions()
	return &Config{
		Viewer: Viewer{
			Background:       o.Background,
			Alpha:            o.Alpha,
			FOV:              o.FOV,
			Near:             o.Near,
			Far:              o.Far,
			CameraPos:        o.CameraPos,
			MinDistance:      o.MinDistance,
			FallbackColor:    o.FallbackColor,
			ModelRotation:    o.ModelRotation,
			GridSize:         o.GridSize,
			GridDivisions:    o.GridDivisions,
			AmbientIntensity: o.AmbientIntensity,
			DirIntensity:     o.DirIntensity,
			LightOffset:      o.LightOffset,
			LegendTitle:      o.LegendTitle,
		},
		Feed: Feed{Addr: "localhost:8080", Interval: 100, Vertices: 1000},
		Log:  Log{Level: "info"},
	}
}

// Open reads the config file with the given name on top of the defaults.
// A missing file is not an error and returns the defaults.
func Open(filename string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := c.Decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Decode decodes TOML data on top of the current values and validates
// the result. Unknown keys are an error.
func (c *Config) Decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return c.Validate()
}

// Save writes the config to the file with the given name.
func (c *Config) Save(filename string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0666)
}

// Validate returns an error wrapping [ErrConfig] for values
// that the viewer or the feed cannot use.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrConfig}, args...)...))
	}
	v := &c.Viewer
	if _, err := colors.FromString(v.Background); err != nil {
		bad("viewer.background: %v", err)
	}
	if _, err := colors.FromString(v.FallbackColor); err != nil {
		bad("viewer.fallback_color: %v", err)
	}
	if v.Alpha < 0 || v.Alpha > 1 {
		bad("viewer.alpha %g is not in [0, 1]", v.Alpha)
	}
	if v.FOV <= 0 || v.FOV >= 180 {
		bad("viewer.fov %g is not in (0, 180)", v.FOV)
	}
	if v.Near <= 0 || v.Far <= v.Near {
		bad("viewer.near %g and far %g must satisfy 0 < near < far", v.Near, v.Far)
	}
	if v.GridDivisions < 0 {
		bad("viewer.grid_divisions %d is negative", v.GridDivisions)
	}
	if c.Surface.ColorMap != "" {
		if _, ok := colormap.Lookup(c.Surface.ColorMap); !ok {
			bad("surface.color_map: unknown color map %q", c.Surface.ColorMap)
		}
	}
	if n := len(c.Surface.Limits); n != 0 && n != 2 {
		bad("surface.limits must have 2 values, not %d", n)
	} else if n == 2 && !(c.Surface.Limits[0] < c.Surface.Limits[1]) {
		bad("surface.limits %v must be increasing", c.Surface.Limits)
	}
	if c.Feed.Interval <= 0 {
		bad("feed.interval %d must be positive", c.Feed.Interval)
	}
	if c.Feed.Vertices < 0 {
		bad("feed.vertices %d is negative", c.Feed.Vertices)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		bad("log.level: unknown level %q", c.Log.Level)
	}
	return errors.Join(errs...)
}

// Options returns the viewer options for the config.
func (c *Config) Options() viewer.Options {
	v := &c.Viewer
	o := viewer.DefaultOptions()
	o.CameraPos = mgl32.Vec3(v.CameraPos)
	o.FOV = v.FOV
	o.Near = v.Near
	o.Far = v.Far
	o.MinDistance = v.MinDistance
	o.Background = v.Background
	o.Alpha = v.Alpha
	o.FallbackColor = v.FallbackColor
	o.ModelRotation = v.ModelRotation
	o.GridSize = v.GridSize
	o.GridDivisions = v.GridDivisions
	o.AmbientIntensity = v.AmbientIntensity
	o.DirIntensity = v.DirIntensity
	o.LightOffset = mgl32.Vec3(v.LightOffset)
	o.LegendTitle = v.LegendTitle
	return o
}

// VertexMapOptions returns the vertex map options for the surface
// settings, which come before any given by the intensity data itself.
func (c *Config) VertexMapOptions() []surface.VertexMapOption {
	var opts []surface.VertexMapOption
	if c.Surface.ColorMap != "" {
		opts = append(opts, surface.WithColorMap(c.Surface.ColorMap))
	}
	if len(c.Surface.Limits) == 2 {
		opts = append(opts, surface.WithLimits(c.Surface.Limits[0], c.Surface.Limits[1]))
	}
	return opts
}

// FeedInterval returns the feed interval as a duration.
func (c *Config) FeedInterval() time.Duration {
	return time.Duration(c.Feed.Interval) * time.Millisecond
}
