// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream is a websocket feed of intensity frames: a [Server]
// broadcasts a frame from a [Source] at a fixed interval to every
// connected [Client], which delivers them to a callback.
package stream

import (
	"fmt"
	"math"
	"time"

	"cogentcore.org/brainview/base/errors"
	"cogentcore.org/brainview/colors/colormap"
	"cogentcore.org/brainview/surface/surfio"
	"github.com/goccy/go-json"
)

// ErrFrame is returned for messages that are not valid frames.
var ErrFrame = errors.New("stream: invalid frame")

// Frame is one message of the feed: a numbered intensity field with
// optional color settings, in the intensity file format.
type Frame struct {
	Seq  uint64    `json:"seq"`
	Time time.Time `json:"time"`
	surfio.Intensity
}

// Encode returns the JSON encoding of the frame.
func (fr *Frame) Encode() ([]byte, error) {
	return json.Marshal(fr)
}

// DecodeFrame decodes a JSON frame.
func DecodeFrame(data []byte) (*Frame, error) {
	fr := &Frame{}
	if err := json.Unmarshal(data, fr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrame, err)
	}
	if fr.ColorLimits != nil && len(fr.ColorLimits) != 2 {
		return nil, fmt.Errorf("%w: colorLimits must have 2 values, not %d", ErrFrame, len(fr.ColorLimits))
	}
	if fr.ColorMapName != "" {
		if _, ok := colormap.Lookup(fr.ColorMapName); !ok {
			return nil, fmt.Errorf("%w: unknown colorMapName %q", ErrFrame, fr.ColorMapName)
		}
	}
	return fr, nil
}

// Source returns the intensity of frame seq.
type Source func(seq uint64) []float64

// Wave returns a source of n values of a sine wave traveling along the
// vertex indexes, one full period per cycle frames, between -1 and 1.
func Wave(n int, cycle int) Source {
	cycle = max(cycle, 1)
	return func(seq uint64) []float64 {
		vals := make([]float64, n)
		ph := 2 * math.Pi * float64(seq%uint64(cycle)) / float64(cycle)
		for i := range vals {
			vals[i] = math.Sin(2*math.Pi*float64(i)/float64(max(n, 1)) + ph)
		}
		return vals
	}
}
