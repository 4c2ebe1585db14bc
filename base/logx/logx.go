// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user log level and logger
// initialization shared by the brainview commands.
package logx

import (
	"io"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the config and flags. The default is [slog.LevelInfo],
// lowered to [slog.LevelDebug] when built with the debug tag.
var UserLevel = defaultUserLevel

// InitLogger sets the default slog logger to a text handler writing
// to w that only shows messages at or above [UserLevel].
func InitLogger(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}

// SetLevel parses the given level name (debug, info, warn, error)
// and sets [UserLevel] to it. An empty name leaves the level unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return err
	}
	UserLevel = lv
	return nil
}
