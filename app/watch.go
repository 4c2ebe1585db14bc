// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/brainview/base/errors"
	"cogentcore.org/brainview/stream"
	"cogentcore.org/brainview/system"
	"github.com/fsnotify/fsnotify"
)

// Watcher calls a function on the frame goroutine
// whenever a file is written.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching the file with the given name, posting fun to
// the scheduler each time it is written or replaced. The directory of
// the file is watched, as editors often replace files instead of
// writing to them.
func Watch(filename string, sched system.Scheduler, fun func()) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{watcher: fw, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
					continue
				}
				slog.Debug("app: file changed", "file", ev.Name, "op", ev.Op)
				sched.Post(fun)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return w, nil
}

// Close stops watching and waits for the watch goroutine to return.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

// Follow connects to the intensity feed at url, showing each frame
// in the session on the frame goroutine of sched.
func (s *Session) Follow(ctx context.Context, url string, sched system.Scheduler) (*stream.Client, error) {
	c, err := stream.Dial(ctx, url)
	if err != nil {
		return nil, err
	}
	c.OnFrame(func(fr *stream.Frame) {
		sched.Post(func() {
			if err := s.Show(&fr.Intensity); err != nil {
				slog.Warn("app: cannot show feed frame", "seq", fr.Seq, "err", err)
			}
		})
	})
	return c, nil
}
