// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package watch re-runs planning whenever a descriptor or a source directory
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
)

// DefaultDebounce coalesces bursts of events such as an editor's
// write-rename-chmod sequence.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls onChange once per burst of file system events. Calls are
// serialized on the goroutine running Run.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func(ctx context.Context)
}

// New starts watching paths. Directories are watched recursively, files
// individually.
func New(paths []string, debounce time.Duration, onChange func(ctx context.Context)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{fsw: fsw, debounce: debounce, onChange: onChange}
	for _, p := range paths {
		if err := w.add(p); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run delivers change notifications until ctx is cancelled, then releases
// the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	defer func() { _ = w.fsw.Close() }()

	// Armed only by events.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	logger.Info("Watching for changes.", "paths", w.fsw.WatchList())

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watcher stopped.")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			logger.Debug("File changed.", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.add(event.Name); err != nil {
						logger.Warn("Failed to watch new directory.", "path", event.Name, "error", err)
					}
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.onChange(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error.", "error", err)
		}
	}
}

// Run watches paths with the default debounce until ctx is cancelled.
func Run(ctx context.Context, paths []string, onChange func(ctx context.Context)) error {
	w, err := New(paths, DefaultDebounce, onChange)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if !info.IsDir() {
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}
