// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     config
// Description: Hot reload of the configuration file
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeHandler receives the reloaded configuration or the reload error
type ChangeHandler func(cfg *Config, err error)

// Watcher reloads a config file whenever it changes on disk
type Watcher struct {
	path     string
	handler  ChangeHandler
	debounce time.Duration

	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

// DefaultDebounce collapses the burst of events editors emit on save
const DefaultDebounce = 200 * time.Millisecond

// Watch starts watching path and calls handler after every change. The
// watcher stops when ctx is cancelled or Close is called.
func Watch(ctx context.Context, path string, handler ChangeHandler) (*Watcher, error) {
	return WatchWithDebounce(ctx, path, DefaultDebounce, handler)
}

// WatchWithDebounce is Watch with a custom debounce delay
func WatchWithDebounce(ctx context.Context, path string, debounce time.Duration, handler ChangeHandler) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("config path required for watching")
	}
	if handler == nil {
		return nil, fmt.Errorf("change handler required for watching")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: editors often replace the file instead of writing it
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		handler:  handler,
		debounce: debounce,
		watcher:  fw,
		done:     make(chan struct{}),
	}

	go w.loop(ctx)

	return w, nil
}

// Close stops the watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// loop handles file system events until ctx or Close stops it
func (w *Watcher) loop(ctx context.Context) {
	defer w.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err == nil {
				err = cfg.ApplyEnv()
			}
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				w.handler(nil, err)
				continue
			}
			w.handler(cfg, nil)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.handler(nil, fmt.Errorf("watcher error: %w", err))
		}
	}
}
