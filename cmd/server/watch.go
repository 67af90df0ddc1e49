package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	reykunyu "github.com/Willem3141/navi-reykunyu-sub001"
)

// watcher reloads the dictionary file after it changes.
type watcher struct {
	r        *reykunyu.Reykunyu
	path     string
	debounce time.Duration
	logger   zerolog.Logger
	metrics  *metrics
}

// start watches the dictionary until ctx is done. It watches the file's
// directory, which also sees the file being replaced by a rename.
func (w *watcher) start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	w.logger.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("watching dictionary")
	go w.loop(ctx, fsw)
	return nil
}

func (w *watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer fsw.Close()
	target := filepath.Clean(w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("dictionary changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("watcher error")

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *watcher) reload() {
	if err := w.r.Load(w.path); err != nil {
		w.metrics.reloads.WithLabelValues("error").Inc()
		return
	}
	w.metrics.reloads.WithLabelValues("ok").Inc()
}
