// Package catalogwatch reloads the intent catalog when its file changes.
package catalogwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"ecoavobot/internal/intent"
	"ecoavobot/pkg/log"
)

const (
	LogPrefixRun    = "internal.catalogwatch.Run"
	defaultDebounce = 500 * time.Millisecond
	defaultRetry    = 5 * time.Second
)

// Reloader is the part of intent.UseCase the watcher drives.
type Reloader interface {
	Reload(ctx context.Context) (intent.ReloadOutput, error)
}

// Watcher triggers a Reload after the catalog file settles.
type Watcher struct {
	path     string
	debounce time.Duration
	retry    time.Duration
	reloader Reloader
	l        log.Logger
}

// New creates a Watcher for the catalog at path.
func New(path string, debounce time.Duration, reloader Reloader, l log.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		retry:    defaultRetry,
		reloader: reloader,
		l:        l,
	}
}

// Run watches until ctx is done. The parent directory is watched so that
// editors which save by rename are still seen. A missing directory is not
// fatal: Run retries until it appears and then reloads once.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalogwatch: new watcher: %w", err)
	}
	defer fw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		w.l.Warnf(ctx, "%s: cannot watch %s, retrying every %s: %v", LogPrefixRun, dir, w.retry, err)
		if !w.waitForDir(ctx, fw, dir) {
			return nil
		}
		// The catalog may have been written before the watch was in place.
		timer.Reset(w.debounce)
	}
	w.l.Infof(ctx, "%s: watching %s", LogPrefixRun, w.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.l.Debugf(ctx, "%s: %s", LogPrefixRun, ev)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.l.Warnf(ctx, "%s: watcher error: %v", LogPrefixRun, err)

		case <-timer.C:
			if _, err := w.reloader.Reload(ctx); err != nil {
				w.l.Warnf(ctx, "%s: reload failed, previous catalog kept: %v", LogPrefixRun, err)
			}
		}
	}
}

// waitForDir retries fw.Add until it succeeds. It reports false when ctx ends first.
func (w *Watcher) waitForDir(ctx context.Context, fw *fsnotify.Watcher, dir string) bool {
	ticker := time.NewTicker(w.retry)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if err := fw.Add(dir); err == nil {
				return true
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
