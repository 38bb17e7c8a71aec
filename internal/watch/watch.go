// Package watch re-runs work when input files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/multierr"
)

// DefaultDebounce groups bursts of events (editors often write a file in
// several steps) into one callback
const DefaultDebounce = 100 * time.Millisecond

// Run calls onChange after any of paths is written, created or replaced,
// until ctx is cancelled
//
// Parent directories are watched rather than the files themselves so that
// editors replacing a file by rename keep being tracked. Errors returned by
// onChange are logged and do not stop the watch.
func Run(ctx context.Context, paths []string, debounce time.Duration, onChange func(context.Context) error) (err error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		err = multierr.Append(err, w.Close())
	}()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	slog.Info("watching for changes", slog.Int("files", len(targets)))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				slog.Debug("source changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
				timer.Reset(debounce)
			}

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", werr)

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				slog.Error("re-run failed", "error", err)
			}
		}
	}
}
