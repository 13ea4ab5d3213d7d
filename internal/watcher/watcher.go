// Package watcher re-runs the precache job when the seeds file changes.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SeedsWatcher watches a single file. The parent directory is watched
// because editors commonly replace files by rename.
type SeedsWatcher struct {
	path     string
	refresh  func(ctx context.Context) error
	logger   *slog.Logger
	debounce time.Duration
}

func New(path string, refresh func(ctx context.Context) error, logger *slog.Logger) *SeedsWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeedsWatcher{
		path:     filepath.Clean(path),
		refresh:  refresh,
		logger:   logger.With("component", "seeds-watcher"),
		debounce: 500 * time.Millisecond,
	}
}

// SetDebounce overrides the default debounce interval (for testing).
func (s *SeedsWatcher) SetDebounce(d time.Duration) {
	s.debounce = d
}

// Run blocks until ctx is canceled. Bursts of writes are coalesced into one
// refresh. Refresh failures are logged and do not stop the watcher.
func (s *SeedsWatcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck

	if err := w.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}
	s.logger.Info("Watching seeds file", "path", s.path)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !s.relevant(ev) {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.debounce)
			pending = true

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("fsnotify error", "error", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			s.logger.Info("Seeds file changed, refreshing")
			if err := s.refresh(ctx); err != nil {
				s.logger.Error("Refresh after seeds change failed", "error", err)
			}
		}
	}
}

func (s *SeedsWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != s.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
