// Package watch refreshes the dataset automatically when its files
// change on disk. It is optional; without it refresh is manual.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/logger"
)

// Refresher is the slice of the catalog service the watcher drives.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// DefaultDebounce coalesces bursts of file events (editors write
// several events per save) into one refresh.
const DefaultDebounce = 500 * time.Millisecond

// Watcher triggers a refresh when files under the data directory
// change. Events are debounced so one logical edit causes one reload.
type Watcher struct {
	dataDir   string
	refresher Refresher
	debounce  time.Duration
}

// New creates a watcher over dataDir. A non-positive debounce falls
// back to DefaultDebounce.
func New(dataDir string, refresher Refresher, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dataDir: dataDir, refresher: refresher, debounce: debounce}
}

// Run watches until the context is cancelled. It returns an error only
// when the watch cannot be established; refresh failures are logged
// and watching continues with the previous snapshot still active.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the data dir and its per-category subdirectories;
	// fsnotify does not recurse.
	if err := fsw.Add(w.dataDir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dataDir, err)
	}
	entries, err := os.ReadDir(w.dataDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", w.dataDir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := fsw.Add(filepath.Join(w.dataDir, entry.Name())); err != nil {
			return fmt.Errorf("watching %s: %w", entry.Name(), err)
		}
	}

	logger.Info("Watching %s for dataset changes", w.dataDir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Dataset change: %s", event)
			pending = time.After(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)

		case <-pending:
			pending = nil
			w.doRefresh(ctx)
		}
	}
}

func (w *Watcher) doRefresh(ctx context.Context) {
	err := w.refresher.Refresh(ctx)
	switch {
	case err == nil:
		logger.Info("Dataset refreshed after file change")
	case errors.Is(err, domain.ErrRefreshInProgress):
		logger.Debug("Refresh already running, skipping")
	default:
		logger.Warn("Auto-refresh failed: %v", err)
	}
}
