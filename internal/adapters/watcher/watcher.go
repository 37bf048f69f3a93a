// Package watcher implements file system watching for re-running scans on manifest changes.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

var (
	errAlreadyStarted = zerr.New("watcher already started")
	errStopped        = zerr.New("watcher stopped")
)

// Watcher implements file system watching using fsnotify.
// Only events that can change the set or content of manifests are emitted.
// The underlying fsnotify watcher is created by Start, so an unused Watcher holds no
// file system resources.
type Watcher struct {
	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	stopped   bool
	logger    ports.Logger
	opts      domain.WalkOptions
	events    chan ports.WatchEvent
	stopOnce  sync.Once
}

// NewWatcher creates a new file system watcher.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching the given root directory recursively, skipping excluded directories.
// A Watcher can be started once.
func (w *Watcher) Start(ctx context.Context, root string, exclude []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.stopped:
		return fmt.Errorf("%w: %w", domain.ErrWatcherStartFailed, errStopped)
	case w.fsWatcher != nil:
		return fmt.Errorf("%w: %w", domain.ErrWatcherStartFailed, errAlreadyStarted)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWatcherStartFailed, err)
	}
	w.opts = domain.WalkOptions{Exclude: exclude}

	for dir := range w.watchRecursively(root) {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return zerr.With(fmt.Errorf("%w: %w", domain.ErrWatcherStartFailed, err), "path", dir)
		}
	}

	w.fsWatcher = fsWatcher
	go w.processEvents(ctx, fsWatcher)

	return nil
}

// Stop stops the watcher and releases all resources. It is safe to call without Start.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		w.stopped = true
		if w.fsWatcher == nil {
			// No event loop owns the channel.
			close(w.events)
			return
		}
		err = w.fsWatcher.Close()
	})
	return err
}

// Events returns an iterator of file system events.
// The iterator ends when the watcher is stopped or its context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories that are not excluded.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directories are skipped; the next scan reports them.
				return nil //nolint:nilerr // skipping is intended
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && w.opts.Excludes(d.Name()) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// processEvents converts raw fsnotify events and forwards the relevant ones.
func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			isNewDir := false
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if w.opts.Excludes(info.Name()) {
						continue
					}
					isNewDir = true
					for dir := range w.watchRecursively(event.Name) {
						_ = fsWatcher.Add(dir)
					}
				}
			}

			watchEvent, ok := convertEvent(event)
			if !ok || !isRelevant(watchEvent, isNewDir) {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// isRelevant reports whether an event can affect the discovered manifests.
// Removed or renamed paths may be directories that held manifests, and a created
// directory may have been moved in with manifests inside.
func isRelevant(event ports.WatchEvent, isNewDir bool) bool {
	if filepath.Base(event.Path) == domain.ManifestFileName {
		return true
	}
	switch event.Operation {
	case ports.OpRemove, ports.OpRename:
		return true
	case ports.OpCreate:
		return isNewDir
	default:
		return false
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
