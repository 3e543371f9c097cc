// Package filewatch reports changes to a single file using fsnotify.
package filewatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/kmlpser/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher watches one file. The parent directory is watched so that
// editors which save by rename are still observed.
type Watcher struct {
	path     string
	debounce time.Duration
}

// New creates a watcher for path.
func New(path string) *Watcher {
	return &Watcher{path: filepath.Clean(path), debounce: DefaultDebounce}
}

// WithDebounce sets the quiet period before a change is reported.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch sends on the returned channel each time the file is written or
// replaced. The channel is closed when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	changes := make(chan struct{}, 1)
	go w.loop(ctx, fsw, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)
	defer fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if w.handleFsEvent(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error: %v", err)

		case <-timer.C:
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}

// handleFsEvent reports whether event changed the watched file's content.
func (w *Watcher) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
