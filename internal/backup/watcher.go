package backup

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/daykeep/daykeep/internal/store"
)

// Watcher watches the mirror file and re-imports it when an external sync
// rewrites it. Events are debounced because sync tools typically write in
// several bursts.
type Watcher struct {
	store        *store.Store
	path         string
	debounceTime time.Duration
	onImport     func()

	watcher *fsnotify.Watcher
	pending time.Time
}

// WatcherConfig configures a mirror watcher.
type WatcherConfig struct {
	Store        *store.Store
	Path         string        // mirror file to watch
	DebounceTime time.Duration // default: 500ms
	OnImport     func()        // called after each successful re-import
}

// NewWatcher creates a mirror file watcher.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debounceTime := cfg.DebounceTime
	if debounceTime == 0 {
		debounceTime = 500 * time.Millisecond
	}

	return &Watcher{
		store:        cfg.Store,
		path:         cfg.Path,
		debounceTime: debounceTime,
		onImport:     cfg.OnImport,
		watcher:      watcher,
	}, nil
}

// Watch blocks until ctx is cancelled, re-importing the mirror after each
// debounced change. The parent directory is watched rather than the file so
// atomic rename-into-place writes are seen.
func (w *Watcher) Watch(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	slog.Info("watching mirror", "path", w.path)

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			w.reimport()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("mirror watcher error", "error", err)
		}
	}
}

func (w *Watcher) reimport() {
	snap, err := ReadFile(w.path)
	if err != nil {
		slog.Warn("mirror changed but could not be read", "path", w.path, "error", err)
		return
	}
	if err := Import(w.store, snap); err != nil {
		slog.Warn("mirror import failed", "path", w.path, "error", err)
		return
	}
	slog.Info("re-imported mirror", "path", w.path, "exportedAt", snap.ExportedAt)
	if w.onImport != nil {
		w.onImport()
	}
}
