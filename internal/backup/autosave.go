package backup

import (
	"context"
	"log/slog"
	"time"

	"github.com/daykeep/daykeep/internal/store"
)

// Autosaver periodically exports the store to the mirror file so an external
// sync tool always has a recent snapshot to pick up.
type Autosaver struct {
	store    *store.Store
	path     string
	interval time.Duration
}

// NewAutosaver creates an autosaver. interval must be positive.
func NewAutosaver(s *store.Store, path string, interval time.Duration) *Autosaver {
	return &Autosaver{store: s, path: path, interval: interval}
}

// Run exports the store every interval until ctx is cancelled. Failed saves
// are logged and retried on the next tick.
func (a *Autosaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Save(); err != nil {
				slog.Warn("autosave failed", "path", a.path, "error", err)
			} else {
				slog.Debug("autosaved mirror", "path", a.path)
			}
		}
	}
}

// Save exports the store to the mirror file once.
func (a *Autosaver) Save() error {
	snap, err := Export(a.store)
	if err != nil {
		return err
	}
	return WriteFile(a.path, snap)
}
