package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces the burst of events editors emit on save
const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk
type Watcher struct {
	Path     string
	Debounce time.Duration

	// OnChange receives every successfully reloaded config
	OnChange func(*Config)
	// OnError receives read, parse and watcher errors. May be nil.
	OnError func(error)
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string, onChange func(*Config)) *Watcher {
	return &Watcher{
		Path:     path,
		Debounce: DefaultWatchDebounce,
		OnChange: onChange,
	}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file so atomic rename-on-save still triggers a reload.
func (w *Watcher) Run(ctx context.Context) error {
	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	target := filepath.Clean(w.Path)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}

		case <-timer.C:
			cfg, err := Load(w.Path)
			if err != nil {
				w.reportError(err)
				continue
			}
			if w.OnChange != nil {
				w.OnChange(cfg)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.reportError(fmt.Errorf("watcher error: %w", err))

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
