package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher keeps the latest valid configuration of a YAML file, reloading it
// whenever the file changes on disk. Invalid edits are logged and ignored.
type Watcher struct {
	path     string
	logger   *log.Logger
	debounce time.Duration

	mu       sync.RWMutex
	current  SnakeConfig
	reloads  int
	onChange func(SnakeConfig)
}

// NewWatcher creates a watcher for path seeded with the already loaded config.
func NewWatcher(path string, initial SnakeConfig, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		logger:   logger,
		debounce: 200 * time.Millisecond,
		current:  initial,
	}
}

// OnChange registers a callback invoked after each successful reload.
func (w *Watcher) OnChange(fn func(SnakeConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Current returns the most recent valid configuration.
func (w *Watcher) Current() SnakeConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Reloads returns how many successful reloads happened.
func (w *Watcher) Reloads() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.reloads
}

// Run watches the file until ctx is cancelled. The parent directory is
// watched rather than the file so that editors replacing the file on save
// are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("config: cannot watch %s: %w", dir, err)
	}
	w.logger.Info("watching config", "path", w.path)

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
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Debounce bursts of writes from a single save
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("ignoring invalid config change", "path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.reloads++
	fn := w.onChange
	w.mu.Unlock()

	w.logger.Info("config reloaded", "path", w.path)
	if fn != nil {
		fn(cfg)
	}
}
