package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherReloadsValidChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  food_points: 10\n"), 0o600))

	initial, err := LoadFile(path)
	require.NoError(t, err)

	w := NewWatcher(path, initial, log.New(io.Discard))
	w.debounce = 10 * time.Millisecond

	changed := make(chan SnakeConfig, 1)
	w.OnChange(func(cfg SnakeConfig) {
		select {
		case changed <- cfg:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watcher time to register before editing
	time.Sleep(50 * time.Millisecond)

	// An invalid edit is ignored
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 1\n"), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 10, w.Current().Scoring.FoodPoints)
	assert.Equal(t, 0, w.Reloads())

	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  food_points: 25\n"), 0o600))

	select {
	case cfg := <-changed:
		assert.Equal(t, 25, cfg.Scoring.FoodPoints)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the change")
	}
	assert.Equal(t, 25, w.Current().Scoring.FoodPoints)
}

func TestWatcherMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "snake.yaml")
	w := NewWatcher(path, DefaultSnakeConfig(), log.New(io.Discard))

	err := w.Run(context.Background())
	assert.Error(t, err)
}
