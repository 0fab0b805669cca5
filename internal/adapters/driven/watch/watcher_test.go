package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(_ context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestWatcherRefreshesOnChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "properties"), 0o755))

	refresher := &countingRefresher{}
	w := New(dir, refresher, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Let the watcher establish itself before writing.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "properties", "active_listings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"active_listings": []}`), 0o644))

	require.Eventually(t, func() bool {
		return refresher.calls.Load() >= 1
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	refresher := &countingRefresher{}
	w := New(dir, refresher, 150*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)

	// A burst of writes within the debounce window coalesces into a
	// single refresh.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{}`), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return refresher.calls.Load() >= 1
	}, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), refresher.calls.Load())

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcherMissingDirFails(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"), &countingRefresher{}, 0)
	assert.Error(t, w.Run(context.Background()))
}
