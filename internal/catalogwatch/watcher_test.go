package catalogwatch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoavobot/internal/intent"
	"ecoavobot/pkg/log"
)

type countingReloader struct {
	calls  atomic.Int32
	signal chan struct{}
}

func (r *countingReloader) Reload(ctx context.Context) (intent.ReloadOutput, error) {
	r.calls.Add(1)
	select {
	case r.signal <- struct{}{}:
	default:
	}
	return intent.ReloadOutput{}, nil
}

func startWatcher(t *testing.T, path string, r *countingReloader) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	w := New(path, 30*time.Millisecond, r, log.NewNop())
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})
	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intents.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"intents": []}`), 0o600))

	r := &countingReloader{signal: make(chan struct{}, 1)}
	startWatcher(t, path, r)

	// A burst of writes is debounced into a single reload.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"intents": []}`), 0o600))
	}

	select {
	case <-r.signal:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reload")
	}
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intents.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"intents": []}`), 0o600))

	r := &countingReloader{signal: make(chan struct{}, 1)}
	startWatcher(t, path, r)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	select {
	case <-r.signal:
		t.Fatal("unexpected reload")
	case <-time.After(200 * time.Millisecond):
	}
	assert.Zero(t, r.calls.Load())
}

func TestWatcherMissingDirectoryKeepsRunning(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	path := filepath.Join(dir, "intents.json")

	r := &countingReloader{signal: make(chan struct{}, 1)}
	w := New(path, 30*time.Millisecond, r, log.NewNop())
	w.retry = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("watcher returned early: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"intents": []}`), 0o600))

	select {
	case <-r.signal:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reload once the directory appeared")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherMissingDirectoryStopsOnCancel(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope", "intents.json"), 0, &countingReloader{}, log.NewNop())
	w.retry = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, w.Run(ctx))
}
