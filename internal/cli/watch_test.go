package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/fsmgen/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFile_RunsOnStartAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fsm.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, 20*time.Millisecond, logging.NewNop(), func() error {
			calls.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("{}"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "unrelated files are ignored")

	require.NoError(t, os.WriteFile(path, []byte(`{"reset": "A"}`), 0644))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "fsm.json"), time.Millisecond, logging.NewNop(), func() error { return nil })
	assert.Error(t, err)
}
