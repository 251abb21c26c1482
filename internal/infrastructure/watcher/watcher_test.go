package watcher

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

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "congresses.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o644))

	var calls atomic.Int32
	w, err := New([]string{target}, 50*time.Millisecond, func(context.Context) { calls.Add(1) }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte(`{"n":1}`), 0o644))
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "unrelated files do not trigger")

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_RenameReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "revistas.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o644))

	var calls atomic.Int32
	w, err := New([]string{target}, 20*time.Millisecond, func(context.Context) { calls.Add(1) }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	tmp := filepath.Join(dir, "revistas.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"journals":[]}`), 0o644))
	require.NoError(t, os.Rename(tmp, target))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "absent", "x.json")}, 0, func(context.Context) {}, nil)
	assert.Error(t, err)
}
