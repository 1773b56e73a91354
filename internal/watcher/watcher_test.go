package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInput(t *testing.T) {
	for _, p := range []string{"a.txt", "a.TXT", "a.mp3", "a.wav", "a.m4a"} {
		assert.True(t, IsInput(p), p)
	}
	for _, p := range []string{"a.md", "a.mov", "a", ".DS_Store"} {
		assert.False(t, IsInput(p), p)
	}
}

func TestNewRequiresHandler(t *testing.T) {
	_, err := New(Options{Dir: t.TempDir()})
	assert.Error(t, err)
}

type recorder struct {
	mu      sync.Mutex
	paths   []string
	active  atomic.Int32
	peak    atomic.Int32
	release chan struct{}
}

func (r *recorder) handle(ctx context.Context, path string) error {
	n := r.active.Add(1)
	defer r.active.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if r.release != nil {
		<-r.release
	}
	r.mu.Lock()
	r.paths = append(r.paths, filepath.Base(path))
	r.mu.Unlock()
	return nil
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestStartHandlesExistingAndNewInputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0644))

	rec := &recorder{}
	w, err := New(Options{Dir: dir, Handler: rec.handle, Logger: logger.NewNop(), Settle: 10 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.Eventually(t, func() bool { return len(rec.seen()) == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.wav"), []byte("x"), 0644))
	require.Eventually(t, func() bool { return len(rec.seen()) == 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.ElementsMatch(t, []string{"old.txt", "new.wav"}, rec.seen())
}

func TestConcurrencyBound(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644))
	}

	rec := &recorder{release: make(chan struct{})}
	w, err := New(Options{Dir: dir, Handler: rec.handle, MaxConcurrent: 2})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.Eventually(t, func() bool { return rec.active.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
	for i := 0; i < 4; i++ {
		rec.release <- struct{}{}
	}
	require.Eventually(t, func() bool { return len(rec.seen()) == 4 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, int32(2), rec.peak.Load())
}
