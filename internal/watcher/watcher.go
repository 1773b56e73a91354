package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/transcribe"
)

type implWatcher struct {
	opts      Options
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]bool
}

// Start handles inputs already in the inbox, then every newly created one,
// until ctx is cancelled. It waits for running handlers before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.opts.Dir)

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan inbox: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !IsInput(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}
			w.logger.Info(ctx, "New input detected: %s", event.Name)

			select {
			case <-time.After(w.opts.Settle):
			case <-ctx.Done():
				return w.drain(ctx)
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.drain(ctx)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) drain(ctx context.Context) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return ctx.Err()
}

// dispatch runs the handler in a goroutine once a slot is free. A file that
// is already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	w.mu.Lock()
	if w.inFlight[path] {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[path] = true
	w.mu.Unlock()

	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.release(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.release(path)

		if err := w.opts.Handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.opts.Dir)
	if err != nil {
		return err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && IsInput(e.Name()) {
			paths = append(paths, filepath.Join(w.opts.Dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) > 0 {
		w.logger.Info(ctx, "Found %d pending inputs in inbox", len(paths))
	}
	for _, p := range paths {
		if err := w.dispatch(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// IsInput reports whether path is a transcript (.txt) or a supported audio file.
func IsInput(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return true
	}
	return transcribe.IsAudio(path)
}
