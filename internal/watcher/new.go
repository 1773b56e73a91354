package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

const (
	defaultMaxConcurrent = 2
	defaultSettle        = 500 * time.Millisecond
)

// Options configures a Watcher.
type Options struct {
	Dir           string
	Handler       EventHandler
	Logger        logger.Logger
	MaxConcurrent int
	// Settle is how long to wait after a create event before handling the file.
	Settle time.Duration
}

// New creates a Watcher on opts.Dir with bounded concurrent handling.
func New(opts Options) (Watcher, error) {
	if opts.Handler == nil {
		return nil, fmt.Errorf("watcher: handler is required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.Settle <= 0 {
		opts.Settle = defaultSettle
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(opts.Dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		opts:      opts,
		logger:    opts.Logger,
		watcher:   fw,
		semaphore: make(chan struct{}, opts.MaxConcurrent),
		inFlight:  map[string]bool{},
	}, nil
}
