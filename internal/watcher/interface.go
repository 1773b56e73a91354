package watcher

import "context"

// Watcher monitors the inbox directory and hands new inputs to a Handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one input file.
type EventHandler func(ctx context.Context, filePath string) error
