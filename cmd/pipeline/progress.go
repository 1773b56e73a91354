package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/nguyentantai21042004/brief-flow/internal/observer"
)

// progress prints one line per finished chunk for interactive runs.
type progress struct {
	observer.Observer

	mu   sync.Mutex
	w    io.Writer
	done int
}

func newProgress(w io.Writer) *progress {
	return &progress{Observer: observer.Nop(), w: w}
}

func (p *progress) ChunkSucceeded(_ context.Context, r model.UnitResult) {
	p.line("ok", r)
}

func (p *progress) ChunkFailed(_ context.Context, r model.UnitResult) {
	p.line("failed", r)
}

func (p *progress) line(status string, r model.UnitResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	fmt.Fprintf(p.w, "  [%d] chunk %d %s (%s)\n", p.done, r.ChunkIndex+1, status, r.Elapsed.Round(time.Millisecond))
}
