package observer

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

type nopObserver struct{}

// Nop returns an Observer that discards every event.
func Nop() Observer { return nopObserver{} }

func (nopObserver) ChunkStarted(context.Context, int, int)           {}
func (nopObserver) ChunkSucceeded(context.Context, model.UnitResult) {}
func (nopObserver) ChunkFailed(context.Context, model.UnitResult)    {}
func (nopObserver) StageCompleted(context.Context, int, string)      {}
func (nopObserver) RunFinished(context.Context, Summary)             {}

type logObserver struct {
	l logger.Logger
}

// NewLog returns an Observer that reports progress through l.
func NewLog(l logger.Logger) Observer {
	return &logObserver{l: l}
}

func (o *logObserver) ChunkStarted(ctx context.Context, index, total int) {
	o.l.Info(ctx, "[%d/%d] Analyzing chunk %d", index+1, total, index)
}

func (o *logObserver) ChunkSucceeded(ctx context.Context, r model.UnitResult) {
	o.l.Info(ctx, "[DONE] Chunk %d (%d words) in %s", r.ChunkIndex, r.Words, r.Elapsed.Round(time.Millisecond))
}

func (o *logObserver) ChunkFailed(ctx context.Context, r model.UnitResult) {
	o.l.Error(ctx, "[FAILED] Chunk %d: %s", r.ChunkIndex, r.Error)
}

func (o *logObserver) StageCompleted(ctx context.Context, index int, stage string) {
	o.l.Debug(ctx, "Chunk %d: %s", index, stage)
}

func (o *logObserver) RunFinished(ctx context.Context, s Summary) {
	o.l.Info(ctx, "Analysis complete: %d/%d succeeded, %d failed in %s", s.Succeeded, s.Total, s.Failed, s.Elapsed.Round(time.Millisecond))
}

type multiObserver []Observer

// Multi fans every event out to each observer in order.
func Multi(observers ...Observer) Observer {
	return multiObserver(observers)
}

func (m multiObserver) ChunkStarted(ctx context.Context, index, total int) {
	for _, o := range m {
		o.ChunkStarted(ctx, index, total)
	}
}

func (m multiObserver) ChunkSucceeded(ctx context.Context, r model.UnitResult) {
	for _, o := range m {
		o.ChunkSucceeded(ctx, r)
	}
}

func (m multiObserver) ChunkFailed(ctx context.Context, r model.UnitResult) {
	for _, o := range m {
		o.ChunkFailed(ctx, r)
	}
}

func (m multiObserver) StageCompleted(ctx context.Context, index int, stage string) {
	for _, o := range m {
		o.StageCompleted(ctx, index, stage)
	}
}

func (m multiObserver) RunFinished(ctx context.Context, s Summary) {
	for _, o := range m {
		o.RunFinished(ctx, s)
	}
}
