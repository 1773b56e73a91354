package observer

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Summary is the final report of a fan-out run.
type Summary struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Observer receives progress events. Methods are called from worker
// goroutines and must be safe for concurrent use.
type Observer interface {
	ChunkStarted(ctx context.Context, index, total int)
	ChunkSucceeded(ctx context.Context, r model.UnitResult)
	ChunkFailed(ctx context.Context, r model.UnitResult)
	StageCompleted(ctx context.Context, index int, stage string)
	RunFinished(ctx context.Context, s Summary)
}
