package dispatcher

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/nguyentantai21042004/brief-flow/internal/observer"
)

// AnalyzeFunc analyzes one chunk. Failure is reported through the returned
// UnitResult, never as an error.
type AnalyzeFunc func(ctx context.Context, c model.Chunk) model.UnitResult

// Dispatcher fans chunks out to a bounded pool of workers.
type Dispatcher interface {
	// RunAll returns exactly one result per chunk, sorted by chunk index.
	RunAll(ctx context.Context, chunks []model.Chunk, fn AnalyzeFunc) ([]model.UnitResult, observer.Summary)
}
