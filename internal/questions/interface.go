package questions

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Pipeline runs summarize, critique and rank over one chunk.
type Pipeline interface {
	// Process stops at the first failing stage and reports it in the result.
	Process(ctx context.Context, c model.Chunk) model.UnitResult
}
