package processor

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Processor turns one transcript or audio file into a brief or question list.
type Processor interface {
	// Process runs the pipeline and archives the input on success.
	Process(ctx context.Context, path string) error
	// Run executes the pipeline without touching the input file.
	Run(ctx context.Context, path string) (model.Run, error)
}
