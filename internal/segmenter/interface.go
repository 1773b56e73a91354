package segmenter

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Segmenter splits raw transcript text into ordered, bounded chunks.
type Segmenter interface {
	// Segment returns at least one chunk or an error wrapping ErrSegmentation.
	Segment(ctx context.Context, raw string) ([]model.Chunk, error)
}

// Splitter proposes semantic breakpoints over cleaned text.
type Splitter interface {
	Split(ctx context.Context, text string, p SplitParams) ([]string, error)
}

// SplitParams controls breakpoint detection. A higher Threshold yields fewer, larger chunks.
type SplitParams struct {
	BufferSize int
	Threshold  int
}
