package embedding

import "context"

// Embedder turns sentences into vectors for semantic breakpoint detection.
type Embedder interface {
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	ModelName() string
}
