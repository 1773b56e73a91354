package synthesizer

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Synthesizer merges per-chunk results into one artifact.
type Synthesizer interface {
	// MergeBrief combines free-text analyses. It fails only with ErrNoSuccessfulUnits.
	MergeBrief(ctx context.Context, results []model.UnitResult) (model.Artifact, error)
	// MergeQuestions selects the overall top questions from every chunk's question set.
	MergeQuestions(ctx context.Context, results []model.UnitResult) (model.Artifact, error)
}
