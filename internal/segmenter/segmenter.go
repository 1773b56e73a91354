package segmenter

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

func (s *implSegmenter) Segment(ctx context.Context, raw string) ([]model.Chunk, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	var (
		chunks []model.Chunk
		err    error
	)
	switch s.opts.Strategy {
	case config.StrategySemantic:
		chunks, err = s.semantic(ctx, raw)
	default:
		chunks = Fixed(raw, s.opts.TargetWords)
	}
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}

	st := ChunkStats(chunks, s.opts.MinChunkSize, s.opts.MaxChunkSize)
	s.l.Info(ctx, "Segmented %d words into %d chunks (%s)", st.Words, st.Count, s.opts.Strategy)
	s.l.Debug(ctx, "Chunk size: avg %.0f, range %d-%d chars, quality %.1f%%", st.AvgChars, st.MinChars, st.MaxChars, st.Quality*100)
	return chunks, nil
}
