package segmenter

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Tier holds the adaptive splitter parameters for one text-length band.
type Tier struct {
	Name       string
	MaxChars   int // exclusive upper bound; 0 means unbounded
	BufferSize int
	Threshold  int
}

// Tiers are ordered by MaxChars; the last tier catches everything longer.
var Tiers = []Tier{
	{Name: "short", MaxChars: 10000, BufferSize: 2, Threshold: 85},
	{Name: "medium", MaxChars: 50000, BufferSize: 3, Threshold: 92},
	{Name: "long", BufferSize: 4, Threshold: 95},
}

// Adaptive picks the tier for a cleaned text of textLen characters.
func Adaptive(textLen int) Tier {
	for _, t := range Tiers {
		if t.MaxChars == 0 || textLen < t.MaxChars {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

func (s *implSegmenter) params(textLen int) SplitParams {
	tier := Adaptive(textLen)
	p := SplitParams{BufferSize: tier.BufferSize, Threshold: tier.Threshold}
	if s.opts.BufferSize > 0 {
		p.BufferSize = s.opts.BufferSize
	}
	if s.opts.Threshold > 0 {
		p.Threshold = s.opts.Threshold
	}
	return p
}

func (s *implSegmenter) semantic(ctx context.Context, raw string) ([]model.Chunk, error) {
	text := Clean(raw)
	if text == "" {
		return nil, ErrEmptyInput
	}

	p := s.params(runeLen(text))
	s.l.Debug(ctx, "Semantic split: %d chars, buffer=%d threshold=%d", runeLen(text), p.BufferSize, p.Threshold)

	parts, err := s.opts.Splitter.Split(ctx, text, p)
	if err != nil {
		return nil, fmt.Errorf("%w: split: %w", ErrSegmentation, err)
	}

	parts = PostProcess(parts, s.opts.MinChunkSize, s.opts.MaxChunkSize)

	chunks := make([]model.Chunk, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		chunks = append(chunks, model.Chunk{
			Index: len(chunks),
			Text:  part,
			Words: len(strings.Fields(part)),
			Chars: runeLen(part),
		})
	}
	return ApplyOverlap(chunks, s.opts.OverlapSize), nil
}
