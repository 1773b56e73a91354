package segmenter

import (
	"fmt"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

// Options configures a Segmenter. Zero BufferSize or Threshold selects the adaptive tier.
type Options struct {
	Strategy     string
	TargetWords  int
	MinChunkSize int
	MaxChunkSize int
	OverlapSize  int
	BufferSize   int
	Threshold    int

	// Splitter is used in semantic mode; nil falls back to sentence grouping.
	Splitter Splitter
}

type implSegmenter struct {
	l    logger.Logger
	opts Options
}

// New validates opts and returns a Segmenter.
func New(l logger.Logger, opts Options) (Segmenter, error) {
	switch opts.Strategy {
	case config.StrategyFixed:
		if opts.TargetWords <= 0 {
			return nil, fmt.Errorf("target words must be positive, got %d", opts.TargetWords)
		}
	case config.StrategySemantic:
		if opts.MinChunkSize <= 0 || opts.MaxChunkSize <= 0 || opts.MinChunkSize > opts.MaxChunkSize {
			return nil, fmt.Errorf("invalid chunk size bounds [%d, %d]", opts.MinChunkSize, opts.MaxChunkSize)
		}
		if opts.Splitter == nil {
			opts.Splitter = SentenceSplitter{Size: defaultSentenceChunk}
		}
	default:
		return nil, fmt.Errorf("unknown chunking strategy %q", opts.Strategy)
	}
	return &implSegmenter{l: l, opts: opts}, nil
}

// OptionsFromConfig maps the chunking section onto Options.
func OptionsFromConfig(c config.ChunkingConfig, splitter Splitter) Options {
	return Options{
		Strategy:     c.Strategy,
		TargetWords:  c.TargetWords,
		MinChunkSize: c.MinChunkSize,
		MaxChunkSize: c.MaxChunkSize,
		OverlapSize:  c.Overlap(),
		BufferSize:   c.BufferSize,
		Threshold:    c.BreakpointThreshold,
		Splitter:     splitter,
	}
}
