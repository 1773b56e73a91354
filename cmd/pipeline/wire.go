package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/dispatcher"
	"github.com/nguyentantai21042004/brief-flow/internal/embedding"
	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/observer"
	"github.com/nguyentantai21042004/brief-flow/internal/output"
	"github.com/nguyentantai21042004/brief-flow/internal/processor"
	"github.com/nguyentantai21042004/brief-flow/internal/questions"
	"github.com/nguyentantai21042004/brief-flow/internal/runstore"
	"github.com/nguyentantai21042004/brief-flow/internal/segmenter"
	"github.com/nguyentantai21042004/brief-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/brief-flow/internal/transcribe"
	"github.com/nguyentantai21042004/brief-flow/pkg/executor"
)

var errNoAPIKey = errors.New("no API key configured: set GEMINI_API_KEYS, GEMINI_API_KEY or OPENAI_API_KEY")

// build wires a Processor from the loaded configuration. extra observers receive
// progress events next to the log. The returned store must be closed by the caller.
func build(ctx context.Context, c *config.Config, l logger.Logger, extra ...observer.Observer) (processor.Processor, runstore.Store, error) {
	completer, err := llm.New(l, c)
	if err != nil {
		return nil, nil, fmt.Errorf("create llm client: %w", err)
	}
	if completer == nil {
		return nil, nil, errNoAPIKey
	}

	seg, err := segmenter.New(l, segmenter.OptionsFromConfig(c.Chunking, splitter(ctx, c, l)))
	if err != nil {
		return nil, nil, fmt.Errorf("create segmenter: %w", err)
	}

	brief, err := analyzer.WithPromptFile(analyzer.BriefInstruction(), c.Analysis.PerChunkPrompt)
	if err != nil {
		return nil, nil, err
	}
	mergePrompt, err := analyzer.WithPromptFile(analyzer.Instruction{}, c.Analysis.MergePrompt)
	if err != nil {
		return nil, nil, err
	}

	store, err := runstore.Open(c.Paths.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open run store: %w", err)
	}

	obs := observer.Multi(append([]observer.Observer{observer.NewLog(l)}, extra...)...)
	a := analyzer.New(completer, c.Analysis.CallTimeout)
	proc := processor.New(c, processor.Deps{
		Segmenter:  seg,
		Dispatcher: dispatcher.New(c.Analysis.MaxWorkers, obs),
		Analyzer:   a,
		Brief:      brief,
		Questions:  questions.New(a, obs),
		Synthesizer: synthesizer.New(synthesizer.Options{
			Completer:   completer,
			Strategy:    c.Merge.Strategy,
			MergePrompt: mergePrompt.Prompt,
			WordBudget:  c.Merge.WordBudget,
			Timeout:     c.Analysis.MergeTimeout,
			Logger:      l,
		}),
		Transcriber: transcriber(c, l),
		Writer:      output.New(c.Paths.Output, l),
		Store:       store,
		Logger:      l,
	})
	return proc, store, nil
}

// splitter returns the embedding splitter for semantic chunking, or nil to use
// sentence grouping when no embedder can be built.
func splitter(ctx context.Context, c *config.Config, l logger.Logger) segmenter.Splitter {
	if c.Chunking.Strategy != config.StrategySemantic {
		return nil
	}
	e, err := embedding.New(ctx, c)
	if err != nil {
		l.Warn(ctx, "Embeddings unavailable, falling back to sentence grouping: %v", err)
		return nil
	}
	l.Info(ctx, "Semantic chunking with %s embeddings", e.ModelName())
	return segmenter.EmbeddingSplitter{Embedder: e}
}

// transcriber is nil when no whisper model is configured; audio inputs then fail.
func transcriber(c *config.Config, l logger.Logger) transcribe.Transcriber {
	if c.Whisper.ModelPath == "" {
		return nil
	}
	return transcribe.New(c.Whisper, c.Paths.Temp, executor.New(), l)
}
