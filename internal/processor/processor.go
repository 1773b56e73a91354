package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/dispatcher"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/nguyentantai21042004/brief-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/brief-flow/internal/transcribe"
)

// ErrNoTranscriber is returned for audio input when no Transcriber is configured.
var ErrNoTranscriber = errors.New("audio input requires a transcriber")

// Process runs the pipeline and moves the input to the archive folder.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	run, err := p.Run(ctx, path)
	if err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Run %s completed: %d/%d chunks analyzed, merge=%s", run.ID, run.Artifact.Succeeded, run.Artifact.Total, run.Artifact.Strategy)
	p.logger.Info(ctx, "Output: %s", run.OutputPath)
	p.logger.Info(ctx, "Processing time: %s", run.Elapsed())
	p.logger.Info(ctx, "========================================")
	return nil
}

// Run reads or transcribes the input, segments it, analyzes every chunk,
// synthesizes the artifact, writes the outputs and records the run.
func (p *implProcessor) Run(ctx context.Context, path string) (model.Run, error) {
	run := model.Run{
		ID:        p.NewID(),
		Source:    path,
		Name:      RunName(path),
		Mode:      p.cfg.Mode,
		Chunking:  p.cfg.Chunking.Strategy,
		StartedAt: p.Now(),
	}
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting run %s (%s, %s chunking): %s", run.ID, run.Mode, run.Chunking, path)
	p.logger.Info(ctx, "========================================")

	err := p.execute(ctx, path, &run)
	run.FinishedAt = p.Now()
	if err != nil {
		run.Error = err.Error()
	}
	p.record(ctx, run)
	return run, err
}

func (p *implProcessor) execute(ctx context.Context, path string, run *model.Run) error {
	text, err := p.readTranscript(ctx, path, run)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	chunks, err := p.Segmenter.Segment(ctx, text)
	if err != nil {
		return fmt.Errorf("segment: %w", err)
	}
	run.Chunks = chunks

	run.Results, _ = p.Dispatcher.RunAll(ctx, chunks, p.analyzeFunc())

	paths, err := p.Writer.WritePartials(ctx, *run)
	if err != nil {
		return fmt.Errorf("write partials: %w", err)
	}
	run.OutputPath = paths.Dir

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	var art model.Artifact
	if p.cfg.Mode == config.ModeQuestions {
		art, err = p.Synthesizer.MergeQuestions(ctx, run.Results)
	} else {
		art, err = p.Synthesizer.MergeBrief(ctx, run.Results)
	}
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	run.Artifact = art
	run.Document = synthesizer.Render(art)

	if _, err := p.Writer.WriteDocument(ctx, *run, paths); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// analyzeFunc selects the per-chunk analysis of the configured mode.
func (p *implProcessor) analyzeFunc() dispatcher.AnalyzeFunc {
	if p.cfg.Mode == config.ModeQuestions {
		return p.Questions.Process
	}
	return func(ctx context.Context, c model.Chunk) model.UnitResult {
		return p.Analyzer.Analyze(ctx, c, p.Brief)
	}
}

func (p *implProcessor) readTranscript(ctx context.Context, path string, run *model.Run) (string, error) {
	if !transcribe.IsAudio(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if p.Transcriber == nil {
		return "", fmt.Errorf("%w: %s", ErrNoTranscriber, path)
	}
	text, err := p.Transcriber.Transcribe(ctx, path)
	if err != nil {
		return "", err
	}
	run.Transcript = text
	return text, nil
}

func (p *implProcessor) record(ctx context.Context, run model.Run) {
	if p.Store == nil {
		return
	}
	if err := p.Store.Record(ctx, run); err != nil {
		p.logger.Warn(ctx, "Failed to record run %s: %v", run.ID, err)
	}
}

// RunName derives the output folder name from the input file name.
func RunName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Join(strings.Fields(base), "_")
}
