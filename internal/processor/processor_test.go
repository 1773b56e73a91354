package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/dispatcher"
	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/nguyentantai21042004/brief-flow/internal/output"
	"github.com/nguyentantai21042004/brief-flow/internal/questions"
	"github.com/nguyentantai21042004/brief-flow/internal/runstore"
	"github.com/nguyentantai21042004/brief-flow/internal/segmenter"
	"github.com/nguyentantai21042004/brief-flow/internal/synthesizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transcript = "# Transcript\nAudio: talk.wav\n\n[00:00 -> 00:10] one two three four\n[00:10 -> 00:20] five six seven eight\n[00:20 -> 00:30] nine ten"

type harness struct {
	proc  Processor
	store runstore.Store
	cfg   *config.Config
	dir   string
}

type fakeTranscriber struct{ text string }

func (f fakeTranscriber) Transcribe(context.Context, string) (string, error) { return f.text, nil }

func newHarness(t *testing.T, mode string, c llm.Completer, tr *fakeTranscriber) harness {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Mode:     mode,
		Chunking: config.ChunkingConfig{Strategy: config.StrategyFixed, TargetWords: 4},
		Merge:    config.MergeConfig{Strategy: config.MergeRules},
		Paths: config.PathsConfig{
			Input:    filepath.Join(dir, "input"),
			Output:   filepath.Join(dir, "output"),
			Archived: filepath.Join(dir, "archived"),
		},
	}
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0755))

	l := logger.NewNop()
	seg, err := segmenter.New(l, segmenter.OptionsFromConfig(cfg.Chunking, nil))
	require.NoError(t, err)
	store, err := runstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	a := analyzer.New(c, time.Second)
	d := Deps{
		Segmenter:   seg,
		Dispatcher:  dispatcher.New(2, nil),
		Analyzer:    a,
		Brief:       analyzer.BriefInstruction(),
		Questions:   questions.New(a, nil),
		Synthesizer: synthesizer.New(synthesizer.Options{Completer: c, Strategy: cfg.Merge.Strategy}),
		Writer:      output.New(cfg.Paths.Output, l),
		Store:       store,
		Logger:      l,
		NewID:       func() string { return "run-1" },
	}
	if tr != nil {
		d.Transcriber = tr
	}
	return harness{proc: New(cfg, d), store: store, cfg: cfg, dir: dir}
}

func (h harness) input(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(h.cfg.Paths.Input, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// briefCompleter answers every chunk except failChunk with a four-section analysis.
func briefCompleter(failChunk int) llm.Completer {
	return llm.CompleterFunc(func(ctx context.Context, req llm.Request) (llm.Response, error) {
		content := req.Messages[len(req.Messages)-1].Content
		if failChunk > 0 && strings.Contains(content, "## Transcript Chunk "+string(rune('0'+failChunk))+":") {
			return llm.Response{}, llm.ErrRateLimited
		}
		return llm.Response{Text: "## Approach Script\nOpen with numbers.\n\n## Timeline Highlights\n- [00:05] counting\n"}, nil
	})
}

func TestRunBrief(t *testing.T) {
	h := newHarness(t, config.ModeBrief, briefCompleter(2), nil)
	path := h.input(t, "team sync.txt", transcript)

	run, err := h.proc.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, "team_sync", run.Name)
	require.Len(t, run.Chunks, 3)
	require.Len(t, run.Results, 3)
	assert.False(t, run.Results[1].Success)
	assert.Equal(t, 3, run.Artifact.Total)
	assert.Equal(t, 1, run.Artifact.Failed)
	assert.Equal(t, model.StrategyRules, run.Artifact.Strategy)
	assert.True(t, strings.HasPrefix(run.Document, "# Audio Brief\n"))
	assert.Empty(t, run.Transcript)

	assert.FileExists(t, filepath.Join(h.cfg.Paths.Output, "team_sync", "team_sync_brief.md"))
	assert.FileExists(t, filepath.Join(h.cfg.Paths.Output, "team_sync", "partials", "chunk_02.json"))
	assert.FileExists(t, path, "Run leaves the input in place")

	e, err := h.store.Get(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, 1, e.Failed)
	assert.Empty(t, e.Error)
}

func TestProcessArchivesInput(t *testing.T) {
	h := newHarness(t, config.ModeBrief, briefCompleter(0), nil)
	path := h.input(t, "talk.txt", transcript)

	require.NoError(t, h.proc.Process(context.Background(), path))
	assert.NoFileExists(t, path)
	assert.FileExists(t, filepath.Join(h.cfg.Paths.Archived, "talk.txt"))
}

func TestRunAllChunksFail(t *testing.T) {
	failAll := llm.CompleterFunc(func(context.Context, llm.Request) (llm.Response, error) {
		return llm.Response{}, llm.ErrAuth
	})
	h := newHarness(t, config.ModeBrief, failAll, nil)
	path := h.input(t, "talk.txt", transcript)

	run, err := h.proc.Run(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, synthesizer.ErrNoSuccessfulUnits)
	assert.Len(t, run.Results, 3)

	e, err := h.store.Get(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, 3, e.Failed)
	assert.Contains(t, e.Error, "no successful units")

	dir := filepath.Join(h.cfg.Paths.Output, "talk")
	assert.Equal(t, dir, run.OutputPath)
	assert.FileExists(t, filepath.Join(dir, "chunks.json"))
	assert.FileExists(t, filepath.Join(dir, "partials", "chunk_01.json"))
	assert.FileExists(t, filepath.Join(dir, "partials", "chunk_03.json"))
	assert.NoFileExists(t, filepath.Join(dir, "talk_brief.md"))

	assert.Error(t, h.proc.Process(context.Background(), path))
	assert.FileExists(t, path, "failed inputs are not archived")
}

func TestRunAudio(t *testing.T) {
	h := newHarness(t, config.ModeBrief, briefCompleter(0), nil)
	_, err := h.proc.Run(context.Background(), h.input(t, "talk.mp3", "binary"))
	assert.ErrorIs(t, err, ErrNoTranscriber)

	h = newHarness(t, config.ModeBrief, briefCompleter(0), &fakeTranscriber{text: transcript})
	run, err := h.proc.Run(context.Background(), h.input(t, "talk.mp3", "binary"))
	require.NoError(t, err)
	assert.Equal(t, transcript, run.Transcript)
	assert.FileExists(t, filepath.Join(h.cfg.Paths.Output, "talk", "transcript.txt"))
}

func TestRunQuestions(t *testing.T) {
	responses := map[string]string{
		"SummarizationOutput":      `{"main_points":["p"],"evidence":[{"point":"p","evidence_items":["e"]}],"assumptions":["a"],"open_loops":["o"]}`,
		"CriticalThinkingOutput":   `{"weak_spots":["w"],"contrarian_angles":["c"],"future_implications":["f"],"hooks":["h"]}`,
		"QuestionGenerationOutput": `{"questions":[{"rank":8,"question":"Why count?","leverage_reason":"r"}]}`,
	}
	c := llm.CompleterFunc(func(ctx context.Context, req llm.Request) (llm.Response, error) {
		text, ok := responses[req.SchemaName]
		if !ok {
			return llm.Response{}, errors.New("unexpected call " + req.SchemaName)
		}
		return llm.Response{Text: text}, nil
	})
	h := newHarness(t, config.ModeQuestions, c, nil)

	run, err := h.proc.Run(context.Background(), h.input(t, "talk.txt", transcript))
	require.NoError(t, err)
	assert.Equal(t, model.KindQuestions, run.Artifact.Kind)
	require.Len(t, run.Artifact.Items, 1)
	assert.Equal(t, "Why count?", run.Artifact.Items[0].Text)
	for _, r := range run.Results {
		assert.Equal(t, model.StageDone, r.Stage)
	}
	assert.FileExists(t, filepath.Join(h.cfg.Paths.Output, "talk", "talk_questions.md"))
}

func TestRunCancelled(t *testing.T) {
	h := newHarness(t, config.ModeBrief, briefCompleter(0), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.proc.Run(ctx, h.input(t, "talk.txt", transcript))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunName(t *testing.T) {
	assert.Equal(t, "weekly_team_sync", RunName("/in/weekly team  sync.txt"))
	assert.Equal(t, "talk", RunName("talk.mp3"))
}
