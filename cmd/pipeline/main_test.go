package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf)
	ctx := context.Background()

	p.ChunkStarted(ctx, 0, 2)
	p.ChunkSucceeded(ctx, model.UnitResult{ChunkIndex: 1, Elapsed: 1500 * time.Millisecond})
	p.ChunkFailed(ctx, model.UnitResult{ChunkIndex: 0, Elapsed: 20 * time.Millisecond})

	assert.Equal(t, "  [1] chunk 2 ok (1.5s)\n  [2] chunk 1 failed (20ms)\n", buf.String())
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	c := &config.Config{Paths: config.PathsConfig{
		Input:    filepath.Join(root, "in"),
		Output:   filepath.Join(root, "out"),
		Archived: filepath.Join(root, "archived"),
		Temp:     filepath.Join(root, "tmp"),
	}}
	require.NoError(t, ensureDirectories(c))
	assert.DirExists(t, c.Paths.Archived)
	assert.DirExists(t, c.Paths.Temp)
}

func TestApplyOverrides(t *testing.T) {
	cfg = &config.Config{Paths: config.PathsConfig{Input: "in", Output: "out"}}
	require.NoError(t, cfg.Validate())
	defer func() { runMode, runStrategy, runMerge, cfg = "", "", "", nil }()

	runMode, runStrategy, runMerge = config.ModeQuestions, config.StrategySemantic, config.MergeRules
	require.NoError(t, applyOverrides(runCmd))
	assert.Equal(t, config.ModeQuestions, cfg.Mode)
	assert.Equal(t, config.StrategySemantic, cfg.Chunking.Strategy)
	assert.Equal(t, config.MergeRules, cfg.Merge.Strategy)

	runMode = "poem"
	assert.Error(t, applyOverrides(runCmd))
	assert.NoError(t, applyOverrides(historyCmd), "other commands ignore run flags")
}
