package runstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(id string, started time.Time) model.Run {
	return model.Run{
		ID:       id,
		Source:   "talk.txt",
		Mode:     model.KindBrief,
		Chunking: "fixed",
		Results:  []model.UnitResult{{Success: true}, {Success: false}},
		Artifact: model.Artifact{
			Strategy:    model.StrategyRules,
			Total:       2,
			Succeeded:   1,
			Failed:      1,
			SourceWords: 640,
		},
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		OutputPath: "out/talk",
	}
}

func TestRecordAndGet(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	started := time.UnixMilli(1767225600000)

	require.NoError(t, s.Record(ctx, sampleRun("a", started)))

	e, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "talk.txt", e.Source)
	assert.Equal(t, model.StrategyRules, e.Merge)
	assert.Equal(t, 2, e.Total)
	assert.Equal(t, 1, e.Succeeded)
	assert.Equal(t, 1, e.Failed)
	assert.Equal(t, 640, e.Words)
	assert.True(t, started.Equal(e.StartedAt()))
	assert.Equal(t, 1500*time.Millisecond, e.Elapsed())
}

func TestRecordFailedRunWithoutArtifact(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	run := model.Run{
		ID:        "f",
		Source:    "x.txt",
		Mode:      model.KindQuestions,
		Chunking:  "semantic",
		Results:   []model.UnitResult{{Success: false}, {Success: false}},
		StartedAt: time.Now(),
		Error:     "no successful units to merge",
	}
	require.NoError(t, s.Record(ctx, run))

	e, err := s.Get(ctx, "f")
	require.NoError(t, err)
	assert.Equal(t, 2, e.Total)
	assert.Equal(t, 2, e.Failed)
	assert.Equal(t, "no successful units to merge", e.Error)
}

func TestGetMissing(t *testing.T) {
	_, err := openMemory(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	base := time.UnixMilli(1767225600000)

	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, s.Record(ctx, sampleRun(id, base.Add(time.Duration(i)*time.Hour))))
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})

	two, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestRecordReplaces(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	run := sampleRun("a", time.Now())
	require.NoError(t, s.Record(ctx, run))

	run.Error = "archive failed"
	require.NoError(t, s.Record(ctx, run))

	all, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "archive failed", all[0].Error)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), sampleRun("a", time.Now())))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.Get(context.Background(), "a")
	assert.NoError(t, err)
}
