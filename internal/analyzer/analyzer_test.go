package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	var got llm.Request
	a := New(llm.CompleterFunc(func(ctx context.Context, req llm.Request) (llm.Response, error) {
		got = req
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return llm.Response{Text: "  ## Approach Script\nHello  "}, nil
	}), time.Second)

	c := model.Chunk{Index: 2, Text: "[00:10 -> 00:20] body", Context: "tail", Words: 1, Start: 10 * time.Second, End: 20 * time.Second, Timed: true}
	r := a.Analyze(context.Background(), c, BriefInstruction())

	require.True(t, r.Success)
	assert.Equal(t, "## Approach Script\nHello", r.Analysis)
	assert.Equal(t, 2, r.ChunkIndex)
	assert.Equal(t, c.Text, r.ChunkText)
	assert.True(t, r.Timed)
	assert.Positive(t, r.Elapsed)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, llm.RoleSystem, got.Messages[0].Role)
	assert.Contains(t, got.Messages[1].Content, "## Transcript Chunk 3:\n\n[Previous context: ...tail]\n\n[00:10 -> 00:20] body")
	assert.Nil(t, got.Schema)
}

func TestAnalyzeFailures(t *testing.T) {
	tests := []struct {
		name      string
		completer llm.Completer
		want      error
	}{
		{"no completer", nil, ErrNoCompleter},
		{"service error", llm.CompleterFunc(func(context.Context, llm.Request) (llm.Response, error) {
			return llm.Response{}, llm.ErrRateLimited
		}), llm.ErrRateLimited},
		{"empty response", llm.CompleterFunc(func(context.Context, llm.Request) (llm.Response, error) {
			return llm.Response{Text: " \n"}, nil
		}), ErrEmptyAnalysis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.completer, time.Second)
			c := model.Chunk{Index: 0, Text: "hello"}
			r := a.Analyze(context.Background(), c, BriefInstruction())
			assert.False(t, r.Success)
			assert.Equal(t, "hello", r.ChunkText)
			assert.NotEmpty(t, r.Error)

			_, err := a.Invoke(context.Background(), BriefInstruction(), "x")
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrUnitAnalysis)
		})
	}
}

func TestInvokeTimeout(t *testing.T) {
	a := New(llm.CompleterFunc(func(ctx context.Context, req llm.Request) (llm.Response, error) {
		<-ctx.Done()
		return llm.Response{}, errors.Join(llm.ErrTimeout, ctx.Err())
	}), 20*time.Millisecond)

	start := time.Now()
	_, err := a.Invoke(context.Background(), Instruction{Name: "slow"}, "x")
	assert.ErrorIs(t, err, llm.ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestInvokeStructured(t *testing.T) {
	schema := llm.Object(map[string]*llm.Schema{"a": llm.String("")}, "a")
	var got llm.Request
	a := New(llm.CompleterFunc(func(ctx context.Context, req llm.Request) (llm.Response, error) {
		got = req
		return llm.Response{Text: `{"a":"b"}`}, nil
	}), time.Second)

	out, err := a.Invoke(context.Background(), Instruction{Name: "Probe", Prompt: "Do it.", Schema: schema}, "input")
	require.NoError(t, err)
	assert.Equal(t, `{"a":"b"}`, out)
	assert.Equal(t, schema, got.Schema)
	assert.Equal(t, "Probe", got.SchemaName)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Do it.\n\ninput", got.Messages[0].Content)
}

func TestWithPromptFile(t *testing.T) {
	in := BriefInstruction()

	same, err := WithPromptFile(in, "")
	require.NoError(t, err)
	assert.Equal(t, in, same)

	path := filepath.Join(t.TempDir(), "per_chunk.md")
	require.NoError(t, os.WriteFile(path, []byte("Custom prompt\n"), 0644))
	custom, err := WithPromptFile(in, path)
	require.NoError(t, err)
	assert.Equal(t, "Custom prompt", custom.Prompt)
	assert.Equal(t, in.System, custom.System)

	_, err = WithPromptFile(in, filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}
