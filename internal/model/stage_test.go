package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuestionSetTop(t *testing.T) {
	tests := []struct {
		name   string
		set    QuestionSet
		want   string
		wantOK bool
	}{
		{"empty", QuestionSet{}, "", false},
		{"single", QuestionSet{Questions: []Question{{Rank: 3, Question: "a?"}}}, "a?", true},
		{
			name: "tie keeps first seen",
			set: QuestionSet{Questions: []Question{
				{Rank: 7, Question: "low?"},
				{Rank: 9, Question: "first nine?"},
				{Rank: 9, Question: "second nine?"},
			}},
			want:   "first nine?",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.set.Top()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Question)
		})
	}
}

func TestStats(t *testing.T) {
	results := []UnitResult{{Success: true}, {Success: false}, {Success: true}}
	assert.Equal(t, Counts{Total: 3, Succeeded: 2, Failed: 1}, Stats(results))
	assert.Len(t, Successful(results), 2)
}

func TestResultKeepsChunkTextOnFailure(t *testing.T) {
	c := Chunk{Index: 2, Text: "[00:10 -> 00:20] hi", Words: 1, Start: 10 * time.Second, End: 20 * time.Second, Timed: true}
	r := NewResult(c).Fail(errors.New("boom"))

	assert.False(t, r.Success)
	assert.Equal(t, "boom", r.Error)
	assert.Equal(t, c.Text, r.ChunkText)
	assert.True(t, r.Covers(15*time.Second))
	assert.False(t, r.Covers(25*time.Second))
}

func TestChunkPrompt(t *testing.T) {
	assert.Equal(t, "body", Chunk{Text: "body"}.Prompt())
	assert.Equal(t, "[Previous context: ...tail]\n\nbody", Chunk{Text: "body", Context: "tail"}.Prompt())
}
