package questions

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/nguyentantai21042004/brief-flow/internal/observer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	summaryJSON  = `{"main_points":["AI costs fall"],"evidence":[{"point":"AI costs fall","evidence_items":["GPU prices"]}],"assumptions":["demand holds"],"open_loops":["who pays?"]}`
	critiqueJSON = `{"weak_spots":["w"],"contrarian_angles":["c"],"future_implications":["f"],"hooks":["h"]}`
	rankJSON     = "```json\n" + `{"questions":[{"rank":7,"question":"Why now?","leverage_reason":"timing"},{"rank":9,"question":"Who loses?","leverage_reason":"stakes"},{"rank":9,"question":"What breaks?","leverage_reason":"limits"}]}` + "\n```"
)

type stageRecorder struct {
	mu     sync.Mutex
	stages []string
}

func (s *stageRecorder) ChunkStarted(context.Context, int, int)           {}
func (s *stageRecorder) ChunkSucceeded(context.Context, model.UnitResult) {}
func (s *stageRecorder) ChunkFailed(context.Context, model.UnitResult)    {}
func (s *stageRecorder) RunFinished(context.Context, observer.Summary)    {}
func (s *stageRecorder) StageCompleted(_ context.Context, _ int, stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stages = append(s.stages, stage)
}

// scripted answers each stage by schema name; fail names the stage that errors.
func scripted(t *testing.T, responses map[string]string, fail string, inputs map[string]string) llm.Completer {
	return llm.CompleterFunc(func(ctx context.Context, req llm.Request) (llm.Response, error) {
		if inputs != nil {
			inputs[req.SchemaName] = req.Messages[len(req.Messages)-1].Content
		}
		if req.SchemaName == fail {
			return llm.Response{}, llm.ErrTransport
		}
		text, ok := responses[req.SchemaName]
		if !ok {
			t.Errorf("unexpected stage %q", req.SchemaName)
		}
		return llm.Response{Text: text}, nil
	})
}

var allStages = map[string]string{
	"SummarizationOutput":      summaryJSON,
	"CriticalThinkingOutput":   critiqueJSON,
	"QuestionGenerationOutput": rankJSON,
}

func TestProcessRunsAllStages(t *testing.T) {
	inputs := map[string]string{}
	rec := &stageRecorder{}
	p := New(analyzer.New(scripted(t, allStages, "", inputs), time.Second), rec)

	c := model.Chunk{Index: 1, Text: "talk text", Words: 2}
	r := p.Process(context.Background(), c)

	require.True(t, r.Success, r.Error)
	assert.Equal(t, model.StageDone, r.Stage)
	require.NotNil(t, r.Questions)
	assert.Len(t, r.Questions.Questions, 3)

	top, ok := r.Questions.Top()
	require.True(t, ok)
	assert.Equal(t, "Who loses?", top.Question)

	assert.Equal(t, []string{model.StageSummarized, model.StageCritiqued, model.StageRanked, model.StageDone}, rec.stages)
	assert.Contains(t, inputs["SummarizationOutput"], "talk text")
	assert.True(t, strings.HasSuffix(inputs["CriticalThinkingOutput"], FormatSummary(mustSummary(t))))
	assert.Contains(t, inputs["QuestionGenerationOutput"], "CRITICAL ANALYSIS:")
}

func TestProcessFailsFast(t *testing.T) {
	tests := []struct {
		name      string
		responses map[string]string
		fail      string
		wantErr   string
		wantCalls []string
	}{
		{
			name:      "summarize service error",
			responses: allStages,
			fail:      "SummarizationOutput",
			wantErr:   "summarize:",
			wantCalls: []string{"SummarizationOutput"},
		},
		{
			name: "critique malformed",
			responses: map[string]string{
				"SummarizationOutput":    summaryJSON,
				"CriticalThinkingOutput": `{"weak_spots":`,
			},
			wantErr:   "critique:",
			wantCalls: []string{"SummarizationOutput", "CriticalThinkingOutput"},
		},
		{
			name: "rank out of range",
			responses: map[string]string{
				"SummarizationOutput":      summaryJSON,
				"CriticalThinkingOutput":   critiqueJSON,
				"QuestionGenerationOutput": `{"questions":[{"rank":11,"question":"q?","leverage_reason":"r"}]}`,
			},
			wantErr:   "rank:",
			wantCalls: []string{"SummarizationOutput", "CriticalThinkingOutput", "QuestionGenerationOutput"},
		},
		{
			name: "summary missing lists",
			responses: map[string]string{
				"SummarizationOutput": `{"main_points":[],"evidence":[],"assumptions":[],"open_loops":[]}`,
			},
			wantErr:   "summarize:",
			wantCalls: []string{"SummarizationOutput"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := map[string]string{}
			p := New(analyzer.New(scripted(t, tt.responses, tt.fail, inputs), time.Second), nil)

			r := p.Process(context.Background(), model.Chunk{Index: 0, Text: "talk"})
			assert.False(t, r.Success)
			assert.Equal(t, model.StageFailed, r.Stage)
			assert.Contains(t, r.Error, tt.wantErr)
			assert.Equal(t, "talk", r.ChunkText)
			assert.Nil(t, r.Questions)

			var called []string
			for _, name := range []string{"SummarizationOutput", "CriticalThinkingOutput", "QuestionGenerationOutput"} {
				if _, ok := inputs[name]; ok {
					called = append(called, name)
				}
			}
			assert.Equal(t, tt.wantCalls, called)
		})
	}
}

func TestValidateQuestions(t *testing.T) {
	assert.ErrorIs(t, ValidateQuestions(model.QuestionSet{}, 10), ErrInvalidStageOutput)
	assert.ErrorIs(t, ValidateQuestions(model.QuestionSet{Questions: []model.Question{{Rank: 0, Question: "q?"}}}, 10), ErrInvalidStageOutput)
	assert.ErrorIs(t, ValidateQuestions(model.QuestionSet{Questions: []model.Question{{Rank: 3, Question: " "}}}, 10), ErrInvalidStageOutput)
	assert.NoError(t, ValidateQuestions(model.QuestionSet{Questions: []model.Question{{Rank: 5, Question: "q?"}}}, 5))
	assert.Error(t, ValidateQuestions(model.QuestionSet{Questions: []model.Question{{Rank: 6, Question: "q?"}}}, 5))
}

func TestFormatting(t *testing.T) {
	s := mustSummary(t)
	assert.Equal(t, "STRUCTURED SUMMARY:\n\nMain Points:\n• AI costs fall\n\nEvidence:\n• AI costs fall:\n  - GPU prices\n\nAssumptions:\n• demand holds\n\nOpen Loops:\n• who pays?\n", FormatSummary(s))

	c := model.Critique{WeakSpots: []string{"w"}, ContrarianAngles: []string{"c"}, FutureImplications: []string{"f"}, Hooks: []string{"h"}}
	assert.Equal(t, "CRITICAL ANALYSIS:\n\nWeak Spots:\n• w\n\nContrarian Angles:\n• c\n\nFuture Implications:\n• f\n\nHooks:\n• h\n", FormatCritique(c))

	sets := FormatQuestionSets([]model.UnitResult{
		{ChunkIndex: 0, Success: true, Questions: &model.QuestionSet{Questions: []model.Question{{Rank: 8, Question: "Why?", LeverageReason: "depth"}}}},
		{ChunkIndex: 1, Success: false, Error: "boom"},
	})
	assert.Equal(t, "ALL QUESTION SETS:\n\nChunk 1 Questions:\n[8] Why? → depth\n\n", sets)
}

func mustSummary(t *testing.T) model.Summary {
	t.Helper()
	var s model.Summary
	require.NoError(t, llm.DecodeJSON(summaryJSON, &s))
	return s
}
