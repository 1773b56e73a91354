package questions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

var ErrInvalidStageOutput = errors.New("invalid stage output")

func (p *implPipeline) Process(ctx context.Context, c model.Chunk) model.UnitResult {
	start := time.Now()
	r := model.NewResult(c)
	fail := func(stage string, err error) model.UnitResult {
		r.Elapsed = time.Since(start)
		r.Stage = model.StageFailed
		return r.Fail(fmt.Errorf("%s: %w", stage, err))
	}

	var summary model.Summary
	if err := p.stage(ctx, SummarizeInstruction(), c.Prompt(), &summary); err != nil {
		return fail("summarize", err)
	}
	if err := ValidateSummary(summary); err != nil {
		return fail("summarize", err)
	}
	p.advance(ctx, &r, model.StageSummarized)

	var critique model.Critique
	if err := p.stage(ctx, CritiqueInstruction(), FormatSummary(summary), &critique); err != nil {
		return fail("critique", err)
	}
	if err := ValidateCritique(critique); err != nil {
		return fail("critique", err)
	}
	p.advance(ctx, &r, model.StageCritiqued)

	var set model.QuestionSet
	if err := p.stage(ctx, RankInstruction(), FormatCritique(critique), &set); err != nil {
		return fail("rank", err)
	}
	if err := ValidateQuestions(set, 10); err != nil {
		return fail("rank", err)
	}
	p.advance(ctx, &r, model.StageRanked)

	r.Questions = &set
	r.Success = true
	r.Elapsed = time.Since(start)
	p.advance(ctx, &r, model.StageDone)
	return r
}

func (p *implPipeline) stage(ctx context.Context, in analyzer.Instruction, input string, out any) error {
	text, err := p.analyzer.Invoke(ctx, in, input)
	if err != nil {
		return err
	}
	return llm.DecodeJSON(text, out)
}

func (p *implPipeline) advance(ctx context.Context, r *model.UnitResult, stage string) {
	r.Stage = stage
	p.obs.StageCompleted(ctx, r.ChunkIndex, stage)
}

// ValidateSummary requires every summary list to be present.
func ValidateSummary(s model.Summary) error {
	switch {
	case len(s.MainPoints) == 0:
		return fmt.Errorf("%w: main_points is empty", ErrInvalidStageOutput)
	case len(s.Assumptions) == 0:
		return fmt.Errorf("%w: assumptions is empty", ErrInvalidStageOutput)
	case len(s.OpenLoops) == 0:
		return fmt.Errorf("%w: open_loops is empty", ErrInvalidStageOutput)
	}
	return nil
}

// ValidateCritique requires every critique list to be present.
func ValidateCritique(c model.Critique) error {
	switch {
	case len(c.WeakSpots) == 0:
		return fmt.Errorf("%w: weak_spots is empty", ErrInvalidStageOutput)
	case len(c.ContrarianAngles) == 0:
		return fmt.Errorf("%w: contrarian_angles is empty", ErrInvalidStageOutput)
	case len(c.FutureImplications) == 0:
		return fmt.Errorf("%w: future_implications is empty", ErrInvalidStageOutput)
	case len(c.Hooks) == 0:
		return fmt.Errorf("%w: hooks is empty", ErrInvalidStageOutput)
	}
	return nil
}

// ValidateQuestions requires at least one question, every rank in [1, maxRank]
// and no blank question text.
func ValidateQuestions(qs model.QuestionSet, maxRank int) error {
	if len(qs.Questions) == 0 {
		return fmt.Errorf("%w: questions is empty", ErrInvalidStageOutput)
	}
	for i, q := range qs.Questions {
		if q.Rank < 1 || q.Rank > maxRank {
			return fmt.Errorf("%w: question %d rank %d outside 1-%d", ErrInvalidStageOutput, i, q.Rank, maxRank)
		}
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: question %d is blank", ErrInvalidStageOutput, i)
		}
	}
	return nil
}
