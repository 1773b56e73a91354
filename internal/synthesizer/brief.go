package synthesizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

const mergeSystem = "You are an expert at synthesizing and merging content analysis. Follow the instructions precisely."

const mergeInstructions = `You have multiple partial outputs from different segments of the same talk. Merge them into ONE final output with the same four sections:

## Approach Script
Three sentences.

## Five High-Signal Questions
At most two lines each, each tied to a timestamp.

## Timeline Highlights
8-12 bullets of the form "- [MM:SS] ...", chronological, no duplicates.

## Key Claims, Assumptions, Trade-offs
Deduplicated, concise lists under **Claims:**, **Assumptions:** and **Trade-offs:**.

Instructions:
- Deduplicate overlapping items.
- Preserve timestamps; if duplicates have the same timestamp, merge wording.
- Keep total output under %d words.
- Ensure sections flow naturally as if they came from one continuous talk.
- Return clean markdown-formatted text.`

func (s *implSynthesizer) MergeBrief(ctx context.Context, results []model.UnitResult) (model.Artifact, error) {
	ok := model.Successful(results)
	if len(ok) == 0 {
		return model.Artifact{}, ErrNoSuccessfulUnits
	}
	art := s.newArtifact(model.KindBrief, results, ok)

	if s.primary {
		body, err := s.primaryBrief(ctx, ok)
		if err == nil {
			art.Strategy = model.StrategyModel
			art.Body = body
			art.Items = parsedItems(body, results)
			return art, nil
		}
		s.l.Warn(ctx, "Model merge failed, falling back to rule-based merging: %v", err)
		art.Warnings = append(art.Warnings, err.Error())
	}

	brief, warnings := RuleMerge(ok, results)
	for _, w := range warnings {
		s.l.Warn(ctx, "%s", w)
	}
	art.Strategy = model.StrategyRules
	art.Body = brief.Markdown()
	art.Items = brief.Items()
	art.Warnings = append(art.Warnings, warnings...)
	return art, nil
}

func (s *implSynthesizer) primaryBrief(ctx context.Context, ok []model.UnitResult) (string, error) {
	prompt := s.mergePrompt
	if prompt == "" {
		prompt = fmt.Sprintf(mergeInstructions, s.wordBudget)
	}
	in := analyzer.Instruction{Name: "merge_brief", System: mergeSystem, Prompt: prompt, MaxTokens: 2000}

	body, err := s.analyzer.Invoke(ctx, in, LabelPartials(ok))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMergePrimary, err)
	}
	return body, nil
}

// LabelPartials concatenates analyses under "=== CHUNK n ANALYSIS ===" labels (1-based).
func LabelPartials(results []model.UnitResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("=== CHUNK %d ANALYSIS ===\n%s", r.ChunkIndex+1, r.Analysis))
	}
	return strings.Join(parts, "\n\n")
}

func (s *implSynthesizer) newArtifact(kind string, all, ok []model.UnitResult) model.Artifact {
	counts := model.Stats(all)
	words := 0
	for _, r := range ok {
		words += r.Words
	}
	return model.Artifact{
		Kind:        kind,
		GeneratedAt: s.now(),
		Total:       counts.Total,
		Succeeded:   counts.Succeeded,
		Failed:      counts.Failed,
		SourceWords: words,
	}
}
