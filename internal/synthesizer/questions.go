package synthesizer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/nguyentantai21042004/brief-flow/internal/questions"
)

const sectionTopQuestions = "top_questions"

type finalQuestions struct {
	TopQuestions []model.Question `json:"top_questions"`
}

func (s *implSynthesizer) MergeQuestions(ctx context.Context, results []model.UnitResult) (model.Artifact, error) {
	var ok []model.UnitResult
	for _, r := range model.Successful(results) {
		if r.Questions != nil && len(r.Questions.Questions) > 0 {
			ok = append(ok, r)
		}
	}
	if len(ok) == 0 {
		return model.Artifact{}, ErrNoSuccessfulUnits
	}
	art := s.newArtifact(model.KindQuestions, results, ok)

	if s.primary {
		top, err := s.primaryQuestions(ctx, ok)
		if err == nil {
			art.Strategy = model.StrategyModel
			art.Items = top
			art.Body = renderQuestions(top)
			return art, nil
		}
		s.l.Warn(ctx, "Model question merge failed, falling back to rule-based ranking: %v", err)
		art.Warnings = append(art.Warnings, err.Error())
	}

	art.Strategy = model.StrategyRules
	art.Items = RankQuestions(ok)
	art.Body = renderQuestions(art.Items)
	return art, nil
}

func (s *implSynthesizer) primaryQuestions(ctx context.Context, ok []model.UnitResult) ([]model.Item, error) {
	text, err := s.analyzer.Invoke(ctx, questions.MergeInstruction(), questions.FormatQuestionSets(ok))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePrimary, err)
	}
	var out finalQuestions
	if err := llm.DecodeJSON(text, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePrimary, err)
	}
	set := model.QuestionSet{Questions: out.TopQuestions}
	if err := questions.ValidateQuestions(set, maxQuestions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePrimary, err)
	}

	sort.SliceStable(out.TopQuestions, func(i, j int) bool {
		return out.TopQuestions[i].Rank < out.TopQuestions[j].Rank
	})
	items := make([]model.Item, 0, maxQuestions)
	for _, q := range limitQuestions(out.TopQuestions, maxQuestions) {
		items = append(items, model.Item{
			Section:    sectionTopQuestions,
			Text:       q.Question,
			ChunkIndex: sourceOf(q.Question, ok),
			Rank:       q.Rank,
			Reason:     q.LeverageReason,
		})
	}
	return items, nil
}

// RankQuestions is the rule-based question merge: deduplicate by exact text
// keeping the first occurrence, order by rank descending (stable), keep the top
// five and re-rank them 1 (best) to 5.
func RankQuestions(ok []model.UnitResult) []model.Item {
	type sourced struct {
		q     model.Question
		chunk int
	}
	seen := map[string]bool{}
	var all []sourced
	for _, r := range ok {
		if r.Questions == nil {
			continue
		}
		for _, q := range r.Questions.Questions {
			text := strings.TrimSpace(q.Question)
			if text == "" || seen[text] {
				continue
			}
			seen[text] = true
			q.Question = text
			all = append(all, sourced{q: q, chunk: r.ChunkIndex})
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].q.Rank > all[j].q.Rank })
	if len(all) > maxQuestions {
		all = all[:maxQuestions]
	}

	items := make([]model.Item, len(all))
	for i, s := range all {
		items[i] = model.Item{
			Section:    sectionTopQuestions,
			Text:       s.q.Question,
			ChunkIndex: s.chunk,
			Rank:       i + 1,
			Reason:     s.q.LeverageReason,
		}
	}
	return items
}

func sourceOf(question string, ok []model.UnitResult) int {
	question = strings.TrimSpace(question)
	for _, r := range ok {
		for _, q := range r.Questions.Questions {
			if strings.TrimSpace(q.Question) == question {
				return r.ChunkIndex
			}
		}
	}
	return -1
}

func limitQuestions(qs []model.Question, n int) []model.Question {
	if len(qs) > n {
		return qs[:n]
	}
	return qs
}

func renderQuestions(items []model.Item) string {
	var b strings.Builder
	b.WriteString("## Top Questions\n")
	for i, it := range items {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, it.Text)
		if it.Reason != "" {
			fmt.Fprintf(&b, "   → %s\n", it.Reason)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
