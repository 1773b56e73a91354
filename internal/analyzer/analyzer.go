package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

var (
	ErrUnitAnalysis  = errors.New("unit analysis failed")
	ErrNoCompleter   = errors.New("completion service not configured")
	ErrEmptyAnalysis = errors.New("empty analysis")
)

func (a *implAnalyzer) Analyze(ctx context.Context, c model.Chunk, in Instruction) model.UnitResult {
	start := time.Now()
	r := model.NewResult(c)

	input := fmt.Sprintf("## Transcript Chunk %d:\n\n%s", c.Index+1, c.Prompt())
	text, err := a.Invoke(ctx, in, input)
	r.Elapsed = time.Since(start)
	if err != nil {
		return r.Fail(err)
	}

	r.Success = true
	r.Analysis = text
	return r
}

func (a *implAnalyzer) Invoke(ctx context.Context, in Instruction, input string) (string, error) {
	if a.completer == nil {
		return "", fmt.Errorf("%w: %w", ErrUnitAnalysis, ErrNoCompleter)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req := llm.Request{
		Messages:   messages(in, input),
		Schema:     in.Schema,
		SchemaName: in.Name,
		MaxTokens:  in.MaxTokens,
	}
	resp, err := a.completer.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnitAnalysis, in.Name, err)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: %s: %w", ErrUnitAnalysis, in.Name, ErrEmptyAnalysis)
	}
	return text, nil
}

func messages(in Instruction, input string) []llm.Message {
	var msgs []llm.Message
	if in.System != "" {
		msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: in.System})
	}
	user := input
	if in.Prompt != "" {
		user = in.Prompt + "\n\n" + input
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: user})
}
