package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Instruction is a task-specific request template.
type Instruction struct {
	Name   string
	System string
	Prompt string
	// Schema, when set, makes the call structured.
	Schema    *llm.Schema
	MaxTokens int
}

// Analyzer performs single bounded completion calls.
type Analyzer interface {
	// Analyze runs the free-text instruction over one chunk. Failure is a value.
	Analyze(ctx context.Context, c model.Chunk, in Instruction) model.UnitResult
	// Invoke runs in over arbitrary input and returns the raw response text.
	Invoke(ctx context.Context, in Instruction, input string) (string, error)
}
