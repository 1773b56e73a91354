package analyzer

import (
	"fmt"
	"os"
	"strings"
)

const briefSystem = "You are an expert at analyzing conference talks and creating actionable insights."

const briefPrompt = `Analyze the transcript chunk below and answer with exactly these four markdown sections:

## Approach Script
Three sentences someone could use to open a conversation with the speaker about this segment.

## Five High-Signal Questions
Five questions, at most two lines each, each ending with the timestamp it refers to.

## Timeline Highlights
Bullets of the form "- [MM:SS] what happened", in chronological order.

## Key Claims, Assumptions, Trade-offs
**Claims:** bullets starting with "-"
**Assumptions:** bullets starting with "-"
**Trade-offs:** bullets starting with "-"

Be concise. Keep timestamps exactly as they appear in the transcript.`

// BriefInstruction is the default per-chunk instruction of the brief variant.
func BriefInstruction() Instruction {
	return Instruction{Name: "chunk_brief", System: briefSystem, Prompt: briefPrompt, MaxTokens: 1500}
}

// WithPromptFile replaces in.Prompt with the contents of path. An empty path is a no-op.
func WithPromptFile(in Instruction, path string) (Instruction, error) {
	if path == "" {
		return in, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read prompt %s: %w", path, err)
	}
	if p := strings.TrimSpace(string(data)); p != "" {
		in.Prompt = p
	}
	return in, nil
}
