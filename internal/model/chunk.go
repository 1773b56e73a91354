package model

import (
	"fmt"
	"time"
)

// Chunk is a contiguous, read-only unit of transcript text produced by the segmenter.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	// Context is the tail of the previous chunk, used only when building prompts.
	Context string `json:"context,omitempty"`
	Words   int    `json:"words"`
	Chars   int    `json:"chars"`

	Start time.Duration `json:"start,omitempty"`
	End   time.Duration `json:"end,omitempty"`
	Timed bool          `json:"timed"`
}

// Prompt returns the chunk text with the overlap block prepended when present.
func (c Chunk) Prompt() string {
	if c.Context == "" {
		return c.Text
	}
	return fmt.Sprintf("[Previous context: ...%s]\n\n%s", c.Context, c.Text)
}

// Covers reports whether at falls inside the chunk's timestamp range.
func (c Chunk) Covers(at time.Duration) bool {
	return c.Timed && at >= c.Start && at <= c.End
}
