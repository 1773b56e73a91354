package model

import "time"

// Artifact kinds.
const (
	KindBrief     = "brief"
	KindQuestions = "questions"
)

// Merge strategies recorded on an Artifact.
const (
	StrategyModel = "model"
	StrategyRules = "rules"
)

// Artifact is the synthesized, immutable result of a run.
type Artifact struct {
	Kind        string    `json:"kind"`
	GeneratedAt time.Time `json:"generated_at"`
	Strategy    string    `json:"strategy"`

	Total       int `json:"total_chunks"`
	Succeeded   int `json:"succeeded_chunks"`
	Failed      int `json:"failed_chunks"`
	SourceWords int `json:"source_words"`

	// Body is the merged document without the generation header.
	Body     string   `json:"body"`
	Items    []Item   `json:"items"`
	Warnings []string `json:"warnings,omitempty"`
}

// Item is one presented element of an Artifact with its provenance.
type Item struct {
	Section string `json:"section"`
	Text    string `json:"text"`
	// ChunkIndex is -1 when the item cannot be traced to a single chunk.
	ChunkIndex int            `json:"chunk_index"`
	At         *time.Duration `json:"at,omitempty"`
	Rank       int            `json:"rank,omitempty"`
	Reason     string         `json:"reason,omitempty"`
}
