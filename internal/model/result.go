package model

import "time"

// Stage names recorded on a UnitResult produced by the question pipeline.
const (
	StageSummarized = "summarized"
	StageCritiqued  = "critiqued"
	StageRanked     = "ranked"
	StageDone       = "done"
	StageFailed     = "failed"
)

// UnitResult is the outcome of analyzing exactly one chunk.
type UnitResult struct {
	ChunkIndex int    `json:"chunk_index"`
	ChunkText  string `json:"chunk_text"`
	Success    bool   `json:"success"`

	// Analysis holds the free-text payload of the brief variant.
	Analysis string `json:"analysis,omitempty"`
	// Questions holds the final stage output of the question variant.
	Questions *QuestionSet `json:"questions,omitempty"`
	Stage     string       `json:"stage,omitempty"`

	Error   string        `json:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
	Words   int           `json:"word_count"`

	Start time.Duration `json:"start,omitempty"`
	End   time.Duration `json:"end,omitempty"`
	Timed bool          `json:"timed"`
}

// NewResult seeds a UnitResult with the chunk's identity and provenance.
func NewResult(c Chunk) UnitResult {
	return UnitResult{
		ChunkIndex: c.Index,
		ChunkText:  c.Text,
		Words:      c.Words,
		Start:      c.Start,
		End:        c.End,
		Timed:      c.Timed,
	}
}

// Fail marks the result as failed with a human-readable reason.
func (r UnitResult) Fail(err error) UnitResult {
	r.Success = false
	r.Error = err.Error()
	return r
}

// Covers reports whether at falls inside the source chunk's timestamp range.
func (r UnitResult) Covers(at time.Duration) bool {
	return r.Timed && at >= r.Start && at <= r.End
}

// Counts summarizes a result set.
type Counts struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Stats counts succeeded and failed results.
func Stats(results []UnitResult) Counts {
	c := Counts{Total: len(results)}
	for _, r := range results {
		if r.Success {
			c.Succeeded++
		} else {
			c.Failed++
		}
	}
	return c
}

// Successful returns the successful results in their original order.
func Successful(results []UnitResult) []UnitResult {
	out := make([]UnitResult, 0, len(results))
	for _, r := range results {
		if r.Success {
			out = append(out, r)
		}
	}
	return out
}
