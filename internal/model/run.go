package model

import "time"

// Run is everything one pipeline execution produced.
type Run struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	Chunking string `json:"chunking"`

	Chunks   []Chunk      `json:"chunks"`
	Results  []UnitResult `json:"results"`
	Artifact Artifact     `json:"artifact"`
	// Transcript is set when the source was audio and had to be transcribed.
	Transcript string `json:"-"`
	// Document is the rendered markdown of Artifact.
	Document string `json:"-"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	OutputPath string    `json:"output_path,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Elapsed is the wall time of the run.
func (r Run) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
