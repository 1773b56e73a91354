package output

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Writer persists the data structures of a run. WritePartials runs before
// merging so per-chunk results survive a failed merge.
type Writer interface {
	WritePartials(ctx context.Context, run model.Run) (Paths, error)
	WriteDocument(ctx context.Context, run model.Run, p Paths) (Paths, error)
}

// Paths lists the files written for one run.
type Paths struct {
	Dir      string
	Chunks   string
	Partials []string
	Markdown string
	// Transcript is empty unless the run transcribed audio.
	Transcript string
	// Docx is empty when the export failed.
	Docx string
}
