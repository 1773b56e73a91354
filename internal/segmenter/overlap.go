package segmenter

import (
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// ApplyOverlap sets each chunk's Context to the trailing size characters of the
// previous chunk. Text, counts and indices are unchanged.
func ApplyOverlap(chunks []model.Chunk, size int) []model.Chunk {
	if size <= 0 || len(chunks) <= 1 {
		return chunks
	}
	out := make([]model.Chunk, len(chunks))
	copy(out, chunks)
	for i := 1; i < len(out); i++ {
		prev := []rune(chunks[i-1].Text)
		if len(prev) > size {
			prev = prev[len(prev)-size:]
		}
		out[i].Context = strings.TrimSpace(string(prev))
	}
	return out
}
