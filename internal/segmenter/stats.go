package segmenter

import "github.com/nguyentantai21042004/brief-flow/internal/model"

// Stats describes the size distribution of a chunk set.
type Stats struct {
	Count    int     `json:"count"`
	Words    int     `json:"words"`
	AvgChars float64 `json:"avg_chars"`
	MinChars int     `json:"min_chars"`
	MaxChars int     `json:"max_chars"`
	// Quality is the share of chunks whose size lies within [min, max].
	Quality float64 `json:"quality"`
}

// ChunkStats summarizes chunks against the [minSize, maxSize] character bounds.
func ChunkStats(chunks []model.Chunk, minSize, maxSize int) Stats {
	if len(chunks) == 0 {
		return Stats{}
	}
	st := Stats{Count: len(chunks), MinChars: chunks[0].Chars, MaxChars: chunks[0].Chars}
	var total, inRange int
	for _, c := range chunks {
		st.Words += c.Words
		total += c.Chars
		st.MinChars = min(st.MinChars, c.Chars)
		st.MaxChars = max(st.MaxChars, c.Chars)
		if c.Chars >= minSize && c.Chars <= maxSize {
			inRange++
		}
	}
	st.AvgChars = float64(total) / float64(len(chunks))
	st.Quality = float64(inRange) / float64(len(chunks))
	return st
}
