package segmenter

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/brief-flow/internal/embedding"
)

const defaultSentenceChunk = 1500

// EmbeddingSplitter breaks text where the semantic distance between
// neighbouring sentence windows exceeds a percentile of all distances.
type EmbeddingSplitter struct {
	Embedder embedding.Embedder
}

func (e EmbeddingSplitter) Split(ctx context.Context, text string, p SplitParams) ([]string, error) {
	sentences := SplitSentences(text)
	if len(sentences) <= 1 {
		return sentences, nil
	}

	windows := make([]string, len(sentences))
	for i := range sentences {
		lo := max(0, i-p.BufferSize)
		hi := min(len(sentences), i+p.BufferSize+1)
		windows[i] = strings.Join(sentences[lo:hi], " ")
	}

	vecs, err := e.Embedder.EmbedBatch(ctx, windows)
	if err != nil {
		return nil, fmt.Errorf("embed sentence windows: %w", err)
	}
	if len(vecs) != len(windows) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d windows", len(vecs), len(windows))
	}

	distances := make([]float64, len(vecs)-1)
	for i := range distances {
		distances[i] = 1 - cosine(vecs[i], vecs[i+1])
	}
	threshold := Percentile(distances, float64(p.Threshold))

	var (
		out   []string
		start int
	)
	for i, d := range distances {
		if d > threshold {
			out = append(out, strings.Join(sentences[start:i+1], " "))
			start = i + 1
		}
	}
	return append(out, strings.Join(sentences[start:], " ")), nil
}

// SentenceSplitter greedily groups sentences up to Size characters. It is used
// when no embedding provider is configured.
type SentenceSplitter struct {
	Size int
}

func (s SentenceSplitter) Split(_ context.Context, text string, _ SplitParams) ([]string, error) {
	return groupSentences(SplitSentences(text), s.Size), nil
}

// SplitSentences splits after '.', '!' or '?' followed by whitespace.
// Punctuation stays with its sentence.
func SplitSentences(text string) []string {
	var (
		out   []string
		start int
	)
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if (runes[i] == '.' || runes[i] == '!' || runes[i] == '?') && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

// Percentile computes the p-th percentile with linear interpolation between closest ranks.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	p = math.Max(0, math.Min(100, p))
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
