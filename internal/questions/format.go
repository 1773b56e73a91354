package questions

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// FormatSummary renders a summary as labeled bullets for the critique stage.
func FormatSummary(s model.Summary) string {
	var b strings.Builder
	b.WriteString("STRUCTURED SUMMARY:\n\n")
	writeBullets(&b, "Main Points", s.MainPoints)
	b.WriteString("\nEvidence:\n")
	for _, e := range s.Evidence {
		fmt.Fprintf(&b, "• %s:\n", e.Point)
		for _, item := range e.Items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}
	b.WriteString("\n")
	writeBullets(&b, "Assumptions", s.Assumptions)
	b.WriteString("\n")
	writeBullets(&b, "Open Loops", s.OpenLoops)
	return b.String()
}

// FormatCritique renders a critique as labeled bullets for the rank stage.
func FormatCritique(c model.Critique) string {
	var b strings.Builder
	b.WriteString("CRITICAL ANALYSIS:\n\n")
	writeBullets(&b, "Weak Spots", c.WeakSpots)
	b.WriteString("\n")
	writeBullets(&b, "Contrarian Angles", c.ContrarianAngles)
	b.WriteString("\n")
	writeBullets(&b, "Future Implications", c.FutureImplications)
	b.WriteString("\n")
	writeBullets(&b, "Hooks", c.Hooks)
	return b.String()
}

// FormatQuestionSets renders every successful chunk's questions for the final merge.
func FormatQuestionSets(results []model.UnitResult) string {
	var b strings.Builder
	b.WriteString("ALL QUESTION SETS:\n\n")
	for _, r := range results {
		if !r.Success || r.Questions == nil {
			continue
		}
		fmt.Fprintf(&b, "Chunk %d Questions:\n", r.ChunkIndex+1)
		for _, q := range r.Questions.Questions {
			fmt.Fprintf(&b, "[%d] %s → %s\n", q.Rank, q.Question, q.LeverageReason)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeBullets(b *strings.Builder, label string, items []string) {
	b.WriteString(label + ":\n")
	for _, it := range items {
		fmt.Fprintf(b, "• %s\n", it)
	}
}
