package synthesizer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// Render produces the final markdown document, including the generation header.
func Render(a model.Artifact) string {
	var b strings.Builder
	switch a.Kind {
	case model.KindQuestions:
		b.WriteString("# Audience Questions\n\n")
	default:
		b.WriteString("# Audio Brief\n\n")
	}
	fmt.Fprintf(&b, "Generated: %s\n", a.GeneratedAt.Format(timeLayout))
	fmt.Fprintf(&b, "Source: %d chunks, %d words total\n", a.Total, a.SourceWords)
	fmt.Fprintf(&b, "Chunks: %d analyzed, %d failed (merge: %s)\n\n", a.Succeeded, a.Failed, a.Strategy)

	if a.Kind == model.KindBrief {
		b.WriteString("## Executive Summary\n\n")
		b.WriteString("This brief synthesizes key insights from the analyzed audio content, providing actionable conversation starters, strategic questions, and critical decision points.\n\n")
	}
	b.WriteString(strings.TrimSpace(a.Body))
	b.WriteString("\n")

	if len(a.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range a.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	b.WriteString("\n---\n\n*Generated by the brief-flow pipeline*\n")
	return b.String()
}
