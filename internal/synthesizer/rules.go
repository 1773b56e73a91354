package synthesizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

const (
	maxQuestions = 5
	maxTimeline  = 12
)

// Brief is the deterministic, section-wise merge of free-text analyses.
type Brief struct {
	Approach    model.Item
	Questions   []model.Item
	Timeline    []model.Item
	Claims      []model.Item
	Assumptions []model.Item
	Tradeoffs   []model.Item
}

// collector deduplicates items by exact text, keeping the first source.
type collector struct {
	seen  map[string]bool
	items []model.Item
}

func (c *collector) add(it model.Item) {
	if c.seen == nil {
		c.seen = map[string]bool{}
	}
	if c.seen[it.Text] {
		return
	}
	c.seen[it.Text] = true
	c.items = append(c.items, it)
}

// RuleMerge merges successful analyses without a model call. inputs is the full
// result set and is used only to validate timestamp provenance. The output is a
// pure function of its arguments. Units without recognizable sections are skipped
// and reported as warnings.
func RuleMerge(ok, inputs []model.UnitResult) (Brief, []string) {
	var (
		b                              Brief
		warnings                       []string
		questions, timeline            collector
		claims, assumptions, tradeoffs collector
		haveApproach                   bool
	)

	for _, r := range ok {
		secs := parseSections(r.Analysis)
		if len(secs) == 0 {
			warnings = append(warnings, fmt.Errorf("chunk %d: %w: no recognizable sections", r.ChunkIndex, ErrMalformedPartial).Error())
			continue
		}

		if lines := secs[sectionApproach]; !haveApproach && len(lines) > 0 {
			b.Approach = model.Item{Section: sectionApproach, Text: strings.Join(lines, "\n"), ChunkIndex: r.ChunkIndex}
			haveApproach = true
		}

		for _, line := range secs[sectionQuestions] {
			if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "**") || !strings.Contains(line, "?") {
				continue
			}
			questions.add(item(sectionQuestions, line, r.ChunkIndex, inputs))
		}

		for _, line := range secs[sectionTimeline] {
			if strings.HasPrefix(line, "-") && strings.Contains(line, "[") && strings.Contains(line, "]") {
				timeline.add(item(sectionTimeline, line, r.ChunkIndex, inputs))
			}
		}

		sub := ""
		for _, line := range secs[sectionClaims] {
			if !strings.HasPrefix(line, "-") {
				if next := subsectionFor(line); next != "" {
					sub = next
				}
				continue
			}
			switch sub {
			case subClaims:
				claims.add(item(subClaims, line, r.ChunkIndex, inputs))
			case subAssumptions:
				assumptions.add(item(subAssumptions, line, r.ChunkIndex, inputs))
			case subTradeoffs:
				tradeoffs.add(item(subTradeoffs, line, r.ChunkIndex, inputs))
			}
		}
	}

	b.Questions = limit(questions.items, maxQuestions)

	sort.SliceStable(timeline.items, func(i, j int) bool {
		return sortKey(timeline.items[i].Text) < sortKey(timeline.items[j].Text)
	})
	b.Timeline = limit(timeline.items, maxTimeline)

	b.Claims = claims.items
	b.Assumptions = assumptions.items
	b.Tradeoffs = tradeoffs.items
	return b, warnings
}

func item(section, line string, chunk int, inputs []model.UnitResult) model.Item {
	idx, at := locate(line, chunk, inputs)
	return model.Item{Section: section, Text: line, ChunkIndex: idx, At: at}
}

func limit(items []model.Item, n int) []model.Item {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Markdown renders the four fixed sections.
func (b Brief) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Approach Script\n\n%s\n\n", b.Approach.Text)
	fmt.Fprintf(&sb, "## Five High-Signal Questions\n\n%s\n\n", joinText(b.Questions))
	fmt.Fprintf(&sb, "## Timeline Highlights\n\n%s\n\n", joinText(b.Timeline))
	sb.WriteString("## Key Claims, Assumptions, Trade-offs\n\n")
	fmt.Fprintf(&sb, "**Claims:**\n%s\n\n", joinText(b.Claims))
	fmt.Fprintf(&sb, "**Assumptions:**\n%s\n\n", joinText(b.Assumptions))
	fmt.Fprintf(&sb, "**Trade-offs:**\n%s", joinText(b.Tradeoffs))
	return sb.String()
}

// Items lists every presented element in document order.
func (b Brief) Items() []model.Item {
	var out []model.Item
	if b.Approach.Text != "" {
		out = append(out, b.Approach)
	}
	for _, group := range [][]model.Item{b.Questions, b.Timeline, b.Claims, b.Assumptions, b.Tradeoffs} {
		out = append(out, group...)
	}
	return out
}

func joinText(items []model.Item) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.Text
	}
	return strings.Join(lines, "\n")
}

// parsedItems extracts provenance-carrying items from a model-merged body.
// Items without a covered timestamp carry chunk index -1.
func parsedItems(body string, inputs []model.UnitResult) []model.Item {
	secs := parseSections(body)
	var out []model.Item
	if lines := secs[sectionApproach]; len(lines) > 0 {
		out = append(out, model.Item{Section: sectionApproach, Text: strings.Join(lines, "\n"), ChunkIndex: -1})
	}
	for _, line := range secs[sectionQuestions] {
		if strings.Contains(line, "?") && !strings.HasPrefix(line, "#") {
			out = append(out, item(sectionQuestions, line, -1, inputs))
		}
	}
	for _, line := range secs[sectionTimeline] {
		if isBullet(line) {
			out = append(out, item(sectionTimeline, line, -1, inputs))
		}
	}
	sub := subClaims
	for _, line := range secs[sectionClaims] {
		if !isBullet(line) {
			if next := subsectionFor(line); next != "" {
				sub = next
			}
			continue
		}
		out = append(out, item(sub, line, -1, inputs))
	}
	return out
}
