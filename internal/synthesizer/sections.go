package synthesizer

import "strings"

const (
	sectionApproach  = "approach"
	sectionQuestions = "questions"
	sectionTimeline  = "timeline"
	sectionClaims    = "claims"

	subClaims      = "claims"
	subAssumptions = "assumptions"
	subTradeoffs   = "tradeoffs"
)

// sections holds the trimmed, non-empty lines of each labeled section.
type sections map[string][]string

// parseSections splits a free-text analysis into its four labeled sections.
// Only header-like lines switch sections: bullets, questions and sentences never do.
func parseSections(text string) sections {
	out := sections{}
	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isHeaderLike(line) {
			if name := sectionFor(line); name != "" {
				current = name
				if _, ok := out[name]; !ok {
					out[name] = nil
				}
				continue
			}
		}
		if current != "" {
			out[current] = append(out[current], line)
		}
	}
	return out
}

func isHeaderLike(line string) bool {
	if isBullet(line) || strings.Contains(line, "?") {
		return false
	}
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "**") || !strings.HasSuffix(line, ".")
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "* ")
}

func sectionFor(line string) string {
	switch {
	case strings.Contains(line, "Approach Script"):
		return sectionApproach
	case strings.Contains(line, "Five High-Signal Questions") || strings.Contains(line, "Questions"):
		return sectionQuestions
	case strings.Contains(line, "Timeline Highlights"):
		return sectionTimeline
	case strings.Contains(line, "Key Claims, Assumptions, Trade-offs") || strings.Contains(line, "Claims, Assumptions"):
		return sectionClaims
	}
	return ""
}

// subsectionFor switches between claims, assumptions and trade-offs inside the claims section.
func subsectionFor(line string) string {
	switch {
	case strings.Contains(line, "Claims") || strings.Contains(line, "assertions"):
		return subClaims
	case strings.Contains(line, "Assumptions") || strings.Contains(line, "constraints"):
		return subAssumptions
	case strings.Contains(line, "Trade-offs") || strings.Contains(line, "gains vs"):
		return subTradeoffs
	}
	return ""
}
