package segmenter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	looseClockRe    = regexp.MustCompile(`\[?\d{1,2}:\d{2}(?::\d{2})?\]?`)
	stageRe         = regexp.MustCompile(`(?i)\(\s*(applause|laughter|music)\s*\)`)
	speakerRe       = regexp.MustCompile(`(?m)^\s*[A-Z][A-Za-z0-9_\- ]{1,30}:\s+`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	wordLevelLineRe = regexp.MustCompile(`(?m)^\s*\d{2}:\d{2}-\d{2}:\d{2}:.*$`)
)

// Clean strips timestamps, stage directions and speaker labels, then
// normalizes whitespace to single spaces.
func Clean(raw string) string {
	timed := markerRe.MatchString(raw)
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if timed && isHeader(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	text := strings.Join(kept, "\n")

	text = wordLevelLineRe.ReplaceAllString(text, " ")
	text = markerRe.ReplaceAllString(text, " ")
	text = looseClockRe.ReplaceAllString(text, " ")
	text = stageRe.ReplaceAllString(text, " ")
	text = speakerRe.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
