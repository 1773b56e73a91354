package segmenter

import (
	"regexp"
	"strings"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

var (
	headerPrefixes = []string{"#", "Audio:", "Language:", "Duration:"}
	wordLevelRe    = regexp.MustCompile(`^\s*\d{2}:\d{2}-\d{2}:\d{2}:`)
)

type segment struct {
	text  string
	words int
	start time.Duration
	end   time.Duration
	timed bool
}

// Fixed accumulates timestamped segments into chunks of at most targetWords,
// never splitting a segment. Marker text is excluded from word counts.
func Fixed(raw string, targetWords int) []model.Chunk {
	segs := segments(raw)

	var (
		chunks  []model.Chunk
		current []segment
		words   int
	)
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, buildChunk(len(chunks), current))
		}
	}
	for _, sg := range segs {
		if words+sg.words > targetWords && len(current) > 0 {
			flush()
			current = []segment{sg}
			words = sg.words
			continue
		}
		current = append(current, sg)
		words += sg.words
	}
	flush()
	return chunks
}

// segments splits raw text at timestamp markers. When the text carries markers,
// transcript header lines are dropped.
func segments(raw string) []segment {
	timed := markerRe.MatchString(raw)

	var out []segment
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || (timed && isHeader(line)) {
			continue
		}

		locs := markerRe.FindAllStringSubmatchIndex(line, -1)
		if len(locs) == 0 {
			out = appendSegment(out, line, nil)
			continue
		}
		if lead := line[:locs[0][0]]; strings.TrimSpace(lead) != "" {
			out = appendSegment(out, lead, nil)
		}
		for i, loc := range locs {
			end := len(line)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			m := []string{line[loc[0]:loc[1]], line[loc[2]:loc[3]], ""}
			if loc[4] >= 0 {
				m[2] = line[loc[4]:loc[5]]
			}
			out = appendSegment(out, line[loc[0]:end], m)
		}
	}
	return out
}

func appendSegment(out []segment, text string, marker []string) []segment {
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}
	sg := segment{text: text}
	body := text
	if marker != nil {
		body = strings.TrimPrefix(text, marker[0])
		sg.start, sg.end, sg.timed = parseMarker(marker)
	}
	sg.words = len(strings.Fields(body))
	return append(out, sg)
}

func isHeader(line string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return wordLevelRe.MatchString(line)
}

func buildChunk(index int, segs []segment) model.Chunk {
	texts := make([]string, 0, len(segs))
	c := model.Chunk{Index: index}
	for _, sg := range segs {
		texts = append(texts, sg.text)
		c.Words += sg.words
		if !sg.timed {
			continue
		}
		if !c.Timed {
			c.Start, c.Timed = sg.start, true
		}
		if sg.end > c.End {
			c.End = sg.end
		}
	}
	c.Text = strings.Join(texts, "\n")
	c.Chars = runeLen(c.Text)
	return c
}
