package synthesizer

import (
	"regexp"
	"strconv"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

var stampRe = regexp.MustCompile(`\[(\d{1,2}):(\d{2})(?::(\d{2}))?`)

// leadingStamp parses the first "[MM:SS" or "[HH:MM:SS" marker in line.
func leadingStamp(line string) (time.Duration, bool) {
	m := stampRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	secs := a*60 + b
	if m[3] != "" {
		c, _ := strconv.Atoi(m[3])
		secs = a*3600 + b*60 + c
	}
	return time.Duration(secs) * time.Second, true
}

// sortKey orders timeline lines; lines without a parsable stamp sort as zero.
func sortKey(line string) time.Duration {
	d, _ := leadingStamp(line)
	return d
}

// locate attaches timestamp provenance to an item. The stamp is kept only when
// an input chunk covers it; when fallback is -1 the covering chunk becomes the source.
func locate(line string, fallback int, inputs []model.UnitResult) (int, *time.Duration) {
	at, ok := leadingStamp(line)
	if !ok {
		return fallback, nil
	}
	if fallback >= 0 {
		for _, r := range inputs {
			if r.ChunkIndex == fallback && r.Covers(at) {
				return fallback, &at
			}
		}
	}
	for _, r := range inputs {
		if r.Covers(at) {
			if fallback < 0 {
				return r.ChunkIndex, &at
			}
			return fallback, &at
		}
	}
	return fallback, nil
}
