package segmenter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// markerRe matches "[MM:SS]", "[HH:MM:SS]" and "[MM:SS -> MM:SS]" markers.
var markerRe = regexp.MustCompile(`\[(\d{1,2}:\d{2}(?::\d{2})?)(?:\s*-+>\s*(\d{1,2}:\d{2}(?::\d{2})?))?\]`)

// ParseClock converts "MM:SS" or "HH:MM:SS" to a duration.
func ParseClock(s string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	var total int
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, true
}

// parseMarker returns the range of a marker match produced by markerRe.
func parseMarker(m []string) (start, end time.Duration, ok bool) {
	start, ok = ParseClock(m[1])
	if !ok {
		return 0, 0, false
	}
	end = start
	if m[2] != "" {
		if e, ok := ParseClock(m[2]); ok && e >= start {
			end = e
		}
	}
	return start, end, true
}
