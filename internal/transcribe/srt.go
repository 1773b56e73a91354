package transcribe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var srtTimeRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.]\d{3}\s*-->\s*(\d{2}):(\d{2}):(\d{2})[,.]\d{3}`)

// SRTToTimestamped rewrites SRT cues as "[MM:SS -> MM:SS] text" lines, one per cue.
// Sequence numbers are dropped, multi-line cue text is joined with spaces and
// cues without text are skipped.
func SRTToTimestamped(srt string) string {
	var (
		out   []string
		stamp string
		text  []string
	)
	flush := func() {
		if stamp != "" && len(text) > 0 {
			out = append(out, stamp+" "+strings.Join(text, " "))
		}
		stamp, text = "", nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(srt, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case srtTimeRe.MatchString(line):
			flush()
			m := srtTimeRe.FindStringSubmatch(line)
			stamp = fmt.Sprintf("[%s -> %s]", clock(m[1], m[2], m[3]), clock(m[4], m[5], m[6]))
		case stamp == "":
			// sequence number
		default:
			text = append(text, line)
		}
	}
	flush()
	return strings.Join(out, "\n")
}

func clock(h, m, s string) string {
	hours, _ := strconv.Atoi(h)
	mins, _ := strconv.Atoi(m)
	secs, _ := strconv.Atoi(s)
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
