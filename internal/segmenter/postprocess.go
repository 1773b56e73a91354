package segmenter

import "strings"

// PostProcess clamps chunk sizes: chunks under minSize merge into the previous
// chunk (or the next when first), chunks over maxSize are re-split at sentence
// boundaries. A lone undersized chunk is kept as-is.
func PostProcess(chunks []string, minSize, maxSize int) []string {
	merged := mergeSmall(chunks, minSize)

	var out []string
	for _, c := range merged {
		if runeLen(c) > maxSize {
			out = append(out, groupSentences(SplitSentences(c), maxSize)...)
			continue
		}
		out = append(out, c)
	}
	return foldSmall(out, minSize, maxSize)
}

func mergeSmall(chunks []string, minSize int) []string {
	pending := append([]string(nil), chunks...)
	var out []string
	for i := 0; i < len(pending); i++ {
		c := strings.TrimSpace(pending[i])
		if c == "" {
			continue
		}
		if runeLen(c) < minSize {
			if len(out) > 0 {
				out[len(out)-1] += "\n\n" + c
				continue
			}
			if i < len(pending)-1 {
				pending[i+1] = c + "\n\n" + pending[i+1]
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// foldSmall joins undersized pieces left by re-splitting into the previous
// chunk, or the next one when the previous has no room, while the result stays
// within maxSize. The final chunk may stay short.
func foldSmall(chunks []string, minSize, maxSize int) []string {
	pending := append([]string(nil), chunks...)
	var out []string
	for i, c := range pending {
		if runeLen(c) >= minSize || i == len(pending)-1 {
			out = append(out, c)
			continue
		}
		if len(out) > 0 && runeLen(out[len(out)-1])+1+runeLen(c) <= maxSize {
			out[len(out)-1] += " " + c
			continue
		}
		if runeLen(c)+1+runeLen(pending[i+1]) <= maxSize {
			pending[i+1] = c + " " + pending[i+1]
			continue
		}
		out = append(out, c)
	}
	return out
}

// groupSentences packs sentences greedily into pieces of at most size characters.
// A sentence longer than size is split on words, and a word longer than size on runes.
func groupSentences(sentences []string, size int) []string {
	var (
		out     []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}
	}
	add := func(piece string) {
		if current.Len() > 0 && runeLen(current.String())+1+runeLen(piece) > size {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(piece)
	}

	for _, s := range sentences {
		if runeLen(s) <= size {
			add(s)
			continue
		}
		for _, w := range strings.Fields(s) {
			if runeLen(w) <= size {
				add(w)
				continue
			}
			flush()
			r := []rune(w)
			for len(r) > size {
				out = append(out, string(r[:size]))
				r = r[size:]
			}
			add(string(r))
		}
	}
	flush()
	return out
}
