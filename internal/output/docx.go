package output

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*•]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+[.)]\s+.+$`)
)

type blockKind int

const (
	blockText blockKind = iota
	blockHeading
	blockBullet
)

// block is one docx paragraph derived from a markdown line.
type block struct {
	kind  blockKind
	level int
	text  string
}

// blocks maps brief markdown onto paragraphs. Blank lines and rules are dropped.
func blocks(markdown string) []block {
	var out []block
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			out = append(out, block{kind: blockHeading, level: len(m[1]), text: m[2]})
		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			out = append(out, block{kind: blockBullet, text: "• " + m[1]})
		case reNumbered.MatchString(trimmed):
			out = append(out, block{kind: blockText, text: trimmed})
		case reBold.MatchString(trimmed):
			out = append(out, block{kind: blockText, text: trimmed})
		default:
			out = append(out, block{kind: blockText, text: strings.Trim(trimmed, "*_")})
		}
	}
	return out
}

func markdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, b := range blocks(markdown) {
		p := doc.AddParagraph("")
		if b.kind == blockHeading {
			addStyledRun(p, b.text, true, headingSize(b.level))
			continue
		}
		addRichText(p, b.text)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 13
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText keeps **bold** spans bold and writes the rest as plain runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
