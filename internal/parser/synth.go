package parser

import "github.com/cleverlyblue0009/ROUND-1B/internal/document"

// Formats with explicit structure (Markdown, HTML, DOCX, plain text) carry no
// real layout, so their providers emit synthetic fragments: headings get a
// font size above the body size so the outline extractor classifies them the
// same way it classifies PDF headings.
const (
	synthBodySize = 10.0
	synthLineStep = 14.0
)

var synthHeadingSizes = [...]float64{24, 20, 17, 14.5, 12.5, 11}

// synthHeadingSize returns the synthetic font size for a heading level (1-6).
func synthHeadingSize(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > len(synthHeadingSizes) {
		level = len(synthHeadingSizes)
	}
	return synthHeadingSizes[level-1]
}

// pageBuilder accumulates synthetic fragments for a single page, stepping the
// Y coordinate so each block lands in its own line band.
type pageBuilder struct {
	page document.Page
	y    float64
}

func newPageBuilder(number int) *pageBuilder {
	return &pageBuilder{page: document.Page{Number: number}}
}

func (b *pageBuilder) addHeading(text string, level int) {
	b.add(text, synthHeadingSize(level), true)
}

func (b *pageBuilder) addBody(text string) {
	b.add(text, synthBodySize, false)
}

func (b *pageBuilder) add(text string, size float64, bold bool) {
	if text == "" {
		return
	}
	b.page.Fragments = append(b.page.Fragments, document.Fragment{
		Text:     text,
		Page:     b.page.Number,
		FontSize: size,
		Bold:     bold,
		X:        0,
		Y:        b.y,
	})
	b.y += synthLineStep
}

func (b *pageBuilder) build() []document.Page {
	if len(b.page.Fragments) == 0 {
		return nil
	}
	return []document.Page{b.page}
}
