package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
)

// TextProvider handles plain text files. Form feeds separate pages;
// paragraphs become body fragments.
type TextProvider struct{}

func (p *TextProvider) Parse(r io.Reader, filename string) ([]document.Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var pages []document.Page
	for i, raw := range strings.Split(string(data), "\f") {
		b := newPageBuilder(i + 1)
		for _, para := range splitParagraphs(raw) {
			b.addBody(para)
		}
		pages = append(pages, b.build()...)
	}
	return pages, nil
}

// splitParagraphs splits text into paragraphs on blank lines.
func splitParagraphs(text string) []string {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return paragraphs
}
