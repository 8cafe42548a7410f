package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownProvider handles Markdown files using goldmark. Headings are
// emitted as synthetic heading fragments at their AST level; everything else
// becomes body fragments.
type MarkdownProvider struct{}

func (p *MarkdownProvider) Parse(r io.Reader, filename string) ([]document.Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	b := newPageBuilder(1)
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(nodeText(node, src)))
			if title != "" {
				b.addHeading(title, node.Level)
			}
		default:
			if t := strings.TrimSpace(string(nodeText(n, src))); t != "" {
				b.addBody(t)
			}
		}
	}
	return b.build(), nil
}

// nodeText gets the text content of a goldmark AST node.
func nodeText(n ast.Node, src []byte) []byte {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		if buf.Len() > 0 {
			return buf.Bytes()
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.Write(nodeText(c, src))
			buf.WriteByte(' ')
		}
	}
	return buf.Bytes()
}
