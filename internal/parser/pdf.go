package parser

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFProvider extracts positioned text fragments from PDF files using
// ledongthuc/pdf. Glyph runs closer than wordGapRatio of the font size are
// merged into a single fragment so words are not split apart.
type PDFProvider struct{}

const wordGapRatio = 0.25

func (p *PDFProvider) Parse(r io.Reader, filename string) ([]document.Page, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "analyzer-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []document.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		frags := extractPageFragments(page, i)
		if len(frags) == 0 {
			continue
		}
		pages = append(pages, document.Page{Number: i, Fragments: frags})
	}
	return pages, nil
}

// extractPageFragments reads the glyph runs of one page and merges adjacent
// runs into word-level fragments. PDF coordinates grow upward, so Y is
// negated to match the top-down convention of document.Fragment.
func extractPageFragments(page pdflib.Page, number int) []document.Fragment {
	content := page.Content()
	runs := content.Text
	if len(runs) == 0 {
		return nil
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y // higher Y = closer to page top
		}
		return runs[i].X < runs[j].X
	})

	var frags []document.Fragment
	var cur document.Fragment
	var curEnd float64

	flush := func() {
		if strings.TrimSpace(cur.Text) != "" {
			frags = append(frags, cur)
		}
		cur = document.Fragment{}
	}

	for _, t := range runs {
		if t.S == "" {
			continue
		}
		sameLine := cur.Text != "" && nearlyEqual(-t.Y, cur.Y, 0.2*maxFloat(t.FontSize, 1))
		gap := t.X - curEnd
		if sameLine && gap >= 0 && gap <= wordGapRatio*maxFloat(t.FontSize, 1) {
			cur.Text += t.S
			cur.Bold = cur.Bold || isBoldFont(t.Font)
			curEnd = t.X + t.W
			continue
		}
		flush()
		cur = document.Fragment{
			Text:     t.S,
			Page:     number,
			FontSize: t.FontSize,
			Bold:     isBoldFont(t.Font),
			X:        t.X,
			Y:        -t.Y,
		}
		curEnd = t.X + t.W
	}
	flush()

	return frags
}

// isBoldFont guesses boldness from the font name, the only weight signal the
// content stream exposes.
func isBoldFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") ||
		strings.Contains(f, "black") ||
		strings.Contains(f, "heavy") ||
		strings.Contains(f, "demi")
}

func nearlyEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
