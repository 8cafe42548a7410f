package parser

import (
	"strings"
	"testing"
)

func TestMarkdownProvider_HeadingsBecomeLargerFragments(t *testing.T) {
	input := "# Trip Guide\n\nSome introduction text.\n\n## Day One\n\nVisit the old town."
	p := &MarkdownProvider{}
	pages, err := p.Parse(strings.NewReader(input), "guide.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	frags := pages[0].Fragments
	if len(frags) != 4 {
		t.Fatalf("expected 4 fragments, got %d", len(frags))
	}

	h1 := frags[0]
	if h1.Text != "Trip Guide" || !h1.Bold || h1.FontSize != synthHeadingSize(1) {
		t.Errorf("unexpected h1 fragment: %+v", h1)
	}
	body := frags[1]
	if body.FontSize != synthBodySize || body.Bold {
		t.Errorf("unexpected body fragment: %+v", body)
	}
	h2 := frags[2]
	if h2.Text != "Day One" || h2.FontSize != synthHeadingSize(2) {
		t.Errorf("unexpected h2 fragment: %+v", h2)
	}
	if h2.FontSize >= h1.FontSize {
		t.Errorf("expected h2 size below h1: %g vs %g", h2.FontSize, h1.FontSize)
	}
}

func TestMarkdownProvider_NoHeadings(t *testing.T) {
	p := &MarkdownProvider{}
	pages, err := p.Parse(strings.NewReader("Just a plain paragraph."), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Fragments) != 1 {
		t.Fatalf("expected single body fragment, got %+v", pages)
	}
	if pages[0].Fragments[0].FontSize != synthBodySize {
		t.Errorf("expected body size, got %g", pages[0].Fragments[0].FontSize)
	}
}

func TestMarkdownProvider_EmptyInput(t *testing.T) {
	p := &MarkdownProvider{}
	pages, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected 0 pages, got %d", len(pages))
	}
}
