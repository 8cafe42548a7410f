package outline

import (
	"strings"
	"testing"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
)

func TestExtract_TitleAndSections(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Fragments: []document.Fragment{
			frag("Complete Travel Guide", 1, 24, true, 0, 10),
			frag("Introduction", 1, 16, false, 0, 40),
			frag("This guide covers the south of France in detail.", 1, 10, false, 0, 60),
			frag("It focuses on coastal towns and local food.", 1, 10, false, 0, 80),
		}},
		{Number: 2, Fragments: []document.Fragment{
			frag("Day 1 Itinerary", 2, 16, false, 0, 10),
			frag("Morning walk through the old town and harbour.", 2, 10, false, 0, 30),
		}},
	}

	out := Extract(pages, "guide.pdf", DefaultConfig())

	if out.Title != "Complete Travel Guide" {
		t.Errorf("expected title %q, got %q", "Complete Travel Guide", out.Title)
	}
	if len(out.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out.Sections))
	}

	first := out.Sections[0]
	if first.Title != "Introduction" || first.PageNumber != 1 || first.Level != 1 {
		t.Errorf("unexpected first section: %+v", first)
	}
	if !strings.Contains(first.BodyText, "coastal towns") {
		t.Errorf("expected body text accumulated under Introduction, got %q", first.BodyText)
	}

	second := out.Sections[1]
	if second.Title != "Day 1 Itinerary" || second.PageNumber != 2 || second.Level != 1 {
		t.Errorf("unexpected second section: %+v", second)
	}
	if second.DocumentID != "guide.pdf" {
		t.Errorf("expected document id %q, got %q", "guide.pdf", second.DocumentID)
	}
}

func TestExtract_EqualSizeHeadingsAreNotPromotedToTitle(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Fragments: []document.Fragment{
			frag("Introduction", 1, 16, false, 0, 10),
			frag("Some body text that sets the scene for the document.", 1, 10, false, 0, 30),
			frag("Conclusion", 1, 16, false, 0, 50),
			frag("A closing paragraph with final remarks and advice.", 1, 10, false, 0, 70),
		}},
	}

	out := Extract(pages, "doc.pdf", DefaultConfig())
	if out.Title != "" {
		t.Errorf("expected no title when headings share the top size, got %q", out.Title)
	}
	if len(out.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out.Sections))
	}
}

func TestExtract_BodyBeforeFirstHeadingGetsImplicitSection(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Fragments: []document.Fragment{
			frag("Preface text that appears before any heading does.", 1, 10, false, 0, 10),
			frag("Main Part", 1, 16, false, 0, 30),
			frag("Content of the main part of the document follows.", 1, 10, false, 0, 50),
		}},
	}

	out := Extract(pages, "doc.pdf", DefaultConfig())
	if len(out.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out.Sections))
	}

	implicit := out.Sections[0]
	if implicit.Title != "Document Start" || implicit.PageNumber != 1 || implicit.Level != 1 {
		t.Errorf("unexpected implicit section: %+v", implicit)
	}
	if !strings.Contains(implicit.BodyText, "Preface text") {
		t.Errorf("expected preface text preserved, got %q", implicit.BodyText)
	}
}

func TestExtract_NoHeadingsFallsBackToSingleSection(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Fragments: []document.Fragment{
			frag("plain first line of an unstructured document.", 1, 10, false, 0, 10),
			frag("more ordinary text follows on the next line.", 1, 10, false, 0, 30),
			frag("and the document simply continues like this.", 1, 10, false, 0, 50),
		}},
	}

	out := Extract(pages, "flat.pdf", DefaultConfig())
	if len(out.Sections) != 1 {
		t.Fatalf("expected 1 fallback section, got %d", len(out.Sections))
	}

	s := out.Sections[0]
	if s.Title != "plain first line of an unstructured document." {
		t.Errorf("expected title from first line, got %q", s.Title)
	}
	if s.PageNumber != 1 || s.Level != 1 {
		t.Errorf("expected page 1 level 1, got page %d level %d", s.PageNumber, s.Level)
	}
	if !strings.Contains(s.BodyText, "simply continues") {
		t.Errorf("expected remaining text in body, got %q", s.BodyText)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	out := Extract(nil, "empty.pdf", DefaultConfig())
	if out.Title != "" || len(out.Sections) != 0 {
		t.Errorf("expected empty outline, got %+v", out)
	}
}

func TestExtract_LevelsFollowFontSizeClusters(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Fragments: []document.Fragment{
			frag("Smaller Heading", 1, 14, false, 0, 10),
			frag("Body text under the smaller heading, long enough to anchor the baseline.", 1, 10, false, 0, 30),
		}},
		{Number: 2, Fragments: []document.Fragment{
			frag("Bigger Heading", 2, 20, false, 0, 10),
			frag("More body text under the bigger heading on the second page.", 2, 10, false, 0, 30),
		}},
	}

	out := Extract(pages, "doc.pdf", DefaultConfig())
	if len(out.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out.Sections))
	}
	if out.Sections[0].Level != 2 {
		t.Errorf("expected 14pt heading at level 2, got %d", out.Sections[0].Level)
	}
	if out.Sections[1].Level != 1 {
		t.Errorf("expected 20pt heading at level 1, got %d", out.Sections[1].Level)
	}
}

func TestExtract_BaselineSizeHeadingGetsDeepestLevel(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Fragments: []document.Fragment{
			frag("Field Manual", 1, 24, true, 0, 10),
			frag("Top Heading", 1, 16, false, 0, 30),
			frag("Body text sitting under the top heading of the document.", 1, 10, false, 0, 50),
			frag("Notes", 1, 10, true, 0, 70),
			frag("Bold note content that belongs to the notes heading.", 1, 10, false, 0, 90),
		}},
	}

	out := Extract(pages, "doc.pdf", DefaultConfig())
	if len(out.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out.Sections))
	}
	if out.Sections[0].Level != 1 {
		t.Errorf("expected font-size heading at level 1, got %d", out.Sections[0].Level)
	}
	if out.Sections[1].Level != 2 {
		t.Errorf("expected baseline-size bold heading at deepest level 2, got %d", out.Sections[1].Level)
	}
}
