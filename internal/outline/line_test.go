package outline

import (
	"testing"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
)

func frag(text string, page int, size float64, bold bool, x, y float64) document.Fragment {
	return document.Fragment{Text: text, Page: page, FontSize: size, Bold: bold, X: x, Y: y}
}

func TestBuildLines_GroupsFragmentsByBand(t *testing.T) {
	pages := []document.Page{{
		Number: 1,
		Fragments: []document.Fragment{
			frag("world", 1, 10, false, 40, 100.3),
			frag("hello", 1, 10, false, 0, 100),
			frag("next line", 1, 10, false, 0, 120),
		},
	}}

	lines := BuildLines(pages)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", lines[0].Text)
	}
	if lines[1].Text != "next line" {
		t.Errorf("expected %q, got %q", "next line", lines[1].Text)
	}
}

func TestBuildLines_OrdersFragmentsByX(t *testing.T) {
	pages := []document.Page{{
		Number: 1,
		Fragments: []document.Fragment{
			frag("c", 1, 10, false, 90, 50),
			frag("a", 1, 10, false, 10, 50),
			frag("b", 1, 10, false, 50, 50),
		},
	}}

	lines := BuildLines(pages)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "a b c" {
		t.Errorf("expected %q, got %q", "a b c", lines[0].Text)
	}
}

func TestBuildLines_SkipsWhitespaceFragments(t *testing.T) {
	pages := []document.Page{{
		Number: 1,
		Fragments: []document.Fragment{
			frag("   ", 1, 10, false, 0, 10),
			frag("text", 1, 10, false, 0, 30),
		},
	}}

	lines := BuildLines(pages)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "text" {
		t.Errorf("expected %q, got %q", "text", lines[0].Text)
	}
}

func TestAssembleLine_DominantFontByCharCount(t *testing.T) {
	band := []document.Fragment{
		frag("a long run of body text", 1, 10, false, 0, 50),
		frag("big", 1, 18, false, 200, 50),
	}
	line := assembleLine(band, 1, 50)
	if line.FontSize != 10 {
		t.Errorf("expected dominant size 10, got %g", line.FontSize)
	}
}

func TestAssembleLine_BoldMajority(t *testing.T) {
	band := []document.Fragment{
		frag("Important heading", 1, 12, true, 0, 50),
		frag("x", 1, 12, false, 150, 50),
	}
	line := assembleLine(band, 1, 50)
	if !line.Bold {
		t.Error("expected line to be bold when most characters are bold")
	}
}

func TestBaselineFontSize_ModeWeightedByChars(t *testing.T) {
	lines := []Line{
		{Text: "Heading", FontSize: 16},
		{Text: "plenty of ordinary body text on this line", FontSize: 10},
		{Text: "and some more body text here as well", FontSize: 10},
	}
	if got := baselineFontSize(lines); got != 10 {
		t.Errorf("expected baseline 10, got %g", got)
	}
}

func TestBaselineFontSize_TieGoesToLargerSize(t *testing.T) {
	lines := []Line{
		{Text: "aaaa", FontSize: 10},
		{Text: "bbbb", FontSize: 12},
	}
	if got := baselineFontSize(lines); got != 12 {
		t.Errorf("expected tie to resolve to 12, got %g", got)
	}
}
