// Package outline recovers a logical section structure from positioned page
// text: fragments are grouped into lines, lines are classified as heading or
// body by layout heuristics, and headings delimit the sections that the
// scoring stages rank.
package outline

import (
	"sort"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
)

// Config holds the heading-detection knobs.
type Config struct {
	// HeadingRatio is the factor by which a line's font size must exceed the
	// document baseline to count as a heading.
	HeadingRatio float64
	// BoldMaxChars is the character ceiling for bold or numbered heading lines.
	BoldMaxChars int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		HeadingRatio: 1.15,
		BoldMaxChars: 80,
	}
}

// titleRatio marks the minimum size, relative to baseline, for a page-1 line
// to be promoted to the document title.
const titleRatio = 1.3

// sizeClusterGap merges heading font sizes closer than this into one level.
const sizeClusterGap = 0.5

// Outline is the extracted structure of one document.
type Outline struct {
	Title    string
	Sections []document.Section
}

// Extract builds the section list for one document. It never fails on
// irregular layout: a document without any heading-like line degrades to a
// single section titled from its first line, and body text appearing before
// the first heading lands in an implicit "Document Start" section so no text
// is ever dropped.
func Extract(pages []document.Page, docID string, cfg Config) Outline {
	if cfg.HeadingRatio <= 1 {
		cfg.HeadingRatio = DefaultConfig().HeadingRatio
	}
	if cfg.BoldMaxChars <= 0 {
		cfg.BoldMaxChars = DefaultConfig().BoldMaxChars
	}

	lines := BuildLines(pages)
	if len(lines) == 0 {
		return Outline{}
	}

	baseline := baselineFontSize(lines)

	heading := make([]bool, len(lines))
	headingCount := 0
	for i, l := range lines {
		if _, ok := ClassifyHeading(l, baseline, cfg); ok {
			heading[i] = true
			headingCount++
		}
	}

	if headingCount == 0 {
		return Outline{Sections: []document.Section{wholeDocumentSection(lines, docID)}}
	}

	titleIdx := findTitleLine(lines, heading, baseline, headingCount)
	levels := headingLevels(lines, heading, titleIdx, baseline)

	var out Outline
	if titleIdx >= 0 {
		out.Title = lines[titleIdx].Text
	}

	var current *document.Section
	var body []string
	flush := func() {
		if current != nil {
			current.BodyText = strings.Join(body, " ")
			out.Sections = append(out.Sections, *current)
		}
		current = nil
		body = nil
	}

	for i, l := range lines {
		if i == titleIdx {
			continue
		}
		if heading[i] {
			flush()
			current = &document.Section{
				DocumentID: docID,
				Title:      l.Text,
				PageNumber: l.Page,
				Level:      levels[roundSize(l.FontSize)],
			}
			continue
		}
		if current == nil {
			current = &document.Section{
				DocumentID: docID,
				Title:      "Document Start",
				PageNumber: 1,
				Level:      1,
			}
		}
		body = append(body, l.Text)
	}
	flush()

	return out
}

// wholeDocumentSection is the no-heading fallback: one section titled from
// the first line, holding everything else as body.
func wholeDocumentSection(lines []Line, docID string) document.Section {
	var body []string
	for _, l := range lines[1:] {
		body = append(body, l.Text)
	}
	return document.Section{
		DocumentID: docID,
		Title:      lines[0].Text,
		PageNumber: 1,
		Level:      1,
		BodyText:   strings.Join(body, " "),
	}
}

// findTitleLine picks the page-1 heading line whose font size is strictly
// larger than every other heading's as the document title. A heading that
// merely shares the top size with its peers is a section heading, not a
// title. Returns -1 when there is no title line.
func findTitleLine(lines []Line, heading []bool, baseline float64, headingCount int) int {
	if headingCount < 2 {
		return -1
	}
	best := -1
	for i, l := range lines {
		if !heading[i] || l.Page != 1 {
			continue
		}
		if baseline > 0 && l.FontSize < baseline*titleRatio {
			continue
		}
		if best < 0 || l.FontSize > lines[best].FontSize {
			best = i
		}
	}
	if best < 0 {
		return -1
	}
	for i, l := range lines {
		if i != best && heading[i] && roundSize(l.FontSize) >= roundSize(lines[best].FontSize) {
			return -1
		}
	}
	return best
}

// headingLevels clusters the distinct heading font sizes above the baseline
// into an ordered set: the largest cluster becomes level 1, the next level 2,
// and so on. Headings at or below the baseline size (bold or structural
// matches) sit one level below the deepest cluster.
func headingLevels(lines []Line, heading []bool, titleIdx int, baseline float64) map[float64]int {
	seen := make(map[float64]bool)
	for i, l := range lines {
		if heading[i] && i != titleIdx && l.FontSize > baseline {
			seen[roundSize(l.FontSize)] = true
		}
	}

	sizes := make([]float64, 0, len(seen))
	for s := range seen {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := make(map[float64]int)
	level := 0
	prev := 0.0
	for _, s := range sizes {
		if level == 0 || prev-s > sizeClusterGap {
			level++
		}
		levels[s] = level
		prev = s
	}

	// Everything not clustered (headings at baseline size) gets the deepest
	// level; with no clusters at all every heading is level 1.
	fallback := level + 1
	if level == 0 {
		fallback = 1
	}
	for i, l := range lines {
		if heading[i] && i != titleIdx {
			if _, ok := levels[roundSize(l.FontSize)]; !ok {
				levels[roundSize(l.FontSize)] = fallback
			}
		}
	}
	return levels
}
