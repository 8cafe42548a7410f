package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
)

// Line is a group of fragments sharing a page and a narrow vertical band.
type Line struct {
	Page     int
	Y        float64
	Text     string
	FontSize float64 // dominant size, weighted by character count
	Bold     bool    // majority of characters bold
}

// lineBandTolerance is the Y-distance for grouping fragments into lines, as a
// fraction of the fragment font size.
const lineBandTolerance = 0.5

// BuildLines groups page fragments into lines. Fragments are sorted top-down
// then left-right; a fragment joins the current band when its Y falls within
// half its font size of the band anchor.
func BuildLines(pages []document.Page) []Line {
	var lines []Line
	for _, page := range pages {
		frags := make([]document.Fragment, len(page.Fragments))
		copy(frags, page.Fragments)
		sort.SliceStable(frags, func(i, j int) bool {
			if frags[i].Y != frags[j].Y {
				return frags[i].Y < frags[j].Y
			}
			return frags[i].X < frags[j].X
		})

		var band []document.Fragment
		bandY := 0.0
		flush := func() {
			if len(band) > 0 {
				lines = append(lines, assembleLine(band, page.Number, bandY))
				band = nil
			}
		}
		for _, f := range frags {
			if strings.TrimSpace(f.Text) == "" {
				continue
			}
			tol := lineBandTolerance * f.FontSize
			if tol <= 0 {
				tol = 1
			}
			if len(band) > 0 && math.Abs(f.Y-bandY) > tol {
				flush()
			}
			if len(band) == 0 {
				bandY = f.Y
			}
			band = append(band, f)
		}
		flush()
	}
	return lines
}

// assembleLine joins a band of fragments left to right into one line and
// picks the dominant font attributes by character count.
func assembleLine(band []document.Fragment, page int, y float64) Line {
	sort.SliceStable(band, func(i, j int) bool { return band[i].X < band[j].X })

	var text strings.Builder
	charsBySize := make(map[float64]int)
	boldChars, totalChars := 0, 0

	for _, f := range band {
		t := strings.TrimSpace(f.Text)
		if t == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString(" ")
		}
		text.WriteString(t)

		n := len(t)
		charsBySize[roundSize(f.FontSize)] += n
		totalChars += n
		if f.Bold {
			boldChars += n
		}
	}

	dominant := 0.0
	best := -1
	for size, n := range charsBySize {
		if n > best || (n == best && size > dominant) {
			best = n
			dominant = size
		}
	}

	return Line{
		Page:     page,
		Y:        y,
		Text:     text.String(),
		FontSize: dominant,
		Bold:     totalChars > 0 && boldChars*2 >= totalChars,
	}
}

// baselineFontSize returns the document's dominant body font size: the mode
// of line font sizes weighted by character count, larger size winning ties.
func baselineFontSize(lines []Line) float64 {
	charsBySize := make(map[float64]int)
	for _, l := range lines {
		charsBySize[l.FontSize] += len(l.Text)
	}
	baseline := 0.0
	best := -1
	for size, n := range charsBySize {
		if n > best || (n == best && size > baseline) {
			best = n
			baseline = size
		}
	}
	return baseline
}

// roundSize quantizes font sizes to 0.1pt so float noise from the PDF content
// stream does not split size clusters.
func roundSize(s float64) float64 {
	return math.Round(s*10) / 10
}
