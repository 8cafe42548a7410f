// Package snippet extracts bounded-length passages from the top-ranked
// sections and re-ranks them against the same persona/job query.
package snippet

import (
	"sort"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
	"github.com/cleverlyblue0009/ROUND-1B/internal/index"
	"github.com/cleverlyblue0009/ROUND-1B/internal/rank"
)

// Config controls snippet sizing and output volume.
type Config struct {
	MinChars    int // floor: a snippet is never a dangling word
	MaxChars    int // ceiling: a snippet stays refined, not a whole section
	MaxSnippets int // global cap across all sections
	Weights     rank.Weights
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MinChars:    80,
		MaxChars:    600,
		MaxSnippets: 12,
		Weights:     rank.DefaultWeights(),
	}
}

// tieBreakPrefix is how much snippet text participates in the final
// deterministic tie-break.
const tieBreakPrefix = 40

// Extract splits the bodies of the given sections into candidate passages,
// scores each with the section scoring formula, and returns the globally
// top-ranked snippets. Rank is the 1-based position in the returned list.
func Extract(sections []document.ScoredSection, corpus *index.Corpus, q document.Query, docOrder map[string]int, cfg Config) []document.Snippet {
	var candidates []document.Snippet
	for _, sec := range sections {
		for _, text := range Candidates(sec.BodyText, cfg.MinChars, cfg.MaxChars) {
			candidates = append(candidates, document.Snippet{
				DocumentID:   sec.DocumentID,
				SectionTitle: sec.Title,
				PageNumber:   sec.PageNumber,
				Text:         text,
				Score:        rank.ScoreText(text, corpus, q, cfg.Weights),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.PageNumber != b.PageNumber {
			return a.PageNumber < b.PageNumber
		}
		if ao, bo := docOrder[a.DocumentID], docOrder[b.DocumentID]; ao != bo {
			return ao < bo
		}
		return prefix(a.Text, tieBreakPrefix) < prefix(b.Text, tieBreakPrefix)
	})

	if len(candidates) > cfg.MaxSnippets {
		candidates = candidates[:cfg.MaxSnippets]
	}
	for i := range candidates {
		candidates[i].Rank = i + 1
	}
	return candidates
}

// Candidates segments body text into passages between minChars and maxChars.
// Sentences and bullet items are the split points; short parts are re-grouped
// until the floor is reached, over-long parts are cut at word boundaries. A
// non-empty body shorter than the floor yields itself as a single candidate,
// so a top-ranked section is never silently dropped.
func Candidates(body string, minChars, maxChars int) []string {
	parts := splitParts(body)
	if len(parts) == 0 {
		return nil
	}

	var out []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, buf.String())
			buf.Reset()
		}
	}

	for _, part := range parts {
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(part)

		// The buffer is always below the floor here, so an overflowing part
		// must be cut at the ceiling rather than flushed early: an early
		// flush would emit a candidate shorter than minChars.
		if buf.Len() > maxChars {
			pieces := hardSplit(buf.String(), maxChars)
			buf.Reset()
			out = append(out, pieces[:len(pieces)-1]...)
			buf.WriteString(pieces[len(pieces)-1])
		}
		if buf.Len() >= minChars {
			flush()
		}
	}

	// Trailing remainder below the floor: merge into the previous candidate
	// when it fits, otherwise it survives alone only if it is all there is.
	if buf.Len() > 0 {
		rest := buf.String()
		switch {
		case len(rest) >= minChars:
			out = append(out, rest)
		case len(out) > 0 && len(out[len(out)-1])+1+len(rest) <= maxChars:
			out[len(out)-1] += " " + rest
		case len(out) == 0:
			out = append(out, rest)
		}
	}
	return out
}

// snippet candidate boundaries: sentence enders, line breaks, bullet glyphs
var bulletCutter = strings.NewReplacer("•", "\n", "●", "\n", "◦", "\n", "▪", "\n")

func splitParts(body string) []string {
	var parts []string
	for _, seg := range strings.FieldsFunc(bulletCutter.Replace(body), func(r rune) bool {
		return r == '\n' || r == '\r'
	}) {
		for _, sent := range splitSentences(seg) {
			sent = strings.TrimLeft(sent, "-*•●◦▪ ")
			sent = strings.TrimSpace(sent)
			if sent != "" {
				parts = append(parts, sent)
			}
		}
	}
	return parts
}

// splitSentences does basic sentence splitting after . ! ? followed by space.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, strings.TrimSpace(current.String()))
	}
	return sentences
}

// hardSplit cuts text into pieces of at most maxChars at word boundaries;
// a single over-long word is cut mid-word as a last resort.
func hardSplit(text string, maxChars int) []string {
	var pieces []string
	var buf strings.Builder
	for _, word := range strings.Fields(text) {
		for len(word) > maxChars {
			if buf.Len() > 0 {
				pieces = append(pieces, buf.String())
				buf.Reset()
			}
			pieces = append(pieces, word[:maxChars])
			word = word[maxChars:]
		}
		if buf.Len() > 0 && buf.Len()+1+len(word) > maxChars {
			pieces = append(pieces, buf.String())
			buf.Reset()
		}
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(word)
	}
	if buf.Len() > 0 || len(pieces) == 0 {
		pieces = append(pieces, buf.String())
	}
	return pieces
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
