// Package rank scores sections against the persona/job query and assigns the
// global importance ranking. The score combines tf-idf cosine similarity with
// verbatim keyword overlap under configurable weights.
package rank

import (
	"sort"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
	"github.com/cleverlyblue0009/ROUND-1B/internal/index"
)

// Weights are the score-mixing knobs: Alpha scales statistical similarity,
// Beta scales keyword overlap. They need not sum to 1.
type Weights struct {
	Alpha float64
	Beta  float64
}

// DefaultWeights returns the standard mix.
func DefaultWeights() Weights {
	return Weights{Alpha: 1.0, Beta: 0.5}
}

// BuildQuery derives the query model from the persona and job text. Keywords
// are the unique content tokens of both; an all-stopword query yields an
// empty keyword set and every score degrades to zero rather than failing.
func BuildQuery(persona, job string) document.Query {
	q := document.Query{
		Persona:  persona,
		Job:      job,
		Tokens:   index.Tokenize(persona + " " + job),
		Keywords: make(map[string]struct{}),
	}
	for _, t := range q.Tokens {
		q.Keywords[t] = struct{}{}
	}
	return q
}

// ScoreText computes the combined relevance of a piece of text against the
// query: Alpha * cosine(tfidf(text), tfidf(query)) + Beta * keyword overlap.
func ScoreText(text string, corpus *index.Corpus, q document.Query, w Weights) float64 {
	sim := index.Cosine(corpus.Vector(index.Tokenize(text)), corpus.Vector(q.Tokens))
	return w.Alpha*sim + w.Beta*KeywordOverlap(text, q)
}

// KeywordOverlap returns the fraction of query keywords present verbatim
// (case-insensitive, token-boundary) in the text.
func KeywordOverlap(text string, q document.Query) float64 {
	if len(q.Keywords) == 0 {
		return 0
	}
	present := index.TokenSet(text)
	hits := 0
	for kw := range q.Keywords {
		if _, ok := present[kw]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(q.Keywords))
}

// Rank scores every section and returns all of them sorted by descending
// score with a deterministic tie-break: lower page number first, then earlier
// document in the input order, then lexicographic title. ImportanceRank is
// the 1-based position in that order; no section is filtered out.
//
// docOrder maps document IDs to their position in the input document list.
func Rank(sections []document.Section, corpus *index.Corpus, q document.Query, docOrder map[string]int, w Weights) []document.ScoredSection {
	scored := make([]document.ScoredSection, len(sections))
	for i, s := range sections {
		scored[i] = document.ScoredSection{
			Section: s,
			Score:   ScoreText(s.Content(), corpus, q, w),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.PageNumber != b.PageNumber {
			return a.PageNumber < b.PageNumber
		}
		if ao, bo := docOrder[a.DocumentID], docOrder[b.DocumentID]; ao != bo {
			return ao < bo
		}
		return a.Title < b.Title
	})

	for i := range scored {
		scored[i].ImportanceRank = i + 1
	}
	return scored
}
