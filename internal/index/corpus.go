// Package index builds the lexical statistical model shared by the scoring
// stages: a vocabulary with section-level document frequencies over all
// extracted sections, from which tf-idf vectors are derived.
package index

import "math"

// Corpus holds term statistics over all sections of a run. It is built once
// and read-only afterwards, so concurrent scoring is safe.
type Corpus struct {
	vocabulary map[string]int // term -> vocabulary index
	df         map[string]int // term -> number of sections containing it
	total      int            // total section count
}

// Build constructs corpus statistics from the scorable text of every section.
// Document frequency is counted at section granularity: one section counts a
// term at most once, however often it repeats.
func Build(texts []string) *Corpus {
	c := &Corpus{
		vocabulary: make(map[string]int),
		df:         make(map[string]int),
		total:      len(texts),
	}
	for _, text := range texts {
		for term := range TokenSet(text) {
			if _, ok := c.vocabulary[term]; !ok {
				c.vocabulary[term] = len(c.vocabulary)
			}
			c.df[term]++
		}
	}
	return c
}

// Sections returns the number of sections the corpus was built over.
func (c *Corpus) Sections() int { return c.total }

// VocabularySize returns the number of distinct terms.
func (c *Corpus) VocabularySize() int { return len(c.vocabulary) }

// IDF returns the inverse-document-frequency weight of a term. The log(1+N/df)
// form stays positive and finite even for a corpus of one section; terms never
// seen during Build are weighted as if they appeared in a single section.
func (c *Corpus) IDF(term string) float64 {
	if c.total == 0 {
		return 0
	}
	df := c.df[term]
	if df < 1 {
		df = 1
	}
	return math.Log(1 + float64(c.total)/float64(df))
}

// Vector builds the sparse tf-idf vector of a token sequence.
func (c *Corpus) Vector(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	tf := make(map[string]int)
	for _, t := range tokens {
		tf[t]++
	}
	vec := make(map[string]float64, len(tf))
	for term, n := range tf {
		vec[term] = float64(n) * c.IDF(term)
	}
	return vec
}

// Cosine computes the cosine similarity of two sparse vectors; it is zero
// when either vector has zero magnitude.
func Cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot, normA, normB float64
	for term, va := range a {
		normA += va * va
		if vb, ok := b[term]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
