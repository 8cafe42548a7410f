package document

// Fragment is an atomic run of text on a page, as reported by a page text
// provider. Positions use a top-down coordinate system: Y grows toward the
// bottom of the page.
type Fragment struct {
	Text     string
	Page     int
	FontSize float64
	Bold     bool
	X        float64
	Y        float64
}

// Page is an ordered sequence of fragments from one document page.
type Page struct {
	Number    int
	Fragments []Fragment
}

// Section is a heading-delimited unit of a document's text. BodyText holds
// everything between this heading and the next one. Sections are created by
// the outline extractor and read-only thereafter.
type Section struct {
	DocumentID string
	Title      string
	PageNumber int
	Level      int // 1 = top-level heading
	BodyText   string
}

// Content returns the scorable text of a section: heading plus body. Heading
// words carry relevance signal of their own, so both feed the corpus and the
// scorer.
func (s Section) Content() string {
	if s.BodyText == "" {
		return s.Title
	}
	return s.Title + " " + s.BodyText
}

// ScoredSection is a Section with its relevance score and global rank.
// ImportanceRank is dense and 1-based across all sections of all documents.
type ScoredSection struct {
	Section
	Score          float64
	ImportanceRank int
}

// Snippet is a bounded-length passage drawn from one section's body.
type Snippet struct {
	DocumentID   string
	SectionTitle string
	PageNumber   int
	Text         string
	Score        float64
	Rank         int
}

// Query is the persona/job model shared read-only by the scoring stages.
// Tokens is the tokenized persona+job text; Keywords is the unique content
// token set used for verbatim-overlap scoring.
type Query struct {
	Persona  string
	Job      string
	Tokens   []string
	Keywords map[string]struct{}
}
