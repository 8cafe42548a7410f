package pipeline

import (
	"time"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
	"github.com/cleverlyblue0009/ROUND-1B/internal/task"
)

// Result is the output structure written as output.json.
type Result struct {
	Metadata           Metadata       `json:"metadata"`
	ExtractedSections  []SectionEntry `json:"extracted_sections"`
	SubsectionAnalysis []SnippetEntry `json:"subsection_analysis"`
}

// Metadata echoes the run inputs plus a generation timestamp.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// SectionEntry is one ranked section, ordered by importance_rank ascending.
type SectionEntry struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SnippetEntry is one ranked snippet, ordered by rank ascending.
type SnippetEntry struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// assemble merges ranked sections, ranked snippets, and run metadata into the
// output structure. Inputs arrive already sorted by their ranks.
func assemble(t task.Task, ranked []document.ScoredSection, snippets []document.Snippet, ts time.Time) *Result {
	res := &Result{
		Metadata: Metadata{
			InputDocuments:      make([]string, 0, len(t.Documents)),
			Persona:             t.Persona,
			JobToBeDone:         t.Job,
			ProcessingTimestamp: ts.UTC().Format(time.RFC3339),
		},
		ExtractedSections:  make([]SectionEntry, 0, len(ranked)),
		SubsectionAnalysis: make([]SnippetEntry, 0, len(snippets)),
	}

	for _, d := range t.Documents {
		res.Metadata.InputDocuments = append(res.Metadata.InputDocuments, docID(d))
	}
	for _, s := range ranked {
		res.ExtractedSections = append(res.ExtractedSections, SectionEntry{
			Document:       s.DocumentID,
			SectionTitle:   s.Title,
			ImportanceRank: s.ImportanceRank,
			PageNumber:     s.PageNumber,
		})
	}
	for _, sn := range snippets {
		res.SubsectionAnalysis = append(res.SubsectionAnalysis, SnippetEntry{
			Document:    sn.DocumentID,
			RefinedText: sn.Text,
			PageNumber:  sn.PageNumber,
		})
	}
	return res
}
