package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
)

// CSVProvider handles CSV files. Row batches become body fragments under a
// synthetic heading naming the row range, so a wide table still yields
// rankable sections.
type CSVProvider struct{}

const csvBatchSize = 20

func (p *CSVProvider) Parse(r io.Reader, filename string) ([]document.Page, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	dataRows := records[1:]

	b := newPageBuilder(1)
	for i := 0; i < len(dataRows); i += csvBatchSize {
		end := i + csvBatchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}

		var text strings.Builder
		for _, row := range dataRows[i:end] {
			for j, cell := range row {
				if j < len(headers) {
					text.WriteString(headers[j] + ": " + cell)
				} else {
					text.WriteString(cell)
				}
				if j < len(row)-1 {
					text.WriteString(", ")
				}
			}
			text.WriteString("\n")
		}

		b.addHeading(fmt.Sprintf("Rows %d-%d", i+2, end+1), 2) // 1-indexed, skip header
		b.addBody(text.String())
	}
	return b.build(), nil
}
