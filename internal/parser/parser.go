package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
)

// Provider converts raw document bytes into an ordered sequence of pages of
// text fragments. Providers must not reorder pages; a document that yields
// zero fragments is valid input.
type Provider interface {
	Parse(r io.Reader, filename string) ([]document.Page, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate provider for a filename.
func ForFile(filename string) (Provider, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFProvider{}, nil
	case ".txt":
		return &TextProvider{}, nil
	case ".md", ".markdown":
		return &MarkdownProvider{}, nil
	case ".csv":
		return &CSVProvider{}, nil
	case ".html", ".htm":
		return &HTMLProvider{}, nil
	case ".docx":
		return &DOCXProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupported checks if a file extension is supported.
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
