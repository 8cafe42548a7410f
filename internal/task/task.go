// Package task loads the input task descriptor: the persona, the job to be
// done, and the document list, resolved against the input directory.
package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/cleverlyblue0009/ROUND-1B/internal/parser"
)

// DocumentRef is one resolved input document.
type DocumentRef struct {
	Filename string // name as listed in the descriptor
	Title    string // optional display title
	Path     string // absolute or input-dir-relative path on disk
}

// Task is the normalized analysis request.
type Task struct {
	Persona   string
	Job       string
	Documents []DocumentRef
}

// docEntry accepts both {"filename": ..., "title": ...} objects and bare
// filename strings in the descriptor's documents list.
type docEntry struct {
	Filename string
	Title    string
}

func (d *docEntry) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		d.Filename = s
		return nil
	}
	var obj struct {
		Filename string `json:"filename"`
		Title    string `json:"title"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	d.Filename = obj.Filename
	d.Title = obj.Title
	return nil
}

type rawTask struct {
	Persona struct {
		Role string `json:"role"`
	} `json:"persona"`
	JobToBeDone struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`
	Documents []docEntry `json:"documents"`
}

// Load reads the task descriptor from inputDir and resolves its document
// list. Listed files that are missing or unsupported are skipped with a
// warning; when the descriptor lists no documents at all, the input directory
// is scanned for supported files instead.
func Load(inputDir, taskFile string, log *slog.Logger) (Task, error) {
	path := taskFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(inputDir, taskFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Task{}, fmt.Errorf("read task descriptor: %w", err)
	}

	var raw rawTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return Task{}, fmt.Errorf("parse task descriptor: %w", err)
	}

	t := Task{Persona: raw.Persona.Role, Job: raw.JobToBeDone.Task}
	if t.Persona == "" {
		t.Persona = "(unknown persona)"
	}
	if t.Job == "" {
		t.Job = "(no task specified)"
	}

	if len(raw.Documents) == 0 {
		t.Documents = discover(inputDir)
		return t, nil
	}

	for _, d := range raw.Documents {
		if d.Filename == "" {
			continue
		}
		p := d.Filename
		if !filepath.IsAbs(p) {
			p = filepath.Join(inputDir, d.Filename)
		}
		if !parser.IsSupported(p) {
			log.Warn("unsupported document type, skipping", "filename", d.Filename)
			continue
		}
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			log.Warn("document not found, skipping", "filename", d.Filename, "dir", inputDir)
			continue
		}
		t.Documents = append(t.Documents, DocumentRef{Filename: d.Filename, Title: d.Title, Path: p})
	}
	return t, nil
}

// discover lists all supported files in the input directory, sorted by name.
func discover(inputDir string) []DocumentRef {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil
	}
	var docs []DocumentRef
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupported(e.Name()) {
			continue
		}
		docs = append(docs, DocumentRef{
			Filename: e.Name(),
			Path:     filepath.Join(inputDir, e.Name()),
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Filename < docs[j].Filename })
	return docs
}
