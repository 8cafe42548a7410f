// Package pipeline wires the analysis stages together: parallel per-document
// outline extraction, a barrier, then corpus indexing, relevance ranking,
// snippet extraction, and result assembly. Each stage consumes an immutable
// snapshot from its predecessor.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cleverlyblue0009/ROUND-1B/internal/config"
	"github.com/cleverlyblue0009/ROUND-1B/internal/document"
	"github.com/cleverlyblue0009/ROUND-1B/internal/index"
	"github.com/cleverlyblue0009/ROUND-1B/internal/outline"
	"github.com/cleverlyblue0009/ROUND-1B/internal/parser"
	"github.com/cleverlyblue0009/ROUND-1B/internal/rank"
	"github.com/cleverlyblue0009/ROUND-1B/internal/snippet"
	"github.com/cleverlyblue0009/ROUND-1B/internal/task"
)

// Runner executes one analysis run.
type Runner struct {
	cfg config.Config
	log *slog.Logger

	// seams, replaceable in tests
	providerFor func(filename string) (parser.Provider, error)
	open        func(path string) (io.ReadCloser, error)
	now         func() time.Time
}

// New creates a Runner with the given configuration.
func New(cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{
		cfg:         cfg,
		log:         log,
		providerFor: parser.ForFile,
		open:        func(path string) (io.ReadCloser, error) { return os.Open(path) },
		now:         time.Now,
	}
}

// Run performs the full analysis. Per-document failures are logged and the
// document skipped; a run where every document fails still yields a valid,
// empty result. The only errors returned are context cancellation.
func (r *Runner) Run(ctx context.Context, t task.Task) (*Result, error) {
	outlines := r.extractAll(ctx, t)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Barrier: ranking is global across documents, so every section must be
	// collected before any scoring starts.
	docOrder := make(map[string]int, len(t.Documents))
	var sections []document.Section
	for i, d := range t.Documents {
		docOrder[docID(d)] = i
		sections = append(sections, outlines[i].Sections...)
	}
	if len(sections) == 0 {
		r.log.Warn("no sections extracted from any document")
	}

	contents := make([]string, len(sections))
	for i, s := range sections {
		contents[i] = s.Content()
	}
	corpus := index.Build(contents)
	query := rank.BuildQuery(t.Persona, t.Job)
	weights := rank.Weights{Alpha: r.cfg.Alpha, Beta: r.cfg.Beta}

	ranked := rank.Rank(sections, corpus, query, docOrder, weights)

	top := ranked
	if len(top) > r.cfg.TopSections {
		top = top[:r.cfg.TopSections]
	}
	snippets := snippet.Extract(top, corpus, query, docOrder, snippet.Config{
		MinChars:    r.cfg.MinSnippetChars,
		MaxChars:    r.cfg.MaxSnippetChars,
		MaxSnippets: r.cfg.MaxSnippets,
		Weights:     weights,
	})

	r.log.Info("analysis complete",
		"documents", len(t.Documents),
		"sections", len(ranked),
		"snippets", len(snippets))

	return assemble(t, ranked, snippets, r.now()), nil
}

// extractAll parses and outlines every document on a bounded worker pool.
// Results land in a slice indexed by the task's document order, so
// concurrency never affects output ordering.
func (r *Runner) extractAll(ctx context.Context, t task.Task) []outline.Outline {
	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	outlines := make([]outline.Outline, len(t.Documents))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, d := range t.Documents {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, d task.DocumentRef) {
			defer wg.Done()
			defer func() { <-sem }()
			outlines[i] = r.extractOne(d)
		}(i, d)
	}
	wg.Wait()
	return outlines
}

// extractOne recovers the outline of a single document. Any failure is a
// MalformedDocument: logged, and the document contributes nothing.
func (r *Runner) extractOne(d task.DocumentRef) outline.Outline {
	log := r.log.With("document", d.Filename)

	p, err := r.providerFor(d.Filename)
	if err != nil {
		log.Warn("unsupported document, skipping", "error", err)
		return outline.Outline{}
	}

	f, err := r.open(d.Path)
	if err != nil {
		log.Warn("open failed, skipping", "error", err)
		return outline.Outline{}
	}
	defer f.Close()

	pages, err := p.Parse(f, d.Filename)
	if err != nil {
		log.Warn("parse failed, skipping", "error", err)
		return outline.Outline{}
	}

	o := outline.Extract(pages, docID(d), outline.Config{
		HeadingRatio: r.cfg.HeadingRatio,
		BoldMaxChars: r.cfg.BoldMaxChars,
	})
	if len(o.Sections) == 0 {
		log.Warn("no usable text in document")
	} else {
		log.Info("extracted outline", "title", o.Title, "sections", len(o.Sections))
	}
	return o
}

// docID is the identifier sections carry for a document: the bare filename.
func docID(d task.DocumentRef) string {
	return filepath.Base(d.Filename)
}
