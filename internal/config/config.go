package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Config holds every knob of a single analysis run. Invalid values are fatal:
// they would silently corrupt every ranking, so Validate runs before any
// document is touched.
type Config struct {
	InputDir  string
	OutputDir string
	TaskFile  string

	// Score mixing
	Alpha float64 // weight of tf-idf cosine similarity
	Beta  float64 // weight of keyword overlap

	// Section / snippet selection
	TopSections     int // sections whose bodies feed snippet extraction
	MaxSnippets     int // global snippet cap
	MinSnippetChars int
	MaxSnippetChars int

	// Outline heuristics
	HeadingRatio float64 // font-size ratio over baseline marking a heading
	BoldMaxChars int     // character ceiling for bold/structural headings

	// Worker pool for per-document extraction
	Workers int
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		InputDir:  envOr("INPUT_DIR", "input"),
		OutputDir: envOr("OUTPUT_DIR", "output"),
		TaskFile:  envOr("TASK_FILE", "input.json"),

		Alpha: envFloat("SCORE_ALPHA", 1.0),
		Beta:  envFloat("SCORE_BETA", 0.5),

		TopSections:     envInt("TOP_SECTIONS", 20),
		MaxSnippets:     envInt("MAX_SNIPPETS", 12),
		MinSnippetChars: envInt("MIN_SNIPPET_CHARS", 80),
		MaxSnippetChars: envInt("MAX_SNIPPET_CHARS", 600),

		HeadingRatio: envFloat("HEADING_RATIO", 1.15),
		BoldMaxChars: envInt("BOLD_MAX_CHARS", 80),

		Workers: envInt("WORKERS", runtime.NumCPU()),
	}
}

// Validate reports the first invalid knob.
func (c Config) Validate() error {
	if c.Alpha < 0 {
		return fmt.Errorf("SCORE_ALPHA must be non-negative, got %g", c.Alpha)
	}
	if c.Beta < 0 {
		return fmt.Errorf("SCORE_BETA must be non-negative, got %g", c.Beta)
	}
	if c.TopSections < 1 {
		return fmt.Errorf("TOP_SECTIONS must be at least 1, got %d", c.TopSections)
	}
	if c.MaxSnippets < 1 {
		return fmt.Errorf("MAX_SNIPPETS must be at least 1, got %d", c.MaxSnippets)
	}
	if c.MinSnippetChars < 1 {
		return fmt.Errorf("MIN_SNIPPET_CHARS must be at least 1, got %d", c.MinSnippetChars)
	}
	if c.MaxSnippetChars <= c.MinSnippetChars {
		return fmt.Errorf("MAX_SNIPPET_CHARS (%d) must exceed MIN_SNIPPET_CHARS (%d)",
			c.MaxSnippetChars, c.MinSnippetChars)
	}
	if c.HeadingRatio <= 1 {
		return fmt.Errorf("HEADING_RATIO must exceed 1, got %g", c.HeadingRatio)
	}
	if c.BoldMaxChars < 1 {
		return fmt.Errorf("BOLD_MAX_CHARS must be at least 1, got %d", c.BoldMaxChars)
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be at least 1, got %d", c.Workers)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
