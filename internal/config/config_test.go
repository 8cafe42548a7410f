package config

import (
	"strings"
	"testing"
)

func valid() Config {
	return Config{
		InputDir:        "input",
		OutputDir:       "output",
		TaskFile:        "input.json",
		Alpha:           1.0,
		Beta:            0.5,
		TopSections:     20,
		MaxSnippets:     12,
		MinSnippetChars: 80,
		MaxSnippetChars: 600,
		HeadingRatio:    1.15,
		BoldMaxChars:    80,
		Workers:         4,
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsBadKnobs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative alpha", func(c *Config) { c.Alpha = -0.1 }, "SCORE_ALPHA"},
		{"negative beta", func(c *Config) { c.Beta = -1 }, "SCORE_BETA"},
		{"zero top sections", func(c *Config) { c.TopSections = 0 }, "TOP_SECTIONS"},
		{"zero snippet cap", func(c *Config) { c.MaxSnippets = 0 }, "MAX_SNIPPETS"},
		{"zero min chars", func(c *Config) { c.MinSnippetChars = 0 }, "MIN_SNIPPET_CHARS"},
		{"ceiling below floor", func(c *Config) { c.MaxSnippetChars = 40 }, "MAX_SNIPPET_CHARS"},
		{"heading ratio at one", func(c *Config) { c.HeadingRatio = 1.0 }, "HEADING_RATIO"},
		{"zero bold ceiling", func(c *Config) { c.BoldMaxChars = 0 }, "BOLD_MAX_CHARS"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "WORKERS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error to mention %s, got %q", tc.want, err)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCORE_ALPHA", "2.5")
	t.Setenv("TOP_SECTIONS", "7")
	t.Setenv("INPUT_DIR", "/data/in")

	cfg := Load()
	if cfg.Alpha != 2.5 {
		t.Errorf("expected alpha 2.5, got %g", cfg.Alpha)
	}
	if cfg.TopSections != 7 {
		t.Errorf("expected 7 top sections, got %d", cfg.TopSections)
	}
	if cfg.InputDir != "/data/in" {
		t.Errorf("expected input dir /data/in, got %q", cfg.InputDir)
	}
}

func TestLoad_IgnoresUnparsableEnv(t *testing.T) {
	t.Setenv("MAX_SNIPPETS", "plenty")
	cfg := Load()
	if cfg.MaxSnippets != 12 {
		t.Errorf("expected default 12 when env is unparsable, got %d", cfg.MaxSnippets)
	}
}
