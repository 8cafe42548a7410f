package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cleverlyblue0009/ROUND-1B/internal/config"
	"github.com/cleverlyblue0009/ROUND-1B/internal/pipeline"
	"github.com/cleverlyblue0009/ROUND-1B/internal/task"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	inputDir := flag.String("input", "", "input directory (default: env INPUT_DIR or ./input)")
	outputDir := flag.String("output", "", "output directory (default: env OUTPUT_DIR or ./output)")
	taskFile := flag.String("task", "", "task descriptor filename in the input directory")
	topK := flag.Int("topk", cfg.TopSections, "sections considered for snippet extraction")
	snips := flag.Int("snips", cfg.MaxSnippets, "maximum snippets in the output")
	flag.Parse()

	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *taskFile != "" {
		cfg.TaskFile = *taskFile
	}
	cfg.TopSections = *topK
	cfg.MaxSnippets = *snips

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	t, err := task.Load(cfg.InputDir, cfg.TaskFile, log)
	if err != nil {
		log.Error("cannot load task descriptor", "error", err)
		os.Exit(1)
	}
	if len(t.Documents) == 0 {
		log.Error("no documents to process", "input", cfg.InputDir)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	result, err := pipeline.New(cfg, log).Run(ctx, t)
	if err != nil {
		log.Error("analysis aborted", "error", err)
		os.Exit(1)
	}

	if err := writeResult(cfg.OutputDir, result); err != nil {
		log.Error("cannot write result", "error", err)
		os.Exit(1)
	}

	log.Info("done",
		"documents", len(t.Documents),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
		"output", filepath.Join(cfg.OutputDir, "output.json"))
}

func writeResult(outputDir string, result *pipeline.Result) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "output.json"), append(data, '\n'), 0o644)
}
