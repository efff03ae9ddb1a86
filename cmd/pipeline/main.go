package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KellisLab/auto-meeting-minutes/internal/config"
	"github.com/KellisLab/auto-meeting-minutes/internal/keywords"
	"github.com/KellisLab/auto-meeting-minutes/internal/logger"
	"github.com/KellisLab/auto-meeting-minutes/internal/pipeline"
	"github.com/KellisLab/auto-meeting-minutes/internal/refine"
	"github.com/KellisLab/auto-meeting-minutes/internal/summarizer"
	"github.com/KellisLab/auto-meeting-minutes/internal/watcher"
	"github.com/KellisLab/auto-meeting-minutes/pkg/retry"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	watch := flag.Bool("watch", false, "watch the input directory instead of processing a single file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Transcript Summarization Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Max Concurrent Summaries: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Resolve API credentials: config, then environment, then key file
	apiKey, err := summarizer.ResolveAPIKey(summarizer.DefaultProviders(cfg.Gemini.APIKey, cfg.Gemini.KeyFile)...)
	if err != nil {
		log.Error(ctx, "Failed to resolve API key: %v", err)
		os.Exit(1)
	}

	p, err := buildPipeline(cfg, apiKey, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize pipeline: %v", err)
		os.Exit(1)
	}

	if !*watch {
		runOnce(ctx, p, log)
		return
	}
	runWatch(ctx, cfg, p, log)
}

// runOnce processes the single transcript named on the command line
func runOnce(ctx context.Context, p pipeline.Pipeline, log logger.Logger) {
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pipeline [-config config.yaml] <transcript.txt>")
		fmt.Fprintln(os.Stderr, "       pipeline [-config config.yaml] -watch")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := p.Process(ctx, flag.Arg(0)); err != nil {
		log.Error(ctx, "Processing failed: %v", err)
		os.Exit(1)
	}
}

// runWatch monitors the input directory and processes every new
// transcript until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	w, err := watcher.New(cfg.Paths.Input, p.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// buildPipeline wires the summarization service, orchestrator and refiner
// from configuration.
func buildPipeline(cfg *config.Config, apiKey string, log logger.Logger) (pipeline.Pipeline, error) {
	svc := summarizer.NewGemini(apiKey, cfg.Gemini.Model, log)

	orch := summarizer.New(svc, summarizer.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		Backoff: retry.Backoff{
			MaxAttempts: cfg.Gemini.MaxAttempts,
			BaseDelay:   time.Duration(cfg.Gemini.BackoffBaseMs) * time.Millisecond,
			MaxDelay:    time.Duration(cfg.Gemini.BackoffMaxMs) * time.Millisecond,
		},
		CallTimeout:   time.Duration(cfg.Gemini.CallTimeoutSeconds) * time.Second,
		SegmentPrompt: cfg.Gemini.SegmentPrompt,
		TopicPrompt:   cfg.Gemini.TopicPrompt,
	}, log)

	extractor, err := keywords.NewExtractor()
	if err != nil {
		return nil, fmt.Errorf("load keyword extractor: %w", err)
	}

	refiner := refine.New(refine.Config{
		SimilarityThreshold: cfg.Matching.SimilarityThreshold,
		MaxTimeGap:          time.Duration(cfg.Matching.MaxTimeGapMinutes) * time.Minute,
		ContextWindow:       cfg.Matching.ContextWindow,
		TopKeywords:         cfg.Matching.TopKeywords,
	}, extractor, log)

	return pipeline.New(cfg, orch, refiner, log), nil
}
