package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonathan/resume-insights/internal/config"
	"github.com/jonathan/resume-insights/internal/experience"
	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/skills"
)

// app wires the configured pipeline components together. Built once per
// command invocation; each resume is then a pure function of its text.
type app struct {
	cfg       config.Config
	client    llm.Client
	resolver  *experience.Resolver
	extractor *skills.Extractor
	printer   *observability.Printer
	logger    *slog.Logger
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded.MergeWithDefaults(config.DefaultConfig())
	}
	cfg.FromEnv()
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	modelConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		modelConfig = modelConfig.WithModel(llm.TierLite, cfg.Model)
	}
	client, err := llm.NewGeminiClient(ctx, modelConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	oracleConfig := llm.DefaultOracleConfig()
	oracleConfig.MaxInputChars = cfg.MaxChars
	oracleConfig.MaxRetries = cfg.MaxRetries
	oracleConfig.Timeout = time.Duration(cfg.TimeoutSecs * float64(time.Second))
	oracle := llm.NewOracle(client, oracleConfig)

	return &app{
		cfg:       cfg,
		client:    client,
		resolver:  experience.NewResolver(oracle, experience.RoundingMode(cfg.RoundingMode), logger),
		extractor: skills.NewExtractor(oracle, logger),
		printer:   observability.NewPrinter(os.Stdout),
		logger:    logger,
	}, nil
}

func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
}
