// Copyright 2025 Pondside Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pondside/docbrief"
	"github.com/pondside/docbrief/ai"
	"github.com/pondside/docbrief/config"
	"github.com/pondside/docbrief/extract"
	"github.com/pondside/docbrief/ingestion"
	"github.com/pondside/docbrief/server"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "docbrief",
		Usage: "Document summarization and classification service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the document enrichment HTTP service",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML configuration file",
					},
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (overrides configuration)",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory (overrides configuration)",
					},
				},
			},
			{
				Name:      "extract",
				Usage:     "Extract plain text from a document file and print it",
				ArgsUsage: "FILE",
				Action:    extractCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if addr := c.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dbPath := c.String("db"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	aiConfig := ai.NewConfig(
		ai.WithSummarizerHost(cfg.AI.SummarizerHost),
		ai.WithClassifierHost(cfg.AI.ClassifierHost),
		ai.WithSummarizerModel(cfg.AI.SummarizerModel),
		ai.WithClassifierModel(cfg.AI.ClassifierModel),
		ai.WithMaxSummaryWords(cfg.AI.MaxSummaryWords),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	service, err := docbrief.NewService(cfg.Database.Path, docbrief.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer service.Close()

	pipelineOpts := []ingestion.Option{
		ingestion.WithMaxContentSize(int(cfg.Server.MaxUploadBytes)),
		ingestion.WithEnrichmentTimeout(cfg.Pipeline.EnrichmentTimeout()),
	}
	if cfg.Pipeline.PoolSize > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(cfg.Pipeline.PoolSize))
	}

	pipeline, err := service.NewPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	// Re-queue documents a previous run left unfinished
	if recovered, err := pipeline.Recover(c.Context); err != nil {
		slog.Warn("failed to recover unfinished documents", "err", err)
	} else if recovered > 0 {
		slog.Info("resumed processing of unfinished documents", "count", recovered)
	}

	queries, err := service.NewQueryService()
	if err != nil {
		return fmt.Errorf("failed to create query service: %w", err)
	}

	srv, err := server.NewServer(pipeline, queries,
		server.WithMaxUploadBytes(cfg.Server.MaxUploadBytes))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func extractCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}
	path := c.Args().First()

	kind, ok := extract.KindForFilename(path)
	if !ok {
		return fmt.Errorf("unsupported file type: %s (supported: %s)",
			path, strings.Join(extract.SupportedExtensions(), ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := extract.Extract(kind, data)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	fmt.Println(text)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
