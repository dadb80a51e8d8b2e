package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-lens/internal/app"
	"github.com/DjordjeVuckovic/news-lens/internal/ingest"
	"github.com/DjordjeVuckovic/news-lens/internal/report"
)

func main() {
	os.Exit(run())
}

// run returns 1 when any row failed so scripts can detect partial batches.
func run() int {
	cli := parseFlags()
	if err := cli.validate(); err != nil {
		slog.Error("Invalid input", "error", err)
		return 2
	}

	cfg, err := app.LoadConfig("cmd/batch_analyze/.env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	file, err := os.Open(cli.DatasetPath)
	if err != nil {
		slog.Error("Failed to open dataset", "path", cli.DatasetPath, "error", err)
		return 1
	}
	rows, err := ingest.NewCSVReader(file, cli.options()).Read()
	_ = file.Close()
	if err != nil {
		slog.Error("Failed to read dataset", "path", cli.DatasetPath, "error", err)
		return 1
	}
	slog.Info("Dataset loaded", "rows", len(rows), "workers", cli.Workers)

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	outcomes := ingest.NewBatch(a.Pipeline, ingest.WithWorkers(cli.Workers)).Run(ctx, rows)

	if err := report.WriteBatch(outcomes, os.Stdout); err != nil {
		slog.Error("Failed to write report", "error", err)
		return 1
	}
	if ingest.Failed(outcomes) > 0 {
		return 1
	}
	return 0
}
