package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-lens/internal/app"
	"github.com/DjordjeVuckovic/news-lens/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli := parseFlags()

	req, err := cli.request()
	if err != nil {
		slog.Error("Invalid input", "error", err)
		return 2
	}

	cfg, err := app.LoadConfig("cmd/analyze/.env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

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

	res, err := a.Pipeline.Analyze(ctx, req)
	if err != nil {
		slog.Error("Analysis failed", "error", err)
		return 1
	}

	write := report.WriteTable
	if cli.JSON {
		write = report.WriteJSON
	}
	if err := write(res, os.Stdout); err != nil {
		slog.Error("Failed to write report", "error", err)
		return 1
	}
	return 0
}
