package main

import (
	"errors"
	"flag"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/ingest"
)

type cliConfig struct {
	DatasetPath string
	Workers     int
	Related     bool
	Neutral     bool
	Timeout     time.Duration
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.DatasetPath, "dataset", "", "CSV file with url, title and text columns")
	flag.IntVar(&cfg.Workers, "workers", 2, "Rows analyzed concurrently")
	flag.BoolVar(&cfg.Related, "related", false, "Find coverage of the same story from other outlets")
	flag.BoolVar(&cfg.Neutral, "neutral", false, "Generate a neutral rewrite")
	flag.DurationVar(&cfg.Timeout, "timeout", 30*time.Minute, "Abort rows not finished after this long")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	if c.DatasetPath == "" {
		return errors.New("-dataset is required")
	}
	if c.Workers < 1 {
		return errors.New("-workers must be at least 1")
	}
	return nil
}

func (c cliConfig) options() ingest.Options {
	return ingest.Options{
		FindRelatedSources: c.Related,
		GenerateNeutral:    c.Neutral,
	}
}
