package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
)

type cliConfig struct {
	URL      string
	Title    string
	Text     string
	TextFile string
	Related  bool
	Neutral  bool
	JSON     bool
	Timeout  time.Duration
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.URL, "url", "", "Article URL to fetch and analyze")
	flag.StringVar(&cfg.Title, "title", "", "Title of a pasted article (with -text or -text-file)")
	flag.StringVar(&cfg.Text, "text", "", "Article body to analyze")
	flag.StringVar(&cfg.TextFile, "text-file", "", "Read the article body from a file")
	flag.BoolVar(&cfg.Related, "related", true, "Find coverage of the same story from other outlets")
	flag.BoolVar(&cfg.Neutral, "neutral", true, "Generate a neutral rewrite")
	flag.BoolVar(&cfg.JSON, "json", false, "Print the result as JSON instead of a table")
	flag.DurationVar(&cfg.Timeout, "timeout", 2*time.Minute, "Abort the analysis after this long")

	flag.Parse()
	return cfg
}

func (c cliConfig) request() (analysis.Request, error) {
	text := c.Text
	if c.TextFile != "" {
		b, err := os.ReadFile(c.TextFile)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(b)
	}

	req := analysis.Request{
		URL:                c.URL,
		Title:              c.Title,
		Text:               text,
		FindRelatedSources: c.Related,
		GenerateNeutral:    c.Neutral,
	}
	return req, req.Validate()
}
