// Package app wires configuration into a ready pipeline for the binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
	"github.com/DjordjeVuckovic/news-lens/internal/bias"
	"github.com/DjordjeVuckovic/news-lens/internal/llm"
	"github.com/DjordjeVuckovic/news-lens/internal/neutral"
	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	"github.com/DjordjeVuckovic/news-lens/internal/related"
	"github.com/DjordjeVuckovic/news-lens/internal/scrape"
	"github.com/DjordjeVuckovic/news-lens/internal/search"
	"github.com/DjordjeVuckovic/news-lens/internal/search/es"
	"github.com/DjordjeVuckovic/news-lens/internal/search/newsapi"
	"github.com/DjordjeVuckovic/news-lens/internal/search/rss"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-lens/pkg/server"
)

type App struct {
	Pipeline *analysis.Pipeline
	Health   server.HealthChecker
	Outlets  *outlet.Catalogue

	storage *factory.Storage
}

func (a *App) Close(ctx context.Context) error {
	return a.storage.Close(ctx)
}

// Build connects storage and the optional collaborators. Collaborators that are not
// configured stay nil so their components resolve through the fallback arm.
func Build(ctx context.Context, cfg *Config) (*App, error) {
	outlets := outlet.Default()
	if cfg.OutletsPath != "" {
		var err error
		outlets, err = outlet.LoadFromFile(cfg.OutletsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load outlets: %w", err)
		}
	}
	slog.Info("Outlets loaded", "count", len(outlets.All()))

	store, err := factory.NewRepository(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}
	slog.Info("Storage ready", "type", cfg.Storage.Type)

	var (
		analyzer  bias.Analyzer
		rewriteLM neutral.Collaborator
	)
	if cfg.LLM.Enabled {
		client, err := llm.NewOpenAIClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, llm.WithTimeout(cfg.LLM.Timeout))
		if err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("failed to create llm client: %w", err)
		}
		analyzer = llm.NewBiasAnalyzer(client, cfg.LLM.Model)
		rewriteLM = llm.NewRewriter(client, cfg.LLM.Model)
		slog.Info("LLM scoring enabled", "model", cfg.LLM.Model)
	} else {
		slog.Info("LLM_API_KEY not set, scoring and rewriting use deterministic fallbacks")
	}

	acquirer := scrape.NewAcquirer(scrape.WithFetch(cfg.FetchEnabled), scrape.WithTimeout(cfg.FetchTimeout))
	scorer := bias.NewScorer(analyzer)

	searcher, err := newSearcher(cfg, outlets)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	finderOpts := []related.Option{related.WithStrategy(related.NewStrategy(cfg.RelatedConcurrency))}
	if searcher != nil {
		finderOpts = append(finderOpts, related.WithSearcher(searcher))
	}
	finder := related.NewFinder(outlets, acquirer, scorer, finderOpts...)

	var pipelineOpts []analysis.Option
	if cfg.ESArchive {
		archive, err := es.NewArchive(ctx, cfg.ES, outlets)
		if err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("failed to create article archive: %w", err)
		}
		pipelineOpts = append(pipelineOpts, analysis.WithIndexer(archive))
		slog.Info("Article archive enabled", "index", cfg.ES.IndexName)
	}

	return &App{
		Pipeline: analysis.NewPipeline(store.Repository, acquirer, scorer, neutral.NewRewriter(rewriteLM), finder, pipelineOpts...),
		Health:   store.Health,
		Outlets:  outlets,
		storage:  store,
	}, nil
}

func newSearcher(cfg *Config, outlets *outlet.Catalogue) (search.Searcher, error) {
	switch cfg.Search {
	case SearchNewsAPI:
		client, err := newsapi.NewClient(cfg.NewsAPI.URL, cfg.NewsAPI.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to create news api client: %w", err)
		}
		slog.Info("Related search via NewsAPI")
		return client, nil
	case SearchES:
		s, err := es.NewSearcher(cfg.ES)
		if err != nil {
			return nil, fmt.Errorf("failed to create elasticsearch searcher: %w", err)
		}
		slog.Info("Related search via Elasticsearch", "addresses", cfg.ES.Addresses)
		return s, nil
	case SearchRSS:
		slog.Info("Related search via RSS feeds")
		return rss.NewSearcher(outlets.All(), nil), nil
	default:
		slog.Info("Related search disabled, related coverage is generated")
		return nil, nil
	}
}
