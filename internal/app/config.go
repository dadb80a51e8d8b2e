package app

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/llm"
	"github.com/DjordjeVuckovic/news-lens/internal/search/es"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-lens/pkg/config/env"
	"github.com/DjordjeVuckovic/news-lens/pkg/utils"
)

type SearchKind string

const (
	SearchNone    SearchKind = "none"
	SearchNewsAPI SearchKind = "newsapi"
	SearchES      SearchKind = "es"
	SearchRSS     SearchKind = "rss"
)

const defaultFetchTimeout = 10 * time.Second

type NewsAPIConfig struct {
	Key string
	URL string
}

type Config struct {
	ENV      string
	LogLevel slog.Level

	Storage *factory.StorageConfig
	LLM     *llm.Config

	Search  SearchKind
	NewsAPI NewsAPIConfig
	ES      es.ClientConfig
	// ESArchive indexes every analyzed article into ES_INDEX_NAME.
	ESArchive bool

	FetchEnabled       bool
	FetchTimeout       time.Duration
	RelatedConcurrency int
	OutletsPath        string
}

// LoadConfig loads the .env file at defaultEnvPath (or ENV_PATH) and reads the environment.
func LoadConfig(defaultEnvPath string) (*Config, error) {
	cfg := &Config{ENV: os.Getenv("ENV")}

	if err := env.LoadDotEnv(cfg.ENV, defaultEnvPath); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	cfg.LogLevel = slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}
	cfg.Storage = storageCfg
	cfg.LLM = llm.LoadConfigFromEnv()

	cfg.Search = SearchKind(os.Getenv("RELATED_SEARCH"))
	if cfg.Search == "" {
		cfg.Search = SearchNone
	}
	switch cfg.Search {
	case SearchNone, SearchNewsAPI, SearchES, SearchRSS:
	default:
		return nil, fmt.Errorf("invalid RELATED_SEARCH value: %s, expected one of %v",
			cfg.Search, []SearchKind{SearchNone, SearchNewsAPI, SearchES, SearchRSS})
	}

	cfg.NewsAPI = NewsAPIConfig{
		Key: os.Getenv("NEWS_API_KEY"),
		URL: os.Getenv("NEWS_API_URL"),
	}

	cfg.ES = es.ClientConfig{
		Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES")),
		IndexName: os.Getenv("ES_INDEX_NAME"),
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	}
	cfg.ESArchive = os.Getenv("ES_ARCHIVE") == "true"
	if (cfg.Search == SearchES || cfg.ESArchive) && len(cfg.ES.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
	}

	cfg.FetchEnabled = os.Getenv("FETCH_ENABLED") != "false"
	cfg.FetchTimeout = defaultFetchTimeout
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q", v)
		}
		cfg.FetchTimeout = d
	}

	cfg.RelatedConcurrency = 1
	if v := os.Getenv("RELATED_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid RELATED_CONCURRENCY %q: expected a positive integer", v)
		}
		cfg.RelatedConcurrency = n
	}

	cfg.OutletsPath = os.Getenv("OUTLETS_CONFIG_PATH")

	return cfg, nil
}
