package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	"github.com/DjordjeVuckovic/news-lens/internal/search/rss"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	// keep a developer's .env out of the test
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("ENV", "test")
	for _, k := range []string{
		"STORAGE_TYPE", "LLM_API_KEY", "RELATED_SEARCH", "ES_ADDRESSES", "ES_ARCHIVE",
		"FETCH_ENABLED", "FETCH_TIMEOUT", "RELATED_CONCURRENCY", "OUTLETS_CONFIG_PATH", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := LoadConfig("unused.env")
	require.NoError(t, err)
	assert.Equal(t, storage.InMem, cfg.Storage.Type)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, SearchNone, cfg.Search)
	assert.True(t, cfg.FetchEnabled)
	assert.Equal(t, defaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, 1, cfg.RelatedConcurrency)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown search", map[string]string{"RELATED_SEARCH": "google"}},
		{"es without addresses", map[string]string{"RELATED_SEARCH": "es"}},
		{"archive without addresses", map[string]string{"ES_ARCHIVE": "true"}},
		{"bad concurrency", map[string]string{"RELATED_CONCURRENCY": "0"}},
		{"bad fetch timeout", map[string]string{"FETCH_TIMEOUT": "fast"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := LoadConfig("unused.env")
			assert.Error(t, err)
		})
	}
}

func TestBuild_OfflineAnalyzes(t *testing.T) {
	setEnv(t, map[string]string{"FETCH_ENABLED": "false", "RELATED_CONCURRENCY": "3", "LOG_LEVEL": "debug"})
	cfg, err := LoadConfig("unused.env")
	require.NoError(t, err)

	ctx := context.Background()
	a, err := Build(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	assert.True(t, a.Health.Healthy(ctx))

	res, err := a.Pipeline.Analyze(ctx, analysis.Request{URL: "https://www.foxnews.com/a", FindRelatedSources: true})
	require.NoError(t, err)
	assert.Equal(t, "Fox News", res.Article.Source)
	assert.Len(t, res.RelatedArticles, 4)
}

func TestBuild_CustomOutlets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outlets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
kind: outlets
version: v1
outlets:
  - id: cnn
    name: CNN
    domain: cnn.com
    leaning: center-left
  - id: fox-news
    name: Fox News
    domain: foxnews.com
    leaning: right
`), 0o600))
	setEnv(t, map[string]string{"FETCH_ENABLED": "false", "OUTLETS_CONFIG_PATH": path})
	cfg, err := LoadConfig("unused.env")
	require.NoError(t, err)

	ctx := context.Background()
	a, err := Build(ctx, cfg)
	require.NoError(t, err)
	assert.Len(t, a.Outlets.All(), 2)

	res, err := a.Pipeline.Analyze(ctx, analysis.Request{URL: "https://www.cnn.com/a", FindRelatedSources: true})
	require.NoError(t, err)
	require.Len(t, res.RelatedArticles, 1)
	assert.Equal(t, "Fox News", res.RelatedArticles[0].Source)
}

func TestNewSearcher(t *testing.T) {
	setEnv(t, map[string]string{"RELATED_SEARCH": "rss"})
	cfg, err := LoadConfig("unused.env")
	require.NoError(t, err)

	s, err := newSearcher(cfg, outlet.Default())
	require.NoError(t, err)
	assert.IsType(t, &rss.Searcher{}, s)

	cfg.Search = SearchNone
	s, err = newSearcher(cfg, outlet.Default())
	require.NoError(t, err)
	assert.Nil(t, s)
}
