package es

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	tc "github.com/DjordjeVuckovic/news-lens/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentID(t *testing.T) {
	a := domain.Article{ID: 7, URL: "https://cnn.com/a"}
	b := domain.Article{ID: 8, URL: "https://cnn.com/a"}
	c := domain.Article{ID: 7}

	assert.Equal(t, DocumentID(a), DocumentID(b))
	assert.NotEqual(t, DocumentID(a), DocumentID(c))
}

func TestToDocument(t *testing.T) {
	score := 61
	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	a := domain.Article{
		ID:               3,
		Title:            "Budget vote",
		Source:           "CNN",
		BiasScore:        &score,
		PoliticalLeaning: "Lean Left",
		AnalysisDetails:  &domain.BiasAnalysisDetails{Topics: []string{"Economy"}},
	}

	doc := toDocument("doc-1", a, "cnn", now)

	assert.Equal(t, "cnn", doc.SourceID)
	assert.Equal(t, "CNN", doc.SourceName)
	assert.Equal(t, &score, doc.BiasScore)
	assert.Equal(t, []string{"Economy"}, doc.Topics)
	assert.Equal(t, now, doc.IndexedAt)
}

func TestArchiveAndSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch integration test in short mode")
	}
	ctx := context.Background()
	container := tc.NewESContainer(ctx, t)

	cfg := ClientConfig{Addresses: []string{container.Address}, IndexName: "archive_test"}
	archive, err := NewArchive(ctx, cfg, outlet.Default())
	require.NoError(t, err)

	articles := []domain.Article{
		{ID: 1, URL: "https://cnn.com/budget", Title: "Senate passes budget", Content: "The senate vote on the budget", Source: "CNN"},
		{ID: 2, URL: "https://foxnews.com/budget", Title: "Budget clears senate", Content: "Senate budget fight ends", Source: "Fox News"},
		{ID: 3, URL: "https://wsj.com/markets", Title: "Markets rally", Content: "Stocks rose", Source: "Wall Street Journal"},
	}
	for _, a := range articles {
		require.NoError(t, archive.Index(ctx, a))
	}
	_, err = archive.client.Indices.Refresh().Index(cfg.IndexName).Do(ctx)
	require.NoError(t, err)

	searcher, err := NewSearcher(cfg)
	require.NoError(t, err)

	hits, err := searcher.Search(ctx, "senate AND budget", []string{"fox-news", "the-wall-street-journal"})

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "fox-news", hits[0].OutletID)
	assert.Equal(t, "https://foxnews.com/budget", hits[0].URL)
}
