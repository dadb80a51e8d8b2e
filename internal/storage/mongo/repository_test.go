package mongo

import (
	"context"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/storagetest"
	tc "github.com/DjordjeVuckovic/news-lens/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryContract(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mongo container test in short mode")
	}
	ctx := context.Background()
	container := tc.NewMongoContainer(ctx, t)

	storagetest.Run(t, func(t *testing.T) storage.Repository {
		// a database per subtest keeps counters and urls apart
		db := "news_lens_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		client, err := Connect(ctx, Config{URI: container.URI, Database: db})
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = client.database.Drop(ctx)
			_ = client.Close(ctx)
		})

		assert.True(t, client.Healthy(ctx))

		repo, err := NewRepository(ctx, client)
		require.NoError(t, err)
		return repo
	})
}

func TestArticleDoc_RoundTrip(t *testing.T) {
	score := 42
	neutral := "calm"
	a := domain.Article{
		ID:               7,
		URL:              "https://foxnews.com/a",
		Title:            "T",
		BiasScore:        &score,
		PoliticalLeaning: "Lean Right",
		NeutralVersion:   &neutral,
	}

	assert.Equal(t, a, toArticleDoc(a).toDomain())
}

func TestClient_NilIsUnhealthy(t *testing.T) {
	var c *Client
	assert.False(t, c.Healthy(context.Background()))
}
