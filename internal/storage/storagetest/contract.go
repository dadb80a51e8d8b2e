// Package storagetest holds the behavior every storage.Repository must share.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetails(score int) *domain.BiasAnalysisDetails {
	return &domain.BiasAnalysisDetails{
		BiasScore:         score,
		PoliticalLeaning:  "Lean Right",
		EmotionalLanguage: domain.RatingModerate,
		FactualReporting:  domain.RatingModerate,
		KeyFindings:       []string{"One-sided sourcing"},
		BiasedPhrases:     []domain.BiasedPhrase{{Original: "radical agenda", Neutral: "policy proposal"}},
		Topics:            []string{"Economy", "Politics"},
		MainTopic:         "Economy",
	}
}

// Run exercises a fresh repository returned by newRepo for each subtest.
func Run(t *testing.T, newRepo func(t *testing.T) storage.Repository) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.CreateArticle(ctx, domain.NewArticle{
			URL:             "https://www.nytimes.com/a",
			Title:           "Budget vote",
			Content:         "Body",
			Source:          "New York Times",
			AnalysisDetails: sampleDetails(57),
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		require.NotNil(t, created.BiasScore)
		assert.Equal(t, 57, *created.BiasScore)
		assert.Equal(t, "Lean Right", created.PoliticalLeaning)

		got, err := repo.GetArticle(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Title, got.Title)
		assert.Equal(t, created.AnalysisDetails, got.AnalysisDetails)

		byURL, err := repo.GetArticleByURL(ctx, "https://www.nytimes.com/a")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byURL.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetArticle(ctx, 4242)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = repo.GetArticleByURL(ctx, "https://missing.example")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = repo.UpdateArticle(ctx, 4242, domain.ArticlePatch{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("duplicate url", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.CreateArticle(ctx, domain.NewArticle{URL: "https://cnn.com/x", Title: "A", Content: "a"})
		require.NoError(t, err)
		_, err = repo.CreateArticle(ctx, domain.NewArticle{URL: "https://cnn.com/x", Title: "B", Content: "b"})
		assert.ErrorIs(t, err, storage.ErrDuplicateURL)

		// free text articles have no url and never collide
		_, err = repo.CreateArticle(ctx, domain.NewArticle{Title: "C", Content: "c"})
		require.NoError(t, err)
		_, err = repo.CreateArticle(ctx, domain.NewArticle{Title: "D", Content: "d"})
		require.NoError(t, err)
	})

	t.Run("update neutral version", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.CreateArticle(ctx, domain.NewArticle{Title: "T", Content: "C"})
		require.NoError(t, err)
		assert.Nil(t, created.NeutralVersion)

		neutral := "calm text"
		updated, err := repo.UpdateArticle(ctx, created.ID, domain.ArticlePatch{NeutralVersion: &neutral})
		require.NoError(t, err)
		require.NotNil(t, updated.NeutralVersion)
		assert.Equal(t, neutral, *updated.NeutralVersion)

		got, err := repo.GetArticle(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.NeutralVersion)
		assert.Equal(t, neutral, *got.NeutralVersion)
		assert.Equal(t, "T", got.Title)
	})

	t.Run("recent newest first", func(t *testing.T) {
		repo := newRepo(t)

		var ids []int64
		for _, title := range []string{"one", "two", "three", "four", "five", "six"} {
			a, err := repo.CreateArticle(ctx, domain.NewArticle{Title: title, Content: title})
			require.NoError(t, err)
			ids = append(ids, a.ID)
		}

		recent, err := repo.GetRecentArticles(ctx, 5)
		require.NoError(t, err)
		require.Len(t, recent, 5)
		assert.Equal(t, ids[5], recent[0].ID)
		assert.Equal(t, ids[1], recent[4].ID)
	})

	t.Run("related articles keep insertion order", func(t *testing.T) {
		repo := newRepo(t)

		original, err := repo.CreateArticle(ctx, domain.NewArticle{Title: "T", Content: "C"})
		require.NoError(t, err)

		score := 70
		for _, src := range []string{"Fox News", "CNN"} {
			_, err := repo.CreateRelatedArticle(ctx, domain.NewRelatedArticle{
				OriginalArticleID: original.ID,
				Title:             src + " take",
				Content:           "body",
				Source:            src,
				BiasScore:         &score,
				KeyTerms:          []string{"radical agenda"},
				Topics:            []string{"Politics"},
				MainTopic:         "Politics",
				PublishedDate:     "2024-05-01",
			})
			require.NoError(t, err)
		}

		related, err := repo.GetRelatedArticlesByOriginalID(ctx, original.ID)
		require.NoError(t, err)
		require.Len(t, related, 2)
		assert.Equal(t, "Fox News", related[0].Source)
		assert.Equal(t, "CNN", related[1].Source)
		assert.Equal(t, []string{"radical agenda"}, related[0].KeyTerms)
		assert.Equal(t, original.ID, related[1].OriginalArticleID)

		none, err := repo.GetRelatedArticlesByOriginalID(ctx, original.ID+100)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		repo := newRepo(t)

		const n = 20
		ids := make(chan int64, n)
		errs := make(chan error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				a, err := repo.CreateArticle(ctx, domain.NewArticle{Title: "t", Content: "c"})
				if err != nil {
					errs <- err
					return
				}
				ids <- a.ID
			}()
		}
		wg.Wait()
		close(ids)
		close(errs)

		for err := range errs {
			t.Errorf("create failed: %v", errors.Unwrap(err))
		}
		seen := map[int64]bool{}
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)
	})
}
