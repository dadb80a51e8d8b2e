package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/apperr"
	"github.com/DjordjeVuckovic/news-lens/internal/bias"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
	"github.com/DjordjeVuckovic/news-lens/internal/neutral"
	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	"github.com/DjordjeVuckovic/news-lens/internal/related"
	"github.com/DjordjeVuckovic/news-lens/internal/scrape"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAcquirer struct {
	inner Acquirer
	calls atomic.Int32
	delay time.Duration
}

func (c *countingAcquirer) Acquire(ctx context.Context, url string) fallback.Result[scrape.Content] {
	c.calls.Add(1)
	time.Sleep(c.delay)
	return c.inner.Acquire(ctx, url)
}

type countingScorer struct {
	inner Scorer
	calls atomic.Int32
}

func (c *countingScorer) Score(ctx context.Context, content, title string) fallback.Result[domain.BiasAnalysisDetails] {
	c.calls.Add(1)
	return c.inner.Score(ctx, content, title)
}

type recordingIndexer struct {
	mu      sync.Mutex
	indexed []int64
	err     error
}

func (r *recordingIndexer) Index(_ context.Context, a domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexed = append(r.indexed, a.ID)
	return r.err
}

type fixture struct {
	repo     *in_mem.Repository
	acquirer *countingAcquirer
	scorer   *countingScorer
	pipeline *Pipeline
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	repo := in_mem.NewRepository()
	acquirer := &countingAcquirer{inner: scrape.NewAcquirer(scrape.WithFetch(false))}
	scorer := &countingScorer{inner: bias.NewScorer(nil)}
	finder := related.NewFinder(outlet.Default(), acquirer, scorer,
		related.WithClock(func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }, func(int) int { return 3 }))

	return &fixture{
		repo:     repo,
		acquirer: acquirer,
		scorer:   scorer,
		pipeline: NewPipeline(repo, acquirer, scorer, neutral.NewRewriter(nil), finder, opts...),
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"url only", Request{URL: "https://cnn.com/a"}, false},
		{"text and title", Request{Text: "body", Title: "t"}, false},
		{"url wins over partial text", Request{URL: "https://cnn.com/a", Text: "body"}, false},
		{"nothing", Request{}, true},
		{"blank url", Request{URL: "   "}, true},
		{"text without title", Request{Text: "body"}, true},
		{"title without text", Request{Title: "t"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestAnalyze_InvalidRequestPersistsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.pipeline.Analyze(ctx, Request{GenerateNeutral: true, FindRelatedSources: true})

	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))

	recent, err := f.repo.GetRecentArticles(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
	assert.Zero(t, f.scorer.calls.Load())
}

func TestAnalyze_TextWithoutOptions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	text := strings.Repeat("Jobs numbers rose as employers added positions across sectors. ", 2)[:120]

	res, err := f.pipeline.Analyze(ctx, Request{Title: "Economy Policy Debate", Text: text})
	require.NoError(t, err)

	a := res.Article
	assert.NotZero(t, a.ID)
	assert.Empty(t, a.URL)
	assert.Empty(t, a.Source)
	assert.Equal(t, "Economy Policy Debate", a.Title)
	assert.Equal(t, text, a.Content)
	assert.Nil(t, a.NeutralVersion)
	require.NotNil(t, a.BiasScore)
	assert.GreaterOrEqual(t, *a.BiasScore, 0)
	assert.LessOrEqual(t, *a.BiasScore, 100)
	require.NotNil(t, a.AnalysisDetails)
	assert.Equal(t, bias.Estimate("Economy Policy Debate", text), *a.AnalysisDetails)
	assert.Empty(t, res.RelatedArticles)
	assert.Zero(t, f.acquirer.calls.Load())

	stored, err := f.repo.GetRelatedArticlesByOriginalID(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAnalyze_URLFullPipeline(t *testing.T) {
	indexer := &recordingIndexer{}
	f := newFixture(t, WithIndexer(indexer))
	ctx := context.Background()

	res, err := f.pipeline.Analyze(ctx, Request{
		URL:                "https://www.nytimes.com/x",
		GenerateNeutral:    true,
		FindRelatedSources: true,
	})
	require.NoError(t, err)

	a := res.Article
	assert.False(t, res.Existing)
	assert.Equal(t, "https://www.nytimes.com/x", a.URL)
	assert.Equal(t, "New York Times", a.Source)
	require.NotNil(t, a.NeutralVersion)
	assert.True(t, strings.HasSuffix(*a.NeutralVersion, neutral.Marker))

	require.Len(t, res.RelatedArticles, 4)
	for _, ra := range res.RelatedArticles {
		assert.NotEqual(t, "New York Times", ra.Source)
		assert.Equal(t, a.ID, ra.OriginalArticleID)
		require.NotNil(t, ra.BiasScore)
		assert.NotEmpty(t, ra.KeyTerms)
		assert.NotEmpty(t, ra.Topics)
		assert.Equal(t, "2024-05-01", ra.PublishedDate)
	}

	names := make([]string, 0, len(res.Steps))
	for _, s := range res.Steps {
		names = append(names, s.Name)
		assert.Equal(t, fallback.OriginFallback, s.Origin)
	}
	assert.Equal(t, []string{"acquire", "score", "rewrite", "related"}, names)

	stored, err := f.repo.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.NeutralVersion, stored.NeutralVersion)
	assert.Equal(t, []int64{a.ID}, indexer.indexed)
}

func TestAnalyze_RelatedKeyTermsComeFromOwnAnalysis(t *testing.T) {
	f := newFixture(t)

	res, err := f.pipeline.Analyze(context.Background(), Request{URL: "https://www.cnn.com/story", FindRelatedSources: true})
	require.NoError(t, err)
	require.NotEmpty(t, res.RelatedArticles)

	for _, ra := range res.RelatedArticles {
		details := bias.Estimate(ra.Title, ra.Content)
		assert.Equal(t, details.PhraseOriginals(), ra.KeyTerms)
		assert.Equal(t, details.BiasScore, *ra.BiasScore)
	}
}

func TestAnalyze_SameURLTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := Request{URL: "https://www.nytimes.com/x", FindRelatedSources: true, GenerateNeutral: true}

	first, err := f.pipeline.Analyze(ctx, req)
	require.NoError(t, err)
	acquired, scored := f.acquirer.calls.Load(), f.scorer.calls.Load()

	second, err := f.pipeline.Analyze(ctx, Request{URL: "https://www.nytimes.com/x"})
	require.NoError(t, err)

	assert.True(t, second.Existing)
	assert.Equal(t, first.Article, second.Article)
	assert.Equal(t, first.RelatedArticles, second.RelatedArticles)
	assert.Equal(t, acquired, f.acquirer.calls.Load())
	assert.Equal(t, scored, f.scorer.calls.Load())

	recent, err := f.repo.GetRecentArticles(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestAnalyze_ConcurrentSameURLCoalesced(t *testing.T) {
	f := newFixture(t)
	f.acquirer.delay = 50 * time.Millisecond
	ctx := context.Background()

	const n = 8
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := f.pipeline.Analyze(ctx, Request{URL: "https://www.foxnews.com/politics/a"})
			if assert.NoError(t, err) {
				ids[i] = res.Article.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	recent, err := f.repo.GetRecentArticles(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestAnalyze_CancelledContextIsTransient(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.pipeline.Analyze(ctx, Request{Title: "Budget", Text: "Lawmakers passed the budget."})

	var te *apperr.TransientError
	require.True(t, errors.As(err, &te))
	assert.ErrorIs(t, err, context.Canceled)

	recent, err := f.repo.GetRecentArticles(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestAnalyze_NoSourceSkipsCorrelation(t *testing.T) {
	f := newFixture(t)

	res, err := f.pipeline.Analyze(context.Background(), Request{
		Title:              "Senate debates border bill",
		Text:               "The Senate opened debate on the border bill on Tuesday.",
		FindRelatedSources: true,
	})
	require.NoError(t, err)
	assert.Empty(t, res.RelatedArticles)
	assert.Equal(t, int32(1), f.scorer.calls.Load())
}

func TestAnalyze_IndexerFailureIsIgnored(t *testing.T) {
	indexer := &recordingIndexer{err: errors.New("es down")}
	f := newFixture(t, WithIndexer(indexer))

	res, err := f.pipeline.Analyze(context.Background(), Request{Title: "t", Text: "body"})
	require.NoError(t, err)
	assert.Equal(t, []int64{res.Article.ID}, indexer.indexed)
}

// duplicateOnCreate reports the URL as taken after another writer stored it first.
type duplicateOnCreate struct {
	*in_mem.Repository
	once sync.Once
}

func (d *duplicateOnCreate) CreateArticle(ctx context.Context, n domain.NewArticle) (domain.Article, error) {
	var raced bool
	d.once.Do(func() {
		_, _ = d.Repository.CreateArticle(ctx, domain.NewArticle{URL: n.URL, Title: "stored first", Content: "c"})
		raced = true
	})
	if raced {
		return domain.Article{}, storage.ErrDuplicateURL
	}
	return d.Repository.CreateArticle(ctx, n)
}

func TestAnalyze_DuplicateInsertReturnsStored(t *testing.T) {
	repo := &duplicateOnCreate{Repository: in_mem.NewRepository()}
	acquirer := scrape.NewAcquirer(scrape.WithFetch(false))
	scorer := bias.NewScorer(nil)
	p := NewPipeline(repo, acquirer, scorer, neutral.NewRewriter(nil), related.NewFinder(outlet.Default(), acquirer, scorer))

	res, err := p.Analyze(context.Background(), Request{URL: "https://www.wsj.com/a"})
	require.NoError(t, err)
	assert.True(t, res.Existing)
	assert.Equal(t, "stored first", res.Article.Title)
}

func TestReads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.pipeline.Article(ctx, 99)
	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf))

	_, err = f.pipeline.RelatedArticles(ctx, 99)
	require.True(t, errors.As(err, &nf))

	var last int64
	for i := 0; i < 7; i++ {
		res, err := f.pipeline.Analyze(ctx, Request{Title: "t", Text: "body"})
		require.NoError(t, err)
		last = res.Article.ID
	}

	recent, err := f.pipeline.RecentArticles(ctx)
	require.NoError(t, err)
	require.Len(t, recent, RecentLimit)
	assert.Equal(t, last, recent[0].ID)

	got, err := f.pipeline.Article(ctx, last)
	require.NoError(t, err)
	assert.Equal(t, last, got.Article.ID)
	assert.NotNil(t, got.RelatedArticles)
}
