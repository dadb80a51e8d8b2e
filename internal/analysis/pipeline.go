package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/news-lens/internal/apperr"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
	"github.com/DjordjeVuckovic/news-lens/internal/related"
	"github.com/DjordjeVuckovic/news-lens/internal/scrape"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const RecentLimit = 5

type Acquirer interface {
	Acquire(ctx context.Context, url string) fallback.Result[scrape.Content]
}

type Scorer interface {
	Score(ctx context.Context, content, title string) fallback.Result[domain.BiasAnalysisDetails]
}

type Rewriter interface {
	Rewrite(ctx context.Context, content string, phrases []domain.BiasedPhrase) fallback.Result[string]
}

type RelatedFinder interface {
	Find(ctx context.Context, title, excludedSource string) fallback.Result[[]related.Item]
}

// Indexer receives every newly persisted article. Failures are logged and ignored.
type Indexer interface {
	Index(ctx context.Context, article domain.Article) error
}

type Option func(*Pipeline)

func WithIndexer(i Indexer) Option {
	return func(p *Pipeline) {
		p.indexer = i
	}
}

// Pipeline sequences acquisition, scoring, rewriting and correlation for one article
// and persists the outcome.
type Pipeline struct {
	repo     storage.Repository
	acquirer Acquirer
	scorer   Scorer
	rewriter Rewriter
	finder   RelatedFinder
	indexer  Indexer

	inflight singleflight.Group
}

func NewPipeline(repo storage.Repository, acquirer Acquirer, scorer Scorer, rewriter Rewriter, finder RelatedFinder, opts ...Option) *Pipeline {
	p := &Pipeline{
		repo:     repo,
		acquirer: acquirer,
		scorer:   scorer,
		rewriter: rewriter,
		finder:   finder,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Analyze runs the pipeline. Concurrent first-time requests for the same URL share one run,
// and the context of the run that started it governs the shared work.
func (p *Pipeline) Analyze(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	req = req.normalize()

	if req.URL == "" {
		return p.run(ctx, req)
	}

	v, err, shared := p.inflight.Do(req.URL, func() (any, error) {
		return p.run(ctx, req)
	})
	if err != nil {
		return Result{}, err
	}
	res := v.(Result)
	if shared {
		slog.Debug("Joined in-flight analysis", "url", req.URL, "articleId", res.Article.ID)
	}
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, req Request) (Result, error) {
	runID := uuid.NewString()
	log := slog.With("run", runID)

	if req.URL != "" {
		existing, ok, err := p.stored(ctx, req.URL)
		if err != nil {
			return Result{}, err
		}
		if ok {
			log.Info("Article already analyzed", "url", req.URL, "articleId", existing.Article.ID)
			return existing, nil
		}
	}

	var steps []Step

	var content scrape.Content
	if req.URL != "" {
		acquired := p.acquirer.Acquire(ctx, req.URL)
		steps = append(steps, step("acquire", acquired))
		content = acquired.Value
	} else {
		content = scrape.FromText(req.Title, req.Text)
	}
	log.Info("Content acquired", "title", content.Title, "source", content.Source, "chars", len(content.Content))

	scored := p.scorer.Score(ctx, content.Content, content.Title)
	steps = append(steps, step("score", scored))
	details := scored.Value

	var neutralVersion *string
	if req.GenerateNeutral {
		rewritten := p.rewriter.Rewrite(ctx, content.Content, details.BiasedPhrases)
		steps = append(steps, step("rewrite", rewritten))
		neutralVersion = &rewritten.Value
	}

	var items []related.Item
	if req.FindRelatedSources {
		if content.Source == "" {
			log.Info("Skipping related coverage, article has no source")
		} else {
			found := p.finder.Find(ctx, content.Title, content.Source)
			steps = append(steps, step("related", found))
			items = found.Value
		}
	}

	if err := ctx.Err(); err != nil {
		log.Warn("Analysis aborted before persisting", "error", err)
		return Result{}, apperr.NewTransient("analysis did not finish in time", err)
	}

	// once upstream work is done the writes run to completion
	res, err := p.persist(context.WithoutCancel(ctx), req, content, details, neutralVersion, items)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateURL) {
			existing, ok, lookupErr := p.stored(ctx, req.URL)
			if lookupErr == nil && ok {
				log.Info("Article stored concurrently, returning stored copy", "url", req.URL)
				return existing, nil
			}
		}
		return Result{}, err
	}
	res.Steps = steps

	log.Info("Article analyzed",
		"articleId", res.Article.ID,
		"biasScore", details.BiasScore,
		"leaning", details.PoliticalLeaning,
		"related", len(res.RelatedArticles))

	if p.indexer != nil {
		if err := p.indexer.Index(ctx, res.Article); err != nil {
			log.Warn("Failed to archive article", "articleId", res.Article.ID, "error", err)
		}
	}

	return res, nil
}

func (p *Pipeline) persist(
	ctx context.Context,
	req Request,
	content scrape.Content,
	details domain.BiasAnalysisDetails,
	neutralVersion *string,
	items []related.Item,
) (Result, error) {
	article, err := p.repo.CreateArticle(ctx, domain.NewArticle{
		URL:             req.URL,
		Title:           content.Title,
		Content:         content.Content,
		Source:          content.Source,
		AnalysisDetails: &details,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateURL) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("failed to create article: %w", err)
	}

	if neutralVersion != nil {
		article, err = p.repo.UpdateArticle(ctx, article.ID, domain.ArticlePatch{NeutralVersion: neutralVersion})
		if err != nil {
			return Result{}, fmt.Errorf("failed to store neutral version: %w", err)
		}
	}

	relatedArticles := make([]domain.RelatedArticle, 0, len(items))
	for _, item := range items {
		score := item.Analysis.BiasScore
		ra, err := p.repo.CreateRelatedArticle(ctx, domain.NewRelatedArticle{
			OriginalArticleID: article.ID,
			URL:               item.URL,
			Title:             item.Title,
			Content:           item.Content,
			Source:            item.Source,
			BiasScore:         &score,
			KeyTerms:          item.Analysis.PhraseOriginals(),
			PublishedDate:     item.PublishedDate,
			Topics:            item.Analysis.Topics,
			MainTopic:         item.Analysis.MainTopic,
		})
		if err != nil {
			return Result{}, fmt.Errorf("failed to create related article: %w", err)
		}
		relatedArticles = append(relatedArticles, ra)
	}

	return Result{Article: article, RelatedArticles: relatedArticles}, nil
}

func (p *Pipeline) stored(ctx context.Context, url string) (Result, bool, error) {
	article, err := p.repo.GetArticleByURL(ctx, url)
	if errors.Is(err, storage.ErrNotFound) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("failed to look up article by url: %w", err)
	}

	relatedArticles, err := p.repo.GetRelatedArticlesByOriginalID(ctx, article.ID)
	if err != nil {
		return Result{}, false, fmt.Errorf("failed to get related articles: %w", err)
	}
	return Result{Article: article, RelatedArticles: relatedArticles, Existing: true}, true, nil
}

// Article returns a stored article with its related coverage.
func (p *Pipeline) Article(ctx context.Context, id int64) (Result, error) {
	article, err := p.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Result{}, apperr.NewNotFound("article", strconv.FormatInt(id, 10))
		}
		return Result{}, fmt.Errorf("failed to get article: %w", err)
	}

	relatedArticles, err := p.repo.GetRelatedArticlesByOriginalID(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get related articles: %w", err)
	}
	return Result{Article: article, RelatedArticles: relatedArticles, Existing: true}, nil
}

// RelatedArticles lists the coverage stored for an article, failing when the article is unknown.
func (p *Pipeline) RelatedArticles(ctx context.Context, id int64) ([]domain.RelatedArticle, error) {
	res, err := p.Article(ctx, id)
	if err != nil {
		return nil, err
	}
	return res.RelatedArticles, nil
}

func (p *Pipeline) RecentArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := p.repo.GetRecentArticles(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent articles: %w", err)
	}
	return articles, nil
}
