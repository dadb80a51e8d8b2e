package in_mem

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
)

type Repository struct {
	lock sync.RWMutex

	articles map[int64]domain.Article
	byURL    map[string]int64
	related  map[int64][]domain.RelatedArticle

	nextArticleID int64
	nextRelatedID int64

	now func() time.Time
}

type Option func(*Repository)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		articles: make(map[int64]domain.Article),
		byURL:    make(map[string]int64),
		related:  make(map[int64][]domain.RelatedArticle),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) CreateArticle(_ context.Context, n domain.NewArticle) (domain.Article, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if n.URL != "" {
		if _, ok := r.byURL[n.URL]; ok {
			return domain.Article{}, storage.ErrDuplicateURL
		}
	}

	r.nextArticleID++
	a := n.Build(r.nextArticleID, r.now())
	r.articles[a.ID] = a
	if a.URL != "" {
		r.byURL[a.URL] = a.ID
	}

	slog.Debug("Article stored in memory", "id", a.ID, "title", a.Title)
	return a, nil
}

func (r *Repository) GetArticle(_ context.Context, id int64) (domain.Article, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return domain.Article{}, storage.ErrNotFound
	}
	return a, nil
}

func (r *Repository) GetArticleByURL(_ context.Context, url string) (domain.Article, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	id, ok := r.byURL[url]
	if !ok {
		return domain.Article{}, storage.ErrNotFound
	}
	return r.articles[id], nil
}

func (r *Repository) UpdateArticle(_ context.Context, id int64, patch domain.ArticlePatch) (domain.Article, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return domain.Article{}, storage.ErrNotFound
	}
	a = a.Apply(patch)
	r.articles[id] = a
	return a, nil
}

func (r *Repository) GetRecentArticles(_ context.Context, limit int) ([]domain.Article, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a)
	}
	// ids are monotonic, so they break creation time ties
	slices.SortFunc(out, func(a, b domain.Article) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Repository) CreateRelatedArticle(_ context.Context, n domain.NewRelatedArticle) (domain.RelatedArticle, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.articles[n.OriginalArticleID]; !ok {
		return domain.RelatedArticle{}, storage.ErrNotFound
	}

	r.nextRelatedID++
	ra := n.Build(r.nextRelatedID, r.now())
	r.related[n.OriginalArticleID] = append(r.related[n.OriginalArticleID], ra)
	return ra, nil
}

func (r *Repository) GetRelatedArticlesByOriginalID(_ context.Context, originalID int64) ([]domain.RelatedArticle, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]domain.RelatedArticle, len(r.related[originalID]))
	copy(out, r.related[originalID])
	return out, nil
}

var _ storage.Repository = (*Repository)(nil)
