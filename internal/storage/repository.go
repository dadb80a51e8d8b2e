package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateURL is returned when an article with the same URL is already stored.
	ErrDuplicateURL = errors.New("article url already stored")
)

// Repository persists analyzed articles and their related coverage.
// Implementations are safe for concurrent use.
type Repository interface {
	CreateArticle(ctx context.Context, article domain.NewArticle) (domain.Article, error)
	GetArticle(ctx context.Context, id int64) (domain.Article, error)
	GetArticleByURL(ctx context.Context, url string) (domain.Article, error)
	// UpdateArticle applies patch and returns the updated article.
	UpdateArticle(ctx context.Context, id int64, patch domain.ArticlePatch) (domain.Article, error)
	// GetRecentArticles returns at most limit articles, newest first.
	GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error)

	CreateRelatedArticle(ctx context.Context, related domain.NewRelatedArticle) (domain.RelatedArticle, error)
	// GetRelatedArticlesByOriginalID returns related articles in insertion order.
	GetRelatedArticlesByOriginalID(ctx context.Context, originalID int64) ([]domain.RelatedArticle, error)
}

type Type string

const (
	PG    Type = "pg"
	Mongo Type = "mongo"
	InMem Type = "in_mem"
)

func (t Type) Valid() bool {
	switch t {
	case PG, Mongo, InMem:
		return true
	}
	return false
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
