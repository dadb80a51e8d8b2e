package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/storage"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	articleColumns = []string{
		"id", "url", "title", "content", "source", "bias_score", "political_leaning",
		"emotional_language", "factual_reporting", "neutral_version", "analysis_details", "created_at",
	}
	relatedColumns = []string{
		"id", "original_article_id", "url", "title", "content", "source", "bias_score",
		"key_terms", "published_date", "topics", "main_topic", "created_at",
	}
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *ConnectionPool) *Repository {
	return &Repository{db: pool.conn}
}

func (r *Repository) CreateArticle(ctx context.Context, n domain.NewArticle) (domain.Article, error) {
	// id and created_at come back from the insert
	a := n.Build(0, time.Time{})

	var detailsJSON []byte
	if a.AnalysisDetails != nil {
		var err error
		detailsJSON, err = json.Marshal(a.AnalysisDetails)
		if err != nil {
			return domain.Article{}, fmt.Errorf("failed to marshal analysis details: %w", err)
		}
	}

	query, args, err := psql.Insert("articles").
		Columns("url", "title", "content", "source", "bias_score", "political_leaning",
			"emotional_language", "factual_reporting", "neutral_version", "analysis_details").
		Values(nullable(a.URL), a.Title, a.Content, a.Source, a.BiasScore, a.PoliticalLeaning,
			a.EmotionalLanguage, a.FactualReporting, a.NeutralVersion, detailsJSON).
		Suffix("RETURNING " + strings.Join(articleColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	created, err := scanArticle(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isCode(err, uniqueViolation) {
			return domain.Article{}, storage.ErrDuplicateURL
		}
		return domain.Article{}, fmt.Errorf("failed to insert article: %w", err)
	}

	slog.Debug("Article stored in postgres", "id", created.ID, "title", created.Title)
	return created, nil
}

func (r *Repository) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	return r.getArticleWhere(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetArticleByURL(ctx context.Context, url string) (domain.Article, error) {
	return r.getArticleWhere(ctx, sq.Eq{"url": url})
}

func (r *Repository) getArticleWhere(ctx context.Context, pred sq.Eq) (domain.Article, error) {
	query, args, err := psql.Select(articleColumns...).From("articles").Where(pred).ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to build select query: %w", err)
	}

	a, err := scanArticle(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, storage.ErrNotFound
		}
		return domain.Article{}, fmt.Errorf("failed to get article: %w", err)
	}
	return a, nil
}

func (r *Repository) UpdateArticle(ctx context.Context, id int64, patch domain.ArticlePatch) (domain.Article, error) {
	if patch.NeutralVersion == nil {
		return r.GetArticle(ctx, id)
	}

	query, args, err := psql.Update("articles").
		Set("neutral_version", *patch.NeutralVersion).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(articleColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to build update query: %w", err)
	}

	a, err := scanArticle(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, storage.ErrNotFound
		}
		return domain.Article{}, fmt.Errorf("failed to update article: %w", err)
	}
	return a, nil
}

func (r *Repository) GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	query, args, err := psql.Select(articleColumns...).
		From("articles").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, max(limit, 0))
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}
	return articles, nil
}

func (r *Repository) CreateRelatedArticle(ctx context.Context, n domain.NewRelatedArticle) (domain.RelatedArticle, error) {
	query, args, err := psql.Insert("related_articles").
		Columns("original_article_id", "url", "title", "content", "source", "bias_score",
			"key_terms", "published_date", "topics", "main_topic").
		Values(n.OriginalArticleID, n.URL, n.Title, n.Content, n.Source, n.BiasScore,
			n.KeyTerms, n.PublishedDate, n.Topics, n.MainTopic).
		Suffix("RETURNING " + strings.Join(relatedColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.RelatedArticle{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	ra, err := scanRelated(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isCode(err, foreignKeyViolation) {
			return domain.RelatedArticle{}, storage.ErrNotFound
		}
		return domain.RelatedArticle{}, fmt.Errorf("failed to insert related article: %w", err)
	}
	return ra, nil
}

func (r *Repository) GetRelatedArticlesByOriginalID(ctx context.Context, originalID int64) ([]domain.RelatedArticle, error) {
	query, args, err := psql.Select(relatedColumns...).
		From("related_articles").
		Where(sq.Eq{"original_article_id": originalID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build related query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query related articles: %w", err)
	}
	defer rows.Close()

	related := make([]domain.RelatedArticle, 0)
	for rows.Next() {
		ra, err := scanRelated(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan related article: %w", err)
		}
		related = append(related, ra)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating related articles: %w", err)
	}
	return related, nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var (
		a           domain.Article
		url         *string
		detailsJSON []byte
	)
	if err := row.Scan(
		&a.ID,
		&url,
		&a.Title,
		&a.Content,
		&a.Source,
		&a.BiasScore,
		&a.PoliticalLeaning,
		&a.EmotionalLanguage,
		&a.FactualReporting,
		&a.NeutralVersion,
		&detailsJSON,
		&a.CreatedAt,
	); err != nil {
		return domain.Article{}, err
	}
	if url != nil {
		a.URL = *url
	}
	if len(detailsJSON) > 0 {
		var d domain.BiasAnalysisDetails
		if err := json.Unmarshal(detailsJSON, &d); err != nil {
			return domain.Article{}, fmt.Errorf("failed to unmarshal analysis details: %w", err)
		}
		a.AnalysisDetails = &d
	}
	return a, nil
}

func scanRelated(row pgx.Row) (domain.RelatedArticle, error) {
	var ra domain.RelatedArticle
	err := row.Scan(
		&ra.ID,
		&ra.OriginalArticleID,
		&ra.URL,
		&ra.Title,
		&ra.Content,
		&ra.Source,
		&ra.BiasScore,
		&ra.KeyTerms,
		&ra.PublishedDate,
		&ra.Topics,
		&ra.MainTopic,
		&ra.CreatedAt,
	)
	return ra, err
}

func isCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ storage.Repository = (*Repository)(nil)
