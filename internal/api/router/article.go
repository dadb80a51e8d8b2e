package router

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
	"github.com/DjordjeVuckovic/news-lens/internal/api/dto"
	"github.com/DjordjeVuckovic/news-lens/internal/apperr"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/labstack/echo/v4"
)

// Analyzer is the pipeline as seen by the HTTP layer.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (analysis.Result, error)
	Article(ctx context.Context, id int64) (analysis.Result, error)
	RelatedArticles(ctx context.Context, id int64) ([]domain.RelatedArticle, error)
	RecentArticles(ctx context.Context) ([]domain.Article, error)
}

type ArticleRouterOption func(*ArticleRouter)

// WithAnalyzeTimeout bounds a single analysis. Zero disables the bound.
func WithAnalyzeTimeout(d time.Duration) ArticleRouterOption {
	return func(r *ArticleRouter) {
		r.timeout = d
	}
}

type ArticleRouter struct {
	e        *echo.Echo
	analyzer Analyzer
	timeout  time.Duration
}

func NewArticleRouter(e *echo.Echo, analyzer Analyzer, opts ...ArticleRouterOption) *ArticleRouter {
	r := &ArticleRouter{
		e:        e,
		analyzer: analyzer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ArticleRouter) Bind() {
	api := r.e.Group("/api")
	api.POST("/analyze", r.analyzeHandler)
	api.GET("/articles/recent", r.recentHandler)
	api.GET("/articles/:id", r.articleHandler)
	api.GET("/articles/:id/related", r.relatedHandler)
}

// analyzeHandler godoc
// @Summary Analyze an article
// @Description Scores an article for bias, optionally rewrites it neutrally and finds coverage from other outlets. A URL that was already analyzed returns the stored result.
// @Tags articles
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Article to analyze"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analyze [post]
func (r *ArticleRouter) analyzeHandler(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	ctx := c.Request().Context()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	res, err := r.analyzer.Analyze(ctx, req.ToDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromResult(res))
}

// recentHandler godoc
// @Summary Recently analyzed articles
// @Tags articles
// @Produce json
// @Success 200 {array} dto.Article
// @Failure 500 {object} map[string]string
// @Router /api/articles/recent [get]
func (r *ArticleRouter) recentHandler(c echo.Context) error {
	articles, err := r.analyzer.RecentArticles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromArticles(articles))
}

// articleHandler godoc
// @Summary Get an analyzed article
// @Tags articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/articles/{id} [get]
func (r *ArticleRouter) articleHandler(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	res, err := r.analyzer.Article(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromResult(res))
}

// relatedHandler godoc
// @Summary Related coverage of an article
// @Tags articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {array} dto.RelatedArticle
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/articles/{id}/related [get]
func (r *ArticleRouter) relatedHandler(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	related, err := r.analyzer.RelatedArticles(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromRelatedArticles(related))
}

func articleID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.NewValidation("article id must be a positive integer")
	}
	return id, nil
}
