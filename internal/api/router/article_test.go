package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
	"github.com/DjordjeVuckovic/news-lens/internal/api/dto"
	"github.com/DjordjeVuckovic/news-lens/internal/apperr"
	"github.com/DjordjeVuckovic/news-lens/internal/bias"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/neutral"
	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	"github.com/DjordjeVuckovic/news-lens/internal/related"
	"github.com/DjordjeVuckovic/news-lens/internal/scrape"
	"github.com/DjordjeVuckovic/news-lens/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(t *testing.T, analyzer Analyzer, opts ...ArticleRouterOption) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewArticleRouter(e, analyzer, opts...).Bind()
	return e
}

func newPipeline() *analysis.Pipeline {
	acquirer := scrape.NewAcquirer(scrape.WithFetch(false))
	scorer := bias.NewScorer(nil)
	return analysis.NewPipeline(
		in_mem.NewRepository(),
		acquirer,
		scorer,
		neutral.NewRewriter(nil),
		related.NewFinder(outlet.Default(), acquirer, scorer),
	)
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeAndRead(t *testing.T) {
	e := newEcho(t, newPipeline())

	rec := do(e, http.MethodPost, "/api/analyze", `{"url":"https://www.nytimes.com/x"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var analyzed dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analyzed))
	assert.Equal(t, "New York Times", analyzed.Article.Source)
	assert.NotNil(t, analyzed.Article.NeutralVersion)
	assert.Len(t, analyzed.RelatedArticles, 4)

	id := strconv.FormatInt(analyzed.Article.ID, 10)

	rec = do(e, http.MethodGet, "/api/articles/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stored dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, analyzed.Article.ID, stored.Article.ID)
	assert.Len(t, stored.RelatedArticles, 4)

	rec = do(e, http.MethodGet, "/api/articles/"+id+"/related", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var relatedArticles []dto.RelatedArticle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &relatedArticles))
	assert.Len(t, relatedArticles, 4)

	rec = do(e, http.MethodGet, "/api/articles/recent", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var recent []dto.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recent))
	require.Len(t, recent, 1)
	assert.Equal(t, analyzed.Article.ID, recent[0].ID)

	// second submission of the same url returns the stored article
	rec = do(e, http.MethodPost, "/api/analyze", `{"url":"https://www.nytimes.com/x","generateNeutral":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var again dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, analyzed.Article.ID, again.Article.ID)
	assert.Len(t, again.RelatedArticles, 4)
}

func TestAnalyze_TextWithFlagsOff(t *testing.T) {
	e := newEcho(t, newPipeline())

	rec := do(e, http.MethodPost, "/api/analyze",
		`{"title":"Economy Policy Debate","text":"Jobs grew in March.","findRelatedSources":false,"generateNeutral":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Article.NeutralVersion)
	assert.Empty(t, resp.RelatedArticles)
	require.NotNil(t, resp.Article.BiasScore)
}

func TestErrors(t *testing.T) {
	e := newEcho(t, newPipeline())

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
	}{
		{"empty request", http.MethodPost, "/api/analyze", `{}`, http.StatusBadRequest},
		{"text without title", http.MethodPost, "/api/analyze", `{"text":"body"}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/analyze", `{"url":`, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/api/articles/abc", "", http.StatusBadRequest},
		{"zero id", http.MethodGet, "/api/articles/0", "", http.StatusBadRequest},
		{"missing article", http.MethodGet, "/api/articles/404", "", http.StatusNotFound},
		{"missing related", http.MethodGet, "/api/articles/404/related", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

// slowAnalyzer waits for the request context to expire the way a stalled upstream would.
type slowAnalyzer struct{}

func (slowAnalyzer) Analyze(ctx context.Context, _ analysis.Request) (analysis.Result, error) {
	<-ctx.Done()
	return analysis.Result{}, apperr.NewTransient("analysis did not finish in time", ctx.Err())
}

func (slowAnalyzer) Article(context.Context, int64) (analysis.Result, error) {
	return analysis.Result{}, nil
}

func (slowAnalyzer) RelatedArticles(context.Context, int64) ([]domain.RelatedArticle, error) {
	return nil, nil
}

func (slowAnalyzer) RecentArticles(context.Context) ([]domain.Article, error) {
	return nil, nil
}

func TestAnalyze_Timeout(t *testing.T) {
	e := newEcho(t, slowAnalyzer{}, WithAnalyzeTimeout(20*time.Millisecond))

	rec := do(e, http.MethodPost, "/api/analyze", `{"url":"https://cnn.com/a"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
