package analysis

import (
	"strings"

	"github.com/DjordjeVuckovic/news-lens/internal/apperr"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
)

// Request asks for one article to be analyzed, either by URL or as raw text.
// A URL takes precedence over text and title when both are given.
type Request struct {
	URL                string
	Text               string
	Title              string
	FindRelatedSources bool
	GenerateNeutral    bool
}

func (r Request) normalize() Request {
	r.URL = strings.TrimSpace(r.URL)
	r.Title = strings.TrimSpace(r.Title)
	r.Text = strings.TrimSpace(r.Text)
	return r
}

// Validate enforces "url OR (text AND title)".
func (r Request) Validate() error {
	r = r.normalize()
	if r.URL != "" {
		return nil
	}
	if r.Text == "" && r.Title == "" {
		return apperr.NewValidation("either url or text and title must be provided")
	}
	if r.Text == "" {
		return apperr.NewValidation("text is required when no url is given")
	}
	if r.Title == "" {
		return apperr.NewValidation("title is required when no url is given")
	}
	return nil
}

// Step records which arm a pipeline stage resolved through.
type Step struct {
	Name   string
	Origin fallback.Origin
	Reason string
}

type Result struct {
	Article         domain.Article
	RelatedArticles []domain.RelatedArticle
	// Existing is set when the URL had already been analyzed and nothing new ran.
	Existing bool
	Steps    []Step
}

func step[T any](name string, r fallback.Result[T]) Step {
	s := Step{Name: name, Origin: r.Origin}
	if r.Reason != nil {
		s.Reason = r.Reason.Error()
	}
	return s
}
