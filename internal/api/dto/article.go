package dto

import (
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
)

// AnalyzeRequest is the body of POST /api/analyze. Either url, or text with title, is required.
// Both flags default to true when omitted.
type AnalyzeRequest struct {
	URL                string `json:"url,omitempty" example:"https://www.nytimes.com/2024/05/01/us/politics/budget.html"`
	Text               string `json:"text,omitempty"`
	Title              string `json:"title,omitempty" example:"Economy Policy Debate"`
	FindRelatedSources *bool  `json:"findRelatedSources,omitempty" example:"true"`
	GenerateNeutral    *bool  `json:"generateNeutral,omitempty" example:"true"`
}

func (r AnalyzeRequest) ToDomain() analysis.Request {
	return analysis.Request{
		URL:                r.URL,
		Text:               r.Text,
		Title:              r.Title,
		FindRelatedSources: flag(r.FindRelatedSources),
		GenerateNeutral:    flag(r.GenerateNeutral),
	}
}

func flag(b *bool) bool {
	return b == nil || *b
}

type Article struct {
	ID                int64                       `json:"id"`
	URL               string                      `json:"url,omitempty"`
	Title             string                      `json:"title"`
	Content           string                      `json:"content"`
	Source            string                      `json:"source,omitempty"`
	BiasScore         *int                        `json:"biasScore,omitempty"`
	PoliticalLeaning  string                      `json:"politicalLeaning,omitempty"`
	EmotionalLanguage string                      `json:"emotionalLanguage,omitempty"`
	FactualReporting  string                      `json:"factualReporting,omitempty"`
	NeutralVersion    *string                     `json:"neutralVersion,omitempty"`
	AnalysisDetails   *domain.BiasAnalysisDetails `json:"analysisDetails,omitempty"`
	CreatedAt         time.Time                   `json:"createdAt"`
}

type RelatedArticle struct {
	ID                int64     `json:"id"`
	OriginalArticleID int64     `json:"originalArticleId"`
	URL               string    `json:"url,omitempty"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Source            string    `json:"source"`
	BiasScore         *int      `json:"biasScore,omitempty"`
	KeyTerms          []string  `json:"keyTerms,omitempty"`
	PublishedDate     string    `json:"publishedDate,omitempty" example:"2024-05-01"`
	Topics            []string  `json:"topics,omitempty"`
	MainTopic         string    `json:"mainTopic,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type AnalysisResponse struct {
	Article         Article          `json:"article"`
	RelatedArticles []RelatedArticle `json:"relatedArticles"`
}

func FromArticle(a domain.Article) Article {
	return Article{
		ID:                a.ID,
		URL:               a.URL,
		Title:             a.Title,
		Content:           a.Content,
		Source:            a.Source,
		BiasScore:         a.BiasScore,
		PoliticalLeaning:  a.PoliticalLeaning,
		EmotionalLanguage: a.EmotionalLanguage,
		FactualReporting:  a.FactualReporting,
		NeutralVersion:    a.NeutralVersion,
		AnalysisDetails:   a.AnalysisDetails,
		CreatedAt:         a.CreatedAt,
	}
}

func FromArticles(articles []domain.Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromArticle(a))
	}
	return out
}

func FromRelatedArticles(related []domain.RelatedArticle) []RelatedArticle {
	out := make([]RelatedArticle, 0, len(related))
	for _, ra := range related {
		out = append(out, RelatedArticle(ra))
	}
	return out
}

func FromResult(res analysis.Result) AnalysisResponse {
	return AnalysisResponse{
		Article:         FromArticle(res.Article),
		RelatedArticles: FromRelatedArticles(res.RelatedArticles),
	}
}
