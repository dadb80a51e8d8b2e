package domain

import (
	"time"
)

type Article struct {
	ID                int64                `json:"id"`
	URL               string               `json:"url,omitempty"`
	Title             string               `json:"title"`
	Content           string               `json:"content"`
	Source            string               `json:"source,omitempty"`
	BiasScore         *int                 `json:"biasScore,omitempty"`
	PoliticalLeaning  string               `json:"politicalLeaning,omitempty"`
	EmotionalLanguage string               `json:"emotionalLanguage,omitempty"`
	FactualReporting  string               `json:"factualReporting,omitempty"`
	NeutralVersion    *string              `json:"neutralVersion,omitempty"`
	AnalysisDetails   *BiasAnalysisDetails `json:"analysisDetails,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// NewArticle holds the fields a caller supplies on creation.
// ID and CreatedAt are assigned by the repository.
type NewArticle struct {
	URL             string
	Title           string
	Content         string
	Source          string
	NeutralVersion  *string
	AnalysisDetails *BiasAnalysisDetails
}

// ArticlePatch is a partial update. Nil fields are left untouched.
type ArticlePatch struct {
	NeutralVersion *string
}

// Build materializes a stored article from its insert form.
func (n NewArticle) Build(id int64, createdAt time.Time) Article {
	a := Article{
		ID:              id,
		URL:             n.URL,
		Title:           n.Title,
		Content:         n.Content,
		Source:          n.Source,
		NeutralVersion:  n.NeutralVersion,
		AnalysisDetails: n.AnalysisDetails,
		CreatedAt:       createdAt,
	}
	if d := n.AnalysisDetails; d != nil {
		score := d.BiasScore
		a.BiasScore = &score
		a.PoliticalLeaning = d.PoliticalLeaning
		a.EmotionalLanguage = d.EmotionalLanguage
		a.FactualReporting = d.FactualReporting
	}
	return a
}

// Apply returns a copy of the article with the patch applied.
func (a Article) Apply(p ArticlePatch) Article {
	if p.NeutralVersion != nil {
		v := *p.NeutralVersion
		a.NeutralVersion = &v
	}
	return a
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
	PublishedDate     string    `json:"publishedDate,omitempty"`
	Topics            []string  `json:"topics,omitempty"`
	MainTopic         string    `json:"mainTopic,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type NewRelatedArticle struct {
	OriginalArticleID int64
	URL               string
	Title             string
	Content           string
	Source            string
	BiasScore         *int
	KeyTerms          []string
	PublishedDate     string
	Topics            []string
	MainTopic         string
}

func (n NewRelatedArticle) Build(id int64, createdAt time.Time) RelatedArticle {
	return RelatedArticle{
		ID:                id,
		OriginalArticleID: n.OriginalArticleID,
		URL:               n.URL,
		Title:             n.Title,
		Content:           n.Content,
		Source:            n.Source,
		BiasScore:         n.BiasScore,
		KeyTerms:          n.KeyTerms,
		PublishedDate:     n.PublishedDate,
		Topics:            n.Topics,
		MainTopic:         n.MainTopic,
		CreatedAt:         createdAt,
	}
}
