package es

import (
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
)

const DefaultIndexName = "news_lens_articles"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) index() string {
	if c.IndexName == "" {
		return DefaultIndexName
	}
	return c.IndexName
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}

// ArticleDocument is an analyzed article as stored in the archive index.
type ArticleDocument struct {
	ID               string    `json:"id"`
	ArticleID        int64     `json:"article_id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	URL              string    `json:"url"`
	SourceID         string    `json:"source_id"`
	SourceName       string    `json:"source_name"`
	BiasScore        *int      `json:"bias_score,omitempty"`
	PoliticalLeaning string    `json:"political_leaning,omitempty"`
	Topics           []string  `json:"topics,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	IndexedAt        time.Time `json:"indexed_at"`
}

func toDocument(id string, a domain.Article, sourceID string, now time.Time) ArticleDocument {
	doc := ArticleDocument{
		ID:               id,
		ArticleID:        a.ID,
		Title:            a.Title,
		Content:          a.Content,
		URL:              a.URL,
		SourceID:         sourceID,
		SourceName:       a.Source,
		BiasScore:        a.BiasScore,
		PoliticalLeaning: a.PoliticalLeaning,
		CreatedAt:        a.CreatedAt,
		IndexedAt:        now,
	}
	if a.AnalysisDetails != nil {
		doc.Topics = a.AnalysisDetails.Topics
	}
	return doc
}
