package es

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// Archive indexes analyzed articles so later analyses can find them as related coverage.
type Archive struct {
	client    *elasticsearch.TypedClient
	indexName string
	outlets   *outlet.Catalogue
	now       func() time.Time
}

func NewArchive(ctx context.Context, config ClientConfig, outlets *outlet.Catalogue) (*Archive, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	a := &Archive{
		client:    client,
		indexName: config.index(),
		outlets:   outlets,
		now:       time.Now,
	}

	if err := EnsureIndex(ctx, client, a.indexName); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return a, nil
}

// DocumentID is stable per article so re-indexing overwrites instead of duplicating.
func DocumentID(a domain.Article) string {
	key := a.URL
	if key == "" {
		key = "article:" + strconv.FormatInt(a.ID, 10)
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func (a *Archive) Index(ctx context.Context, article domain.Article) error {
	sourceID := ""
	if o, ok := a.outlets.ByName(article.Source); ok {
		sourceID = o.ID
	}

	doc := toDocument(DocumentID(article), article, sourceID, a.now())

	res, err := a.client.Index(a.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("Article archived", "id", doc.ID, "article_id", article.ID, "index", a.indexName, "result", res.Result)
	return nil
}

func EnsureIndex(ctx context.Context, client *elasticsearch.TypedClient, indexName string) error {
	exists, err := client.Indices.Exists(indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Debug("Index already exists", "index", indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":                types.NewKeywordProperty(),
			"article_id":        types.NewLongNumberProperty(),
			"title":             textWithKeyword(),
			"content":           types.NewTextProperty(),
			"url":               types.NewKeywordProperty(),
			"source_id":         types.NewKeywordProperty(),
			"source_name":       textWithKeyword(),
			"bias_score":        types.NewIntegerNumberProperty(),
			"political_leaning": types.NewKeywordProperty(),
			"topics":            types.NewKeywordProperty(),
			"created_at":        types.NewDateProperty(),
			"indexed_at":        types.NewDateProperty(),
		},
	}

	res, err := client.Indices.Create(indexName).Mappings(&mappings).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created", "index", indexName)
	return nil
}

func textWithKeyword() types.Property {
	p := types.NewTextProperty()
	p.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return p
}
