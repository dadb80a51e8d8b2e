package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-lens/internal/search"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/operator"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

const defaultSearchSize = 20

var searchFields = []string{"title^2", "content"}

// Searcher runs conjunctive full-text queries over the archive index.
type Searcher struct {
	client    *elasticsearch.TypedClient
	indexName string
	size      int
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:    client,
		indexName: config.index(),
		size:      defaultSearchSize,
	}, nil
}

func (s *Searcher) Search(ctx context.Context, query string, outletIDs []string) ([]search.Hit, error) {
	terms := search.Terms(query)
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty search query")
	}

	and := operator.And
	must := types.Query{
		MultiMatch: &types.MultiMatchQuery{
			Query:    strings.Join(terms, " "),
			Fields:   searchFields,
			Operator: &and,
		},
	}

	ids := make([]types.FieldValue, 0, len(outletIDs))
	for _, id := range outletIDs {
		ids = append(ids, id)
	}
	filter := types.Query{
		Terms: &types.TermsQuery{
			TermsQuery: map[string]types.TermsQueryField{"source_id": ids},
		},
	}

	desc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Must:   []types.Query{must},
				Filter: []types.Query{filter},
			},
		}).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{"_score": {Order: &desc}},
		}).
		Size(s.size).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "query", query)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	hits := make([]search.Hit, 0, len(res.Hits.Hits))
	for _, h := range res.Hits.Hits {
		var doc ArticleDocument
		if err := json.Unmarshal(h.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		hits = append(hits, search.Hit{
			Title:       doc.Title,
			URL:         doc.URL,
			OutletID:    doc.SourceID,
			PublishedAt: doc.CreatedAt,
		})
	}

	slog.Info("Es search results fetched", "query", query, "returned_count", len(hits))
	return hits, nil
}

var _ search.Searcher = (*Searcher)(nil)
