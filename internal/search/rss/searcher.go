package rss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/search"
	"github.com/mmcdole/gofeed"
)

const defaultTimeout = 15 * time.Second

// Searcher matches query terms against the current RSS items of each outlet.
// Items are ranked in feed order.
type Searcher struct {
	feeds  map[string]string
	parser *gofeed.Parser
}

func NewSearcher(outlets []domain.Outlet, client *http.Client) *Searcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	feeds := make(map[string]string, len(outlets))
	for _, o := range outlets {
		if o.FeedURL != "" {
			feeds[o.ID] = o.FeedURL
		}
	}

	parser := gofeed.NewParser()
	parser.Client = client

	return &Searcher{feeds: feeds, parser: parser}
}

func (s *Searcher) Search(ctx context.Context, query string, outletIDs []string) ([]search.Hit, error) {
	terms := search.Terms(query)
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty rss query")
	}

	var (
		hits    []search.Hit
		errs    []error
		fetched int
	)
	for _, id := range outletIDs {
		feedURL, ok := s.feeds[id]
		if !ok {
			continue
		}

		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			slog.Warn("Failed to read outlet feed", "outlet", id, "feed", feedURL, "error", err)
			errs = append(errs, fmt.Errorf("feed %s: %w", id, err))
			continue
		}
		fetched++

		for _, item := range feed.Items {
			if item.Link == "" || !matchesAll(item, terms) {
				continue
			}
			hit := search.Hit{Title: item.Title, URL: item.Link, OutletID: id}
			if item.PublishedParsed != nil {
				hit.PublishedAt = *item.PublishedParsed
			}
			hits = append(hits, hit)
		}
	}

	if fetched == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slog.Debug("RSS search completed", "query", query, "feeds", fetched, "hits", len(hits))
	return hits, nil
}

func matchesAll(item *gofeed.Item, terms []string) bool {
	text := strings.ToLower(item.Title + " " + item.Description)
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

var _ search.Searcher = (*Searcher)(nil)
