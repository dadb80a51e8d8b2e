package related

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
	"github.com/DjordjeVuckovic/news-lens/internal/keyword"
	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	"github.com/DjordjeVuckovic/news-lens/internal/scrape"
	"github.com/DjordjeVuckovic/news-lens/internal/search"
)

const queryKeywords = 3

var (
	errNoKeywords = errors.New("no keywords in title")
	errNoMatches  = errors.New("no matching stories across outlets")
)

// Candidate is an unscored article from another outlet.
type Candidate struct {
	Title         string
	Content       string
	Source        string
	URL           string
	PublishedDate string
}

// Item is a candidate together with its bias analysis.
type Item struct {
	Candidate
	Analysis     domain.BiasAnalysisDetails
	UsedFallback bool
}

type Acquirer interface {
	Acquire(ctx context.Context, url string) fallback.Result[scrape.Content]
}

type Scorer interface {
	Score(ctx context.Context, content, title string) fallback.Result[domain.BiasAnalysisDetails]
}

type Option func(*Finder)

type Finder struct {
	searcher search.Searcher
	acquirer Acquirer
	scorer   Scorer
	outlets  *outlet.Catalogue
	strategy Strategy
	now      func() time.Time
	hoursAgo func(n int) int
}

// NewFinder builds a finder. A nil searcher sends every lookup to the generated fallback.
func NewFinder(outlets *outlet.Catalogue, acquirer Acquirer, scorer Scorer, opts ...Option) *Finder {
	f := &Finder{
		outlets:  outlets,
		acquirer: acquirer,
		scorer:   scorer,
		strategy: Sequential{},
		now:      time.Now,
		hoursAgo: rand.Intn,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithSearcher(s search.Searcher) Option {
	return func(f *Finder) {
		f.searcher = s
	}
}

func WithStrategy(s Strategy) Option {
	return func(f *Finder) {
		if s != nil {
			f.strategy = s
		}
	}
}

// WithClock fixes the time base and publication jitter of generated articles.
func WithClock(now func() time.Time, hoursAgo func(n int) int) Option {
	return func(f *Finder) {
		f.now = now
		f.hoursAgo = hoursAgo
	}
}

// Find returns scored coverage of the same story from every outlet other than excludedSource.
// The Origin tells whether the items were found or generated.
func (f *Finder) Find(ctx context.Context, title, excludedSource string) fallback.Result[[]Item] {
	targets := f.outlets.Except(excludedSource)

	var primary fallback.Primary[[]Candidate]
	if f.searcher != nil {
		primary = func(ctx context.Context) ([]Candidate, error) {
			return f.lookup(ctx, title, targets)
		}
	}

	candidates := fallback.Resolve(ctx, "related_finder", primary, func() []Candidate {
		return Generate(title, targets, f.now(), f.hoursAgo)
	})

	items := f.strategy.Run(ctx, candidates.Value, f.score)

	slog.Info("Related coverage resolved", "title", title, "excluded", excludedSource, "items", len(items), "origin", candidates.Origin)

	return fallback.Result[[]Item]{Value: items, Origin: candidates.Origin, Reason: candidates.Reason}
}

func (f *Finder) lookup(ctx context.Context, title string, targets []domain.Outlet) ([]Candidate, error) {
	keywords := keyword.Top(title, queryKeywords)
	if len(keywords) == 0 {
		return nil, errNoKeywords
	}

	ids := outlet.IDs(targets)
	query := search.Conjunction(keywords)

	hits, err := f.searcher.Search(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var candidates []Candidate
	for _, hit := range search.FirstPerOutlet(hits, ids) {
		o, _ := f.outlets.ByID(hit.OutletID)

		content := f.acquirer.Acquire(ctx, hit.URL)
		if content.UsedFallback() {
			slog.Warn("Skipping related hit, content unavailable", "url", hit.URL, "outlet", o.Name, "reason", content.Reason)
			continue
		}

		c := Candidate{
			Title:   content.Value.Title,
			Content: content.Value.Content,
			Source:  o.Name,
			URL:     hit.URL,
		}
		if !hit.PublishedAt.IsZero() {
			c.PublishedDate = hit.PublishedAt.Format(publishedFmt)
		}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return nil, errNoMatches
	}
	return candidates, nil
}

func (f *Finder) score(ctx context.Context, c Candidate) Item {
	res := f.scorer.Score(ctx, c.Content, c.Title)
	return Item{Candidate: c, Analysis: res.Value, UsedFallback: res.UsedFallback()}
}
