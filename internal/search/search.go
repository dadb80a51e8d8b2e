package search

import (
	"context"
	"slices"
	"strings"
	"time"
)

// Operator joins keywords into a conjunctive query.
const Operator = " AND "

// Hit is one ranked search result. OutletID refers to a catalogue outlet.
type Hit struct {
	Title       string
	URL         string
	OutletID    string
	PublishedAt time.Time
}

// Searcher finds news items matching every term of query, restricted to the given outlets.
// Hits come back ranked, best first.
type Searcher interface {
	Search(ctx context.Context, query string, outletIDs []string) ([]Hit, error)
}

func Conjunction(terms []string) string {
	return strings.Join(terms, Operator)
}

// Terms splits a conjunctive query back into its lowercase terms.
func Terms(query string) []string {
	var terms []string
	for _, part := range strings.Split(query, Operator) {
		if t := strings.ToLower(strings.TrimSpace(part)); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// FirstPerOutlet keeps the best ranked hit of each outlet, ordered like outletIDs.
func FirstPerOutlet(hits []Hit, outletIDs []string) []Hit {
	best := make(map[string]Hit, len(outletIDs))
	for _, h := range hits {
		if !slices.Contains(outletIDs, h.OutletID) {
			continue
		}
		if _, ok := best[h.OutletID]; !ok {
			best[h.OutletID] = h
		}
	}

	out := make([]Hit, 0, len(best))
	for _, id := range outletIDs {
		if h, ok := best[id]; ok {
			out = append(out, h)
		}
	}
	return out
}
