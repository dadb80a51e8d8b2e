package related

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ScoreFunc turns a candidate into a scored item. It must not fail.
type ScoreFunc func(ctx context.Context, c Candidate) Item

// Strategy decides how candidates are scored. Output order always matches input order.
type Strategy interface {
	Run(ctx context.Context, candidates []Candidate, score ScoreFunc) []Item
}

// Sequential scores one candidate at a time.
type Sequential struct{}

func (Sequential) Run(ctx context.Context, candidates []Candidate, score ScoreFunc) []Item {
	items := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, score(ctx, c))
	}
	return items
}

// Bounded scores with at most Workers candidates in flight.
type Bounded struct {
	Workers int
}

func (b Bounded) Run(ctx context.Context, candidates []Candidate, score ScoreFunc) []Item {
	if b.Workers <= 1 {
		return Sequential{}.Run(ctx, candidates, score)
	}

	items := make([]Item, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Workers)
	for i, c := range candidates {
		g.Go(func() error {
			items[i] = score(gctx, c)
			return nil
		})
	}
	_ = g.Wait()
	return items
}

// NewStrategy picks Bounded for workers > 1 and Sequential otherwise.
func NewStrategy(workers int) Strategy {
	if workers > 1 {
		return Bounded{Workers: workers}
	}
	return Sequential{}
}
