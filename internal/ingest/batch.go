package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 2

type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (analysis.Result, error)
}

// Outcome is the result of analyzing one row. Err is set when the row failed.
type Outcome struct {
	Row    Row
	Result analysis.Result
	Err    error
}

type Batch struct {
	analyzer Analyzer
	workers  int
}

type BatchOption func(*Batch)

func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.workers = n
		}
	}
}

func NewBatch(analyzer Analyzer, opts ...BatchOption) *Batch {
	b := &Batch{
		analyzer: analyzer,
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run analyzes every row with at most the configured number of rows in flight.
// A failing row never stops the others. Outcomes keep the order of rows.
// Rows not started before ctx is done fail with the context error.
func (b *Batch) Run(ctx context.Context, rows []Row) []Outcome {
	start := time.Now()
	outcomes := make([]Outcome, len(rows))

	g := new(errgroup.Group)
	g.SetLimit(b.workers)

	for i, row := range rows {
		outcomes[i].Row = row
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		g.Go(func() error {
			res, err := b.analyzer.Analyze(ctx, row.Request)
			if err != nil {
				slog.Error("Failed to analyze row", "line", row.Line, "error", err)
				outcomes[i].Err = err
				return nil
			}
			slog.Info("Row analyzed", "line", row.Line, "articleId", res.Article.ID, "existing", res.Existing)
			outcomes[i].Result = res
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("Batch run completed", "rows", len(rows), "failed", Failed(outcomes), "duration", time.Since(start))
	return outcomes
}

func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
