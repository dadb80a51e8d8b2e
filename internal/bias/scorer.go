package bias

import (
	"context"
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
)

// Analyzer is the external bias-scoring collaborator, usually a chat model.
type Analyzer interface {
	Analyze(ctx context.Context, title, content string) (domain.BiasAnalysisDetails, error)
}

type Scorer struct {
	analyzer Analyzer
}

// NewScorer builds a scorer. A nil analyzer disables the primary arm.
func NewScorer(analyzer Analyzer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// Score always returns a valid analysis. When the analyzer is missing or its answer
// does not hold up, the deterministic estimate from Estimate is used instead.
func (s *Scorer) Score(ctx context.Context, content, title string) fallback.Result[domain.BiasAnalysisDetails] {
	var primary fallback.Primary[domain.BiasAnalysisDetails]
	if s.analyzer != nil {
		primary = func(ctx context.Context) (domain.BiasAnalysisDetails, error) {
			details, err := s.analyzer.Analyze(ctx, title, content)
			if err != nil {
				return domain.BiasAnalysisDetails{}, err
			}
			return sanitize(details)
		}
	}

	return fallback.Resolve(ctx, "bias_scorer", primary, func() domain.BiasAnalysisDetails {
		return Estimate(title, content)
	})
}

// sanitize drops topics outside the vocabulary and repairs the main topic,
// then rejects answers that still break the analysis invariants.
func sanitize(d domain.BiasAnalysisDetails) (domain.BiasAnalysisDetails, error) {
	known := make([]string, 0, len(d.Topics))
	for _, t := range d.Topics {
		if domain.IsTopic(t) && !slices.Contains(known, t) {
			known = append(known, t)
		}
	}
	d.Topics = known
	if len(d.Topics) > 0 && !slices.Contains(d.Topics, d.MainTopic) {
		d.MainTopic = d.Topics[0]
	}

	if err := d.Validate(); err != nil {
		return domain.BiasAnalysisDetails{}, fmt.Errorf("invalid analysis: %w", err)
	}
	return d, nil
}
