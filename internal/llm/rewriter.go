package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
)

const rewritePromptTemplate = `Rewrite the following news article so it is neutral and unbiased.
Keep the core facts but remove politically charged language, emotional framing and unbalanced
perspectives. The tone must be objective and journalistic.

Biased phrases identified (with neutral alternatives):
%s

Original article:
%s`

const noPhrasesHint = "No specific phrases identified. Neutralize any biased language you find."

type Rewriter struct {
	client Client
	model  string
}

func NewRewriter(client Client, model string) *Rewriter {
	if model == "" {
		model = defaultModel
	}
	return &Rewriter{client: client, model: model}
}

func (r *Rewriter) Rewrite(ctx context.Context, content string, hints []domain.BiasedPhrase) (string, error) {
	prompt := fmt.Sprintf(rewritePromptTemplate, formatHints(hints), content)

	resp, err := r.client.Complete(ctx, ChatRequest{
		Model:    r.model,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("rewrite request: %w", err)
	}

	out := strings.TrimSpace(resp.Content())
	if out == "" {
		return "", fmt.Errorf("rewrite response is empty")
	}
	return out, nil
}

func formatHints(hints []domain.BiasedPhrase) string {
	if len(hints) == 0 {
		return noPhrasesHint
	}
	lines := make([]string, 0, len(hints))
	for _, h := range hints {
		lines = append(lines, fmt.Sprintf("%q -> %q", h.Original, h.Neutral))
	}
	return strings.Join(lines, "\n")
}
