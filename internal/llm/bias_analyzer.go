package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
)

const biasPromptTemplate = `Analyze the following news article for media bias. Provide:
1. biasScore: integer from 0 to 100 (0 completely neutral, 100 extremely biased)
2. politicalLeaning: e.g. Left-leaning, Right-leaning, Centrist
3. emotionalLanguage: one of Low, Moderate, High
4. factualReporting: one of Low, Moderate, High
5. keyFindings: 3-5 short observations about bias in the content
6. biasedPhrases: 3-10 objects {"original": ..., "neutral": ...}
7. sourceDistribution: {"leftLeaning": n, "neutral": n, "rightLeaning": n} counts of cited sources
8. languageDistribution: {"neutral": pct, "biased": pct}
9. topics: 3-5 entries from: %s
10. mainTopic: the single entry of topics that best describes the article

Respond with a JSON object containing exactly these properties.

Title: %s
Article: %s`

// BiasAnalyzer scores articles through a chat model.
type BiasAnalyzer struct {
	client Client
	model  string
}

func NewBiasAnalyzer(client Client, model string) *BiasAnalyzer {
	if model == "" {
		model = defaultModel
	}
	return &BiasAnalyzer{client: client, model: model}
}

func (a *BiasAnalyzer) Analyze(ctx context.Context, title, content string) (domain.BiasAnalysisDetails, error) {
	prompt := fmt.Sprintf(biasPromptTemplate, strings.Join(domain.Topics, ", "), title, content)

	slog.Debug("Requesting bias analysis", "model", a.model, "title", title, "content_length", len(content))

	resp, err := a.client.Complete(ctx, ChatRequest{
		Model:          a.model,
		Messages:       []Message{{Role: RoleUser, Content: prompt}},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return domain.BiasAnalysisDetails{}, fmt.Errorf("bias analysis request: %w", err)
	}

	raw := strings.TrimSpace(resp.Content())
	if raw == "" {
		return domain.BiasAnalysisDetails{}, fmt.Errorf("bias analysis response is empty")
	}

	var details domain.BiasAnalysisDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return domain.BiasAnalysisDetails{}, fmt.Errorf("decode bias analysis: %w", err)
	}

	return details, nil
}
