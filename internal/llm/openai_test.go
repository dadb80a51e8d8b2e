package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/news-lens/internal/apperr"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, content string, seen *ChatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":"nope"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(ChatResponse{
			ID:      "cmpl-1",
			Choices: []Choice{{Message: Message{Role: "assistant", Content: content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_Complete(t *testing.T) {
	var seen ChatRequest
	srv := newTestServer(t, http.StatusOK, "hello", &seen)

	client, err := NewOpenAIClient(srv.URL+"/v1", "sk-test")
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), ChatRequest{
		Model:    "gpt-4o",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content())
	assert.Equal(t, "gpt-4o", seen.Model)
}

func TestOpenAIClient_Complete_Errors(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, "", nil)
	client, err := NewOpenAIClient(srv.URL+"/v1", "sk-test")
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: RoleUser, Content: "x"}}})
	assert.ErrorContains(t, err, "429")

	_, err = client.Complete(context.Background(), ChatRequest{Model: "m"})
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestBiasAnalyzer_Analyze(t *testing.T) {
	payload := `{
		"biasScore": 64,
		"politicalLeaning": "Right-leaning",
		"emotionalLanguage": "Moderate",
		"factualReporting": "Moderate",
		"keyFindings": ["Loaded adjectives"],
		"biasedPhrases": [{"original": "job-killing", "neutral": "costly"}],
		"sourceDistribution": {"leftLeaning": 1, "neutral": 2, "rightLeaning": 4},
		"languageDistribution": {"neutral": 60, "biased": 40},
		"topics": ["Economy", "Politics"],
		"mainTopic": "Economy"
	}`
	var seen ChatRequest
	srv := newTestServer(t, http.StatusOK, payload, &seen)
	client, err := NewOpenAIClient(srv.URL+"/v1", "sk-test")
	require.NoError(t, err)

	details, err := NewBiasAnalyzer(client, "").Analyze(context.Background(), "Tax Bill", "Body text")

	require.NoError(t, err)
	assert.Equal(t, 64, details.BiasScore)
	assert.Equal(t, "Economy", details.MainTopic)
	assert.Equal(t, []domain.BiasedPhrase{{Original: "job-killing", Neutral: "costly"}}, details.BiasedPhrases)
	require.NotNil(t, seen.ResponseFormat)
	assert.Equal(t, "json_object", seen.ResponseFormat.Type)
	assert.Equal(t, defaultModel, seen.Model)
	assert.True(t, strings.Contains(seen.Messages[0].Content, "Title: Tax Bill"))
}

func TestBiasAnalyzer_Analyze_Malformed(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "not json", nil)
	client, err := NewOpenAIClient(srv.URL+"/v1", "sk-test")
	require.NoError(t, err)

	_, err = NewBiasAnalyzer(client, "m").Analyze(context.Background(), "t", "c")
	assert.ErrorContains(t, err, "decode bias analysis")
}

func TestRewriter_Rewrite(t *testing.T) {
	var seen ChatRequest
	srv := newTestServer(t, http.StatusOK, "  Calm rewrite.  ", &seen)
	client, err := NewOpenAIClient(srv.URL+"/v1", "sk-test")
	require.NoError(t, err)

	out, err := NewRewriter(client, "m").Rewrite(context.Background(), "Angry text", []domain.BiasedPhrase{{Original: "radical", Neutral: "proposed"}})

	require.NoError(t, err)
	assert.Equal(t, "Calm rewrite.", out)
	assert.Contains(t, seen.Messages[0].Content, `"radical" -> "proposed"`)
}

func TestFormatHints(t *testing.T) {
	assert.Equal(t, noPhrasesHint, formatHints(nil))
	assert.Equal(t, "\"a\" -> \"b\"\n\"c\" -> \"d\"", formatHints([]domain.BiasedPhrase{{Original: "a", Neutral: "b"}, {Original: "c", Neutral: "d"}}))
}
