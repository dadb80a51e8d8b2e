package llm

import (
	"context"
)

const defaultModel = "gpt-4o"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`

	// ResponseFormat asks the model for a JSON object when set to "json_object".
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`

	Temperature *float64 `json:"temperature,omitempty"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type ChatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// Content returns the first choice's message, or "" when there is none.
func (r *ChatResponse) Content() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

type Client interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
