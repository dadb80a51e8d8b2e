package llm

import (
	"os"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Config struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// LoadConfigFromEnv reads LLM_* variables. The client is disabled when no API key is set.
func LoadConfigFromEnv() *Config {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = defaultModel
	}
	timeout, err := time.ParseDuration(os.Getenv("LLM_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = defaultTimeout
	}
	apiKey := os.Getenv("LLM_API_KEY")

	return &Config{
		Enabled: apiKey != "",
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Timeout: timeout,
	}
}
