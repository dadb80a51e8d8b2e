package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-lens/pkg/utils"
)

const DefaultRequestTimeout = 60 * time.Second

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// RequestTimeout bounds a single analysis request.
	RequestTimeout time.Duration
}

// LoadConfig reads the server settings. The .env file is loaded by the caller.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	timeout := DefaultRequestTimeout
	if v := os.Getenv("ANALYZE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid ANALYZE_TIMEOUT %q: expected a positive duration like 45s", v)
		}
		timeout = d
	}

	return &Config{
		Port:           port,
		UseHttp2:       useHttp2,
		CorsOrigins:    origins,
		RequestTimeout: timeout,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
