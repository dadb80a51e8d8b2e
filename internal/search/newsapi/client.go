package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
	"github.com/DjordjeVuckovic/news-lens/internal/search"
)

const (
	DefaultBaseURL  = "https://newsapi.org/v2"
	defaultPageSize = 10
	defaultTimeout  = 15 * time.Second
)

type article struct {
	Source struct {
		ID   *string `json:"id"`
		Name string  `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

type everythingResponse struct {
	Status       string    `json:"status"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
	TotalResults int       `json:"totalResults"`
	Articles     []article `json:"articles"`
}

type Option func(*Client)

// Client searches the NewsAPI /everything endpoint.
type Client struct {
	base     url.URL
	apiKey   string
	pageSize int
	http     *http.Client
}

func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid news api url: %w", err)
	}

	c := &Client{
		base:     *base,
		apiKey:   apiKey,
		pageSize: defaultPageSize,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func WithHttpClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

func (c *Client) Search(ctx context.Context, query string, outletIDs []string) ([]search.Hit, error) {
	if c.apiKey == "" {
		return nil, fallback.ErrDisabled
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sources", strings.Join(outletIDs, ","))
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(c.pageSize))

	reqURL := c.base.JoinPath("everything")
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	slog.Debug("Searching news api", "query", query, "sources", outletIDs)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read news api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data everythingResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode news api response: %w", err)
	}
	if data.Status != "ok" {
		return nil, fmt.Errorf("news api status %q: %s", data.Status, data.Message)
	}

	hits := make([]search.Hit, 0, len(data.Articles))
	for _, a := range data.Articles {
		if a.Source.ID == nil || a.URL == "" {
			continue
		}
		hits = append(hits, search.Hit{
			Title:       a.Title,
			URL:         a.URL,
			OutletID:    *a.Source.ID,
			PublishedAt: a.PublishedAt,
		})
	}

	slog.Info("News api search completed", "query", query, "total", data.TotalResults, "hits", len(hits))
	return hits, nil
}

var _ search.Searcher = (*Client)(nil)
