package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Content is the title, body and publisher of an article. Source is empty
// when the article came from free text.
type Content struct {
	Title   string
	Content string
	Source  string
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
}

const noiseSelector = "script, style, nav, header, footer, iframe, .ads, .ad, .advertisement, .social, .comments, .sidebar"

var containerSelectors = []string{
	"article", "main", ".article-content", ".post-content", ".entry-content",
	".story-body", ".article-body", "#article-body", ".content",
}

const (
	minParagraphLen = 30
	minTitleLen     = 3
	minContentLen   = 100
	maxPageBytes    = 5 << 20
	defaultTimeout  = 15 * time.Second
)

type Option func(*Acquirer)

type Acquirer struct {
	client  *http.Client
	enabled bool
}

func NewAcquirer(opts ...Option) *Acquirer {
	a := &Acquirer{
		client:  &http.Client{Timeout: defaultTimeout},
		enabled: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func WithHttpClient(client *http.Client) Option {
	return func(a *Acquirer) {
		a.client = client
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(a *Acquirer) {
		a.client.Timeout = timeout
	}
}

// WithFetch toggles live fetching. When off every URL resolves to the demo corpus.
func WithFetch(enabled bool) Option {
	return func(a *Acquirer) {
		a.enabled = enabled
	}
}

// FromText wraps user supplied text. There is no publisher.
func FromText(title, text string) Content {
	return Content{Title: title, Content: text}
}

// Acquire fetches and extracts an article. It never fails: any problem
// resolves to the demo corpus entry for the URL.
func (a *Acquirer) Acquire(ctx context.Context, rawURL string) fallback.Result[Content] {
	var primary fallback.Primary[Content]
	if a.enabled {
		primary = func(ctx context.Context) (Content, error) {
			return a.fetch(ctx, rawURL)
		}
	}
	return fallback.Resolve(ctx, "content_acquirer", primary, func() Content {
		return Demo(rawURL)
	})
}

func (a *Acquirer) fetch(ctx context.Context, rawURL string) (Content, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Content{}, fmt.Errorf("invalid article url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Content{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])

	resp, err := a.client.Do(req)
	if err != nil {
		return Content{}, fmt.Errorf("request article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Content{}, fmt.Errorf("article returned %s", resp.Status)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return Content{}, fmt.Errorf("read article: %w", err)
	}

	title, content, err := extract(page, u)
	if err != nil {
		return Content{}, err
	}

	slog.Debug("Article extracted", "url", rawURL, "title", title, "content_length", len(content))

	return Content{Title: title, Content: content, Source: SourceName(u.Hostname())}, nil
}

func extract(page []byte, pageURL *url.URL) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", "", fmt.Errorf("parse document: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	title := collapse(extractTitle(doc))
	if utf8.RuneCountInString(title) < minTitleLen {
		return "", "", fmt.Errorf("could not extract article title")
	}

	content := collapse(extractBody(doc))
	if len(content) < minContentLen {
		content = collapse(wholePage(page, pageURL, doc))
	}
	if len(content) < minContentLen {
		return "", "", fmt.Errorf("could not extract article content")
	}

	return title, content, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, sel := range []string{`meta[property="og:title"]`, `meta[name="twitter:title"]`} {
		if v, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v
	}
	return doc.Find("h1").First().Text()
}

func extractBody(doc *goquery.Document) string {
	for _, sel := range containerSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			if text := strings.TrimSpace(found.Text()); text != "" {
				return text
			}
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); len(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}

// wholePage is the last resort: readability over the raw page, then all body text.
func wholePage(page []byte, pageURL *url.URL, doc *goquery.Document) string {
	article, err := readability.FromReader(bytes.NewReader(page), pageURL)
	if err == nil {
		if text := strings.TrimSpace(article.TextContent); len(text) >= minContentLen {
			return text
		}
	}
	return doc.Find("body").Text()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
