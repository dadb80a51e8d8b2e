package outlet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalogue is the ordered set of outlets compared against each other.
type Catalogue struct {
	outlets []domain.Outlet
}

type file struct {
	Kind    string          `yaml:"kind"`
	Version string          `yaml:"version"`
	Outlets []domain.Outlet `yaml:"outlets"`
}

// Default returns the five major US outlets.
func Default() *Catalogue {
	return &Catalogue{outlets: []domain.Outlet{
		{ID: "the-new-york-times", Name: "New York Times", Domain: "nytimes.com", Leaning: domain.LeaningCenterLeft, FeedURL: "https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml"},
		{ID: "the-wall-street-journal", Name: "Wall Street Journal", Domain: "wsj.com", Leaning: domain.LeaningCenterRight, FeedURL: "https://feeds.a.dj.com/rss/RSSWorldNews.xml"},
		{ID: "the-washington-post", Name: "Washington Post", Domain: "washingtonpost.com", Leaning: domain.LeaningCenterLeft, FeedURL: "https://feeds.washingtonpost.com/rss/politics"},
		{ID: "fox-news", Name: "Fox News", Domain: "foxnews.com", Leaning: domain.LeaningRight, FeedURL: "https://moxie.foxnews.com/google-publisher/politics.xml"},
		{ID: "cnn", Name: "CNN", Domain: "cnn.com", Leaning: domain.LeaningCenterLeft, FeedURL: "http://rss.cnn.com/rss/cnn_allpolitics.rss"},
	}}
}

func New(outlets []domain.Outlet) (*Catalogue, error) {
	c := &Catalogue{outlets: outlets}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load decodes a YAML outlet list.
func Load(r io.Reader) (*Catalogue, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parse outlets YAML: %w", err)
	}
	return New(f.Outlets)
}

// LoadFromFile reads the catalogue at path, or returns Default when path is empty.
func LoadFromFile(path string) (*Catalogue, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open outlets file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (c *Catalogue) Validate() error {
	if len(c.outlets) == 0 {
		return fmt.Errorf("outlet catalogue is empty")
	}
	seen := make(map[string]struct{}, len(c.outlets))
	for i, o := range c.outlets {
		if o.ID == "" || o.Name == "" {
			return fmt.Errorf("outlet at index %d needs both id and name", i)
		}
		if !o.Leaning.Valid() {
			return fmt.Errorf("outlet %q has invalid leaning %q", o.ID, o.Leaning)
		}
		key := strings.ToLower(o.Name)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate outlet name %q", o.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (c *Catalogue) All() []domain.Outlet {
	out := make([]domain.Outlet, len(c.outlets))
	copy(out, c.outlets)
	return out
}

// Except returns every outlet whose name differs from excluded, in catalogue order.
func (c *Catalogue) Except(excluded string) []domain.Outlet {
	out := make([]domain.Outlet, 0, len(c.outlets))
	for _, o := range c.outlets {
		if o.SameName(excluded) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (c *Catalogue) ByName(name string) (domain.Outlet, bool) {
	for _, o := range c.outlets {
		if o.SameName(name) {
			return o, true
		}
	}
	return domain.Outlet{}, false
}

func (c *Catalogue) ByID(id string) (domain.Outlet, bool) {
	for _, o := range c.outlets {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Outlet{}, false
}

// IDs lists outlet ids in catalogue order.
func IDs(outlets []domain.Outlet) []string {
	ids := make([]string, 0, len(outlets))
	for _, o := range outlets {
		ids = append(ids, o.ID)
	}
	return ids
}
