package outlet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Len(t, c.All(), 5)
	assert.Equal(t, []string{"the-new-york-times", "the-wall-street-journal", "the-washington-post", "fox-news", "cnn"}, IDs(c.All()))
}

func TestCatalogue_Except(t *testing.T) {
	c := Default()

	rest := c.Except("fox news")

	assert.Len(t, rest, 4)
	for _, o := range rest {
		assert.NotEqual(t, "Fox News", o.Name)
	}
	assert.Len(t, c.Except("Unknown Daily"), 5)
}

func TestCatalogue_Lookup(t *testing.T) {
	c := Default()

	o, ok := c.ByName("CNN")
	require.True(t, ok)
	assert.Equal(t, "cnn", o.ID)

	o, ok = c.ByID("the-wall-street-journal")
	require.True(t, ok)
	assert.Equal(t, domain.LeaningCenterRight, o.Leaning)

	_, ok = c.ByID("missing")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		r := strings.NewReader(`
kind: OutletCatalogue
version: v1
outlets:
  - id: reuters
    name: Reuters
    domain: reuters.com
    leaning: center
  - id: fox-news
    name: Fox News
    domain: foxnews.com
    leaning: right
    feedUrl: https://example.com/fox.xml
`)
		c, err := Load(r)
		require.NoError(t, err)
		assert.Len(t, c.All(), 2)
		assert.Equal(t, "https://example.com/fox.xml", c.All()[1].FeedURL)
	})

	t.Run("invalid leaning", func(t *testing.T) {
		r := strings.NewReader(`
outlets:
  - id: x
    name: X
    leaning: sideways
`)
		_, err := Load(r)
		assert.ErrorContains(t, err, "invalid leaning")
	})

	t.Run("duplicate names", func(t *testing.T) {
		r := strings.NewReader(`
outlets:
  - {id: a, name: Same, leaning: left}
  - {id: b, name: same, leaning: right}
`)
		_, err := Load(r)
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Load(strings.NewReader("outlets: []\n"))
		assert.Error(t, err)
	})
}

func TestLoadFromFile(t *testing.T) {
	c, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Len(t, c.All(), 5)

	path := filepath.Join(t.TempDir(), "outlets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outlets:\n  - {id: bbc, name: BBC News, leaning: center}\n"), 0o644))

	c, err = LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BBC News", c.All()[0].Name)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
