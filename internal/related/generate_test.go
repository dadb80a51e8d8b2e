package related

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/news-lens/internal/outlet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Lawmakers weigh new climate rules", "Climate"},
		{"Markets rally after trump remarks", "Trump"},
		{"Stocks climb again", "Stocks"},
		{"", "Current"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Subject(tt.title), tt.title)
	}
}

func TestEventDescription(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{"Senate", "President's new Senate proposal sparked debate in Congress yesterday"},
		{"Ukraine", "Major development in Ukraine conflict as leaders meet for peace talks"},
		{"Economy", "New Economy report shows unexpected shifts in major economic indicators"},
		{"Climate", "Scientists release groundbreaking study on Climate impacts"},
		{"Immigration", "Major development in Immigration policy announced by administration"},
		{"Stocks", "Breaking news regarding Stocks situation as officials respond"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EventDescription(tt.subject))
	}
}

func TestGenerate(t *testing.T) {
	targets := outlet.Default().Except("CNN")

	got := Generate("Climate bill vote", targets, fixedNow, func(n int) int {
		assert.Equal(t, maxJitterHours, n)
		return 7
	})

	require.Len(t, got, 4)

	nyt := got[0]
	assert.Equal(t, "New York Times", nyt.Source)
	assert.Equal(t, "Climate Initiative Shows Promise Despite Opposition", nyt.Title)
	assert.True(t, strings.HasPrefix(nyt.Content, "New York Times - Scientists release groundbreaking study on Climate impacts."))
	assert.Equal(t, "https://www.newyorktimes.com/politics/scientists-release-groundbreak", nyt.URL)
	assert.Equal(t, "2024-05-01", nyt.PublishedDate)

	wsj := got[1]
	assert.Equal(t, "Climate Development Raises Questions About Government Approach", wsj.Title)
	assert.Contains(t, wsj.Content, "overseeing climate policy")

	fox := got[3]
	assert.Equal(t, "Fox News", fox.Source)
	assert.Equal(t, "https://www.foxnews.com/politics/scientists-release-groundbreak", fox.URL)
}

func TestGenerate_CentristFrame(t *testing.T) {
	c, err := outlet.Load(strings.NewReader(`
kind: outlets
version: v1
outlets:
  - id: reuters
    name: Reuters
    leaning: center
`))
	require.NoError(t, err)

	got := Generate("Markets", c.All(), fixedNow, func(int) int { return 0 })

	require.Len(t, got, 1)
	assert.Equal(t, "Markets Development: Analyzing the Implications", got[0].Title)
	assert.Equal(t, "2024-05-01", got[0].PublishedDate)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "presidents-new-senate-proposal", slugify("President's new Senate proposal sparked"))
	assert.Equal(t, "a-b", slugify("A,  b!"))
}
