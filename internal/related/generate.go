package related

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/keyword"
)

const (
	defaultSubject = "current"
	maxSlugLen     = 30
	maxJitterHours = 8
	publishedFmt   = time.DateOnly
)

var commonSubjects = []string{
	"military", "economy", "politics", "climate", "election", "healthcare",
	"immigration", "technology", "security", "terrorism", "war", "russia", "ukraine",
	"biden", "trump", "putin", "congress", "senate", "policy",
}

var (
	politicalSubjects     = []string{"politics", "election", "biden", "trump", "congress", "senate"}
	internationalSubjects = []string{"military", "war", "russia", "ukraine", "china", "europe"}
	economicSubjects      = []string{"economy", "finance", "trade", "tariffs", "taxes"}
	environmentSubjects   = []string{"climate", "environment", "energy"}
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Subject picks the story subject for a title: the first keyword that is a
// common news subject, else the first keyword, else "current". Capitalized.
func Subject(title string) string {
	keywords := keyword.Extract(title)
	subject := defaultSubject
	if len(keywords) > 0 {
		subject = keywords[0]
	}
	for _, k := range keywords {
		if slices.Contains(commonSubjects, k) {
			subject = k
			break
		}
	}
	r, size := utf8.DecodeRuneInString(subject)
	return string(unicode.ToUpper(r)) + subject[size:]
}

// EventDescription names the single story every generated outlet covers.
func EventDescription(subject string) string {
	lower := strings.ToLower(subject)
	if !slices.Contains(commonSubjects, lower) {
		return fmt.Sprintf("Breaking news regarding %s situation as officials respond", subject)
	}
	switch {
	case slices.Contains(politicalSubjects, lower):
		return fmt.Sprintf("President's new %s proposal sparked debate in Congress yesterday", subject)
	case slices.Contains(internationalSubjects, lower):
		return fmt.Sprintf("Major development in %s conflict as leaders meet for peace talks", subject)
	case slices.Contains(economicSubjects, lower):
		return fmt.Sprintf("New %s report shows unexpected shifts in major economic indicators", subject)
	case slices.Contains(environmentSubjects, lower):
		return fmt.Sprintf("Scientists release groundbreaking study on %s impacts", subject)
	default:
		return fmt.Sprintf("Major development in %s policy announced by administration", subject)
	}
}

// Generate writes one article per outlet about the same event, framed by the
// outlet's leaning. hoursAgo(n) returns a value in [0, n).
func Generate(title string, outlets []domain.Outlet, now time.Time, hoursAgo func(n int) int) []Candidate {
	subject := Subject(title)
	event := EventDescription(subject)
	eventSlug := slugify(event)

	out := make([]Candidate, 0, len(outlets))
	for _, o := range outlets {
		headline, body := frame(o, subject, event)
		published := now.Add(-time.Duration(hoursAgo(maxJitterHours)) * time.Hour)
		out = append(out, Candidate{
			Title:         headline,
			Content:       body,
			Source:        o.Name,
			URL:           fmt.Sprintf("https://www.%s.com/politics/%s", sourceSlug(o.Name), eventSlug),
			PublishedDate: published.Format(publishedFmt),
		})
	}
	return out
}

func frame(o domain.Outlet, subject, event string) (string, string) {
	lower := strings.ToLower(subject)
	switch {
	case o.Leaning.IsRight():
		return subject + " Development Raises Questions About Government Approach",
			fmt.Sprintf(rightTemplate, o.Name, event, lower, lower)
	case o.Leaning.IsLeft():
		return subject + " Initiative Shows Promise Despite Opposition",
			fmt.Sprintf(leftTemplate, o.Name, event, lower)
	default:
		return subject + " Development: Analyzing the Implications",
			fmt.Sprintf(centristTemplate, o.Name, event, lower)
	}
}

func sourceSlug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "")
}

func slugify(s string) string {
	slug := whitespace.ReplaceAllString(nonWord.ReplaceAllString(strings.ToLower(s), ""), "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug
}

const rightTemplate = `%s - %s.

The development has raised questions among experts about the administration's broader strategy on %s.

"This approach could have significant unintended consequences," said Robert Williams, senior fellow at the Economic Policy Institute. "We need to carefully consider the implications for businesses and taxpayers before proceeding further."

Critics suggest that alternative approaches might yield better results with fewer regulatory burdens. Industry representatives have expressed concern about potential impacts on economic growth and job creation.

"What we're seeing is a pattern of overreach that could stifle innovation," noted Senator James Wilson, who serves on the congressional committee overseeing %s policy. "There are more effective market-based solutions that deserve consideration."

Supporters of the administration dispute these characterizations, arguing that bold action is necessary. The debate is expected to continue as more details emerge about the specific implementation plans.`

const leftTemplate = `%s - %s.

Experts have hailed the development as an important step forward in addressing long-standing issues related to %s.

"This represents a significant improvement over previous approaches," said Dr. Sarah Jenkins, director of the Center for Progressive Policy. "The data shows that comprehensive interventions like this can deliver meaningful results, particularly for underserved communities."

Advocacy groups have praised the initiative's emphasis on equity and sustainability, though they note that additional resources may be needed to achieve the stated goals.

"We're finally seeing the kind of bold vision that matches the scale of the challenge," said community organizer Miguel Sanchez. "But success will depend on maintaining this commitment over the long term."

Opponents have criticized aspects of the approach, questioning both its cost and implementation timeline. Administration officials insist that these concerns misrepresent the initiative's likely impacts and benefits.`

const centristTemplate = `%s - %s.

The announcement has generated mixed reactions from policy experts and stakeholders across the political spectrum.

"There are both promising elements and legitimate concerns in this approach," explained Professor Jennifer Carter, who specializes in %s policy at National University. "The key will be in the implementation details and whether there's flexibility to adjust based on real-world outcomes."

The initiative builds on previous efforts while introducing several new elements that have not been tried before at this scale. Analysts are divided on whether the benefits will outweigh potential disruptions during the transition period.

Polling indicates that public opinion remains divided, with support largely falling along partisan lines. Business leaders have offered cautious assessments, acknowledging the need for action while expressing concerns about specific provisions.

"What we need is a balanced approach that considers diverse perspectives," said former policy advisor Thomas Chen. "The most successful initiatives in this area have typically incorporated input from multiple stakeholders and remained adaptable over time."`
