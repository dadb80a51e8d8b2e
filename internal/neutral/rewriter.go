package neutral

import (
	"context"
	"regexp"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/DjordjeVuckovic/news-lens/internal/fallback"
)

// Marker is appended once to every locally generated neutral version.
const Marker = "\n\n[This is a fallback-generated neutral version]"

// Collaborator rewrites content with an external model.
type Collaborator interface {
	Rewrite(ctx context.Context, content string, hints []domain.BiasedPhrase) (string, error)
}

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// applied in order
var replacements = []replacement{
	{regexp.MustCompile(`(?i)radical`), "proposed"},
	{regexp.MustCompile(`(?i)destroy`), "affect"},
	{regexp.MustCompile(`(?i)reckless`), "significant"},
	{regexp.MustCompile(`(?i)hoax`), "topic"},
	{regexp.MustCompile(`(?i)elite`), "officials"},
	{regexp.MustCompile(`(?i)takeover`), "changes"},
	{regexp.MustCompile(`(?i)freedom-crushing`), ""},
	{regexp.MustCompile(`(?i)extremists`), "advocates"},
	{regexp.MustCompile(`(?i)nightmare`), "policy"},
	{regexp.MustCompile(`(?i)corrupt`), "elected"},
}

type Rewriter struct {
	collaborator Collaborator
}

// NewRewriter builds a rewriter. A nil collaborator disables the primary arm.
func NewRewriter(c Collaborator) *Rewriter {
	return &Rewriter{collaborator: c}
}

func (r *Rewriter) Rewrite(ctx context.Context, content string, phrases []domain.BiasedPhrase) fallback.Result[string] {
	var primary fallback.Primary[string]
	if r.collaborator != nil {
		primary = func(ctx context.Context) (string, error) {
			return r.collaborator.Rewrite(ctx, content, phrases)
		}
	}

	return fallback.Resolve(ctx, "neutral_rewriter", primary, func() string {
		return Substitute(content) + Marker
	})
}

// Substitute applies the replacement table without adding the marker.
func Substitute(content string) string {
	out := content
	for _, r := range replacements {
		out = r.pattern.ReplaceAllLiteralString(out, r.with)
	}
	return out
}
