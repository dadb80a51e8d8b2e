package bias

import (
	"math/rand"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/news-lens/internal/domain"
)

var keyFindings = []string{
	"Uses emotionally charged language to describe policies",
	"Contains unsupported claims about opponents",
	"Presents one-sided view of complex issues",
	"Lacks balanced representation of different perspectives",
}

// PhraseCatalogue is ordered; estimates take a prefix of it.
var PhraseCatalogue = []domain.BiasedPhrase{
	{Original: "radical agenda", Neutral: "policy proposal"},
	{Original: "destroy the economy", Neutral: "impact economic growth"},
	{Original: "reckless spending", Neutral: "federal expenditure"},
	{Original: "climate change hoax", Neutral: "climate change research"},
	{Original: "liberal elite", Neutral: "government officials"},
	{Original: "communist takeover", Neutral: "regulatory changes"},
	{Original: "freedom-crushing regulations", Neutral: "regulatory framework"},
	{Original: "right-wing extremists", Neutral: "political opponents"},
	{Original: "socialist nightmare", Neutral: "progressive policies"},
	{Original: "corrupt politicians", Neutral: "elected officials"},
}

type topicRule struct {
	topic    string
	keywords []string
}

// first match wins
var topicRules = []topicRule{
	{"Economy", []string{"econom", "market", "inflation", "jobs", "unemploy"}},
	{"Health", []string{"health", "covid", "pandemic", "disease", "vaccine"}},
	{"Environment", []string{"climate", "environment", "pollution", "green"}},
	{"Technology", []string{"tech", "digital", "app", "internet", "ai", "artificial intelligence"}},
	{"Military", []string{"war", "military", "army", "weapon", "defense"}},
	{"International", []string{"international", "global", "foreign", "diplomat", "nation"}},
	{"Law", []string{"law", "court", "judge", "justice", "legal"}},
}

const (
	minPhrases = 3
	maxPhrases = 8
)

// Estimate produces a plausible analysis without any external call.
// Score, leaning, findings and phrases depend only on the rune lengths of
// title and content; the extra topics come from a PRNG seeded the same way.
func Estimate(title, content string) domain.BiasAnalysisDetails {
	seed := utf8.RuneCountInString(title)*13 + utf8.RuneCountInString(content)*7
	rng := rand.New(rand.NewSource(int64(seed)))

	score := scoreFor(seed, rng)
	mainTopic, topics := topicsFor(title, rng)

	return domain.BiasAnalysisDetails{
		BiasScore:         score,
		PoliticalLeaning:  leaningFor(score, seed),
		EmotionalLanguage: emotionalRating(score),
		FactualReporting:  factualRating(score),
		KeyFindings:       slices.Clone(keyFindings),
		BiasedPhrases:     slices.Clone(PhraseCatalogue[:phraseCount(score)]),
		SourceDistribution: domain.SourceDistribution{
			LeftLeaning:  score / 20,
			Neutral:      max(0, 10-score/10),
			RightLeaning: score / 25,
		},
		LanguageDistribution: domain.LanguageDistribution{
			Neutral: 100 - score*7/10,
			Biased:  score * 7 / 10,
		},
		Topics:    topics,
		MainTopic: mainTopic,
	}
}

func scoreFor(seed int, rng *rand.Rand) int {
	switch band := seed % 100; {
	case band < 20:
		return 30 + rng.Intn(20)
	case band < 60:
		return 50 + rng.Intn(30)
	default:
		return 70 + rng.Intn(25)
	}
}

func leaningFor(score, seed int) string {
	left := seed%2 == 0
	pick := func(l, r string) string {
		if left {
			return l
		}
		return r
	}
	switch {
	case score < 40:
		return "Centrist"
	case score < 60:
		return pick("Lean Left", "Lean Right")
	case score < 80:
		return pick("Left-leaning", "Right-leaning")
	default:
		return pick("Far Left", "Far Right")
	}
}

func emotionalRating(score int) string {
	switch {
	case score > 70:
		return domain.RatingHigh
	case score > 40:
		return domain.RatingModerate
	default:
		return domain.RatingLow
	}
}

func factualRating(score int) string {
	switch {
	case score > 70:
		return domain.RatingLow
	case score > 50:
		return domain.RatingModerate
	default:
		return domain.RatingHigh
	}
}

func phraseCount(score int) int {
	return min(maxPhrases, max(minPhrases, score/15))
}

// MainTopic classifies a title with the keyword rules, defaulting to Politics.
func MainTopic(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.topic
			}
		}
	}
	return domain.DefaultTopic
}

func topicsFor(title string, rng *rand.Rand) (string, []string) {
	mainTopic := MainTopic(title)
	topics := []string{mainTopic}
	if mainTopic != domain.DefaultTopic {
		topics = append(topics, domain.DefaultTopic)
	}

	remaining := make([]string, 0, len(domain.Topics))
	for _, t := range domain.Topics {
		if !slices.Contains(topics, t) {
			remaining = append(remaining, t)
		}
	}

	extra := 1 + rng.Intn(3)
	for i := 0; i < extra && len(remaining) > 0; i++ {
		idx := rng.Intn(len(remaining))
		topics = append(topics, remaining[idx])
		remaining = slices.Delete(remaining, idx, idx+1)
	}

	return mainTopic, topics
}
