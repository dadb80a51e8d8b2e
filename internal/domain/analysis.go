package domain

import (
	"fmt"
	"slices"
)

const (
	MinBiasScore = 0
	MaxBiasScore = 100
)

// Ratings used for emotional language and factual reporting.
const (
	RatingLow      = "Low"
	RatingModerate = "Moderate"
	RatingHigh     = "High"
)

const DefaultTopic = "Politics"

// Topics is the closed topic vocabulary, in display order.
var Topics = []string{
	"Politics", "Economy", "Health", "Environment", "Technology",
	"International", "Military", "Law", "Education", "Society",
	"Culture", "Science", "Immigration", "Civil Rights", "Elections",
}

type BiasedPhrase struct {
	Original string `json:"original"`
	Neutral  string `json:"neutral"`
}

type SourceDistribution struct {
	LeftLeaning  int `json:"leftLeaning"`
	Neutral      int `json:"neutral"`
	RightLeaning int `json:"rightLeaning"`
}

// LanguageDistribution is informational; values need not sum to 100.
type LanguageDistribution struct {
	Neutral int `json:"neutral"`
	Biased  int `json:"biased"`
}

type BiasAnalysisDetails struct {
	BiasScore            int                  `json:"biasScore"`
	PoliticalLeaning     string               `json:"politicalLeaning"`
	EmotionalLanguage    string               `json:"emotionalLanguage"`
	FactualReporting     string               `json:"factualReporting"`
	KeyFindings          []string             `json:"keyFindings"`
	BiasedPhrases        []BiasedPhrase       `json:"biasedPhrases"`
	SourceDistribution   SourceDistribution   `json:"sourceDistribution"`
	LanguageDistribution LanguageDistribution `json:"languageDistribution"`
	Topics               []string             `json:"topics"`
	MainTopic            string               `json:"mainTopic,omitempty"`
}

// PhraseOriginals lists the original wording of every detected phrase.
func (d *BiasAnalysisDetails) PhraseOriginals() []string {
	terms := make([]string, 0, len(d.BiasedPhrases))
	for _, p := range d.BiasedPhrases {
		terms = append(terms, p.Original)
	}
	return terms
}

// Validate checks the invariants every analysis must satisfy before it is stored.
func (d *BiasAnalysisDetails) Validate() error {
	if d.BiasScore < MinBiasScore || d.BiasScore > MaxBiasScore {
		return fmt.Errorf("bias score %d out of range [%d, %d]", d.BiasScore, MinBiasScore, MaxBiasScore)
	}
	if d.PoliticalLeaning == "" {
		return fmt.Errorf("political leaning is empty")
	}
	if !IsRating(d.EmotionalLanguage) {
		return fmt.Errorf("invalid emotional language rating %q", d.EmotionalLanguage)
	}
	if !IsRating(d.FactualReporting) {
		return fmt.Errorf("invalid factual reporting rating %q", d.FactualReporting)
	}
	if len(d.Topics) == 0 {
		return fmt.Errorf("topics are empty")
	}
	for _, t := range d.Topics {
		if !IsTopic(t) {
			return fmt.Errorf("unknown topic %q", t)
		}
	}
	if d.MainTopic != "" && !slices.Contains(d.Topics, d.MainTopic) {
		return fmt.Errorf("main topic %q is not one of the topics", d.MainTopic)
	}
	sd := d.SourceDistribution
	if sd.LeftLeaning < 0 || sd.Neutral < 0 || sd.RightLeaning < 0 {
		return fmt.Errorf("source distribution has negative counts")
	}
	return nil
}

func IsRating(v string) bool {
	return v == RatingLow || v == RatingModerate || v == RatingHigh
}

func IsTopic(v string) bool {
	return slices.Contains(Topics, v)
}
