package keyword

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minKeywordLength = 4

var stopWords = toSet(
	"a", "an", "the", "and", "or", "but", "is", "are", "in", "on", "at", "to", "for", "with", "by",
	"from", "into", "over", "after", "says", "said", "will", "than", "that", "this", "what", "when",
)

// Subjects are kept even when shorter than minKeywordLength.
var Subjects = toSet(
	"military", "economy", "politics", "climate", "environment", "election", "education", "healthcare",
	"immigration", "technology", "security", "terrorism", "finance", "energy", "war", "peace", "diplomacy",
	"trade", "tariffs", "taxes", "crime", "justice", "police", "protest", "rights", "freedom", "democracy",
	"russia", "china", "europe", "asia", "america", "africa", "ukraine", "israel", "palestine", "iran",
	"syria", "north", "south", "korea", "japan", "india", "pakistan", "covid", "virus", "pandemic",
	"biden", "trump", "putin", "congress", "senate", "house", "parliament", "court", "supreme", "federal",
	"us", "uk", "eu", "un", "gop", "fbi", "cia", "nato",
)

// Extract returns the unique lowercase keywords of title in order of appearance.
// An empty result means no correlation query can be built.
func Extract(title string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, title)

	seen := make(map[string]struct{})
	var keywords []string
	for _, w := range strings.Fields(cleaned) {
		if !keep(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}

// Top returns at most n leading keywords of title.
func Top(title string, n int) []string {
	kw := Extract(title)
	if len(kw) > n {
		kw = kw[:n]
	}
	return kw
}

func keep(w string) bool {
	if _, ok := Subjects[w]; ok {
		return true
	}
	if _, ok := stopWords[w]; ok {
		return false
	}
	return utf8.RuneCountInString(w) >= minKeywordLength
}

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
