package scrape

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// matched as substrings of the host, in order
var sourceNames = []struct {
	key  string
	name string
}{
	{"nytimes", "New York Times"},
	{"wsj", "Wall Street Journal"},
	{"washingtonpost", "Washington Post"},
	{"foxnews", "Fox News"},
	{"cnn", "CNN"},
	{"nbcnews", "NBC News"},
	{"abcnews", "ABC News"},
	{"cbsnews", "CBS News"},
	{"reuters", "Reuters"},
	{"apnews", "Associated Press"},
	{"bbc", "BBC News"},
	{"theguardian", "The Guardian"},
	{"politico", "Politico"},
}

// SourceName derives a display name for a publisher from its host.
func SourceName(host string) string {
	host = strings.ToLower(host)
	for _, s := range sourceNames {
		if strings.Contains(host, s.key) {
			return s.name
		}
	}

	label := host
	if parts := strings.Split(host, "."); len(parts) >= 2 {
		label = parts[len(parts)-2]
	}
	return capitalize(label)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
