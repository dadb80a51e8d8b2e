package domain

import "strings"

type Leaning string

const (
	LeaningLeft        Leaning = "left"
	LeaningCenterLeft  Leaning = "center-left"
	LeaningCenter      Leaning = "center"
	LeaningCenterRight Leaning = "center-right"
	LeaningRight       Leaning = "right"
)

func (l Leaning) Valid() bool {
	switch l {
	case LeaningLeft, LeaningCenterLeft, LeaningCenter, LeaningCenterRight, LeaningRight:
		return true
	}
	return false
}

func (l Leaning) IsRight() bool {
	return strings.Contains(string(l), "right")
}

func (l Leaning) IsLeft() bool {
	return strings.Contains(string(l), "left")
}

// Outlet is a news publisher taking part in cross-source comparison.
type Outlet struct {
	ID      string  `yaml:"id" json:"id"`
	Name    string  `yaml:"name" json:"name"`
	Domain  string  `yaml:"domain" json:"domain"`
	Leaning Leaning `yaml:"leaning" json:"leaning"`
	FeedURL string  `yaml:"feedUrl,omitempty" json:"feedUrl,omitempty"`
}

// SameName compares outlet display names case-insensitively.
func (o Outlet) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(o.Name), strings.TrimSpace(name))
}
