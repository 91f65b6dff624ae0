package namegen

import (
	"context"
	"strings"
)

// staticThemes maps a lowercased theme to its curated name ideas. These are
// served when no AI backend is configured.
var staticThemes = map[string][]NameIdea{
	"modern": {
		{Name: "Vihaan", Meaning: "Dawn, Morning"},
		{Name: "Advik", Meaning: "Unique"},
	},
	"sanskrit": {
		{Name: "Bodhi", Meaning: "Enlightenment"},
		{Name: "Aryan", Meaning: "Noble"},
	},
	"nature": {
		{Name: "Rishi", Meaning: "Ray of Light"},
		{Name: "Sagar", Meaning: "Ocean"},
	},
	"virtue": {
		{Name: "Dharma", Meaning: "Righteous Path"},
		{Name: "Vinay", Meaning: "Humble"},
	},
	"traditional": {
		{Name: "Gautam", Meaning: "Descendant of the Sage"},
		{Name: "Siddharth", Meaning: "One Who Has Attained His Goals"},
	},
}

// Static serves curated name ideas without calling out to any AI backend.
// Unknown themes fall back to the modern list.
type Static struct{}

// NewStatic constructs a Static generator.
func NewStatic() *Static {
	return &Static{}
}

// GenerateNames returns the curated ideas for the theme. Theme matching is
// case-insensitive; unrecognized themes get the modern list.
func (s *Static) GenerateNames(_ context.Context, theme string) ([]NameIdea, error) {
	ideas, ok := staticThemes[strings.ToLower(strings.TrimSpace(theme))]
	if !ok {
		ideas = staticThemes["modern"]
	}

	out := make([]NameIdea, len(ideas))
	copy(out, ideas)

	return out, nil
}

// Ensure Static conforms to the Generator interface at compile time.
var _ Generator = (*Static)(nil)
