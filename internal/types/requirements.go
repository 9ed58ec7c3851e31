// Package types provides type definitions for structured data used throughout the outfit-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Budget represents an extracted price range. Either bound may be absent.
type Budget struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Requirements represents the hard-ish constraints extracted from user text.
// Produced once per query and treated as read-only by the assembler and scorer.
type Requirements struct {
	Occasion        string   `json:"occasion"`
	Seasonality     string   `json:"seasonality"`
	MinWarmth       *int     `json:"min_warmth,omitempty"`
	FormalityTarget *int     `json:"formality_target,omitempty"`
	// Categories restricts assembly to the named item categories. Extraction
	// never populates it; callers may.
	Categories []string `json:"required_categories"`
	Colors     []string `json:"colors"`
	Exclusions []string `json:"exclusions"`
	Budget     *Budget  `json:"budget,omitempty"`
	// Seed is the normalized source text, used only to key the deterministic
	// shuffle during assembly.
	Seed string `json:"seed,omitempty"`
}

// Preferences represents the softer style and color leanings extracted from
// user text. Used only for scoring, never for filtering.
type Preferences struct {
	StyleCues       []string `json:"style_cues"`
	Palette         string   `json:"palette"`
	PreferredColors []string `json:"preferred_colors"`
	AvoidColors     []string `json:"avoid_colors"`
	AvoidTags       []string `json:"avoid_tags"`
}
