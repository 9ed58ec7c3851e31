// Package types provides type definitions for structured data used throughout the outfit-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RecommendationRun represents the full artifact of a single recommend invocation:
// the prompt, what was extracted from it, and the ranked outfits.
type RecommendationRun struct {
	RunID        string       `json:"run_id"`
	Prompt       string       `json:"prompt"`
	Requirements Requirements `json:"requirements"`
	Preferences  Preferences  `json:"preferences"`
	Outfits      []Outfit     `json:"outfits"`
}
