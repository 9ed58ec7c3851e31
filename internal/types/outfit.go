// Package types provides type definitions for structured data used throughout the outfit-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Outfit represents an assembled combination of catalog items.
// Score is nil until the outfit has been through a ranking pass.
type Outfit struct {
	ID          string   `json:"id"`
	Items       []Item   `json:"items"`
	Description string   `json:"description"`
	Score       *float64 `json:"score,omitempty"`
	// Reasons holds per-item scoring explanations collected during ranking.
	Reasons []string `json:"reasons,omitempty"`
}

// Categories returns the lower-cased category of every item in the outfit,
// in item order.
func (o *Outfit) Categories() []string {
	categories := make([]string, len(o.Items))
	for i, item := range o.Items {
		categories[i] = strings.ToLower(item.Category)
	}
	return categories
}

// TotalPrice returns the summed price of all items in the outfit.
func (o *Outfit) TotalPrice() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

// containsFold reports whether values contains target, comparing case-insensitively.
func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
