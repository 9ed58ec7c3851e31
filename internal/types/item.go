// Package types provides type definitions for structured data used throughout the outfit-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Item represents a single clothing item from the catalog.
// Items are loaded once at startup and treated as read-only afterwards.
type Item struct {
	ID           string   `json:"item_id" validate:"required"`
	Name         string   `json:"name"`
	Category     string   `json:"category" validate:"required"`
	Brand        string   `json:"brand"`
	ColorFamily  string   `json:"color_family"`
	Price        float64  `json:"price" validate:"gte=0"`
	StyleTags    []string `json:"style_tags"`
	OccasionTags []string `json:"occasion_tags"`
	Seasonality  string   `json:"seasonality"`
	Warmth       int      `json:"warmth" validate:"gte=1,lte=5"`
	Formality    int      `json:"formality" validate:"gte=1,lte=5"`
	ImagePath    string   `json:"image_path,omitempty"`
}

// HasStyleTag reports whether the item carries the given style tag (case-insensitive).
func (i *Item) HasStyleTag(tag string) bool {
	return containsFold(i.StyleTags, tag)
}

// HasOccasionTag reports whether the item carries the given occasion tag (case-insensitive).
func (i *Item) HasOccasionTag(tag string) bool {
	return containsFold(i.OccasionTags, tag)
}
