// Package catalog provides loading and read-only queries over the clothing item catalog.
package catalog

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/outfit-agent/internal/types"
)

// Field defaults for blank or malformed catalog columns.
const (
	defaultWarmth      = 3
	defaultFormality   = 3
	defaultPrice       = 0.0
	defaultSeasonality = "all"
)

// Catalog holds the loaded clothing items. Items are read-only after Load;
// the catalog is safe to share across requests without locking.
type Catalog struct {
	items []types.Item
	// SkippedRows counts catalog rows dropped by structural validation.
	SkippedRows int
}

var validate = validator.New()

// Load reads a catalog CSV into memory. A missing file yields an empty
// catalog rather than an error; rows that fail structural validation (missing
// id or category, warmth/formality outside 1-5, negative price) are skipped
// and counted, never fatal.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{items: []types.Item{}}, nil
		}
		return nil, &LoadError{Message: "failed to open catalog file " + path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Message: "failed to parse catalog CSV", Cause: err}
	}

	if len(records) == 0 {
		return &Catalog{items: []types.Item{}}, nil
	}

	columns := indexColumns(records[0])
	cat := &Catalog{items: make([]types.Item, 0, len(records)-1)}

	for _, record := range records[1:] {
		item := parseRow(record, columns)
		if err := validate.Struct(&item); err != nil {
			cat.SkippedRows++
			continue
		}
		cat.items = append(cat.items, item)
	}

	return cat, nil
}

// New builds a catalog directly from items, bypassing file loading. Intended
// for tests and embedded fixtures.
func New(items []types.Item) *Catalog {
	return &Catalog{items: items}
}

// GetAllItems returns every item in the catalog.
func (c *Catalog) GetAllItems() []types.Item {
	return c.items
}

// GetItemByID returns the item with the given ID, or false when absent.
func (c *Catalog) GetItemByID(id string) (types.Item, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return types.Item{}, false
}

// GetItemsByCategory returns all items in the given category.
func (c *Catalog) GetItemsByCategory(category string) []types.Item {
	var matched []types.Item
	for _, item := range c.items {
		if strings.EqualFold(item.Category, category) {
			matched = append(matched, item)
		}
	}
	return matched
}

// indexColumns maps header names to column positions.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

// parseRow converts one CSV record into an Item, applying the documented
// defaults for blank or non-numeric fields.
func parseRow(record []string, columns map[string]int) types.Item {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	seasonality := field("seasonality")
	if seasonality == "" {
		seasonality = defaultSeasonality
	}

	return types.Item{
		ID:           field("item_id"),
		Name:         field("name"),
		Category:     field("category"),
		Brand:        field("brand"),
		ColorFamily:  field("color_family"),
		Price:        parsePrice(field("price")),
		StyleTags:    splitTags(field("style_tags")),
		OccasionTags: splitTags(field("occasion_tags")),
		Seasonality:  seasonality,
		Warmth:       parseRating(field("warmth"), defaultWarmth),
		Formality:    parseRating(field("formality"), defaultFormality),
		ImagePath:    field("image_path"),
	}
}

// splitTags splits a pipe-delimited tag list, collapsing blanks to an empty list.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, "|")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func parseRating(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func parsePrice(raw string) float64 {
	if raw == "" {
		return defaultPrice
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultPrice
	}
	return v
}
