// Package assembly builds candidate outfits from catalog items under the
// constraints extracted from user text.
package assembly

import (
	"strings"

	"github.com/jonathan/outfit-agent/internal/types"
)

// FilterItemsByRequirements applies the requirement filter policy ahead of
// partitioning: category and color allow-lists, then the conditional narrowing
// rules for hot/casual queries. Narrowing rules are monotonic restrictions;
// apart from the absolute casual accessory exclusion they never empty a
// category that had candidates.
func FilterItemsByRequirements(items []types.Item, req types.Requirements) []types.Item {
	filtered := items

	if len(req.Categories) > 0 {
		allowed := lowerSet(req.Categories)
		filtered = keep(filtered, func(item types.Item) bool {
			return allowed[strings.ToLower(item.Category)]
		})
	}

	if len(req.Colors) > 0 {
		allowed := lowerSet(req.Colors)
		filtered = keep(filtered, func(item types.Item) bool {
			return allowed[strings.ToLower(item.ColorFamily)]
		})
	}

	if isHot(req) && isCasual(req) {
		filtered = narrowBottomsForHeat(filtered)
	}

	if isCasual(req) {
		filtered = narrowShoesForCasual(filtered)
		filtered = excludeFormalAccessories(filtered)
	}

	return filtered
}

// narrowBottomsForHeat keeps only light bottoms (warmth <= 2, seasonality
// summer or all) when at least one exists; otherwise bottoms pass unchanged.
func narrowBottomsForHeat(items []types.Item) []types.Item {
	hasLight := false
	for _, item := range items {
		if isBottom(item) && isLightBottom(item) {
			hasLight = true
			break
		}
	}
	if !hasLight {
		return items
	}
	return keep(items, func(item types.Item) bool {
		return !isBottom(item) || isLightBottom(item)
	})
}

// narrowShoesForCasual keeps only low-formality shoes (formality <= 2) when at
// least one exists; otherwise shoes pass unchanged.
func narrowShoesForCasual(items []types.Item) []types.Item {
	hasCasualShoe := false
	for _, item := range items {
		if isShoe(item) && item.Formality <= 2 {
			hasCasualShoe = true
			break
		}
	}
	if !hasCasualShoe {
		return items
	}
	return keep(items, func(item types.Item) bool {
		return !isShoe(item) || item.Formality <= 2
	})
}

// excludeFormalAccessories drops ties and formality-5 accessories outright,
// even when that empties the accessory pool.
func excludeFormalAccessories(items []types.Item) []types.Item {
	return keep(items, func(item types.Item) bool {
		if !isAccessory(item) {
			return true
		}
		if strings.Contains(strings.ToLower(item.Name), "tie") {
			return false
		}
		return item.Formality < 5
	})
}

func isCasual(req types.Requirements) bool {
	return strings.EqualFold(req.Occasion, "casual")
}

func isHot(req types.Requirements) bool {
	if strings.EqualFold(req.Seasonality, "summer") {
		return true
	}
	return req.MinWarmth != nil && *req.MinWarmth <= 2
}

func needsOuterwear(req types.Requirements) bool {
	if strings.EqualFold(req.Seasonality, "winter") {
		return true
	}
	return req.MinWarmth != nil && *req.MinWarmth >= 4
}

func isBottom(item types.Item) bool {
	return strings.EqualFold(item.Category, "bottom")
}

func isShoe(item types.Item) bool {
	c := strings.ToLower(item.Category)
	return c == "shoe" || c == "shoes"
}

func isAccessory(item types.Item) bool {
	return strings.EqualFold(item.Category, "accessory")
}

// isLightBottom reports whether a bottom is suited to hot weather.
func isLightBottom(item types.Item) bool {
	season := strings.ToLower(item.Seasonality)
	return item.Warmth <= 2 && (season == "summer" || season == "all")
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

func keep(items []types.Item, pred func(types.Item) bool) []types.Item {
	kept := make([]types.Item, 0, len(items))
	for _, item := range items {
		if pred(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
