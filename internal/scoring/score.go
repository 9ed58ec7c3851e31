// Package scoring evaluates assembled outfits against extracted requirements
// and preferences, producing normalized scores and a ranked ordering.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/outfit-agent/internal/types"
)

// Weights for scoring components. Only the completeness weight participates in
// the blend; item-level scoring averages its six axes unweighted. The per-axis
// entries are kept as the documented intent of the model.
const (
	completenessWeight = 0.05
	occasionWeight     = 0.15
	styleWeight        = 0.25
	colorWeight        = 0.15
	seasonalityWeight  = 0.15
	warmthWeight       = 0.10
	formalityWeight    = 0.15
)

// itemAxisCount is the number of item-level scoring axes. Every axis counts
// toward the denominator whether or not it was requested.
const itemAxisCount = 6.0

// neutralColors is the set of color families treated as neutral for
// monochrome/neutrals palette credit.
var neutralColors = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
	"navy":  true,
	"beige": true,
	"brown": true,
}

// neutralPaletteCredit is the color-axis credit for a neutral item under a
// monochrome or neutrals palette.
const neutralPaletteCredit = 0.7

// ScoreItem scores a single item against the requirements and preferences,
// returning a normalized score in [0,1] and human-readable match reasons.
// Each of the six axes contributes to the denominator even when the
// corresponding requirement is absent.
func ScoreItem(item types.Item, req types.Requirements, prefs types.Preferences) (float64, []string) {
	var reasons []string
	score := 0.0

	occasionReq := strings.ToLower(strings.TrimSpace(req.Occasion))
	seasonalityReq := strings.ToLower(strings.TrimSpace(req.Seasonality))
	palette := strings.ToLower(strings.TrimSpace(prefs.Palette))

	itemColor := strings.ToLower(strings.TrimSpace(item.ColorFamily))
	itemSeasonality := strings.ToLower(strings.TrimSpace(item.Seasonality))
	if itemSeasonality == "" {
		itemSeasonality = "all"
	}

	// Occasion match.
	if occasionReq != "" && item.HasOccasionTag(occasionReq) {
		score += 1.0
		reasons = append(reasons, fmt.Sprintf("Occasion tag match: %s", occasionReq))
	}

	// Style overlap: fraction of requested cues present on the item.
	if len(prefs.StyleCues) > 0 {
		overlap, matched := styleOverlap(item.StyleTags, prefs.StyleCues)
		score += overlap
		if overlap > 0 {
			reasons = append(reasons, fmt.Sprintf("Style overlap: %s", strings.Join(matched, ", ")))
		}
	}

	// Color / palette fit.
	if itemColor != "" {
		switch {
		case containsLower(prefs.AvoidColors, itemColor):
			reasons = append(reasons, fmt.Sprintf("Avoid color: %s", itemColor))
		case containsLower(prefs.PreferredColors, itemColor):
			score += 1.0
			reasons = append(reasons, fmt.Sprintf("Preferred color: %s", itemColor))
		case (palette == "monochrome" || palette == "neutrals") && neutralColors[itemColor]:
			score += neutralPaletteCredit
			reasons = append(reasons, "Palette fit (neutral/tonal)")
		}
	}

	// Seasonality fit.
	if seasonalityReq != "" && (itemSeasonality == seasonalityReq || itemSeasonality == "all") {
		score += 1.0
		reasons = append(reasons, fmt.Sprintf("Seasonality fit: %s", itemSeasonality))
	}

	// Warmth against the requested minimum, with partial credit below it.
	if req.MinWarmth != nil {
		minWarmth := *req.MinWarmth
		if item.Warmth >= minWarmth {
			score += 1.0
			reasons = append(reasons, fmt.Sprintf("Warmth meets min: %d >= %d", item.Warmth, minWarmth))
		} else if minWarmth > 0 && item.Warmth > 0 {
			score += float64(item.Warmth) / float64(minWarmth)
		}
	}

	// Formality closeness; the 1-5 range bounds the difference at 4.
	if req.FormalityTarget != nil {
		diff := item.Formality - *req.FormalityTarget
		if diff < 0 {
			diff = -diff
		}
		axis := 1.0 - float64(diff)/4.0
		if axis < 0 {
			axis = 0
		}
		score += axis
		reasons = append(reasons, fmt.Sprintf("Formality: %d vs %d", item.Formality, *req.FormalityTarget))
	}

	return score / itemAxisCount, reasons
}

// ScoreOutfit scores a whole outfit: a completeness heuristic (shoes present,
// and a dress or top+bottom base) blended with the mean item score. An outfit
// with no items scores exactly 0.
func ScoreOutfit(outfit types.Outfit, req types.Requirements, prefs types.Preferences) float64 {
	if len(outfit.Items) == 0 {
		return 0.0
	}

	categories := map[string]bool{}
	for _, c := range outfit.Categories() {
		categories[c] = true
	}

	completeness := 0.0
	if categories["shoe"] || categories["shoes"] {
		completeness += 0.5
	}
	if categories["dress"] || (categories["top"] && categories["bottom"]) {
		completeness += 0.5
	}

	itemTotal := 0.0
	for _, item := range outfit.Items {
		s, _ := ScoreItem(item, req, prefs)
		itemTotal += s
	}
	meanItemScore := itemTotal / float64(len(outfit.Items))

	final := completenessWeight*completeness + (1.0-completenessWeight)*meanItemScore
	return clamp01(final)
}

// styleOverlap returns |item tags ∩ cues| / |cues| and the matched cue names.
func styleOverlap(itemTags, cues []string) (float64, []string) {
	tagSet := make(map[string]bool, len(itemTags))
	for _, tag := range itemTags {
		tagSet[strings.ToLower(strings.TrimSpace(tag))] = true
	}

	var matched []string
	for _, cue := range cues {
		if tagSet[strings.ToLower(strings.TrimSpace(cue))] {
			matched = append(matched, strings.ToLower(strings.TrimSpace(cue)))
		}
	}
	return float64(len(matched)) / float64(len(cues)), matched
}

func containsLower(values []string, target string) bool {
	for _, v := range values {
		if strings.ToLower(strings.TrimSpace(v)) == target {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
