// Package rendering formats ranked outfits into human-readable descriptions
// and summaries for presentation.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/outfit-agent/internal/types"
	"github.com/jonathan/outfit-agent/internal/voice"
)

// RenderOutfitDescription formats a full description of an outfit: a brand
// voice opener, the generated description, an itemized list, a rationale
// block built from the requirement fields that are present, and the score
// when the outfit has been ranked.
func RenderOutfitDescription(outfit types.Outfit, req types.Requirements) string {
	if len(outfit.Items) == 0 {
		return "Empty outfit"
	}

	occasion := req.Occasion
	if occasion == "" {
		occasion = "the moment"
	}
	season := req.Seasonality
	if season == "" {
		season = "all-seasons"
	}

	opener := voice.Format(voice.MustGet("opener"), map[string]string{
		"Lead":     titleCase(voice.MustGet("phrase_clean_lines")),
		"Close":    voice.MustGet("phrase_effortless_style"),
		"Occasion": occasion,
		"Season":   season,
	})

	var sb strings.Builder
	sb.WriteString(opener)
	sb.WriteString("\n\n")
	sb.WriteString(outfit.Description)
	sb.WriteString("\n\nItems:\n")

	itemLines := make([]string, len(outfit.Items))
	for i, item := range outfit.Items {
		itemLines[i] = fmt.Sprintf("- %s (%s, %s, $%.2f)", item.Name, item.Brand, item.ColorFamily, item.Price)
	}
	sb.WriteString(strings.Join(itemLines, "\n"))

	if reasons := rationale(req); len(reasons) > 0 {
		sb.WriteString("\n\nWhy this works:\n")
		for i, reason := range reasons {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("- " + reason)
		}
	}

	if outfit.Score != nil {
		sb.WriteString(fmt.Sprintf("\n\nScore: %.2f", *outfit.Score))
	}

	return sb.String()
}

// RenderOutfitSummary formats a short one-line summary: item count, the
// distinct categories in first-appearance order, and the total price.
func RenderOutfitSummary(outfit types.Outfit) string {
	if len(outfit.Items) == 0 {
		return "No items"
	}

	var categories []string
	seen := map[string]bool{}
	for _, c := range outfit.Categories() {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}

	summary := fmt.Sprintf("%d items", len(outfit.Items))
	if len(categories) > 0 {
		summary += fmt.Sprintf(" (%s)", strings.Join(categories, ", "))
	}
	summary += fmt.Sprintf(" - $%.2f", outfit.TotalPrice())
	return summary
}

// rationale builds the "why this works" lines from the requirement fields
// that are present.
func rationale(req types.Requirements) []string {
	var reasons []string
	if req.Occasion != "" {
		reasons = append(reasons, fmt.Sprintf("Aligned to occasion: %s", req.Occasion))
	}
	if req.Seasonality != "" {
		reasons = append(reasons, fmt.Sprintf("Season-ready for %s.", req.Seasonality))
	}
	if req.FormalityTarget != nil {
		reasons = append(reasons, fmt.Sprintf("Formality targeted around %d/5.", *req.FormalityTarget))
	}
	if len(req.Colors) > 0 {
		reasons = append(reasons, fmt.Sprintf("Color direction: %s.", strings.Join(req.Colors, ", ")))
	}
	return reasons
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
