// Package scoring evaluates assembled outfits against extracted requirements
// and preferences, producing normalized scores and a ranked ordering.
package scoring

import (
	"sort"

	"github.com/jonathan/outfit-agent/internal/types"
)

// RankOutfits runs two explicit phases: a scoring pass that assigns every
// outfit's Score in place (and collects per-item reasons), then a stable sort
// by score descending into a new slice. Ties keep their relative input order.
func RankOutfits(outfits []types.Outfit, req types.Requirements, prefs types.Preferences) []types.Outfit {
	for i := range outfits {
		score := ScoreOutfit(outfits[i], req, prefs)
		outfits[i].Score = &score
		outfits[i].Reasons = collectReasons(outfits[i], req, prefs)
	}

	ranked := make([]types.Outfit, len(outfits))
	copy(ranked, outfits)

	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreOf(ranked[i]) > scoreOf(ranked[j])
	})

	return ranked
}

// maxReasons caps the per-outfit reason list kept for display.
const maxReasons = 12

func collectReasons(outfit types.Outfit, req types.Requirements, prefs types.Preferences) []string {
	var reasons []string
	for _, item := range outfit.Items {
		_, r := ScoreItem(item, req, prefs)
		reasons = append(reasons, r...)
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// scoreOf treats an absent score as 0 for ordering purposes.
func scoreOf(outfit types.Outfit) float64 {
	if outfit.Score == nil {
		return 0.0
	}
	return *outfit.Score
}
