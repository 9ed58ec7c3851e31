// Package extraction provides deterministic keyword-table extraction of outfit
// requirements and preferences from free user text.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/outfit-agent/internal/types"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Budget patterns, tried in priority order: explicit range, capped
	// amount, bare dollar amount.
	budgetRangeRe  = regexp.MustCompile(`\$?\s*(\d{2,5})\s*(?:-|to)\s*\$?\s*(\d{2,5})`)
	budgetUnderRe  = regexp.MustCompile(`(?:under|below|less than)\s*\$?\s*(\d{2,5})`)
	budgetSingleRe = regexp.MustCompile(`\$\s*(\d{2,5})`)

	// Fahrenheit temperature, "45°F" / "45F" / "45 degrees".
	tempUnitRe    = regexp.MustCompile(`(\d{2,3})\s*°?\s*f\b`)
	tempDegreesRe = regexp.MustCompile(`(\d{2,3})\s*degrees`)

	avoidPhraseRe = regexp.MustCompile(`(?:avoid|no)\s+([a-z\s]+)`)
)

// ExtractRequirements extracts structured outfit requirements from user text.
// It is a pure function: ambiguous or empty input yields empty/absent fields,
// never an error.
func ExtractRequirements(text string) types.Requirements {
	t := normalize(text)

	occasion := firstMatch(t, occasionLexicon)
	seasonality := firstMatch(t, seasonLexicon)

	var minWarmth *int
	if tempF, ok := extractTemperatureF(t); ok {
		w := temperatureToWarmth(tempF)
		minWarmth = &w
	}

	var formalityTarget *int
	if target, ok := formalityByOccasion[occasion]; ok {
		formalityTarget = &target
	}

	return types.Requirements{
		Occasion:        occasion,
		Seasonality:     seasonality,
		MinWarmth:       minWarmth,
		FormalityTarget: formalityTarget,
		Categories:      []string{},
		Colors:          allMatches(t, colorLexicon),
		Exclusions:      allMatches(t, exclusionLexicon),
		Budget:          extractBudget(t),
		Seed:            t,
	}
}

// ExtractPreferences extracts softer style and color leanings from user text.
// Like ExtractRequirements it never fails; missing cues yield empty fields.
func ExtractPreferences(text string) types.Preferences {
	t := normalize(text)

	var avoidColors []string
	if m := avoidPhraseRe.FindStringSubmatch(t); m != nil {
		avoidColors = allMatches(m[1], colorLexicon)
	}
	if avoidColors == nil {
		avoidColors = []string{}
	}

	return types.Preferences{
		StyleCues:       allMatches(t, styleLexicon),
		Palette:         firstMatch(t, paletteLexicon),
		PreferredColors: allMatches(t, colorLexicon),
		AvoidColors:     avoidColors,
		AvoidTags:       []string{},
	}
}

// normalize lower-cases the text and collapses runs of whitespace.
func normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// firstMatch returns the first label in declaration order whose trigger appears
// in the text, or "" when nothing matches.
func firstMatch(text string, lexicon []lexiconEntry) string {
	for _, entry := range lexicon {
		if matchAny(text, entry.Triggers) {
			return entry.Label
		}
	}
	return ""
}

// allMatches collects every label whose trigger appears in the text, in
// declaration order.
func allMatches(text string, lexicon []lexiconEntry) []string {
	matches := []string{}
	for _, entry := range lexicon {
		if matchAny(text, entry.Triggers) {
			matches = append(matches, entry.Label)
		}
	}
	return matches
}

func matchAny(text string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}

// extractBudget parses a budget or price range. The range pattern takes
// priority over capped and bare amounts.
func extractBudget(text string) *types.Budget {
	if m := budgetRangeRe.FindStringSubmatch(text); m != nil {
		minVal := mustFloat(m[1])
		maxVal := mustFloat(m[2])
		return &types.Budget{Min: &minVal, Max: &maxVal}
	}
	if m := budgetUnderRe.FindStringSubmatch(text); m != nil {
		maxVal := mustFloat(m[1])
		return &types.Budget{Max: &maxVal}
	}
	if m := budgetSingleRe.FindStringSubmatch(text); m != nil {
		maxVal := mustFloat(m[1])
		return &types.Budget{Max: &maxVal}
	}
	return nil
}

// extractTemperatureF parses a Fahrenheit temperature like "45°F" or "45 degrees".
func extractTemperatureF(text string) (int, bool) {
	if m := tempUnitRe.FindStringSubmatch(text); m != nil {
		return mustInt(m[1]), true
	}
	if m := tempDegreesRe.FindStringSubmatch(text); m != nil {
		return mustInt(m[1]), true
	}
	return 0, false
}

// temperatureToWarmth converts a Fahrenheit temperature to a 1-5 warmth rating.
func temperatureToWarmth(tempF int) int {
	switch {
	case tempF <= 35:
		return 5
	case tempF <= 50:
		return 4
	case tempF <= 65:
		return 3
	case tempF <= 80:
		return 2
	default:
		return 1
	}
}

// mustFloat converts digits already matched by a \d pattern; it cannot fail.
func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func mustInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
