// Package extraction provides deterministic keyword-table extraction of outfit
// requirements and preferences from free user text.
package extraction

// lexiconEntry maps a semantic label to the trigger substrings that select it.
// Entries are matched in declaration order; for single-valued fields the first
// label whose trigger appears in the text wins.
type lexiconEntry struct {
	Label    string
	Triggers []string
}

// occasionLexicon maps occasion labels to trigger phrases.
var occasionLexicon = []lexiconEntry{
	{"work", []string{"work", "office", "meeting", "presentation", "interview", "client", "conference"}},
	{"date", []string{"date", "dinner", "night out", "restaurant"}},
	{"casual", []string{"casual", "weekend", "brunch", "coffee", "errands", "hangout"}},
	{"formal", []string{"formal", "black tie", "gala", "wedding", "cocktail", "event"}},
	{"travel", []string{"travel", "airport", "flight", "plane", "hotel", "vacation"}},
	{"outdoors", []string{"outdoor", "hike", "trail", "camp", "festival"}},
}

// styleLexicon maps style-cue labels to trigger phrases.
var styleLexicon = []lexiconEntry{
	{"minimal", []string{"minimal", "clean", "simple", "sleek", "pared-back"}},
	{"tailored", []string{"tailored", "structured", "sharp", "polished", "blazer"}},
	{"classic", []string{"classic", "timeless", "preppy", "heritage"}},
	{"streetwear", []string{"streetwear", "oversized", "graphic", "sneaker", "hoodie"}},
	{"boho", []string{"boho", "bohemian", "flowy", "floral"}},
	{"edgy", []string{"edgy", "leather", "black", "punk"}},
	{"sporty", []string{"sporty", "athleisure", "active", "gym", "running"}},
}

// colorLexicon maps color-family labels to the raw color words that bucket into them.
var colorLexicon = []lexiconEntry{
	{"black", []string{"black"}},
	{"white", []string{"white", "ivory"}},
	{"navy", []string{"navy"}},
	{"gray", []string{"gray", "grey", "charcoal"}},
	{"beige", []string{"beige", "tan", "camel", "khaki"}},
	{"brown", []string{"brown", "chocolate"}},
	{"red", []string{"red", "burgundy", "maroon"}},
	{"green", []string{"green", "olive", "sage"}},
	{"blue", []string{"blue", "cobalt"}},
	{"pink", []string{"pink", "fuchsia"}},
	{"purple", []string{"purple", "lavender"}},
	{"yellow", []string{"yellow", "mustard"}},
	{"orange", []string{"orange", "rust"}},
}

// paletteLexicon maps palette labels to trigger phrases.
var paletteLexicon = []lexiconEntry{
	{"monochrome", []string{"monochrome", "all black", "all-white", "one color"}},
	{"neutrals", []string{"neutral", "neutrals", "tonal", "earth tones"}},
	{"colorful", []string{"colorful", "bright", "bold color", "vibrant"}},
}

// seasonLexicon maps seasonality labels to weather and season trigger phrases.
var seasonLexicon = []lexiconEntry{
	{"winter", []string{"winter", "cold", "snow", "freezing", "chilly"}},
	{"summer", []string{"summer", "hot", "heat", "humid"}},
	{"spring", []string{"spring"}},
	{"fall", []string{"fall", "autumn", "crisp"}},
	{"rainy", []string{"rain", "rainy", "drizzle", "wet"}},
}

// exclusionLexicon maps exclusion tags to their trigger phrases.
var exclusionLexicon = []lexiconEntry{
	{"no_heels", []string{"no heels", "without heels", "no high heels"}},
	{"no_denim", []string{"no denim", "without denim"}},
	{"no_leather", []string{"no leather", "vegan"}},
}

// formalityByOccasion maps an extracted occasion to a target formality rating.
// Occasions absent from the table leave the target unset.
var formalityByOccasion = map[string]int{
	"formal":   5,
	"work":     4,
	"date":     4,
	"travel":   2,
	"casual":   2,
	"outdoors": 2,
}
