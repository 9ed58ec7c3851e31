package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequirements_CasualBrunch(t *testing.T) {
	req := ExtractRequirements("Create a casual outfit for a weekend brunch")

	assert.Equal(t, "casual", req.Occasion)
	assert.Equal(t, "", req.Seasonality)
	require.NotNil(t, req.FormalityTarget)
	assert.Equal(t, 2, *req.FormalityTarget)
	assert.Nil(t, req.MinWarmth)
	assert.Nil(t, req.Budget)
}

func TestExtractRequirements_WorkOccasion(t *testing.T) {
	req := ExtractRequirements("I need an outfit for an office presentation")

	assert.Equal(t, "work", req.Occasion)
	require.NotNil(t, req.FormalityTarget)
	assert.Equal(t, 4, *req.FormalityTarget)
}

func TestExtractRequirements_FirstOccasionWins(t *testing.T) {
	// "meeting" (work) and "dinner" (date) both appear; work is declared first.
	req := ExtractRequirements("dinner after the client meeting")
	assert.Equal(t, "work", req.Occasion)
}

func TestExtractRequirements_Seasonality(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"winter from cold", "something for a cold evening", "winter"},
		{"summer from heat", "it is brutal heat out there", "summer"},
		{"fall from autumn", "an autumn look", "fall"},
		{"rainy from drizzle", "drizzle all day", "rainy"},
		{"none", "an outfit", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRequirements(tt.text).Seasonality)
		})
	}
}

func TestExtractRequirements_BudgetRange(t *testing.T) {
	req := ExtractRequirements("something nice for $100-$250")

	require.NotNil(t, req.Budget)
	require.NotNil(t, req.Budget.Min)
	require.NotNil(t, req.Budget.Max)
	assert.Equal(t, 100.0, *req.Budget.Min)
	assert.Equal(t, 250.0, *req.Budget.Max)
}

func TestExtractRequirements_BudgetUnder(t *testing.T) {
	req := ExtractRequirements("a work outfit under $200")

	require.NotNil(t, req.Budget)
	assert.Nil(t, req.Budget.Min)
	require.NotNil(t, req.Budget.Max)
	assert.Equal(t, 200.0, *req.Budget.Max)
}

func TestExtractRequirements_BudgetSingleAmount(t *testing.T) {
	req := ExtractRequirements("around $150 total")

	require.NotNil(t, req.Budget)
	assert.Nil(t, req.Budget.Min)
	require.NotNil(t, req.Budget.Max)
	assert.Equal(t, 150.0, *req.Budget.Max)
}

func TestExtractRequirements_TemperatureToWarmth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"it will be 30°F tonight", 5},
		{"45°F in the morning", 4},
		{"about 60 degrees", 3},
		{"a mild 75°F day", 2},
		{"90°F and humid", 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			req := ExtractRequirements(tt.text)
			require.NotNil(t, req.MinWarmth)
			assert.Equal(t, tt.want, *req.MinWarmth)
		})
	}
}

func TestExtractRequirements_ColorsAndExclusions(t *testing.T) {
	req := ExtractRequirements("a navy and olive look, no heels please")

	assert.Equal(t, []string{"navy", "green"}, req.Colors)
	assert.Equal(t, []string{"no_heels"}, req.Exclusions)
}

func TestExtractRequirements_EmptyText(t *testing.T) {
	req := ExtractRequirements("")

	assert.Equal(t, "", req.Occasion)
	assert.Equal(t, "", req.Seasonality)
	assert.Nil(t, req.MinWarmth)
	assert.Nil(t, req.FormalityTarget)
	assert.Empty(t, req.Colors)
	assert.Empty(t, req.Exclusions)
	assert.Nil(t, req.Budget)
}

func TestExtractRequirements_Idempotent(t *testing.T) {
	text := "Create a summer casual outfit with blue colors under $200"
	first := ExtractRequirements(text)
	second := ExtractRequirements(text)
	assert.Equal(t, first, second)
}

func TestExtractRequirements_SeedIsNormalizedText(t *testing.T) {
	req := ExtractRequirements("  A   Casual\tLook ")
	assert.Equal(t, "a casual look", req.Seed)
}

func TestExtractPreferences_StyleAndPalette(t *testing.T) {
	prefs := ExtractPreferences("a minimal, tailored look with neutral tones")

	assert.Equal(t, []string{"minimal", "tailored"}, prefs.StyleCues)
	assert.Equal(t, "neutrals", prefs.Palette)
}

func TestExtractPreferences_AvoidColors(t *testing.T) {
	prefs := ExtractPreferences("a brunch look, avoid pink and yellow")

	assert.Contains(t, prefs.AvoidColors, "pink")
	assert.Contains(t, prefs.AvoidColors, "yellow")
}

func TestExtractPreferences_PreferredColors(t *testing.T) {
	prefs := ExtractPreferences("Show me a party outfit in black and white")

	assert.Equal(t, []string{"black", "white"}, prefs.PreferredColors)
}

func TestExtractPreferences_Empty(t *testing.T) {
	prefs := ExtractPreferences("nothing specific")

	assert.Empty(t, prefs.StyleCues)
	assert.Equal(t, "", prefs.Palette)
	assert.Empty(t, prefs.PreferredColors)
	assert.Empty(t, prefs.AvoidColors)
	assert.Empty(t, prefs.AvoidTags)
}
