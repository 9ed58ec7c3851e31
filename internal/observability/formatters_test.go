package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/outfit-agent/internal/catalog"
	"github.com/jonathan/outfit-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	maxBudget := 200.0
	p.PrintRequirements(&types.Requirements{
		Occasion:        "casual",
		FormalityTarget: intPtr(2),
		Colors:          []string{"blue"},
		Budget:          &types.Budget{Max: &maxBudget},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED REQUIREMENTS")
	assert.Contains(t, out, "casual")
	assert.Contains(t, out, "2/5")
	assert.Contains(t, out, "blue")
	assert.Contains(t, out, "under $200")
}

func TestPrintRequirements_NilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRequirements(nil)
	assert.Empty(t, buf.String())
}

func TestPrintPreferences_EmptyShowsPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPreferences(&types.Preferences{})
	assert.Contains(t, buf.String(), "(no preferences extracted)")
}

func TestPrintCatalogSummary(t *testing.T) {
	var buf bytes.Buffer
	cat := catalog.New([]types.Item{
		{ID: "t1", Category: "top", Warmth: 2, Formality: 2},
		{ID: "t2", Category: "top", Warmth: 2, Formality: 2},
		{ID: "s1", Category: "shoe", Warmth: 1, Formality: 1},
	})

	NewPrinter(&buf).PrintCatalogSummary(cat)

	out := buf.String()
	assert.Contains(t, out, "CATALOG")
	assert.Contains(t, out, "Total items: 3")
	assert.Contains(t, out, "top")
	assert.Contains(t, out, "shoe")
}

func TestPrintRankedOutfits(t *testing.T) {
	var buf bytes.Buffer
	outfits := []types.Outfit{
		{
			ID:    "outfit_1",
			Score: floatPtr(0.42),
			Items: []types.Item{{ID: "t1", Category: "top", Price: 10}},
		},
	}

	NewPrinter(&buf).PrintRankedOutfits(outfits)

	out := buf.String()
	assert.Contains(t, out, "RANKED OUTFITS")
	assert.Contains(t, out, "outfit_1")
	assert.Contains(t, out, "Score: 0.42")
}
