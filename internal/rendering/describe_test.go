package rendering

import (
	"testing"

	"github.com/jonathan/outfit-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int         { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleOutfit() types.Outfit {
	return types.Outfit{
		ID:          "outfit_1",
		Description: "Outfit 1 with 3 items",
		Items: []types.Item{
			{ID: "top_1", Name: "White Tee", Category: "top", Brand: "BrandA", ColorFamily: "white", Price: 29.99},
			{ID: "bottom_1", Name: "Chinos", Category: "bottom", Brand: "BrandB", ColorFamily: "beige", Price: 49.99},
			{ID: "shoe_1", Name: "Sneakers", Category: "shoe", Brand: "BrandC", ColorFamily: "white", Price: 59.99},
		},
	}
}

func TestRenderOutfitDescription_EmptyOutfit(t *testing.T) {
	out := RenderOutfitDescription(types.Outfit{ID: "outfit_1"}, types.Requirements{})
	assert.Equal(t, "Empty outfit", out)
}

func TestRenderOutfitDescription_Opener(t *testing.T) {
	out := RenderOutfitDescription(sampleOutfit(), types.Requirements{Occasion: "casual", Seasonality: "summer"})
	assert.Contains(t, out, "Clean Lines meet effortless style—built for casual in summer.")
}

func TestRenderOutfitDescription_OpenerDefaults(t *testing.T) {
	out := RenderOutfitDescription(sampleOutfit(), types.Requirements{})
	assert.Contains(t, out, "built for the moment in all-seasons.")
}

func TestRenderOutfitDescription_ItemLines(t *testing.T) {
	out := RenderOutfitDescription(sampleOutfit(), types.Requirements{})
	assert.Contains(t, out, "- White Tee (BrandA, white, $29.99)")
	assert.Contains(t, out, "- Chinos (BrandB, beige, $49.99)")
	assert.Contains(t, out, "Items:")
}

func TestRenderOutfitDescription_RationaleBlock(t *testing.T) {
	req := types.Requirements{
		Occasion:        "work",
		Seasonality:     "winter",
		FormalityTarget: intPtr(4),
		Colors:          []string{"navy", "gray"},
	}
	out := RenderOutfitDescription(sampleOutfit(), req)

	assert.Contains(t, out, "Why this works:")
	assert.Contains(t, out, "- Aligned to occasion: work")
	assert.Contains(t, out, "- Season-ready for winter.")
	assert.Contains(t, out, "- Formality targeted around 4/5.")
	assert.Contains(t, out, "- Color direction: navy, gray.")
}

func TestRenderOutfitDescription_NoRationaleWhenNothingRequested(t *testing.T) {
	out := RenderOutfitDescription(sampleOutfit(), types.Requirements{})
	assert.NotContains(t, out, "Why this works:")
}

func TestRenderOutfitDescription_ScoreLine(t *testing.T) {
	outfit := sampleOutfit()
	out := RenderOutfitDescription(outfit, types.Requirements{})
	assert.NotContains(t, out, "Score:")

	outfit.Score = floatPtr(0.873)
	out = RenderOutfitDescription(outfit, types.Requirements{})
	assert.Contains(t, out, "Score: 0.87")
}

func TestRenderOutfitSummary(t *testing.T) {
	out := RenderOutfitSummary(sampleOutfit())
	assert.Equal(t, "3 items (top, bottom, shoe) - $139.97", out)
}

func TestRenderOutfitSummary_NoItems(t *testing.T) {
	assert.Equal(t, "No items", RenderOutfitSummary(types.Outfit{}))
}
