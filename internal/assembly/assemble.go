// Package assembly builds candidate outfits from catalog items under the
// constraints extracted from user text.
package assembly

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/jonathan/outfit-agent/internal/types"
)

// AssembleOutfits builds up to maxOutfits candidate outfits from the given
// catalog items under the extracted requirements. Every returned outfit has a
// non-empty item list; when the filtered catalog has no usable base category
// the result is empty. It never fails: absent requirement fields simply
// disable the corresponding preference.
func AssembleOutfits(items []types.Item, req types.Requirements, maxOutfits int) []types.Outfit {
	outfits := []types.Outfit{}
	if maxOutfits <= 0 || len(items) == 0 {
		return outfits
	}

	filtered := FilterItemsByRequirements(items, req)

	pools := partition(filtered)
	if req.Seed != "" {
		shufflePools(pools, req.Seed)
	}

	tops := pools.tops
	bottoms := pools.bottoms

	// Category preference narrowing, applied once before the loop. Narrowed
	// pools are only adopted when non-empty.
	if isCasual(req) {
		if narrowed := withOccasionTag(tops, "casual"); len(narrowed) > 0 {
			tops = narrowed
		}
		if narrowed := withOccasionTag(bottoms, "casual"); len(narrowed) > 0 {
			bottoms = narrowed
		}
	}
	if isHot(req) {
		if preferred := hotWeatherPool(tops); len(preferred) > 0 {
			tops = preferred
		}
		if preferred := hotWeatherPool(bottoms); len(preferred) > 0 {
			bottoms = preferred
		}
	}

	wantOuterwear := needsOuterwear(req)
	usedTopIDs := map[string]bool{}
	usedAccessoryIDs := map[string]bool{}

	for i := 0; i < maxOutfits; i++ {
		var outfitItems []types.Item

		// Base layer: top + bottom when both exist, top alone otherwise.
		switch {
		case len(tops) > 0 && len(bottoms) > 0:
			top := pickUnused(tops, usedTopIDs, i)
			usedTopIDs[top.ID] = true
			outfitItems = append(outfitItems, top)
			// Bottoms repeat across outfits; only the index rotates.
			outfitItems = append(outfitItems, bottoms[i%len(bottoms)])
		case len(tops) > 0:
			outfitItems = append(outfitItems, tops[i%len(tops)])
		default:
			// No usable base category; stop generating.
			return outfits
		}

		if wantOuterwear && len(pools.outerwear) > 0 {
			outfitItems = append(outfitItems, pools.outerwear[i%len(pools.outerwear)])
		}

		// Shoes rotate by index and may repeat across outfits.
		if len(pools.shoes) > 0 {
			outfitItems = append(outfitItems, pools.shoes[i%len(pools.shoes)])
		}

		// At most one accessory, on even-indexed outfits only.
		if len(pools.accessories) > 0 && i%2 == 0 {
			accessory := pickUnused(pools.accessories, usedAccessoryIDs, i)
			usedAccessoryIDs[accessory.ID] = true
			outfitItems = append(outfitItems, accessory)
		}

		n := len(outfits) + 1
		outfits = append(outfits, types.Outfit{
			ID:          fmt.Sprintf("outfit_%d", n),
			Items:       outfitItems,
			Description: fmt.Sprintf("Outfit %d with %d items", n, len(outfitItems)),
		})
	}

	return outfits
}

// categoryPools holds the filtered items partitioned by outfit slot.
type categoryPools struct {
	tops        []types.Item
	bottoms     []types.Item
	shoes       []types.Item
	outerwear   []types.Item
	accessories []types.Item
}

func partition(items []types.Item) *categoryPools {
	pools := &categoryPools{}
	for _, item := range items {
		switch strings.ToLower(item.Category) {
		case "top":
			pools.tops = append(pools.tops, item)
		case "bottom":
			pools.bottoms = append(pools.bottoms, item)
		case "shoe", "shoes":
			pools.shoes = append(pools.shoes, item)
		case "outerwear":
			pools.outerwear = append(pools.outerwear, item)
		case "accessory":
			pools.accessories = append(pools.accessories, item)
		}
	}
	return pools
}

// shufflePools reorders every category pool with a generator keyed on the seed
// string, so identical input text always yields identical outfit orderings
// while distinct prompts vary.
func shufflePools(pools *categoryPools, seed string) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	shuffleItems(rng, pools.tops)
	shuffleItems(rng, pools.bottoms)
	shuffleItems(rng, pools.shoes)
	shuffleItems(rng, pools.outerwear)
	shuffleItems(rng, pools.accessories)
}

func shuffleItems(rng *rand.Rand, items []types.Item) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// pickUnused returns the first pool item whose ID has not been used yet,
// falling back to round-robin by index when all have been.
func pickUnused(pool []types.Item, used map[string]bool, i int) types.Item {
	for _, item := range pool {
		if !used[item.ID] {
			return item
		}
	}
	return pool[i%len(pool)]
}

// withOccasionTag returns the items carrying the given occasion tag.
func withOccasionTag(pool []types.Item, tag string) []types.Item {
	return keep(pool, func(item types.Item) bool {
		return item.HasOccasionTag(tag)
	})
}

// hotWeatherPool returns the items suited to hot weather: tagged summer, or an
// all/spring item light enough to pass (warmth <= 2).
func hotWeatherPool(pool []types.Item) []types.Item {
	return keep(pool, func(item types.Item) bool {
		season := strings.ToLower(item.Seasonality)
		if season == "summer" {
			return true
		}
		return (season == "all" || season == "spring") && item.Warmth <= 2
	})
}
