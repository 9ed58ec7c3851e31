package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogHeader = "item_id,name,category,brand,color_family,price,style_tags,occasion_tags,seasonality,warmth,formality,image_path"

func writeCatalog(t *testing.T, rows ...string) string {
	t.Helper()
	content := catalogHeader + "\n"
	for _, row := range rows {
		content += row + "\n"
	}
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesRows(t *testing.T) {
	path := writeCatalog(t,
		"top_1,White Tee,top,BrandA,white,29.99,minimal|classic,casual,all,1,1,images/top_1.jpg",
		"shoe_1,Canvas Sneakers,shoe,BrandB,white,59.99,streetwear,casual|travel,all,1,1,",
	)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.GetAllItems(), 2)

	item, ok := cat.GetItemByID("top_1")
	require.True(t, ok)
	assert.Equal(t, "White Tee", item.Name)
	assert.Equal(t, "top", item.Category)
	assert.Equal(t, 29.99, item.Price)
	assert.Equal(t, []string{"minimal", "classic"}, item.StyleTags)
	assert.Equal(t, []string{"casual"}, item.OccasionTags)
	assert.Equal(t, 1, item.Warmth)
	assert.Equal(t, "images/top_1.jpg", item.ImagePath)
}

func TestLoad_DefaultsForBlankFields(t *testing.T) {
	path := writeCatalog(t,
		"top_1,Plain Top,top,,,,,,,,,",
	)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.GetAllItems(), 1)

	item := cat.GetAllItems()[0]
	assert.Equal(t, 3, item.Warmth)
	assert.Equal(t, 3, item.Formality)
	assert.Equal(t, 0.0, item.Price)
	assert.Equal(t, "all", item.Seasonality)
	assert.Empty(t, item.StyleTags)
	assert.Empty(t, item.OccasionTags)
}

func TestLoad_NonNumericRatingsDefault(t *testing.T) {
	path := writeCatalog(t,
		"top_1,Odd Top,top,BrandA,white,abc,,,all,heavy,dressy,",
	)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.GetAllItems(), 1)

	item := cat.GetAllItems()[0]
	assert.Equal(t, 3, item.Warmth)
	assert.Equal(t, 3, item.Formality)
	assert.Equal(t, 0.0, item.Price)
}

func TestLoad_SkipsInvalidRows(t *testing.T) {
	path := writeCatalog(t,
		"top_1,Good Top,top,BrandA,white,10,,,all,2,2,",
		",Missing ID,top,BrandA,white,10,,,all,2,2,",
		"top_3,Bad Warmth,top,BrandA,white,10,,,all,9,2,",
	)

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.GetAllItems(), 1)
	assert.Equal(t, 2, cat.SkippedRows)
}

func TestLoad_MissingFileYieldsEmptyCatalog(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)
	assert.Empty(t, cat.GetAllItems())
}

func TestGetItemsByCategory(t *testing.T) {
	path := writeCatalog(t,
		"top_1,Tee,top,BrandA,white,10,,,all,2,2,",
		"top_2,Shirt,Top,BrandA,blue,10,,,all,2,2,",
		"shoe_1,Sneakers,shoe,BrandB,white,10,,,all,1,1,",
	)

	cat, err := Load(path)
	require.NoError(t, err)

	tops := cat.GetItemsByCategory("top")
	assert.Len(t, tops, 2)
	assert.Empty(t, cat.GetItemsByCategory("dress"))
}

func TestGetItemByID_Absent(t *testing.T) {
	cat := New(nil)
	_, ok := cat.GetItemByID("nope")
	assert.False(t, ok)
}
