// internal/domain/catalog/predicate_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watchItem(id string, price float64, attrs map[string]string, features ...string) Item {
	return Item{
		ID:         id,
		Category:   CategoryWatches,
		Price:      price,
		Attributes: attrs,
		Features:   features,
	}
}

func TestMatchesEmptySelectionMatchesEverything(t *testing.T) {
	e := Engine{}
	sel := NewSelection()

	items := []Item{
		watchItem("w1", 120, map[string]string{"dialColor": "Black"}),
		watchItem("w2", 0, nil),
		watchItem("w3", 999999, map[string]string{"strapMaterial": "Rubber"}),
	}
	for _, it := range items {
		assert.True(t, e.Matches(it, sel, ViewAll), "item %s", it.ID)
	}
}

func TestMatchesScalarFacet(t *testing.T) {
	e := Engine{}
	sel := NewSelection()
	sel.Toggle("dialColor", "Black")
	sel.Toggle("dialColor", "Blue")

	assert.True(t, e.Matches(watchItem("a", 10, map[string]string{"dialColor": "Black"}), sel, ViewAll))
	assert.True(t, e.Matches(watchItem("b", 10, map[string]string{"dialColor": "Blue"}), sel, ViewAll))
	assert.False(t, e.Matches(watchItem("c", 10, map[string]string{"dialColor": "Gold"}), sel, ViewAll))

	// missing attribute + active selection => excluded
	assert.False(t, e.Matches(watchItem("d", 10, nil), sel, ViewAll))
}

func TestMatchesFeaturesOrSemantics(t *testing.T) {
	e := Engine{}
	sel := NewSelection()
	sel.Toggle("features", "Chronograph")

	// two-element feature set, one overlapping element: included
	assert.True(t, e.Matches(watchItem("a", 10, nil, "Chronograph", "Date"), sel, ViewAll))
	assert.False(t, e.Matches(watchItem("b", 10, nil, "GMT", "Date"), sel, ViewAll))
	assert.False(t, e.Matches(watchItem("c", 10, nil), sel, ViewAll))
}

func TestMatchesFacetsComposeWithAnd(t *testing.T) {
	e := Engine{}
	sel := NewSelection()
	sel.Toggle("dialColor", "Black")
	sel.Toggle("strapMaterial", "Leather")

	both := watchItem("a", 10, map[string]string{"dialColor": "Black", "strapMaterial": "Leather"})
	onlyDial := watchItem("b", 10, map[string]string{"dialColor": "Black", "strapMaterial": "Rubber"})

	assert.True(t, e.Matches(both, sel, ViewAll))
	assert.False(t, e.Matches(onlyDial, sel, ViewAll))
}

func TestMatchesPriceBound(t *testing.T) {
	e := Engine{}
	sel := NewSelection()
	sel.SetPriceMax(200)
	sel.SetPriceMin(50)

	assert.True(t, e.Matches(watchItem("a", 50, nil), sel, ViewAll))
	assert.True(t, e.Matches(watchItem("b", 200, nil), sel, ViewAll))
	assert.False(t, e.Matches(watchItem("c", 49.99, nil), sel, ViewAll))
	assert.False(t, e.Matches(watchItem("d", 200.01, nil), sel, ViewAll))
}

func TestMatchesViewModes(t *testing.T) {
	e := Engine{ProjectSellerID: "seller-42"}
	sel := NewSelection()

	vintage := watchItem("a", 10, map[string]string{"collectionType": "Vintage Collection"})
	plain := watchItem("b", 10, nil)
	warranted := Item{ID: "c", Price: 10, WarrantyActive: true}
	project := Item{ID: "d", Price: 10, SellerID: "seller-42"}
	men := watchItem("e", 10, map[string]string{"gender": "Men"})

	assert.True(t, e.Matches(vintage, sel, ViewVintage))
	assert.False(t, e.Matches(plain, sel, ViewVintage))

	assert.True(t, e.Matches(warranted, sel, ViewWarranty))
	assert.False(t, e.Matches(plain, sel, ViewWarranty))

	assert.True(t, e.Matches(project, sel, ViewProject))
	assert.False(t, e.Matches(plain, sel, ViewProject))

	assert.True(t, e.Matches(men, sel, GenderView("men")))
	assert.False(t, e.Matches(men, sel, GenderView("women")))
}

func TestMatchesProjectViewWithoutConfiguredSeller(t *testing.T) {
	e := Engine{}
	sel := NewSelection()
	assert.False(t, e.Matches(Item{ID: "a", SellerID: "seller-42"}, sel, ViewProject))
}

func TestParseViewMode(t *testing.T) {
	assert.Equal(t, ViewAll, ParseViewMode(""))
	assert.Equal(t, ViewAll, ParseViewMode("bogus"))
	assert.Equal(t, ViewVintage, ParseViewMode(" Vintage "))
	assert.Equal(t, GenderView("women"), ParseViewMode("gender:women"))
	assert.Equal(t, ViewAll, ParseViewMode("gender:"))
}

func TestSelectionToggleAndClamp(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("color", "Black")
	require.True(t, sel.Selected("color", "Black"))

	sel.Toggle("color", "Black")
	assert.False(t, sel.Selected("color", "Black"))

	sel.SetPriceMax(100)
	sel.SetPriceMin(250) // min cannot exceed current max
	assert.Equal(t, float64(100), sel.PriceMin)

	sel.SetPriceMax(40) // max cannot drop below current min
	assert.Equal(t, float64(100), sel.PriceMax)

	sel.SetPriceMin(-5)
	assert.Equal(t, float64(0), sel.PriceMin)

	sel.Clear()
	assert.Empty(t, sel.Facets)
	assert.Equal(t, float64(0), sel.PriceMin)
	assert.Equal(t, float64(DefaultMaxPrice), sel.PriceMax)
}

func TestSchemaFor(t *testing.T) {
	s := SchemaFor(CategoryWatches)
	require.Equal(t, CategoryWatches, s.Category)
	f, ok := s.Facet("dialColor")
	require.True(t, ok)
	assert.Equal(t, DisplayColor, f.Display)
	assert.NotEmpty(t, f.AllowedValues)

	// unknown category: empty schema, no error
	empty := SchemaFor(Category("spaceships"))
	assert.Empty(t, empty.Facets)
}
