// internal/domain/catalog/schema.go
package catalog

// DisplayType tells the UI how to render a facet.
type DisplayType string

const (
	DisplayColor    DisplayType = "color"
	DisplayCheckbox DisplayType = "checkbox"
)

// FacetDef is one filterable attribute of a category.
type FacetDef struct {
	Key           string
	AllowedValues []string
	Display       DisplayType
}

// Schema is the ordered facet set of one category. Static, defined at
// process start, never mutated.
type Schema struct {
	Category Category
	Facets   []FacetDef
}

// Facet returns the definition for key, or (FacetDef{}, false).
func (s Schema) Facet(key string) (FacetDef, bool) {
	for _, f := range s.Facets {
		if f.Key == key {
			return f, true
		}
	}
	return FacetDef{}, false
}

var schemas = map[Category]Schema{
	CategoryWatches: {
		Category: CategoryWatches,
		Facets: []FacetDef{
			{Key: "dialColor", Display: DisplayColor, AllowedValues: []string{"Black", "White", "Blue", "Green", "Silver", "Gold"}},
			{Key: "strapMaterial", Display: DisplayCheckbox, AllowedValues: []string{"Leather", "Stainless Steel", "Rubber", "Titanium", "Nylon"}},
			{Key: "features", Display: DisplayCheckbox, AllowedValues: []string{"Chronograph", "Date", "GMT", "Moonphase", "Water Resistant", "Automatic"}},
		},
	},
	CategoryShoes: {
		Category: CategoryShoes,
		Facets: []FacetDef{
			{Key: "color", Display: DisplayColor, AllowedValues: []string{"Black", "White", "Brown", "Red", "Blue", "Beige"}},
			{Key: "size", Display: DisplayCheckbox, AllowedValues: []string{"38", "39", "40", "41", "42", "43", "44", "45"}},
			{Key: "material", Display: DisplayCheckbox, AllowedValues: []string{"Leather", "Suede", "Canvas", "Mesh"}},
		},
	},
	CategoryBags: {
		Category: CategoryBags,
		Facets: []FacetDef{
			{Key: "color", Display: DisplayColor, AllowedValues: []string{"Black", "Brown", "Tan", "Red", "Navy"}},
			{Key: "material", Display: DisplayCheckbox, AllowedValues: []string{"Leather", "Canvas", "Nylon", "Suede"}},
			{Key: "size", Display: DisplayCheckbox, AllowedValues: []string{"Mini", "Small", "Medium", "Large"}},
		},
	},
	CategoryFashion: {
		Category: CategoryFashion,
		Facets: []FacetDef{
			{Key: "color", Display: DisplayColor, AllowedValues: []string{"Black", "White", "Grey", "Navy", "Olive", "Cream"}},
			{Key: "size", Display: DisplayCheckbox, AllowedValues: []string{"XS", "S", "M", "L", "XL", "XXL"}},
			{Key: "material", Display: DisplayCheckbox, AllowedValues: []string{"Cotton", "Wool", "Linen", "Silk", "Denim"}},
		},
	},
	CategoryElectronics: {
		Category: CategoryElectronics,
		Facets: []FacetDef{
			{Key: "color", Display: DisplayColor, AllowedValues: []string{"Black", "White", "Silver", "Space Grey"}},
			{Key: "features", Display: DisplayCheckbox, AllowedValues: []string{"Wireless", "Bluetooth", "Noise Cancelling", "Fast Charging", "Waterproof"}},
		},
	},
	CategoryAccessories: {
		Category: CategoryAccessories,
		Facets: []FacetDef{
			{Key: "color", Display: DisplayColor, AllowedValues: []string{"Black", "Brown", "Silver", "Gold"}},
			{Key: "material", Display: DisplayCheckbox, AllowedValues: []string{"Leather", "Metal", "Fabric"}},
		},
	},
}

// SchemaFor is a pure lookup. Unknown categories return the empty schema
// rather than an error; the category value is UI-constrained.
func SchemaFor(c Category) Schema {
	if s, ok := schemas[c]; ok {
		return s
	}
	return Schema{Category: c}
}
