// internal/domain/catalog/item.go
package catalog

import (
	"strings"
	"time"
)

// Category is a fixed storefront category. Each category maps to its own
// Firestore collection.
type Category string

const (
	CategoryWatches     Category = "watches"
	CategoryShoes       Category = "shoes"
	CategoryBags        Category = "bags"
	CategoryFashion     Category = "fashion"
	CategoryElectronics Category = "electronics"
	CategoryAccessories Category = "accessories"
)

// Categories lists all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryWatches,
		CategoryShoes,
		CategoryBags,
		CategoryFashion,
		CategoryElectronics,
		CategoryAccessories,
	}
}

// ParseCategory returns the category for s, or ("", false) when unknown.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryWatches:
		return CategoryWatches, true
	case CategoryShoes:
		return CategoryShoes, true
	case CategoryBags:
		return CategoryBags, true
	case CategoryFashion:
		return CategoryFashion, true
	case CategoryElectronics:
		return CategoryElectronics, true
	case CategoryAccessories:
		return CategoryAccessories, true
	}
	return "", false
}

// FallbackCategoryLabel is used when a fetched record carries no category.
const FallbackCategoryLabel = "Unknown"

// Item is a read-only product record fetched from the store.
//   - Price is already coerced (>= 0; unparseable source values become 0).
//   - Attributes holds scalar facet values (dialColor, strapMaterial, size,
//     color, material, gender, collectionType, ...).
//   - Features holds the multi-valued facet.
type Item struct {
	ID          string
	Category    Category
	Price       float64
	Brand       string
	Company     string
	Name        string
	Description string
	Image       string

	Rating  float64
	Reviews int

	Attributes map[string]string
	Features   []string

	SellerID       string
	WarrantyActive bool

	DateAdded  time.Time
	SalesCount int
}

// DisplayName resolves the display label: brand, then company, then name.
func (it Item) DisplayName() string {
	if s := strings.TrimSpace(it.Brand); s != "" {
		return s
	}
	if s := strings.TrimSpace(it.Company); s != "" {
		return s
	}
	return strings.TrimSpace(it.Name)
}

// Attribute returns the scalar facet value for key ("" when absent).
func (it Item) Attribute(key string) string {
	if it.Attributes == nil {
		return ""
	}
	return strings.TrimSpace(it.Attributes[key])
}
