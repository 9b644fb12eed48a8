// internal/domain/catalog/sort.go
package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortPriceLowHigh SortKey = "price-low-high"
	SortPriceHighLow SortKey = "price-high-low"
	SortNewest       SortKey = "newest"
	SortRating       SortKey = "rating"
	SortBestsellers  SortKey = "bestsellers"
)

// ParseSortKey normalizes s; unknown input falls back to the default
// bestsellers order.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceLowHigh:
		return SortPriceLowHigh
	case SortPriceHighLow:
		return SortPriceHighLow
	case SortNewest:
		return SortNewest
	case SortRating:
		return SortRating
	}
	return SortBestsellers
}

// Sort returns a new slice ordered by key. The sort is stable: equal keys
// keep their relative input order, and the input slice is never mutated.
// Missing values sort as zero (oldest date, rating 0, salesCount 0).
func Sort(items []Item, key SortKey) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	var less func(a, b Item) bool
	switch key {
	case SortPriceLowHigh:
		less = func(a, b Item) bool { return a.Price < b.Price }
	case SortPriceHighLow:
		less = func(a, b Item) bool { return a.Price > b.Price }
	case SortNewest:
		less = func(a, b Item) bool { return a.DateAdded.After(b.DateAdded) }
	case SortRating:
		less = func(a, b Item) bool { return a.Rating > b.Rating }
	default: // SortBestsellers
		less = func(a, b Item) bool { return a.SalesCount > b.SalesCount }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
