// internal/domain/catalog/selection.go
package catalog

import "strings"

// DefaultMaxPrice is the upper price bound of a fresh selection. It has to
// contain every realistic catalog price so an untouched selection filters
// nothing out.
const DefaultMaxPrice = 1_000_000

// Selection is one session's active filter state for a category page.
//   - Facets maps facet key -> selected value set (empty set = no constraint).
//   - PriceMin/PriceMax is an always-present bound with 0 <= min <= max.
type Selection struct {
	Facets   map[string][]string
	PriceMin float64
	PriceMax float64
}

// NewSelection returns the page-mount state: all facets empty, full bounds.
func NewSelection() Selection {
	return Selection{
		Facets:   map[string][]string{},
		PriceMin: 0,
		PriceMax: DefaultMaxPrice,
	}
}

// Toggle flips value within the facet's selected set: add if absent,
// remove if present. Empty keys/values are ignored.
func (s *Selection) Toggle(facetKey, value string) {
	if s == nil {
		return
	}
	key := strings.TrimSpace(facetKey)
	val := strings.TrimSpace(value)
	if key == "" || val == "" {
		return
	}
	if s.Facets == nil {
		s.Facets = map[string][]string{}
	}

	cur := s.Facets[key]
	for i, v := range cur {
		if v == val {
			s.Facets[key] = append(cur[:i:i], cur[i+1:]...)
			return
		}
	}
	s.Facets[key] = append(cur, val)
}

// Selected reports whether value is currently selected for facetKey.
func (s Selection) Selected(facetKey, value string) bool {
	for _, v := range s.Facets[facetKey] {
		if v == value {
			return true
		}
	}
	return false
}

// SetPriceMin moves the lower bound. It is clamped to [0, PriceMax] so the
// bounds can never cross.
func (s *Selection) SetPriceMin(min float64) {
	if s == nil {
		return
	}
	if min < 0 {
		min = 0
	}
	if min > s.PriceMax {
		min = s.PriceMax
	}
	s.PriceMin = min
}

// SetPriceMax moves the upper bound, clamped so it cannot drop below
// PriceMin.
func (s *Selection) SetPriceMax(max float64) {
	if s == nil {
		return
	}
	if max < s.PriceMin {
		max = s.PriceMin
	}
	s.PriceMax = max
}

// Clear resets to the page-mount state ("clear all").
func (s *Selection) Clear() {
	if s == nil {
		return
	}
	*s = NewSelection()
}
