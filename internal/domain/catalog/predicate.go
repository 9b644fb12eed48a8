// internal/domain/catalog/predicate.go
package catalog

import "strings"

// ViewMode is a single page-level selector composed with the facet checks.
// It is not a facet: exactly one mode is active at a time.
type ViewMode string

const (
	ViewAll      ViewMode = "all"
	ViewVintage  ViewMode = "vintage"
	ViewWarranty ViewMode = "warranty"
	ViewProject  ViewMode = "project"

	genderViewPrefix = "gender:"
)

// GenderView builds the view mode that keeps only items of one gender.
func GenderView(g string) ViewMode {
	return ViewMode(genderViewPrefix + strings.ToLower(strings.TrimSpace(g)))
}

// ParseViewMode normalizes s; empty or unknown input falls back to ViewAll.
func ParseViewMode(s string) ViewMode {
	v := strings.ToLower(strings.TrimSpace(s))
	switch ViewMode(v) {
	case ViewVintage, ViewWarranty, ViewProject:
		return ViewMode(v)
	}
	if strings.HasPrefix(v, genderViewPrefix) && len(v) > len(genderViewPrefix) {
		return ViewMode(v)
	}
	return ViewAll
}

// vintageCollectionType marks the vintage view's collection.
const vintageCollectionType = "Vintage Collection"

// Engine decides item inclusion for a selection plus view mode.
//
// Composition rules:
//   - AND across facets and across special clauses;
//   - OR within one facet's selected set;
//   - OR across a multi-valued item attribute (features);
//   - a facet with an active selection excludes items missing the attribute.
type Engine struct {
	// ProjectSellerID is the allow-listed seller behind ViewProject.
	// Empty means the project view matches nothing.
	ProjectSellerID string
}

// Matches reports whether it passes every active constraint of sel and view.
func (e Engine) Matches(it Item, sel Selection, view ViewMode) bool {
	if it.Price < sel.PriceMin || it.Price > sel.PriceMax {
		return false
	}

	for key, values := range sel.Facets {
		if len(values) == 0 {
			continue
		}
		if key == "features" {
			if !anyOverlap(it.Features, values) {
				return false
			}
			continue
		}
		attr := it.Attribute(key)
		if attr == "" || !contains(values, attr) {
			return false
		}
	}

	return e.matchesView(it, view)
}

func (e Engine) matchesView(it Item, view ViewMode) bool {
	switch view {
	case "", ViewAll:
		return true
	case ViewVintage:
		return it.Attribute("collectionType") == vintageCollectionType
	case ViewWarranty:
		return it.WarrantyActive
	case ViewProject:
		seller := strings.TrimSpace(e.ProjectSellerID)
		return seller != "" && it.SellerID == seller
	}
	if g, ok := strings.CutPrefix(string(view), genderViewPrefix); ok {
		return strings.EqualFold(it.Attribute("gender"), g)
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func anyOverlap(have, want []string) bool {
	for _, h := range have {
		if contains(want, strings.TrimSpace(h)) {
			return true
		}
	}
	return false
}
