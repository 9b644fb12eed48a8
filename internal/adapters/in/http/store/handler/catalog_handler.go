// internal/adapters/in/http/store/handler/catalog_handler.go
package storeHandler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	query "velora/internal/application/query"
	"velora/internal/domain/catalog"
)

// CatalogHandler serves the category listing pages.
//
//	GET /store/catalog?category=watches&sort=newest&view=vintage
//	     &facet.dialColor=Black,Blue&priceMin=50&priceMax=800
//	GET /store/catalog/schema?category=watches
type CatalogHandler struct {
	Query *query.CatalogQuery
}

func NewCatalogHandler(q *query.CatalogQuery) http.Handler {
	return &CatalogHandler{Query: q}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Query == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if strings.HasSuffix(path, "/schema") {
		h.handleSchema(w, r)
		return
	}
	h.handleQuery(w, r)
}

func (h *CatalogHandler) handleSchema(w http.ResponseWriter, r *http.Request) {
	cat, ok := catalog.ParseCategory(r.URL.Query().Get("category"))
	if !ok {
		writeErr(w, http.StatusBadRequest, "unknown category")
		return
	}

	s := catalog.SchemaFor(cat)
	facets := make([]map[string]any, 0, len(s.Facets))
	for _, f := range s.Facets {
		facets = append(facets, map[string]any{
			"key":           f.Key,
			"displayType":   f.Display,
			"allowedValues": f.AllowedValues,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": s.Category, "facets": facets})
}

func (h *CatalogHandler) handleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cat, ok := catalog.ParseCategory(q.Get("category"))
	if !ok {
		writeErr(w, http.StatusBadRequest, "unknown category")
		return
	}

	sel := selectionFromQuery(q)
	sortKey := catalog.ParseSortKey(q.Get("sort"))
	view := catalog.ParseViewMode(q.Get("view"))

	items, err := h.Query.Query(r.Context(), cat, sel, sortKey, view)
	if err != nil {
		log.Printf("[catalog_handler] query error category=%q err=%v", cat, err)
		writeUsecaseErr(w, err)
		return
	}

	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, itemDTO(it))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": cat,
		"count":    len(out),
		"items":    out,
	})
}

// selectionFromQuery builds the filter selection from request parameters:
// facet.<key>=v1,v2 plus priceMin/priceMax. Invalid numbers keep the
// default bound.
func selectionFromQuery(q map[string][]string) catalog.Selection {
	sel := catalog.NewSelection()

	for key, vals := range q {
		facet, ok := strings.CutPrefix(key, "facet.")
		if !ok {
			continue
		}
		for _, raw := range vals {
			for _, v := range strings.Split(raw, ",") {
				if v = strings.TrimSpace(v); v != "" && !sel.Selected(facet, v) {
					sel.Toggle(facet, v)
				}
			}
		}
	}

	if vals := q["priceMax"]; len(vals) > 0 {
		if f, err := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64); err == nil {
			sel.SetPriceMax(f)
		}
	}
	if vals := q["priceMin"]; len(vals) > 0 {
		if f, err := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64); err == nil {
			sel.SetPriceMin(f)
		}
	}

	return sel
}

func itemDTO(it catalog.Item) map[string]any {
	dto := map[string]any{
		"id":          it.ID,
		"category":    it.Category,
		"price":       it.Price,
		"name":        it.DisplayName(),
		"description": it.Description,
		"image":       it.Image,
		"rating":      it.Rating,
		"reviews":     it.Reviews,
		"salesCount":  it.SalesCount,
	}
	if len(it.Attributes) > 0 {
		dto["attributes"] = it.Attributes
	}
	if len(it.Features) > 0 {
		dto["features"] = it.Features
	}
	if !it.DateAdded.IsZero() {
		dto["dateAdded"] = it.DateAdded
	}
	return dto
}
