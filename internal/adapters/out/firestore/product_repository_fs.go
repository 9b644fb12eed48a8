// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"velora/internal/domain/catalog"
)

// ProductRepositoryFS reads catalog records. Each category maps to its own
// collection (collection name = category).
//
// Records are written by a separate seller-facing flow and treated as
// read-only here; decoding is tolerant: absent price -> 0, string prices
// coerced, absent attributes simply missing.
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) ListByCategory(ctx context.Context, c catalog.Category) ([]catalog.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	col := strings.TrimSpace(string(c))
	if col == "" {
		return nil, errors.New("product_repository_fs: category is empty")
	}

	iter := r.Client.Collection(col).Documents(ctx)
	defer iter.Stop()

	var out []catalog.Item
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		it := itemFromData(snap.Data())
		it.ID = snap.Ref.ID
		if it.Category == "" {
			it.Category = c
		}
		out = append(out, it)
	}
	return out, nil
}

// knownScalarFacets are promoted into Item.Attributes when present.
var knownScalarFacets = []string{
	"dialColor", "strapMaterial", "size", "color", "material",
	"gender", "collectionType",
}

func itemFromData(raw map[string]any) catalog.Item {
	if raw == nil {
		return catalog.Item{}
	}

	it := catalog.Item{
		Price:       asFloat(raw["price"]),
		Brand:       strings.TrimSpace(asString(raw["brand"])),
		Company:     strings.TrimSpace(asString(raw["company"])),
		Name:        strings.TrimSpace(asString(raw["name"])),
		Description: strings.TrimSpace(asString(raw["description"])),
		Image:       strings.TrimSpace(asString(raw["image"])),
		SellerID:    strings.TrimSpace(asString(raw["sellerId"])),
		SalesCount:  asInt(raw["salesCount"]),
		Features:    asStringSlice(raw["features"]),
	}

	if cat, ok := catalog.ParseCategory(asString(raw["category"])); ok {
		it.Category = cat
	}

	// rating is usually server-absent; the query layer synthesizes it
	if v, ok := raw["rating"]; ok {
		it.Rating = asFloat(v)
	}
	if v, ok := raw["reviews"]; ok {
		it.Reviews = asInt(v)
	}

	if t, ok := asTime(raw["dateAdded"]); ok {
		it.DateAdded = t
	}

	it.WarrantyActive = asBool(raw["warrantyActive"])

	attrs := map[string]string{}
	for _, key := range knownScalarFacets {
		if v, ok := raw[key]; ok {
			if s := strings.TrimSpace(asString(v)); s != "" {
				attrs[key] = s
			}
		}
	}
	// nested attributes map wins over top-level fields
	if m, ok := raw["attributes"].(map[string]any); ok {
		for k, v := range m {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if k == "features" {
				if fs := asStringSlice(v); len(fs) > 0 {
					it.Features = fs
				}
				continue
			}
			if s := strings.TrimSpace(asString(v)); s != "" {
				attrs[k] = s
			}
		}
	}
	if len(attrs) > 0 {
		it.Attributes = attrs
	}

	return it
}
