// internal/adapters/out/firestore/decode_fs_test.go
package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora/internal/domain/catalog"
	cartdom "velora/internal/domain/cart"
	negdom "velora/internal/domain/negotiation"
)

func TestAsFloatCoercesStringsAndClampsNegative(t *testing.T) {
	assert.Equal(t, 12.5, asFloat("12.5"))
	assert.Equal(t, 12.5, asFloat(" 12.5 "))
	assert.Equal(t, float64(0), asFloat("not-a-price"))
	assert.Equal(t, float64(0), asFloat(nil))
	assert.Equal(t, float64(0), asFloat(-3.0))
	assert.Equal(t, float64(7), asFloat(int64(7)))
}

func TestItemFromDataTolerantDecode(t *testing.T) {
	added := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	it := itemFromData(map[string]any{
		"price":          "449.99", // legacy string price
		"brand":          " Meridian ",
		"category":       "watches",
		"dialColor":      "Black",
		"features":       []any{"Chronograph", "Date"},
		"warrantyActive": true,
		"dateAdded":      added,
		"salesCount":     int64(42),
		"attributes":     map[string]any{"strapMaterial": "Leather"},
	})

	assert.Equal(t, 449.99, it.Price)
	assert.Equal(t, "Meridian", it.DisplayName())
	assert.Equal(t, catalog.CategoryWatches, it.Category)
	assert.Equal(t, "Black", it.Attribute("dialColor"))
	assert.Equal(t, "Leather", it.Attribute("strapMaterial"))
	assert.Equal(t, []string{"Chronograph", "Date"}, it.Features)
	assert.True(t, it.WarrantyActive)
	assert.Equal(t, added, it.DateAdded)
	assert.Equal(t, 42, it.SalesCount)
}

func TestItemFromDataMalformedRecordDefaults(t *testing.T) {
	it := itemFromData(map[string]any{"price": map[string]any{"weird": true}})
	assert.Equal(t, float64(0), it.Price)
	assert.Empty(t, it.Attributes)

	empty := itemFromData(nil)
	assert.Equal(t, float64(0), empty.Price)
}

func TestCartFromDataSkipsMalformedEntries(t *testing.T) {
	c := cartFromData(map[string]any{
		"items": []any{
			map[string]any{"id": "a", "quantity": int64(2), "price": "19.5"},
			map[string]any{"id": "", "quantity": int64(1)},  // no id
			map[string]any{"id": "b", "quantity": int64(0)}, // qty <= 0
			"garbage",
		},
	})

	require.Len(t, c.Items, 1)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, 19.5, c.Items[0].Price)
	assert.Equal(t, cartdom.FallbackCategory, c.Items[0].Category)
	assert.Equal(t, 2, cartdom.Count(c.Items))
}

func TestNegotiationFromDataNormalizesStatusAndTimestamps(t *testing.T) {
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	rec := negotiationFromData(map[string]any{
		"productId":     "p1",
		"buyerId":       "b1",
		"originalPrice": float64(100),
		"proposedPrice": float64(70),
		"status":        "approved",
		"approvedPrice": float64(80),
		"createdAt":     created,
	})

	require.NotNil(t, rec)
	assert.Equal(t, negdom.StatusApproved, rec.Status)
	require.NotNil(t, rec.ApprovedPrice)
	assert.Equal(t, float64(80), *rec.ApprovedPrice)
	assert.Equal(t, created, rec.CreatedAt)

	// approvedPrice must not leak into non-approved records
	rec = negotiationFromData(map[string]any{
		"status":        "rejected",
		"approvedPrice": float64(80),
	})
	require.NotNil(t, rec)
	assert.Equal(t, negdom.StatusRejected, rec.Status)
	assert.Nil(t, rec.ApprovedPrice)

	// unknown status defaults to pending
	rec = negotiationFromData(map[string]any{"status": "haggling"})
	assert.Equal(t, negdom.StatusPending, rec.Status)
}
