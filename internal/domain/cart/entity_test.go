// internal/domain/cart/entity_test.go
package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func TestAddSameIDTwiceIncrementsQuantity(t *testing.T) {
	c, err := New("buyer@example.com", now)
	require.NoError(t, err)

	require.NoError(t, c.Add(Item{ID: "w-1", Name: "Diver 200", Price: 450, Category: "watches"}, now))
	// re-add with different fields: existing entry wins
	require.NoError(t, c.Add(Item{ID: "w-1", Name: "renamed", Price: 999}, now))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "Diver 200", c.Items[0].Name)
	assert.Equal(t, float64(450), c.Items[0].Price)
}

func TestAddDefaultsCategory(t *testing.T) {
	c, err := New("u1", now)
	require.NoError(t, err)

	require.NoError(t, c.Add(Item{ID: "x", Price: 10}, now))
	assert.Equal(t, FallbackCategory, c.Items[0].Category)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestSetQuantityZeroDropsEntry(t *testing.T) {
	c, err := New("u1", now)
	require.NoError(t, err)
	require.NoError(t, c.Add(Item{ID: "a", Price: 5}, now))
	require.NoError(t, c.Add(Item{ID: "b", Price: 7}, now))

	c.SetQuantity("a", 0, now)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ID)
	assert.Equal(t, 1, Count(c.Items))
}

func TestSetQuantityClampsNegative(t *testing.T) {
	c, err := New("u1", now)
	require.NoError(t, err)
	require.NoError(t, c.Add(Item{ID: "a", Price: 5}, now))

	c.SetQuantity("a", -3, now)
	assert.Empty(t, c.Items)
}

func TestSetQuantityReplaces(t *testing.T) {
	c, err := New("u1", now)
	require.NoError(t, err)
	require.NoError(t, c.Add(Item{ID: "a", Price: 5}, now))

	c.SetQuantity("a", 7, now)
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.Equal(t, 7, Count(c.Items))
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c, err := New("u1", now)
	require.NoError(t, err)
	require.NoError(t, c.Add(Item{ID: "a", Price: 5}, now))

	c.Remove("ghost", now)
	assert.Len(t, c.Items, 1)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 5, Count([]Item{{ID: "a", Quantity: 2}, {ID: "b", Quantity: 3}}))
}

func TestNewRejectsEmptyUser(t *testing.T) {
	_, err := New("  ", now)
	assert.ErrorIs(t, err, ErrInvalidCart)
}
