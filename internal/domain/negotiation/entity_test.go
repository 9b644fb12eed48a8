// internal/domain/negotiation/entity_test.go
package negotiation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func TestResolveDisplayPrice(t *testing.T) {
	assert.Equal(t, float64(100), ResolveDisplayPrice(100, nil))
	assert.Equal(t, float64(100), ResolveDisplayPrice(100, &Request{Status: StatusPending}))
	assert.Equal(t, float64(100), ResolveDisplayPrice(100, &Request{Status: StatusRejected}))
	assert.Equal(t, float64(80), ResolveDisplayPrice(100, &Request{Status: StatusApproved, ApprovedPrice: f64(80)}))

	// approved without a concrete price falls back to base
	assert.Equal(t, float64(100), ResolveDisplayPrice(100, &Request{Status: StatusApproved}))
}

func TestResubmitResetsTerminalState(t *testing.T) {
	rec, err := NewRequest("p1", "b1", 100, 70, now)
	require.NoError(t, err)
	require.Equal(t, StatusPending, rec.Status)

	// seller-side approval observed remotely
	rec.Status = StatusApproved
	rec.ApprovedPrice = f64(80)
	at := now.Add(time.Hour)
	rec.ApprovedAt = &at

	later := now.Add(2 * time.Hour)
	require.NoError(t, rec.Resubmit(100, 60, later))

	assert.Equal(t, StatusPending, rec.Status)
	assert.Nil(t, rec.ApprovedPrice)
	assert.Nil(t, rec.ApprovedAt)
	assert.Nil(t, rec.RejectedAt)
	assert.Equal(t, float64(60), rec.ProposedPrice)
	assert.Equal(t, later, rec.UpdatedAt)
	assert.Equal(t, now, rec.CreatedAt)

	// display price reverts to base until re-approved
	assert.Equal(t, float64(100), ResolveDisplayPrice(100, rec))
}

func TestNewRequestValidation(t *testing.T) {
	_, err := NewRequest(" ", "b", 100, 70, now)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = NewRequest("p", "b", -1, 70, now)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "p1_b1", Key(" p1 ", "b1"))
}
