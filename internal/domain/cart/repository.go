// internal/domain/cart/repository.go
package cart

import "context"

// Repository persists carts keyed by userId.
//
// Consistency is intentionally last-write-wins: Upsert overwrites the full
// document with the caller's item list; no field-level merge, no
// optimistic-concurrency check.
type Repository interface {
	// GetByUserID returns (nil, nil) when no cart document exists.
	GetByUserID(ctx context.Context, userID string) (*Cart, error)

	// Upsert overwrites the whole cart document (docId = cart.ID).
	Upsert(ctx context.Context, c *Cart) error

	// DeleteByUserID removes the cart document.
	DeleteByUserID(ctx context.Context, userID string) error
}
