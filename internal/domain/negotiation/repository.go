// internal/domain/negotiation/repository.go
package negotiation

import "context"

// WatchFunc receives the current record on every remote change. It is
// invoked with nil when no record exists (including deletion).
type WatchFunc func(rec *Request)

// Repository persists negotiation documents keyed by Key(productId, buyerId).
// Approve/reject transitions are written by seller-facing tooling outside
// this system; here they are only read and watched.
type Repository interface {
	// Get returns (nil, nil) when no record exists for the pair.
	Get(ctx context.Context, productID, buyerID string) (*Request, error)

	// Upsert overwrites the whole document for the pair.
	Upsert(ctx context.Context, rec *Request) error

	// Watch streams record changes to fn until ctx is cancelled.
	// Cancellation stops further callbacks; the returned error reflects
	// stream setup or teardown only.
	Watch(ctx context.Context, productID, buyerID string, fn WatchFunc) error
}
