// internal/adapters/out/firestore/negotiation_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	negdom "velora/internal/domain/negotiation"
)

// NegotiationRepositoryFS implements negotiation.Repository.
//
// Collection design:
// - collection: negotiations
// - docId: <productId>_<buyerId> (one active record per pair)
//
// Approve/reject fields are written by seller tooling; this side reads,
// overwrites on (re)submission, and watches.
type NegotiationRepositoryFS struct {
	Client *firestore.Client
}

func NewNegotiationRepositoryFS(client *firestore.Client) *NegotiationRepositoryFS {
	return &NegotiationRepositoryFS{Client: client}
}

func (r *NegotiationRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("negotiations")
}

// Get returns (nil, nil) if no record exists for the pair (nil policy).
func (r *NegotiationRepositoryFS) Get(ctx context.Context, productID, buyerID string) (*negdom.Request, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("negotiation_repository_fs: firestore client is nil")
	}
	key := negdom.Key(productID, buyerID)
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(buyerID) == "" {
		return nil, errors.New("negotiation_repository_fs: productID/buyerID is empty")
	}

	snap, err := r.col().Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return negotiationFromData(snap.Data()), nil
}

// Upsert overwrites the pair's document.
func (r *NegotiationRepositoryFS) Upsert(ctx context.Context, rec *negdom.Request) error {
	if r == nil || r.Client == nil {
		return errors.New("negotiation_repository_fs: firestore client is nil")
	}
	if rec == nil {
		return errors.New("negotiation_repository_fs: record is nil")
	}
	key := negdom.Key(rec.ProductID, rec.BuyerID)
	if key == "_" {
		return errors.New("negotiation_repository_fs: record has empty pair key")
	}

	_, err := r.col().Doc(key).Set(ctx, rec)
	return err
}

// Watch streams document changes to fn until ctx is cancelled. fn gets nil
// while the document does not exist. Each call owns its own snapshot
// listener, so independent watches do not interfere.
func (r *NegotiationRepositoryFS) Watch(ctx context.Context, productID, buyerID string, fn negdom.WatchFunc) error {
	if r == nil || r.Client == nil {
		return errors.New("negotiation_repository_fs: firestore client is nil")
	}
	if fn == nil {
		return errors.New("negotiation_repository_fs: watch fn is nil")
	}
	key := negdom.Key(productID, buyerID)

	iter := r.col().Doc(key).Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			// context cancellation is clean shutdown, not a failure
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}

		if snap == nil || !snap.Exists() {
			fn(nil)
			continue
		}
		fn(negotiationFromData(snap.Data()))
	}
}

// negotiationFromData decodes tolerantly; provider timestamps are
// normalized to time.Time.
func negotiationFromData(raw map[string]any) *negdom.Request {
	if raw == nil {
		return nil
	}

	rec := &negdom.Request{
		ProductID:     strings.TrimSpace(asString(raw["productId"])),
		BuyerID:       strings.TrimSpace(asString(raw["buyerId"])),
		OriginalPrice: asFloat(raw["originalPrice"]),
		ProposedPrice: asFloat(raw["proposedPrice"]),
		SellerID:      strings.TrimSpace(asString(raw["sellerId"])),
		Notes:         strings.TrimSpace(asString(raw["notes"])),
	}

	switch negdom.Status(strings.TrimSpace(asString(raw["status"]))) {
	case negdom.StatusApproved:
		rec.Status = negdom.StatusApproved
	case negdom.StatusRejected:
		rec.Status = negdom.StatusRejected
	default:
		rec.Status = negdom.StatusPending
	}

	if v, ok := raw["approvedPrice"]; ok && v != nil {
		p := asFloat(v)
		rec.ApprovedPrice = &p
	}
	// invariant: approvedPrice only while approved
	if rec.Status != negdom.StatusApproved {
		rec.ApprovedPrice = nil
	}

	if t, ok := asTime(raw["createdAt"]); ok {
		rec.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		rec.UpdatedAt = t
	}
	if t, ok := asTime(raw["approvedAt"]); ok {
		rec.ApprovedAt = &t
	}
	if t, ok := asTime(raw["rejectedAt"]); ok {
		rec.RejectedAt = &t
	}
	return rec
}
