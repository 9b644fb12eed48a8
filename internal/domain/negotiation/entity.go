// internal/domain/negotiation/entity.go
package negotiation

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidRequest = errors.New("negotiation: invalid request")

// Status of a price negotiation. There is no cancelled state; resubmission
// is the only way out of a terminal state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is one (productId, buyerId) negotiation document. At most one
// active record exists per pair; a new submission overwrites the prior one.
type Request struct {
	ProductID     string  `json:"productId" firestore:"productId"`
	BuyerID       string  `json:"buyerId" firestore:"buyerId"`
	OriginalPrice float64 `json:"originalPrice" firestore:"originalPrice"`
	ProposedPrice float64 `json:"proposedPrice" firestore:"proposedPrice"`

	Status Status `json:"status" firestore:"status"`

	// ApprovedPrice is set only while Status == approved.
	ApprovedPrice *float64 `json:"approvedPrice,omitempty" firestore:"approvedPrice"`
	SellerID      string   `json:"sellerId,omitempty" firestore:"sellerId"`
	Notes         string   `json:"notes,omitempty" firestore:"notes"`

	CreatedAt  time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt" firestore:"updatedAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" firestore:"approvedAt"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty" firestore:"rejectedAt"`
}

// Key is the document id for a (productId, buyerId) pair.
func Key(productID, buyerID string) string {
	return strings.TrimSpace(productID) + "_" + strings.TrimSpace(buyerID)
}

// NewRequest creates a pending request.
func NewRequest(productID, buyerID string, originalPrice, proposedPrice float64, now time.Time) (*Request, error) {
	pid := strings.TrimSpace(productID)
	bid := strings.TrimSpace(buyerID)
	if pid == "" || bid == "" || originalPrice < 0 || proposedPrice < 0 {
		return nil, ErrInvalidRequest
	}
	return &Request{
		ProductID:     pid,
		BuyerID:       bid,
		OriginalPrice: originalPrice,
		ProposedPrice: proposedPrice,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Resubmit overwrites the core fields and forces the record back to
// pending. Available from every state, including terminal ones: a buyer
// resubmitting overrides a prior approval or rejection, so the stale
// approvedPrice and transition timestamps are cleared.
func (r *Request) Resubmit(originalPrice, proposedPrice float64, now time.Time) error {
	if r == nil || originalPrice < 0 || proposedPrice < 0 {
		return ErrInvalidRequest
	}
	r.OriginalPrice = originalPrice
	r.ProposedPrice = proposedPrice
	r.Status = StatusPending
	r.ApprovedPrice = nil
	r.ApprovedAt = nil
	r.RejectedAt = nil
	r.UpdatedAt = now
	return nil
}

// ResolveDisplayPrice returns the price the buyer should see for basePrice
// given rec. Only an approved record with a concrete approvedPrice changes
// the displayed price; pending and rejected records never do. rec may be
// nil (no negotiation exists).
func ResolveDisplayPrice(basePrice float64, rec *Request) float64 {
	if rec == nil {
		return basePrice
	}
	if rec.Status == StatusApproved && rec.ApprovedPrice != nil {
		return *rec.ApprovedPrice
	}
	return basePrice
}
