// internal/domain/wishlist/entity.go
package wishlist

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidWishlist = errors.New("wishlist: invalid")

// Entry is one saved catalog item.
type Entry struct {
	ID       string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	Image    string  `json:"image,omitempty" firestore:"image"`
	Category string  `json:"category" firestore:"category"`
}

// Wishlist is one user's wishlist document (docId = userId).
type Wishlist struct {
	ID        string    `json:"id" firestore:"id"`
	Entries   []Entry   `json:"entries" firestore:"entries"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New creates an empty wishlist for userID.
func New(userID string, now time.Time) (*Wishlist, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrInvalidWishlist
	}
	return &Wishlist{
		ID:        uid,
		Entries:   []Entry{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Toggle adds e when absent and removes it when present (by catalog id).
// It reports whether the entry is present after the call.
func (w *Wishlist) Toggle(e Entry, now time.Time) (bool, error) {
	if w == nil {
		return false, ErrInvalidWishlist
	}
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return false, ErrInvalidWishlist
	}

	for i, cur := range w.Entries {
		if cur.ID == id {
			w.Entries = append(w.Entries[:i:i], w.Entries[i+1:]...)
			w.UpdatedAt = now
			return false, nil
		}
	}

	e.ID = id
	w.Entries = append(w.Entries, e)
	w.UpdatedAt = now
	return true, nil
}

// Contains reports whether the catalog id is saved.
func (w *Wishlist) Contains(id string) bool {
	if w == nil {
		return false
	}
	for _, e := range w.Entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Repository persists wishlists with the same whole-document overwrite
// semantics as the cart.
type Repository interface {
	// GetByUserID returns (nil, nil) when no document exists.
	GetByUserID(ctx context.Context, userID string) (*Wishlist, error)
	Upsert(ctx context.Context, w *Wishlist) error
}
