// internal/adapters/out/firestore/wishlist_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	wldom "velora/internal/domain/wishlist"
)

// WishlistRepositoryFS implements wishlist.Repository.
// Same layout as carts: collection "wishlists", docId = userId, full-doc
// overwrite writes.
type WishlistRepositoryFS struct {
	Client *firestore.Client
}

func NewWishlistRepositoryFS(client *firestore.Client) *WishlistRepositoryFS {
	return &WishlistRepositoryFS{Client: client}
}

func (r *WishlistRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("wishlists")
}

// GetByUserID returns (nil, nil) if not found (nil policy).
func (r *WishlistRepositoryFS) GetByUserID(ctx context.Context, userID string) (*wldom.Wishlist, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("wishlist_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("wishlist_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	w := wishlistFromData(snap.Data())
	w.ID = uid
	return w, nil
}

func (r *WishlistRepositoryFS) Upsert(ctx context.Context, w *wldom.Wishlist) error {
	if r == nil || r.Client == nil {
		return errors.New("wishlist_repository_fs: firestore client is nil")
	}
	if w == nil {
		return errors.New("wishlist_repository_fs: wishlist is nil")
	}
	uid := strings.TrimSpace(w.ID)
	if uid == "" {
		return errors.New("wishlist_repository_fs: Upsert requires wishlist.ID (= userId) as docId")
	}

	_, err := r.col().Doc(uid).Set(ctx, w)
	return err
}

func wishlistFromData(raw map[string]any) *wldom.Wishlist {
	w := &wldom.Wishlist{Entries: []wldom.Entry{}}
	if raw == nil {
		return w
	}

	if t, ok := asTime(raw["createdAt"]); ok {
		w.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		w.UpdatedAt = t
	}

	entriesAny, ok := raw["entries"].([]any)
	if !ok {
		return w
	}
	for _, v := range entriesAny {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id := strings.TrimSpace(asString(m["id"]))
		if id == "" {
			continue
		}
		w.Entries = append(w.Entries, wldom.Entry{
			ID:       id,
			Name:     strings.TrimSpace(asString(m["name"])),
			Price:    asFloat(m["price"]),
			Image:    strings.TrimSpace(asString(m["image"])),
			Category: strings.TrimSpace(asString(m["category"])),
		})
	}
	return w
}
