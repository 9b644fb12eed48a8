// internal/application/usecase/wishlist_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	wldom "velora/internal/domain/wishlist"
)

var ErrWishlistInvalidArgument = errors.New("wishlist_usecase: invalid argument")

// WishlistUsecase mirrors the cart's auth rule and whole-document
// overwrite semantics for the per-user wishlist.
type WishlistUsecase struct {
	repo  wldom.Repository
	clock Clock
}

func NewWishlistUsecase(repo wldom.Repository) *WishlistUsecase {
	return &WishlistUsecase{repo: repo, clock: systemClock{}}
}

// NewWishlistUsecaseWithClock is useful for tests.
func NewWishlistUsecaseWithClock(repo wldom.Repository, clock Clock) *WishlistUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &WishlistUsecase{repo: repo, clock: clock}
}

// Toggle adds the entry when absent and removes it when present. It
// reports whether the entry is saved after the call.
func (uc *WishlistUsecase) Toggle(ctx context.Context, userID string, e wldom.Entry) (bool, *wldom.Wishlist, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return false, nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(e.ID) == "" {
		return false, nil, ErrWishlistInvalidArgument
	}

	now := uc.clock.Now()

	w, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return false, nil, err
	}
	if w == nil {
		w, err = wldom.New(uid, now)
		if err != nil {
			return false, nil, err
		}
	}

	saved, err := w.Toggle(e, now)
	if err != nil {
		return false, nil, err
	}
	if err := uc.repo.Upsert(ctx, w); err != nil {
		return false, nil, err
	}
	return saved, w, nil
}

// List returns the user's wishlist; an absent document is an empty list.
func (uc *WishlistUsecase) List(ctx context.Context, userID string) (*wldom.Wishlist, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrNotAuthenticated
	}

	w, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return wldom.New(uid, uc.clock.Now())
	}
	return w, nil
}
