// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "velora/internal/domain/cart"
)

var (
	ErrNotAuthenticated    = errors.New("usecase: not authenticated")
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
)

// CartUsecase coordinates cart mutations against the per-user cart
// document.
//
// Consistency: every mutation reads the latest known document and writes
// the whole item list back. Two concurrent sessions for the same user can
// race and the last writer wins. That is the accepted model for a
// single-user cart; do not add merge logic here.
type CartUsecase struct {
	repo  cartdom.Repository
	clock Clock
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{repo: repo, clock: systemClock{}}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, clock: clock}
}

// Get returns the user's cart; an absent document is an empty cart, not an
// error.
func (uc *CartUsecase) Get(ctx context.Context, userID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrNotAuthenticated
	}

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return cartdom.New(uid, uc.clock.Now())
	}
	return c, nil
}

// AddItem adds it to the user's cart (or increments quantity on re-add)
// and overwrites the remote document.
func (uc *CartUsecase) AddItem(ctx context.Context, userID string, it cartdom.Item) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(it.ID) == "" {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.New(uid, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Add(it, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem filters the item out and overwrites the remote item list.
func (uc *CartUsecase) RemoveItem(ctx context.Context, userID, itemID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrNotAuthenticated
	}
	id := strings.TrimSpace(itemID)
	if id == "" {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		// nothing to remove; keep the operation idempotent
		return cartdom.New(uid, now)
	}

	c.Remove(id, now)
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity clamps quantity to max(0, q); 0 drops the entry entirely.
func (uc *CartUsecase) SetQuantity(ctx context.Context, userID, itemID string, quantity int) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrNotAuthenticated
	}
	id := strings.TrimSpace(itemID)
	if id == "" {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.New(uid, now)
		if err != nil {
			return nil, err
		}
	}

	c.SetQuantity(id, quantity, now)
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
