// internal/application/usecase/negotiation_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	negdom "velora/internal/domain/negotiation"
)

var ErrNegotiationInvalidArgument = errors.New("negotiation_usecase: invalid argument")

// NegotiationUsecase runs the buyer side of the price negotiation
// workflow. Approve/reject transitions happen in seller tooling and are
// only observed here, via Get and Watch.
type NegotiationUsecase struct {
	repo  negdom.Repository
	clock Clock
}

func NewNegotiationUsecase(repo negdom.Repository) *NegotiationUsecase {
	return &NegotiationUsecase{repo: repo, clock: systemClock{}}
}

// NewNegotiationUsecaseWithClock is useful for tests.
func NewNegotiationUsecaseWithClock(repo negdom.Repository, clock Clock) *NegotiationUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &NegotiationUsecase{repo: repo, clock: clock}
}

// Submit creates the pair's record in pending, or overwrites an existing
// one (any state) and forces it back to pending.
func (uc *NegotiationUsecase) Submit(ctx context.Context, buyerID, productID string, originalPrice, proposedPrice float64) (*negdom.Request, error) {
	bid := strings.TrimSpace(buyerID)
	if bid == "" {
		return nil, ErrNotAuthenticated
	}
	pid := strings.TrimSpace(productID)
	if pid == "" || originalPrice < 0 || proposedPrice < 0 {
		return nil, ErrNegotiationInvalidArgument
	}

	now := uc.clock.Now()

	rec, err := uc.repo.Get(ctx, pid, bid)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec, err = negdom.NewRequest(pid, bid, originalPrice, proposedPrice, now)
		if err != nil {
			return nil, err
		}
	} else if err := rec.Resubmit(originalPrice, proposedPrice, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the pair's record, or (nil, nil) when none exists.
func (uc *NegotiationUsecase) Get(ctx context.Context, buyerID, productID string) (*negdom.Request, error) {
	bid := strings.TrimSpace(buyerID)
	if bid == "" {
		return nil, ErrNotAuthenticated
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return nil, ErrNegotiationInvalidArgument
	}
	return uc.repo.Get(ctx, pid, bid)
}

// DisplayPrice resolves the effective price for basePrice given the
// pair's current record.
func (uc *NegotiationUsecase) DisplayPrice(ctx context.Context, buyerID, productID string, basePrice float64) (float64, error) {
	rec, err := uc.Get(ctx, buyerID, productID)
	if err != nil {
		return basePrice, err
	}
	return negdom.ResolveDisplayPrice(basePrice, rec), nil
}

// Watch streams the pair's record changes to fn until ctx is cancelled.
// Multiple independent watches on the same pair are supported.
func (uc *NegotiationUsecase) Watch(ctx context.Context, buyerID, productID string, fn negdom.WatchFunc) error {
	bid := strings.TrimSpace(buyerID)
	if bid == "" {
		return ErrNotAuthenticated
	}
	pid := strings.TrimSpace(productID)
	if pid == "" || fn == nil {
		return ErrNegotiationInvalidArgument
	}
	return uc.repo.Watch(ctx, pid, bid, fn)
}
