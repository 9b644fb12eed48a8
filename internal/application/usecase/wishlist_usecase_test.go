// internal/application/usecase/wishlist_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wldom "velora/internal/domain/wishlist"
)

type fakeWishlistRepo struct {
	docs map[string]*wldom.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{docs: map[string]*wldom.Wishlist{}}
}

func (r *fakeWishlistRepo) GetByUserID(_ context.Context, userID string) (*wldom.Wishlist, error) {
	w, ok := r.docs[userID]
	if !ok {
		return nil, nil
	}
	cp := *w
	cp.Entries = append([]wldom.Entry(nil), w.Entries...)
	return &cp, nil
}

func (r *fakeWishlistRepo) Upsert(_ context.Context, w *wldom.Wishlist) error {
	cp := *w
	cp.Entries = append([]wldom.Entry(nil), w.Entries...)
	r.docs[w.ID] = &cp
	return nil
}

func TestWishlistToggleAddsThenRemoves(t *testing.T) {
	uc := NewWishlistUsecaseWithClock(newFakeWishlistRepo(), fixedClock{testNow})
	entry := wldom.Entry{ID: "w-1", Name: "Diver 200", Price: 450, Category: "watches"}

	saved, w, err := uc.Toggle(context.Background(), "u1", entry)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, w.Contains("w-1"))

	saved, w, err = uc.Toggle(context.Background(), "u1", entry)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, w.Contains("w-1"))
	assert.Empty(t, w.Entries)
}

func TestWishlistRequiresUser(t *testing.T) {
	uc := NewWishlistUsecaseWithClock(newFakeWishlistRepo(), fixedClock{testNow})

	_, _, err := uc.Toggle(context.Background(), "", wldom.Entry{ID: "x"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = uc.List(context.Background(), " ")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestWishlistListAbsentIsEmpty(t *testing.T) {
	uc := NewWishlistUsecaseWithClock(newFakeWishlistRepo(), fixedClock{testNow})

	w, err := uc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, w.Entries)
}
