// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "velora/internal/domain/cart"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

// fakeCartRepo stores whole documents, mirroring the overwrite semantics
// of the Firestore adapter.
type fakeCartRepo struct {
	docs    map[string]*cartdom.Cart
	failing bool
	upserts int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{docs: map[string]*cartdom.Cart{}}
}

var errRemote = errors.New("remote unavailable")

func (r *fakeCartRepo) GetByUserID(_ context.Context, userID string) (*cartdom.Cart, error) {
	if r.failing {
		return nil, errRemote
	}
	c, ok := r.docs[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append([]cartdom.Item(nil), c.Items...)
	return &cp, nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, c *cartdom.Cart) error {
	if r.failing {
		return errRemote
	}
	r.upserts++
	cp := *c
	cp.Items = append([]cartdom.Item(nil), c.Items...)
	r.docs[c.ID] = &cp
	return nil
}

func (r *fakeCartRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(r.docs, userID)
	return nil
}

func TestCartAddItemTwiceYieldsOneEntryWithQuantityTwo(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecaseWithClock(repo, fixedClock{testNow})

	it := cartdom.Item{ID: "w-1", Name: "Diver 200", Price: 450, Category: "watches"}

	_, err := uc.AddItem(context.Background(), "buyer@example.com", it)
	require.NoError(t, err)
	c, err := uc.AddItem(context.Background(), "buyer@example.com", it)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, cartdom.Count(c.Items))

	// the full list was written back on each mutation
	assert.Equal(t, 2, repo.upserts)
	assert.Equal(t, 2, repo.docs["buyer@example.com"].Items[0].Quantity)
}

func TestCartMutationsRequireUser(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecaseWithClock(repo, fixedClock{testNow})

	_, err := uc.AddItem(context.Background(), "", cartdom.Item{ID: "x"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = uc.RemoveItem(context.Background(), " ", "x")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = uc.SetQuantity(context.Background(), "", "x", 2)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Zero(t, repo.upserts)
}

func TestCartSetQuantityZeroRemovesEntry(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecaseWithClock(repo, fixedClock{testNow})

	_, err := uc.AddItem(context.Background(), "u1", cartdom.Item{ID: "a", Price: 10})
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), "u1", cartdom.Item{ID: "b", Price: 20})
	require.NoError(t, err)

	c, err := uc.SetQuantity(context.Background(), "u1", "a", 0)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ID)
	assert.Equal(t, 1, cartdom.Count(c.Items))
}

func TestCartRemoveItem(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecaseWithClock(repo, fixedClock{testNow})

	_, err := uc.AddItem(context.Background(), "u1", cartdom.Item{ID: "a", Price: 10})
	require.NoError(t, err)

	c, err := uc.RemoveItem(context.Background(), "u1", "a")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	// removing from an absent cart stays idempotent
	c, err = uc.RemoveItem(context.Background(), "fresh-user", "a")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestCartGetAbsentDocumentIsEmptyCart(t *testing.T) {
	uc := NewCartUsecaseWithClock(newFakeCartRepo(), fixedClock{testNow})

	c, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, "u1", c.ID)
}

func TestCartRemoteFailureLeavesStateUnchanged(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecaseWithClock(repo, fixedClock{testNow})

	_, err := uc.AddItem(context.Background(), "u1", cartdom.Item{ID: "a", Price: 10})
	require.NoError(t, err)

	repo.failing = true
	_, err = uc.AddItem(context.Background(), "u1", cartdom.Item{ID: "b", Price: 20})
	require.ErrorIs(t, err, errRemote)

	repo.failing = false
	c, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "a", c.Items[0].ID)
}
