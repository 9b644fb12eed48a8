// internal/application/query/catalog_query_test.go
package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora/internal/domain/catalog"
)

type fakeProductRepo struct {
	items map[catalog.Category][]catalog.Item
	err   error
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, c catalog.Category) ([]catalog.Item, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items[c], nil
}

type prefixImageResolver struct{}

func (prefixImageResolver) ResolveURL(_ context.Context, objectPath string) (string, error) {
	return "https://storage.googleapis.com/velora-product-images/" + objectPath, nil
}

func watchRepo(items ...catalog.Item) *fakeProductRepo {
	return &fakeProductRepo{items: map[catalog.Category][]catalog.Item{catalog.CategoryWatches: items}}
}

func TestQueryEndToEndBestsellers(t *testing.T) {
	// prices [100, 50, 300, 50, 200], salesCount [1, 5, 2, 5, 3]:
	// stable salesCount-descending yields prices [50, 50, 200, 300, 100].
	repo := watchRepo(
		catalog.Item{ID: "i0", Price: 100, SalesCount: 1},
		catalog.Item{ID: "i1", Price: 50, SalesCount: 5},
		catalog.Item{ID: "i2", Price: 300, SalesCount: 2},
		catalog.Item{ID: "i3", Price: 50, SalesCount: 5},
		catalog.Item{ID: "i4", Price: 200, SalesCount: 3},
	)
	q := NewCatalogQuery(repo, catalog.Engine{}, nil)

	got, err := q.Query(context.Background(), catalog.CategoryWatches, catalog.NewSelection(), catalog.SortBestsellers, catalog.ViewAll)
	require.NoError(t, err)

	prices := make([]float64, len(got))
	for i, it := range got {
		prices[i] = it.Price
	}
	assert.Equal(t, []float64{50, 50, 200, 300, 100}, prices)
}

func TestQueryAppliesFacetsAndPriceBound(t *testing.T) {
	repo := watchRepo(
		catalog.Item{ID: "a", Price: 120, Attributes: map[string]string{"dialColor": "Black"}},
		catalog.Item{ID: "b", Price: 120, Attributes: map[string]string{"dialColor": "Gold"}},
		catalog.Item{ID: "c", Price: 900, Attributes: map[string]string{"dialColor": "Black"}},
	)
	q := NewCatalogQuery(repo, catalog.Engine{}, nil)

	sel := catalog.NewSelection()
	sel.Toggle("dialColor", "Black")
	sel.SetPriceMax(500)

	got, err := q.Query(context.Background(), catalog.CategoryWatches, sel, catalog.SortBestsellers, catalog.ViewAll)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestQueryEmptyResultIsValid(t *testing.T) {
	q := NewCatalogQuery(watchRepo(), catalog.Engine{}, nil)

	got, err := q.Query(context.Background(), catalog.CategoryWatches, catalog.NewSelection(), catalog.SortNewest, catalog.ViewAll)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQueryPropagatesRepoError(t *testing.T) {
	repoErr := errors.New("firestore unavailable")
	q := NewCatalogQuery(&fakeProductRepo{err: repoErr}, catalog.Engine{}, nil)

	_, err := q.Query(context.Background(), catalog.CategoryWatches, catalog.NewSelection(), catalog.SortNewest, catalog.ViewAll)
	assert.ErrorIs(t, err, repoErr)
}

func TestQueryNormalizesRecords(t *testing.T) {
	repo := watchRepo(
		catalog.Item{ID: "a", Price: 10, Image: "watches/a.jpg"},
	)
	q := NewCatalogQuery(repo, catalog.Engine{}, prefixImageResolver{})

	got, err := q.Query(context.Background(), catalog.CategoryWatches, catalog.NewSelection(), catalog.SortNewest, catalog.ViewAll)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, catalog.CategoryWatches, got[0].Category)
	assert.Equal(t, "https://storage.googleapis.com/velora-product-images/watches/a.jpg", got[0].Image)
	assert.Greater(t, got[0].Rating, 0.0)
	assert.Greater(t, got[0].Reviews, 0)
}

func TestSynthesizeRatingIsDeterministicAndBounded(t *testing.T) {
	r1, n1 := SynthesizeRating("prod-123")
	r2, n2 := SynthesizeRating("prod-123")
	assert.Equal(t, r1, r2)
	assert.Equal(t, n1, n2)

	for _, id := range []string{"", "a", "prod-123", "something-long-here"} {
		r, n := SynthesizeRating(id)
		assert.GreaterOrEqual(t, r, 3.5)
		assert.LessOrEqual(t, r, 5.0)
		assert.GreaterOrEqual(t, n, 12)
	}
}
