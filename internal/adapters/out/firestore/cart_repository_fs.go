// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "velora/internal/domain/cart"
)

// CartRepositoryFS implements cart.Repository.
//
// Collection design:
// - collection: carts
// - docId: userId (docId is the source of truth)
// - fields: items(array), createdAt, updatedAt
//
// Writes overwrite the full document. Last writer wins; there is no
// optimistic-concurrency check.
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// GetByUserID returns (nil, nil) if not found (nil policy).
func (r *CartRepositoryFS) GetByUserID(ctx context.Context, userID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("cart_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	c := cartFromData(snap.Data())
	// docId is the source of truth even when the doc carries no id field
	c.ID = uid
	return c, nil
}

// Upsert overwrites the full doc by docId=cart.ID (= userId).
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}
	uid := strings.TrimSpace(c.ID)
	if uid == "" {
		return errors.New("cart_repository_fs: Upsert requires cart.ID (= userId) as docId")
	}

	_, err := r.col().Doc(uid).Set(ctx, cartDocFromDomain(c))
	return err
}

func (r *CartRepositoryFS) DeleteByUserID(ctx context.Context, userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("cart_repository_fs: userID is empty")
	}

	_, err := r.col().Doc(uid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	Items     []cartItemDoc `firestore:"items"`
	CreatedAt any           `firestore:"createdAt"`
	UpdatedAt any           `firestore:"updatedAt"`
}

type cartItemDoc struct {
	ID       string  `firestore:"id"`
	Name     string  `firestore:"name"`
	Price    float64 `firestore:"price"`
	Image    string  `firestore:"image"`
	Quantity int     `firestore:"quantity"`
	Category string  `firestore:"category"`
	Size     string  `firestore:"size"`
	Color    string  `firestore:"color"`
	Material string  `firestore:"material"`
}

func cartDocFromDomain(c *cartdom.Cart) cartDoc {
	items := make([]cartItemDoc, 0, len(c.Items))
	for _, it := range c.Items {
		id := strings.TrimSpace(it.ID)
		if id == "" || it.Quantity <= 0 {
			continue
		}
		items = append(items, cartItemDoc{
			ID:       id,
			Name:     it.Name,
			Price:    it.Price,
			Image:    it.Image,
			Quantity: it.Quantity,
			Category: it.Category,
			Size:     it.Size,
			Color:    it.Color,
			Material: it.Material,
		})
	}
	return cartDoc{
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// cartFromData parses document data tolerantly: malformed entries are
// skipped rather than failing the whole read.
func cartFromData(raw map[string]any) *cartdom.Cart {
	c := &cartdom.Cart{Items: []cartdom.Item{}}
	if raw == nil {
		return c
	}

	if t, ok := asTime(raw["createdAt"]); ok {
		c.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		c.UpdatedAt = t
	}

	itemsAny, ok := raw["items"].([]any)
	if !ok {
		return c
	}
	for _, v := range itemsAny {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id := strings.TrimSpace(asString(m["id"]))
		qty := asInt(m["quantity"])
		if id == "" || qty <= 0 {
			continue
		}
		cat := strings.TrimSpace(asString(m["category"]))
		if cat == "" {
			cat = cartdom.FallbackCategory
		}
		c.Items = append(c.Items, cartdom.Item{
			ID:       id,
			Name:     strings.TrimSpace(asString(m["name"])),
			Price:    asFloat(m["price"]),
			Image:    strings.TrimSpace(asString(m["image"])),
			Quantity: qty,
			Category: cat,
			Size:     strings.TrimSpace(asString(m["size"])),
			Color:    strings.TrimSpace(asString(m["color"])),
			Material: strings.TrimSpace(asString(m["material"])),
		})
	}
	return c
}
