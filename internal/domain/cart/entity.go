// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidCart = errors.New("cart: invalid")

// Item is one line item in a cart. ID references a catalog item; at most
// one Item per ID exists in a cart (re-adding increments Quantity).
type Item struct {
	ID       string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	Image    string  `json:"image,omitempty" firestore:"image"`
	Quantity int     `json:"quantity" firestore:"quantity"`
	Category string  `json:"category" firestore:"category"`
	Size     string  `json:"size,omitempty" firestore:"size"`
	Color    string  `json:"color,omitempty" firestore:"color"`
	Material string  `json:"material,omitempty" firestore:"material"`
}

// FallbackCategory is stored when an added item carries no category.
const FallbackCategory = "Unknown"

// Cart is one user's cart document.
//   - docId = userId (the identity provider's stable id)
//   - Items holds line items with Quantity >= 1
type Cart struct {
	// ID is the Firestore docId (= userId).
	ID string `json:"id" firestore:"id"`

	Items []Item `json:"items" firestore:"items"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New creates an empty cart doc for userID.
func New(userID string, now time.Time) (*Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrInvalidCart
	}
	return &Cart{
		ID:        uid,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Add puts it into the cart. If an item with the same ID is already
// present, only its quantity is incremented by one; the existing entry's
// fields win over the incoming ones. A new entry starts at quantity 1 and
// falls back to FallbackCategory when no category is supplied.
func (c *Cart) Add(it Item, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	id := strings.TrimSpace(it.ID)
	if id == "" {
		return ErrInvalidCart
	}

	if idx := c.indexOf(id); idx >= 0 {
		c.Items[idx].Quantity++
		c.touch(now)
		return nil
	}

	it.ID = id
	it.Quantity = 1
	if strings.TrimSpace(it.Category) == "" {
		it.Category = FallbackCategory
	}
	c.Items = append(c.Items, it)
	c.touch(now)
	return nil
}

// Remove drops the item with itemID. Removing an absent id is a no-op.
func (c *Cart) Remove(itemID string, now time.Time) {
	if c == nil {
		return
	}
	id := strings.TrimSpace(itemID)
	if idx := c.indexOf(id); idx >= 0 {
		c.Items = append(c.Items[:idx:idx], c.Items[idx+1:]...)
		c.touch(now)
	}
}

// SetQuantity replaces the item's quantity, clamped to max(0, quantity).
// A clamped result of 0 drops the entry entirely.
func (c *Cart) SetQuantity(itemID string, quantity int, now time.Time) {
	if c == nil {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		c.Remove(itemID, now)
		return
	}

	id := strings.TrimSpace(itemID)
	if idx := c.indexOf(id); idx >= 0 {
		c.Items[idx].Quantity = quantity
		c.touch(now)
	}
}

// Count is the derived total quantity. It is recomputed from Items and
// never stored as its own source of truth.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) indexOf(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}
