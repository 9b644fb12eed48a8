// internal/adapters/in/http/store/handler/cart_handler.go
package storeHandler

import (
	"net/http"
	"strings"

	"velora/internal/adapters/in/http/middleware"
	usecase "velora/internal/application/usecase"
	cartdom "velora/internal/domain/cart"
)

// CartHandler serves the authenticated cart endpoints.
//
//	GET    /store/me/cart
//	POST   /store/me/cart/items            {item}
//	PUT    /store/me/cart/items/{id}       {"quantity": n}
//	DELETE /store/me/cart/items/{id}
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	userID := middleware.CurrentUserID(r.Context())
	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet:
		h.handleGet(w, r, userID)

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/items"):
		h.handleAdd(w, r, userID)

	case r.Method == http.MethodPut:
		h.handleSetQuantity(w, r, userID, itemIDFromPath(path))

	case r.Method == http.MethodDelete:
		h.handleRemove(w, r, userID, itemIDFromPath(path))

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func itemIDFromPath(path string) string {
	if idx := strings.LastIndex(path, "/items/"); idx >= 0 {
		return strings.TrimSpace(path[idx+len("/items/"):])
	}
	return ""
}

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request, userID string) {
	c, err := h.uc.Get(r.Context(), userID)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeCart(w, c)
}

func (h *CartHandler) handleAdd(w http.ResponseWriter, r *http.Request, userID string) {
	var body cartdom.Item
	if !decodeBody(w, r, &body) {
		return
	}

	c, err := h.uc.AddItem(r.Context(), userID, body)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeCart(w, c)
}

func (h *CartHandler) handleSetQuantity(w http.ResponseWriter, r *http.Request, userID, itemID string) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	c, err := h.uc.SetQuantity(r.Context(), userID, itemID, body.Quantity)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeCart(w, c)
}

func (h *CartHandler) handleRemove(w http.ResponseWriter, r *http.Request, userID, itemID string) {
	c, err := h.uc.RemoveItem(r.Context(), userID, itemID)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeCart(w, c)
}

func writeCart(w http.ResponseWriter, c *cartdom.Cart) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items": c.Items,
		"count": cartdom.Count(c.Items),
	})
}
