// internal/adapters/in/http/store/handler/wishlist_handler.go
package storeHandler

import (
	"net/http"
	"strings"

	"velora/internal/adapters/in/http/middleware"
	usecase "velora/internal/application/usecase"
	wldom "velora/internal/domain/wishlist"
)

// WishlistHandler serves the authenticated wishlist endpoints.
//
//	GET  /store/me/wishlist
//	POST /store/me/wishlist/toggle   {entry}
type WishlistHandler struct {
	uc *usecase.WishlistUsecase
}

func NewWishlistHandler(uc *usecase.WishlistUsecase) http.Handler {
	return &WishlistHandler{uc: uc}
}

func (h *WishlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "wishlist handler is not configured")
		return
	}

	userID := middleware.CurrentUserID(r.Context())
	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet:
		wl, err := h.uc.List(r.Context(), userID)
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"entries": wl.Entries})

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/toggle"):
		var body wldom.Entry
		if !decodeBody(w, r, &body) {
			return
		}
		saved, wl, err := h.uc.Toggle(r.Context(), userID, body)
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"saved":   saved,
			"entries": wl.Entries,
		})

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
