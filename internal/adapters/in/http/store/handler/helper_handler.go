// internal/adapters/in/http/store/handler/helper_handler.go
package storeHandler

import (
	"encoding/json"
	"errors"
	"net/http"

	usecase "velora/internal/application/usecase"
	cartdom "velora/internal/domain/cart"
	negdom "velora/internal/domain/negotiation"
	srdom "velora/internal/domain/servicereq"
	wldom "velora/internal/domain/wishlist"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUsecaseErr maps usecase/domain errors onto the storefront error
// taxonomy: 401 not authenticated, 400 invalid argument, 503 remote
// store failure (the user retries manually; nothing is retried here).
func writeUsecaseErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		writeErr(w, http.StatusUnauthorized, "sign in required")
	case errors.Is(err, usecase.ErrCartInvalidArgument),
		errors.Is(err, usecase.ErrNegotiationInvalidArgument),
		errors.Is(err, usecase.ErrWishlistInvalidArgument),
		errors.Is(err, cartdom.ErrInvalidCart),
		errors.Is(err, negdom.ErrInvalidRequest),
		errors.Is(err, wldom.ErrInvalidWishlist),
		errors.Is(err, srdom.ErrInvalidRequest):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		writeErr(w, http.StatusServiceUnavailable, "store temporarily unavailable, please retry")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
