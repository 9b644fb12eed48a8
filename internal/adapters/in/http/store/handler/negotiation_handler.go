// internal/adapters/in/http/store/handler/negotiation_handler.go
package storeHandler

import (
	"net/http"
	"strconv"
	"strings"

	"velora/internal/adapters/in/http/middleware"
	usecase "velora/internal/application/usecase"
	negdom "velora/internal/domain/negotiation"
)

// NegotiationHandler serves the buyer side of price negotiations.
//
//	POST /store/me/negotiations                {"productId", "originalPrice", "proposedPrice"}
//	GET  /store/me/negotiations/{productId}    [?basePrice=]
type NegotiationHandler struct {
	uc *usecase.NegotiationUsecase
}

func NewNegotiationHandler(uc *usecase.NegotiationUsecase) http.Handler {
	return &NegotiationHandler{uc: uc}
}

func (h *NegotiationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "negotiation handler is not configured")
		return
	}

	buyerID := middleware.CurrentUserID(r.Context())
	path := strings.TrimRight(r.URL.Path, "/")

	switch r.Method {
	case http.MethodPost:
		h.handleSubmit(w, r, buyerID)
	case http.MethodGet:
		h.handleGet(w, r, buyerID, productIDFromPath(path))
	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func productIDFromPath(path string) string {
	if idx := strings.LastIndex(path, "/negotiations/"); idx >= 0 {
		return strings.TrimSpace(path[idx+len("/negotiations/"):])
	}
	return ""
}

func (h *NegotiationHandler) handleSubmit(w http.ResponseWriter, r *http.Request, buyerID string) {
	var body struct {
		ProductID     string  `json:"productId"`
		OriginalPrice float64 `json:"originalPrice"`
		ProposedPrice float64 `json:"proposedPrice"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	rec, err := h.uc.Submit(r.Context(), buyerID, body.ProductID, body.OriginalPrice, body.ProposedPrice)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *NegotiationHandler) handleGet(w http.ResponseWriter, r *http.Request, buyerID, productID string) {
	rec, err := h.uc.Get(r.Context(), buyerID, productID)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}

	out := map[string]any{"negotiation": rec}
	if raw := strings.TrimSpace(r.URL.Query().Get("basePrice")); raw != "" {
		if base, perr := strconv.ParseFloat(raw, 64); perr == nil {
			out["displayPrice"] = negdom.ResolveDisplayPrice(base, rec)
		}
	}
	writeJSON(w, http.StatusOK, out)
}
