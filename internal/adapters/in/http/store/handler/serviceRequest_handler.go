// internal/adapters/in/http/store/handler/serviceRequest_handler.go
package storeHandler

import (
	"net/http"

	"velora/internal/adapters/in/http/middleware"
	usecase "velora/internal/application/usecase"
	srdom "velora/internal/domain/servicereq"
)

// ServiceRequestHandler accepts the multi-step service-request form.
//
//	POST /store/me/service-requests   {form fields}
//	GET  /store/me/service-requests
type ServiceRequestHandler struct {
	uc *usecase.ServiceRequestUsecase
}

func NewServiceRequestHandler(uc *usecase.ServiceRequestUsecase) http.Handler {
	return &ServiceRequestHandler{uc: uc}
}

func (h *ServiceRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "service request handler is not configured")
		return
	}

	userID := middleware.CurrentUserID(r.Context())

	switch r.Method {
	case http.MethodPost:
		var body srdom.Request
		if !decodeBody(w, r, &body) {
			return
		}
		req, err := h.uc.Submit(r.Context(), userID, body)
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, req)

	case http.MethodGet:
		reqs, err := h.uc.ListByUser(r.Context(), userID)
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		if reqs == nil {
			reqs = []srdom.Request{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"requests": reqs})

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
