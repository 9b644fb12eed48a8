// internal/adapters/in/http/store/router.go
package store

import (
	"log"
	"net/http"
)

// Deps is the buyer-facing handler set. Me-scoped handlers are expected to
// arrive already wrapped in the user-auth middleware.
type Deps struct {
	Catalog http.Handler

	Cart           http.Handler
	Negotiation    http.Handler
	Wishlist       http.Handler
	ServiceRequest http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead so a partial
// container never crashes the server.
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[store.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers buyer-facing routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	// catalog (public)
	handleSafe(mux, "/store/catalog", deps.Catalog, "Catalog")
	handleSafe(mux, "/store/catalog/", deps.Catalog, "Catalog")

	// cart
	handleSafe(mux, "/store/me/cart", deps.Cart, "Cart")
	handleSafe(mux, "/store/me/cart/", deps.Cart, "Cart")

	// negotiations
	handleSafe(mux, "/store/me/negotiations", deps.Negotiation, "Negotiation")
	handleSafe(mux, "/store/me/negotiations/", deps.Negotiation, "Negotiation")

	// wishlist
	handleSafe(mux, "/store/me/wishlist", deps.Wishlist, "Wishlist")
	handleSafe(mux, "/store/me/wishlist/", deps.Wishlist, "Wishlist")

	// service requests
	handleSafe(mux, "/store/me/service-requests", deps.ServiceRequest, "ServiceRequest")
	handleSafe(mux, "/store/me/service-requests/", deps.ServiceRequest, "ServiceRequest")
}
