// internal/platform/di/store/container.go
package store

import (
	"context"
	"errors"
	"log"
	"net/http"

	"velora/internal/adapters/in/http/middleware"
	storeroutes "velora/internal/adapters/in/http/store"
	storeHandler "velora/internal/adapters/in/http/store/handler"
	fs "velora/internal/adapters/out/firestore"
	"velora/internal/adapters/out/gcs"
	"velora/internal/adapters/out/mail"
	query "velora/internal/application/query"
	usecase "velora/internal/application/usecase"
	"velora/internal/domain/catalog"
	shared "velora/internal/platform/di/shared"
)

// Container wires the storefront feature set on top of shared infra.
type Container struct {
	Infra *shared.Infra

	CatalogQuery *query.CatalogQuery

	CartUsecase           *usecase.CartUsecase
	NegotiationUsecase    *usecase.NegotiationUsecase
	WishlistUsecase       *usecase.WishlistUsecase
	ServiceRequestUsecase *usecase.ServiceRequestUsecase

	Handler http.Handler
}

// New builds all repositories, usecases and handlers and returns the
// container with the ready-to-mount root handler.
func New(ctx context.Context, inf *shared.Infra) (*Container, error) {
	if inf == nil || inf.Firestore == nil {
		return nil, errors.New("di.store: infra is nil or missing firestore")
	}
	cfg := inf.Config

	c := &Container{Infra: inf}

	// ---- out adapters ----
	productRepo := fs.NewProductRepositoryFS(inf.Firestore)
	cartRepo := fs.NewCartRepositoryFS(inf.Firestore)
	negotiationRepo := fs.NewNegotiationRepositoryFS(inf.Firestore)
	wishlistRepo := fs.NewWishlistRepositoryFS(inf.Firestore)
	serviceReqRepo := fs.NewServiceRequestRepositoryFS(inf.Firestore)

	var images query.ImageResolver
	if inf.GCS != nil && cfg.ProductImageBucket != "" {
		images = gcs.NewProductImageRepositoryGCS(inf.GCS, cfg.ProductImageBucket)
	} else {
		log.Printf("[di.store] image resolution disabled (no GCS client or bucket)")
	}

	var mailer usecase.Mailer
	if cfg.SendGridSecretName != "" && inf.SecretManager != nil {
		apiKey, err := resolveSecret(ctx, inf.SecretManager, inf.ProjectID, cfg.SendGridSecretName)
		if err != nil {
			log.Printf("[di.store] WARN: sendgrid key resolution failed: %v (mail disabled)", err)
		} else {
			mailer = mail.NewSendGridClient(apiKey)
			log.Printf("[di.store] SendGrid mailer initialized")
		}
	} else {
		log.Printf("[di.store] mail disabled (SENDGRID_SECRET_NAME empty or no SecretManager client)")
	}

	// ---- application ----
	engine := catalog.Engine{ProjectSellerID: cfg.ProjectSellerID}
	c.CatalogQuery = query.NewCatalogQuery(productRepo, engine, images)

	c.CartUsecase = usecase.NewCartUsecase(cartRepo)
	c.NegotiationUsecase = usecase.NewNegotiationUsecase(negotiationRepo)
	c.WishlistUsecase = usecase.NewWishlistUsecase(wishlistRepo)
	c.ServiceRequestUsecase = usecase.NewServiceRequestUsecase(serviceReqRepo, mailer, cfg.MailFromAddress)

	// ---- in adapters ----
	userAuth := &middleware.UserAuthMiddleware{FirebaseAuth: inf.FirebaseAuth}
	authed := func(h http.Handler) http.Handler { return userAuth.Handler(h) }

	mux := http.NewServeMux()
	storeroutes.Register(mux, storeroutes.Deps{
		Catalog:        storeHandler.NewCatalogHandler(c.CatalogQuery),
		Cart:           authed(storeHandler.NewCartHandler(c.CartUsecase)),
		Negotiation:    authed(storeHandler.NewNegotiationHandler(c.NegotiationUsecase)),
		Wishlist:       authed(storeHandler.NewWishlistHandler(c.WishlistUsecase)),
		ServiceRequest: authed(storeHandler.NewServiceRequestHandler(c.ServiceRequestUsecase)),
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	c.Handler = middleware.CORS(middleware.Recover(mux))
	return c, nil
}
