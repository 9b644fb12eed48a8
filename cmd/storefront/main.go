// cmd/storefront/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	appcfg "velora/internal/infra/config"
	shared "velora/internal/platform/di/shared"
	distore "velora/internal/platform/di/store"
)

// atomicHandler lets the server start answering /healthz immediately and
// swap in the full application handler once DI finishes.
type atomicHandler struct {
	v atomic.Value // http.Handler
}

func (a *atomicHandler) Store(h http.Handler) {
	if h == nil {
		h = http.NotFoundHandler()
	}
	a.v.Store(h)
}

func (a *atomicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, _ := a.v.Load().(http.Handler)
	if h == nil {
		http.Error(w, "starting", http.StatusServiceUnavailable)
		return
	}
	h.ServeHTTP(w, r)
}

func bootMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "starting", http.StatusServiceUnavailable)
	})
	return mux
}

func main() {
	log.Printf("[main] storefront booting pid=%d", os.Getpid())

	cfg := appcfg.Load()
	addr := ":" + cfg.Port

	root := &atomicHandler{}
	root.Store(bootMux())

	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Serve /healthz before DI so the platform health check passes
	// while clients are still connecting.
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[main] listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var inf *shared.Infra
	go func() {
		buildCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()

		i, err := shared.NewInfra(buildCtx)
		if err != nil {
			log.Printf("[main] FATAL: infra init failed: %v", err)
			stop()
			return
		}
		inf = i

		c, err := distore.New(buildCtx, inf)
		if err != nil {
			log.Printf("[main] FATAL: container build failed: %v", err)
			stop()
			return
		}

		root.Store(c.Handler)
		log.Printf("[main] application handler mounted")
	}()

	select {
	case <-ctx.Done():
		log.Printf("[main] shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Printf("[main] server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] WARN: shutdown: %v", err)
	}
	if inf != nil {
		_ = inf.Close()
	}
	log.Printf("[main] bye")
}
