// Package server boots the storefront: configuration, the session store,
// the services, the router, and a graceful HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/shashiranjanraj/stylestore/app/routes"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/config"
	"github.com/shashiranjanraj/stylestore/pkg/kvstore"
	"github.com/shashiranjanraj/stylestore/pkg/logger"
	"github.com/shashiranjanraj/stylestore/pkg/router"
)

// Build constructs the full application router over the given store.
// Services are created exactly once here and handed to the HTTP layer
// by reference.
func Build(store kvstore.Store) (*router.Router, error) {
	deps := routes.Deps{
		Catalog:  catalog.Default(),
		Cart:     services.NewCartService(store),
		Session:  services.NewSessionService(store),
		Payments: services.NewPaymentProcessor(config.PaymentDelay()),
	}

	r := router.New()
	if err := routes.RegisterAPI(r, deps); err != nil {
		return nil, err
	}
	return r, nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	store, err := kvstore.Open()
	if err != nil {
		return fmt.Errorf("server: open store: %w", err)
	}

	r, err := Build(store)
	if err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("stylestore listening", "addr", addr, "store", config.StoreDriver())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
