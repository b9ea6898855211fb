// Package server boots the HTTP service: configuration, database, schema,
// cache, storage, live feed, and finally the listener. Optional backends
// (Redis, Mongo log sink, S3) degrade to warnings; the database does not.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/printfarmlabs/stockpile/app/controllers"
	"github.com/printfarmlabs/stockpile/app/repositories"
	"github.com/printfarmlabs/stockpile/app/routes"
	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/config"
	"github.com/printfarmlabs/stockpile/pkg/cache"
	"github.com/printfarmlabs/stockpile/pkg/database"
	"github.com/printfarmlabs/stockpile/pkg/logger"
	"github.com/printfarmlabs/stockpile/pkg/metrics"
	"github.com/printfarmlabs/stockpile/pkg/middleware"
	"github.com/printfarmlabs/stockpile/pkg/migration"
	"github.com/printfarmlabs/stockpile/pkg/reqid"
	"github.com/printfarmlabs/stockpile/pkg/router"
	"github.com/printfarmlabs/stockpile/pkg/storage"
	"github.com/printfarmlabs/stockpile/pkg/ws"
)

// Start boots everything and blocks until SIGINT/SIGTERM, then drains
// in-flight requests.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	sink, err := logger.EnableMongoSink()
	if err != nil {
		logger.Warn("mongo log sink disabled", "error", err)
	}
	if sink != nil {
		defer sink.Close()
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	runner := migration.New(db)
	if err := runner.Run(); err != nil {
		return err
	}

	storage.Connect()
	if err := cache.Connect(); err != nil {
		logger.Warn("cache disabled", "error", err)
	}

	feed := ws.NewHub()
	go feed.Run()

	skuRepo := repositories.NewSKURepository(db)
	stockRepo := repositories.NewStockRepository(db)

	catalogSvc := services.NewCatalogService(skuRepo)
	ledgerSvc := services.NewLedgerService(db, stockRepo, skuRepo, config.LedgerRequireSKU(), feed)
	authenticator := services.NewSharedSecretAuthenticator()

	r := router.New()
	r.Use(
		reqid.Middleware(),
		metrics.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)

	routes.RegisterAPI(r,
		controllers.NewAuthController(authenticator),
		controllers.NewCatalogController(catalogSvc),
		controllers.NewLedgerController(ledgerSvc, feed),
	)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
