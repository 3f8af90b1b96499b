// Package server wires every component together at startup. All store
// and provider handles are constructed here and passed down explicitly;
// nothing reaches for a global connection.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shashiranjanraj/gearbay/app/controllers"
	"github.com/shashiranjanraj/gearbay/app/graph"
	"github.com/shashiranjanraj/gearbay/app/repositories"
	"github.com/shashiranjanraj/gearbay/app/routes"
	"github.com/shashiranjanraj/gearbay/app/services"
	"github.com/shashiranjanraj/gearbay/config"
	"github.com/shashiranjanraj/gearbay/pkg/cache"
	"github.com/shashiranjanraj/gearbay/pkg/logger"
	"github.com/shashiranjanraj/gearbay/pkg/metrics"
	"github.com/shashiranjanraj/gearbay/pkg/middleware"
	"github.com/shashiranjanraj/gearbay/pkg/payments"
	"github.com/shashiranjanraj/gearbay/pkg/reqid"
	"github.com/shashiranjanraj/gearbay/pkg/router"
	"github.com/shashiranjanraj/gearbay/pkg/schedule"
	"github.com/shashiranjanraj/gearbay/pkg/storage"
	"github.com/shashiranjanraj/gearbay/pkg/store"
	"github.com/shashiranjanraj/gearbay/pkg/ws"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

// App holds the running service and its store handle.
type App struct {
	srv *http.Server
	db  *store.DB
}

// New builds the whole application: config, connections, repositories,
// services, controllers, routes.
func New() (*App, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := store.Connect(ctx, config.MongoURI(), config.MongoDB())
	if err != nil {
		return nil, err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, running without it", "error", err)
	}
	storage.Connect()

	// Repositories over the shared store handle.
	users := repositories.NewUserRepository(db)
	parts := repositories.NewPartRepository(db)
	orders := repositories.NewOrderRepository(db)
	paymentRecords := repositories.NewPaymentRepository(db)
	content := repositories.NewContentRepository(db)

	// Services.
	authSvc := services.NewAuthService(users)
	catalogSvc := services.NewCatalogService(parts)
	orderSvc := services.NewOrderService(orders)
	paymentSvc := services.NewPaymentService(
		paymentRecords, orderSvc,
		payments.NewStripeClient(config.StripeSecretKey()), db)

	// Keep the public catalog listing warm.
	schedule.Every(5).Minutes().Name("catalog.warm").Run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if _, err := catalogSvc.List(ctx, true); err != nil {
			logger.Warn("catalog cache warm failed", "error", err)
		}
	})

	// Admin order feed.
	feed := ws.NewFeed()
	feed.ListenOrderEvents()
	go feed.Run()

	schema, err := graph.NewSchema(catalogSvc)
	if err != nil {
		return nil, err
	}

	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions(config.CORSOrigins())),
		middleware.RateLimit(300, time.Minute),
		metrics.Middleware(),
	)

	routes.RegisterAPI(r, routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Catalog:  controllers.NewCatalogController(catalogSvc),
		Orders:   controllers.NewOrderController(orderSvc, authSvc),
		Payments: controllers.NewPaymentController(paymentSvc),
		Content:  controllers.NewContentController(content),
		Uploads:  controllers.NewUploadController(storage.Default()),
	}, authSvc, feed, graph.Handler(schema))

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{srv: srv, db: db}, nil
}

// Run serves until ctx is canceled, then drains in-flight requests and
// releases the store connection.
func (a *App) Run(ctx context.Context) error {
	schedule.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gearbay listening", "addr", a.srv.Addr, "env", config.AppEnv())
		if err := a.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := a.db.Disconnect(shutdownCtx); err != nil {
		logger.Warn("store disconnect", "error", err)
	}
	return <-errCh
}

// Start is the convenience entrypoint used by the serve command: build
// the app and run it until an interrupt arrives.
func Start(ctx context.Context) error {
	app, err := New()
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
