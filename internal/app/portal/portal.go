// Package portal assembles the billing portal: the collaborator client,
// the Redis snapshot cache, the session token maker and the HTTP server.
package portal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/billing-portal/internal/cache"
	"github.com/magabrotheeeer/billing-portal/internal/collaborator"
	"github.com/magabrotheeeer/billing-portal/internal/config"
	jwtlib "github.com/magabrotheeeer/billing-portal/internal/lib/jwt"
	"github.com/magabrotheeeer/billing-portal/internal/services"
)

// App owns the HTTP server and the long-lived clients behind it.
type App struct {
	server *http.Server
	logger *slog.Logger
	cache  *cache.Cache
}

// New wires every layer of the portal and returns a ready-to-run App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	api := collaborator.New(cfg.BaseURL, cfg.CollaboratorAPI.Timeout)

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	maker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	ttl := cfg.SnapshotTTL
	planService := services.NewPlanService(api, cacheRedis, ttl, logger)
	userService := services.NewUserService(api, cacheRedis, ttl, logger)
	subscriptionService := services.NewSubscriptionService(api, planService, cacheRedis, ttl, logger)
	invoiceService := services.NewInvoiceService(api, cacheRedis, ttl, logger)
	auditService := services.NewAuditService(api, logger)
	authService := services.NewAuthService(api, maker, logger)
	dashboardService := services.NewDashboardService(
		userService, planService, subscriptionService, invoiceService, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:          authService,
		Dashboard:     dashboardService,
		Plans:         planService,
		Users:         userService,
		Subscriptions: subscriptionService,
		Invoices:      invoiceService,
		Audit:         auditService,
		TokenParser:   maker,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		cache:  cacheRedis,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.cache.Db.Close(); closeErr != nil {
			a.logger.Warn("failed to close redis client", slog.Any("err", closeErr))
		}
		return err
	}
}
