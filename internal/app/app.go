package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StorefrontPayments/config"
	"StorefrontPayments/internal/controller/rest"
	"StorefrontPayments/internal/controller/rest/handlers"
	"StorefrontPayments/internal/domain/order"
	"StorefrontPayments/internal/domain/payment"
	"StorefrontPayments/internal/messaging"
	order_repo "StorefrontPayments/internal/repo/order"
	"StorefrontPayments/pkg/health"
	"StorefrontPayments/pkg/logger"
	"StorefrontPayments/pkg/postgres"

	"github.com/gin-gonic/gin"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const shutdownTimeout = 10 * time.Second

// NewEngine wires repositories, provider adapters, services and routes over an open pool.
func NewEngine(cfg config.Config, pool *postgres.Postgres, publisher messaging.Publisher, checkers ...health.Checker) *gin.Engine {
	orderRepo := order_repo.NewPgOrderRepo(pool)

	adapters := NewAdapterRegistry(cfg, &http.Client{Timeout: cfg.ProviderHTTPTimeout})
	slog.Info("Payment providers configured", "providers", adapters.Configured())

	// Services
	orderService := order.NewOrderService(orderRepo)
	initService := payment.NewInitService(orderRepo, adapters, payment.InitOptions{
		PublicBaseURL: cfg.PublicBaseURL,
		Dedup:         cfg.InitDedup,
	})
	reconcileService := payment.NewReconcileService(orderRepo, adapters, publisher)

	// Handlers
	paymentHandler := handlers.NewPaymentHandler(initService)
	callbackHandler := handlers.NewCallbackHandler(reconcileService, handlers.NewCheckoutPages(cfg.StorefrontURL))
	orderHandler := handlers.NewOrderHandler(orderService)

	engine := NewGinEngine()
	rest.NewRouter(paymentHandler, callbackHandler, orderHandler, health.NewRegistry(checkers...)).SetUp(engine)
	return engine
}

func Run(cfg config.Config) {
	logger.Setup(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
	})

	if err := run(cfg); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		return fmt.Errorf("app - Run - ApplyMigrations: %w", err)
	}

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - postgres.New: %w", err)
	}
	defer pool.Close()

	publisher, publisherChecks, err := NewPublisher(ctx, cfg)
	if err != nil {
		return fmt.Errorf("app - Run - NewPublisher: %w", err)
	}
	defer func() { _ = publisher.Close() }()

	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}
	for _, c := range publisherChecks {
		checkers = append(checkers, health.Optional(c))
	}

	engine := NewEngine(cfg, pool, publisher, checkers...)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return fmt.Errorf("app - Run - ListenAndServe: %w", err)
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app - Run - server.Shutdown: %w", err)
	}

	slog.Info("Service stopped")
	return nil
}
