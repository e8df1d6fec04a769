package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/storefront_totals/internal/adapters/storeapi"
	portsrepo "github.com/SscSPs/storefront_totals/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_totals/internal/core/services"
	"github.com/SscSPs/storefront_totals/internal/handlers"
	"github.com/SscSPs/storefront_totals/internal/middleware"
	"github.com/SscSPs/storefront_totals/internal/platform/config"
	"github.com/SscSPs/storefront_totals/internal/platform/metrics"
	"github.com/SscSPs/storefront_totals/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Storefront Totals API
// @version 1.0
// @description Composes cart totals, line items and currency descriptors from Store API responses.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("storefront", registry)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	storeClient := storeapi.NewClient(cfg.StoreAPIURL, cfg.StoreAPITimeout,
		storeapi.WithStateObserver(func(target, from, to string, state int) {
			logger.Warn("Store API breaker state changed",
				slog.String("target", target), slog.String("from", from), slog.String("to", to))
			m.ObserveBreakerChange(target, from, to, state)
		}),
	)
	repos := portsrepo.RepositoryProvider{
		CartRepo: storeapi.NewCartRepository(storeClient),
	}

	container, err := services.NewServiceContainer(cfg, repos, posthogClient,
		services.WithFilterLogger(logger),
		services.WithFallbackObserver(m.ObserveFilterFallback),
	)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.Metrics(m),
		middleware.RateLimit(limiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, registry)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}
