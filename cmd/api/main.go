package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	_ "github.com/ghuser/electrocart/docs/swagger"
	"github.com/ghuser/electrocart/pkg/app"
	"github.com/ghuser/electrocart/pkg/cache"
	"github.com/ghuser/electrocart/pkg/config"
	"github.com/ghuser/electrocart/pkg/events"
	"github.com/ghuser/electrocart/pkg/httpx"
	"github.com/ghuser/electrocart/pkg/logger"
	"github.com/ghuser/electrocart/pkg/telemetry"
	receiptApi "github.com/ghuser/electrocart/services/item/application/api"
	itemEvents "github.com/ghuser/electrocart/services/item/domain/events"
)

// @title					ElectroCart API
// @version				1.0
// @description			Builds electronics carts with nested extras and renders fixed-width receipts.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	metrics, err := telemetry.NewReceiptMetrics(otel.GetMeterProvider())
	if err != nil {
		log.Error("failed to register receipt metrics", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	receiptCache, err := cache.Open(ctx, cfg.RedisURL, cfg.ReceiptCacheTTL)
	if err != nil {
		log.Error("failed to open receipt cache", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer receiptCache.Close() //nolint:errcheck
	log.Info("receipt cache ready", "backend", receiptCache.Name, "ttl", cfg.ReceiptCacheTTL)

	appConfig := &app.Application{
		Logger:   log,
		EventBus: eventBus,
		Cache:    receiptCache,
		Metrics:  metrics,
		Receipts: app.ReceiptSettings{
			Width:           cfg.ReceiptWidth,
			StrictOverrides: cfg.StrictOverrides,
			IsProduction:    cfg.Environment == config.EnvProduction,
		},
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RequestsPerMinute:  cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Cache:    receiptCache,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	receiptApi.ReceiptRoutes(r, a)
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, itemEvents.TopicReceiptRendered, handleReceiptRendered(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", itemEvents.TopicReceiptRendered,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{itemEvents.TopicReceiptRendered})
	return nil
}

// handleReceiptRendered returns a handler for receipt.rendered events.
// Handlers must be idempotent; EventBus retries up to 3× on failure.
// It records an audit log line and counts the event.
func handleReceiptRendered(a *app.Application) func(context.Context, *message.Message) error {
	return events.HandleJSON(func(ctx context.Context, evt itemEvents.ReceiptRenderedEvent) error {
		a.Logger.InfoContext(ctx, "receipt audit",
			"event_id", evt.EventID,
			"receipt_key", evt.ReceiptKey,
			"item_count", evt.ItemCount,
			"extra_count", evt.ExtraCount,
			"total", evt.Total,
		)
		if a.Metrics != nil {
			a.Metrics.RecordConsumed(ctx)
		}
		return nil
	})
}
