package app

import (
	"github.com/ghuser/electrocart/pkg/cache"
	"github.com/ghuser/electrocart/pkg/events"
	"github.com/ghuser/electrocart/pkg/logger"
	"github.com/ghuser/electrocart/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization,
// and to the CLI commands that render receipts.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "receipt rendered", "receipt_key", key)
//	app.Logger.ErrorContext(ctx, "failed to cache receipt", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger   logger.Logger
	EventBus *events.EventBus          // nil disables receipt.rendered publishing
	Cache    cache.ReceiptCache        // nil disables receipt caching
	Metrics  *telemetry.ReceiptMetrics // nil disables receipt metrics
	Receipts ReceiptSettings
}

// ReceiptSettings are the rendering defaults applied when a request leaves
// them unset.
type ReceiptSettings struct {
	Width           int
	StrictOverrides bool
	IsProduction    bool
}
