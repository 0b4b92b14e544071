package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/electrocart/receipts"

// ReceiptMetrics records receipt rendering and event consumption.
type ReceiptMetrics struct {
	rendered metric.Int64Counter
	duration metric.Float64Histogram
	amount   metric.Float64Histogram
	consumed metric.Int64Counter
}

// NewReceiptMetrics registers the receipt instruments on mp. Pass
// otel.GetMeterProvider() after Setup, or a noop provider in tools that
// do not export metrics.
func NewReceiptMetrics(mp metric.MeterProvider) (*ReceiptMetrics, error) {
	meter := mp.Meter(meterName)

	rendered, err := meter.Int64Counter("receipts_rendered",
		metric.WithDescription("Receipts rendered, labelled by cache outcome"))
	if err != nil {
		return nil, fmt.Errorf("receipts_rendered counter: %w", err)
	}
	duration, err := meter.Float64Histogram("receipt_render_duration",
		metric.WithDescription("Time spent building and formatting a receipt"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("receipt_render_duration histogram: %w", err)
	}
	amount, err := meter.Float64Histogram("receipt_total_amount",
		metric.WithDescription("Cart totals of rendered receipts"))
	if err != nil {
		return nil, fmt.Errorf("receipt_total_amount histogram: %w", err)
	}
	consumed, err := meter.Int64Counter("receipt_events_consumed",
		metric.WithDescription("receipt.rendered events handled by subscribers"))
	if err != nil {
		return nil, fmt.Errorf("receipt_events_consumed counter: %w", err)
	}

	return &ReceiptMetrics{
		rendered: rendered,
		duration: duration,
		amount:   amount,
		consumed: consumed,
	}, nil
}

// RecordRender counts one render. Duration and amount are recorded only for
// cache misses, since hits do no formatting work.
func (m *ReceiptMetrics) RecordRender(ctx context.Context, cached bool, d time.Duration, total float64) {
	m.rendered.Add(ctx, 1, metric.WithAttributes(attribute.Bool("cached", cached)))
	if cached {
		return
	}
	m.duration.Record(ctx, d.Seconds())
	m.amount.Record(ctx, total)
}

// RecordConsumed counts one handled receipt.rendered event.
func (m *ReceiptMetrics) RecordConsumed(ctx context.Context) {
	m.consumed.Add(ctx, 1)
}
