package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	pkgcache "github.com/ghuser/electrocart/pkg/cache"
	"github.com/ghuser/electrocart/pkg/events"
	"github.com/ghuser/electrocart/pkg/logger"
	"github.com/ghuser/electrocart/pkg/telemetry"
	itemevents "github.com/ghuser/electrocart/services/item/domain/events"
	"github.com/ghuser/electrocart/services/item/domain/models"
	domainsvcs "github.com/ghuser/electrocart/services/item/domain/services"
)

const receiptEventVersion = 1

var tracer = otel.Tracer("github.com/ghuser/electrocart/services/item")

// RenderRequest describes a cart and how its receipt should be printed.
// Width zero means the configured default. Order only affects Receipt.Items;
// printed lines are always most expensive first.
type RenderRequest struct {
	Lines    []domainsvcs.LineSpec `json:"lines"`
	Width    int                   `json:"width"`
	Detailed bool                  `json:"detailed"`
	Grouped  bool                  `json:"grouped"`
	Order    string                `json:"order"`
}

// Receipt is a rendered cart.
type Receipt struct {
	Key        string        `json:"key"`
	Text       string        `json:"text"`
	Lines      []string      `json:"lines"`
	Total      string        `json:"total"`
	Items      []ReceiptItem `json:"items"`
	ItemCount  int           `json:"item_count"`
	Cached     bool          `json:"cached"`
	RenderedAt time.Time     `json:"rendered_at"`
}

// ReceiptItem is the JSON view of one item and its extras.
type ReceiptItem struct {
	Kind   string        `json:"kind"`
	Name   string        `json:"name"`
	Price  string        `json:"price"`
	Total  string        `json:"total"`
	Wired  bool          `json:"wired"`
	Extras []ReceiptItem `json:"extras,omitempty"`
}

// CatalogEntry describes one purchasable kind. MaxExtras is -1 when unbounded.
type CatalogEntry struct {
	Kind      string `json:"kind"`
	Family    string `json:"family"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Wired     bool   `json:"wired"`
	MaxExtras int    `json:"max_extras"`
}

// ReceiptService renders carts into receipts.
// Rendered receipts are cached by request fingerprint; a fresh render
// publishes ReceiptRenderedEvent on the event bus.
type ReceiptService struct {
	log          logger.Logger
	bus          *events.EventBus
	cache        pkgcache.ReceiptCache
	metrics      *telemetry.ReceiptMetrics
	defaultWidth int
	strict       bool
	now          func() time.Time
}

// NewReceiptService returns a ReceiptService. bus, cache and metrics may be nil.
func NewReceiptService(
	log logger.Logger,
	bus *events.EventBus,
	cache pkgcache.ReceiptCache,
	metrics *telemetry.ReceiptMetrics,
	defaultWidth int,
	strict bool,
) *ReceiptService {
	if defaultWidth <= 0 {
		defaultWidth = models.DefaultWidth
	}
	return &ReceiptService{
		log:          log,
		bus:          bus,
		cache:        cache,
		metrics:      metrics,
		defaultWidth: defaultWidth,
		strict:       strict,
		now:          time.Now,
	}
}

// Render builds the cart in req and formats its receipt.
//
// The flow is read-through:
//  1. Look the request fingerprint up in the cache; cache errors fall through.
//  2. Build the collection and format it.
//  3. Publish ReceiptRenderedEvent (best-effort).
//  4. Store the receipt in the cache (best-effort).
//
// Domain errors (unknown kind, extras rules, empty cart) are returned wrapped
// with the path of the offending line.
func (s *ReceiptService) Render(ctx context.Context, req RenderRequest) (*Receipt, error) {
	ctx, span := tracer.Start(ctx, "ReceiptService.Render")
	defer span.End()
	start := time.Now()

	if req.Width <= 0 {
		req.Width = s.defaultWidth
	}
	order, err := models.ParseSortOrder(req.Order)
	if err != nil {
		return nil, err
	}
	req.Order = string(order)

	key, err := s.fingerprint(req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("receipt.key", key))

	if r, ok := s.lookup(ctx, key); ok {
		span.SetAttributes(attribute.Bool("receipt.cached", true))
		s.record(ctx, true, start, r.Total)
		return r, nil
	}

	coll, err := domainsvcs.BuildCollection(req.Lines, s.strict)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	opts := models.PrintOptions{Width: req.Width, Grouped: req.Grouped, Detailed: req.Detailed}
	lines := coll.Lines(opts)
	r := &Receipt{
		Key:        key,
		Text:       strings.Join(lines, "\n"),
		Lines:      lines,
		Total:      models.FormatAmount(coll.Total()),
		Items:      toReceiptItems(coll.SortedItems(order)),
		ItemCount:  coll.Len(),
		RenderedAt: s.now().UTC(),
	}

	s.publish(ctx, r, domainsvcs.CountExtras(coll), req.Detailed)
	s.store(ctx, r)
	s.record(ctx, false, start, r.Total)

	s.log.InfoContext(ctx, "receipt rendered",
		"receipt_key", key,
		"item_count", r.ItemCount,
		"total", r.Total,
	)
	return r, nil
}

// Catalog lists every purchasable kind in catalog order.
func (s *ReceiptService) Catalog() []CatalogEntry {
	kinds := models.Kinds()
	out := make([]CatalogEntry, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, CatalogEntry{
			Kind:      k.String(),
			Family:    k.Family().String(),
			Name:      k.Name(),
			Price:     models.FormatAmount(k.DefaultPrice()),
			Wired:     k.DefaultWired(),
			MaxExtras: models.MaxExtras(k),
		})
	}
	return out
}

// fingerprint is the hex SHA-256 of the request's JSON encoding plus the
// override mode. encoding/json sorts map keys, so equal requests hash equally.
func (s *ReceiptService) fingerprint(req RenderRequest) (string, error) {
	data, err := json.Marshal(struct {
		RenderRequest
		Strict bool `json:"strict"`
	}{req, s.strict})
	if err != nil {
		return "", fmt.Errorf("fingerprint request: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func (s *ReceiptService) lookup(ctx context.Context, key string) (*Receipt, bool) {
	if s.cache == nil {
		return nil, false
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, pkgcache.ErrMiss) {
			s.log.WarnContext(ctx, "receipt cache read failed", "receipt_key", key, "error", err)
		}
		return nil, false
	}

	var items []ReceiptItem
	if len(cached.Items) > 0 {
		if err := json.Unmarshal(cached.Items, &items); err != nil {
			s.log.WarnContext(ctx, "discarding corrupt cached receipt", "receipt_key", key, "error", err)
			return nil, false
		}
	}
	return &Receipt{
		Key:        key,
		Text:       cached.Text,
		Lines:      strings.Split(cached.Text, "\n"),
		Total:      cached.Total,
		Items:      items,
		ItemCount:  cached.ItemCount,
		Cached:     true,
		RenderedAt: cached.RenderedAt,
	}, true
}

func (s *ReceiptService) store(ctx context.Context, r *Receipt) {
	if s.cache == nil {
		return
	}
	items, err := json.Marshal(r.Items)
	if err != nil {
		s.log.WarnContext(ctx, "receipt cache encode failed", "receipt_key", r.Key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, &pkgcache.CachedReceipt{
		Key:        r.Key,
		Text:       r.Text,
		Total:      r.Total,
		ItemCount:  r.ItemCount,
		Items:      items,
		RenderedAt: r.RenderedAt,
	}); err != nil {
		s.log.WarnContext(ctx, "receipt cache write failed", "receipt_key", r.Key, "error", err)
	}
}

func (s *ReceiptService) publish(ctx context.Context, r *Receipt, extras int, detailed bool) {
	if s.bus == nil {
		return
	}
	evt := itemevents.ReceiptRenderedEvent{
		EventID:    uuid.New(),
		Version:    receiptEventVersion,
		ReceiptKey: r.Key,
		ItemCount:  r.ItemCount,
		ExtraCount: extras,
		Total:      r.Total,
		Detailed:   detailed,
		OccurredAt: r.RenderedAt,
	}
	if err := s.bus.PublishJSON(ctx, itemevents.TopicReceiptRendered, receiptEventVersion, evt); err != nil {
		s.log.WarnContext(ctx, "receipt event publish failed", "receipt_key", r.Key, "error", err)
	}
}

func (s *ReceiptService) record(ctx context.Context, cached bool, start time.Time, total string) {
	if s.metrics == nil {
		return
	}
	amount, err := decimal.NewFromString(total)
	if err != nil {
		amount = decimal.Zero
	}
	s.metrics.RecordRender(ctx, cached, time.Since(start), amount.InexactFloat64())
}

func toReceiptItems(items []*models.Item) []ReceiptItem {
	out := make([]ReceiptItem, 0, len(items))
	for _, it := range items {
		ri := ReceiptItem{
			Kind:  it.Kind().String(),
			Name:  it.Name(),
			Price: models.FormatAmount(it.Price()),
			Total: models.FormatAmount(it.TotalPrice()),
			Wired: it.IsWired(),
		}
		if extras := it.Extras(); len(extras) > 0 {
			ri.Extras = toReceiptItems(extras)
		}
		out = append(out, ri)
	}
	return out
}
