package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	// DefaultReceiptTTL is the time-to-live for cached receipts.
	DefaultReceiptTTL = 24 * time.Hour

	receiptCacheKeyPrefix = "receipt"
)

// ErrMiss is returned by Get when the key does not exist or has expired.
var ErrMiss = errors.New("cache: miss")

// CachedReceipt is a rendered receipt stored under its request fingerprint.
// Items holds the caller's JSON view of the sorted items, stored opaquely.
type CachedReceipt struct {
	Key        string          `json:"key"`
	Text       string          `json:"text"`
	Total      string          `json:"total"`
	ItemCount  int             `json:"item_count"`
	Items      json.RawMessage `json:"items,omitempty"`
	RenderedAt time.Time       `json:"rendered_at"`
}

// ReceiptCache stores rendered receipts by key.
type ReceiptCache interface {
	Get(ctx context.Context, key string) (*CachedReceipt, error)
	Set(ctx context.Context, receipt *CachedReceipt) error
	Delete(ctx context.Context, key string) error
}

// RedisReceiptCache keeps receipts as Redis hashes.
// Key format: "receipt:{key}"
type RedisReceiptCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewRedisReceiptCache creates a ReceiptCache backed by the given RedisClient.
// A non-positive ttl means DefaultReceiptTTL.
func NewRedisReceiptCache(r *RedisClient, ttl time.Duration) *RedisReceiptCache {
	if ttl <= 0 {
		ttl = DefaultReceiptTTL
	}
	return &RedisReceiptCache{client: r, ttl: ttl}
}

// Get retrieves a cached receipt. Returns ErrMiss when absent.
func (c *RedisReceiptCache) Get(ctx context.Context, key string) (*CachedReceipt, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, ErrMiss
	}

	count, err := strconv.Atoi(vals["item_count"])
	if err != nil {
		return nil, fmt.Errorf("cache parse item_count: %w", err)
	}
	renderedAt, err := time.Parse(time.RFC3339Nano, vals["rendered_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse rendered_at: %w", err)
	}

	return &CachedReceipt{
		Key:        key,
		Text:       vals["text"],
		Total:      vals["total"],
		ItemCount:  count,
		Items:      json.RawMessage(vals["items"]),
		RenderedAt: renderedAt,
	}, nil
}

// Set writes a receipt as a Redis hash and applies the TTL in the same pipeline.
func (c *RedisReceiptCache) Set(ctx context.Context, r *CachedReceipt) error {
	key := c.key(r.Key)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"text", r.Text,
		"total", r.Total,
		"item_count", strconv.Itoa(r.ItemCount),
		"items", string(r.Items),
		"rendered_at", r.RenderedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached receipt.
func (c *RedisReceiptCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Client().Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *RedisReceiptCache) key(key string) string {
	return receiptCacheKeyPrefix + ":" + key
}
