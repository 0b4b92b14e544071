package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-valid-url")
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "redis://localhost:19999")
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	t.Run("Ping_Success", func(t *testing.T) {
		if err := rc.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("ReceiptCache_RoundTrip", func(t *testing.T) {
		c := NewRedisReceiptCache(rc, time.Minute)
		key := uuid.NewString()
		in := &CachedReceipt{
			Key:        key,
			Text:       "Console          100.00",
			Total:      "114.00",
			ItemCount:  1,
			Items:      []byte(`[{"kind":"console"}]`),
			RenderedAt: time.Now().UTC().Truncate(time.Millisecond),
		}
		if err := c.Set(ctx, in); err != nil {
			t.Fatalf("Set: %v", err)
		}
		defer c.Delete(ctx, key) //nolint:errcheck

		out, err := c.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if out.Text != in.Text || out.Total != in.Total || out.ItemCount != in.ItemCount {
			t.Errorf("Get = %+v, want %+v", out, in)
		}
		if string(out.Items) != string(in.Items) {
			t.Errorf("Items = %s, want %s", out.Items, in.Items)
		}
		if !out.RenderedAt.Equal(in.RenderedAt) {
			t.Errorf("RenderedAt = %v, want %v", out.RenderedAt, in.RenderedAt)
		}

		ttl := rc.Client().TTL(ctx, "receipt:"+key).Val()
		if ttl <= 0 || ttl > time.Minute {
			t.Errorf("TTL = %v, want (0, 1m]", ttl)
		}
	})

	t.Run("ReceiptCache_Miss", func(t *testing.T) {
		c := NewRedisReceiptCache(rc, 0)
		if _, err := c.Get(ctx, uuid.NewString()); !errors.Is(err, ErrMiss) {
			t.Fatalf("Get error = %v, want ErrMiss", err)
		}
	})
}
