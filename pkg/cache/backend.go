package cache

import (
	"context"
	"fmt"
	"time"
)

// Backend names for logging and health output.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Backend is the receipt cache chosen at startup together with its health
// probe and shutdown hook.
type Backend struct {
	ReceiptCache
	Name  string
	ping  func(context.Context) error
	close func() error
}

// Open returns a Redis-backed cache when redisURL is set, and an in-process
// go-cache otherwise.
func Open(ctx context.Context, redisURL string, ttl time.Duration) (*Backend, error) {
	if redisURL == "" {
		mem := NewMemoryReceiptCache(ttl)
		return &Backend{
			ReceiptCache: mem,
			Name:         BackendMemory,
			ping:         mem.Ping,
			close:        func() error { return nil },
		}, nil
	}

	rc, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		return nil, fmt.Errorf("open redis cache: %w", err)
	}
	return &Backend{
		ReceiptCache: NewRedisReceiptCache(rc, ttl),
		Name:         BackendRedis,
		ping:         rc.Ping,
		close:        rc.Close,
	}, nil
}

// Ping probes the underlying store.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the underlying store.
func (b *Backend) Close() error {
	return b.close()
}
