package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const verdictTTL = 10 * time.Minute

// Cache keeps recent validation verdicts in redis so repeat
// submissions of the same code skip the checksum and a storage probe.
type Cache struct {
	client *redis.Client
}

// New connects to redis at addr. Returns nil if addr is empty, which
// callers treat as "cache disabled".
func New(ctx context.Context, addr string) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Cache{client: client}, nil
}

// GetVerdict returns the cached verdict for a code. The second result
// is false on a miss or when the cache is disabled.
func (c *Cache) GetVerdict(ctx context.Context, code string) (bool, bool) {
	if c == nil {
		return false, false
	}

	// a broken cache is treated as a miss, it must not fail the check
	val, err := c.client.Get(ctx, key(code)).Result()
	if err != nil {
		return false, false
	}

	return val == "1", true
}

func (c *Cache) SetVerdict(ctx context.Context, code string, valid bool) {
	if c == nil {
		return
	}

	val := "0"
	if valid {
		val = "1"
	}
	c.client.Set(ctx, key(code), val, verdictTTL)
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func key(code string) string {
	return "verdict:" + code
}
