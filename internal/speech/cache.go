package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache remembers the stored URL for previously synthesized text so
// identical replies reuse the same clip.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a synthesis cache. client may be nil; lookups then
// always miss.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "speech:audio:" + hex.EncodeToString(sum[:])
}

// Get returns the cached audio URL for text, or "" on a miss.
func (c *Cache) Get(ctx context.Context, text string) (string, error) {
	if c == nil || c.client == nil {
		return "", nil
	}
	val, err := c.client.Get(ctx, cacheKey(text)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set records the audio URL for text.
func (c *Cache) Set(ctx context.Context, text, audioURL string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, cacheKey(text), audioURL, c.ttl).Err()
}
