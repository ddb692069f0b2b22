package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckoutCache stores checkout flow state in redis. Keys are namespaced per
// stage so a handoff, a billing draft, and a confirmation for the same token
// never collide.
type CheckoutCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckoutCache creates a checkout state store with the given TTL applied
// to every entry.
func NewCheckoutCache(client *redis.Client, ttl time.Duration) *CheckoutCache {
	return &CheckoutCache{
		client: client,
		ttl:    ttl,
	}
}

// Put stores a value under stage:token, overwriting any previous entry and
// resetting the TTL.
func (c *CheckoutCache) Put(ctx context.Context, stage, token string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(stage, token), data, c.ttl).Err()
}

// Take atomically retrieves and deletes an entry. Returns (false, nil) when
// the entry does not exist, so a second Take for the same token misses.
func (c *CheckoutCache) Take(ctx context.Context, stage, token string, dest interface{}) (bool, error) {
	data, err := c.client.GetDel(ctx, c.key(stage, token)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Peek retrieves an entry without consuming it.
func (c *CheckoutCache) Peek(ctx context.Context, stage, token string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.key(stage, token)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes an entry. Missing keys are not an error.
func (c *CheckoutCache) Delete(ctx context.Context, stage, token string) error {
	return c.client.Del(ctx, c.key(stage, token)).Err()
}

func (c *CheckoutCache) key(stage, token string) string {
	return "checkout:" + stage + ":" + token
}
