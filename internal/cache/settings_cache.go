package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tapnex/store_api/internal/models"
)

const settingsKey = "site:settings"

// SettingsCache caches the public site settings fetched from the upstream.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSettingsCache(client *redis.Client, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached settings, or (nil, nil) on a miss.
func (c *SettingsCache) Get(ctx context.Context) ([]models.SiteSetting, error) {
	data, err := c.client.Get(ctx, settingsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var settings []models.SiteSetting
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Set stores settings with the configured TTL.
func (c *SettingsCache) Set(ctx context.Context, settings []models.SiteSetting) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, settingsKey, data, c.ttl).Err()
}
