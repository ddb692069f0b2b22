package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tapnex/store_api/internal/cache"
	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// SettingsAPI is the upstream settings surface.
type SettingsAPI interface {
	ListSettings(ctx context.Context, publicOnly bool) ([]storeapi.SettingPayload, error)
}

// SettingsService serves public site settings with a redis cache in front of
// the upstream. A background worker refreshes the cache periodically so the
// storefront rarely pays the upstream round trip.
type SettingsService struct {
	api   SettingsAPI
	cache *cache.SettingsCache
}

func NewSettingsService(api SettingsAPI, c *cache.SettingsCache) *SettingsService {
	return &SettingsService{
		api:   api,
		cache: c,
	}
}

// GetSettings returns the public site settings, served from cache when warm.
func (s *SettingsService) GetSettings(ctx context.Context) ([]models.SiteSetting, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Settings cache read failed")
	}
	if cached != nil {
		return cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh fetches settings from the upstream and rewrites the cache.
func (s *SettingsService) Refresh(ctx context.Context) ([]models.SiteSetting, error) {
	payloads, err := s.api.ListSettings(ctx, true)
	if err != nil {
		return nil, err
	}

	settings := make([]models.SiteSetting, 0, len(payloads))
	for _, p := range payloads {
		settings = append(settings, models.SiteSetting{
			Key:   p.Key,
			Value: p.Value,
			Type:  p.Type,
		})
	}

	if err := s.cache.Set(ctx, settings); err != nil {
		log.Warn().Err(err).Msg("Settings cache write failed")
	}
	return settings, nil
}
