package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const generalEndpoint = "/general.php"

// ListCategories fetches the category catalog.
func (c *Client) ListCategories(ctx context.Context) ([]CategoryPayload, error) {
	env, err := c.envelope(ctx, http.MethodGet, generalEndpoint+"/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	var categories []CategoryPayload
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// ListSettings fetches site settings. publicOnly restricts the result to
// settings the storefront may expose.
func (c *Client) ListSettings(ctx context.Context, publicOnly bool) ([]SettingPayload, error) {
	var query url.Values
	if publicOnly {
		query = url.Values{}
		query.Set("public", "true")
	}
	env, err := c.envelope(ctx, http.MethodGet, generalEndpoint+"/settings", query, nil)
	if err != nil {
		return nil, err
	}
	var settings []SettingPayload
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}
