package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SubmitContact sends a contact form message.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) error {
	_, err := c.envelope(ctx, http.MethodPost, "/contact", nil, req)
	return err
}

// ContactFilters narrows the admin contact message listing.
type ContactFilters struct {
	Status string
	Type   string
	Search string
	Page   int
	Limit  int
}

// ListContactMessages fetches stored contact messages (admin).
func (c *Client) ListContactMessages(ctx context.Context, f ContactFilters) ([]ContactMessagePayload, error) {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	env, err := c.envelope(ctx, http.MethodGet, "/contact", v, nil)
	if err != nil {
		return nil, err
	}
	var messages []ContactMessagePayload
	if err := json.Unmarshal(env.Data, &messages); err != nil {
		// Some deployments wrap the list with pagination metadata.
		var page struct {
			Data []ContactMessagePayload `json:"data"`
		}
		if err := json.Unmarshal(env.Data, &page); err != nil || page.Data == nil {
			return nil, fmt.Errorf("failed to decode contact messages: %w", err)
		}
		return page.Data, nil
	}
	return messages, nil
}

// ListFAQs fetches FAQ entries grouped by category.
func (c *Client) ListFAQs(ctx context.Context) (map[string][]FAQPayload, error) {
	env, err := c.envelope(ctx, http.MethodGet, "/faq", nil, nil)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]FAQPayload)
	if err := json.Unmarshal(env.Data, &grouped); err != nil {
		return nil, fmt.Errorf("failed to decode faqs: %w", err)
	}
	return grouped, nil
}
