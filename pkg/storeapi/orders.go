package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const ordersEndpoint = "/orders.php"

// CreateOrder submits a new order. The reply does not follow the standard
// envelope: the order identifier sits at the top level, so the body is
// decoded directly. A reply with success=false is returned as-is for the
// caller to inspect; only transport, status, and decode problems error.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	v := url.Values{}
	v.Set("action", "create")
	body, err := c.do(ctx, http.MethodPost, ordersEndpoint, v, req)
	if err != nil {
		return nil, err
	}
	var resp CreateOrderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	return &resp, nil
}

// GetOrder looks up an order by identifier (order tracking).
func (c *Client) GetOrder(ctx context.Context, id string) (*OrderPayload, error) {
	env, err := c.envelope(ctx, http.MethodGet, ordersEndpoint+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var order OrderPayload
	if err := json.Unmarshal(env.Data, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &order, nil
}
