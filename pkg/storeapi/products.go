package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const productsEndpoint = "/products.php"

// ProductQuery holds the product listing filters. Parameter names mirror the
// upstream endpoint exactly; zero values are omitted from the query string.
type ProductQuery struct {
	Action   string // defaults to "read"
	ID       string
	Search   string
	Category string
	Sort     string // name | price | created_at | rating | featured | total_sales
	Order    string // ASC | DESC
	Page     int
	Limit    int
	Featured *bool
	InStock  *bool
	MinPrice *float64
	MaxPrice *float64
}

// Values encodes the query as upstream URL parameters.
func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	action := q.Action
	if action == "" {
		action = "read"
	}
	v.Set("action", action)
	if q.ID != "" {
		v.Set("id", q.ID)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if q.InStock != nil {
		v.Set("in_stock", strconv.FormatBool(*q.InStock))
	}
	if q.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	return v
}

// ProductsURL returns the absolute listing URL for a query, for routing the
// same request through the CORS relay.
func (c *Client) ProductsURL(q ProductQuery) string {
	return c.URL(productsEndpoint, q.Values())
}

// ListProducts fetches raw product payloads for a query.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]ProductPayload, error) {
	env, err := c.envelope(ctx, http.MethodGet, productsEndpoint, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return DecodeProducts(env)
}

// paginatedProducts is the alternate listing shape where data wraps the
// array together with pagination metadata.
type paginatedProducts struct {
	Data []ProductPayload `json:"data"`
}

// DecodeProducts extracts product payloads from a listing envelope. The
// upstream has served both a bare array and a paginated wrapper.
func DecodeProducts(env *Envelope) ([]ProductPayload, error) {
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("empty product data")
	}
	var list []ProductPayload
	if err := json.Unmarshal(env.Data, &list); err == nil {
		return list, nil
	}
	var page paginatedProducts
	if err := json.Unmarshal(env.Data, &page); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	if page.Data == nil {
		return nil, fmt.Errorf("unexpected product data shape")
	}
	return page.Data, nil
}

// CreateProduct creates a catalog entry (admin).
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) error {
	v := url.Values{}
	v.Set("action", "create")
	_, err := c.envelope(ctx, http.MethodPost, productsEndpoint, v, req)
	return err
}

// UpdateProduct updates a catalog entry (admin).
func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) error {
	v := url.Values{}
	v.Set("action", "update")
	v.Set("id", id)
	_, err := c.envelope(ctx, http.MethodPut, productsEndpoint, v, req)
	return err
}

// DeleteProduct removes a catalog entry (admin).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	v := url.Values{}
	v.Set("action", "delete")
	v.Set("id", id)
	_, err := c.envelope(ctx, http.MethodDelete, productsEndpoint, v, nil)
	return err
}
