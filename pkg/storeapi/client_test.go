package storeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsDecodesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products.php", r.URL.Path)
		assert.Equal(t, "read", r.URL.Query().Get("action"))
		w.Write([]byte(`{"success": true, "message": "ok", "data": [{"id": "1", "name": "Card"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	products, err := client.ListProducts(context.Background(), ProductQuery{})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Card", products[0].Name)
}

func TestListProductsDecodesPaginatedWrapper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "message": "ok", "data": {"data": [{"id": "1"}, {"id": "2"}], "total": 2}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	products, err := client.ListProducts(context.Background(), ProductQuery{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestEnvelopeFailureBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "invalid category"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListProducts(context.Background(), ProductQuery{Category: "nope"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid category", apiErr.Message)
}

func TestNon2xxStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListProducts(context.Background(), ProductQuery{})
	assert.Error(t, err)
}

func TestProductQueryValues(t *testing.T) {
	featured := true
	q := ProductQuery{
		Search:   "gold",
		Category: "nfc-cards",
		Sort:     "price",
		Order:    "ASC",
		Page:     2,
		Limit:    12,
		Featured: &featured,
	}
	v := q.Values()

	assert.Equal(t, "read", v.Get("action"))
	assert.Equal(t, "gold", v.Get("search"))
	assert.Equal(t, "nfc-cards", v.Get("category"))
	assert.Equal(t, "price", v.Get("sort"))
	assert.Equal(t, "ASC", v.Get("order"))
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "12", v.Get("limit"))
	assert.Equal(t, "true", v.Get("featured"))
	assert.Empty(t, v.Get("in_stock"))
}

func TestProductsURLRoundTripsThroughRelay(t *testing.T) {
	client := NewClient("https://store.example.com/api", time.Second)
	u := client.ProductsURL(ProductQuery{Search: "card"})
	assert.Contains(t, u, "https://store.example.com/api/products.php?")
	assert.Contains(t, u, "action=read")
	assert.Contains(t, u, "search=card")
}

func TestCreateOrderDecodesTopLevelBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "create", r.URL.Query().Get("action"))
		w.Write([]byte(`{"success": true, "message": "Order created", "orderNumber": "ORD-22"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	resp, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		TotalAmount: 53.99,
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "ORD-22", string(resp.OrderNumber))
}

func TestCreateOrderRejectionIsReturnedNotErrored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "duplicate order"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	resp, err := client.CreateOrder(context.Background(), CreateOrderRequest{})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "duplicate order", resp.Message)
}
