package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapnex/store_api/pkg/storeapi"
)

func TestNormalizeProductNewGeneration(t *testing.T) {
	raw := []byte(`{
		"id": 42,
		"product_name": "Gold NFC Card",
		"product_mrp": "59.99",
		"product_offer_price": "49.99",
		"product_feature_image": "https://cdn.example.com/gold.jpg",
		"product_gallery1": "https://cdn.example.com/gold-1.jpg",
		"product_gallery2": "",
		"product_gallery3": "https://cdn.example.com/gold-3.jpg",
		"product_gallery4": ""
	}`)

	var payload storeapi.ProductPayload
	require.NoError(t, json.Unmarshal(raw, &payload))

	p := NormalizeProduct(payload)

	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "Gold NFC Card", p.Name)
	assert.Equal(t, "gold-nfc-card", p.Slug)
	assert.Equal(t, 49.99, p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 59.99, *p.OriginalPrice)
	assert.True(t, p.IsOnSale())

	// gallery is packed gaplessly: feature first, then the two filled slots
	require.Len(t, p.Images, 3)
	assert.Equal(t, "https://cdn.example.com/gold.jpg", p.Images[0].URL)
	assert.True(t, p.Images[0].IsPrimary)
	assert.Equal(t, "https://cdn.example.com/gold-1.jpg", p.Images[1].URL)
	assert.Equal(t, "Gold NFC Card - Image 2", p.Images[1].AltText)
	assert.Equal(t, "https://cdn.example.com/gold-3.jpg", p.Images[2].URL)
	assert.Equal(t, "Gold NFC Card - Image 4", p.Images[2].AltText)
	assert.Equal(t, []int{0, 1, 2}, []int{p.Images[0].SortOrder, p.Images[1].SortOrder, p.Images[2].SortOrder})
	assert.Equal(t, "https://cdn.example.com/gold.jpg", p.PrimaryImage)
}

func TestNormalizeProductLegacyGeneration(t *testing.T) {
	raw := []byte(`{
		"id": "prod-7",
		"name": "Smart Card",
		"slug": "smart-card",
		"price": 19.5,
		"sku": "SC-001",
		"rating": 4.2,
		"stock_quantity": 8,
		"is_in_stock": true,
		"images": [
			{"url": "https://cdn.example.com/a.jpg", "is_primary": 0},
			{"url": "https://cdn.example.com/b.jpg", "is_primary": "1"}
		]
	}`)

	var payload storeapi.ProductPayload
	require.NoError(t, json.Unmarshal(raw, &payload))

	p := NormalizeProduct(payload)

	assert.Equal(t, "prod-7", p.ID)
	assert.Equal(t, 19.5, p.Price)
	assert.Nil(t, p.OriginalPrice)
	assert.Equal(t, 4.2, p.Rating)
	assert.Equal(t, 8, p.StockQuantity)
	require.Len(t, p.Images, 2)
	assert.False(t, p.Images[0].IsPrimary)
	assert.True(t, p.Images[1].IsPrimary)
	assert.Equal(t, "https://cdn.example.com/b.jpg", p.PrimaryImage)
}

func TestNormalizeProductDefaults(t *testing.T) {
	p := NormalizeProduct(storeapi.ProductPayload{Name: "Bare Product"})

	assert.Equal(t, "bare-product", p.ID)
	assert.Equal(t, "bare-product", p.Slug)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 100, p.StockQuantity)
	assert.True(t, p.IsInStock)
	assert.Equal(t, "NFC Cards", p.CategoryName)
	assert.Equal(t, "nfc-cards", p.CategorySlug)
	assert.Empty(t, p.Images)
	assert.Equal(t, "/images/placeholder.jpg", p.PrimaryImage)
	assert.NotNil(t, p.Features)
}

func TestNormalizeProductZeroRatingGetsDefault(t *testing.T) {
	zero := storeapi.FlexFloat(0)
	p := NormalizeProduct(storeapi.ProductPayload{Name: "X", Rating: &zero})
	assert.Equal(t, 4.5, p.Rating)
}

func TestNormalizeProductMRPNotAboveOfferIsIgnored(t *testing.T) {
	mrp := storeapi.FlexFloat(49.99)
	offer := storeapi.FlexFloat(49.99)
	p := NormalizeProduct(storeapi.ProductPayload{Name: "X", ProductMRP: &mrp, ProductOfferPrice: &offer})
	assert.Equal(t, 49.99, p.Price)
	assert.Nil(t, p.OriginalPrice)
	assert.False(t, p.IsOnSale())
}

func TestNormalizeProductIdempotent(t *testing.T) {
	raw := []byte(`{
		"id": 42,
		"product_name": "Gold NFC Card",
		"product_mrp": "59.99",
		"product_offer_price": "49.99",
		"product_feature_image": "https://cdn.example.com/gold.jpg"
	}`)

	var payload storeapi.ProductPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	first := NormalizeProduct(payload)

	// feed the canonical form back through the payload decode
	canonical, err := json.Marshal(first)
	require.NoError(t, err)
	var again storeapi.ProductPayload
	require.NoError(t, json.Unmarshal(canonical, &again))
	second := NormalizeProduct(again)

	assert.Equal(t, first, second)
}

func TestNormalizeCategory(t *testing.T) {
	inactive := storeapi.FlexBool(false)
	c := NormalizeCategory(storeapi.CategoryPayload{ID: 3, Name: "RFID Tags", IsActive: &inactive})
	assert.Equal(t, "rfid-tags", c.Slug)
	assert.False(t, c.IsActive)

	c = NormalizeCategory(storeapi.CategoryPayload{ID: 1, Name: "NFC Cards", Slug: "nfc-cards"})
	assert.True(t, c.IsActive)
}

func TestDiscountPercent(t *testing.T) {
	raw := []byte(`{"product_name":"P","product_mrp":100,"product_offer_price":75}`)
	var payload storeapi.ProductPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	p := NormalizeProduct(payload)
	assert.Equal(t, 25, p.DiscountPercent())
}
