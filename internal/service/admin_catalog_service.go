package service

import (
	"context"

	"github.com/tapnex/store_api/pkg/storeapi"
)

// ProductAdminAPI is the upstream write surface for the catalog.
type ProductAdminAPI interface {
	CreateProduct(ctx context.Context, req storeapi.CreateProductRequest) error
	UpdateProduct(ctx context.Context, id string, req storeapi.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
}

// AdminCatalogService forwards catalog mutations to the upstream. Writes go
// direct only; the relay fallback is read-only by design of the relay itself.
type AdminCatalogService struct {
	api ProductAdminAPI
}

func NewAdminCatalogService(api ProductAdminAPI) *AdminCatalogService {
	return &AdminCatalogService{api: api}
}

// CreateProduct creates a catalog entry after basic sanity checks.
func (s *AdminCatalogService) CreateProduct(ctx context.Context, req storeapi.CreateProductRequest) error {
	if req.Name == "" || req.Price <= 0 {
		return &ValidationError{Fields: map[string]string{
			"name":  "Name is required",
			"price": "Price must be greater than zero",
		}}
	}
	return s.api.CreateProduct(ctx, req)
}

// UpdateProduct applies a partial update to a catalog entry.
func (s *AdminCatalogService) UpdateProduct(ctx context.Context, id string, req storeapi.UpdateProductRequest) error {
	return s.api.UpdateProduct(ctx, id, req)
}

// DeleteProduct removes a catalog entry.
func (s *AdminCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.api.DeleteProduct(ctx, id)
}
