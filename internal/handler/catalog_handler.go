package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/utils"
)

// CatalogHandler serves the public catalog endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	opts := service.ListOptions{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	products := h.catalog.ListProducts(c.Request.Context(), opts)
	if opts.Page > 0 || opts.Limit > 0 {
		// the upstream reports no total count, so the page size stands in
		utils.SuccessWithPagination(c, http.StatusOK, "Products retrieved", products, opts.Page, opts.Limit, len(products))
		return
	}
	utils.Success(c, http.StatusOK, "Products retrieved", products)
}

// FeaturedProducts handles GET /products/featured.
func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	limit := queryInt(c, "limit")
	products := h.catalog.FeaturedProducts(c.Request.Context(), limit)
	utils.Success(c, http.StatusOK, "Featured products retrieved", products)
}

// GetProduct handles GET /products/:identifier. The identifier may be an id,
// slug, SKU, or slugified name.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	detail, err := h.catalog.GetProduct(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Product lookup failed")
		return
	}
	utils.Success(c, http.StatusOK, "Product retrieved", detail)
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := h.catalog.ListCategories(c.Request.Context())
	utils.Success(c, http.StatusOK, "Categories retrieved", categories)
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
