package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// AdminProductHandler serves the JWT-guarded catalog write endpoints.
type AdminProductHandler struct {
	admin *service.AdminCatalogService
}

func NewAdminProductHandler(admin *service.AdminCatalogService) *AdminProductHandler {
	return &AdminProductHandler{admin: admin}
}

// CreateProduct handles POST /admin/products.
func (h *AdminProductHandler) CreateProduct(c *gin.Context) {
	var req storeapi.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product payload")
		return
	}

	if err := h.admin.CreateProduct(c.Request.Context(), req); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationFailed(c, verr.Fields)
			return
		}
		utils.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Product could not be created")
		return
	}
	utils.Success(c, http.StatusCreated, "Product created", nil)
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *AdminProductHandler) UpdateProduct(c *gin.Context) {
	var req storeapi.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product payload")
		return
	}

	if err := h.admin.UpdateProduct(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Product could not be updated")
		return
	}
	utils.Success(c, http.StatusOK, "Product updated", nil)
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *AdminProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.admin.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Product could not be deleted")
		return
	}
	utils.Success(c, http.StatusOK, "Product deleted", nil)
}
