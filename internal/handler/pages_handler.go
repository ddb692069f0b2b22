package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/utils"
)

// PagesHandler serves the static legal and informational pages.
type PagesHandler struct {
	pages *service.PagesService
}

func NewPagesHandler(pages *service.PagesService) *PagesHandler {
	return &PagesHandler{pages: pages}
}

// GetPage handles GET /pages/:slug.
func (h *PagesHandler) GetPage(c *gin.Context) {
	page, err := h.pages.GetPage(c.Param("slug"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "PAGE_NOT_FOUND", "Page not found")
		return
	}
	utils.Success(c, http.StatusOK, "Page retrieved", page)
}
