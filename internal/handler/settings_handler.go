package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/utils"
)

// SettingsHandler serves public site settings.
type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings handles GET /settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetSettings(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Could not load site settings")
		return
	}
	utils.Success(c, http.StatusOK, "Settings retrieved", settings)
}
