package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/utils"
)

// Pinger checks upstream reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and upstream health.
type HealthHandler struct {
	upstream Pinger
}

func NewHealthHandler(upstream Pinger) *HealthHandler {
	return &HealthHandler{upstream: upstream}
}

// Health returns 200 when the service is up. Upstream reachability is
// reported but does not fail the check; the catalog degrades gracefully.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	upstreamStatus := "ok"
	if err := h.upstream.Ping(ctx); err != nil {
		upstreamStatus = "unreachable"
	}

	utils.Success(c, http.StatusOK, "Service healthy", gin.H{
		"status":   "ok",
		"upstream": upstreamStatus,
	})
}
