package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/pkg/logger"
)

// StorePinger is the part of the gateway the health check needs
type StorePinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

// HealthController reports whether the document store is reachable
type HealthController struct {
	store StorePinger
}

// NewHealthController creates a new HealthController
func NewHealthController(store StorePinger) *HealthController {
	return &HealthController{store: store}
}

// Health pings the document store
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthController) Health(ctx *gin.Context) {
	if err := h.store.Ping(ctx.Request.Context()); err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Str("driver", h.store.Driver()).Msg("Health check ping failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Store: h.store.Driver()})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Store: h.store.Driver()})
}
