package routes

import (
	"context"
	"net/http"
	"time"

	"Caixa/internal/contracts"
	"Caixa/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	if h.HealthCheck == nil {
		c.JSON(http.StatusOK, contracts.HealthResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.HealthCheck.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("health check falhou")
		c.JSON(http.StatusServiceUnavailable, contracts.HealthResponse{Status: "unavailable", Database: "down"})
		return
	}

	c.JSON(http.StatusOK, contracts.HealthResponse{Status: "ok", Database: "up"})
}
