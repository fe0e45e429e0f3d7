package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recoffee/backend/internal/infrastructure/logger"
	"github.com/recoffee/backend/internal/interfaces/http/dto"
)

// DatabasePinger reports whether the database answers
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db           DatabasePinger
	readyTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db DatabasePinger) *HealthHandler {
	return &HealthHandler{
		db:           db,
		readyTimeout: 2 * time.Second,
	}
}

// Health reports that the process is up. It never touches dependencies.
func (h *HealthHandler) Health(c *gin.Context) {
	h.Success(c, dto.MessageResponse{Message: "I'm healthy"})
}

// Ready pings the database and answers 503 when it is unreachable
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.readyTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.ReadinessResponse{
			Status:   "unavailable",
			Database: "unreachable",
		})
		return
	}
	h.Success(c, dto.ReadinessResponse{Status: "ready", Database: "ok"})
}
