package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger is the part of the content service the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Backend() string
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Backend   string    `json:"backend"`
}

type HealthHandler struct {
	pinger Pinger
	log    *logger.Logger
}

func NewHealthHandler(pinger Pinger, log *logger.Logger) *HealthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HealthHandler{pinger: pinger, log: log}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.pinger.Ping(pingCtx); err != nil {
		h.log.Warn("health check failed", "backend", h.pinger.Backend(), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Service unhealthy"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
		Backend:   h.pinger.Backend(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
}
