package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the store answers. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	store       Pinger
	driver      string
	borrowLimit int
	startTime   time.Time
	version     string
}

func NewHealthHandler(store Pinger, driver string, borrowLimit int, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		store:       store,
		driver:      driver,
		borrowLimit: borrowLimit,
		startTime:   startTime,
		version:     version,
	}
}

func (h *HealthHandler) RegisterRoutes(e gin.IRoutes) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(time.Since(h.startTime).Seconds()),
	})
}

// Ready godoc
// @Summary      Readiness
// @Description  Pings the store
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db": gin.H{
				"driver": h.driver,
				"status": "down",
				"error":  err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ready",
		"version":      h.version,
		"uptime":       int64(time.Since(h.startTime).Seconds()),
		"borrow_limit": h.borrowLimit,
		"db": gin.H{
			"driver": h.driver,
			"status": "up",
		},
	})
}
