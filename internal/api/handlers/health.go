package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tonybolanyo/chordme-sub004/internal/chords"
)

// HealthHandler reports service liveness and a chord engine self-check.
type HealthHandler struct {
	engine *chords.Engine
}

func NewHealthHandler(engine *chords.Engine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	// A known-good chord exercises the full parse path.
	engineStatus := "healthy"
	if !h.engine.Parse("C").IsValid {
		engineStatus = "unhealthy"
	}

	status := http.StatusOK
	if engineStatus != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status": engineStatus,
		"chord_engine": gin.H{
			"status": engineStatus,
		},
	})
}
