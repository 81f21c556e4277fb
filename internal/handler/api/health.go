package api

import (
	"net/http"

	"reservation-engine/internal/infra/notification"

	"github.com/gin-gonic/gin"
)

type Counter interface {
	Len() int
}

type NotificationStats interface {
	Stats() notification.Stats
}

type HealthHandler struct {
	resources    Counter
	reservations Counter
	notifier     NotificationStats
}

func NewHealthHandler(resources, reservations Counter, notifier NotificationStats) *HealthHandler {
	return &HealthHandler{resources: resources, reservations: reservations, notifier: notifier}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	body := gin.H{
		"status":       "ok",
		"message":      "Service is healthy",
		"resources":    h.resources.Len(),
		"reservations": h.reservations.Len(),
	}
	if h.notifier != nil {
		body["notifications"] = h.notifier.Stats()
	}
	c.JSON(http.StatusOK, body)
}
