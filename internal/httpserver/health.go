package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoavobot/internal/intent"
	"ecoavobot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "EcoAvoBot API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "ecoavobot"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once a catalog with at least one intent is loaded.
// @Summary Readiness Check
// @Description Check if the API has a catalog loaded and can answer chats
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "No catalog loaded"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	out, err := srv.intentUC.ListIntents(c.Request.Context(), intent.ListIntentsInput{})
	if err != nil || out.Total == 0 {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "catalog not loaded",
			Data: gin.H{
				"status":  "not_ready",
				"intents": out.Total,
				"service": ServiceName,
			},
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"intents": out.Total,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
