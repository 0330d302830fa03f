package httpserver

import (
	"github.com/gin-gonic/gin"

	"telegram-info-bot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "telegram-info-bot"
)

// index lists the service's endpoints.
// @Summary Service Index
// @Description Service identity and available endpoints
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service info"
// @Router / [get]
func (srv *HTTPServer) index(c *gin.Context) {
	response.OK(c, gin.H{
		"service": ServiceName,
		"status":  "running",
		"endpoints": gin.H{
			"webhook": "/webhook/telegram",
			"health":  "/health",
		},
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	data := gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	}
	if srv.botUsername != "" {
		data["bot"] = srv.botUsername
	}
	response.OK(c, data)
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
