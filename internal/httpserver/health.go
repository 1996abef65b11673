package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assistente-gestao/pkg/response"
)

const (
	HealthMessage = "Assistente de Gestão API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "assistente-gestao"
)

func (srv HTTPServer) probeBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probeBody("healthy"))
}

// readyCheck fails with 503 while task storage is unreachable.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Storage unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.readiness != nil {
		if err := srv.readiness(); err != nil {
			srv.l.Warnf(c.Request.Context(), "readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "storage unavailable",
			})
			return
		}
	}
	response.OK(c, srv.probeBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probeBody("alive"))
}
