package httpserver

import (
	"github.com/gin-gonic/gin"

	"wedding-timeline/internal/timeline"
	"wedding-timeline/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Wedding timeline API is up"
	HealthVersion = "1.0.0"
	ServiceName   = "wedding-timeline"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the phase catalog can be served.
// @Summary Readiness Check
// @Description Check that the timeline catalog is loaded
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 500 {object} response.Resp "Catalog unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := srv.timelineUC.ListPhases(ctx, timeline.ListPhasesInput{})
	if err != nil || len(out.Phases) == 0 {
		srv.l.Errorf(ctx, "readyCheck: catalog unavailable: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
		"phases":  len(out.Phases),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
