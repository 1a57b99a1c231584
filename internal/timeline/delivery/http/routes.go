package http

import (
	"wedding-timeline/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.GET("/countdown", h.Countdown)

	phases := rg.Group("/phases")
	{
		phases.GET("", h.ListPhases)
		phases.GET("/:id", h.DetailPhase)
	}

	rg.POST("/categorize", h.Categorize)
	rg.POST("/suggestions", h.SuggestTodos)
	rg.POST("/smart-suggestions", h.SmartSuggestions)
	rg.POST("/adaptive", h.AdaptiveTimeline)
	rg.POST("/groups", h.GroupTodos)
	rg.POST("/insights", h.Insights)
	rg.POST("/overview", h.Overview)
}
