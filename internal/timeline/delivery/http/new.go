package http

import (
	"github.com/gin-gonic/gin"

	"wedding-timeline/internal/timeline"
	"wedding-timeline/pkg/log"
)

// Handler is the public interface for the timeline HTTP delivery layer.
type Handler interface {
	Countdown(c *gin.Context)
	ListPhases(c *gin.Context)
	DetailPhase(c *gin.Context)
	Categorize(c *gin.Context)
	SuggestTodos(c *gin.Context)
	SmartSuggestions(c *gin.Context)
	AdaptiveTimeline(c *gin.Context)
	GroupTodos(c *gin.Context)
	Insights(c *gin.Context)
	Overview(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timeline.UseCase
}

// New creates a new HTTP handler for the timeline domain.
func New(l log.Logger, uc timeline.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
