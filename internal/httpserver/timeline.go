package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	timelineHTTP "wedding-timeline/internal/timeline/delivery/http"
)

// setupTimelineDomain wires the timeline handler and registers its routes
// under /api/v1/timeline.
func (srv HTTPServer) setupTimelineDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := timelineHTTP.New(srv.l, srv.timelineUC)
	timelineHTTP.RegisterRoutes(api.Group("/timeline"), h, srv.mw)

	srv.l.Infof(ctx, "Timeline domain registered")
	return nil
}
