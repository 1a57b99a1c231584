package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wedding-timeline/internal/middleware"
	"wedding-timeline/internal/timeline"
	"wedding-timeline/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mw      middleware.Middleware
	metrics *middleware.Metrics

	// Timeline domain
	timelineUC timeline.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Config
	Metrics    *middleware.Metrics

	// Timeline domain
	TimelineUC timeline.UseCase
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		metrics:     cfg.Metrics,
		timelineUC:  cfg.TimelineUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.Middleware, cfg.Metrics)
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timelineUC == nil {
		return errors.New("timeline usecase is required")
	}
	return nil
}
