package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wedding-timeline/config"
	_ "wedding-timeline/docs" // Swagger docs
	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/httpserver"
	"wedding-timeline/internal/middleware"
	"wedding-timeline/internal/timeline/engine"
	"wedding-timeline/internal/timeline/usecase"
	"wedding-timeline/pkg/datemath"
	"wedding-timeline/pkg/log"
)

// @title       Wedding Timeline API
// @description Adaptive wedding planning timeline: countdown, phases, suggestions and insights.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Wedding Timeline API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Catalog
	cat, err := catalog.Load(cfg.Timeline.CatalogPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to load catalog %q: %v", cfg.Timeline.CatalogPath, err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Catalog loaded: %d categories, %d phases, %d standard tasks",
		len(cat.Categories), len(cat.Phases), len(cat.StandardTasks))

	// 4. DateMath parser
	timezone := cfg.Timeline.Timezone
	dateMathParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Timeline domain
	timelineUC := usecase.New(logger, engine.New(cat), dateMathParser)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		Metrics:    middleware.NewMetrics("wedding_timeline"),
		TimelineUC: timelineUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
