package middleware

import (
	"github.com/rs/cors"

	"wedding-timeline/pkg/log"
)

// Config holds the knobs of the shared HTTP middleware.
type Config struct {
	RequestsPerMin int      // 0 disables rate limiting
	AllowedOrigins []string // empty means any origin
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	cors    *cors.Cors
	metrics *Metrics
}

func New(l log.Logger, cfg Config, metrics *Metrics) Middleware {
	mw := Middleware{
		l:       l,
		cors:    newCORS(cfg.AllowedOrigins),
		metrics: metrics,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
