// Package engine holds the adaptive timeline computations. Every method is a
// pure function of its arguments, the catalog and the clock; nothing is cached.
package engine

import (
	"time"

	"wedding-timeline/internal/catalog"
)

// Clock returns the current time.
type Clock func() time.Time

// Engine evaluates plans against a catalog. It is immutable and safe for
// concurrent use.
type Engine struct {
	cat catalog.Catalog
	now Clock
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.now = c
		}
	}
}

// New creates an Engine over the given catalog.
func New(cat catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat: cat,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}
