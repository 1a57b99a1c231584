package engine

import (
	"time"

	"wedding-timeline/internal/catalog"
)

// testNow is the fixed wall clock used across the engine tests.
var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return New(catalog.Default(), WithClock(func() time.Time { return testNow }))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
