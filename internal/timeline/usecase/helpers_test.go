package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/timeline/engine"
	"wedding-timeline/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()

	dateMath, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	eng := engine.New(catalog.Default(), engine.WithClock(func() time.Time { return testNow }))
	return New(&mockLogger{}, eng, dateMath)
}
