package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/middleware"
	"wedding-timeline/internal/timeline/engine"
	"wedding-timeline/internal/timeline/usecase"
	"wedding-timeline/pkg/datemath"
	"wedding-timeline/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()

	l := log.NewNop()
	dateMath, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	eng := engine.New(catalog.Default(), engine.WithClock(func() time.Time {
		return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	}))

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		Metrics:     middleware.NewMetrics("wedding_timeline"),
		TimelineUC:  usecase.New(l, eng, dateMath),
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()

	_, err := New(l, Config{Mode: "test", Port: 8080})
	assert.Error(t, err)

	_, err = New(l, Config{Port: 8080, TimelineUC: usecase.New(l, nil, nil)})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	assert.Contains(t, get(srv, "/ready").Body.String(), `"phases":5`)
	assert.Contains(t, get(srv, "/metrics").Body.String(), "wedding_timeline_http_requests_total")
}

func TestTimelineRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := get(srv, "/api/v1/timeline/phases")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(srv, "/api/v1/timeline/countdown?wedding_date=2026-10-10")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"months_until_wedding":9`)
}
