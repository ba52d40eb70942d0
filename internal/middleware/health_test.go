package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balagh-app/vision-api/internal/middleware"
)

type fakeChecker struct{ err error }

func (f fakeChecker) Check(ctx context.Context) error { return f.err }

func TestHealthHandlerHealthy(t *testing.T) {
	h := middleware.HealthHandler(map[string]middleware.HealthChecker{
		"inference": fakeChecker{},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var status middleware.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "healthy", status.Checks["inference"].Status)
}

func TestHealthHandlerUnhealthy(t *testing.T) {
	h := middleware.HealthHandler(map[string]middleware.HealthChecker{
		"inference": fakeChecker{err: errors.New("provider unreachable")},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var status middleware.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "unhealthy", status.Status)
	assert.Contains(t, status.Checks["inference"].Message, "unreachable")
}

func TestInferenceHealthChecker(t *testing.T) {
	t.Run("reachable provider", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound) // any response below 500 counts
		}))
		defer srv.Close()

		c := &middleware.InferenceHealthChecker{URL: srv.URL}
		assert.NoError(t, c.Check(context.Background()))
	})

	t.Run("provider 5xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := &middleware.InferenceHealthChecker{URL: srv.URL}
		assert.Error(t, c.Check(context.Background()))
	})
}
