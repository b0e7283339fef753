package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leggettc18/devmarks/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("info", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

func TestHealthEndpoints(t *testing.T) {
	h := NewHealthHandler(HealthCheck{Name: "database", Check: func(context.Context) error { return nil }})

	rr := httptest.NewRecorder()
	h.Liveness(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.Readiness(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"data":{"status":"ready"}}`, rr.Body.String())
}

func TestReadiness_FailingCheck(t *testing.T) {
	h := NewHealthHandler(
		HealthCheck{Name: "database", Check: func(context.Context) error { return nil }},
		HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
	)

	rr := httptest.NewRecorder()
	h.Readiness(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.Contains(t, rr.Body.String(), "redis is not ready")
}

func TestEmbedParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookmarks?embed=Owner,%20folders&embed=,parent", nil)
	require.Equal(t, []string{"owner", "folders", "parent"}, embedParam(req))

	req = httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	require.Empty(t, embedParam(req))
}
