package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusscout/chronicle-harvester/internal/handlers"
	"github.com/nexusscout/chronicle-harvester/internal/models"
)

type stubService struct{}

func (stubService) Run(ctx context.Context) (*models.InvocationResult, int) {
	return &models.InvocationResult{Status: models.StatusSuccess, UploadedFiles: []string{}}, http.StatusOK
}

func newTestRouter() http.Handler {
	return NewRouter(handlers.NewHarvestHandler(stubService{}))
}

func TestRouter_Harvest(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/harvest", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"success"`)
}

func TestRouter_HealthEndpoints(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "path %s", path)
	}
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "go_goroutines") ||
		strings.Contains(rr.Body.String(), "harvester_"),
		"expected prometheus metrics output")
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/harvest", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
