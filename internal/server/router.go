package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nexusscout/chronicle-harvester/internal/handlers"
	"github.com/nexusscout/chronicle-harvester/internal/middleware"
)

// NewRouter constructs a ServeMux with harvester routes registered.
func NewRouter(h *handlers.HarvestHandler) http.Handler {
	mux := http.NewServeMux()

	// Harvest trigger endpoint
	mux.HandleFunc("/harvest", h.HandleHarvest)

	// Health endpoints
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/readyz", h.Ready)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.RequestID(mux)
}
