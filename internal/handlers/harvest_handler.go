package handlers

import (
	"context"
	"net/http"

	"github.com/nexusscout/chronicle-harvester/internal/httputil"
	"github.com/nexusscout/chronicle-harvester/internal/models"
)

// HarvestRunner is what the handler needs from the harvest service.
type HarvestRunner interface {
	Run(ctx context.Context) (*models.InvocationResult, int)
}

type HarvestHandler struct {
	service HarvestRunner
}

func NewHarvestHandler(service HarvestRunner) *HarvestHandler {
	return &HarvestHandler{
		service: service,
	}
}

// HandleHarvest triggers one harvest invocation. The request only acts as a
// trigger; method and body are not interpreted, so manual curl calls and
// scheduler pings behave identically.
func (h *HarvestHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	result, code := h.service.Run(r.Context())
	httputil.WriteJSON(w, code, result)
}

func (h *HarvestHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *HarvestHandler) Ready(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
