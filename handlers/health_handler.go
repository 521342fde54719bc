package handlers

import (
	"net/http"

	"github.com/codessneha/synthia/utils"
)

// ServiceInfo describes the running service for the health and root endpoints
type ServiceInfo struct {
	Name        string
	Version     string
	Environment string
	Providers   []string
}

// HealthHandler serves liveness and service metadata endpoints
type HealthHandler struct {
	info ServiceInfo
}

// NewHealthHandler creates a health handler
func NewHealthHandler(info ServiceInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, map[string]interface{}{
		"status":      "healthy",
		"service":     h.info.Name,
		"version":     h.info.Version,
		"environment": h.info.Environment,
		"providers":   h.info.Providers,
	})
}

// HandleRoot handles GET /
func (h *HealthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, map[string]interface{}{
		"service": h.info.Name,
		"version": h.info.Version,
		"health":  "/health",
	})
}
