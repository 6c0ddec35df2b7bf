package handlers

import (
	"context"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks,omitempty"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Pinger is satisfied by *mongodb.Client
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// GetOverallHealth godoc
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetOverallHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Service: "lead-management-api",
		Version: h.version,
		Checks:  make(map[string]HealthCheck),
	}

	allHealthy := true

	start := time.Now()
	check := HealthCheck{Status: "healthy"}
	if err := h.db.Ping(r.Context()); err != nil {
		check.Status = "unhealthy"
		check.Error = err.Error()
		allHealthy = false
	}
	check.Latency = time.Since(start).String()
	response.Checks["mongodb"] = check

	if allHealthy {
		response.Status = "healthy"
		respondWithJSON(w, http.StatusOK, response)
		return
	}
	response.Status = "unhealthy"
	respondWithJSON(w, http.StatusServiceUnavailable, response)
}
