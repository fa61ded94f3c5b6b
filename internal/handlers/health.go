package handlers

import (
	"net/http"
	"runtime"
	"time"

	"media-gallery/internal/gallery"
	"media-gallery/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusStarting = "starting"
)

// HealthResponse contains the health check response.
type HealthResponse struct {
	Status    string         `json:"status"`
	Version   string         `json:"version"`
	Uptime    string         `json:"uptime"`
	Cache     gallery.Status `json:"cache"`
	GoVersion string         `json:"goVersion"`
	NumCPU    int            `json:"numCpu"`
}

// HealthCheck reports service health and cache state.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	cacheStatus := h.cache.GetStatus()

	response := HealthResponse{
		Status:    statusHealthy,
		Version:   startup.Version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Cache:     cacheStatus,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
	}
	if cacheStatus.LastBuild.IsZero() && cacheStatus.Building {
		response.Status = statusStarting
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// LivenessCheck always returns 200 while the process is serving.
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{"status": "alive"})
	}
}

// ReadinessCheck returns 200 once at least one snapshot (even an empty
// one) has been built or adopted.
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !h.cache.GetStatus().LastBuild.IsZero() {
		w.WriteHeader(http.StatusOK)
		writeJSON(w, map[string]string{"status": "ready"})
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, map[string]string{"status": "not_ready"})
	}
}
