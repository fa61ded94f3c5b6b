package handlers

import (
	"context"
	"net/http"

	"media-gallery/internal/gallery"
	"media-gallery/internal/logging"
	"media-gallery/internal/mediatypes"
)

// MediaResponse is the read surface's response envelope.
type MediaResponse struct {
	Media []gallery.Record `json:"media"`
	Error string           `json:"error,omitempty"`
}

// GetMedia serves the cache read surface: the current snapshot filtered
// by the optional kind, tag, and durationBucket query parameters.
// Intermediaries may cache the result for the freshness threshold.
func (h *Handlers) GetMedia(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filters gallery.Filters
	if v := query.Get("kind"); v != "" {
		kind, ok := mediatypes.ParseKind(v)
		if !ok {
			writeMediaError(w, http.StatusBadRequest, "invalid kind: "+v)
			return
		}
		filters.Kind = kind
	}
	if v := query.Get("durationBucket"); v != "" {
		bucket, ok := mediatypes.ParseDurationBucket(v)
		if !ok {
			writeMediaError(w, http.StatusBadRequest, "invalid durationBucket: "+v)
			return
		}
		filters.Bucket = bucket
	}
	filters.Tag = query.Get("tag")

	result := h.cache.Query(r.Context(), filters)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if result.Empty {
		// No media at all is distinct from a filter matching nothing.
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, MediaResponse{Media: []gallery.Record{}, Error: "No media found"})
		return
	}

	writeJSON(w, MediaResponse{Media: result.Media})
}

// Rebuild forces a full cache rebuild in the background.
func (h *Handlers) Rebuild(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.cache.IsBuilding() {
		writeJSON(w, map[string]string{
			"status":  "already_running",
			"message": "A rebuild is already in progress",
		})
		return
	}

	// Detached from the request context: the rebuild outlives the
	// response.
	go h.cache.ForceRebuild(context.Background())
	logging.Info("manual rebuild triggered")

	writeJSON(w, map[string]string{
		"status":  "started",
		"message": "Rebuild started",
	})
}

func writeMediaError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeJSON(w, MediaResponse{Media: []gallery.Record{}, Error: msg})
}
