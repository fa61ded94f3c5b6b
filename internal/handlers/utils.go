package handlers

import (
	"encoding/json"
	"net/http"

	"media-gallery/internal/logging"
)

// writeJSON encodes v as JSON onto the response writer. Encoding errors
// are logged; there is nothing else to do for them mid-response.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}
