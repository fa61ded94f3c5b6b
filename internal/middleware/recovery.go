package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"media-gallery/internal/logging"
	"media-gallery/internal/metrics"
)

// Recovery converts handler panics into 500 JSON responses. Nothing in
// the request path is allowed to terminate the serving process.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logging.Error("panic serving %s %s: %v\n%s",
					r.Method, r.URL.Path, rec, debug.Stack())
				metrics.HTTPPanicsRecovered.Inc()

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(w).Encode(map[string]interface{}{
					"media": []interface{}{},
					"error": fmt.Sprintf("internal error: %v", rec),
				}); err != nil {
					logging.Error("failed to write panic response: %v", err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
