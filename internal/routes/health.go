package routes

import (
	"net/http"
	"time"

	pkghttpx "adipo-server/pkg/httpx"
)

// Health returns a handler that responds with service status.
func Health(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"environment":    d.Env,
			"uptime_seconds": int64(time.Since(d.StartedAt).Seconds()),
		})
	}
}
