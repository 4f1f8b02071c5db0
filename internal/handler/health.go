package handler

import (
	"net/http"

	"atrium/internal/httputil"
)

// Health is a liveness check; it deliberately does not touch the store.
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
