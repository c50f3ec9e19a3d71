package handler

import "net/http"

// Health handles GET /health. It reports process liveness only; storage
// connectivity is a startup concern and is not re-checked here.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
