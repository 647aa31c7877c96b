package handlers

import "net/http"

// SystemHandler handles system-related endpoints
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Root is the liveness endpoint.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "SPILLZONE API is running"})
}
