package handlers

import (
	"net/http"
	"time"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := JSONResponse{
		"message": "ok",
		"time":    time.Now().Format(time.RFC3339),
	}
	RespondJson(w, r, http.StatusOK, resp)
}

// CSRFFailure answers requests rejected by the CSRF middleware.
func CSRFFailure(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, http.StatusForbidden, ErrCSRF, "Your session expired. Reload the page and try again.")
}
