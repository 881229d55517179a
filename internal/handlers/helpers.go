package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/itsDrac/nft-web/internal/session"
	"github.com/itsDrac/nft-web/pkg/config"
)

// Generic type for any data structure sent in a response
type JSONResponse map[string]any

// setRequestID echoes the request id, generating one if chi did not.
func setRequestID(w http.ResponseWriter, r *http.Request) string {
	reqID := middleware.GetReqID(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(config.RequestIDKey)
	}
	if reqID == "" {
		reqID = uuid.NewString()
	}
	w.Header().Set(config.RequestIDKey, reqID)
	return reqID
}

// RespondJson sends a Json response to the client,
// handles Content-Type to JSON
func RespondJson(w http.ResponseWriter, r *http.Request, status int, data JSONResponse) {
	setRequestID(w, r)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "status", status, "error", err)
	}
}

// RespondError writes a plain text error carrying its error code.
func RespondError(w http.ResponseWriter, r *http.Request, status int, code error, message string) {
	reqID := setRequestID(w, r)
	slog.Warn("Responding with error", "status", status, "code", code.Error(), "message", message, "request_id", reqID)
	w.Header().Set("X-Error-Code", code.Error())
	http.Error(w, message, status)
}

func respondHTML(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	setRequestID(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write HTML response", "status", status, "error", err)
	}
}

// saveSession writes the session cookie; failures only lose flashes.
func saveSession(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		return
	}
	if err := sess.Save(w, r); err != nil {
		slog.Error("[SESSION] save failed -> ", "error", err.Error())
	}
}
