// Package handlers holds the JSON response helpers shared by every route
// handler.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorPayload is the wire shape of every error response body.
type ErrorPayload struct {
	Error string `json:"error"`
}

// RespondJSON writes data as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes a JSON error body and logs the failure. Client
// errors log at warn; server errors at error.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}

	RespondJSON(w, status, ErrorPayload{Error: err.Error()})
}
