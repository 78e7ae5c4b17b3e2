package agents

import (
	"errors"
	"net/http"
)

// Agent system errors.
var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrMaxStepsExceeded = errors.New("max tool steps exceeded")
)

// MapHTTPStatus maps agent errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAgentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
