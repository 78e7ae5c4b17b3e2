package saved

import (
	"errors"
	"net/http"
)

// Sentinel errors for saved listing operations.
var (
	ErrNotFound  = errors.New("saved listing not found")
	ErrDuplicate = errors.New("listing already saved")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
