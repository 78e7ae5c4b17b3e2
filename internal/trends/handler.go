package trends

import (
	"log/slog"
	"net/http"
	"strconv"

	"propsight/pkg/handlers"
	"propsight/pkg/routes"
)

// Handler provides HTTP handlers for market trend endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new trends HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for trend endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/trends",
		Description: "Regional market trend statistics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Recent},
		},
	}
}

// Recent handles GET /api/trends to retrieve recent trends for a region.
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	regionType := r.URL.Query().Get("region_type")

	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		limit = parsed
	}

	result, err := h.sys.Recent(r.Context(), region, regionType, limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
