package listings

import (
	"log/slog"
	"net/http"
	"strconv"

	"propsight/pkg/handlers"
	"propsight/pkg/routes"

	"github.com/google/uuid"
)

// Handler provides HTTP handlers for listing search and retrieval endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new listings HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for listing endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/listings",
		Description: "Property listing search and retrieval",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Search},
			{Method: "GET", Pattern: "/deals", Handler: h.Deals},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// Search handles GET /api/listings to search listings by query filters.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.Search(r.Context(), filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /api/listings/{id} to retrieve a single listing.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Deals handles GET /api/listings/deals to retrieve the top-scored deals.
func (h *Handler) Deals(w http.ResponseWriter, r *http.Request) {
	var minScore *int
	if v := r.URL.Query().Get("min_score"); v != "" {
		score, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		minScore = &score
	}

	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		limit = parsed
	}

	result, err := h.sys.Deals(r.Context(), minScore, limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
