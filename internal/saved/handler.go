package saved

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"propsight/pkg/handlers"
	"propsight/pkg/routes"

	"github.com/google/uuid"
)

// Handler provides HTTP handlers for saved listing endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new saved listings HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for saved listing endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/saved",
		Description: "User saved listings",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{userID}", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Save},
			{Method: "DELETE", Pattern: "/{userID}/{listingID}", Handler: h.Unsave},
		},
	}
}

// SaveRequest is the body for POST /api/saved.
type SaveRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
}

// Save handles POST /api/saved to bookmark a listing for a user.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Save(r.Context(), req.UserID, req.ListingID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Unsave handles DELETE /api/saved/{userID}/{listingID} to remove a bookmark.
func (h *Handler) Unsave(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	listingID, err := uuid.Parse(r.PathValue("listingID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Unsave(r.Context(), userID, listingID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/saved/{userID} to retrieve a user's saved listings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
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

	result, err := h.sys.List(r.Context(), userID, limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
