package agentlogs

import (
	"log/slog"
	"net/http"
	"strconv"

	"propsight/pkg/handlers"
	"propsight/pkg/routes"
)

// Handler provides HTTP handlers for agent audit log endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new audit log HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for audit log endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/agent-logs",
		Description: "Agent invocation audit records",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Recent},
		},
	}
}

// Recent handles GET /api/agent-logs to retrieve recent audit records.
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	agentName := r.URL.Query().Get("agent")

	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		limit = parsed
	}

	result, err := h.sys.Recent(r.Context(), agentName, limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
