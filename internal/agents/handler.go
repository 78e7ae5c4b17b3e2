package agents

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"propsight/internal/listings"
	"propsight/pkg/handlers"
	"propsight/pkg/routes"
)

// Handler provides HTTP handlers for agent invocations and the composed
// analysis reports built on top of them.
type Handler struct {
	runner *Runner
	logger *slog.Logger
}

// NewHandler creates a new agent HTTP handler.
func NewHandler(runner *Runner, logger *slog.Logger) *Handler {
	return &Handler{
		runner: runner,
		logger: logger,
	}
}

// Routes returns the route group configuration for agent endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/agents",
		Description: "AI agent invocations and composed analysis reports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "/network", Handler: h.Network},
			{Method: "POST", Pattern: "/{key}/run", Handler: h.Run},
			{Method: "POST", Pattern: "/{key}/structured", Handler: h.RunStructured},
			{Method: "GET", Pattern: "/property-data/{id}", Handler: h.PropertyData},
			{Method: "GET", Pattern: "/cma/{id}", Handler: h.CMA},
			{Method: "GET", Pattern: "/opportunities", Handler: h.Opportunities},
			{Method: "POST", Pattern: "/strategy", Handler: h.Strategy},
		},
	}
}

// RunRequest is the body for single-agent invocations.
type RunRequest struct {
	Prompt string `json:"prompt"`
}

// StructuredRunRequest is the body for structured-output invocations.
type StructuredRunRequest struct {
	Prompt string          `json:"prompt"`
	Schema json.RawMessage `json:"schema"`
}

// List handles GET /api/agents and enumerates the agent catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"agents": h.runner.Agents().Keys(),
	})
}

// Run handles POST /api/agents/{key}/run.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if req.Prompt == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("prompt is required"))
		return
	}

	result, err := h.runner.Run(r.Context(), r.PathValue("key"), req.Prompt)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"result": result})
}

// RunStructured handles POST /api/agents/{key}/structured.
func (h *Handler) RunStructured(w http.ResponseWriter, r *http.Request) {
	var req StructuredRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if req.Prompt == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("prompt is required"))
		return
	}
	if len(req.Schema) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("schema is required"))
		return
	}

	result, err := h.runner.RunStructured(r.Context(), r.PathValue("key"), req.Prompt, req.Schema)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Network handles POST /api/agents/network, fanning one prompt out per
// agent key.
func (h *Handler) Network(w http.ResponseWriter, r *http.Request) {
	var prompts map[string]string
	if err := json.NewDecoder(r.Body).Decode(&prompts); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if len(prompts) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("at least one prompt is required"))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.runner.RunNetwork(r.Context(), prompts))
}

// PropertyData handles GET /api/agents/property-data/{id}.
func (h *Handler) PropertyData(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.GetRealTimePropertyData(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, listings.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CMA handles GET /api/agents/cma/{id}.
func (h *Handler) CMA(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.RunCMAAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{"cma": result})
}

// Opportunities handles GET /api/agents/opportunities.
func (h *Handler) Opportunities(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("region is required"))
		return
	}

	result, err := h.runner.GetInvestmentOpportunities(r.Context(), region, r.URL.Query().Get("region_type"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Strategy handles POST /api/agents/strategy.
func (h *Handler) Strategy(w http.ResponseWriter, r *http.Request) {
	var params StrategyParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if params.Region == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("region is required"))
		return
	}

	result, err := h.runner.GenerateInvestmentStrategy(r.Context(), params)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
